// Package conditional contains rules about branch and loop guards.
package conditional
