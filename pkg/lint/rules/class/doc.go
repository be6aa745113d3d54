// Package class contains rules about class shape: size thresholds and
// field exposure.
package class
