// Package function contains rules about function shape: parameter
// counts, flag arguments, and output arguments.
package function
