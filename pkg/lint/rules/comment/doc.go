// Package comment contains rules about comment quality: commented-out
// code and references to symbols that no longer exist.
package comment
