// Package naming contains rules about the names of declarations: length
// relative to scope, predicate prefixes on booleans, interface prefixes,
// and negated names.
package naming
