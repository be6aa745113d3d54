// Package syntax defines the generic syntax model the lint engine
// evaluates rules against.
//
// The model is a single tagged Node type rather than one struct per
// production: rules dispatch on NodeKind, so a closed kind set with
// kind-specific payload fields keeps the rule surface small and
// language-agnostic. The tree is strictly owned top-down; parents own
// children and nothing holds a back-reference, so the structure is
// acyclic by construction.
package syntax
