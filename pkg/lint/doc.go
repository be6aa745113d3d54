// Package lint is the convention-checking engine: a registry of
// declarative rules evaluated against the generic syntax model during a
// single pre-order traversal per file.
//
// Rules are data (RuleDef) rather than an interface hierarchy: each one
// names the node kinds it subscribes to and supplies a pure Check
// function. The analyzer owns all traversal state — the ancestor chain
// and the scoped symbol table live on the walk, never on the tree — and
// isolates rule failures by converting a panicking Check into an
// ordinary warning finding at the dispatch boundary.
//
// Determinism: traversal order is fixed by tree structure, per-node rule
// order is sorted by rule ID, and batch output keeps input file order,
// so repeated runs over the same inputs produce identical reports.
package lint
