// Package rules aggregates all rule subpackages. Import it for side
// effects to register every built-in rule:
//
//	import _ "github.com/codetidy/codetidy/pkg/lint/rules"
package rules
