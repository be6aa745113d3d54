package rules

// Import all rule subpackages to register them with the global registry.
// This file triggers all init() functions in the rule packages.
import (
	// Import rule categories - each registers its rules via init()
	_ "github.com/codetidy/codetidy/pkg/lint/rules/class"
	_ "github.com/codetidy/codetidy/pkg/lint/rules/comment"
	_ "github.com/codetidy/codetidy/pkg/lint/rules/conditional"
	_ "github.com/codetidy/codetidy/pkg/lint/rules/function"
	_ "github.com/codetidy/codetidy/pkg/lint/rules/naming"
)
