package lint

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/codetidy/codetidy/pkg/syntax"
)

// ErrDuplicateRule is returned when a rule ID is registered twice. A
// duplicate indicates a misconfigured tool build, not a per-input
// problem, so callers should treat it as fatal.
var ErrDuplicateRule = errors.New("duplicate rule id")

// Registry stores an enabled rule set keyed by ID and indexed by the
// node kinds each rule subscribes to. It must not be modified once
// analysis begins.
type Registry struct {
	rules  map[string]RuleDef
	byKind map[syntax.NodeKind][]RuleDef
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		rules:  make(map[string]RuleDef),
		byKind: make(map[syntax.NodeKind][]RuleDef),
	}
}

// Add registers a rule. It fails with ErrDuplicateRule if a rule with
// the same ID is already present.
func (r *Registry) Add(rule RuleDef) error {
	if _, exists := r.rules[rule.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateRule, rule.ID)
	}
	r.rules[rule.ID] = rule
	for _, kind := range rule.Kinds {
		r.byKind[kind] = insertSorted(r.byKind[kind], rule)
	}
	return nil
}

// insertSorted keeps per-kind rule slices ordered by rule ID so dispatch
// order is independent of registration order.
func insertSorted(rules []RuleDef, rule RuleDef) []RuleDef {
	i := sort.Search(len(rules), func(i int) bool {
		return rules[i].ID >= rule.ID
	})
	rules = append(rules, RuleDef{})
	copy(rules[i+1:], rules[i:])
	rules[i] = rule
	return rules
}

// RulesFor returns all rules subscribed to the given node kind, sorted
// by rule ID. When none match it returns an empty slice, never nil, so
// callers may range over the result unconditionally.
func (r *Registry) RulesFor(kind syntax.NodeKind) []RuleDef {
	if rules, ok := r.byKind[kind]; ok {
		return rules
	}
	return []RuleDef{}
}

// GetByID returns a rule by its ID.
func (r *Registry) GetByID(id string) (RuleDef, bool) {
	rule, ok := r.rules[id]
	return rule, ok
}

// GetAll returns all registered rules sorted by ID.
func (r *Registry) GetAll() []RuleDef {
	rules := make([]RuleDef, 0, len(r.rules))
	for _, rule := range r.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID < rules[j].ID
	})
	return rules
}

// GetByGroup returns all rules in a specific group, sorted by ID.
func (r *Registry) GetByGroup(group string) []RuleDef {
	var rules []RuleDef
	for _, rule := range r.GetAll() {
		if rule.Group == group {
			rules = append(rules, rule)
		}
	}
	return rules
}

// Count returns the number of registered rules.
func (r *Registry) Count() int {
	return len(r.rules)
}

// ---------- Global registry ----------

// globalRegistry collects rules registered from rule-package init()
// functions.
var (
	globalMu       sync.RWMutex
	globalRegistry = NewRegistry()
)

// Register adds a rule to the global registry. Call this from init()
// functions in rule packages. A duplicate ID panics: it means two rule
// packages collide, which is a build defect.
func Register(rule RuleDef) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if err := globalRegistry.Add(rule); err != nil {
		panic(err)
	}
}

// DefaultRegistry returns a registry holding every globally registered
// rule. The returned registry is a snapshot; later Register calls do not
// affect it.
func DefaultRegistry() *Registry {
	globalMu.RLock()
	defer globalMu.RUnlock()
	reg := NewRegistry()
	for _, rule := range globalRegistry.GetAll() {
		// IDs are unique in the source registry, so Add cannot fail.
		_ = reg.Add(rule)
	}
	return reg
}

// AllRules returns all globally registered rules sorted by ID.
func AllRules() []RuleDef {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalRegistry.GetAll()
}

// GetByID returns a globally registered rule by its ID.
func GetByID(id string) (RuleDef, bool) {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalRegistry.GetByID(id)
}

// Count returns the number of globally registered rules.
func Count() int {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalRegistry.Count()
}

// Clear removes all globally registered rules. Used for testing.
func Clear() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalRegistry = NewRegistry()
}
