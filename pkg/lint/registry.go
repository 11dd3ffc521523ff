package lint

import (
	"sort"
	"sync"
)

// globalRegistry is the single global registry for all lint rules.
var globalRegistry = &Registry{
	byKey: make(map[ruleKey]RuleDef),
	byID:  make(map[string]RuleDef),
}

// ruleKey identifies a rule by manager and canonical subcommand.
type ruleKey struct {
	manager    string
	subcommand string
}

// Registry stores registered lint rules for lookup and discovery.
type Registry struct {
	mu    sync.RWMutex
	byKey map[ruleKey]RuleDef
	byID  map[string]RuleDef
}

// Register adds a rule to the global registry. Call this from init()
// functions in rule packages. Aliases and the bare form are indexed
// alongside the canonical subcommand.
func Register(rule RuleDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()

	globalRegistry.byID[rule.ID] = rule
	globalRegistry.byKey[ruleKey{rule.Manager, rule.Subcommand}] = rule
	for _, alias := range rule.Aliases {
		globalRegistry.byKey[ruleKey{rule.Manager, alias}] = rule
	}
	if rule.Bare {
		globalRegistry.byKey[ruleKey{rule.Manager, ""}] = rule
	}
}

// Lookup returns the rule matching a manager and subcommand, resolving
// aliases and bare forms. The second result is false when the combination
// is not covered by the rule table.
func Lookup(manager, subcommand string) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.byKey[ruleKey{manager, subcommand}]
	return rule, ok
}

// GetByID returns a rule by its ID.
func GetByID(id string) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.byID[id]
	return rule, ok
}

// AllRules returns all registered rules sorted by manager, then ID, for
// stable listings.
func AllRules() []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]RuleDef, 0, len(globalRegistry.byID))
	for _, rule := range globalRegistry.byID {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Manager != rules[j].Manager {
			return rules[i].Manager < rules[j].Manager
		}
		return rules[i].ID < rules[j].ID
	})
	return rules
}

// Managers returns the distinct package-manager names known to the registry,
// sorted. The tokenizer uses these to recognize command heads.
func Managers() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	seen := make(map[string]bool)
	for key := range globalRegistry.byKey {
		seen[key.manager] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.byID)
}

// Clear removes all registered rules. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.byKey = make(map[ruleKey]RuleDef)
	globalRegistry.byID = make(map[string]RuleDef)
}
