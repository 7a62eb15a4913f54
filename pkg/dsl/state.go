package dsl

import "github.com/aretw0/ribbon/pkg/definition"

// StateBuilder provides a fluent API for adding the outgoing rules of a state.
type StateBuilder struct {
	name    string
	rules   []definition.Rule
	builder *Builder
}

// On starts a rule guarded by one symbol per tape, input tape first.
func (s *StateBuilder) On(reads ...string) *RuleBuilder {
	return &RuleBuilder{
		state: s,
		rule:  definition.Rule{From: s.name, Read: reads},
	}
}

// Rule adds a rule in the compact "reads -> move,write,move" form.
func (s *StateBuilder) Rule(rule, target string) *StateBuilder {
	s.rules = append(s.rules, definition.Rule{From: s.name, To: target, Rule: rule})
	return s
}

// State switches to another state, for chaining.
func (s *StateBuilder) State(name string) *StateBuilder {
	return s.builder.State(name)
}

// RuleBuilder configures one rule until Go closes it.
type RuleBuilder struct {
	state *StateBuilder
	rule  definition.Rule
}

// Move sets the input tape move.
func (r *RuleBuilder) Move(dir string) *RuleBuilder {
	r.rule.Move = dir
	return r
}

// Write adds the write and move of the next writing tape.
func (r *RuleBuilder) Write(symbol, dir string) *RuleBuilder {
	r.rule.Write = append(r.rule.Write, definition.Write{Symbol: symbol, Move: dir})
	return r
}

// Go closes the rule with its target state.
func (r *RuleBuilder) Go(target string) *StateBuilder {
	r.rule.To = target
	r.state.rules = append(r.state.rules, r.rule)
	return r.state
}
