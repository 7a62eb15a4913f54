package dsl

import (
	"github.com/aretw0/ribbon/pkg/definition"
	"github.com/aretw0/ribbon/pkg/domain"
)

// Builder manages the machine construction.
type Builder struct {
	ribbons int
	order   []string
	states  map[string]*StateBuilder
}

// New creates a new builder for a machine with k writing tapes.
func New(k int) *Builder {
	return &Builder{
		ribbons: k,
		states:  make(map[string]*StateBuilder),
	}
}

// State starts (or resumes) the rules of a state.
// States get their index in the order they are first mentioned here.
func (b *Builder) State(name string) *StateBuilder {
	if sb, ok := b.states[name]; ok {
		return sb
	}
	sb := &StateBuilder{name: name, builder: b}
	b.states[name] = sb
	b.order = append(b.order, name)
	return sb
}

// Definition returns the serializable form of what has been built so far.
func (b *Builder) Definition() *definition.Definition {
	def := &definition.Definition{
		Ribbons:     b.ribbons,
		States:      append([]string(nil), b.order...),
		Transitions: []definition.Rule{},
	}
	for _, name := range b.order {
		def.Transitions = append(def.Transitions, b.states[name].rules...)
	}
	return def
}

// Build compiles the rules into a graph. The first invalid rule aborts the build.
func (b *Builder) Build() (*domain.Graph, error) {
	return definition.Build(b.Definition())
}
