package definition

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/ribbon/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrParse is the kind shared by every ParseError.
var ErrParse = errors.New("invalid machine definition")

// ParseError reports where a definition could not be decoded.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", ErrParse, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrParse, e.Field, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// Definition is the serializable form of a machine graph.
type Definition struct {
	Name        string   `mapstructure:"name" yaml:"name,omitempty" json:"name,omitempty"`
	Ribbons     int      `mapstructure:"ribbons" yaml:"ribbons" json:"ribbons"`
	States      []string `mapstructure:"states" yaml:"states,omitempty" json:"states,omitempty"`
	Transitions []Rule   `mapstructure:"transitions" yaml:"transitions" json:"transitions"`
}

// Rule is one transition between two named states.
// Either Rule (compact) or Read/Move/Write (expanded) is set.
type Rule struct {
	From  string   `mapstructure:"from" yaml:"from" json:"from"`
	To    string   `mapstructure:"to" yaml:"to" json:"to"`
	Rule  string   `mapstructure:"rule" yaml:"rule,omitempty" json:"rule,omitempty"`
	Read  []string `mapstructure:"read" yaml:"read,omitempty,flow" json:"read,omitempty"`
	Move  string   `mapstructure:"move" yaml:"move,omitempty" json:"move,omitempty"`
	Write []Write  `mapstructure:"write" yaml:"write,omitempty" json:"write,omitempty"`
}

// Write is the symbol written on one writing tape and that tape's move.
type Write struct {
	Symbol string `mapstructure:"symbol" yaml:"symbol" json:"symbol"`
	Move   string `mapstructure:"move" yaml:"move" json:"move"`
}

// Load reads a YAML definition.
func Load(r io.Reader) (*Definition, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Err: errors.New("empty document")}
		}
		return nil, &ParseError{Err: err}
	}
	return Decode(raw)
}

// LoadFile reads a YAML definition from fsys.
func LoadFile(fsys afero.Fs, path string) (*Definition, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}
	return Load(bytes.NewReader(data))
}

// Decode converts a generic map (from YAML or JSON) into a Definition.
// Scalars are weakly typed so that read: [0, 1] yields the symbols "0" and "1".
// Unknown keys are rejected.
func Decode(raw map[string]any) (*Definition, error) {
	var def Definition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &def,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &def, nil
}

// Transition parses the rule into a transition, without attaching it.
func (r Rule) Transition() (domain.Transition, error) {
	if r.Rule != "" {
		if len(r.Read) > 0 || r.Move != "" || len(r.Write) > 0 {
			return domain.Transition{}, errors.New("rule and read/move/write are mutually exclusive")
		}
		return ParseRule(r.Rule)
	}
	writes := make([]string, len(r.Write))
	moves := make([]string, 0, len(r.Write)+1)
	moves = append(moves, r.Move)
	for i, w := range r.Write {
		writes[i] = w.Symbol
		moves = append(moves, w.Move)
	}
	return domain.ParseTransition(r.Read, writes, moves)
}

// ParseRule reads the compact "a,b -> R,c,L" form produced by domain.Transition.String.
func ParseRule(s string) (domain.Transition, error) {
	left, right, ok := strings.Cut(s, "->")
	if !ok {
		return domain.Transition{}, fmt.Errorf("%w: missing \"->\" in %q", domain.ErrTransitionArgs, s)
	}
	reads := splitTokens(left)
	actions := splitTokens(right)
	if len(actions)%2 == 0 {
		return domain.Transition{}, fmt.Errorf("%w: %q needs a move followed by write,move pairs", domain.ErrTransitionArgs, right)
	}

	moves := []string{actions[0]}
	var writes []string
	for i := 1; i < len(actions); i += 2 {
		writes = append(writes, actions[i])
		moves = append(moves, actions[i+1])
	}
	return domain.ParseTransition(reads, writes, moves)
}

func splitTokens(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Build constructs a graph from the definition.
// Ribbons may be omitted when at least one transition is present; it is then
// inferred from the first transition.
func Build(def *Definition) (*domain.Graph, error) {
	transitions := make([]domain.Transition, len(def.Transitions))
	for i, r := range def.Transitions {
		t, err := r.Transition()
		if err != nil {
			return nil, &ParseError{Field: fmt.Sprintf("transitions[%d]", i), Err: err}
		}
		transitions[i] = t
	}

	k := def.Ribbons
	if k == 0 && len(transitions) > 0 {
		k = transitions[0].Ribbons() - 1
	}
	g, err := domain.NewGraph(k)
	if err != nil {
		return nil, &ParseError{Field: "ribbons", Err: err}
	}

	for _, name := range def.States {
		if _, err := g.AddStateChecked(name); err != nil {
			return nil, &ParseError{Field: "states", Err: err}
		}
	}
	for i, r := range def.Transitions {
		from, err := g.AddStateChecked(r.From)
		if err != nil {
			return nil, &ParseError{Field: fmt.Sprintf("transitions[%d].from", i), Err: err}
		}
		to, err := g.AddStateChecked(r.To)
		if err != nil {
			return nil, &ParseError{Field: fmt.Sprintf("transitions[%d].to", i), Err: err}
		}
		if err := g.AppendTransition(from, transitions[i], to); err != nil {
			return nil, fmt.Errorf("transitions[%d] %s -> %s: %w", i, r.From, r.To, err)
		}
	}
	return g, nil
}

// FromGraph exports a graph. Transitions use the expanded form.
func FromGraph(g *domain.Graph) *Definition {
	def := &Definition{Ribbons: g.K(), Transitions: []Rule{}}
	states := g.States()
	for _, s := range states[domain.RejectingIndex+1:] {
		def.States = append(def.States, s.Name())
	}
	for _, s := range states {
		for _, t := range s.Transitions() {
			target, _ := t.Target()
			rule := Rule{
				From: s.Name(),
				To:   states[target].Name(),
				Move: t.Move().String(),
			}
			for _, sym := range t.Reads() {
				rule.Read = append(rule.Read, sym.String())
			}
			for _, w := range t.Writes() {
				rule.Write = append(rule.Write, Write{Symbol: w.Symbol.String(), Move: w.Move.String()})
			}
			def.Transitions = append(def.Transitions, rule)
		}
	}
	return def
}

// Encode writes the definition as YAML.
func Encode(w io.Writer, def *Definition) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(def); err != nil {
		return err
	}
	return enc.Close()
}
