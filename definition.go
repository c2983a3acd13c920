package gnfa

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Definition Serializable description of a GNFA.
//
//	states: [q0, q1, q2]
//	start: q0
//	accept: q2
//	transitions:
//	  - {from: q0, to: q1, label: a}
//	  - {from: q1, to: q1, label: b}
//	  - {from: q1, to: q2, label: c}
type Definition struct {
	States      []string               `yaml:"states"`
	Start       string                 `yaml:"start"`
	Accept      string                 `yaml:"accept"`
	Transitions []TransitionDefinition `yaml:"transitions,omitempty"`
}

type TransitionDefinition struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Label string `yaml:"label"`
}

func LoadDefinition(r io.Reader) (*Definition, error) {
	var d Definition
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *Definition) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}

// Build Creates the automaton and adds every transition in file order.
func (d *Definition) Build(opts ...Option) (*GNFA, error) {
	g, err := NewGNFA(d.States, d.Start, d.Accept, opts...)
	if err != nil {
		return nil, err
	}
	for i, t := range d.Transitions {
		if err := g.AddTransition(t.From, t.To, t.Label); err != nil {
			return nil, fmt.Errorf("transition %d: %w", i, err)
		}
	}
	return g, nil
}

// Definition Describes the present states and merged transitions of g.
func (g *GNFA) Definition() *Definition {
	d := &Definition{
		States: g.States(),
		Start:  g.Start(),
		Accept: g.Accept(),
	}
	for t := range g.Transitions() {
		d.Transitions = append(d.Transitions, TransitionDefinition{
			From:  t.From,
			To:    t.To,
			Label: t.Label.String(),
		})
	}
	return d
}
