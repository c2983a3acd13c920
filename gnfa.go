package gnfa

import (
	"fmt"
	"iter"
)

// GNFA Generalized nondeterministic finite automaton: transitions carry regular-expression fragments
// instead of single symbols. States are named by the caller and assigned dense indices in the order
// they were given to NewGNFA; that order also fixes the default elimination order.
//
// Conversion is destructive: ConvertToRegex eliminates every state other than start and accept. Use
// Clone to keep the original automaton.
type GNFA struct {
	names  []string
	index  map[string]int
	start  int
	accept int
	table  *TransitionTable
	opts   *options
}

// Transition A single present (from, to) cell of the table.
type Transition struct {
	From  string
	To    string
	Label Label
}

// NewGNFA Creates an automaton over states with the given start and accept states. States must be
// unique and both start and accept must be among them.
func NewGNFA(states []string, start, accept string, opts ...Option) (*GNFA, error) {
	index := make(map[string]int, len(states))
	for i, s := range states {
		if _, ok := index[s]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateState, s)
		}
		index[s] = i
	}

	startIdx, ok := index[start]
	if !ok {
		return nil, fmt.Errorf("%w: start state %q is not a state", ErrInvalidConstruction, start)
	}
	acceptIdx, ok := index[accept]
	if !ok {
		return nil, fmt.Errorf("%w: accept state %q is not a state", ErrInvalidConstruction, accept)
	}

	return &GNFA{
		names:  append([]string(nil), states...),
		index:  index,
		start:  startIdx,
		accept: acceptIdx,
		table:  NewTransitionTable(len(states)),
		opts:   newOptions(opts...),
	}, nil
}

func (g *GNFA) lookup(state string) (int, error) {
	i, ok := g.index[state]
	if !ok || !g.table.IsActive(i) {
		return -1, fmt.Errorf("%w: %q", ErrUnknownState, state)
	}
	return i, nil
}

// AddTransition Adds a transition labeled with the fragment label. A second label for the same
// ordered pair is merged as (existing|label). Both states must be current members.
func (g *GNFA) AddTransition(from, to, label string) error {
	f, err := g.lookup(from)
	if err != nil {
		return err
	}
	t, err := g.lookup(to)
	if err != nil {
		return err
	}
	g.table.Set(f, t, NewLabel(label))
	return nil
}

// Transition Returns the label currently stored for (from, to).
func (g *GNFA) Transition(from, to string) (Label, error) {
	f, err := g.lookup(from)
	if err != nil {
		return NoPath, err
	}
	t, err := g.lookup(to)
	if err != nil {
		return NoPath, err
	}
	return g.table.Get(f, t), nil
}

// Transitions Iterates the present transitions, row by row in construction order.
func (g *GNFA) Transitions() iter.Seq[Transition] {
	return func(yield func(Transition) bool) {
		for _, from := range g.activeStates() {
			for _, to := range g.table.Successors(from) {
				t := Transition{
					From:  g.names[from],
					To:    g.names[to],
					Label: g.table.Get(from, to),
				}
				if !yield(t) {
					return
				}
			}
		}
	}
}

// States Returns the states that have not been eliminated, in construction order.
func (g *GNFA) States() []string {
	active := g.activeStates()
	res := make([]string, 0, len(active))
	for _, s := range active {
		res = append(res, g.names[s])
	}
	return res
}

func (g *GNFA) activeStates() []int {
	res := make([]int, 0, g.table.GetNumStates())
	g.table.Each(func(state int) {
		res = append(res, state)
	})
	return res
}

func (g *GNFA) Start() string {
	return g.names[g.start]
}

func (g *GNFA) Accept() string {
	return g.names[g.accept]
}

// Clone Deep-copies the automaton, including its options.
func (g *GNFA) Clone() *GNFA {
	o := *g.opts
	o.order = append([]string(nil), g.opts.order...)
	return &GNFA{
		names:  g.names,
		index:  g.index,
		start:  g.start,
		accept: g.accept,
		table:  g.table.Clone(),
		opts:   &o,
	}
}
