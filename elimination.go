package gnfa

import (
	"fmt"

	"go.uber.org/zap"
)

// eliminate Removes state from the table, folding every path p -> state -> q into (p, q) as
// p.(loop)*.q, merged by union with what (p, q) already holds. Returns the table and the number of
// bypasses written.
func eliminate(t *TransitionTable, state int) (*TransitionTable, int) {
	// Star of an absent self-loop is the empty fragment, so it drops out of the concatenation.
	loop := Star(t.Get(state, state))

	bypasses := 0
	for _, p := range t.Predecessors(state) {
		if p == state {
			continue
		}
		in := t.Get(p, state)
		for _, q := range t.Successors(state) {
			if q == state {
				continue
			}
			bypass := Concat(in, loop, t.Get(state, q))
			if bypass.IsNoPath() {
				continue
			}
			t.Set(p, q, bypass)
			bypasses++
		}
	}

	t.RemoveState(state)
	return t, bypasses
}

// eliminationOrder Resolves the configured order into state indices. Listed states come first,
// the remaining non-terminal states follow in ascending index order.
func (g *GNFA) eliminationOrder() ([]int, error) {
	order := make([]int, 0, g.table.GetNumStates())
	listed := make(map[int]struct{}, len(g.opts.order))

	for _, name := range g.opts.order {
		i, err := g.lookup(name)
		if err != nil {
			return nil, fmt.Errorf("elimination order: %w", err)
		}
		if i == g.start || i == g.accept {
			return nil, fmt.Errorf("%w: elimination order names terminal state %q", ErrInvalidConstruction, name)
		}
		if _, ok := listed[i]; ok {
			return nil, fmt.Errorf("elimination order: %w: %q", ErrDuplicateState, name)
		}
		listed[i] = struct{}{}
		order = append(order, i)
	}

	g.table.Each(func(state int) {
		if state == g.start || state == g.accept {
			return
		}
		if _, ok := listed[state]; !ok {
			order = append(order, state)
		}
	})
	return order, nil
}

// ConvertToRegex Eliminates every state other than start and accept and returns the label left
// between them. A NoPath result means the accepted language is empty; it is not an error.
// When start and accept are the same state the result is the star of its self-loop.
//
// Worst case the expression grows exponentially with the number of states.
func (g *GNFA) ConvertToRegex() (Label, error) {
	order, err := g.eliminationOrder()
	if err != nil {
		return NoPath, err
	}

	logger := g.opts.logger
	if g.opts.prune {
		for _, state := range g.prune() {
			logger.Debug("pruned state", zap.String("state", g.names[state]))
		}
	}

	table := g.table
	for _, state := range order {
		if !table.IsActive(state) {
			// pruned
			continue
		}
		var bypasses int
		table, bypasses = eliminate(table, state)
		logger.Debug("eliminated state",
			zap.String("state", g.names[state]),
			zap.Int("bypasses", bypasses),
			zap.Int("remaining", table.GetNumStates()))
	}
	g.table = table

	var result Label
	if g.start == g.accept {
		if loop := table.Get(g.start, g.start); !loop.IsNoPath() {
			result = Star(loop)
		}
	} else {
		result = table.Get(g.start, g.accept)
	}

	logger.Debug("converted",
		zap.Bool("noPath", result.IsNoPath()),
		zap.Int("length", len(result.expr)))
	return result, nil
}
