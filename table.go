package gnfa

import (
	"github.com/bits-and-blooms/bitset"
)

// TransitionTable Dense n x n table of labels keyed by construction-time state index. A state is
// present while its bit is set in active; removing a state clears its row and column.
type TransitionTable struct {
	// cells[from][to] holds the merged label for the ordered pair, NoPath if absent.
	cells [][]Label

	active *bitset.BitSet
}

func NewTransitionTable(numStates int) *TransitionTable {
	cells := make([][]Label, numStates)
	for i := range cells {
		cells[i] = make([]Label, numStates)
	}
	active := bitset.New(uint(numStates))
	for i := 0; i < numStates; i++ {
		active.Set(uint(i))
	}
	return &TransitionTable{
		cells:  cells,
		active: active,
	}
}

// GetNumStates How many states are still present.
func (t *TransitionTable) GetNumStates() int {
	return int(t.active.Count())
}

// IsActive Returns true if the state has not been removed.
func (t *TransitionTable) IsActive(state int) bool {
	return state >= 0 && state < len(t.cells) && t.active.Test(uint(state))
}

// Set Merges label into (from, to): (existing|label) when a label is already stored, label otherwise.
// Both states must be present.
func (t *TransitionTable) Set(from, to int, label Label) {
	t.cells[from][to] = Union(t.cells[from][to], label)
}

// Get Returns the label stored for (from, to), or NoPath.
func (t *TransitionTable) Get(from, to int) Label {
	if !t.IsActive(from) || !t.IsActive(to) {
		return NoPath
	}
	return t.cells[from][to]
}

// RemoveState Drops the row and the column of state.
func (t *TransitionTable) RemoveState(state int) {
	if !t.IsActive(state) {
		return
	}
	for i := range t.cells {
		t.cells[i][state] = NoPath
		t.cells[state][i] = NoPath
	}
	t.active.Clear(uint(state))
}

// Each Calls fn for every present state in ascending index order.
func (t *TransitionTable) Each(fn func(state int)) {
	for i, ok := t.active.NextSet(0); ok; i, ok = t.active.NextSet(i + 1) {
		fn(int(i))
	}
}

// Successors Returns the present states reachable through one transition leaving state.
func (t *TransitionTable) Successors(state int) []int {
	res := make([]int, 0)
	t.Each(func(to int) {
		if !t.cells[state][to].IsNoPath() {
			res = append(res, to)
		}
	})
	return res
}

// Predecessors Returns the present states with a transition into state.
func (t *TransitionTable) Predecessors(state int) []int {
	res := make([]int, 0)
	t.Each(func(from int) {
		if !t.cells[from][state].IsNoPath() {
			res = append(res, from)
		}
	})
	return res
}

func (t *TransitionTable) Clone() *TransitionTable {
	cells := make([][]Label, len(t.cells))
	for i, row := range t.cells {
		cells[i] = append([]Label(nil), row...)
	}
	return &TransitionTable{
		cells:  cells,
		active: t.active.Clone(),
	}
}
