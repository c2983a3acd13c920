package gnfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionTable(t *testing.T) {
	t.Run("SetMergesByUnion", func(t *testing.T) {
		table := NewTransitionTable(2)
		table.Set(0, 1, NewLabel("x"))
		assert.Equal(t, NewLabel("x"), table.Get(0, 1))
		table.Set(0, 1, NewLabel("y"))
		assert.Equal(t, NewLabel("(x|y)"), table.Get(0, 1))
		table.Set(0, 1, NewLabel("z"))
		assert.Equal(t, NewLabel("((x|y)|z)"), table.Get(0, 1))
	})

	t.Run("SameFragmentTwice", func(t *testing.T) {
		table := NewTransitionTable(2)
		table.Set(1, 1, NewLabel("x"))
		table.Set(1, 1, NewLabel("x"))
		assert.Equal(t, NewLabel("(x|x)"), table.Get(1, 1))
	})

	t.Run("AbsentIsNoPath", func(t *testing.T) {
		table := NewTransitionTable(2)
		assert.True(t, table.Get(0, 1).IsNoPath())
		assert.True(t, table.Get(5, 0).IsNoPath())
	})

	t.Run("RemoveState", func(t *testing.T) {
		table := NewTransitionTable(3)
		table.Set(0, 1, NewLabel("a"))
		table.Set(1, 2, NewLabel("b"))
		table.Set(1, 1, NewLabel("c"))
		table.Set(0, 2, NewLabel("d"))
		assert.Equal(t, 3, table.GetNumStates())

		table.RemoveState(1)
		assert.Equal(t, 2, table.GetNumStates())
		assert.False(t, table.IsActive(1))
		assert.True(t, table.Get(0, 1).IsNoPath())
		assert.True(t, table.Get(1, 2).IsNoPath())
		assert.Equal(t, NewLabel("d"), table.Get(0, 2))
		assert.Equal(t, []int{2}, table.Successors(0))
		assert.Equal(t, []int{0}, table.Predecessors(2))

		// removing twice is a no-op
		table.RemoveState(1)
		assert.Equal(t, 2, table.GetNumStates())
	})

	t.Run("CloneIsIndependent", func(t *testing.T) {
		table := NewTransitionTable(2)
		table.Set(0, 1, NewLabel("a"))
		c := table.Clone()
		c.Set(0, 1, NewLabel("b"))
		c.RemoveState(0)

		assert.Equal(t, NewLabel("a"), table.Get(0, 1))
		assert.True(t, table.IsActive(0))
		assert.False(t, c.IsActive(0))
	})
}

func TestEliminate(t *testing.T) {
	t.Run("SelfLoopAbsorbed", func(t *testing.T) {
		table := NewTransitionTable(3)
		table.Set(0, 1, NewLabel("a"))
		table.Set(1, 1, NewLabel("x"))
		table.Set(1, 2, NewLabel("b"))

		table, n := eliminate(table, 1)
		assert.Equal(t, 1, n)
		assert.Equal(t, NewLabel("a(x)*b"), table.Get(0, 2))
	})

	t.Run("BypassMergedWithDirectPath", func(t *testing.T) {
		table := NewTransitionTable(3)
		table.Set(0, 2, NewLabel("a"))
		table.Set(0, 1, NewLabel("p"))
		table.Set(1, 2, NewLabel("q"))

		table, _ = eliminate(table, 1)
		assert.Equal(t, NewLabel("(a|pq)"), table.Get(0, 2))
	})

	t.Run("BypassBecomesSelfLoop", func(t *testing.T) {
		table := NewTransitionTable(2)
		table.Set(0, 1, NewLabel("a"))
		table.Set(1, 0, NewLabel("b"))

		table, n := eliminate(table, 1)
		assert.Equal(t, 1, n)
		assert.Equal(t, NewLabel("ab"), table.Get(0, 0))
	})

	t.Run("NoOutgoingPath", func(t *testing.T) {
		table := NewTransitionTable(3)
		table.Set(0, 1, NewLabel("a"))
		table.Set(1, 1, NewLabel("x"))

		table, n := eliminate(table, 1)
		assert.Equal(t, 0, n)
		assert.True(t, table.Get(0, 2).IsNoPath())
		assert.True(t, table.Get(0, 0).IsNoPath())
	})
}
