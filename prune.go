package gnfa

import (
	"github.com/bits-and-blooms/bitset"
)

// Reachable Returns true if accept can be reached from start through the present transitions.
func (g *GNFA) Reachable() bool {
	return g.liveFromStart().Test(uint(g.accept))
}

func (g *GNFA) liveFromStart() *bitset.BitSet {
	return g.walk(g.start, g.table.Successors)
}

func (g *GNFA) liveToAccept() *bitset.BitSet {
	return g.walk(g.accept, g.table.Predecessors)
}

// walk Breadth first search from state over the neighbours returned by next.
func (g *GNFA) walk(state int, next func(int) []int) *bitset.BitSet {
	seen := bitset.New(uint(len(g.names)))
	workList := make([]int, 0)
	workList = append(workList, state)
	seen.Set(uint(state))

	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for _, dest := range next(s) {
			if !seen.Test(uint(dest)) {
				seen.Set(uint(dest))
				workList = append(workList, dest)
			}
		}
	}
	return seen
}

// prune Removes states that are not reachable from start or cannot reach accept. Such states only
// ever feed bypasses into other useless states, so dropping them leaves the start/accept label
// unchanged. Returns the removed states.
func (g *GNFA) prune() []int {
	live := g.liveFromStart().Intersection(g.liveToAccept())
	live.Set(uint(g.start))
	live.Set(uint(g.accept))

	dead := g.table.active.Difference(live)
	removed := make([]int, 0, dead.Count())
	for i, ok := dead.NextSet(0); ok; i, ok = dead.NextSet(i + 1) {
		g.table.RemoveState(int(i))
		removed = append(removed, int(i))
	}
	return removed
}
