package planner

import (
	"container/heap"
	"slices"

	"github.com/vandriyan/autosnake/internal/core"
)

// AStar is a best-first shortest-path search over the free cells of the
// grid, using the Manhattan distance heuristic. On a 4-connected
// uniform-cost grid the heuristic is admissible and consistent, so the
// first completed route is shortest in step count.
type AStar struct{}

func init() {
	Register("astar", "A* shortest path with Manhattan heuristic (default)", func() Planner {
		return &AStar{}
	})
}

// ID returns the planner identifier.
func (p *AStar) ID() string {
	return "astar"
}

// frontierItem is one entry of the open set.
type frontierItem struct {
	cell     core.Cell
	priority int // cost so far + heuristic
	seq      uint64
}

// frontier is a min-heap ordered by priority, with ties broken by
// insertion sequence. The stable tie-break keeps the search deterministic:
// equal-priority cells expand in discovery order, which itself follows the
// fixed +x, -x, +y, -y neighbor order.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(frontierItem))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// FindPath runs the search from start to end over cells not present in occ.
// The result includes both endpoints; nil means the target is unreachable
// this tick. Complexity is O(E log V) over the free subgraph; the search is
// re-run in full every tick because the occupancy changes every tick.
func (p *AStar) FindPath(start, end core.Cell, b core.Bounds, occ Occupancy) []core.Cell {
	if start == end {
		return []core.Cell{start}
	}

	var seq uint64
	open := &frontier{{cell: start, priority: core.Manhattan(start, end)}}
	heap.Init(open)

	cameFrom := make(map[core.Cell]core.Cell)
	costSoFar := map[core.Cell]int{start: 0}

	for open.Len() > 0 {
		current := heap.Pop(open).(frontierItem).cell
		if current == end {
			break
		}

		for _, next := range current.Neighbors() {
			if !b.Contains(next) {
				continue
			}
			// The end cell is always eligible: the target is food-only,
			// never body, so the occupancy check does not apply to it.
			if next != end && occ.Contains(next) {
				continue
			}

			newCost := costSoFar[current] + 1
			if old, seen := costSoFar[next]; seen && newCost >= old {
				continue
			}
			costSoFar[next] = newCost
			cameFrom[next] = current
			seq++
			heap.Push(open, frontierItem{
				cell:     next,
				priority: newCost + core.Manhattan(next, end),
				seq:      seq,
			})
		}
	}

	if _, ok := cameFrom[end]; !ok {
		return nil
	}

	path := []core.Cell{end}
	for c := end; c != start; {
		c = cameFrom[c]
		path = append(path, c)
	}
	slices.Reverse(path)
	return path
}
