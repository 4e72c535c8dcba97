package pathfinding

import (
	"sync"

	"golang.org/x/tools/container/intsets"

	"github.com/milk9111/gridpath/common"
	"github.com/milk9111/gridpath/grid"
)

// Engine searches one grid. Cells carry per-search state, so searches are
// serialised; concurrent FindPath calls queue on the engine's mutex.
type Engine struct {
	mu     sync.Mutex
	grid   *grid.Grid
	open   *OpenSet
	closed intsets.Sparse
	epoch  uint64

	neighbours []*grid.Cell
	jumps      []*grid.Cell
}

func NewEngine(g *grid.Grid) *Engine {
	return &Engine{
		grid:       g,
		open:       NewOpenSet(g.MaxSize()),
		neighbours: make([]*grid.Cell, 0, 8),
		jumps:      make([]*grid.Cell, 0, 8),
	}
}

func (e *Engine) Grid() *grid.Grid {
	return e.grid
}

// FindPath searches from the cell under start to the cell under end.
func (e *Engine) FindPath(start, end common.Vec3, algo Algorithm) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.search(e.grid.CellFromWorldPoint(start), e.grid.CellFromWorldPoint(end), algo)
}

func (e *Engine) search(start, target *grid.Cell, algo Algorithm) Result {
	if start.Obstructed {
		return failed(algo, ErrStartObstructed)
	}
	if target.Obstructed {
		return failed(algo, ErrTargetObstructed)
	}

	e.epoch++
	e.open.Reset()
	e.closed.Clear()

	start.Touch(e.epoch)
	start.GCost = 0
	start.HCost = Distance(start, target)

	res := Result{Algorithm: algo}
	if start == target {
		res.Success = true
		res.Waypoints = []common.Vec3{start.World}
		return res
	}

	scanner := jumpScanner{grid: e.grid, target: target}
	e.open.Push(start)

	for e.open.Len() > 0 {
		current := e.open.Pop()
		if current == target {
			return e.finish(res, start, target)
		}

		e.closed.Insert(current.Index)
		res.Expanded++
		res.Visited = append(res.Visited, current.World)

		candidates := e.grid.AppendNeighbors(e.neighbours[:0], current)
		if algo == JPS {
			candidates = scanner.pruneNeighbours(e.jumps[:0], candidates, current)
		}

		for _, n := range candidates {
			if n.Obstructed || e.closed.Has(n.Index) {
				continue
			}
			n.Touch(e.epoch)

			tentative := current.GCost + Distance(current, n)
			inOpen := e.open.Contains(n)
			if tentative < n.GCost || !inOpen {
				n.GCost = tentative
				n.HCost = Distance(n, target)
				n.Parent = current.Index
				if inOpen {
					e.open.Update(n)
				} else {
					e.open.Push(n)
				}
			}
		}
	}

	res.Err = ErrNoPath
	return res
}

func (e *Engine) finish(res Result, start, target *grid.Cell) Result {
	cells := e.retrace(start, target)
	if res.Algorithm == AStar {
		cells = simplify(cells)
	}
	if len(cells) == 0 {
		res.Err = ErrEmptyPath
		return res
	}

	res.Waypoints = make([]common.Vec3, len(cells))
	for i, c := range cells {
		res.Waypoints[i] = c.World
	}
	res.Success = true
	res.Cost = target.GCost
	return res
}

// retrace follows parent links from target back to start and returns the
// cells in start to target order.
func (e *Engine) retrace(start, target *grid.Cell) []*grid.Cell {
	var path []*grid.Cell
	for c := target; c != nil; c = e.grid.CellAt(c.Parent) {
		if c.Epoch != e.epoch || len(path) > e.grid.MaxSize() {
			return nil
		}
		path = append(path, c)
		if c == start {
			break
		}
	}
	if len(path) == 0 || path[len(path)-1] != start {
		return nil
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// simplify keeps the endpoints and every cell where the step direction
// changes.
func simplify(cells []*grid.Cell) []*grid.Cell {
	if len(cells) <= 2 {
		return cells
	}

	out := []*grid.Cell{cells[0]}
	for i := 1; i < len(cells)-1; i++ {
		inX, inZ := cells[i].X-cells[i-1].X, cells[i].Z-cells[i-1].Z
		outX, outZ := cells[i+1].X-cells[i].X, cells[i+1].Z-cells[i].Z
		if inX != outX || inZ != outZ {
			out = append(out, cells[i])
		}
	}
	return append(out, cells[len(cells)-1])
}
