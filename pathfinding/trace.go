package pathfinding

import (
	"github.com/milk9111/gridpath/common"
	"github.com/milk9111/gridpath/grid"
)

// Trace expands waypoints into every cell the path passes through. Consecutive
// waypoints must lie on a shared row, column or diagonal, which holds for
// every path FindPath returns.
func Trace(g *grid.Grid, waypoints []common.Vec3) []*grid.Cell {
	if len(waypoints) == 0 {
		return nil
	}

	cells := []*grid.Cell{g.CellFromWorldPoint(waypoints[0])}
	for _, wp := range waypoints[1:] {
		from := cells[len(cells)-1]
		to := g.CellFromWorldPoint(wp)
		dx := common.Sign(to.X - from.X)
		dz := common.Sign(to.Z - from.Z)
		for x, z := from.X, from.Z; x != to.X || z != to.Z; {
			if x != to.X {
				x += dx
			}
			if z != to.Z {
				z += dz
			}
			cells = append(cells, g.Cell(x, z))
		}
	}
	return cells
}

// PathCost sums the step costs along a traced path.
func PathCost(cells []*grid.Cell) int {
	cost := 0
	for i := 1; i < len(cells); i++ {
		cost += Distance(cells[i-1], cells[i])
	}
	return cost
}
