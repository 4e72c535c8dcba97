package pathfinding

import (
	"github.com/milk9111/gridpath/common"
	"github.com/milk9111/gridpath/grid"
)

const (
	StraightCost = 10
	DiagonalCost = 14
)

// Distance is the octile distance between two cells in cost units. It is
// exact for any pair joined by a straight or diagonal run of open cells.
func Distance(a, b *grid.Cell) int {
	dx := common.Abs(a.X - b.X)
	dz := common.Abs(a.Z - b.Z)
	if dx > dz {
		return DiagonalCost*dz + StraightCost*(dx-dz)
	}
	return DiagonalCost*dx + StraightCost*(dz-dx)
}
