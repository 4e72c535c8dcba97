package grid

import (
	"math"

	"github.com/milk9111/gridpath/common"
)

const NoParent = -1

// Cell is one square of the grid. X, Z, Index, World and Obstructed never
// change after construction; the remaining fields belong to whichever search
// last stamped the cell with its epoch.
type Cell struct {
	X          int
	Z          int
	Index      int
	World      common.Vec3
	Obstructed bool

	GCost     int
	HCost     int
	Parent    int
	HeapIndex int
	Epoch     uint64
}

func (c *Cell) FCost() int {
	return c.GCost + c.HCost
}

func (c *Cell) Walkable() bool {
	return !c.Obstructed
}

// Touch resets search state left over from an older search. It reports
// whether the cell was stale.
func (c *Cell) Touch(epoch uint64) bool {
	if c.Epoch == epoch {
		return false
	}
	c.Epoch = epoch
	c.GCost = math.MaxInt
	c.HCost = 0
	c.Parent = NoParent
	c.HeapIndex = -1
	return true
}
