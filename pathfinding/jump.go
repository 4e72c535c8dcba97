package pathfinding

import (
	"github.com/milk9111/gridpath/common"
	"github.com/milk9111/gridpath/grid"
)

type jumpScanner struct {
	grid   *grid.Grid
	target *grid.Cell
}

// jump walks from `from` in direction (dx, dz) and returns the first jump
// point, or nil if the walk leaves open ground. Diagonal steps probe both
// straight components, so nesting never goes deeper than one probe.
func (s jumpScanner) jump(from *grid.Cell, dx, dz int) *grid.Cell {
	x, z := from.X, from.Z
	for {
		nx, nz := x+dx, z+dz
		if !s.grid.IsWalkable(nx, nz) {
			return nil
		}
		next := s.grid.Cell(nx, nz)
		if next == s.target {
			return next
		}
		if s.forced(x, z, dx, dz) {
			return next
		}
		if dx != 0 && dz != 0 {
			if s.jump(next, dx, 0) != nil || s.jump(next, 0, dz) != nil {
				return next
			}
		}
		x, z = nx, nz
	}
}

// forced reports whether stepping from (x, z) by (dx, dz) lands on a cell
// with a neighbor that can only be reached optimally through it.
func (s jumpScanner) forced(x, z, dx, dz int) bool {
	w := s.grid.IsWalkable
	nx, nz := x+dx, z+dz

	switch {
	case dx != 0 && dz != 0:
		return !w(x, nz) || !w(nx, z)
	case dx != 0:
		return (!w(x, z+1) && w(nx, z+1)) || (!w(x, z-1) && w(nx, z-1)) ||
			(!w(nx, z+1) && w(nx+dx, z+1)) || (!w(nx, z-1) && w(nx+dx, z-1))
	case dz != 0:
		return (!w(x+1, z) && w(x+1, nz)) || (!w(x-1, z) && w(x-1, nz)) ||
			(!w(x+1, nz) && w(x+1, nz+dz)) || (!w(x-1, nz) && w(x-1, nz+dz))
	}
	return false
}

// pruneNeighbours replaces each grid neighbor of current with the jump
// point found in its direction, dropping directions that dead-end.
func (s jumpScanner) pruneNeighbours(dst []*grid.Cell, neighbours []*grid.Cell, current *grid.Cell) []*grid.Cell {
	for _, n := range neighbours {
		dx := common.Sign(n.X - current.X)
		dz := common.Sign(n.Z - current.Z)
		if jp := s.jump(current, dx, dz); jp != nil {
			dst = append(dst, jp)
		}
	}
	return dst
}
