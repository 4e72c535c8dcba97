package grid

import (
	"github.com/milk9111/gridpath/common"
)

// Obstruction reports whether a cell-sized region centered on point is blocked.
type Obstruction interface {
	Obstructed(point common.Vec3, radius float64) bool
}

type ObstructionFunc func(point common.Vec3, radius float64) bool

func (f ObstructionFunc) Obstructed(point common.Vec3, radius float64) bool {
	return f(point, radius)
}

type Grid struct {
	cfg        Config
	width      int
	depth      int
	bottomLeft common.Vec3
	cells      []Cell
}

// New builds the cell array and queries obstruction once per cell. A nil
// obstruction leaves every cell walkable.
func New(cfg Config, obstruction Obstruction) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w, d := cfg.Dimensions()
	g := &Grid{
		cfg:        cfg,
		width:      w,
		depth:      d,
		bottomLeft: cfg.BottomLeft(),
		cells:      make([]Cell, w*d),
	}

	for x := 0; x < w; x++ {
		for z := 0; z < d; z++ {
			idx := x*d + z
			world := cfg.CellCenter(x, z)
			blocked := false
			if obstruction != nil {
				blocked = obstruction.Obstructed(world, cfg.CellRadius)
			}
			g.cells[idx] = Cell{
				X:          x,
				Z:          z,
				Index:      idx,
				World:      world,
				Obstructed: blocked,
				Parent:     NoParent,
				HeapIndex:  -1,
			}
		}
	}

	return g, nil
}

func (g *Grid) Config() Config {
	return g.cfg
}

// Size returns the cell counts along X and Z.
func (g *Grid) Size() (int, int) {
	return g.width, g.depth
}

func (g *Grid) MaxSize() int {
	return len(g.cells)
}

func (g *Grid) InBounds(x, z int) bool {
	return x >= 0 && z >= 0 && x < g.width && z < g.depth
}

// Cell returns nil for out-of-bounds indices.
func (g *Grid) Cell(x, z int) *Cell {
	if !g.InBounds(x, z) {
		return nil
	}
	return &g.cells[x*g.depth+z]
}

func (g *Grid) CellAt(index int) *Cell {
	if index < 0 || index >= len(g.cells) {
		return nil
	}
	return &g.cells[index]
}

func (g *Grid) IsWalkable(x, z int) bool {
	c := g.Cell(x, z)
	return c != nil && !c.Obstructed
}

// CellFromWorldPoint clamps p into the grid and returns the nearest cell.
func (g *Grid) CellFromWorldPoint(p common.Vec3) *Cell {
	percentX := common.Clamp01((p.X - g.bottomLeft.X) / g.cfg.WorldWidth)
	percentZ := common.Clamp01((p.Z - g.bottomLeft.Z) / g.cfg.WorldDepth)

	x := common.RoundToInt(float64(g.width-1) * percentX)
	z := common.RoundToInt(float64(g.depth-1) * percentZ)
	return g.Cell(x, z)
}

// Neighbors returns the in-bounds cells around c, walkable or not, in a
// fixed order.
func (g *Grid) Neighbors(c *Cell) []*Cell {
	return g.AppendNeighbors(make([]*Cell, 0, 8), c)
}

func (g *Grid) AppendNeighbors(dst []*Cell, c *Cell) []*Cell {
	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			if dx == 0 && dz == 0 {
				continue
			}
			if n := g.Cell(c.X+dx, c.Z+dz); n != nil {
				dst = append(dst, n)
			}
		}
	}
	return dst
}

func (g *Grid) Each(fn func(c *Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

func (g *Grid) WalkableCount() int {
	count := 0
	for i := range g.cells {
		if !g.cells[i].Obstructed {
			count++
		}
	}
	return count
}
