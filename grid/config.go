package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/gridpath/common"
)

var ErrInvalidConfig = errors.New("invalid grid config")

// Config describes the world area a grid covers. The grid lies on the XZ
// plane centered on Center.
type Config struct {
	Center     common.Vec3
	WorldWidth float64
	WorldDepth float64
	CellRadius float64
}

func (c Config) Validate() error {
	if c.WorldWidth <= 0 || c.WorldDepth <= 0 {
		return fmt.Errorf("grid: world size %gx%g: %w", c.WorldWidth, c.WorldDepth, ErrInvalidConfig)
	}
	if c.CellRadius <= 0 {
		return fmt.Errorf("grid: cell radius %g: %w", c.CellRadius, ErrInvalidConfig)
	}
	w, d := c.Dimensions()
	if w < 1 || d < 1 {
		return fmt.Errorf("grid: %dx%d cells: %w", w, d, ErrInvalidConfig)
	}
	return nil
}

func (c Config) CellDiameter() float64 {
	return c.CellRadius * 2
}

// Dimensions returns the number of cells along X and Z.
func (c Config) Dimensions() (int, int) {
	diameter := c.CellDiameter()
	if diameter <= 0 {
		return 0, 0
	}
	return common.RoundToInt(c.WorldWidth / diameter), common.RoundToInt(c.WorldDepth / diameter)
}

func (c Config) BottomLeft() common.Vec3 {
	return common.Vec3{
		X: c.Center.X - c.WorldWidth/2,
		Y: c.Center.Y,
		Z: c.Center.Z - c.WorldDepth/2,
	}
}

func (c Config) CellCenter(x, z int) common.Vec3 {
	bl := c.BottomLeft()
	diameter := c.CellDiameter()
	return common.Vec3{
		X: bl.X + float64(x)*diameter + c.CellRadius,
		Y: bl.Y,
		Z: bl.Z + float64(z)*diameter + c.CellRadius,
	}
}

// CellIndex maps p to the cell whose square contains it. ok is false when p
// falls outside the grid.
func (c Config) CellIndex(p common.Vec3) (x, z int, ok bool) {
	bl := c.BottomLeft()
	diameter := c.CellDiameter()
	x = int(math.Floor((p.X - bl.X) / diameter))
	z = int(math.Floor((p.Z - bl.Z) / diameter))
	w, d := c.Dimensions()
	return x, z, x >= 0 && z >= 0 && x < w && z < d
}
