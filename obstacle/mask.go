package obstacle

import (
	"errors"
	"fmt"

	"github.com/milk9111/gridpath/common"
	"github.com/milk9111/gridpath/grid"
)

var ErrMaskSize = errors.New("mask larger than grid")

// Mask marks cells from text rows: rows[z][x] is '#' for an obstructed cell.
// Rows and columns the mask does not cover stay open.
type Mask struct {
	cfg  grid.Config
	rows []string
}

func NewMask(cfg grid.Config, rows []string) (*Mask, error) {
	w, d := cfg.Dimensions()
	if len(rows) > d {
		return nil, fmt.Errorf("obstacle: mask has %d rows for %d cells: %w", len(rows), d, ErrMaskSize)
	}
	for z, row := range rows {
		if len(row) > w {
			return nil, fmt.Errorf("obstacle: mask row %d has %d columns for %d cells: %w", z, len(row), w, ErrMaskSize)
		}
	}
	return &Mask{cfg: cfg, rows: rows}, nil
}

func (m *Mask) Obstructed(p common.Vec3, _ float64) bool {
	x, z, ok := m.cfg.CellIndex(p)
	if !ok || z >= len(m.rows) || x >= len(m.rows[z]) {
		return false
	}
	return m.rows[z][x] == '#'
}

// Any reports an obstruction when any member does.
type Any []grid.Obstruction

func (a Any) Obstructed(p common.Vec3, radius float64) bool {
	for _, o := range a {
		if o != nil && o.Obstructed(p, radius) {
			return true
		}
	}
	return false
}
