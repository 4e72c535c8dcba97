package grid

import (
	"errors"
	"testing"

	"github.com/zyedidia/generic/mapset"

	"github.com/milk9111/gridpath/common"
)

func openGrid(t *testing.T, width, depth, radius float64) *Grid {
	t.Helper()
	g, err := New(Config{WorldWidth: width, WorldDepth: depth, CellRadius: radius}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestConfigDimensions(t *testing.T) {
	cases := []struct {
		name   string
		width  float64
		depth  float64
		radius float64
		wantW  int
		wantD  int
	}{
		{"unit_cells", 10, 10, 0.5, 10, 10},
		{"half_rounds_down_to_even", 5, 5, 1, 2, 2},
		{"half_rounds_up_to_even", 7, 3, 1, 4, 2},
		{"rectangular", 20, 8, 1, 10, 4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := Config{WorldWidth: c.width, WorldDepth: c.depth, CellRadius: c.radius}
			w, d := cfg.Dimensions()
			if w != c.wantW || d != c.wantD {
				t.Fatalf("expected %dx%d, got %dx%d", c.wantW, c.wantD, w, d)
			}
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"zero_width", Config{WorldWidth: 0, WorldDepth: 5, CellRadius: 1}},
		{"negative_depth", Config{WorldWidth: 5, WorldDepth: -1, CellRadius: 1}},
		{"zero_radius", Config{WorldWidth: 5, WorldDepth: 5, CellRadius: 0}},
		{"no_cells", Config{WorldWidth: 1, WorldDepth: 1, CellRadius: 2}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := New(c.cfg, nil); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestNewQueriesObstructionOncePerCell(t *testing.T) {
	calls := make(map[common.Vec3]int)
	obstruction := ObstructionFunc(func(p common.Vec3, radius float64) bool {
		if radius != 0.5 {
			t.Fatalf("expected radius 0.5, got %v", radius)
		}
		calls[p]++
		return p.X > 0 && p.Z > 0
	})

	g, err := New(Config{WorldWidth: 4, WorldDepth: 6, CellRadius: 0.5}, obstruction)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.MaxSize() != 24 {
		t.Fatalf("expected 24 cells, got %d", g.MaxSize())
	}
	if len(calls) != g.MaxSize() {
		t.Fatalf("expected %d distinct queries, got %d", g.MaxSize(), len(calls))
	}
	for p, n := range calls {
		if n != 1 {
			t.Fatalf("point %+v queried %d times", p, n)
		}
	}

	// two columns with x > 0, three rows with z > 0
	if got := g.WalkableCount(); got != 24-6 {
		t.Fatalf("expected 18 walkable cells, got %d", got)
	}
}

func TestCellLayout(t *testing.T) {
	g, err := New(Config{Center: common.Vec3{X: 10, Y: 2, Z: -4}, WorldWidth: 5, WorldDepth: 3, CellRadius: 0.5}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	w, d := g.Size()
	g.Each(func(c *Cell) {
		if c.Index != c.X*d+c.Z {
			t.Fatalf("cell (%d,%d) has index %d", c.X, c.Z, c.Index)
		}
		if g.CellAt(c.Index) != c {
			t.Fatalf("CellAt(%d) does not return cell (%d,%d)", c.Index, c.X, c.Z)
		}
		if c.X < 0 || c.X >= w || c.Z < 0 || c.Z >= d {
			t.Fatalf("cell (%d,%d) out of %dx%d", c.X, c.Z, w, d)
		}
	})

	first := g.Cell(0, 0)
	want := common.Vec3{X: 8, Y: 2, Z: -5}
	if first.World != want {
		t.Fatalf("expected first cell at %+v, got %+v", want, first.World)
	}
	if g.Cell(w, 0) != nil || g.Cell(0, -1) != nil {
		t.Fatalf("Cell should return nil out of bounds")
	}
	if g.CellAt(-1) != nil || g.CellAt(g.MaxSize()) != nil {
		t.Fatalf("CellAt should return nil out of range")
	}
}

func TestCellFromWorldPoint(t *testing.T) {
	g := openGrid(t, 5, 5, 0.5)

	cases := []struct {
		name  string
		point common.Vec3
		wantX int
		wantZ int
	}{
		{"center", common.Vec3{}, 2, 2},
		{"clamped_low", common.Vec3{X: -100, Z: -100}, 0, 0},
		{"clamped_high", common.Vec3{X: 100, Z: 100}, 4, 4},
		{"near_corner", common.Vec3{X: -2, Z: 2}, 0, 4},
		{"cell_center", common.Vec3{X: 1, Z: -1}, 3, 1},
		{"ignores_height", common.Vec3{X: 1, Y: 50, Z: -1}, 3, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cell := g.CellFromWorldPoint(c.point)
			if cell == nil {
				t.Fatalf("expected a cell")
			}
			if cell.X != c.wantX || cell.Z != c.wantZ {
				t.Fatalf("expected (%d,%d), got (%d,%d)", c.wantX, c.wantZ, cell.X, cell.Z)
			}
		})
	}
}

func TestNeighbors(t *testing.T) {
	g := openGrid(t, 4, 3, 0.5)

	cases := []struct {
		name string
		x, z int
		want int
	}{
		{"corner", 0, 0, 3},
		{"far_corner", 3, 2, 3},
		{"edge", 1, 0, 5},
		{"side", 0, 1, 5},
		{"interior", 1, 1, 8},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cell := g.Cell(c.x, c.z)
			ns := g.Neighbors(cell)
			if len(ns) != c.want {
				t.Fatalf("expected %d neighbors, got %d", c.want, len(ns))
			}
			seen := mapset.New[int]()
			for _, n := range ns {
				if seen.Has(n.Index) {
					t.Fatalf("duplicate neighbor (%d,%d)", n.X, n.Z)
				}
				seen.Put(n.Index)
				if n == cell {
					t.Fatalf("cell listed as its own neighbor")
				}
				if common.Abs(n.X-cell.X) > 1 || common.Abs(n.Z-cell.Z) > 1 {
					t.Fatalf("(%d,%d) is not adjacent to (%d,%d)", n.X, n.Z, cell.X, cell.Z)
				}
			}
		})
	}

	t.Run("fixed_order", func(t *testing.T) {
		ns := g.Neighbors(g.Cell(1, 1))
		want := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
		for i, n := range ns {
			if n.X != want[i][0] || n.Z != want[i][1] {
				t.Fatalf("neighbor %d: expected %v, got (%d,%d)", i, want[i], n.X, n.Z)
			}
		}
	})
}

func TestIsWalkable(t *testing.T) {
	g, err := New(Config{WorldWidth: 3, WorldDepth: 3, CellRadius: 0.5}, ObstructionFunc(func(p common.Vec3, _ float64) bool {
		return p.X == 0 && p.Z == 0
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cases := []struct {
		name string
		x, z int
		want bool
	}{
		{"open", 0, 0, true},
		{"blocked_center", 1, 1, false},
		{"out_left", -1, 0, false},
		{"out_far", 3, 3, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := g.IsWalkable(c.x, c.z); got != c.want {
				t.Fatalf("IsWalkable(%d,%d) = %v, want %v", c.x, c.z, got, c.want)
			}
		})
	}
}

func TestCellTouch(t *testing.T) {
	g := openGrid(t, 2, 2, 0.5)
	c := g.Cell(1, 1)
	c.GCost = 7
	c.Parent = 0

	if !c.Touch(1) {
		t.Fatalf("first touch of a new epoch should report stale state")
	}
	if c.Parent != NoParent || c.HeapIndex != -1 {
		t.Fatalf("stale state not reset: %+v", c)
	}
	c.GCost = 3
	if c.Touch(1) {
		t.Fatalf("second touch in the same epoch should keep state")
	}
	if c.GCost != 3 {
		t.Fatalf("expected GCost 3, got %d", c.GCost)
	}
}
