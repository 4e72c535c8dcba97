package pathfinding

import (
	"testing"
)

func TestJumpScanner(t *testing.T) {
	cases := []struct {
		name     string
		rows     []string
		from     [2]int
		dir      [2]int
		target   [2]int
		want     [2]int
		wantNone bool
	}{
		{
			name:     "open_row_runs_off_grid",
			rows:     []string{".....", ".....", ".....", ".....", "....."},
			from:     [2]int{0, 2},
			dir:      [2]int{1, 0},
			target:   [2]int{0, 0},
			wantNone: true,
		},
		{
			name:   "reaches_target",
			rows:   []string{".....", ".....", ".....", ".....", "....."},
			from:   [2]int{0, 2},
			dir:    [2]int{1, 0},
			target: [2]int{3, 2},
			want:   [2]int{3, 2},
		},
		{
			name:     "blocked_step",
			rows:     []string{".....", ".....", ".#...", ".....", "....."},
			from:     [2]int{0, 2},
			dir:      [2]int{1, 0},
			target:   [2]int{4, 4},
			wantNone: true,
		},
		{
			name:   "wall_behind_opens_ahead",
			rows:   []string{".....", ".....", ".....", "#....", "....."},
			from:   [2]int{0, 2},
			dir:    [2]int{1, 0},
			target: [2]int{4, 4},
			want:   [2]int{1, 2},
		},
		{
			name:   "wall_beside_arrival_opens_beyond",
			rows:   []string{".....", ".....", ".....", "..#..", "....."},
			from:   [2]int{0, 2},
			dir:    [2]int{1, 0},
			target: [2]int{4, 0},
			want:   [2]int{2, 2},
		},
		{
			name:   "vertical_wall_beside_arrival",
			rows:   []string{".....", ".....", "...#.", ".....", "....."},
			from:   [2]int{2, 0},
			dir:    [2]int{0, 1},
			target: [2]int{0, 4},
			want:   [2]int{2, 2},
		},
		{
			name:   "diagonal_corner_blocked",
			rows:   []string{".#...", ".....", ".....", ".....", "....."},
			from:   [2]int{0, 0},
			dir:    [2]int{1, 1},
			target: [2]int{0, 4},
			want:   [2]int{1, 1},
		},
		{
			name:     "diagonal_into_obstacle",
			rows:     []string{".....", ".#...", ".....", ".....", "....."},
			from:     [2]int{0, 0},
			dir:      [2]int{1, 1},
			target:   [2]int{4, 4},
			wantNone: true,
		},
		{
			name:   "diagonal_stops_when_probe_hits_target",
			rows:   []string{".....", ".....", ".....", ".....", "....."},
			from:   [2]int{0, 0},
			dir:    [2]int{1, 1},
			target: [2]int{4, 2},
			want:   [2]int{2, 2},
		},
		{
			name:   "diagonal_open_reaches_target",
			rows:   []string{".....", ".....", ".....", ".....", "....."},
			from:   [2]int{0, 0},
			dir:    [2]int{1, 1},
			target: [2]int{4, 4},
			want:   [2]int{4, 4},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := gridFromRows(t, c.rows...)
			s := jumpScanner{grid: g, target: g.Cell(c.target[0], c.target[1])}
			got := s.jump(g.Cell(c.from[0], c.from[1]), c.dir[0], c.dir[1])
			if c.wantNone {
				if got != nil {
					t.Fatalf("expected no jump point, got (%d,%d)", got.X, got.Z)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected jump point %v, got none", c.want)
			}
			if got.X != c.want[0] || got.Z != c.want[1] {
				t.Fatalf("expected jump point %v, got (%d,%d)", c.want, got.X, got.Z)
			}
		})
	}
}

func TestPruneNeighboursDropsDeadEnds(t *testing.T) {
	g := gridFromRows(t,
		".....",
		".....",
		".....",
		".....",
		".....",
	)
	start := g.Cell(0, 0)
	s := jumpScanner{grid: g, target: g.Cell(4, 4)}

	got := s.pruneNeighbours(nil, g.Neighbors(start), start)
	if len(got) != 1 {
		t.Fatalf("expected a single jump point, got %d", len(got))
	}
	if got[0] != s.target {
		t.Fatalf("expected target as jump point, got (%d,%d)", got[0].X, got[0].Z)
	}
}
