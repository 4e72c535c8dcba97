package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/milk9111/gridpath/common"
	"github.com/milk9111/gridpath/grid"
	"github.com/milk9111/gridpath/pathfinding"
	"github.com/milk9111/gridpath/request"
)

func testGrid(t *testing.T, rows ...string) *grid.Grid {
	t.Helper()
	cfg := grid.Config{
		WorldWidth: float64(len(rows[0])),
		WorldDepth: float64(len(rows)),
		CellRadius: 0.5,
	}
	g, err := grid.New(cfg, grid.ObstructionFunc(func(p common.Vec3, _ float64) bool {
		x, z, ok := cfg.CellIndex(p)
		return ok && rows[z][x] == '#'
	}))
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	return g
}

func TestParsePoint(t *testing.T) {
	cases := []struct {
		in      string
		want    common.Vec3
		wantErr bool
	}{
		{"1,2", common.Vec3{X: 1, Y: 3, Z: 2}, false},
		{" -4.5 , 0.25 ", common.Vec3{X: -4.5, Y: 3, Z: 0.25}, false},
		{"1", common.Vec3{}, true},
		{"1,2,3", common.Vec3{}, true},
		{"a,2", common.Vec3{}, true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := parsePoint(c.in, 3)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}

	if _, err := parsePoint("1;2", 0); !errors.Is(err, errBadPoint) {
		t.Fatalf("expected errBadPoint, got %v", err)
	}
}

func TestPointOrDefault(t *testing.T) {
	def := common.Vec3{X: 7, Y: 1, Z: 8}
	got, err := pointOrDefault("  ", def)
	if err != nil || got != def {
		t.Fatalf("expected default %v, got %v (%v)", def, got, err)
	}
	got, err = pointOrDefault("2,3", def)
	if err != nil || got != (common.Vec3{X: 2, Y: 1, Z: 3}) {
		t.Fatalf("expected (2,1,3), got %v (%v)", got, err)
	}
}

func TestParseAlgorithms(t *testing.T) {
	algos, err := parseAlgorithms("Both")
	if err != nil || len(algos) != 2 {
		t.Fatalf("expected both algorithms, got %v (%v)", algos, err)
	}
	algos, err = parseAlgorithms("jps")
	if err != nil || len(algos) != 1 || algos[0] != pathfinding.JPS {
		t.Fatalf("expected jps, got %v (%v)", algos, err)
	}
	if _, err := parseAlgorithms("dijkstra"); !errors.Is(err, pathfinding.ErrUnknownAlgorithm) {
		t.Fatalf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestSearchAndRender(t *testing.T) {
	g := testGrid(t,
		"...",
		"##.",
		"...",
	)
	start := g.Cell(0, 0).World
	goal := g.Cell(0, 2).World

	responses := search(context.Background(), request.NewManager(pathfinding.NewEngine(g)), start, goal, pathfinding.Algorithms)
	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}
	for _, resp := range responses {
		if !resp.Success || resp.Result.Cost != 48 {
			t.Fatalf("%s: expected cost 48, got %+v", resp.Result.Algorithm, resp.Result)
		}
	}

	var b strings.Builder
	renderASCII(&b, g, start, goal, responses[0].Waypoints)
	want := "G*.\n##*\nS*.\n"
	if b.String() != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, b.String())
	}

	b.Reset()
	printResult(&b, responses[1].Result)
	if !strings.HasPrefix(b.String(), "jps: ") || !strings.Contains(b.String(), "cost 48") {
		t.Fatalf("unexpected summary %q", b.String())
	}
}
