package agent

import (
	"testing"

	"github.com/milk9111/gridpath/common"
)

func TestFollowerWalksPath(t *testing.T) {
	path := []common.Vec3{{X: 0}, {X: 2}, {X: 2, Z: 2}}
	f := NewFollower(common.Vec3{}, 2)
	f.OnPathFound(path, true)

	if !f.Following() {
		t.Fatalf("expected agent to follow the new path")
	}

	for i := 0; i < 20 && f.Following(); i++ {
		f.Update(0.25)
	}

	if f.Following() {
		t.Fatalf("expected agent to stop at the last waypoint")
	}
	if f.Position != path[len(path)-1] {
		t.Fatalf("expected agent at %v, got %v", path[len(path)-1], f.Position)
	}
	if f.Remaining() != nil {
		t.Fatalf("expected no remaining waypoints")
	}
}

func TestFollowerUpdateSteps(t *testing.T) {
	f := NewFollower(common.Vec3{}, 1)
	f.OnPathFound([]common.Vec3{{}, {X: 1}}, true)

	cases := []struct {
		name      string
		dt        float64
		wantX     float64
		following bool
	}{
		{"at_first_waypoint_moves_on", 0.5, 0.5, true},
		{"partial", 0.25, 0.75, true},
		{"does_not_overshoot", 1, 1, true},
		{"stops_on_next_update", 1, 1, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f.Update(c.dt)
			if f.Position.X != c.wantX {
				t.Fatalf("expected x=%v, got %v", c.wantX, f.Position.X)
			}
			if f.Following() != c.following {
				t.Fatalf("expected following=%v", c.following)
			}
		})
	}
}

func TestFollowerOnPathFound(t *testing.T) {
	f := NewFollower(common.Vec3{}, 1)
	first := []common.Vec3{{X: 5}, {X: 6}}
	f.OnPathFound(first, true)
	f.Update(1)

	cases := []struct {
		name    string
		path    []common.Vec3
		success bool
		want    []common.Vec3
	}{
		{"failure_keeps_path", []common.Vec3{{Z: 9}}, false, first},
		{"empty_keeps_path", nil, true, first},
		{"success_replaces", []common.Vec3{{Z: 1}, {Z: 2}}, true, []common.Vec3{{Z: 1}, {Z: 2}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f.OnPathFound(c.path, c.success)
			got := f.Path()
			if len(got) != len(c.want) {
				t.Fatalf("expected path %v, got %v", c.want, got)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Fatalf("expected path %v, got %v", c.want, got)
				}
			}
		})
	}

	if r := f.Remaining(); len(r) != 2 {
		t.Fatalf("a replaced path restarts at its first waypoint, got %v", r)
	}

	f.Teleport(common.Vec3{X: -3})
	if f.Following() || f.Position.X != -3 {
		t.Fatalf("teleport should stop the agent at the new position")
	}
}
