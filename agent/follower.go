package agent

import (
	"slices"

	"github.com/milk9111/gridpath/common"
)

// Follower walks a waypoint list at a fixed speed.
type Follower struct {
	Position common.Vec3
	Speed    float64

	path      []common.Vec3
	index     int
	following bool
}

func NewFollower(position common.Vec3, speed float64) *Follower {
	return &Follower{Position: position, Speed: speed}
}

// OnPathFound replaces the followed path when the search succeeded and
// restarts from its first waypoint. Failed searches leave the agent alone.
func (f *Follower) OnPathFound(path []common.Vec3, success bool) {
	if !success || len(path) == 0 {
		return
	}
	f.path = slices.Clone(path)
	f.index = 0
	f.following = true
}

// Update advances the agent by dt seconds. Reaching a waypoint switches to
// the next one on the following update; the last waypoint stops the agent.
func (f *Follower) Update(dt float64) {
	if !f.following {
		return
	}

	target := f.path[f.index]
	if f.Position == target {
		f.index++
		if f.index >= len(f.path) {
			f.following = false
			return
		}
		target = f.path[f.index]
	}

	f.Position = common.MoveTowards(f.Position, target, f.Speed*dt)
}

// Teleport moves the agent and drops its path.
func (f *Follower) Teleport(position common.Vec3) {
	f.Position = position
	f.Stop()
}

func (f *Follower) Stop() {
	f.path = nil
	f.index = 0
	f.following = false
}

func (f *Follower) Following() bool {
	return f.following
}

// Remaining returns the waypoints not yet reached, current target first.
func (f *Follower) Remaining() []common.Vec3 {
	if !f.following {
		return nil
	}
	return f.path[f.index:]
}

func (f *Follower) Path() []common.Vec3 {
	return f.path
}
