package pathfinding

import (
	"errors"

	"github.com/milk9111/gridpath/common"
)

var (
	ErrStartObstructed  = errors.New("start cell is obstructed")
	ErrTargetObstructed = errors.New("target cell is obstructed")
	ErrNoPath           = errors.New("no path")
	ErrEmptyPath        = errors.New("empty path")
)

type Result struct {
	Waypoints []common.Vec3
	Success   bool
	Algorithm Algorithm

	Cost     int
	Expanded int
	// Visited holds the world centers of expanded cells, in expansion order.
	Visited []common.Vec3
	Err     error
}

func failed(algo Algorithm, err error) Result {
	return Result{Algorithm: algo, Err: err}
}
