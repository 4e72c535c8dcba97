package pathfinding

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

type Algorithm int

const (
	AStar Algorithm = iota
	JPS
)

var Algorithms = []Algorithm{AStar, JPS}

func (a Algorithm) String() string {
	switch a {
	case AStar:
		return "astar"
	case JPS:
		return "jps"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Next cycles through the supported algorithms.
func (a Algorithm) Next() Algorithm {
	if a == AStar {
		return JPS
	}
	return AStar
}

func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "astar", "a*", "a-star":
		return AStar, nil
	case "jps", "jump", "jumppoint":
		return JPS, nil
	}
	return AStar, fmt.Errorf("pathfinding: parse %q: %w", s, ErrUnknownAlgorithm)
}
