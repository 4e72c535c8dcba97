package maps

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/milk9111/gridpath/grid"
	"github.com/milk9111/gridpath/obstacle"
	"github.com/milk9111/gridpath/pathfinding"
)

const defaultAgentSpeed = 4.0

var (
	ErrUnknownKind  = errors.New("unknown obstacle kind")
	ErrUnknownLayer = errors.New("unknown layer")
)

// World is a built map: a grid, its obstacle space and an engine over it.
type World struct {
	Spec      *Spec
	Grid      *grid.Grid
	Space     *obstacle.Space
	Engine    *pathfinding.Engine
	Algorithm pathfinding.Algorithm
}

func LoadWorld(filename string) (*World, error) {
	spec, err := LoadMapSpec(filename)
	if err != nil {
		return nil, err
	}
	return Build(spec)
}

// Build places the map's obstacles and queries them once per cell.
func Build(spec *Spec) (*World, error) {
	algo := pathfinding.AStar
	if spec.Algorithm != "" {
		a, err := pathfinding.ParseAlgorithm(spec.Algorithm)
		if err != nil {
			return nil, fmt.Errorf("maps: %s: %w", spec.Name, err)
		}
		algo = a
	}

	space, err := buildSpace(spec)
	if err != nil {
		return nil, err
	}

	cfg := grid.Config{
		Center:     spec.Center,
		WorldWidth: spec.Width,
		WorldDepth: spec.Depth,
		CellRadius: spec.CellRadius,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("maps: %s: %w", spec.Name, err)
	}

	obstructions := obstacle.Any{space}
	if len(spec.Mask) > 0 {
		mask, err := obstacle.NewMask(cfg, spec.Mask)
		if err != nil {
			return nil, fmt.Errorf("maps: %s: %w", spec.Name, err)
		}
		obstructions = append(obstructions, mask)
	}
	if strings.TrimSpace(spec.Script) != "" {
		src, err := LoadScript(spec.Script)
		if err != nil {
			return nil, fmt.Errorf("maps: %s: load script %s: %w", spec.Name, spec.Script, err)
		}
		script, err := obstacle.NewScript(spec.Script, src)
		if err != nil {
			return nil, fmt.Errorf("maps: %s: %w", spec.Name, err)
		}
		obstructions = append(obstructions, script)
	}

	g, err := grid.New(cfg, obstructions)
	if err != nil {
		return nil, fmt.Errorf("maps: %s: %w", spec.Name, err)
	}

	if spec.Agent.Speed <= 0 {
		spec.Agent.Speed = defaultAgentSpeed
	}

	return &World{
		Spec:      spec,
		Grid:      g,
		Space:     space,
		Engine:    pathfinding.NewEngine(g),
		Algorithm: algo,
	}, nil
}

func buildSpace(spec *Spec) (*obstacle.Space, error) {
	space := obstacle.NewSpace()

	mask, err := layerBits(spec.Layers, spec.Obstructs)
	if err != nil {
		return nil, fmt.Errorf("maps: %s: obstructs: %w", spec.Name, err)
	}
	space.SetMask(mask)

	for i, o := range spec.Obstacles {
		var categories uint
		if o.Layer != "" {
			bits, err := layerBits(spec.Layers, []string{o.Layer})
			if err != nil {
				return nil, fmt.Errorf("maps: %s: obstacle %d: %w", spec.Name, i, err)
			}
			categories = bits
		}

		switch strings.ToLower(o.Kind) {
		case "box", "":
			space.AddBox(o.Center, o.Width, o.Depth, categories)
		case "circle":
			space.AddCircle(o.Center, o.Radius, categories)
		case "segment", "wall":
			space.AddSegment(o.From, o.To, o.Radius, categories)
		default:
			return nil, fmt.Errorf("maps: %s: obstacle %d: %q: %w", spec.Name, i, o.Kind, ErrUnknownKind)
		}
	}

	return space, nil
}

// layerBits returns the category bits for names, or 0 when names is empty.
func layerBits(layers, names []string) (uint, error) {
	var bits uint
	for _, name := range names {
		i := slices.Index(layers, name)
		if i < 0 {
			return 0, fmt.Errorf("%q: %w", name, ErrUnknownLayer)
		}
		bits |= 1 << uint(i)
	}
	return bits, nil
}
