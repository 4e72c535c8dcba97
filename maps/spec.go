package maps

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/gridpath/common"
)

// Spec is a map file: the grid it covers plus the obstacles placed on it.
type Spec struct {
	Name       string      `yaml:"name"`
	Center     common.Vec3 `yaml:"center"`
	Width      float64     `yaml:"width"`
	Depth      float64     `yaml:"depth"`
	CellRadius float64     `yaml:"cell_radius"`
	Algorithm  string      `yaml:"algorithm"`
	Start      common.Vec3 `yaml:"start"`
	Goal       common.Vec3 `yaml:"goal"`
	Agent      AgentSpec   `yaml:"agent"`

	// Layers names the shape categories in bit order. Obstructs lists the
	// layers that block cells; empty means every layer does.
	Layers    []string       `yaml:"layers"`
	Obstructs []string       `yaml:"obstructs"`
	Obstacles []ObstacleSpec `yaml:"obstacles"`

	Mask   []string `yaml:"mask"`
	Script string   `yaml:"script"`
}

type AgentSpec struct {
	Speed float64 `yaml:"speed"`
}

type ObstacleSpec struct {
	Kind   string      `yaml:"kind"`
	Layer  string      `yaml:"layer"`
	Center common.Vec3 `yaml:"center"`
	Width  float64     `yaml:"width"`
	Depth  float64     `yaml:"depth"`
	Radius float64     `yaml:"radius"`
	From   common.Vec3 `yaml:"from"`
	To     common.Vec3 `yaml:"to"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("maps: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("maps: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadMapSpec(filename string) (*Spec, error) {
	spec, err := LoadSpec[Spec](filename)
	if err != nil {
		return nil, err
	}
	if spec.Name == "" {
		spec.Name = cleanMapPath(filename)
	}
	return &spec, nil
}
