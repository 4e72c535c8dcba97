package obstacle

import (
	"fmt"
	"log"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/gridpath/common"
)

// Script evaluates a tengo program once per queried point. The program sees
// x, y, z and radius and assigns its answer to obstructed:
//
//	obstructed = x > 2 && z < 4
type Script struct {
	name     string
	compiled *tengo.Compiled
	mu       sync.Mutex
}

func NewScript(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	_ = script.Add("x", 0.0)
	_ = script.Add("y", 0.0)
	_ = script.Add("z", 0.0)
	_ = script.Add("radius", 0.0)
	_ = script.Add("obstructed", false)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("obstacle: compile %s: %w", name, err)
	}
	return &Script{name: name, compiled: compiled}, nil
}

func (s *Script) Name() string {
	return s.name
}

// Obstructed runs the script for p. A failing run counts as obstructed.
func (s *Script) Obstructed(p common.Vec3, radius float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.run(p, radius); err != nil {
		log.Printf("obstacle: script %s at (%.2f, %.2f): %v", s.name, p.X, p.Z, err)
		return true
	}
	return s.compiled.Get("obstructed").Bool()
}

func (s *Script) run(p common.Vec3, radius float64) error {
	for name, v := range map[string]any{
		"x":          p.X,
		"y":          p.Y,
		"z":          p.Z,
		"radius":     radius,
		"obstructed": false,
	} {
		if err := s.compiled.Set(name, v); err != nil {
			return err
		}
	}
	return s.compiled.Run()
}
