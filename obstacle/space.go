package obstacle

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/gridpath/common"
)

// Space answers obstruction queries against static Chipmunk shapes. World X
// maps to the space's X axis and world Z to its Y axis.
type Space struct {
	space *cp.Space
	mask  uint
	count int
}

func NewSpace() *Space {
	return &Space{
		space: cp.NewSpace(),
		mask:  cp.ALL_CATEGORIES,
	}
}

// Space returns the underlying Chipmunk space.
func (s *Space) Space() *cp.Space {
	return s.space
}

// SetMask selects which shape categories count as obstructions.
func (s *Space) SetMask(mask uint) {
	if mask == 0 {
		mask = cp.ALL_CATEGORIES
	}
	s.mask = mask
}

func (s *Space) Mask() uint {
	return s.mask
}

func (s *Space) Len() int {
	return s.count
}

func (s *Space) AddBox(center common.Vec3, width, depth float64, categories uint) *cp.Shape {
	bb := cp.BB{
		L: center.X - width/2,
		B: center.Z - depth/2,
		R: center.X + width/2,
		T: center.Z + depth/2,
	}
	return s.add(cp.NewBox2(s.space.StaticBody, bb, 0), categories)
}

func (s *Space) AddCircle(center common.Vec3, radius float64, categories uint) *cp.Shape {
	return s.add(cp.NewCircle(s.space.StaticBody, radius, toVector(center)), categories)
}

// AddSegment adds a capsule of the given radius between a and b.
func (s *Space) AddSegment(a, b common.Vec3, radius float64, categories uint) *cp.Shape {
	return s.add(cp.NewSegment(s.space.StaticBody, toVector(a), toVector(b), radius), categories)
}

func (s *Space) add(shape *cp.Shape, categories uint) *cp.Shape {
	if categories == 0 {
		categories = cp.ALL_CATEGORIES
	}
	shape.SetFilter(cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: categories,
		Mask:       cp.ALL_CATEGORIES,
	})
	s.space.AddShape(shape)
	s.count++
	return shape
}

// Obstructed reports whether any shape in the mask lies within radius of p.
func (s *Space) Obstructed(p common.Vec3, radius float64) bool {
	filter := cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: cp.ALL_CATEGORIES,
		Mask:       s.mask,
	}
	info := s.space.PointQueryNearest(toVector(p), radius, filter)
	return info != nil && info.Shape != nil
}

func toVector(p common.Vec3) cp.Vector {
	return cp.Vector{X: p.X, Y: p.Z}
}
