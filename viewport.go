package main

import (
	"math"

	"github.com/milk9111/gridpath/common"
	"github.com/milk9111/gridpath/grid"
)

// viewport maps the grid's XZ plane onto a screen area. +z points up.
type viewport struct {
	bottomLeft common.Vec3
	width      float64
	depth      float64
	radius     float64

	scale   float64
	originX float64
	originY float64
}

func newViewport(cfg grid.Config, areaWidth, areaHeight, margin float64) viewport {
	sizeX, sizeZ := cfg.Dimensions()
	diameter := cfg.CellDiameter()
	width := float64(sizeX) * diameter
	depth := float64(sizeZ) * diameter

	scale := 1.0
	if width > 0 && depth > 0 {
		scale = math.Min((areaWidth-2*margin)/width, (areaHeight-2*margin)/depth)
	}

	return viewport{
		bottomLeft: cfg.BottomLeft(),
		width:      width,
		depth:      depth,
		radius:     cfg.CellRadius,
		scale:      scale,
		originX:    margin + ((areaWidth-2*margin)-width*scale)/2,
		originY:    margin + ((areaHeight-2*margin)-depth*scale)/2,
	}
}

func (v viewport) toScreen(p common.Vec3) (float64, float64) {
	x := v.originX + (p.X-v.bottomLeft.X)*v.scale
	y := v.originY + (v.depth-(p.Z-v.bottomLeft.Z))*v.scale
	return x, y
}

// toWorld reports false when the screen point lies outside the grid.
func (v viewport) toWorld(x, y float64) (common.Vec3, bool) {
	if v.scale <= 0 {
		return common.Vec3{}, false
	}
	lx := (x - v.originX) / v.scale
	lz := v.depth - (y-v.originY)/v.scale
	if lx < 0 || lz < 0 || lx > v.width || lz > v.depth {
		return common.Vec3{}, false
	}
	return common.Vec3{
		X: v.bottomLeft.X + lx,
		Y: v.bottomLeft.Y,
		Z: v.bottomLeft.Z + lz,
	}, true
}

func (v viewport) cellSize() float64 {
	return 2 * v.radius * v.scale
}

// cellTopLeft takes a cell center.
func (v viewport) cellTopLeft(center common.Vec3) (float64, float64) {
	x, y := v.toScreen(center)
	half := v.cellSize() / 2
	return x - half, y - half
}
