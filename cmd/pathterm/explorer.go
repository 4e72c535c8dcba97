package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/zyedidia/generic/mapset"

	"github.com/milk9111/gridpath/common"
	"github.com/milk9111/gridpath/grid"
	"github.com/milk9111/gridpath/maps"
	"github.com/milk9111/gridpath/pathfinding"
	"github.com/milk9111/gridpath/request"
)

const sampleRate = beep.SampleRate(44100)

var (
	openStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	blockedStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	pathStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	startStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	goalStyle    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	textStyle    = tcell.StyleDefault
)

type explorer struct {
	screen  tcell.Screen
	world   *maps.World
	manager *request.Manager
	algo    pathfinding.Algorithm

	cursorX, cursorZ int
	start, goal      *grid.Cell

	pending <-chan request.Response
	last    pathfinding.Result
	path    mapset.Set[int]
	status  string

	audioInit bool
}

func newExplorer(screen tcell.Screen, world *maps.World) *explorer {
	e := &explorer{
		screen:  screen,
		world:   world,
		manager: request.NewManager(world.Engine),
		algo:    world.Algorithm,
		start:   world.Grid.CellFromWorldPoint(world.Spec.Start),
		goal:    world.Grid.CellFromWorldPoint(world.Spec.Goal),
		path:    mapset.New[int](),
		status:  "arrows move, s/g set start/goal, a algorithm, enter search, q quit",
	}
	e.cursorX, e.cursorZ = e.start.X, e.start.Z
	return e
}

func (e *explorer) initAudio() error {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		e.audioInit = true
	}
	return err
}

func (e *explorer) playTone(freq float64) {
	if !e.audioInit {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(80*time.Millisecond), sine))
}

// handleKey reports false when the explorer should exit.
func (e *explorer) handleKey(ev *tcell.EventKey) bool {
	sizeX, sizeZ := e.world.Grid.Size()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		e.cursorZ = min(e.cursorZ+1, sizeZ-1)
	case tcell.KeyDown:
		e.cursorZ = max(e.cursorZ-1, 0)
	case tcell.KeyLeft:
		e.cursorX = max(e.cursorX-1, 0)
	case tcell.KeyRight:
		e.cursorX = min(e.cursorX+1, sizeX-1)
	case tcell.KeyEnter:
		e.search()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 's':
			e.start = e.world.Grid.Cell(e.cursorX, e.cursorZ)
			e.path.Clear()
		case 'g':
			e.goal = e.world.Grid.Cell(e.cursorX, e.cursorZ)
			e.path.Clear()
		case 'a':
			e.algo = e.algo.Next()
			e.status = fmt.Sprintf("algorithm: %s", e.algo)
		}
	}
	return true
}

func (e *explorer) search() {
	e.pending = e.manager.Submit(context.Background(), e.start.World, e.goal.World, e.algo)
	e.status = fmt.Sprintf("%s: searching", e.algo)
}

// tick drives the request manager and picks up a finished search.
func (e *explorer) tick() {
	e.manager.Update()
	if e.pending == nil {
		return
	}

	select {
	case resp, ok := <-e.pending:
		e.pending = nil
		if !ok {
			return
		}
		e.onResponse(resp)
	default:
	}
}

func (e *explorer) onResponse(resp request.Response) {
	e.last = resp.Result
	e.path.Clear()
	if !resp.Success {
		e.status = fmt.Sprintf("%s: %v (%d expanded)", resp.Result.Algorithm, resp.Result.Err, resp.Result.Expanded)
		e.playTone(220)
		return
	}

	for _, c := range pathfinding.Trace(e.world.Grid, resp.Waypoints) {
		e.path.Put(c.Index)
	}
	e.status = fmt.Sprintf("%s: %d waypoints, cost %d, %d expanded", resp.Result.Algorithm, len(resp.Waypoints), resp.Result.Cost, resp.Result.Expanded)
	e.playTone(880)
}

// cellRune picks the glyph for a cell; +z is drawn at the top.
func (e *explorer) cellRune(c *grid.Cell) (rune, tcell.Style) {
	switch {
	case c == e.start:
		return 'S', startStyle
	case c == e.goal:
		return 'G', goalStyle
	case c.Obstructed:
		return '#', blockedStyle
	case e.path.Has(c.Index):
		return '*', pathStyle
	}
	return '.', openStyle
}

func (e *explorer) draw() {
	e.screen.Clear()

	_, sizeZ := e.world.Grid.Size()
	e.world.Grid.Each(func(c *grid.Cell) {
		r, style := e.cellRune(c)
		if c.X == e.cursorX && c.Z == e.cursorZ {
			style = style.Reverse(true)
		}
		e.screen.SetContent(c.X, sizeZ-1-c.Z, r, nil, style)
	})

	cursor := e.world.Grid.Cell(e.cursorX, e.cursorZ)
	lines := []string{
		fmt.Sprintf("map %s  algorithm %s  cursor (%d,%d) %s", e.world.Spec.Name, e.algo, cursor.X, cursor.Z, formatPoint(cursor.World)),
		e.status,
	}
	for i, line := range lines {
		drawText(e.screen, 0, sizeZ+1+i, line, textStyle)
	}

	e.screen.Show()
}

func (e *explorer) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := e.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	e.draw()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !e.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				e.screen.Sync()
			}
		case <-ticker.C:
			e.tick()
			e.draw()
		}
	}
}

func (e *explorer) cleanup() {
	if e.audioInit {
		speaker.Close()
	}
	e.screen.Fini()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func formatPoint(p common.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Z)
}
