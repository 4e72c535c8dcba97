package main

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"

	"github.com/milk9111/gridpath/agent"
	"github.com/milk9111/gridpath/common"
	"github.com/milk9111/gridpath/grid"
	"github.com/milk9111/gridpath/maps"
	"github.com/milk9111/gridpath/pathfinding"
	"github.com/milk9111/gridpath/request"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	sidebarWidth   = 280
	viewportMargin = 24
)

var (
	walkableColor   = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	obstructedColor = color.NRGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff}
	visitedColor    = color.NRGBA{R: 0x40, G: 0x90, B: 0xff, A: 0x50}
	gridLineColor   = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x30}
)

type Game struct {
	frames int
	debug  bool

	mapName string
	world   *maps.World
	algo    pathfinding.Algorithm
	view    viewport

	manager *request.Manager
	agent   *agent.Follower
	pending <-chan request.Response
	last    pathfinding.Result
	goal    common.Vec3
	hasGoal bool

	watcher      *maps.Watcher
	clipboardOK  bool
	status       string
	panel        *ebitenui.UI
	panelVisible bool
	panelLabels  panelLabels
}

func NewGame(mapName, algoName string, debug bool) (*Game, error) {
	world, err := maps.LoadWorld(mapName)
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:        debug,
		mapName:      mapName,
		panelVisible: true,
	}
	g.setWorld(world)
	g.manager = request.NewManager(world.Engine)

	if algoName != "" {
		algo, err := pathfinding.ParseAlgorithm(algoName)
		if err != nil {
			return nil, err
		}
		g.algo = algo
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("Game: clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	if w, err := maps.NewWatcher(maps.Dir, filepath.Join(maps.Dir, "scripts")); err != nil {
		log.Printf("Game: not watching %s: %v", maps.Dir, err)
	} else {
		g.watcher = w
	}

	g.panel = NewPanelUI(g)
	g.refreshPanel()
	g.requestPath(world.Spec.Goal)
	return g, nil
}

func (g *Game) setWorld(world *maps.World) {
	g.world = world
	g.algo = world.Algorithm
	g.view = newViewport(world.Grid.Config(), baseWidth-sidebarWidth, baseHeight, viewportMargin)
	g.agent = agent.NewFollower(world.Grid.CellFromWorldPoint(world.Spec.Start).World, world.Spec.Agent.Speed)
	g.last = pathfinding.Result{}
	g.hasGoal = false
	g.pending = nil
	if g.manager != nil {
		g.manager.SetFinder(world.Engine)
	}
}

func (g *Game) Update() error {
	g.frames++

	g.pollWatcher()
	g.handleInput()

	g.manager.Update()
	g.pollResponse()
	g.agent.Update(1 / float64(ebiten.TPS()))

	if g.panelVisible {
		g.panel.Update()
	}
	return nil
}

func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.panelVisible = !g.panelVisible
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.toggleAlgorithm()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyWaypoints()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reload()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}

	cx, cy := ebiten.CursorPosition()
	p, ok := g.view.toWorld(float64(cx), float64(cy))
	if !ok {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.requestPath(p)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.agent.Teleport(g.world.Grid.CellFromWorldPoint(p).World)
	}
}

func (g *Game) requestPath(target common.Vec3) {
	g.goal = g.world.Grid.CellFromWorldPoint(target).World
	g.hasGoal = true
	g.pending = g.manager.Submit(context.Background(), g.agent.Position, target, g.algo)
}

func (g *Game) pollResponse() {
	if g.pending == nil {
		return
	}
	select {
	case resp, ok := <-g.pending:
		g.pending = nil
		if !ok {
			return
		}
		g.agent.OnPathFound(resp.Waypoints, resp.Success)
		g.last = resp.Result
		if resp.Success {
			g.status = fmt.Sprintf("%s: %d waypoints, cost %d, %d expanded", resp.Result.Algorithm, len(resp.Waypoints), resp.Result.Cost, resp.Result.Expanded)
		} else {
			g.status = fmt.Sprintf("%s: %v", resp.Result.Algorithm, resp.Result.Err)
		}
		g.refreshPanel()
	default:
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("Game: %s changed", change.Path)
			g.reload()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("Game: watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload() {
	world, err := maps.LoadWorld(g.mapName)
	if err != nil {
		log.Printf("Game: reload %s: %v", g.mapName, err)
		g.status = fmt.Sprintf("reload failed: %v", err)
		g.refreshPanel()
		return
	}
	algo := g.algo
	g.setWorld(world)
	g.algo = algo
	g.status = fmt.Sprintf("reloaded %s", world.Spec.Name)
	g.refreshPanel()
}

func (g *Game) toggleAlgorithm() {
	g.algo = g.algo.Next()
	g.refreshPanel()
	if g.hasGoal {
		g.requestPath(g.goal)
	}
}

func (g *Game) copyWaypoints() {
	if !g.clipboardOK {
		g.status = "clipboard unavailable"
		g.refreshPanel()
		return
	}
	var b strings.Builder
	for _, wp := range g.agent.Path() {
		fmt.Fprintf(&b, "%.2f,%.2f,%.2f\n", wp.X, wp.Y, wp.Z)
	}
	clipboard.Write(clipboard.FmtText, []byte(b.String()))
	g.status = fmt.Sprintf("copied %d waypoints", len(g.agent.Path()))
	g.refreshPanel()
}

func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Dimgray)

	g.drawGrid(screen)
	if g.debug {
		g.drawVisited(screen)
		DrawSpaceDebug(g.world.Space.Space(), g.view, screen)
	}
	g.drawPath(screen)
	g.drawAgent(screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  map: %s  algorithm: %s", ebiten.ActualFPS(), g.world.Spec.Name, g.algo), 8, 4)

	if g.panelVisible {
		g.panel.Draw(screen)
	}
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	size := float32(g.view.cellSize())
	g.world.Grid.Each(func(c *grid.Cell) {
		x, y := g.view.cellTopLeft(c.World)
		clr := walkableColor
		if c.Obstructed {
			clr = obstructedColor
		}
		vector.FillRect(screen, float32(x), float32(y), size, size, clr, false)
		vector.StrokeRect(screen, float32(x), float32(y), size, size, 1, gridLineColor, false)
	})
}

func (g *Game) drawVisited(screen *ebiten.Image) {
	size := float32(g.view.cellSize())
	for _, p := range g.last.Visited {
		x, y := g.view.cellTopLeft(p)
		vector.FillRect(screen, float32(x), float32(y), size, size, visitedColor, false)
	}
}

func (g *Game) drawPath(screen *ebiten.Image) {
	remaining := g.agent.Remaining()
	size := float32(g.view.cellSize() / 3)

	prev := g.agent.Position
	for _, wp := range remaining {
		x0, y0 := g.view.toScreen(prev)
		x1, y1 := g.view.toScreen(wp)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, colornames.Black, true)
		vector.FillRect(screen, float32(x1)-size/2, float32(y1)-size/2, size, size, colornames.Black, false)
		prev = wp
	}

	if g.hasGoal {
		x, y := g.view.toScreen(g.goal)
		vector.StrokeCircle(screen, float32(x), float32(y), size, 2, colornames.Darkgreen, true)
	}
}

func (g *Game) drawAgent(screen *ebiten.Image) {
	x, y := g.view.toScreen(g.agent.Position)
	vector.FillCircle(screen, float32(x), float32(y), float32(g.view.cellSize()/2.5), colornames.Gold, true)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
