package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/milk9111/gridpath/common"
	"github.com/milk9111/gridpath/grid"
	"github.com/milk9111/gridpath/maps"
	"github.com/milk9111/gridpath/pathfinding"
	"github.com/milk9111/gridpath/request"
)

var errBadPoint = errors.New("expected x,z")

func main() {
	mapName := flag.String("map", "arena", "map name in maps/ (basename, .yaml optional)")
	from := flag.String("from", "", "start point as x,z (defaults to the map's start)")
	to := flag.String("to", "", "goal point as x,z (defaults to the map's goal)")
	algoName := flag.String("algo", "both", "astar, jps or both")
	ascii := flag.Bool("ascii", false, "draw the grid and path")
	metricsAddr := flag.String("metrics", "", "serve prometheus metrics on addr and wait for interrupt")
	flag.Parse()

	world, err := maps.LoadWorld(*mapName)
	if err != nil {
		log.Fatal(err)
	}

	start, err := pointOrDefault(*from, world.Spec.Start)
	if err != nil {
		log.Fatalf("-from: %v", err)
	}
	goal, err := pointOrDefault(*to, world.Spec.Goal)
	if err != nil {
		log.Fatalf("-to: %v", err)
	}

	algos, err := parseAlgorithms(*algoName)
	if err != nil {
		log.Fatal(err)
	}

	if *metricsAddr != "" {
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
				log.Fatalf("metrics: %v", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	responses := search(ctx, request.NewManager(world.Engine), start, goal, algos)

	failed := false
	for _, resp := range responses {
		printResult(os.Stdout, resp.Result)
		if *ascii {
			renderASCII(os.Stdout, world.Grid, start, goal, resp.Waypoints)
		}
		if !resp.Success {
			failed = true
		}
	}

	if *metricsAddr != "" {
		log.Printf("serving metrics on %s, interrupt to exit", *metricsAddr)
		<-ctx.Done()
	}
	if failed {
		os.Exit(1)
	}
}

// search queues one request per algorithm and ticks the manager until all
// of them are delivered.
func search(ctx context.Context, m *request.Manager, start, goal common.Vec3, algos []pathfinding.Algorithm) []request.Response {
	chans := make([]<-chan request.Response, 0, len(algos))
	for _, algo := range algos {
		chans = append(chans, m.Submit(ctx, start, goal, algo))
	}
	for m.Pending() > 0 {
		m.Update()
	}

	responses := make([]request.Response, 0, len(chans))
	for _, ch := range chans {
		responses = append(responses, <-ch)
	}
	return responses
}

func parseAlgorithms(name string) ([]pathfinding.Algorithm, error) {
	if strings.EqualFold(name, "both") {
		return pathfinding.Algorithms, nil
	}
	algo, err := pathfinding.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return []pathfinding.Algorithm{algo}, nil
}

func pointOrDefault(s string, def common.Vec3) (common.Vec3, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return parsePoint(s, def.Y)
}

// parsePoint reads "x,z" into a point at height y.
func parsePoint(s string, y float64) (common.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return common.Vec3{}, fmt.Errorf("%q: %w", s, errBadPoint)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return common.Vec3{}, fmt.Errorf("%q: %w", s, err)
	}
	z, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return common.Vec3{}, fmt.Errorf("%q: %w", s, err)
	}
	return common.Vec3{X: x, Y: y, Z: z}, nil
}

func printResult(w io.Writer, res pathfinding.Result) {
	if !res.Success {
		fmt.Fprintf(w, "%s: no path (%v), %d expanded\n", res.Algorithm, res.Err, res.Expanded)
		return
	}
	fmt.Fprintf(w, "%s: %d waypoints, cost %d, %d expanded\n", res.Algorithm, len(res.Waypoints), res.Cost, res.Expanded)
	for i, wp := range res.Waypoints {
		fmt.Fprintf(w, "  %2d  (%.2f, %.2f, %.2f)\n", i, wp.X, wp.Y, wp.Z)
	}
}

// renderASCII draws the grid with +z at the top: '#' obstructed, '*' path,
// 'S' and 'G' the endpoints.
func renderASCII(w io.Writer, g *grid.Grid, start, goal common.Vec3, waypoints []common.Vec3) {
	onPath := make(map[int]bool)
	for _, c := range pathfinding.Trace(g, waypoints) {
		onPath[c.Index] = true
	}
	s := g.CellFromWorldPoint(start)
	e := g.CellFromWorldPoint(goal)

	sizeX, sizeZ := g.Size()
	var b strings.Builder
	for z := sizeZ - 1; z >= 0; z-- {
		for x := 0; x < sizeX; x++ {
			c := g.Cell(x, z)
			switch {
			case c == s:
				b.WriteByte('S')
			case c == e:
				b.WriteByte('G')
			case c.Obstructed:
				b.WriteByte('#')
			case onPath[c.Index]:
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	io.WriteString(w, b.String())
}
