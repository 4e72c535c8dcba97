package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/gridpath/maps"
	"github.com/milk9111/gridpath/pathfinding"
)

func main() {
	mapName := flag.String("map", "arena", "map name in maps/ (basename, .yaml optional)")
	algoName := flag.String("algo", "", "astar or jps (defaults to the map's)")
	mute := flag.Bool("mute", false, "disable the result tone")
	flag.Parse()

	world, err := maps.LoadWorld(*mapName)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	e := newExplorer(screen, world)
	if *algoName != "" {
		algo, err := pathfinding.ParseAlgorithm(*algoName)
		if err != nil {
			screen.Fini()
			log.Fatal(err)
		}
		e.algo = algo
	}
	if !*mute {
		if err := e.initAudio(); err != nil {
			log.Printf("audio unavailable: %v", err)
		}
	}
	defer e.cleanup()

	e.run()
}
