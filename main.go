package main

import (
	"context"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/firefight/common"
	"github.com/milk9111/firefight/prefabs"
	"github.com/milk9111/firefight/sim"
)

var logger = common.NewLogger("viewer")

func main() {
	arena := flag.String("arena", "", "arena prefab (default arena.yaml)")
	seed := flag.Int64("seed", 0, "random seed; 0 uses the arena seed")
	level := flag.String("log-level", "info", "log level: debug, info, warn, error")
	watch := flag.Bool("watch", false, "hot reload weapon definitions from the prefabs directory")
	noWave := flag.Bool("empty", false, "start without spawning hostiles")
	flag.Parse()

	if err := common.SetLogLevel(*level); err != nil {
		logger.Fatal("bad log level", "level", *level, "err", err)
	}

	files := prefabs.DefaultCatalogFiles()
	if *arena != "" {
		files.Arena = *arena
	}
	cat, err := prefabs.LoadCatalog(context.Background(), files)
	if err != nil {
		logger.Fatal("load catalog", "err", err)
	}
	s, err := sim.New(cat, *seed)
	if err != nil {
		logger.Fatal("build simulation", "err", err)
	}
	if !*noWave {
		s.SpawnWave()
	}

	game := NewGame(s, files.Weapons)
	if *watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			logger.Fatal("watch prefabs", "err", err)
		}
		defer w.Close()
		game.watcher = w
	}

	ebiten.SetTPS(cat.Arena.TickRate)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("firefight: " + cat.Arena.Name)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("viewer", "err", err)
	}
}
