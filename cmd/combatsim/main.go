package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/milk9111/firefight/combat"
	"github.com/milk9111/firefight/common"
	"github.com/milk9111/firefight/prefabs"
	"github.com/milk9111/firefight/scenario"
	"github.com/milk9111/firefight/sim"
)

var logger = common.NewLogger("combatsim")

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain returns the process exit code so deferred cleanup runs before
// os.Exit.
func realMain(args []string) int {
	fs := flag.NewFlagSet("combatsim", flag.ContinueOnError)
	arena := fs.String("arena", "", "arena prefab (default arena.yaml)")
	script := fs.String("script", "", "tengo scenario under prefabs/scripts; empty spawns a wave and idles")
	ticks := fs.Int("ticks", 60*60, "tick budget")
	seed := fs.Int64("seed", 0, "random seed; 0 uses the arena seed")
	level := fs.String("log-level", "info", "log level: debug, info, warn, error")
	watch := fs.Bool("watch", false, "hot reload weapon definitions from the prefabs directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := common.SetLogLevel(*level); err != nil {
		logger.Error("bad log level", "level", *level, "err", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *arena, *script, *ticks, *seed, *watch); err != nil {
		logger.Error("combatsim failed", "err", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, arena, script string, ticks int, seed int64, watch bool) error {
	files := prefabs.DefaultCatalogFiles()
	if arena != "" {
		files.Arena = arena
	}
	cat, err := prefabs.LoadCatalog(ctx, files)
	if err != nil {
		return err
	}
	s, err := sim.New(cat, seed)
	if err != nil {
		return err
	}

	runner := scenario.NewRunner(s, ticks)
	var w *prefabs.Watcher
	if watch {
		if w, err = prefabs.NewWatcher(prefabs.Dir); err != nil {
			return err
		}
		defer w.Close()
	}
	runner.OnTick = func() {
		reportDeaths(s)
		if w != nil {
			applyReloads(s, w, files.Weapons)
		}
	}

	if script == "" {
		s.SpawnWave()
		if err := runner.Step(ticks); err != nil {
			return err
		}
	} else if err := runner.RunFile(ctx, script); err != nil {
		return err
	}

	printSummary(s, runner.Ticks())
	return nil
}

func reportDeaths(s *sim.Simulation) {
	for _, evt := range s.DrainEvents() {
		if evt.Type == combat.EventDeath {
			logger.Info("kill", "target", evt.Target, "t", s.Now(), "at", evt.Point)
		}
	}
}

// applyReloads drains pending file changes without blocking the tick.
func applyReloads(s *sim.Simulation, w *prefabs.Watcher, weapons string) {
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			if !prefabs.IsWeaponsFile(path) {
				continue
			}
			if err := s.ApplyReload(weapons); err != nil {
				logger.Warn("reload rejected", "file", path, "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("watcher", "err", err)
		default:
			return
		}
	}
}

func printSummary(s *sim.Simulation, ticks int) {
	st := s.Stats()
	snap := s.Snapshot()
	fmt.Printf("ticks: %d (%.2fs)\n", ticks, s.Now().Seconds())
	fmt.Printf("shots: %d  hits: %d  damage: %.1f  kills: %d  reloads: %d  projectiles: %d\n",
		st.ShotsFired, st.Hits, st.DamageDealt, st.Kills, st.ReloadsStarted, st.ProjectilesSpent)
	fmt.Printf("hostiles left: %d  props left: %d\n", len(snap.Hostiles), len(snap.Props))
	if p := snap.Player; p != nil {
		ammo := fmt.Sprintf("%d/%d", p.Ammo, p.Reserve)
		if p.Unlimited {
			ammo = fmt.Sprintf("%d/inf", p.Ammo)
		}
		fmt.Printf("player: health %.0f  weapon %s  ammo %s\n", p.Health, p.Weapon, ammo)
	} else {
		fmt.Println("player: dead")
	}
}
