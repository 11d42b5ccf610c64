package main

import (
	"flag"
	"fmt"
	"os"

	"chunk-roguelike/internal/game"
	"chunk-roguelike/internal/logger"
)

func main() {
	cfg := game.DefaultConfig()
	flag.Int64Var(&cfg.Seed, "seed", 0, "Spawner RNG seed (0 picks one from the clock)")
	flag.IntVar(&cfg.FOVRange, "fov", cfg.FOVRange, "Sight radius in tiles")
	flag.IntVar(&cfg.Spawner.MaxEntities, "spawn-max", cfg.Spawner.MaxEntities, "Maximum number of living creatures")
	flag.DurationVar(&cfg.Spawner.Interval, "spawn-interval", cfg.Spawner.Interval, "Minimum time between spawns")
	noSpawn := flag.Bool("no-spawn", false, "Disable the spawner")
	noRunLog := flag.Bool("no-runlog", false, "Do not append a session summary to runs.jsonl")
	flag.Parse()
	cfg.SpawnEnabled = !*noSpawn
	cfg.SaveRunLog = !*noRunLog

	closer, err := logger.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	g, err := game.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
	g.Run()
}
