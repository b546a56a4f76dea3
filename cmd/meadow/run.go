package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/phanxgames/meadow"
	"github.com/phanxgames/meadow/config"
	"github.com/phanxgames/meadow/ecs"
	"github.com/spf13/cobra"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"go.uber.org/zap"
)

// runOptions are the per-run settings that come from flags rather than the
// config file.
type runOptions struct {
	Seed            uint64
	SeedSet         bool
	Script          []byte
	ScreenshotDir   string
	ExitOnScriptEnd bool
}

func runSandbox(cmd *cobra.Command, args []string) error {
	opts := runOptions{
		ScreenshotDir:   screenshotDir,
		ExitOnScriptEnd: exitOnScriptEnd,
	}
	if cmd.Flags().Changed("seed") {
		opts.Seed, opts.SeedSet = seed, true
	}
	if scriptPath != "" {
		data, err := os.ReadFile(scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		opts.Script = data
	}

	game, err := buildGame(cfg, opts, logger)
	if err != nil {
		return err
	}
	return meadow.Run(game, meadow.RunConfig{
		Title:     cfg.Window.Title,
		Resizable: cfg.Window.Resizable,
	})
}

// buildGame assembles the level, world, event bridge and game from cfg.
func buildGame(cfg *config.Config, opts runOptions, log *zap.Logger) (*meadow.Game, error) {
	cat, err := cfg.BuildCatalog()
	if err != nil {
		return nil, err
	}
	defaultTile, err := cfg.DefaultTileID(cat)
	if err != nil {
		return nil, err
	}

	s := resolveSeed(opts, cfg.Seed, time.Now())
	log.Info("creating world",
		zap.Int("width", cfg.Level.Width),
		zap.Int("height", cfg.Level.Height),
		zap.Uint64("seed", s),
	)

	level := meadow.NewLevel(cat, cfg.Level.Width, cfg.Level.Height, defaultTile)
	world := meadow.NewWorld(level, rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)))
	world.SetLogger(log.Named("world"))

	dw := donburi.NewWorld()
	world.SetEventSink(ecs.NewDonburiSink(dw))
	tally := ecs.NewTally(dw)

	dir := cfg.ScreenshotDir
	if opts.ScreenshotDir != "" {
		dir = opts.ScreenshotDir
	}
	game := meadow.NewGame(world, meadow.GameConfig{
		TileSize:           cfg.Level.TileSize,
		Width:              cfg.Window.Width,
		Height:             cfg.Window.Height,
		ScreenshotDir:      dir,
		ShowFPS:            cfg.ShowFPS,
		Debug:              cfg.Debug,
		ExitWhenScriptDone: opts.ExitOnScriptEnd,
		Logger:             log.Named("game"),
		Overlay:            tally,
	})
	game.SetUpdateFunc(func() error {
		events.ProcessAllEvents(dw)
		return nil
	})

	if len(opts.Script) > 0 {
		runner, err := meadow.LoadTestScript(opts.Script)
		if err != nil {
			return nil, err
		}
		game.SetTestRunner(runner)
	}
	return game, nil
}

// resolveSeed picks the world seed: the --seed flag when given, otherwise
// the config value. Zero from whichever source wins means seed from now.
func resolveSeed(opts runOptions, cfgSeed uint64, now time.Time) uint64 {
	s := cfgSeed
	if opts.SeedSet {
		s = opts.Seed
	}
	if s == 0 {
		s = uint64(now.UnixNano())
	}
	return s
}
