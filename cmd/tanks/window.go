package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/platform/window"
	"github.com/vovakirdan/tui-tanks/internal/tanks"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a 1080x720 window and play with real key hold detection.

Controls are the same as 'tanks play'.`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	gameCfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closer, err := newLogger("tanks-window", os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.RuntimeConfig{
		ScreenW:  window.DefaultWidth,
		ScreenH:  window.DefaultHeight,
		TickRate: flagFPS,
		Seed:     seed,
	}

	logger.Info("opening window", "seed", seed, "difficulty", flagDifficulty)
	if err := window.Run(tanks.New(gameCfg), cfg, logger); err != nil {
		closer.Close()
		fail("%v", err)
	}
}
