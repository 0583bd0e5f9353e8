package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/platform/tui"
	"github.com/vovakirdan/tui-tanks/internal/tanks"
)

var flagHoldTicks int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD - Move
  Space/F     - Fire
  P           - Pause / resume
  R           - Restart (paused or game over)
  Esc         - Quit (paused)
  Ctrl+C      - Exit immediately

Terminals report key presses but not releases, so a key counts as held
for --hold ticks after its last press.

Examples:
  tanks play
  tanks play --difficulty easy
  tanks play --seed 42 --log-file tanks.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldTicks, "hold", tui.DefaultHoldTicks, "Ticks a key press counts as held")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closer, err := newLogger("tanks", io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Scores are not kept across runs, so play has no store.
	err = tui.Run(tanks.New(gameCfg), nil, cfg, tui.Options{
		Logger:    logger,
		HoldTicks: flagHoldTicks,
	})
	if err != nil {
		closer.Close()
		fail("%v", err)
	}
}
