package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tanks/internal/config"
	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/tanks"
)

var (
	flagSimRuns     int
	flagSimTicks    int
	flagSimSeedStep int64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless seeded sessions and print a report",
	Long: `Run several sessions without any front end. The autopilot turns every
90 ticks and keeps fire held. Each run is seeded with seed + i*seed-step,
so identical flags always print identical reports.

Examples:
  tanks sim
  tanks sim --runs 20 --ticks 36000 --seed 7
  tanks sim --difficulty hard --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 5, "Number of headless runs")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum ticks per run")
	simCmd.Flags().Int64Var(&flagSimSeedStep, "seed-step", 1, "Seed increment between runs")
}

// simStats summarises one headless run.
type simStats struct {
	run        int
	seed       int64
	frames     int
	score      int
	kills      int
	spawned    int
	livesLost  int
	explosions int
	inFlight   int
	gameOver   bool
	hash       uint64
}

// autopilotDirs is the order the autopilot cycles through.
var autopilotDirs = [4]core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}

// autopilot returns the scripted input for a tick.
func autopilot(tick int) core.InputFrame {
	return core.FrameOf(autopilotDirs[(tick/90)%len(autopilotDirs)], core.ActionFire)
}

// simulate plays one seeded session for at most ticks ticks.
func simulate(cfg config.TanksConfig, run int, seed int64, ticks int, logger *log.Logger) simStats {
	s := tanks.NewSession(cfg, seed)
	stats := simStats{run: run, seed: seed}

	for tick := 0; tick < ticks; tick++ {
		s.Step(autopilot(tick))

		for _, ev := range s.DrainEvents() {
			switch ev := ev.(type) {
			case tanks.EntityCreated:
				if ev.Kind == tanks.KindEnemy {
					stats.spawned++
				}
			case tanks.EntityDestroyed:
				if ev.Kind == tanks.KindEnemy {
					stats.kills++
					logger.Debug("enemy destroyed", "run", run, "id", ev.ID)
				}
			case tanks.LifeChanged:
				stats.livesLost++
				logger.Debug("player hit", "run", run, "life", ev.Life)
			case tanks.Explosion:
				stats.explosions++
			}
		}

		if s.State() == tanks.StateGameOver {
			stats.gameOver = true
			break
		}
	}

	w := s.World()
	stats.frames = w.Frame()
	stats.score = w.Score()
	stats.inFlight = len(w.Projectiles())
	snap := s.Snapshot()
	stats.hash = snap.Hash()
	return stats
}

func runSim(_ *cobra.Command, _ []string) {
	if flagSimRuns <= 0 {
		fail("--runs must be > 0")
	}
	if flagSimTicks <= 0 {
		fail("--ticks must be > 0")
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closer, err := newLogger("tanks-sim", os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	all := make([]simStats, 0, flagSimRuns)
	for i := 0; i < flagSimRuns; i++ {
		seed := flagSeed + int64(i)*flagSimSeedStep
		all = append(all, simulate(cfg, i+1, seed, flagSimTicks, logger))
	}

	printReport(os.Stdout, all, flagSimTicks)
}

func printReport(out io.Writer, all []simStats, ticks int) {
	fmt.Fprintf(out, "=== Headless Tank Report ===\n")
	fmt.Fprintf(out, "runs=%d ticks=%d\n\n", len(all), ticks)

	var frames, score, kills, livesLost, overs int
	for _, s := range all {
		ending := "alive"
		if s.gameOver {
			ending = "game over"
			overs++
		}
		fmt.Fprintf(out, "run %2d seed=%d frames=%d score=%d kills=%d spawned=%d lives_lost=%d explosions=%d in_flight=%d end=%s hash=%016x\n",
			s.run, s.seed, s.frames, s.score, s.kills, s.spawned, s.livesLost, s.explosions, s.inFlight, ending, s.hash)
		frames += s.frames
		score += s.score
		kills += s.kills
		livesLost += s.livesLost
	}

	n := float64(len(all))
	fmt.Fprintf(out, "\naggregate: avg_frames=%.1f avg_score=%.1f avg_kills=%.2f avg_lives_lost=%.2f game_overs=%d/%d\n",
		float64(frames)/n, float64(score)/n, float64(kills)/n, float64(livesLost)/n, overs, len(all))
}
