package tanks

import (
	"math/rand"

	"github.com/vovakirdan/tui-tanks/internal/config"
	"github.com/vovakirdan/tui-tanks/internal/core"
)

// SessionState is the top-level game state.
type SessionState int

const (
	StateRunning SessionState = iota
	StatePaused
	StateGameOver
)

// String returns the lower-case name of the state.
func (s SessionState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Session owns the World lifecycle and the running/paused/game-over machine.
type Session struct {
	cfg   config.TanksConfig
	seeds *rand.Rand
	world *World
	state SessionState
	quit  bool

	events []Event
}

// NewSession creates a running session with a fresh World. Every World the
// session creates, including restarts, draws its seed from seed.
func NewSession(cfg config.TanksConfig, seed int64) *Session {
	s := &Session{
		cfg:   cfg,
		seeds: rand.New(rand.NewSource(seed)),
		state: StateRunning,
	}
	s.world = s.newWorld()
	return s
}

func (s *Session) newWorld() *World {
	return NewWorld(s.cfg, NewSource(s.seeds.Int63()))
}

// Step handles at most one transition action, then updates the World once
// if the session is running. Update is never called while paused or over.
func (s *Session) Step(in InputQuery) SessionState {
	switch {
	case in.Held(core.ActionRestart) && (s.state == StatePaused || s.state == StateGameOver):
		s.Restart()
		return s.state
	case in.Held(core.ActionPause) && s.state == StateRunning:
		s.setState(StatePaused)
		return s.state
	case in.Held(core.ActionPause) && s.state == StatePaused:
		s.setState(StateRunning)
		return s.state
	case in.Held(core.ActionQuit) && s.state == StatePaused:
		s.quit = true
		return s.state
	}

	if s.state != StateRunning {
		return s.state
	}

	s.world.Update(in)
	s.events = append(s.events, s.world.DrainEvents()...)

	if !s.world.player.Alive() {
		s.setState(StateGameOver)
	}
	return s.state
}

// Restart replaces the World with a fresh one and resumes running.
func (s *Session) Restart() {
	s.world = s.newWorld()
	s.events = append(s.events, s.world.DrainEvents()...)
	s.quit = false
	s.setState(StateRunning)
}

func (s *Session) setState(to SessionState) {
	if s.state == to {
		return
	}
	s.events = append(s.events, SessionStateChanged{From: s.state, To: to})
	s.state = to
}

// State returns the current session state.
func (s *Session) State() SessionState { return s.state }

// World returns the current World for read-only inspection.
func (s *Session) World() *World { return s.world }

// QuitRequested reports whether the player chose to quit from the pause screen.
func (s *Session) QuitRequested() bool { return s.quit }

// DrainEvents returns World and session events since the last call.
func (s *Session) DrainEvents() []Event {
	events := s.events
	s.events = nil
	return events
}
