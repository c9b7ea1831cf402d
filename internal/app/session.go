package app

import (
	"fmt"
	"log"
	"strings"
	"time"

	"retrosnake/internal/domain"

	"github.com/atotto/clipboard"
)

// Session sits between the UI and the game core. It owns the GameState for
// the process lifetime, buffers the latest steering request between ticks
// and drives the fixed tick cadence. Everything runs on the UI goroutine.
type Session struct {
	state   *domain.GameState
	pending domain.Direction

	tickDelay time.Duration
	lastTick  time.Time

	runStart      time.Time
	lastRunTime   time.Duration
	runsCompleted int
	longestSnake  int
}

func NewSession(config *domain.GameConfig) *Session {
	s := &Session{}
	s.Configure(config, nil)
	return s
}

// Configure replaces the game with one built from config. The session best
// survives, as it does across plain restarts. A nil previous state seed is
// time-based; tests inject their own through domain.NewGameState directly.
func (s *Session) Configure(config *domain.GameConfig, prev *domain.GameState) {
	s.state = domain.NewGameState(config, nil)
	if prev != nil {
		s.state.HighScore = prev.HighScore
	}
	s.tickDelay = time.Duration(config.TickDelayMs) * time.Millisecond
	s.pending = 0
	s.lastTick = time.Time{}
	s.runStart = time.Now()
}

func (s *Session) State() *domain.GameState {
	return s.state
}

func (s *Session) Config() *domain.GameConfig {
	return s.state.Config
}

// HandleDirection buffers a steering request. Only the latest request
// between two ticks is applied, so mashing keys cannot smuggle a reversal
// through an intermediate direction.
func (s *Session) HandleDirection(dir domain.Direction) {
	if s.state.Phase != domain.PhaseRunning {
		return
	}
	s.pending = dir
}

// Advance runs at most one tick if the cadence is due. The buffered turn is
// applied first, so a turn registered this frame steers this frame's move.
// It reports whether a tick ran and its outcome.
func (s *Session) Advance(now time.Time) (domain.TickOutcome, bool) {
	if s.state.Phase != domain.PhaseRunning {
		return domain.TickGameOver, false
	}

	if s.lastTick.IsZero() {
		s.lastTick = now
	}
	if now.Sub(s.lastTick) < s.tickDelay {
		return domain.TickContinue, false
	}
	s.lastTick = now

	if s.pending != 0 {
		s.state.ApplyDirection(s.pending)
		s.pending = 0
	}

	outcome := s.state.Tick()
	if length := s.state.Snake.Length(); length > s.longestSnake {
		s.longestSnake = length
	}
	if outcome == domain.TickGameOver {
		s.runsCompleted++
		s.lastRunTime = now.Sub(s.runStart)
	}
	return outcome, true
}

// Restart begins a new run. The high score is kept by the core.
func (s *Session) Restart() {
	s.state.Reset()
	s.pending = 0
	s.lastTick = time.Time{}
	s.runStart = time.Now()
}

func (s *Session) RunsCompleted() int {
	return s.runsCompleted
}

func (s *Session) LongestSnake() int {
	return s.longestSnake
}

// Report renders a plain-text summary of the last finished run.
func (s *Session) Report() string {
	var b strings.Builder
	b.WriteString("=== Snake Run Report ===\n")
	fmt.Fprintf(&b, "Result: %s\n", s.state.EndReason)
	fmt.Fprintf(&b, "Score: %d (session best: %d)\n", s.state.Score, s.state.HighScore)
	fmt.Fprintf(&b, "Snake length: %d (longest this session: %d)\n",
		s.state.Snake.Length(), s.longestSnake)
	fmt.Fprintf(&b, "Run time: %s\n", s.lastRunTime.Round(time.Second))
	fmt.Fprintf(&b, "Grid: %dx%d\n", s.state.Field.Width, s.state.Field.Height)
	fmt.Fprintf(&b, "Runs completed: %d\n", s.runsCompleted)
	return b.String()
}

// CopyReport puts the run report on the system clipboard. Clipboard errors
// are logged and swallowed; losing a report never disturbs the game.
func (s *Session) CopyReport() {
	if err := clipboard.WriteAll(s.Report()); err != nil {
		log.Printf("clipboard write failed: %v", err)
	}
}
