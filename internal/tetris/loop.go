package tetris

import (
	"fmt"
	"io"
	"time"

	"github.com/nuno-faria/tetris/internal/core"
)

// Pacer keeps a fixed-rate loop on budget. After a frame's work it yields
// the remaining slice of the frame budget; a slow frame yields zero instead
// of borrowing time from the frames after it. Game-logic pacing comes from
// the simulation's own timestamps, not from the pacer.
type Pacer struct {
	target time.Duration
	last   time.Time
}

// NewPacer returns a pacer for the given frame rate.
func NewPacer(fps int) *Pacer {
	return &Pacer{target: time.Second / time.Duration(fps)}
}

// Delay returns how long to sleep before the next frame and records the new
// frame boundary. The boundary is recorded whether or not any sleep is due.
func (p *Pacer) Delay(now time.Time) time.Duration {
	var d time.Duration
	if !p.last.IsZero() {
		if elapsed := now.Sub(p.last); elapsed < p.target {
			d = p.target - elapsed
		}
	}
	p.last = now
	return d
}

// Run drives a headless game: one input snapshot, one state transition and
// one rendered frame per iteration, paced at the configured frame rate.
// Every frame is written to the sink as one text block; the loop ends at
// game over and returns the maximum score achieved. A source that never
// yields fresh records degrades the run to natural-fall-only play.
func Run(cfg Config, src Source, sink io.Writer, seed int64) (int, error) {
	game := NewGame(cfg, seed, time.Now())
	screen := core.NewScreen(ScreenSize(cfg))
	pacer := NewPacer(cfg.FPS)

	for {
		st := game.Step(src.Snapshot(), time.Now())
		game.Render(screen)
		if _, err := fmt.Fprintln(sink, screen.String()); err != nil {
			return st.Score, fmt.Errorf("tetris: cannot write frame: %w", err)
		}
		if st.GameOver {
			return st.Score, nil
		}
		time.Sleep(pacer.Delay(time.Now()))
	}
}
