package tetris

import "time"

// Step resolves one frame: it snapshots nothing itself, the caller passes
// the frame's single input record and the current time. The previous state
// is never mutated; the returned state is also stored as the game's
// current one.
//
// Resolution order per frame: a pending lock is materialized first (merge,
// clear, score, respawn), then gravity and the input compete for the
// candidate transform, the candidate is validated against the board, and
// the drop distance is recomputed for whatever piece survived.
func (g *Game) Step(in Record, now time.Time) State {
	prev := g.state
	if prev.GameOver {
		return prev
	}

	next := prev
	next.Frame++
	next.LastFrame = now
	next.Paused = in.Cmd == CmdPause

	if prev.Active.Status == StatusSpawnPending {
		g.state = g.respawn(prev, next)
		return g.state
	}

	// A downward commit that landed on the stack locks on the following
	// frame without waiting for another gravity period. Pause holds the
	// piece in place instead.
	if prev.Active.Status == StatusJustMoved && prev.MaxDrop == 0 && !next.Paused {
		next.Active = prev.Active
		next.Active.Status = StatusSpawnPending
		next.MaxDrop = 0
		g.state = next
		return next
	}

	naturalFall := !next.Paused && !now.Before(prev.LastDrop.Add(prev.Gravity))
	fresh := in.At.After(prev.LastInput)

	cand := prev.Active
	cand.Status = StatusNormal
	downward := false
	hardDrop := false

	switch {
	case naturalFall:
		// Gravity supersedes the input this frame; a fresh record stays
		// unconsumed and is picked up on the next frame.
		cand.Origin += g.cfg.stride()
		downward = true
	case fresh:
		switch in.Cmd {
		case CmdRotate:
			cand.Rot = (cand.Rot + 1) % RotationCount
		case CmdLeft:
			cand.Origin--
		case CmdRight:
			cand.Origin++
		case CmdDown:
			cand.Origin += g.cfg.stride()
			downward = true
		case CmdHardDrop:
			if prev.MaxDrop > 0 {
				cand.Origin += prev.MaxDrop * g.cfg.stride()
			}
			downward = true
			hardDrop = true
		}
		next.LastInput = in.At
	}

	cells := g.catalog.Cells(cand.Shape, cand.Rot, cand.Origin)
	switch {
	case !prev.Board.Collides(cells):
		next.Active = cand
		if downward {
			next.Active.Status = StatusJustMoved
			if hardDrop {
				// Backdate so the very next frame runs a natural-fall
				// check and locks instead of stalling a full interval.
				next.LastDrop = now.Add(-prev.Gravity)
			} else {
				next.LastDrop = now
			}
		}
	case downward:
		// Lock event: the piece rests where it was; the actual merge and
		// respawn happen on the next frame.
		next.Active = prev.Active
		next.Active.Status = StatusSpawnPending
	default:
		// Left/Right/Rotate into an obstruction is silently rejected.
		next.Active = prev.Active
		next.Active.Status = StatusNormal
	}

	next.Gravity = gravityInterval(next.Lines, g.cfg)
	next.MaxDrop = dropDistance(g.catalog, next.Board, next.Active)

	g.state = next
	return next
}

// respawn merges the locked piece into the board, clears complete lines,
// applies scoring, and materializes a new active piece from the queue. The
// next-piece generator runs exactly once per lock event. A spawn that
// collides immediately is the terminal state.
func (g *Game) respawn(prev, next State) State {
	cells := g.catalog.Cells(prev.Active.Shape, prev.Active.Rot, prev.Active.Origin)
	board, cleared := prev.Board.Lock(cells).ClearLines(g.cfg.Width)

	next.Board = board
	if cleared > 0 {
		next.Lines = prev.Lines + cleared
		next.Score = prev.Score + awardedPoints(cleared, next.Lines, g.cfg)
	}
	next.Gravity = gravityInterval(next.Lines, g.cfg)

	next.Active = Piece{Shape: prev.Next}
	next.Next = nextShape(g.rng, prev.Next)
	next.MaxDrop = dropDistance(g.catalog, next.Board, next.Active)
	if next.MaxDrop == -1 {
		next.GameOver = true
	}
	return next
}
