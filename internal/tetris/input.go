package tetris

import (
	"sync/atomic"
	"time"
)

// Command is the one-character command code published by an input producer.
// The codes match the wire form used by external producers.
type Command byte

const (
	CmdNone     Command = 0
	CmdRotate   Command = 'u'
	CmdDown     Command = 'd'
	CmdLeft     Command = 'l'
	CmdRight    Command = 'r'
	CmdHardDrop Command = 's'
	CmdPause    Command = 'p'
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdRotate:
		return "rotate"
	case CmdDown:
		return "down"
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdHardDrop:
		return "hard-drop"
	case CmdPause:
		return "pause"
	default:
		return "unknown"
	}
}

// Record is one published input: the latest command and when it was pressed.
// The simulation treats a record as new only when its timestamp is strictly
// greater than the last processed one, so timestamp monotonicity is a hard
// contract on the producer.
type Record struct {
	Cmd Command
	At  time.Time
}

// Source provides one input snapshot per frame. A snapshot must be a
// complete (command, timestamp) pair even while a producer is writing
// concurrently; the frame's computation treats it as frozen.
type Source interface {
	Snapshot() Record
}

// Register is the shared latest-command cell backing interactive play.
// The keyboard layer publishes into it, the simulation snapshots it once
// per frame. Reads and writes go through an atomic pointer swap, so a
// snapshot never observes a half-written record.
type Register struct {
	rec atomic.Pointer[Record]
}

// NewRegister returns a register primed with the default no-op record.
func NewRegister() *Register {
	r := &Register{}
	r.rec.Store(&Record{})
	return r
}

// Publish replaces the register's record.
func (r *Register) Publish(cmd Command, at time.Time) {
	rec := Record{Cmd: cmd, At: at}
	r.rec.Store(&rec)
}

// Snapshot returns the current record.
func (r *Register) Snapshot() Record {
	return *r.rec.Load()
}
