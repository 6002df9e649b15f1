package tetris

import (
	"sync"
	"testing"
	"time"
)

func TestRegisterPrimed(t *testing.T) {
	r := NewRegister()

	rec := r.Snapshot()
	if rec.Cmd != CmdNone || !rec.At.IsZero() {
		t.Fatalf("fresh register snapshot = %+v, want zero record", rec)
	}
}

func TestRegisterLatestWins(t *testing.T) {
	r := NewRegister()

	r.Publish(CmdLeft, t0)
	r.Publish(CmdRight, t0.Add(time.Millisecond))

	rec := r.Snapshot()
	if rec.Cmd != CmdRight {
		t.Fatalf("snapshot command = %v, want right", rec.Cmd)
	}
	if !rec.At.Equal(t0.Add(time.Millisecond)) {
		t.Fatalf("snapshot timestamp = %v, want the latest publish", rec.At)
	}
}

func TestRegisterConcurrent(t *testing.T) {
	r := NewRegister()
	cmds := []Command{CmdRotate, CmdDown, CmdLeft, CmdRight, CmdHardDrop, CmdPause}

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := range cmds {
		wg.Add(1)
		go func(cmd Command) {
			defer wg.Done()
			for j := 0; ; j++ {
				select {
				case <-stop:
					return
				default:
					r.Publish(cmd, t0.Add(time.Duration(j)))
				}
			}
		}(cmds[i])
	}

	// Every snapshot must be a coherent pair from some single publish.
	valid := map[Command]bool{}
	for _, c := range cmds {
		valid[c] = true
	}
	for i := 0; i < 10000; i++ {
		rec := r.Snapshot()
		if !valid[rec.Cmd] && rec.Cmd != CmdNone {
			t.Errorf("snapshot observed torn command %v", rec.Cmd)
			break
		}
	}

	close(stop)
	wg.Wait()
}

func TestCommandString(t *testing.T) {
	names := map[Command]string{
		CmdNone: "none", CmdRotate: "rotate", CmdDown: "down",
		CmdLeft: "left", CmdRight: "right", CmdHardDrop: "hard-drop",
		CmdPause: "pause", Command('x'): "unknown",
	}
	for cmd, want := range names {
		if got := cmd.String(); got != want {
			t.Errorf("Command(%q).String() = %q, want %q", byte(cmd), got, want)
		}
	}
}
