package menu

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func runLoopScript(t *testing.T, script string) (*fakeController, string) {
	t.Helper()
	ctl := &fakeController{}
	var out bytes.Buffer
	m := New(strings.NewReader(script), &out, ctl, &fakeOpener{}, nil)
	if err := RunLoop(context.Background(), ctl, m, &out); err != nil {
		t.Fatalf("RunLoop returned an error: %v", err)
	}
	return ctl, out.String()
}

func TestLoopStartsThenStopsOnExitAll(t *testing.T) {
	ctl, out := runLoopScript(t, "5\n")

	want := []string{"startall", "stopall"}
	if len(ctl.calls) != len(want) || ctl.calls[0] != want[0] || ctl.calls[1] != want[1] {
		t.Fatalf("expected calls %v, got %v", want, ctl.calls)
	}
	if !strings.Contains(out, "all services stopped") {
		t.Fatalf("expected the exit status line, got:\n%s", out)
	}
}

func TestLoopQuitLeavesServicesRunning(t *testing.T) {
	ctl, out := runLoopScript(t, "q\n")

	if len(ctl.calls) != 1 || ctl.calls[0] != "startall" {
		t.Fatalf("quit must not stop anything, got calls %v", ctl.calls)
	}
	if !strings.Contains(out, "leaving services running") {
		t.Fatalf("expected the quit status line, got:\n%s", out)
	}
}

func TestLoopRestartCyclesBackToMenu(t *testing.T) {
	ctl, _ := runLoopScript(t, "r\nr\nq\n")

	want := []string{"startall", "restartall", "restartall"}
	if len(ctl.calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, ctl.calls)
	}
	for i := range want {
		if ctl.calls[i] != want[i] {
			t.Fatalf("call %d: expected %s, got %s", i, want[i], ctl.calls[i])
		}
	}
}
