package menu

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/tpen14/INTSYS-Finals/pkg/registry"
	"github.com/tpen14/INTSYS-Finals/pkg/supervisor"
)

type fakeController struct {
	calls       []string
	stopOutcome supervisor.StopOutcome
	status      []supervisor.HandleInfo
}

func (f *fakeController) StartAll(ctx context.Context) { f.calls = append(f.calls, "startall") }
func (f *fakeController) Stop(name string) supervisor.StopOutcome {
	f.calls = append(f.calls, "stop:"+name)
	return f.stopOutcome
}
func (f *fakeController) StopAll()                       { f.calls = append(f.calls, "stopall") }
func (f *fakeController) RestartAll(ctx context.Context) { f.calls = append(f.calls, "restartall") }
func (f *fakeController) Status() []supervisor.HandleInfo {
	f.calls = append(f.calls, "status")
	return f.status
}

type fakeOpener struct {
	opened [][]string
}

func (f *fakeOpener) OpenURLs(urls ...string) {
	f.opened = append(f.opened, urls)
}

func runScript(t *testing.T, ctl *fakeController, opener *fakeOpener, script string) (Outcome, string) {
	t.Helper()
	var out bytes.Buffer
	m := New(strings.NewReader(script), &out, ctl, opener, []string{"http://localhost:8000/docs", "http://localhost:3000"})
	outcome := m.Run(context.Background())
	return outcome, out.String()
}

func TestStopCommandsMapToServices(t *testing.T) {
	ctl := &fakeController{stopOutcome: supervisor.StopTerminated}
	outcome, out := runScript(t, ctl, &fakeOpener{}, "1\n2\n3\n5\n")

	if outcome != OutcomeExitAll {
		t.Fatalf("expected OutcomeExitAll, got %d", outcome)
	}
	want := []string{"stop:" + registry.Backend, "stop:" + registry.Frontend, "stop:" + registry.ModelServer}
	if len(ctl.calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, ctl.calls)
	}
	for i := range want {
		if ctl.calls[i] != want[i] {
			t.Fatalf("call %d: expected %s, got %s", i, want[i], ctl.calls[i])
		}
	}
	if !strings.Contains(out, "backend: stopped") {
		t.Fatalf("expected a verified status line, got:\n%s", out)
	}
}

func TestCommandsAreCaseInsensitive(t *testing.T) {
	ctl := &fakeController{}
	if outcome, _ := runScript(t, ctl, &fakeOpener{}, "R\n"); outcome != OutcomeRestart {
		t.Fatalf("expected OutcomeRestart for 'R', got %d", outcome)
	}
	if outcome, _ := runScript(t, ctl, &fakeOpener{}, "q\n"); outcome != OutcomeQuit {
		t.Fatalf("expected OutcomeQuit for 'q', got %d", outcome)
	}
	if outcome, _ := runScript(t, ctl, &fakeOpener{}, "  Q  \n"); outcome != OutcomeQuit {
		t.Fatalf("expected surrounding whitespace to be ignored, got %d", outcome)
	}
}

func TestInvalidInputReprompts(t *testing.T) {
	ctl := &fakeController{}
	outcome, out := runScript(t, ctl, &fakeOpener{}, "9\nnope\nq\n")

	if outcome != OutcomeQuit {
		t.Fatalf("expected the loop to survive invalid input, got %d", outcome)
	}
	if len(ctl.calls) != 0 {
		t.Fatalf("invalid input must not touch the supervisor, got calls %v", ctl.calls)
	}
	if !strings.Contains(out, `unrecognized command "9"`) {
		t.Fatalf("expected a diagnostic for invalid input, got:\n%s", out)
	}
	if strings.Count(out, "[5] stop all and exit") != 3 {
		t.Fatalf("expected the menu to be printed before every read, got:\n%s", out)
	}
}

func TestOpenBrowserCommand(t *testing.T) {
	opener := &fakeOpener{}
	_, out := runScript(t, &fakeController{}, opener, "4\nq\n")

	if len(opener.opened) != 1 {
		t.Fatalf("expected one browser invocation, got %d", len(opener.opened))
	}
	if len(opener.opened[0]) != 2 || opener.opened[0][0] != "http://localhost:8000/docs" {
		t.Fatalf("unexpected urls: %v", opener.opened[0])
	}
	if !strings.Contains(out, "opening browser tabs") {
		t.Fatalf("expected a status line, got:\n%s", out)
	}
}

func TestOpenBrowserDisabledWithoutURLs(t *testing.T) {
	opener := &fakeOpener{}
	var out bytes.Buffer
	m := New(strings.NewReader("4\nq\n"), &out, &fakeController{}, opener, nil)
	if outcome := m.Run(context.Background()); outcome != OutcomeQuit {
		t.Fatalf("expected OutcomeQuit, got %d", outcome)
	}
	if len(opener.opened) != 0 {
		t.Fatalf("expected no browser invocation without urls, got %v", opener.opened)
	}
	if !strings.Contains(out.String(), "browser tabs are disabled") {
		t.Fatalf("expected a disabled message, got:\n%s", out.String())
	}
}

func TestBareEnterPrintsDiagnostic(t *testing.T) {
	ctl := &fakeController{}
	outcome, out := runScript(t, ctl, &fakeOpener{}, "\nq\n")

	if outcome != OutcomeQuit {
		t.Fatalf("expected the loop to survive a bare enter, got %d", outcome)
	}
	if len(ctl.calls) != 0 {
		t.Fatalf("bare enter must not touch the supervisor, got calls %v", ctl.calls)
	}
	if !strings.Contains(out, `unrecognized command ""`) {
		t.Fatalf("expected a diagnostic for empty input, got:\n%s", out)
	}
}

func TestClosedInputQuitsLeavingServices(t *testing.T) {
	ctl := &fakeController{}
	outcome, _ := runScript(t, ctl, &fakeOpener{}, "")

	if outcome != OutcomeQuit {
		t.Fatalf("expected EOF to behave like quit, got %d", outcome)
	}
	if len(ctl.calls) != 0 {
		t.Fatalf("EOF must not stop anything, got calls %v", ctl.calls)
	}
}

func TestStatusCommandPrintsTable(t *testing.T) {
	code := 1
	ctl := &fakeController{status: []supervisor.HandleInfo{
		{Service: registry.Backend, PID: 4242, Status: supervisor.StatusRunning},
		{Service: registry.Frontend, PID: 4243, Status: supervisor.StatusStopped, ExitCode: &code},
	}}
	_, out := runScript(t, ctl, &fakeOpener{}, "s\nq\n")

	for _, want := range []string{"SERVICE", "backend", "4242", "Running", "exit=1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("status table missing %q:\n%s", want, out)
		}
	}
}

func TestStatusCommandWithNothingRunning(t *testing.T) {
	_, out := runScript(t, &fakeController{}, &fakeOpener{}, "S\nq\n")
	if !strings.Contains(out, "no services running") {
		t.Fatalf("expected an empty-state message, got:\n%s", out)
	}
}

func TestStopOutcomeStatusLines(t *testing.T) {
	cases := []struct {
		outcome supervisor.StopOutcome
		want    string
	}{
		{supervisor.StopNotTracked, "backend: not running"},
		{supervisor.StopAlreadyExited, "backend: already exited"},
		{supervisor.StopTerminated, "backend: stopped"},
		{supervisor.StopKilled, "backend: stopped (forced)"},
		{supervisor.StopSignalFailed, "backend: stop by pid failed"},
	}
	for _, tc := range cases {
		ctl := &fakeController{stopOutcome: tc.outcome}
		_, out := runScript(t, ctl, &fakeOpener{}, "1\nq\n")
		if !strings.Contains(out, tc.want) {
			t.Fatalf("outcome %d: expected %q in:\n%s", tc.outcome, tc.want, out)
		}
	}
}
