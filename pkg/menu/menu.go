// Package menu is the interactive control surface of the launcher: a
// blocking read-eval loop over a fixed command vocabulary.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/tpen14/INTSYS-Finals/pkg/registry"
	"github.com/tpen14/INTSYS-Finals/pkg/supervisor"
)

// Controller is the slice of the supervisor the menu drives.
type Controller interface {
	StartAll(ctx context.Context)
	Stop(name string) supervisor.StopOutcome
	StopAll()
	RestartAll(ctx context.Context)
	Status() []supervisor.HandleInfo
}

// Opener opens operator-facing pages.
type Opener interface {
	OpenURLs(urls ...string)
}

// Outcome is how a menu session ended.
type Outcome int

const (
	// OutcomeExitAll: stop every service, then exit.
	OutcomeExitAll Outcome = iota
	// OutcomeRestart: stop and relaunch every service, then show the menu again.
	OutcomeRestart
	// OutcomeQuit: exit and leave the services running.
	OutcomeQuit
)

// Menu reads operator commands and maps them onto the controller.
type Menu struct {
	scanner *bufio.Scanner
	out     io.Writer
	ctl     Controller
	opener  Opener
	urls    []string
}

// New builds a menu reading commands from in and writing prompts to out.
// urls are the pages opened by the browser command.
func New(in io.Reader, out io.Writer, ctl Controller, opener Opener, urls []string) *Menu {
	return &Menu{
		scanner: bufio.NewScanner(in),
		out:     out,
		ctl:     ctl,
		opener:  opener,
		urls:    urls,
	}
}

// Run loops until the operator picks an exiting command and reports which
// one it was. Unrecognized input prints a diagnostic and re-prompts; it
// never ends the session or touches any service.
func (m *Menu) Run(ctx context.Context) Outcome {
	for {
		m.printPrompt()
		if !m.scanner.Scan() {
			// Input is gone (EOF or closed terminal). Leaving the services
			// running is the only safe reading of that.
			fmt.Fprintln(m.out, "input closed; leaving services running")
			return OutcomeQuit
		}
		cmd := strings.ToLower(strings.TrimSpace(m.scanner.Text()))
		switch cmd {
		case "1":
			m.stop(registry.Backend)
		case "2":
			m.stop(registry.Frontend)
		case "3":
			m.stop(registry.ModelServer)
		case "4":
			if len(m.urls) == 0 {
				fmt.Fprintln(m.out, "browser tabs are disabled")
				break
			}
			m.opener.OpenURLs(m.urls...)
			fmt.Fprintln(m.out, "opening browser tabs")
		case "5":
			return OutcomeExitAll
		case "r":
			return OutcomeRestart
		case "q":
			return OutcomeQuit
		case "s":
			m.printStatus()
		default:
			fmt.Fprintf(m.out, "unrecognized command %q\n", cmd)
		}
	}
}

func (m *Menu) stop(name string) {
	switch m.ctl.Stop(name) {
	case supervisor.StopNotTracked:
		fmt.Fprintf(m.out, "%s: not running\n", name)
	case supervisor.StopAlreadyExited:
		fmt.Fprintf(m.out, "%s: already exited\n", name)
	case supervisor.StopTerminated:
		fmt.Fprintf(m.out, "%s: stopped\n", name)
	case supervisor.StopKilled:
		fmt.Fprintf(m.out, "%s: stopped (forced)\n", name)
	case supervisor.StopSignalFailed:
		fmt.Fprintf(m.out, "%s: stop by pid failed, tried by-name fallback\n", name)
	}
}

func (m *Menu) printPrompt() {
	fmt.Fprint(m.out, `
  [1] stop backend
  [2] stop frontend
  [3] stop model server
  [4] open API docs + site in browser
  [5] stop all and exit
  [R] restart all
  [Q] quit, leave services running
  [S] show status
> `)
}
