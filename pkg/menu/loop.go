package menu

import (
	"context"
	"fmt"
	"io"
)

// RunLoop is the top-level supervisor loop: launch everything, hand control
// to the menu, and act on how the session ended. Restart cycles back into
// the menu; both exit paths return nil so the process finishes with code 0
// no matter what individual services did.
func RunLoop(ctx context.Context, ctl Controller, m *Menu, out io.Writer) error {
	ctl.StartAll(ctx)
	for {
		switch m.Run(ctx) {
		case OutcomeRestart:
			ctl.RestartAll(ctx)
		case OutcomeExitAll:
			ctl.StopAll()
			fmt.Fprintln(out, "all services stopped")
			return nil
		case OutcomeQuit:
			fmt.Fprintln(out, "leaving services running")
			return nil
		}
	}
}
