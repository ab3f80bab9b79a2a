package menu

import (
	"fmt"
	"strings"
)

// Plain ASCII table, wide enough for its widest cell.

func (m *Menu) printStatus() {
	infos := m.ctl.Status()
	if len(infos) == 0 {
		fmt.Fprintln(m.out, "no services running")
		return
	}

	rows := make([][3]string, 0, len(infos))
	for _, info := range infos {
		pid := fmt.Sprintf("%d", info.PID)
		state := info.Status.String()
		if up := info.Uptime(); up > 0 {
			state += " (" + up.String() + ")"
		}
		if info.ExitCode != nil {
			state += fmt.Sprintf(" exit=%d", *info.ExitCode)
		}
		rows = append(rows, [3]string{info.Service, state, pid})
	}

	nameW, stateW, pidW := len("SERVICE"), len("STATE"), len("PID")
	for _, r := range rows {
		nameW = maxInt(nameW, len(r[0]))
		stateW = maxInt(stateW, len(r[1]))
		pidW = maxInt(pidW, len(r[2]))
	}

	sep := fmt.Sprintf("+-%s-+-%s-+-%s-+\n",
		strings.Repeat("-", nameW), strings.Repeat("-", stateW), strings.Repeat("-", pidW))
	fmt.Fprint(m.out, sep)
	fmt.Fprintf(m.out, "| %s | %s | %s |\n", pad("SERVICE", nameW), pad("STATE", stateW), pad("PID", pidW))
	fmt.Fprint(m.out, sep)
	for _, r := range rows {
		fmt.Fprintf(m.out, "| %s | %s | %s |\n", pad(r[0], nameW), pad(r[1], stateW), pad(r[2], pidW))
	}
	fmt.Fprint(m.out, sep)
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
