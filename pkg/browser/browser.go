// Package browser opens pages for the operator. Strictly a convenience:
// nothing here affects the service lifecycle, so nothing here returns errors.
package browser

import (
	"os/exec"

	"github.com/rs/zerolog/log"
)

// Launcher spawns a configured browser command. The default configuration
// opens a private/incognito window so the session carries no profile state.
type Launcher struct {
	command string
	args    []string
}

// New builds a launcher around the given browser command and fixed leading
// arguments (for example "--incognito").
func New(command string, args []string) *Launcher {
	return &Launcher{command: command, args: args}
}

// OpenURLs opens all URLs in one browser invocation, fire-and-forget. A
// missing binary or a failed spawn is logged at warn level and otherwise
// ignored.
func (l *Launcher) OpenURLs(urls ...string) {
	if l.command == "" || len(urls) == 0 {
		return
	}
	args := append(append([]string(nil), l.args...), urls...)
	cmd := exec.Command(l.command, args...)
	if err := cmd.Start(); err != nil {
		log.Warn().Err(err).Str("browser", l.command).Msg("could not open browser")
		return
	}
	// Reap the browser process whenever it exits.
	go func() { _ = cmd.Wait() }()
	log.Info().Strs("urls", urls).Msg("opened browser tabs")
}
