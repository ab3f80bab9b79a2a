// Package registry is the static table of services the launcher manages.
package registry

import (
	"fmt"
	"strconv"

	"github.com/tpen14/INTSYS-Finals/pkg/config"
)

// Service names, used as keys throughout the supervisor.
const (
	ModelServer = "model-server"
	Backend     = "backend"
	Frontend    = "frontend"
)

// Descriptor describes one managed service. Descriptors are built once from
// configuration and never mutated.
type Descriptor struct {
	Name    string
	Title   string
	Command string
	Args    []string
	// Dir is the working directory for the launched process; empty means
	// inherit the launcher's.
	Dir string
	// Env entries (KEY=VALUE) are appended to the inherited environment.
	Env []string
	// ExeName and CmdlineHint form the degraded stop selector: a process
	// matches when its executable name equals ExeName and, if CmdlineHint is
	// set, its command line contains the hint. Used only as a last-resort
	// fallback when the recorded PID cannot be signalled.
	ExeName     string
	CmdlineHint string
	// Port is dialled as the readiness probe after spawn; 0 disables the
	// probe.
	Port int
	// URL is the operator-facing page for this service, if it has one.
	URL string
}

// Services returns the fixed registry in launch order: the model server must
// be up before the backend, and the backend before the frontend.
func Services(cfg config.Config) []Descriptor {
	return []Descriptor{
		{
			Name:    ModelServer,
			Title:   "Ollama model server",
			Command: cfg.ModelServerCommand,
			Args:    cfg.ModelServerArgs,
			ExeName: "ollama",
			Port:    cfg.ModelServerPort,
		},
		{
			Name:    Backend,
			Title:   "Agri-Aid API backend",
			Command: "uvicorn",
			Args: []string{
				"app.main:app",
				"--host", "0.0.0.0",
				"--port", strconv.Itoa(cfg.BackendPort),
				"--workers", strconv.Itoa(cfg.BackendWorkers),
			},
			Dir:         cfg.BackendDir,
			ExeName:     "uvicorn",
			CmdlineHint: "app.main:app",
			Port:        cfg.BackendPort,
			URL:         cfg.BackendDocsURL(),
		},
		{
			Name:    Frontend,
			Title:   "frontend static server",
			Command: "python",
			Args: []string{
				"-m", "http.server",
				strconv.Itoa(cfg.FrontendPort),
				"--bind", "0.0.0.0",
			},
			Dir:         cfg.FrontendDir,
			ExeName:     "python",
			CmdlineHint: "http.server",
			Port:        cfg.FrontendPort,
			URL:         cfg.FrontendURL(),
		},
	}
}

// CommandLine renders the launch command for display.
func (d Descriptor) CommandLine() string {
	line := d.Command
	for _, a := range d.Args {
		line += " " + a
	}
	return line
}

// String implements fmt.Stringer for log fields.
func (d Descriptor) String() string {
	return fmt.Sprintf("%s (%s)", d.Name, d.CommandLine())
}
