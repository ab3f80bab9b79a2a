// Package supervisor owns the set of launched services and their lifecycle.
package supervisor

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/tpen14/INTSYS-Finals/pkg/registry"
)

// Status of a tracked service instance.
type Status int

const (
	StatusUnknown Status = iota
	StatusStarting
	StatusRunning
	StatusStopped
)

func (s Status) String() string {
	switch s {
	case StatusStarting:
		return "Starting"
	case StatusRunning:
		return "Running"
	case StatusStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Handle is the supervisor's record of one launched service instance.
type Handle struct {
	ID        string
	Desc      registry.Descriptor
	PID       int
	StartedAt time.Time

	cmd *exec.Cmd

	mu       sync.RWMutex
	status   Status
	exitCode *int
	endedAt  *time.Time
}

func (h *Handle) snapshot() HandleInfo {
	h.mu.RLock()
	defer h.mu.RUnlock()

	info := HandleInfo{
		Service:   h.Desc.Name,
		Title:     h.Desc.Title,
		ID:        h.ID,
		PID:       h.PID,
		StartedAt: h.StartedAt,
		Status:    h.status,
	}
	if h.exitCode != nil {
		code := *h.exitCode
		info.ExitCode = &code
	}
	return info
}

func (h *Handle) exited() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status == StatusStopped
}

// advance moves the handle from one status to another; the waiter goroutine
// wins any race by setting StatusStopped, which advance never overwrites.
func (h *Handle) advance(from, to Status) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.status != from {
		return false
	}
	h.status = to
	return true
}

// Options tune the supervisor; zero values fall back to the defaults below.
type Options struct {
	ReadyTimeout time.Duration
	RestartPause time.Duration
	StopGrace    time.Duration
	// LogDir receives one append-mode log file per service for the children's
	// combined stdout/stderr; empty discards child output.
	LogDir string
}

const (
	defaultReadyTimeout = 30 * time.Second
	defaultRestartPause = 2 * time.Second
	defaultStopGrace    = 3 * time.Second
)

// Supervisor tracks at most one live handle per registered service name.
// All mutations of the handle map go through the one mutex; waiter
// goroutines only touch their own handle's fields.
type Supervisor struct {
	services []registry.Descriptor
	opts     Options

	mu      sync.RWMutex
	handles map[string]*Handle
}

// New creates a supervisor for the given ordered service registry.
func New(services []registry.Descriptor, opts Options) *Supervisor {
	if opts.ReadyTimeout <= 0 {
		opts.ReadyTimeout = defaultReadyTimeout
	}
	if opts.RestartPause <= 0 {
		opts.RestartPause = defaultRestartPause
	}
	if opts.StopGrace <= 0 {
		opts.StopGrace = defaultStopGrace
	}
	return &Supervisor{
		services: services,
		opts:     opts,
		handles:  make(map[string]*Handle),
	}
}

// Services returns the registry this supervisor was built with.
func (s *Supervisor) Services() []registry.Descriptor {
	return s.services
}

func (s *Supervisor) openLogFile(name string) (*os.File, error) {
	if s.opts.LogDir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(s.opts.LogDir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(s.opts.LogDir, name+".log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
