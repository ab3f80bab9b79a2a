package supervisor

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tpen14/INTSYS-Finals/pkg/registry"
)

// ErrAlreadyRunning is returned by Start when a live handle already exists
// for the service name.
var ErrAlreadyRunning = errors.New("service already running")

// StartAll launches every registered service in registry order, skipping any
// with a live handle. Spawn failures are logged and leave the slot absent so
// a later restart can retry; they never abort the remaining launches.
func (s *Supervisor) StartAll(ctx context.Context) {
	for _, desc := range s.services {
		if err := s.Start(ctx, desc); err != nil {
			if errors.Is(err, ErrAlreadyRunning) {
				log.Warn().Str("service", desc.Name).Msg("already running, skipping launch")
				continue
			}
			log.Warn().Err(err).Str("service", desc.Name).Msg("failed to start service")
		}
	}
}

// Start spawns one service as a detached background process and records its
// handle. The child goes into its own process group with stdin from the null
// device, so it both survives a later quit and can be signalled as a unit.
//
// After a successful spawn the handle is Starting; it becomes Running once
// the descriptor's port accepts a connection, or Unknown if the readiness
// window elapses first. The spawn call succeeding is all Start ever verifies
// about the child itself.
func (s *Supervisor) Start(ctx context.Context, desc registry.Descriptor) error {
	s.mu.Lock()
	if h, ok := s.handles[desc.Name]; ok && !h.exited() {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.mu.Unlock()

	cmd := exec.Command(desc.Command, desc.Args...)
	cmd.Dir = desc.Dir
	if len(desc.Env) > 0 {
		cmd.Env = append(os.Environ(), desc.Env...)
	}
	cmd.SysProcAttr = detachedSysProcAttr()

	logFile, err := s.openLogFile(desc.Name)
	if err != nil {
		log.Warn().Err(err).Str("service", desc.Name).Msg("cannot open log file, discarding child output")
	}
	if logFile != nil {
		cmd.Stdout = logFile
		cmd.Stderr = logFile
	}
	// cmd.Stdin stays nil: the child reads from the null device and never
	// competes with the menu for the terminal.

	log.Info().Str("service", desc.Name).Str("command", desc.CommandLine()).Msg("starting service")
	if err := cmd.Start(); err != nil {
		if logFile != nil {
			_ = logFile.Close()
		}
		return err
	}

	h := &Handle{
		ID:        uuid.NewString(),
		Desc:      desc,
		PID:       cmd.Process.Pid,
		StartedAt: time.Now(),
		cmd:       cmd,
		status:    StatusStarting,
	}

	s.mu.Lock()
	s.handles[desc.Name] = h
	s.mu.Unlock()

	go s.wait(h, logFile)

	if desc.Port == 0 {
		h.advance(StatusStarting, StatusRunning)
		return nil
	}
	if waitListening(ctx, desc.Port, s.opts.ReadyTimeout) {
		h.advance(StatusStarting, StatusRunning)
		log.Info().Str("service", desc.Name).Int("pid", h.PID).Int("port", desc.Port).Msg("service ready")
	} else {
		h.advance(StatusStarting, StatusUnknown)
		log.Warn().Str("service", desc.Name).Int("pid", h.PID).Int("port", desc.Port).
			Dur("timeout", s.opts.ReadyTimeout).Msg("service did not become ready; keeping handle")
	}
	return nil
}

// wait observes the child's exit and records it on the handle. This is the
// only writer of exitCode/endedAt, and the only path to StatusStopped.
func (s *Supervisor) wait(h *Handle, logFile *os.File) {
	err := h.cmd.Wait()
	if logFile != nil {
		_ = logFile.Close()
	}

	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		} else {
			code = -1
		}
	}

	h.mu.Lock()
	h.exitCode = &code
	now := time.Now()
	h.endedAt = &now
	h.status = StatusStopped
	h.mu.Unlock()

	log.Debug().Str("service", h.Desc.Name).Int("pid", h.PID).Int("exit_code", code).Msg("service exited")
}
