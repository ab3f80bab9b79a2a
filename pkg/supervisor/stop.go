package supervisor

import (
	"time"

	"github.com/rs/zerolog/log"
)

// StopOutcome reports what a Stop call actually observed. It is
// informational only; stop failures are never escalated.
type StopOutcome int

const (
	// StopNotTracked: no handle existed for the name.
	StopNotTracked StopOutcome = iota
	// StopAlreadyExited: the child had exited before Stop was called.
	StopAlreadyExited
	// StopTerminated: the child exited within the grace period after TERM.
	StopTerminated
	// StopKilled: the child ignored TERM and was killed.
	StopKilled
	// StopSignalFailed: the recorded PID could not be signalled; a by-name
	// fallback was attempted.
	StopSignalFailed
)

// Stop terminates the tracked instance of the named service and drops its
// handle. Termination is addressed to the exact process group captured at
// spawn time: TERM first, then KILL once the grace period runs out. Only if
// the recorded PID cannot be signalled at all does Stop fall back to
// matching processes by executable name, and it warns loudly when it does.
//
// Stopping a service with no handle is a no-op. The handle is removed
// regardless of how termination went.
func (s *Supervisor) Stop(name string) StopOutcome {
	s.mu.Lock()
	h := s.handles[name]
	delete(s.handles, name)
	s.mu.Unlock()

	if h == nil {
		log.Debug().Str("service", name).Msg("stop: not tracked, nothing to do")
		return StopNotTracked
	}
	if h.exited() {
		log.Debug().Str("service", name).Int("pid", h.PID).Msg("stop: already exited")
		return StopAlreadyExited
	}

	if err := terminateProcess(h.PID); err != nil {
		if errProcessGone(err) {
			// Exited between the check above and the signal. Benign.
			return StopAlreadyExited
		}
		log.Warn().Err(err).Str("service", name).Int("pid", h.PID).
			Msg("could not signal recorded pid, falling back to executable-name match")
		matched := s.stopByExecutableName(h.Desc)
		if matched == 0 {
			log.Warn().Str("service", name).Msg("by-name fallback matched no processes")
		}
		return StopSignalFailed
	}

	if waitExited(h, s.opts.StopGrace) {
		log.Info().Str("service", name).Int("pid", h.PID).Msg("service stopped")
		return StopTerminated
	}

	log.Warn().Str("service", name).Int("pid", h.PID).Msg("service ignored TERM, killing")
	_ = killProcess(h.PID)
	waitExited(h, time.Second)
	return StopKilled
}

// StopAll stops every registered service in registry order. Per-service
// failures are already swallowed by Stop; nothing aggregates them.
func (s *Supervisor) StopAll() {
	for _, desc := range s.services {
		s.Stop(desc.Name)
	}
}

func waitExited(h *Handle, grace time.Duration) bool {
	deadline := time.Now().Add(grace)
	for time.Now().Before(deadline) {
		if h.exited() {
			return true
		}
		time.Sleep(25 * time.Millisecond)
	}
	return h.exited()
}
