package supervisor

import (
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// HandleInfo is a display snapshot of one tracked handle.
type HandleInfo struct {
	Service   string
	Title     string
	ID        string
	PID       int
	StartedAt time.Time
	Status    Status
	ExitCode  *int
}

// Uptime is the time since launch, zero once the child has exited.
func (i HandleInfo) Uptime() time.Duration {
	if i.Status == StatusStopped {
		return 0
	}
	return time.Since(i.StartedAt).Truncate(time.Second)
}

// Status returns a snapshot of all tracked handles in registry order.
// Services with no handle are simply absent. A handle whose PID no longer
// exists but whose exit has not been observed yet is reported as Unknown
// rather than Running.
func (s *Supervisor) Status() []HandleInfo {
	s.mu.RLock()
	handles := make([]*Handle, 0, len(s.handles))
	for _, desc := range s.services {
		if h, ok := s.handles[desc.Name]; ok {
			handles = append(handles, h)
		}
	}
	s.mu.RUnlock()

	infos := make([]HandleInfo, 0, len(handles))
	for _, h := range handles {
		info := h.snapshot()
		if info.Status == StatusRunning {
			if alive, err := process.PidExists(int32(info.PID)); err == nil && !alive {
				info.Status = StatusUnknown
			}
		}
		infos = append(infos, info)
	}
	return infos
}

// Lookup returns the snapshot for one service name, if tracked.
func (s *Supervisor) Lookup(name string) (HandleInfo, bool) {
	s.mu.RLock()
	h, ok := s.handles[name]
	s.mu.RUnlock()
	if !ok {
		return HandleInfo{}, false
	}
	return h.snapshot(), true
}
