package supervisor

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// RestartAll stops every service, pauses briefly so listening ports can be
// released, then starts everything again. The two phases are not atomic: a
// launch failure in the second phase leaves that slot absent, and the
// operator retries with another restart.
func (s *Supervisor) RestartAll(ctx context.Context) {
	log.Info().Msg("restarting all services")
	s.StopAll()
	select {
	case <-time.After(s.opts.RestartPause):
	case <-ctx.Done():
		return
	}
	s.StartAll(ctx)
}
