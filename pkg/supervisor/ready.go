package supervisor

import (
	"context"
	"net"
	"strconv"
	"time"
)

const (
	readyDialTimeout  = 500 * time.Millisecond
	readyPollInterval = 200 * time.Millisecond
)

// waitListening polls the service's port on loopback until something accepts
// a connection or the timeout elapses. This replaces a fixed post-launch
// sleep: a listening socket is the one readiness signal all three services
// share.
func waitListening(ctx context.Context, port int, timeout time.Duration) bool {
	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", addr, readyDialTimeout)
		if err == nil {
			_ = conn.Close()
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(readyPollInterval):
		}
	}
	return false
}
