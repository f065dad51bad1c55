// filepath: internal/services/readiness.go
package services

import (
	"time"

	"podscope/internal/clock"
)

var _ ReadinessService = (*readinessService)(nil)

// readinessService gates traffic on elapsed wall-clock time since process
// start, simulating a slow warmup for readiness probe demonstrations.
type readinessService struct {
	startTime  time.Time
	readyAfter time.Duration
	clk        clock.Clock
}

// NewReadinessService creates a readiness gate. readyAfterSec must already be
// validated by the config layer.
func NewReadinessService(startTime time.Time, readyAfterSec int, clk clock.Clock) *readinessService {
	return &readinessService{
		startTime:  startTime,
		readyAfter: time.Duration(readyAfterSec) * time.Second,
		clk:        clk,
	}
}

// IsReady reports whether more than the warmup period has elapsed since
// process start. Elapsed time exactly equal to the threshold is still not
// ready.
func (s *readinessService) IsReady() bool {
	return s.clk.Now().Sub(s.startTime) > s.readyAfter
}

// ReadyAfterSec returns the warmup period in seconds.
func (s *readinessService) ReadyAfterSec() int {
	return int(s.readyAfter / time.Second)
}
