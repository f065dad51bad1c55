// filepath: internal/services/identity.go
package services

import (
	"fmt"
	"os"

	"podscope/internal/config"
	"podscope/internal/models"
	"podscope/internal/shared"
)

var _ IdentityService = (*identityService)(nil)

type identityService struct {
	identity models.PodIdentity
	counter  CounterService
	gate     ReadinessService

	// hostname is swapped out in tests to exercise the failure path.
	hostname func() (string, error)
}

// NewIdentityService creates a new IdentityService. The identity values are
// read once from configuration; hostname and counter state are collected
// fresh on every Snapshot call.
func NewIdentityService(cfg *config.Config, counter CounterService, gate ReadinessService) *identityService {
	return &identityService{
		identity: models.PodIdentity{
			Pod:         orUnknown(cfg.Identity.PodName),
			Node:        orUnknown(cfg.Identity.NodeName),
			AppEnv:      orUnknown(cfg.Identity.AppEnv),
			ServiceName: orUnknown(cfg.Identity.ServiceName),
		},
		counter:  counter,
		gate:     gate,
		hostname: os.Hostname,
	}
}

// PodIdentity returns the environment-supplied identity values.
func (s *identityService) PodIdentity() models.PodIdentity {
	return s.identity
}

// Snapshot collects the current hostname, counter value and readiness state.
func (s *identityService) Snapshot() (models.Snapshot, error) {
	host, err := s.hostname()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %v", shared.ErrHostnameUnavailable, err)
	}
	return models.Snapshot{
		Pod:      s.identity.Pod,
		Node:     s.identity.Node,
		Hostname: host,
		Count:    s.counter.Value(),
		Ready:    s.gate.IsReady(),
	}, nil
}

func orUnknown(v string) string {
	if v == "" {
		return models.UnknownValue
	}
	return v
}
