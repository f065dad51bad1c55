// filepath: internal/models/models.go
// Package models contains the core data structures for the application.
package models

// UnknownValue is the sentinel reported for identity fields the
// orchestrator did not inject.
const UnknownValue = "unknown"

// PodIdentity holds the identity values injected into the process
// environment, typically via the Kubernetes downward API.
type PodIdentity struct {
	Pod         string `json:"pod"`
	Node        string `json:"node"`
	AppEnv      string `json:"app_env"`
	ServiceName string `json:"service_name"`
}

// Snapshot is the per-request read-only view returned by /whoami. It is
// constructed fresh on each request and never stored.
type Snapshot struct {
	Pod      string `json:"pod"`
	Node     string `json:"node"`
	Hostname string `json:"hostname"`
	Count    int    `json:"count"`
	Ready    bool   `json:"ready"`
}

// ProbeStatus is the response body shared by the health probe endpoints.
type ProbeStatus struct {
	Status string `json:"status"`
}
