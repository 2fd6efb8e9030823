package domain

import "time"

// Telemetry is one sample of cluster utilisation, each value a percentage.
type Telemetry struct {
	GPUCompute int       `json:"gpu_compute"`
	GPUMemory  int       `json:"gpu_memory"`
	CPU        int       `json:"cpu"`
	NetworkIO  int       `json:"network_io"`
	SampledAt  time.Time `json:"sampled_at"`
}
