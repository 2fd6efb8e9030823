// Package telemetry produces the utilisation figures shown on the GPU
// monitoring view. There is no agent on the nodes; values are a bounded
// random walk.
package telemetry

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/crimsoninnovative/console/internal/core/domain"
)

const DefaultInterval = 5 * time.Second

type bounds struct{ min, max int }

var (
	gpuComputeBounds = bounds{60, 95}
	gpuMemoryBounds  = bounds{50, 90}
	cpuBounds        = bounds{30, 70}
	networkBounds    = bounds{20, 60}
)

func (b bounds) clamp(v int) int {
	return max(b.min, min(b.max, v))
}

// Simulator holds the latest sample and advances it on every tick.
type Simulator struct {
	mu       sync.RWMutex
	current  domain.Telemetry
	rng      *rand.Rand
	interval time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

// NewSimulator starts from 78/65/42/34. A nil rng seeds one from the runtime.
func NewSimulator(interval time.Duration, rng *rand.Rand, log zerolog.Logger) *Simulator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := &Simulator{
		rng:      rng,
		interval: interval,
		now:      time.Now,
		log:      log,
	}
	s.current = domain.Telemetry{
		GPUCompute: 78,
		GPUMemory:  65,
		CPU:        42,
		NetworkIO:  34,
		SampledAt:  s.now().UTC(),
	}
	return s
}

func (s *Simulator) Snapshot() domain.Telemetry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Step moves every value by an integer in [-5, 4] and clamps it.
func (s *Simulator) Step() domain.Telemetry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.GPUCompute = gpuComputeBounds.clamp(s.current.GPUCompute + s.jitter())
	s.current.GPUMemory = gpuMemoryBounds.clamp(s.current.GPUMemory + s.jitter())
	s.current.CPU = cpuBounds.clamp(s.current.CPU + s.jitter())
	s.current.NetworkIO = networkBounds.clamp(s.current.NetworkIO + s.jitter())
	s.current.SampledAt = s.now().UTC()
	return s.current
}

func (s *Simulator) jitter() int {
	return s.rng.IntN(10) - 5
}

// Run steps the simulator every interval until ctx is cancelled.
func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.interval).Msg("telemetry simulator started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("telemetry simulator stopped")
			return
		case <-ticker.C:
			t := s.Step()
			s.log.Trace().
				Int("gpu_compute", t.GPUCompute).
				Int("gpu_memory", t.GPUMemory).
				Int("cpu", t.CPU).
				Int("network_io", t.NetworkIO).
				Msg("telemetry sample")
		}
	}
}
