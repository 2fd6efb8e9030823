package queue

import (
	"context"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/crimsoninnovative/console/internal/core/domain"
	"github.com/crimsoninnovative/console/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	writeTimeout   = 5 * time.Second
)

// Dispatcher fans audit events out to a fixed set of workers, sharded on the
// event subject so events about one entity are written in order.
//
// Record never blocks: when a shard is full the event is dropped and counted.
type Dispatcher struct {
	workers []chan domain.AuditEvent
	repo    ports.AuditRepository
	log     zerolog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup

	dropped atomic.Uint64
	written atomic.Uint64
	failed  atomic.Uint64
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	return newDispatcher(numWorkers, channelBuffer, repo, log)
}

func newDispatcher(numWorkers, buffer int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEvent, buffer)
	}
	return d
}

// Start launches the workers. They exit when ctx is cancelled or after Close
// has drained their shard.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Record implements ports.AuditRecorder.
func (d *Dispatcher) Record(event domain.AuditEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.dropped.Add(1)
		return
	}
	select {
	case d.workers[d.shardIndex(event.Subject)] <- event:
	default:
		d.dropped.Add(1)
		d.log.Warn().Str("action", event.Action).Str("subject", event.Subject).Msg("audit queue full, event dropped")
	}
}

// Close stops accepting events and waits for the workers to drain.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for _, ch := range d.workers {
		close(ch)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Depth is the number of events waiting across all shards.
func (d *Dispatcher) Depth() int {
	n := 0
	for _, ch := range d.workers {
		n += len(ch)
	}
	return n
}

func (d *Dispatcher) Dropped() uint64 { return d.dropped.Load() }
func (d *Dispatcher) Written() uint64 { return d.written.Load() }
func (d *Dispatcher) Failed() uint64  { return d.failed.Load() }

// shardIndex maps a subject deterministically to a worker index.
func (d *Dispatcher) shardIndex(subject string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(subject))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEvent) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			d.write(ctx, id, event)
		}
	}
}

func (d *Dispatcher) write(ctx context.Context, worker int, event domain.AuditEvent) {
	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err := d.repo.InsertEvent(wctx, event); err != nil {
		d.failed.Add(1)
		d.log.Error().Err(err).
			Str("action", event.Action).
			Str("subject", event.Subject).
			Int("worker_id", worker).
			Msg("audit write failed")
		return
	}
	d.written.Add(1)
}
