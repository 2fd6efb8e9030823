package queue

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/crimsoninnovative/console/internal/core/domain"
)

type memRepo struct {
	mu     sync.Mutex
	events []domain.AuditEvent
	err    error
}

func (r *memRepo) InsertEvent(_ context.Context, e domain.AuditEvent) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *memRepo) bySubject() map[string][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string][]string)
	for _, e := range r.events {
		out[e.Subject] = append(out[e.Subject], e.Action)
	}
	return out
}

func TestDispatcher_PreservesPerSubjectOrder(t *testing.T) {
	repo := &memRepo{}
	d := NewDispatcher(3, repo, zerolog.Nop())
	d.Start(context.Background())

	subjects := []string{"node-1", "node-2", "user-7", "camera-2"}
	for i := 0; i < 20; i++ {
		for _, s := range subjects {
			d.Record(domain.AuditEvent{Subject: s, Action: strconv.Itoa(i)})
		}
	}
	d.Close()

	got := repo.bySubject()
	for _, s := range subjects {
		actions := got[s]
		if len(actions) != 20 {
			t.Fatalf("subject %s: expected 20 events, got %d", s, len(actions))
		}
		for i, a := range actions {
			if a != strconv.Itoa(i) {
				t.Fatalf("subject %s: out of order at %d: %v", s, i, actions)
			}
		}
	}
	if d.Written() != 80 || d.Dropped() != 0 {
		t.Fatalf("unexpected counters: written=%d dropped=%d", d.Written(), d.Dropped())
	}
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	d := newDispatcher(1, 2, &memRepo{}, zerolog.Nop())

	for i := 0; i < 5; i++ {
		d.Record(domain.AuditEvent{Subject: "s"})
	}
	if d.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", d.Depth())
	}
	if d.Dropped() != 3 {
		t.Fatalf("expected 3 dropped, got %d", d.Dropped())
	}
}

func TestDispatcher_RecordAfterCloseIsDropped(t *testing.T) {
	d := NewDispatcher(1, &memRepo{}, zerolog.Nop())
	d.Start(context.Background())
	d.Close()
	d.Close()

	d.Record(domain.AuditEvent{Subject: "late"})
	if d.Dropped() != 1 {
		t.Fatalf("expected dropped event after close, got %d", d.Dropped())
	}
}

func TestDispatcher_CountsFailedWrites(t *testing.T) {
	d := NewDispatcher(2, &memRepo{err: errors.New("mongo down")}, zerolog.Nop())
	d.Start(context.Background())

	d.Record(domain.AuditEvent{Subject: "a"})
	d.Record(domain.AuditEvent{Subject: "b"})
	d.Close()

	if d.Failed() != 2 || d.Written() != 0 {
		t.Fatalf("unexpected counters: failed=%d written=%d", d.Failed(), d.Written())
	}
}

func TestLogRepository_InsertEvent(t *testing.T) {
	var buf bytes.Buffer
	repo := NewLogRepository(zerolog.New(&buf))

	err := repo.InsertEvent(context.Background(), domain.AuditEvent{
		Console: domain.ConsoleGPU,
		Action:  "gpu.node.add",
		Subject: "n1",
		Applied: true,
	})
	if err != nil {
		t.Fatalf("InsertEvent: %v", err)
	}
	if !strings.Contains(buf.String(), `"action":"gpu.node.add"`) {
		t.Fatalf("expected action in log output, got %s", buf.String())
	}
}
