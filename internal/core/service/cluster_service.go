package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/crimsoninnovative/console/internal/core/domain"
	"github.com/crimsoninnovative/console/internal/core/ports"
)

// activeJobs is a fixed figure; the console has no job scheduler behind it.
const activeJobs = 23

// ClusterService is the GPU console store: users, nodes and the model config.
type ClusterService struct {
	mu    sync.RWMutex
	users []domain.ClusterUser
	nodes []domain.Node
	model domain.ModelConfig

	ids   IDGenerator
	now   func() time.Time
	audit ports.AuditRecorder
	log   zerolog.Logger
}

// NewClusterService returns a store holding the seed users, nodes and model config.
func NewClusterService(ids IDGenerator, audit ports.AuditRecorder, log zerolog.Logger) *ClusterService {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	if audit == nil {
		audit = NopAuditRecorder{}
	}
	return &ClusterService{
		users: seedClusterUsers(),
		nodes: seedNodes(),
		model: seedModelConfig(),
		ids:   ids,
		now:   time.Now,
		audit: audit,
		log:   log,
	}
}

// --- Users ---

func (s *ClusterService) Users() []domain.ClusterUser {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ClusterUser, len(s.users))
	copy(out, s.users)
	return out
}

// AddUser appends a user built from in as given.
func (s *ClusterService) AddUser(in ports.ClusterUserInput) domain.ClusterUser {
	u := domain.ClusterUser{
		ID:            s.ids.NewID(),
		Name:          in.Name,
		Email:         in.Email,
		GPUQuota:      in.GPUQuota,
		JobsCompleted: in.JobsCompleted,
		GPUHours:      in.GPUHours,
		SuccessRate:   in.SuccessRate,
		Status:        in.Status,
		ActiveGPUs:    in.ActiveGPUs,
		Color:         in.Color,
	}

	s.mu.Lock()
	s.users = append(s.users, u)
	s.mu.Unlock()

	s.log.Info().Str("user_id", u.ID).Str("name", u.Name).Int("gpu_quota", u.GPUQuota).Msg("cluster user added")
	s.record("gpu.user.add", u.ID, true)
	return u
}

func (s *ClusterService) UpdateUser(id string, patch domain.ClusterUserPatch) bool {
	s.mu.Lock()
	applied := false
	for i := range s.users {
		if s.users[i].ID == id {
			patch.ApplyTo(&s.users[i])
			applied = true
			break
		}
	}
	s.mu.Unlock()

	s.logMutation("cluster user updated", "user_id", id, applied)
	s.record("gpu.user.update", id, applied)
	return applied
}

func (s *ClusterService) DeleteUser(id string) bool {
	s.mu.Lock()
	applied := false
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i:i], s.users[i+1:]...)
			applied = true
			break
		}
	}
	s.mu.Unlock()

	s.logMutation("cluster user deleted", "user_id", id, applied)
	s.record("gpu.user.delete", id, applied)
	return applied
}

// --- Nodes ---

func (s *ClusterService) Nodes() []domain.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// AddNode appends a node built from in as given. The only failure is hashing
// the credential password.
func (s *ClusterService) AddNode(in ports.NodeInput) (domain.Node, error) {
	n := domain.Node{
		Name:      in.Name,
		IPAddress: in.IPAddress,
		Provider:  in.Provider,
		GPUType:   in.GPUType,
		GPUCount:  in.GPUCount,
		Status:    in.Status,
		Username:  in.Username,
		Uptime:    in.Uptime,
		Load:      in.Load,
		Jobs:      in.Jobs,
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.Node{}, fmt.Errorf("hash node credential: %w", err)
		}
		n.PasswordHash = string(hash)
	}
	n.ID = s.ids.NewID()

	s.mu.Lock()
	s.nodes = append(s.nodes, n)
	s.mu.Unlock()

	s.log.Info().Str("node_id", n.ID).Str("name", n.Name).Str("provider", string(n.Provider)).Int("gpu_count", n.GPUCount).Msg("node added")
	s.record("gpu.node.add", n.ID, true)
	return n, nil
}

func (s *ClusterService) UpdateNode(id string, patch domain.NodePatch) bool {
	s.mu.Lock()
	applied := false
	for i := range s.nodes {
		if s.nodes[i].ID == id {
			patch.ApplyTo(&s.nodes[i])
			applied = true
			break
		}
	}
	s.mu.Unlock()

	s.logMutation("node updated", "node_id", id, applied)
	s.record("gpu.node.update", id, applied)
	return applied
}

func (s *ClusterService) DeleteNode(id string) bool {
	s.mu.Lock()
	applied := false
	for i := range s.nodes {
		if s.nodes[i].ID == id {
			s.nodes = append(s.nodes[:i:i], s.nodes[i+1:]...)
			applied = true
			break
		}
	}
	s.mu.Unlock()

	s.logMutation("node deleted", "node_id", id, applied)
	s.record("gpu.node.delete", id, applied)
	return applied
}

// --- Model config ---

func (s *ClusterService) ModelConfig() domain.ModelConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model
}

func (s *ClusterService) UpdateModelConfig(patch domain.ModelConfigPatch) domain.ModelConfig {
	s.mu.Lock()
	patch.ApplyTo(&s.model)
	m := s.model
	s.mu.Unlock()

	s.log.Info().Str("model", m.Name).Str("precision", string(m.Precision)).Str("framework", string(m.Framework)).Msg("model config updated")
	s.record("gpu.model.update", "model", true)
	return m
}

// Stats derives the dashboard aggregates from the current collections.
func (s *ClusterService) Stats() domain.ClusterStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := domain.ClusterStats{
		TotalNodes:      len(s.nodes),
		ActiveJobs:      activeJobs,
		RegisteredUsers: len(s.users),
	}
	for _, n := range s.nodes {
		st.TotalGPUs += n.GPUCount
	}
	for _, u := range s.users {
		st.CompletedJobs += u.JobsCompleted
	}
	return st
}

func (s *ClusterService) logMutation(msg, key, id string, applied bool) {
	if applied {
		s.log.Info().Str(key, id).Msg(msg)
		return
	}
	s.log.Debug().Str(key, id).Msg(msg + ": unknown id, ignored")
}

func (s *ClusterService) record(action, subject string, applied bool) {
	s.audit.Record(domain.AuditEvent{
		Console: domain.ConsoleGPU,
		Action:  action,
		Subject: subject,
		Applied: applied,
		At:      s.now().UTC(),
	})
}
