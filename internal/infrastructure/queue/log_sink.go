package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/crimsoninnovative/console/internal/core/domain"
)

// LogRepository writes audit events to the logger. It stands in for Mongo
// when MONGO_URI is empty.
type LogRepository struct {
	log zerolog.Logger
}

func NewLogRepository(log zerolog.Logger) *LogRepository {
	return &LogRepository{log: log}
}

func (r *LogRepository) InsertEvent(_ context.Context, e domain.AuditEvent) error {
	r.log.Info().
		Str("console", string(e.Console)).
		Str("action", e.Action).
		Str("subject", e.Subject).
		Str("actor", e.Actor).
		Str("role", string(e.Role)).
		Bool("applied", e.Applied).
		Time("at", e.At).
		Msg("audit")
	return nil
}
