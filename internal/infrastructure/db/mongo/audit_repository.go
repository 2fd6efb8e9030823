package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/crimsoninnovative/console/internal/core/domain"
)

const auditCollection = "audit_events"

// auditDocument is the stored shape of a domain.AuditEvent.
type auditDocument struct {
	Console    string    `bson:"console"`
	Action     string    `bson:"action"`
	Subject    string    `bson:"subject"`
	Actor      string    `bson:"actor,omitempty"`
	Role       string    `bson:"role,omitempty"`
	Applied    bool      `bson:"applied"`
	At         time.Time `bson:"at"`
	RecordedAt time.Time `bson:"recorded_at"`
}

func toAuditDocument(e domain.AuditEvent, now time.Time) auditDocument {
	return auditDocument{
		Console:    string(e.Console),
		Action:     e.Action,
		Subject:    e.Subject,
		Actor:      e.Actor,
		Role:       string(e.Role),
		Applied:    e.Applied,
		At:         e.At.UTC(),
		RecordedAt: now.UTC(),
	}
}

// AuditRepository is an append-only audit trail in the audit_events collection.
type AuditRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection), now: time.Now}
}

// EnsureIndexes creates the lookup indexes. Safe to call on every start.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "subject", Value: 1}, {Key: "at", Value: 1}}},
		{Keys: bson.D{{Key: "console", Value: 1}, {Key: "action", Value: 1}}},
		{Keys: bson.D{{Key: "at", Value: -1}}, Options: options.Index().SetName("at_desc")},
	})
	if err != nil {
		return fmt.Errorf("create audit indexes: %w", err)
	}
	return nil
}

func (r *AuditRepository) InsertEvent(ctx context.Context, e domain.AuditEvent) error {
	if _, err := r.coll.InsertOne(ctx, toAuditDocument(e, r.now())); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
