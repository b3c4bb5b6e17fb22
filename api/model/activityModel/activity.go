package activitymodel

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sunthewhat/koa-member-api/internal/badge"
	"github.com/sunthewhat/koa-member-api/type/shared/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ActionDownload = "download"
	ActionMail     = "mail"
	ActionCLI      = "cli"
)

// ActivityRepository stores the badge audit trail in MongoDB
type ActivityRepository struct {
	db *mongo.Database
}

// NewActivityRepository creates a new activity repository with dependency injection
func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) collection() *mongo.Collection {
	return r.db.Collection(model.CollectionBadgeActivity)
}

// Record inserts one activity entry, filling in the ID and timestamp when
// they are missing.
func (r *ActivityRepository) Record(activity *model.BadgeActivity) error {
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.collection().InsertOne(ctx, activity); err != nil {
		slog.Error("ActivityModel Record failed", "error", err, "koalm", activity.KoalmNumber, "action", activity.Action)
		return err
	}

	return nil
}

// ListByMember returns the newest activity entries of a member first.
func (r *ActivityRepository) ListByMember(koalm string, limit int64) ([]*model.BadgeActivity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection().Find(ctx, bson.M{"koalm_number": koalm}, opts)
	if err != nil {
		slog.Error("ActivityModel ListByMember find failed", "error", err, "koalm", koalm)
		return nil, err
	}
	defer cursor.Close(ctx)

	activities := []*model.BadgeActivity{}
	if err = cursor.All(ctx, &activities); err != nil {
		slog.Error("ActivityModel ListByMember cursor failed", "error", err, "koalm", koalm)
		return nil, err
	}

	return activities, nil
}

// FromRender builds the audit entry for one render attempt.
func FromRender(koalm string, action string, requestedBy string, rendered *badge.RenderedBadge, renderErr error) *model.BadgeActivity {
	activity := &model.BadgeActivity{
		KoalmNumber: koalm,
		RequestedBy: requestedBy,
		Action:      action,
		Outcome:     badge.StateDone.String(),
	}

	if renderErr != nil {
		activity.Outcome = badge.StateError.String()
		activity.Error = renderErr.Error()
		return activity
	}

	activity.Size = len(rendered.Content)
	for _, state := range rendered.States {
		activity.States = append(activity.States, state.String())
	}
	return activity
}
