package store

import (
	"context"
	"errors"
	"time"

	"portfolio-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InviteStore struct {
	col *mongo.Collection
}

func NewInviteStore(db *mongo.Database) *InviteStore {
	return &InviteStore{col: db.Collection("review_invites")}
}

func (s *InviteStore) List(ctx context.Context) ([]models.ReviewInvite, error) {
	ctx, cancel := listCtx(ctx)
	defer cancel()

	cursor, err := s.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invites []models.ReviewInvite
	if err := cursor.All(ctx, &invites); err != nil {
		return nil, err
	}
	return invites, nil
}

func (s *InviteStore) GetByID(ctx context.Context, id primitive.ObjectID) (models.ReviewInvite, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var invite models.ReviewInvite
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&invite)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return invite, ErrNotFound
	}
	return invite, err
}

func (s *InviteStore) Insert(ctx context.Context, invite *models.ReviewInvite) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	invite.ID = primitive.NewObjectID()
	invite.Status = models.InviteStatusPending
	now := time.Now()
	invite.CreatedAt = now
	invite.UpdatedAt = now

	_, err := s.col.InsertOne(ctx, invite)
	return err
}

// MarkCompleted transitions a pending invite to completed. The status guard
// in the filter makes the transition single-shot even under concurrent
// submissions; a second caller sees ErrNotFound.
func (s *InviteStore) MarkCompleted(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	now := time.Now()
	result, err := s.col.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": models.InviteStatusPending},
		bson.M{"$set": bson.M{
			"status":       models.InviteStatusCompleted,
			"completed_at": now,
			"updated_at":   now,
		}},
	)
	if err != nil {
		return err
	}
	if result.ModifiedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *InviteStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
