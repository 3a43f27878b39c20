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

type EventStore struct {
	col *mongo.Collection
}

func NewEventStore(db *mongo.Database) *EventStore {
	return &EventStore{col: db.Collection("events")}
}

// List returns events newest-first, optionally filtered by status.
func (s *EventStore) List(ctx context.Context, status string) ([]models.Event, error) {
	ctx, cancel := listCtx(ctx)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := s.col.Find(ctx, filter, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventStore) GetBySlug(ctx context.Context, slug string) (models.Event, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var event models.Event
	err := s.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return event, ErrNotFound
	}
	return event, err
}

func (s *EventStore) Insert(ctx context.Context, event *models.Event) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	count, err := s.col.CountDocuments(ctx, bson.M{"slug": event.Slug})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateSlug
	}

	event.ID = primitive.NewObjectID()
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	_, err = s.col.InsertOne(ctx, event)
	return err
}

func (s *EventStore) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Event, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var event models.Event
	if slug, ok := set["slug"]; ok {
		count, err := s.col.CountDocuments(ctx, bson.M{"slug": slug, "_id": bson.M{"$ne": id}})
		if err != nil {
			return event, err
		}
		if count > 0 {
			return event, ErrDuplicateSlug
		}
	}

	set["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return event, ErrNotFound
	}
	return event, err
}

func (s *EventStore) Delete(ctx context.Context, id primitive.ObjectID) error {
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
