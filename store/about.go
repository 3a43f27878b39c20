package store

import (
	"context"
	"errors"
	"time"

	"portfolio-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AboutStore manages the singleton about document. All writes are upserts
// against the empty filter, so the collection can never grow past one record
// through this path.
type AboutStore struct {
	col *mongo.Collection
}

func NewAboutStore(db *mongo.Database) *AboutStore {
	return &AboutStore{col: db.Collection("about")}
}

func (s *AboutStore) Get(ctx context.Context) (models.About, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var about models.About
	err := s.col.FindOne(ctx, bson.M{}).Decode(&about)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return about, ErrNotFound
	}
	return about, err
}

// Upsert applies set to the singleton document, creating it when the
// collection is empty, and returns the resulting document.
func (s *AboutStore) Upsert(ctx context.Context, set bson.M) (models.About, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	set["updated_at"] = time.Now()
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"created_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var about models.About
	err := s.col.FindOneAndUpdate(ctx, bson.M{}, update, opts).Decode(&about)
	return about, err
}
