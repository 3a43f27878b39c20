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

// ContactStore manages the singleton contact-details document, with the same
// upsert contract as AboutStore.
type ContactStore struct {
	col *mongo.Collection
}

func NewContactStore(db *mongo.Database) *ContactStore {
	return &ContactStore{col: db.Collection("contact")}
}

func (s *ContactStore) Get(ctx context.Context) (models.Contact, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var contact models.Contact
	err := s.col.FindOne(ctx, bson.M{}).Decode(&contact)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return contact, ErrNotFound
	}
	return contact, err
}

func (s *ContactStore) Upsert(ctx context.Context, set bson.M) (models.Contact, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	set["updated_at"] = time.Now()
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"created_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var contact models.Contact
	err := s.col.FindOneAndUpdate(ctx, bson.M{}, update, opts).Decode(&contact)
	return contact, err
}
