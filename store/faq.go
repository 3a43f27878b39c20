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

type FAQStore struct {
	col *mongo.Collection
}

func NewFAQStore(db *mongo.Database) *FAQStore {
	return &FAQStore{col: db.Collection("faqs")}
}

func (s *FAQStore) List(ctx context.Context, category string, activeOnly bool) ([]models.FAQ, error) {
	ctx, cancel := listCtx(ctx)
	defer cancel()

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if activeOnly {
		filter["is_active"] = true
	}

	cursor, err := s.col.Find(ctx, filter, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var faqs []models.FAQ
	if err := cursor.All(ctx, &faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}

func (s *FAQStore) Insert(ctx context.Context, faq *models.FAQ) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	faq.ID = primitive.NewObjectID()
	now := time.Now()
	faq.CreatedAt = now
	faq.UpdatedAt = now

	_, err := s.col.InsertOne(ctx, faq)
	return err
}

func (s *FAQStore) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.FAQ, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	set["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var faq models.FAQ
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&faq)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return faq, ErrNotFound
	}
	return faq, err
}

func (s *FAQStore) Delete(ctx context.Context, id primitive.ObjectID) error {
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
