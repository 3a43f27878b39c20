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

type BusinessStore struct {
	col *mongo.Collection
}

func NewBusinessStore(db *mongo.Database) *BusinessStore {
	return &BusinessStore{col: db.Collection("businesses")}
}

func (s *BusinessStore) List(ctx context.Context) ([]models.Business, error) {
	ctx, cancel := listCtx(ctx)
	defer cancel()

	cursor, err := s.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var businesses []models.Business
	if err := cursor.All(ctx, &businesses); err != nil {
		return nil, err
	}
	return businesses, nil
}

func (s *BusinessStore) Insert(ctx context.Context, business *models.Business) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	business.ID = primitive.NewObjectID()
	now := time.Now()
	business.CreatedAt = now
	business.UpdatedAt = now

	_, err := s.col.InsertOne(ctx, business)
	return err
}

func (s *BusinessStore) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Business, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	set["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var business models.Business
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&business)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return business, ErrNotFound
	}
	return business, err
}

func (s *BusinessStore) Delete(ctx context.Context, id primitive.ObjectID) error {
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
