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

type BannerStore struct {
	col *mongo.Collection
}

func NewBannerStore(db *mongo.Database) *BannerStore {
	return &BannerStore{col: db.Collection("banners")}
}

// List returns banners in their manual order. activeOnly restricts the list
// to banners currently shown on the public site.
func (s *BannerStore) List(ctx context.Context, activeOnly bool) ([]models.Banner, error) {
	ctx, cancel := listCtx(ctx)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	cursor, err := s.col.Find(ctx, filter, options.Find().SetSort(bson.M{"order": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var banners []models.Banner
	if err := cursor.All(ctx, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

func (s *BannerStore) Insert(ctx context.Context, banner *models.Banner) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	banner.ID = primitive.NewObjectID()
	now := time.Now()
	banner.CreatedAt = now
	banner.UpdatedAt = now

	_, err := s.col.InsertOne(ctx, banner)
	return err
}

func (s *BannerStore) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Banner, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	set["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var banner models.Banner
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&banner)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return banner, ErrNotFound
	}
	return banner, err
}

func (s *BannerStore) Delete(ctx context.Context, id primitive.ObjectID) error {
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
