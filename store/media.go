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

// MediaFilter narrows and pages gallery listings.
type MediaFilter struct {
	Type     string
	Category string
	Page     int
	Limit    int
}

type MediaStore struct {
	col *mongo.Collection
}

func NewMediaStore(db *mongo.Database) *MediaStore {
	return &MediaStore{col: db.Collection("media")}
}

func (s *MediaStore) List(ctx context.Context, f MediaFilter) ([]models.Media, int64, error) {
	ctx, cancel := listCtx(ctx)
	defer cancel()

	filter := bson.M{}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}

	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	if f.Limit > 0 {
		skip := 0
		if f.Page > 1 {
			skip = (f.Page - 1) * f.Limit
		}
		findOptions.SetLimit(int64(f.Limit))
		findOptions.SetSkip(int64(skip))
	}

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var items []models.Media
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	total, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *MediaStore) GetByID(ctx context.Context, id primitive.ObjectID) (models.Media, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var media models.Media
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&media)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return media, ErrNotFound
	}
	return media, err
}

func (s *MediaStore) Insert(ctx context.Context, media *models.Media) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	media.ID = primitive.NewObjectID()
	now := time.Now()
	media.CreatedAt = now
	media.UpdatedAt = now

	_, err := s.col.InsertOne(ctx, media)
	return err
}

func (s *MediaStore) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Media, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	set["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var media models.Media
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&media)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return media, ErrNotFound
	}
	return media, err
}

// UpdateStatus moves a media document between processing states only when it
// is currently in the expected state, mirroring how processing callbacks race
// with admin edits.
func (s *MediaStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to string) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	_, err := s.col.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to, "updated_at": time.Now()}},
	)
	return err
}

func (s *MediaStore) Delete(ctx context.Context, id primitive.ObjectID) error {
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
