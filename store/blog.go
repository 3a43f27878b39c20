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

// BlogFilter narrows and pages blog listings.
type BlogFilter struct {
	Category      string
	PublishedOnly bool
	Page          int
	Limit         int
}

type BlogStore struct {
	col *mongo.Collection
}

func NewBlogStore(db *mongo.Database) *BlogStore {
	return &BlogStore{col: db.Collection("blogs")}
}

// List returns blogs newest-first along with the total matching count.
// Limit <= 0 disables pagination.
func (s *BlogStore) List(ctx context.Context, f BlogFilter) ([]models.Blog, int64, error) {
	ctx, cancel := listCtx(ctx)
	defer cancel()

	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.PublishedOnly {
		filter["is_published"] = true
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

	var blogs []models.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, 0, err
	}

	total, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

func (s *BlogStore) GetBySlug(ctx context.Context, slug string) (models.Blog, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var blog models.Blog
	err := s.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&blog)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return blog, ErrNotFound
	}
	return blog, err
}

func (s *BlogStore) GetByID(ctx context.Context, id primitive.ObjectID) (models.Blog, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var blog models.Blog
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return blog, ErrNotFound
	}
	return blog, err
}

// Insert stores a new blog, enforcing slug uniqueness at write time.
func (s *BlogStore) Insert(ctx context.Context, blog *models.Blog) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	count, err := s.col.CountDocuments(ctx, bson.M{"slug": blog.Slug})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateSlug
	}

	blog.ID = primitive.NewObjectID()
	now := time.Now()
	blog.CreatedAt = now
	blog.UpdatedAt = now

	_, err = s.col.InsertOne(ctx, blog)
	return err
}

// Update applies a partial $set and returns the updated document. A slug in
// the set is checked for collision against every other document first.
func (s *BlogStore) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Blog, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var blog models.Blog
	if slug, ok := set["slug"]; ok {
		count, err := s.col.CountDocuments(ctx, bson.M{"slug": slug, "_id": bson.M{"$ne": id}})
		if err != nil {
			return blog, err
		}
		if count > 0 {
			return blog, ErrDuplicateSlug
		}
	}

	set["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&blog)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return blog, ErrNotFound
	}
	return blog, err
}

func (s *BlogStore) Delete(ctx context.Context, id primitive.ObjectID) error {
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
