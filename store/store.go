// Package store holds the per-resource Mongo data access. Each resource owns
// its collection; controllers talk to these types through small interfaces so
// handler tests can stub them out.
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors mapped to HTTP statuses by the controllers.
var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateSlug = errors.New("slug already exists")
)

const (
	opTimeout   = 5 * time.Second
	listTimeout = 10 * time.Second
)

func opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}

func listCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, listTimeout)
}

// Store bundles every resource store over one database handle.
type Store struct {
	About      *AboutStore
	Blogs      *BlogStore
	Contact    *ContactStore
	Banners    *BannerStore
	Businesses *BusinessStore
	Events     *EventStore
	FAQs       *FAQStore
	Media      *MediaStore
	Reviews    *ReviewStore
	Invites    *InviteStore

	db *mongo.Database
}

// New wires every resource store to its collection.
func New(db *mongo.Database) *Store {
	return &Store{
		About:      NewAboutStore(db),
		Blogs:      NewBlogStore(db),
		Contact:    NewContactStore(db),
		Banners:    NewBannerStore(db),
		Businesses: NewBusinessStore(db),
		Events:     NewEventStore(db),
		FAQs:       NewFAQStore(db),
		Media:      NewMediaStore(db),
		Reviews:    NewReviewStore(db),
		Invites:    NewInviteStore(db),
		db:         db,
	}
}

// Count returns the number of documents matching filter in the named
// collection. Used by the dashboard stats endpoint.
func (s *Store) Count(ctx context.Context, collection string, filter interface{}) (int64, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	return s.db.Collection(collection).CountDocuments(ctx, filter)
}
