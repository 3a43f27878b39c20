package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Media types and sources.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"

	MediaSourceLocal   = "local"
	MediaSourceYouTube = "youtube"
)

// Media processing statuses. Locally hosted media passes through the
// processing pipeline (pending -> processing -> ready); everything else is
// ready on insert.
const (
	MediaStatusPending    = "pending"
	MediaStatusProcessing = "processing"
	MediaStatusReady      = "ready"
)

// ValidMediaType reports whether t is a known media type.
func ValidMediaType(t string) bool {
	return t == MediaTypeImage || t == MediaTypeVideo
}

// ValidMediaSource reports whether s is a known media source.
func ValidMediaSource(s string) bool {
	return s == MediaSourceLocal || s == MediaSourceYouTube
}

// Media is one gallery item.
type Media struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type      string             `bson:"type" json:"type"`
	URL       string             `bson:"url" json:"url"`
	Thumbnail string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	Source    string             `bson:"source" json:"source"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
