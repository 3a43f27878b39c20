package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review invite statuses.
const (
	InviteStatusPending   = "pending"
	InviteStatusCompleted = "completed"
)

// Review is a testimonial. Reviews collected through an invite link start
// inactive and are activated by an admin after moderation.
type Review struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name        string              `bson:"name" json:"name"`
	Image       string              `bson:"image,omitempty" json:"image,omitempty"`
	Designation string              `bson:"designation,omitempty" json:"designation,omitempty"`
	Rating      int                 `bson:"rating" json:"rating"`
	Content     string              `bson:"review" json:"review"`
	IsActive    bool                `bson:"is_active" json:"is_active"`
	InviteID    *primitive.ObjectID `bson:"invite_id,omitempty" json:"invite_id,omitempty"`
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updated_at"`
}

// ReviewInvite lets one external client submit exactly one review through a
// shareable link. Completion is terminal.
type ReviewInvite struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientName  string             `bson:"client_name" json:"client_name"`
	Designation string             `bson:"designation,omitempty" json:"designation,omitempty"`
	Status      string             `bson:"status" json:"status"`
	CompletedAt *time.Time         `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
