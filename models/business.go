package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Business is a client/engagement entry in the business showcase.
type Business struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Logo        string             `bson:"logo,omitempty" json:"logo,omitempty"`
	Website     string             `bson:"website,omitempty" json:"website,omitempty"`
	Role        string             `bson:"role,omitempty" json:"role,omitempty"`
	Duration    string             `bson:"duration,omitempty" json:"duration,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
