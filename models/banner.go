package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Banner is a homepage banner slide. Banners are manually ranked via Order
// and listed ascending.
type Banner struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	DesktopImage string             `bson:"desktop_image" json:"desktop_image"`
	MobileImage  string             `bson:"mobile_image,omitempty" json:"mobile_image,omitempty"`
	Link         string             `bson:"link,omitempty" json:"link,omitempty"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	Order        int                `bson:"order" json:"order"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
