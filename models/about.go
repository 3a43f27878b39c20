package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SocialLink is a single social profile reference (platform name + URL).
type SocialLink struct {
	Platform string `bson:"platform" json:"platform"`
	URL      string `bson:"url" json:"url"`
}

// Experience is one entry of the work history shown on the about page.
type Experience struct {
	Company     string `bson:"company" json:"company"`
	Role        string `bson:"role" json:"role"`
	Duration    string `bson:"duration" json:"duration"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// TeamMember is a person listed in the team section.
type TeamMember struct {
	Name    string       `bson:"name" json:"name"`
	Role    string       `bson:"role,omitempty" json:"role,omitempty"`
	Image   string       `bson:"image,omitempty" json:"image,omitempty"`
	Socials []SocialLink `bson:"socials,omitempty" json:"socials,omitempty"`
}

// About is the singleton document backing the about page. There is at most
// one record; writes go through an upsert against a fixed filter.
type About struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	ResumeURL   string             `bson:"resume_url,omitempty" json:"resume_url,omitempty"`
	Skills      []string           `bson:"skills,omitempty" json:"skills,omitempty"`
	Experiences []Experience       `bson:"experiences,omitempty" json:"experiences,omitempty"`
	Team        []TeamMember       `bson:"team,omitempty" json:"team,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
