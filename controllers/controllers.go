package controllers

import (
	"log"

	"portfolio-api/store"

	"github.com/nats-io/nats.go"
	"go.mongodb.org/mongo-driver/mongo"
)

// Controllers bundles every handler group for route registration.
type Controllers struct {
	Auth       *AuthController
	About      *AboutController
	Blogs      *BlogController
	Contact    *ContactController
	Banners    *BannerController
	Businesses *BusinessController
	Events     *EventController
	FAQs       *FAQController
	Media      *MediaController
	Reviews    *ReviewController
	Invites    *InviteController
	Upload     *UploadController
	Mail       *MailController
	Stats      *StatsController

	Pipeline *MediaPipeline
}

// New wires stores, the media pipeline and the external adapters into the
// handler groups. nc may be nil; the media pipeline then stays disabled.
func New(db *mongo.Database, nc *nats.Conn) *Controllers {
	st := store.New(db)
	pipeline := NewMediaPipeline(nc, st.Media)

	var up Uploader
	if cdn, err := NewCloudinaryUploader(); err != nil {
		log.Printf("Warning: Cloudinary not configured, uploads disabled: %v", err)
	} else {
		up = cdn
	}

	return &Controllers{
		Auth:       NewAuthController(),
		About:      NewAboutController(st.About),
		Blogs:      NewBlogController(st.Blogs),
		Contact:    NewContactController(st.Contact),
		Banners:    NewBannerController(st.Banners),
		Businesses: NewBusinessController(st.Businesses),
		Events:     NewEventController(st.Events),
		FAQs:       NewFAQController(st.FAQs),
		Media:      NewMediaController(st.Media, pipeline),
		Reviews:    NewReviewController(st.Reviews),
		Invites:    NewInviteController(st.Invites, st.Reviews),
		Upload:     NewUploadController(up),
		Mail:       NewMailController(NewMailSender()),
		Stats:      NewStatsController(st),
		Pipeline:   pipeline,
	}
}
