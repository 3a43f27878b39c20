package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"portfolio-api/models"

	"github.com/nats-io/nats.go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// Singleton NATS connection
	natsConn *nats.Conn
	natsOnce sync.Once
	natsErr  error
)

// NATS subjects for media processing jobs.
const (
	subjectCompress  = "media.compress"
	subjectThumbnail = "media.generatethumbnail"
)

// ProcessRequest is the job payload sent to the media processing workers.
type ProcessRequest struct {
	MediaID   string `json:"media_id"`
	URL       string `json:"url"`
	MediaType string `json:"media_type"`
}

// InitNATS initializes the NATS connection. The service keeps running
// without it; the pipeline just stays disabled.
func InitNATS() (*nats.Conn, error) {
	natsOnce.Do(func() {
		natsURL := os.Getenv("NATS_URL")
		if natsURL == "" {
			natsErr = fmt.Errorf("NATS_URL not set")
			return
		}

		nc, err := nats.Connect(natsURL)
		if err != nil {
			natsErr = fmt.Errorf("failed to connect to NATS: %w", err)
			log.Printf("NATS connection error: %v", natsErr)
			return
		}

		log.Printf("Connected to NATS server at %s", natsURL)
		natsConn = nc
	})

	return natsConn, natsErr
}

// CloseNATS closes the NATS connection during shutdown.
func CloseNATS() {
	if natsConn != nil {
		natsConn.Close()
		natsConn = nil
	}
}

// pipelineMediaStore is the slice of the media store the pipeline writes
// through when processing results arrive.
type pipelineMediaStore interface {
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Media, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to string) error
}

// MediaPipeline publishes processing jobs for locally hosted media and
// tracks how many results are still outstanding per item.
type MediaPipeline struct {
	nc      *nats.Conn
	media   pipelineMediaStore
	tracker *processingTracker
}

func NewMediaPipeline(nc *nats.Conn, media pipelineMediaStore) *MediaPipeline {
	return &MediaPipeline{
		nc:      nc,
		media:   media,
		tracker: newProcessingTracker(),
	}
}

// Enabled reports whether the pipeline has a NATS connection to publish on.
func (p *MediaPipeline) Enabled() bool {
	return p != nil && p.nc != nil
}

// countTasks returns how many processing results the pipeline expects back
// for one media item: images get compressed, videos additionally get a
// generated thumbnail.
func countTasks(media models.Media) int {
	if media.Type == models.MediaTypeVideo {
		return 2
	}
	return 1
}

// Process queues the processing jobs for a media item and moves it to the
// processing state. Fire-and-forget: publish failures are logged and the
// affected tasks marked complete so the item does not hang in processing.
func (p *MediaPipeline) Process(media models.Media) {
	if !p.Enabled() {
		return
	}

	mediaID := media.ID.Hex()
	taskCount := countTasks(media)
	p.tracker.Start(mediaID, taskCount)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.media.UpdateStatus(ctx, media.ID, models.MediaStatusPending, models.MediaStatusProcessing); err != nil {
		log.Printf("Error updating media %s status to processing: %v", mediaID, err)
	}

	go func() {
		request := ProcessRequest{
			MediaID:   mediaID,
			URL:       media.URL,
			MediaType: media.Type,
		}

		if err := p.publish(request, subjectCompress); err != nil {
			log.Printf("Error publishing compress request for media %s: %v", mediaID, err)
			p.completeTask(mediaID)
		}

		if media.Type == models.MediaTypeVideo {
			if err := p.publish(request, subjectThumbnail); err != nil {
				log.Printf("Error publishing thumbnail request for media %s: %v", mediaID, err)
				p.completeTask(mediaID)
			}
		}

		log.Printf("Queued %d processing tasks for media %s", taskCount, mediaID)
	}()
}

func (p *MediaPipeline) publish(data interface{}, subject string) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling request: %w", err)
	}
	return p.nc.Publish(subject, jsonData)
}

// completeTask drains one outstanding task and flips the item to ready once
// nothing is left.
func (p *MediaPipeline) completeTask(mediaID string) {
	if !p.tracker.Complete(mediaID) {
		return
	}

	id, err := primitive.ObjectIDFromHex(mediaID)
	if err != nil {
		log.Printf("Invalid media ID in tracker: %s", mediaID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.media.UpdateStatus(ctx, id, models.MediaStatusProcessing, models.MediaStatusReady); err != nil {
		log.Printf("Error updating media %s status to ready: %v", mediaID, err)
		return
	}
	log.Printf("All processing tasks completed for media %s", mediaID)
}
