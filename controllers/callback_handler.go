package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProcessResult is what the media processing workers send back, either over
// NATS or the HTTP callback endpoint. The structure must match the worker
// side.
type ProcessResult struct {
	MediaID        string `json:"media_id"`
	ProcessedURL   string `json:"processed_url,omitempty"`
	ThumbnailURL   string `json:"thumbnail_url,omitempty"`
	MediaType      string `json:"media_type"`      // "image", "video"
	ProcessingType string `json:"processing_type"` // "compressed", "thumbnail"
	Success        bool   `json:"success"`
	Error          string `json:"error,omitempty"`
	Timestamp      int64  `json:"timestamp"`
}

// Result subjects the pipeline listens on.
var resultSubjects = []string{
	"result.media.compress",
	"result.media.generatethumbnail",
	"result.media.default",
}

// InitCallbackHandlers wires the HTTP callback endpoint and, when NATS is
// up, the result subscriptions.
func (p *MediaPipeline) InitCallbackHandlers(app *fiber.App) error {
	app.Post("/api/media/callback", p.HandleCallback)

	if p.nc == nil {
		log.Println("Warning: NATS connection not available, skipping result subscribers")
		return nil
	}

	for _, subject := range resultSubjects {
		_, err := p.nc.Subscribe(subject, func(msg *nats.Msg) {
			var result ProcessResult
			if err := json.Unmarshal(msg.Data, &result); err != nil {
				log.Printf("Error unmarshaling NATS message: %v", err)
				return
			}

			if err := p.processResult(result); err != nil {
				log.Printf("Error processing media result from %s: %v", msg.Subject, err)
			}
		})
		if err != nil {
			return fmt.Errorf("error subscribing to NATS subject %s: %w", subject, err)
		}
		log.Printf("Subscribed to NATS subject: %s", subject)
	}

	return nil
}

// HandleCallback processes HTTP callbacks from the media workers.
func (p *MediaPipeline) HandleCallback(c *fiber.Ctx) error {
	var result ProcessResult
	if err := c.BodyParser(&result); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if err := p.processResult(result); err != nil {
		log.Printf("Error processing media result from HTTP: %v", err)
		return respondError(c, http.StatusInternalServerError, "Something went wrong")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Callback processed"})
}

// processResult writes the processed URLs back onto the media document and
// drains one tracked task.
func (p *MediaPipeline) processResult(result ProcessResult) error {
	if result.MediaID == "" {
		return fmt.Errorf("missing media_id in result")
	}

	if !result.Success {
		log.Printf("Media processing failed for %s: %s", result.MediaID, result.Error)
		// The task is done even though it failed; the item keeps its
		// original URL.
		p.completeTask(result.MediaID)
		return nil
	}

	id, err := primitive.ObjectIDFromHex(result.MediaID)
	if err != nil {
		return fmt.Errorf("invalid media ID format: %w", err)
	}

	set := bson.M{}
	switch result.ProcessingType {
	case "compressed":
		if result.ProcessedURL != "" {
			set["url"] = result.ProcessedURL
		}
	case "thumbnail":
		if result.ThumbnailURL != "" {
			set["thumbnail"] = result.ThumbnailURL
		} else if result.ProcessedURL != "" {
			set["thumbnail"] = result.ProcessedURL
		}
	default:
		log.Printf("Unknown processing type %q for media %s", result.ProcessingType, result.MediaID)
	}

	if len(set) > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := p.media.Update(ctx, id, set); err != nil {
			return fmt.Errorf("error updating media %s: %w", result.MediaID, err)
		}
		log.Printf("Updated media %s with %s result", result.MediaID, result.ProcessingType)
	}

	p.completeTask(result.MediaID)
	return nil
}
