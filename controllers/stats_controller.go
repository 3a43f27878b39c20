package controllers

import (
	"context"
	"log"
	"net/http"
	"sync"

	"portfolio-api/models"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// StatsCounter counts documents in a named collection.
type StatsCounter interface {
	Count(ctx context.Context, collection string, filter interface{}) (int64, error)
}

// StatsController backs the admin dashboard: one call returning the document
// counts the dashboard cards show, gathered concurrently.
type StatsController struct {
	counter StatsCounter
}

func NewStatsController(counter StatsCounter) *StatsController {
	return &StatsController{counter: counter}
}

func (ctl *StatsController) Get(c *fiber.Ctx) error {
	queries := map[string]struct {
		collection string
		filter     bson.M
	}{
		"blogs":             {"blogs", bson.M{}},
		"unpublished_blogs": {"blogs", bson.M{"is_published": false}},
		"banners":           {"banners", bson.M{}},
		"businesses":        {"businesses", bson.M{}},
		"events":            {"events", bson.M{}},
		"faqs":              {"faqs", bson.M{}},
		"media":             {"media", bson.M{}},
		"reviews":           {"reviews", bson.M{}},
		"pending_invites":   {"review_invites", bson.M{"status": models.InviteStatusPending}},
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	counts := make(map[string]int64, len(queries))
	failed := false

	for name, q := range queries {
		wg.Add(1)
		go func(name, collection string, filter bson.M) {
			defer wg.Done()
			n, err := ctl.counter.Count(c.Context(), collection, filter)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("stats: counting %s failed: %v", name, err)
				failed = true
				return
			}
			counts[name] = n
		}(name, q.collection, q.filter)
	}
	wg.Wait()

	if failed {
		return respondError(c, http.StatusInternalServerError, "Something went wrong")
	}
	return respondData(c, http.StatusOK, counts)
}
