package controllers

import (
	"log"
	"sync"
)

// processingTracker keeps the count of outstanding processing tasks per
// media item. Purely in-memory: a restart loses the counts, and items stuck
// in processing are re-queued by an admin re-save.
type processingTracker struct {
	mutex sync.Mutex
	tasks map[string]int
}

func newProcessingTracker() *processingTracker {
	return &processingTracker{tasks: make(map[string]int)}
}

// Start registers taskCount pending tasks for a media item, replacing any
// previous count (a re-queued item starts over).
func (t *processingTracker) Start(mediaID string, taskCount int) {
	if taskCount <= 0 {
		return
	}
	t.mutex.Lock()
	t.tasks[mediaID] = taskCount
	t.mutex.Unlock()
}

// Complete drains one task and reports whether that was the last one.
func (t *processingTracker) Complete(mediaID string) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	remaining, exists := t.tasks[mediaID]
	if !exists {
		log.Printf("No tracking information found for media %s", mediaID)
		return false
	}

	remaining--
	if remaining <= 0 {
		delete(t.tasks, mediaID)
		return true
	}
	t.tasks[mediaID] = remaining
	log.Printf("Media %s has %d remaining processing tasks", mediaID, remaining)
	return false
}

// Pending returns the number of outstanding tasks for a media item.
func (t *processingTracker) Pending(mediaID string) int {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.tasks[mediaID]
}
