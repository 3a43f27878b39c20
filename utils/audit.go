package utils

import "log"

// LogAudit records an admin action against a resource id.
func LogAudit(userID, action, resourceID string) {
	log.Printf("audit user=%s action=%q resource=%s", userID, action, resourceID)
}
