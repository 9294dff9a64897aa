// internal/interfaces/http/handlers/session.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// getOrCreateSessionID identifies the guest session behind a request. There
// are no accounts: the cookie IS the identity, minted on first contact.
func getOrCreateSessionID(c *gin.Context) string {
	// Try to get session ID from cookie
	sessionID, err := c.Cookie("session_id")
	if err != nil || sessionID == "" {
		// Generate new session ID
		sessionID = uuid.New().String()

		// Set session cookie (30 days)
		c.SetCookie("session_id", sessionID, 30*86400, "/", "", false, true)
	}

	return sessionID
}
