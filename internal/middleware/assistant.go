package middleware

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// AssistantAuth protects the voice-assistant webhook with a static shared
// secret carried in the X-Assistant-Secret header.
func AssistantAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !assistantEnabled() {
			logAssistantFailure(c, http.StatusForbidden, "disabled")
			writeAssistantError(c, http.StatusForbidden, "AUTH_INVALID", "Assistant integration disabled")
			c.Abort()
			return
		}

		if !assistantIPAllowed(c) {
			logAssistantFailure(c, http.StatusForbidden, "ip_not_allowed")
			writeAssistantError(c, http.StatusForbidden, "AUTH_INVALID", "IP not allowed")
			c.Abort()
			return
		}

		secret := c.GetHeader("X-Assistant-Secret")
		if secret == "" {
			logAssistantFailure(c, http.StatusUnauthorized, "missing_secret")
			writeAssistantError(c, http.StatusUnauthorized, "AUTH_MISSING", "X-Assistant-Secret header is required")
			c.Abort()
			return
		}

		expected := os.Getenv("ASSISTANT_WEBHOOK_SECRET")
		if expected == "" {
			logAssistantFailure(c, http.StatusInternalServerError, "secret_not_configured")
			writeAssistantError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Assistant secret is not configured")
			c.Abort()
			return
		}

		if secret != expected {
			logAssistantFailure(c, http.StatusForbidden, "invalid_secret")
			writeAssistantError(c, http.StatusForbidden, "AUTH_INVALID", "Invalid assistant secret")
			c.Abort()
			return
		}

		c.Next()
	}
}

func writeAssistantError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func assistantEnabled() bool {
	value := strings.TrimSpace(strings.ToLower(os.Getenv("ASSISTANT_WEBHOOK_ENABLED")))
	if value == "" {
		return true
	}
	return value == "true" || value == "1"
}

func assistantIPAllowed(c *gin.Context) bool {
	allowed := strings.TrimSpace(os.Getenv("ASSISTANT_ALLOWED_IPS"))
	if allowed == "" {
		return true
	}
	clientIP := c.ClientIP()
	for _, ip := range strings.Split(allowed, ",") {
		if strings.TrimSpace(ip) == clientIP {
			return true
		}
	}
	return false
}

func logAssistantFailure(c *gin.Context, status int, reason string) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = c.GetHeader("X-Request-Id")
	}
	log.Printf("assistant_auth status=%d request_id=%s reason=%s", status, requestID, reason)
}
