package middleware

import (
	"strings"

	"github.com/NomadCrew/feedback-api/config"
	"github.com/gin-gonic/gin"
)

// apiContentSecurityPolicy forbids every resource load. API responses are
// JSON and never rendered as documents.
const apiContentSecurityPolicy = "default-src 'none'; frame-ancestors 'none'"

// swaggerPathPrefix serves the interactive docs, which need their own scripts
// and styles.
const swaggerPathPrefix = "/swagger/"

// SecurityHeadersMiddleware adds security-related HTTP headers to all responses.
// HSTS is only sent in production.
func SecurityHeadersMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		if !strings.HasPrefix(c.Request.URL.Path, swaggerPathPrefix) {
			c.Header("Content-Security-Policy", apiContentSecurityPolicy)
			c.Header("Cache-Control", "no-store")
		}

		if cfg.IsProduction() {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
