package server

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"cravio-admin/internal/common/auth"
	"cravio-admin/internal/common/logger"
	"cravio-admin/internal/common/web"
)

const sessionContextKey = "session"

// RequestLogger logs one line per request with the fields the rest of the
// service logs with.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request", map[string]interface{}{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"clientIp": c.ClientIP(),
		})
	}
}

// RequireSession rejects requests without a valid bearer token and stashes
// the resolved session in the request context.
func RequireSession(sessions *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		session, err := sessions.Current(c.Request.Context(), token)
		if err != nil {
			web.RespondError(c, err)
			c.Abort()
			return
		}
		c.Set(sessionContextKey, session)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if strings.HasPrefix(header, prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// SessionFromContext returns the authenticated session, or nil on routes
// outside RequireSession.
func SessionFromContext(c *gin.Context) *auth.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	session, _ := v.(*auth.Session)
	return session
}
