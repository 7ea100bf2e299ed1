package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kotche/noteshare/infrastructure/metrics"
	"github.com/kotche/noteshare/internal/model"
)

const ctxUserID = "userID"

// authRequired resolves the bearer token to an authenticated identity before
// any business logic runs.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		bearer, found := strings.CutPrefix(header, "Bearer ")
		if !found || bearer == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": model.ErrInvalidToken.Error()})
			return
		}

		claims, err := s.tokens.Verify(c.Request.Context(), bearer)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": model.ErrInvalidToken.Error()})
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Next()
	}
}

func currentUserID(c *gin.Context) model.UserID {
	return c.MustGet(ctxUserID).(model.UserID)
}

func observeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.ObserveRequest(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
