package httpapi

import (
	"strings"

	"github.com/avolkovs/teambase/internal/common"
	"github.com/avolkovs/teambase/internal/server/models"
	"github.com/gin-gonic/gin"
)

const ctxUserKey = "currentUser"

// requireAuth resolves the bearer token from the Authorization header into
// an account and stores it on the request context. Requests without a valid
// token never reach the handler.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			s.abortWithError(c, common.ErrUnauthorized)
			return
		}

		user, err := s.accounts.CurrentUser(c.Request.Context(), token)
		if err != nil {
			s.abortWithError(c, err)
			return
		}

		c.Set(ctxUserKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}
