package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Jaeki-Lee/mini-cloud/src/models"
	"github.com/Jaeki-Lee/mini-cloud/src/schemas"
	"github.com/Jaeki-Lee/mini-cloud/src/service"
	"github.com/Jaeki-Lee/mini-cloud/src/utils"
)

// SessionCookieName is the cookie carrying the opaque session identifier.
const SessionCookieName = "minicloud_session"

const sessionContextKey = "minicloud_session_record"

// SessionRequired resolves the session cookie to a live session and stores
// it in the request context. Requests without a live session are rejected
// with 401 before any upstream client is touched.
func SessionRequired(auth *service.AuthService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			utils.SendError(c, log, schemas.NewUnauthorizedError("session cookie missing", c.Request.URL.Path))
			c.Abort()
			return
		}

		sess, ok := auth.Validate(sessionID)
		if !ok {
			utils.SendError(c, log, schemas.NewUnauthorizedError("session expired or unknown", c.Request.URL.Path))
			c.Abort()
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// SessionFromContext returns the session SessionRequired resolved for this
// request.
func SessionFromContext(c *gin.Context) (models.Session, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return models.Session{}, false
	}
	sess, ok := value.(models.Session)
	return sess, ok
}
