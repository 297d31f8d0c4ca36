package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SessionKey is the gin context key under which the request-scoped
// database session is stored.
const SessionKey = "db"

// DBSession attaches a database session bound to the request context to
// every request. Handlers run all their storage calls through it, so
// cancelling the request cancels in-flight queries and the session's
// connections return to the pool when the request ends.
func DBSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := db.WithContext(c.Request.Context())
		c.Set(SessionKey, session)
		c.Next()
	}
}
