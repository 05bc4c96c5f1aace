package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// userIDKey is the gin context key under which the caller's uid is stored.
const userIDKey = "uid"

// UserIDHeader carries the authenticated caller's uid. Token verification
// happens upstream (gateway / auth proxy); this service only consumes the
// resolved identity.
const UserIDHeader = "X-User-ID"

// Identity extracts the caller identity from the request and stores it in
// the gin context. Requests without an identity are rejected.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetHeader(UserIDHeader)
		if uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "missing caller identity",
				},
			})
			return
		}
		c.Set(userIDKey, uid)
		c.Next()
	}
}

// UserID returns the caller uid stored by Identity. It returns an empty
// string if the middleware did not run.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
