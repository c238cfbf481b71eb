package httpserver

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie is the name of the cookie identifying a browsing session.
// The value is opaque to the core: the cart treats it purely as a partition
// key.
const SessionCookie = "souk_session"

const sessionKey = "souk.sessionID"

const sessionMaxAge = 30 * 24 * 60 * 60 // seconds

// sessionMiddleware guarantees every cart request carries a session id,
// issuing a fresh uuid cookie when the browser has none. There is no shared
// fallback id: two cookie-less requests get two distinct sessions.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(SessionCookie, id, sessionMaxAge, "/", "", false, true)
		}
		c.Set(sessionKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
