package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderSessionID identifies the caller's session.
const HeaderSessionID = "X-Session-ID"

const sessionKey = "session"

// SessionMiddleware resolves the session of a request. A missing or
// malformed X-Session-ID is replaced by a fresh UUID, and the effective id
// is echoed back so clients can keep it.
func SessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Get(HeaderSessionID)
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.NewString()
		}
		c.Locals(sessionKey, sid)
		c.Set(HeaderSessionID, sid)
		return c.Next()
	}
}

// sessionID returns the session resolved by SessionMiddleware.
func sessionID(c *fiber.Ctx) string {
	sid, _ := c.Locals(sessionKey).(string)
	return sid
}
