package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nl-todo/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags each request with an id, reusing the caller's X-Request-ID
// when present. The id is echoed in the response and carried by the request
// context so every log line of the request includes it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
