package handler

import (
	"io"

	"github.com/gin-gonic/gin"
)

// streamEvents writes every value of feed as a server-sent event until the
// client goes away or the feed closes. feed must be bound to the request context.
func streamEvents[T any](c *gin.Context, event string, feed <-chan T) {
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case value, ok := <-feed:
			if !ok {
				return false
			}
			c.SSEvent(event, value)
			return true
		}
	})
}
