package middleware

import (
	"github.com/gin-gonic/gin"
)

const (
	// ActorHeader names the staff member making the change, recorded in the
	// audit trail.
	ActorHeader = "X-Actor"

	actorContextKey = "actor"
	defaultActor    = "system"
)

func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.GetHeader(ActorHeader)
		if actor == "" {
			actor = defaultActor
		}
		c.Set(actorContextKey, actor)
		c.Next()
	}
}

func GetActor(c *gin.Context) string {
	if actor, exists := c.Get(actorContextKey); exists {
		if a, ok := actor.(string); ok && a != "" {
			return a
		}
	}
	return defaultActor
}
