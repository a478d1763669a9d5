package approval

import (
	"leaveflow/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb ...*redis.Client) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	approvals := r.Group("/approvals")
	{
		approvals.GET("/pending", handler.ListPending)
		approvals.GET("/all", handler.ListAll)
		if redisClient != nil {
			approvals.POST("/:id/approve", middleware.Idempotency(redisClient), handler.Approve)
			approvals.POST("/:id/reject", middleware.Idempotency(redisClient), handler.Reject)
		} else {
			approvals.POST("/:id/approve", handler.Approve)
			approvals.POST("/:id/reject", handler.Reject)
		}
	}
}
