package calendar

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	events := r.Group("/calendar/events")
	{
		events.GET("", handler.GetEvents)
		events.POST("", handler.CreateEvent)
		events.DELETE("/:id", handler.DeleteEvent)
	}
}
