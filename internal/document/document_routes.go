package document

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	documents := r.Group("/documents")
	{
		documents.POST("/generate/leave-pdf", handler.GenerateLeavePdf)
	}
}
