package department

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	departments := r.Group("/department")
	{
		departments.GET("", h.GetAll)
		departments.POST("", h.Create)
		departments.GET("/:id", h.GetByID)
		departments.PATCH("/:id", h.Update)
		departments.DELETE("/:id", h.Delete)
	}
}
