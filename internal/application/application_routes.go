package application

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	applications := r.Group("/application")
	{
		applications.GET("", h.GetAll)
		applications.POST("", h.Create)
		applications.GET("/:id", h.GetByID)
		applications.PATCH("/:id", h.Update)
		applications.DELETE("/:id", h.Delete)
	}
}
