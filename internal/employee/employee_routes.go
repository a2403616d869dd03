package employee

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the employee endpoints. All verbs share the
// /employee segment, including PATCH.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	employees := r.Group("/employee")
	{
		employees.GET("", h.GetAll)
		employees.POST("", h.Create)
		employees.GET("/:id", h.GetByID)
		employees.PATCH("/:id", h.Update)
		employees.DELETE("/:id", h.Delete)
	}
}
