package leave

import (
	"sistem-pengajuan/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		leaves.GET("", middleware.RBACAuthorize(rbacService, "leave", "read"), h.GetAll)
		leaves.POST("", middleware.RBACAuthorize(rbacService, "leave", "create"), h.Create)
		leaves.GET("/all", middleware.RBACAuthorize(rbacService, "leave", "read_all"), h.AdminGetAll)
		leaves.PATCH("/:id/decision", middleware.RBACAuthorize(rbacService, "leave", "decide"), h.Decide)
	}
}
