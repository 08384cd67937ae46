package setting

import (
	"sistem-pengajuan/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	settings := r.Group("/settings")
	settings.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		settings.GET("/submission", middleware.RBACAuthorize(rbacService, "setting", "read"), h.Get)
		settings.PUT("/submission", middleware.RBACAuthorize(rbacService, "setting", "update"), h.Update)
	}
}
