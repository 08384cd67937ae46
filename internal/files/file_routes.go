package files

import (
	"sistem-pengajuan/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	filesGroup := r.Group("/files")
	filesGroup.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		filesGroup.GET("/:bucket/*path", middleware.RBACAuthorize(rbacService, "files", "read"), h.View)
	}
}
