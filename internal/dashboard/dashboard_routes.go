package dashboard

import (
	"sistem-pengajuan/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	dash := r.Group("/dashboard")
	dash.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		dash.GET("/badge-counts", middleware.RBACAuthorize(rbacService, "dashboard", "read"), h.BadgeCounts)
	}
}
