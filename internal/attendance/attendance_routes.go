package attendance

import (
	"sistem-pengajuan/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		attendances.GET("", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.GetAll)
		attendances.GET("/status", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.Status)
		attendances.POST("/check-in", middleware.RBACAuthorize(rbacService, "attendance", "create"), h.CheckIn)
		attendances.POST("/check-out", middleware.RBACAuthorize(rbacService, "attendance", "create"), h.CheckOut)
	}
}
