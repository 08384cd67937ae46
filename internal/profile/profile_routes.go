package profile

import (
	"sistem-pengajuan/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		users.GET("", middleware.RBACAuthorize(rbacService, "users", "read"), h.List)
		users.POST("", middleware.RBACAuthorize(rbacService, "users", "create"), h.Invite)
		users.PUT("/:id", middleware.RBACAuthorize(rbacService, "users", "update"), h.Update)
		users.DELETE("/:id", middleware.RBACAuthorize(rbacService, "users", "delete"), h.Delete)
	}
}
