package auth

import (
	"sistem-pengajuan/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", middleware.RateLimitByIP(rate.Limit(1), 5), h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(), middleware.ExtractUserID(), h.Me)
		authGroup.POST("/change-password", middleware.AuthMiddleware(), middleware.ExtractUserID(), h.ChangePassword)
	}
}
