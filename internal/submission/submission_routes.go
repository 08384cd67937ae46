package submission

import (
	"sistem-pengajuan/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	submissions := r.Group("/submissions")
	submissions.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		submissions.GET("", middleware.RBACAuthorize(rbacService, "submission", "read"), h.GetAll)
		submissions.POST("",
			middleware.RBACAuthorize(rbacService, "submission", "create"),
			middleware.Idempotency(rdb),
			h.Create,
		)
		submissions.GET("/all", middleware.RBACAuthorize(rbacService, "submission", "read_all"), h.AdminGetAll)
		submissions.PATCH("/:id/decision", middleware.RBACAuthorize(rbacService, "submission", "decide"), h.Decide)
		submissions.POST("/:id/transfer-proof", middleware.RBACAuthorize(rbacService, "submission", "decide"), h.AttachTransferProof)
	}
}
