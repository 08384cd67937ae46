package report

import (
	"sistem-pengajuan/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		reports.GET("", middleware.RBACAuthorize(rbacService, "report", "read"), h.Generate)
		reports.GET("/export/pdf", middleware.RBACAuthorize(rbacService, "report", "export"), h.ExportPDF)
		reports.GET("/export/excel", middleware.RBACAuthorize(rbacService, "report", "export"), h.ExportExcel)
	}
}
