package report

import (
	"fmt"
	"net/http"
	"time"

	"sistem-pengajuan/internal/shared/apperror"
	"sistem-pengajuan/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func bindFilter(c *gin.Context) (ReportFilterRequest, bool) {
	var filter ReportFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return ReportFilterRequest{}, false
	}
	return filter, true
}

func (h *Handler) Generate(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ExportPDF(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	data, err := h.service.ExportPDF(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("laporan-pengajuan-%s.pdf", time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *Handler) ExportExcel(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	data, err := h.service.ExportExcel(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("laporan-pengajuan-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
