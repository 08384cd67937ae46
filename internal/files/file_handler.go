package files

import (
	"io"
	"strings"

	"sistem-pengajuan/internal/shared/apperror"
	"sistem-pengajuan/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// View streams berkas tersimpan setelah lolos pemeriksaan role/kepemilikan.
func (h *Handler) View(c *gin.Context) {
	actorID := c.GetString("user_id_validated")
	if actorID == "" {
		actorID = c.GetString("user_id")
	}
	role := c.GetString("role")

	bucket := c.Param("bucket")
	filePath := strings.TrimPrefix(c.Param("path"), "/")

	rc, contentType, err := h.service.Open(c.Request.Context(), actorID, role, bucket, filePath)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		details := httpErr.Details
		if httpErr.Code == apperror.CodeNotFound {
			// Bantuan debug: path yang dicoba ikut dikembalikan
			details = gin.H{"bucket": bucket, "path": filePath}
		}
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, details)
		return
	}
	defer rc.Close()

	c.Header("Content-Type", contentType)
	c.Status(200)
	io.Copy(c.Writer, rc)
}
