package attendance

import (
	"net/http"
	"strconv"

	"sistem-pengajuan/internal/rbac"
	"sistem-pengajuan/internal/shared/apperror"
	"sistem-pengajuan/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Foto kamera maksimal 5 MB
const maxPhotoSize = 5 << 20

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func getActorID(c *gin.Context) string {
	actorID := c.GetString("user_id_validated")
	if actorID == "" {
		actorID = c.GetString("user_id")
	}
	return actorID
}

func formPhoto(c *gin.Context) (Photo, error) {
	fh, err := c.FormFile("photo")
	if err != nil {
		return Photo{}, ErrPhotoRequired
	}
	if fh.Size > maxPhotoSize {
		return Photo{}, apperror.New(apperror.CodeInvalidInput, "Ukuran foto melebihi 5 MB", http.StatusBadRequest)
	}

	f, err := fh.Open()
	if err != nil {
		return Photo{}, err
	}

	return Photo{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Reader:      f,
	}, nil
}

func (h *Handler) Status(c *gin.Context) {
	resp, err := h.service.Status(c.Request.Context(), getActorID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	photo, err := formPhoto(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.CheckIn(c.Request.Context(), getActorID(c), req, photo)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) CheckOut(c *gin.Context) {
	var req CheckOutRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	photo, err := formPhoto(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.CheckOut(c.Request.Context(), getActorID(c), req, photo)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	role := c.GetString("role")
	canReadAll := role == rbac.RoleAdmin || role == rbac.RoleSuperadmin

	var filter ListFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), getActorID(c), canReadAll, filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}
