package submission

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"sistem-pengajuan/internal/shared/apperror"
	"sistem-pengajuan/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Lampiran bukti maksimal 5 MB
const maxEvidenceSize = 5 << 20

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("submission.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("submission.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func getActorID(c *gin.Context) string {
	actorID := c.GetString("user_id_validated")
	if actorID == "" {
		actorID = c.GetString("user_id")
	}
	return actorID
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("submission request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
	h.releaseIdempotencyLock(c)
}

func formEvidence(c *gin.Context, field string) (*Evidence, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	if fh.Size > maxEvidenceSize {
		return nil, apperror.New(apperror.CodeInvalidInput, "Ukuran lampiran melebihi 5 MB", http.StatusBadRequest)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}

	return &Evidence{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Reader:      f,
	}, nil
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateSubmissionRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("http create submission validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		h.releaseIdempotencyLock(c)
		return
	}

	evidence, err := formEvidence(c, "evidence")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), getActorID(c), req, evidence)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.storeIdempotencyResult(c, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var filter ListFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), getActorID(c), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	writePaginated(c, resp)
}

func (h *Handler) AdminGetAll(c *gin.Context) {
	var filter ListFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.AdminGetAll(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	writePaginated(c, resp)
}

func (h *Handler) Decide(c *gin.Context) {
	var req DecideSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http decide submission validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.Decide(c.Request.Context(), getActorID(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AttachTransferProof(c *gin.Context) {
	proof, err := formEvidence(c, "transfer_proof")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if proof == nil {
		h.writeServiceError(c, apperror.New(apperror.CodeInvalidInput, "Bukti transfer wajib dilampirkan", http.StatusBadRequest))
		return
	}

	resp, err := h.service.AttachTransferProof(c.Request.Context(), getActorID(c), c.Param("id"), *proof)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// storeIdempotencyResult mengisi cache respons dan melepas lock yang
// dipasang middleware Idempotency.
func (h *Handler) storeIdempotencyResult(c *gin.Context, resp SubmissionResponse) {
	cacheKey := c.GetString("idempotency_cache_key")
	if cacheKey == "" || h.rdb == nil {
		return
	}

	if payload, err := json.Marshal(resp); err == nil {
		h.rdb.Set(c.Request.Context(), cacheKey, payload, 24*time.Hour)
	}
	if lockKey := c.GetString("idempotency_lock_key"); lockKey != "" {
		h.rdb.Del(c.Request.Context(), lockKey)
	}
}

func (h *Handler) releaseIdempotencyLock(c *gin.Context) {
	if h.rdb == nil {
		return
	}
	if lockKey := c.GetString("idempotency_lock_key"); lockKey != "" {
		h.rdb.Del(c.Request.Context(), lockKey)
	}
}

func writePaginated(c *gin.Context, resp []SubmissionResponse) {
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
