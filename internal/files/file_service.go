package files

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"sistem-pengajuan/internal/rbac"
	"sistem-pengajuan/internal/shared/apperror"
	"sistem-pengajuan/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrFileForbidden = apperror.New(
		apperror.CodeForbidden,
		"Anda tidak memiliki akses ke berkas ini",
		http.StatusForbidden,
	)
	ErrFileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Berkas tidak ditemukan",
		http.StatusNotFound,
	)
	ErrInvalidBucket = apperror.New(
		apperror.CodeInvalidInput,
		"Bucket tidak dikenal",
		http.StatusBadRequest,
	)
)

//go:generate mockgen -source=file_service.go -destination=mock/file_service_mock.go -package=mock
type Service interface {
	// Upload menyimpan berkas di bawah <ownerID>/<uuid><ext> dan mencatat kepemilikannya.
	Upload(ctx context.Context, bucket string, ownerID uuid.UUID, filename, contentType string, size int64, r io.Reader) (string, error)

	// Open mengotorisasi lalu membuka berkas. Admin boleh membaca semua berkas;
	// selain itu hanya pemilik (berdasarkan baris file_objects) yang diizinkan.
	Open(ctx context.Context, actorID, role, bucket, filePath string) (io.ReadCloser, string, error)
}

type service struct {
	store  storage.FileStorage
	repo   Repository
	logger *zap.Logger
}

func NewService(store storage.FileStorage, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("files.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("files.service")
	}
	return &service{store: store, repo: repo, logger: l}
}

func (s *service) Upload(ctx context.Context, bucket string, ownerID uuid.UUID, filename, contentType string, size int64, r io.Reader) (string, error) {
	if !storage.ValidBucket(bucket) {
		return "", ErrInvalidBucket
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := path.Join(ownerID.String(), uuid.New().String()+ext)

	storedPath, err := s.store.Upload(ctx, bucket, objectPath, r)
	if err != nil {
		s.logger.Error("file upload failed",
			zap.String("bucket", bucket),
			zap.String("path", objectPath),
			zap.Error(err),
		)
		return "", err
	}

	record := &FileObject{
		ID:          uuid.New(),
		Bucket:      bucket,
		Path:        storedPath,
		OwnerID:     ownerID,
		ContentType: contentType,
		SizeBytes:   size,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		// Berkas sudah tersimpan di disk, tetapi tanpa catatan kepemilikan
		// tidak ada yang bisa membukanya. Kegagalan tetap dikembalikan.
		s.logger.Error("file ownership record failed",
			zap.String("bucket", bucket),
			zap.String("path", storedPath),
			zap.Error(err),
		)
		return "", err
	}

	s.logger.Info("file uploaded",
		zap.String("bucket", bucket),
		zap.String("path", storedPath),
		zap.String("owner_id", ownerID.String()),
	)
	return storedPath, nil
}

func (s *service) Open(ctx context.Context, actorID, role, bucket, filePath string) (io.ReadCloser, string, error) {
	if !storage.ValidBucket(bucket) {
		return nil, "", ErrInvalidBucket
	}

	isAdmin := role == rbac.RoleAdmin || role == rbac.RoleSuperadmin

	record, err := s.repo.FindByBucketAndPath(ctx, bucket, filePath)
	switch {
	case err == nil:
		if !isAdmin && record.OwnerID.String() != actorID {
			return nil, "", ErrFileForbidden
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Tidak ada catatan kepemilikan. Non-admin hanya boleh lanjut jika
		// path berada di bawah prefix id-nya sendiri; hasilnya tetap 404.
		if !isAdmin && !strings.HasPrefix(filePath, actorID+"/") {
			return nil, "", ErrFileForbidden
		}
		record = nil
	default:
		return nil, "", err
	}

	rc, err := s.store.Download(ctx, bucket, filePath)
	if err != nil {
		return nil, "", ErrFileNotFound
	}

	contentType := ""
	if record != nil {
		contentType = record.ContentType
	}
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(filePath))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return rc, contentType, nil
}
