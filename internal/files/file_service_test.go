package files

import (
	"context"
	"io"
	"strings"
	"testing"

	"sistem-pengajuan/internal/rbac"
	"sistem-pengajuan/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn            func(ctx context.Context, f *FileObject) error
	findByBucketAndPath func(ctx context.Context, bucket, path string) (*FileObject, error)
}

func (f *fakeRepo) Create(ctx context.Context, obj *FileObject) error { return f.createFn(ctx, obj) }
func (f *fakeRepo) FindByBucketAndPath(ctx context.Context, bucket, path string) (*FileObject, error) {
	return f.findByBucketAndPath(ctx, bucket, path)
}

type fakeStorage struct {
	uploadFn   func(ctx context.Context, bucket, path string, file io.Reader) (string, error)
	downloadFn func(ctx context.Context, bucket, path string) (io.ReadCloser, error)
}

func (f *fakeStorage) Upload(ctx context.Context, bucket, path string, file io.Reader) (string, error) {
	return f.uploadFn(ctx, bucket, path, file)
}
func (f *fakeStorage) Download(ctx context.Context, bucket, path string) (io.ReadCloser, error) {
	return f.downloadFn(ctx, bucket, path)
}
func (f *fakeStorage) Delete(ctx context.Context, bucket, path string) error { return nil }
func (f *fakeStorage) Exists(ctx context.Context, bucket, path string) (bool, error) {
	return true, nil
}

func TestService_Upload_RecordsOwnership(t *testing.T) {
	ownerID := uuid.New()

	var saved FileObject
	repo := &fakeRepo{
		createFn: func(ctx context.Context, f *FileObject) error { saved = *f; return nil },
	}
	store := &fakeStorage{
		uploadFn: func(ctx context.Context, bucket, path string, file io.Reader) (string, error) {
			return path, nil
		},
	}

	svc := NewService(store, repo)
	path, err := svc.Upload(context.Background(), storage.BucketFotoAbsensi, ownerID, "selfie.JPG", "image/jpeg", 1024, strings.NewReader("x"))

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, ownerID.String()+"/"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))
	assert.Equal(t, ownerID, saved.OwnerID)
	assert.Equal(t, storage.BucketFotoAbsensi, saved.Bucket)
	assert.Equal(t, int64(1024), saved.SizeBytes)
}

func TestService_Upload_InvalidBucket(t *testing.T) {
	svc := NewService(&fakeStorage{}, &fakeRepo{})

	_, err := svc.Upload(context.Background(), "bucket-liar", uuid.New(), "a.txt", "text/plain", 1, strings.NewReader("x"))

	assert.ErrorIs(t, err, ErrInvalidBucket)
}

func TestService_Open_Authorization(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()
	filePath := ownerID.String() + "/doc.pdf"

	record := &FileObject{
		ID:          uuid.New(),
		Bucket:      storage.BucketBuktiIzin,
		Path:        filePath,
		OwnerID:     ownerID,
		ContentType: "application/pdf",
	}

	repo := &fakeRepo{
		findByBucketAndPath: func(ctx context.Context, bucket, path string) (*FileObject, error) {
			return record, nil
		},
	}
	store := &fakeStorage{
		downloadFn: func(ctx context.Context, bucket, path string) (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("pdf-bytes")), nil
		},
	}

	svc := NewService(store, repo)

	t.Run("pemilik boleh membuka", func(t *testing.T) {
		rc, contentType, err := svc.Open(context.Background(), ownerID.String(), rbac.RoleEmployee, storage.BucketBuktiIzin, filePath)

		assert.NoError(t, err)
		assert.Equal(t, "application/pdf", contentType)
		rc.Close()
	})

	t.Run("admin boleh membuka milik siapa pun", func(t *testing.T) {
		rc, _, err := svc.Open(context.Background(), otherID.String(), rbac.RoleAdmin, storage.BucketBuktiIzin, filePath)

		assert.NoError(t, err)
		rc.Close()
	})

	t.Run("bukan pemilik ditolak", func(t *testing.T) {
		_, _, err := svc.Open(context.Background(), otherID.String(), rbac.RoleEmployee, storage.BucketBuktiIzin, filePath)

		assert.ErrorIs(t, err, ErrFileForbidden)
	})
}

func TestService_Open_NoOwnershipRecord(t *testing.T) {
	actorID := uuid.New()
	otherID := uuid.New()

	repo := &fakeRepo{
		findByBucketAndPath: func(ctx context.Context, bucket, path string) (*FileObject, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	store := &fakeStorage{
		downloadFn: func(ctx context.Context, bucket, path string) (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("bytes")), nil
		},
	}

	svc := NewService(store, repo)

	t.Run("path di bawah prefix sendiri masih boleh", func(t *testing.T) {
		rc, contentType, err := svc.Open(context.Background(), actorID.String(), rbac.RoleEmployee, storage.BucketFotoAbsensi, actorID.String()+"/foto.jpg")

		assert.NoError(t, err)
		assert.Equal(t, "image/jpeg", contentType)
		rc.Close()
	})

	t.Run("path milik orang lain ditolak tanpa membocorkan keberadaan", func(t *testing.T) {
		_, _, err := svc.Open(context.Background(), actorID.String(), rbac.RoleEmployee, storage.BucketFotoAbsensi, otherID.String()+"/foto.jpg")

		assert.ErrorIs(t, err, ErrFileForbidden)
	})
}

func TestService_Open_NotFound(t *testing.T) {
	actorID := uuid.New()

	repo := &fakeRepo{
		findByBucketAndPath: func(ctx context.Context, bucket, path string) (*FileObject, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	store := &fakeStorage{
		downloadFn: func(ctx context.Context, bucket, path string) (io.ReadCloser, error) {
			return nil, io.ErrUnexpectedEOF
		},
	}

	svc := NewService(store, repo)

	_, _, err := svc.Open(context.Background(), actorID.String(), rbac.RoleAdmin, storage.BucketFotoAbsensi, "hilang/foto.jpg")

	assert.ErrorIs(t, err, ErrFileNotFound)
}
