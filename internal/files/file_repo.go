package files

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=file_repo.go -destination=mock/file_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, f *FileObject) error
	FindByBucketAndPath(ctx context.Context, bucket, path string) (*FileObject, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, f *FileObject) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repository) FindByBucketAndPath(ctx context.Context, bucket, path string) (*FileObject, error) {
	var f FileObject
	err := r.db.WithContext(ctx).
		Where("bucket = ?", bucket).
		Where("path = ?", path).
		First(&f).Error
	return &f, err
}
