package setting

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=setting_repo.go -destination=mock/setting_repo_mock.go -package=mock
type Repository interface {
	FindByKey(ctx context.Context, key string) (*Setting, error)
	Upsert(ctx context.Context, s *Setting) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByKey(ctx context.Context, key string) (*Setting, error) {
	var s Setting
	err := r.db.WithContext(ctx).First(&s, "key = ?", key).Error
	return &s, err
}

func (r *repository) Upsert(ctx context.Context, s *Setting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"enabled", "updated_at"}),
		}).
		Create(s).Error
}
