package profile

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=profile_repo.go -destination=mock/profile_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Profile) error
	FindAll(ctx context.Context) ([]Profile, error)
	FindByUserID(ctx context.Context, userID string) (*Profile, error)
	FindNamesByUserIDs(ctx context.Context, userIDs []string) (map[string]string, error)
	Update(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, userID string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, p *Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Profile, error) {
	var rows []Profile
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("full_name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByUserID(ctx context.Context, userID string) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&p).Error
	return &p, err
}

// FindNamesByUserIDs mengambil nama tampilan sekali jalan untuk laporan
func (r *repository) FindNamesByUserIDs(ctx context.Context, userIDs []string) (map[string]string, error) {
	if len(userIDs) == 0 {
		return map[string]string{}, nil
	}

	var rows []Profile
	err := r.db.WithContext(ctx).
		Select("user_id", "full_name").
		Where("user_id IN ?", userIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(rows))
	for _, row := range rows {
		names[row.UserID.String()] = row.FullName
	}
	return names, nil
}

func (r *repository) Update(ctx context.Context, p *Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&Profile{}).Error
}
