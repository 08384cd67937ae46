package submission

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=submission_repo.go -destination=mock/submission_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Submission) error
	FindAllByUser(ctx context.Context, userID string, filter ListFilterRequest) ([]Submission, error)
	FindAll(ctx context.Context, filter ListFilterRequest) ([]Submission, error)
	FindByID(ctx context.Context, id string) (*Submission, error)
	Update(ctx context.Context, s *Submission) error
	CountPendingByType(ctx context.Context) (map[string]int64, error)
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

func (r *repository) Create(ctx context.Context, s *Submission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAllByUser(ctx context.Context, userID string, filter ListFilterRequest) ([]Submission, error) {
	var rows []Submission
	err := applyFilter(r.db.WithContext(ctx), filter).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAll(ctx context.Context, filter ListFilterRequest) ([]Submission, error) {
	var rows []Submission
	err := applyFilter(r.db.WithContext(ctx), filter).
		Preload("Profile").
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func applyFilter(db *gorm.DB, filter ListFilterRequest) *gorm.DB {
	if filter.StartDate != "" {
		db = db.Where("created_at >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		// Batas akhir inklusif sampai akhir hari
		db = db.Where("created_at < (?::date + INTERVAL '1 day')", filter.EndDate)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		db = db.Where(
			"number ILIKE ? OR item_name ILIKE ? OR description ILIKE ? OR category ILIKE ?",
			like, like, like, like,
		)
	}
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		db = db.Where("type = ?", filter.Type)
	}
	return db
}

func (r *repository) FindByID(ctx context.Context, id string) (*Submission, error) {
	var s Submission
	err := r.db.WithContext(ctx).
		Preload("Profile").
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) Update(ctx context.Context, s *Submission) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) CountPendingByType(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Type  string
		Count int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&Submission{}).
		Select("type, COUNT(*) AS count").
		Where("status = ?", StatusPending).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Type] = r.Count
	}
	return counts, nil
}
