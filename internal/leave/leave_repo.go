package leave

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindAllByUser(ctx context.Context, userID string, filter ListFilterRequest) ([]Leave, error)
	FindAll(ctx context.Context, filter ListFilterRequest) ([]Leave, error)
	FindByID(ctx context.Context, id string) (*Leave, error)
	Update(ctx context.Context, l *Leave) error
	HasOverlappingPeriod(ctx context.Context, userID string, startDate, endDate time.Time, excludeID *string) (bool, error)
	HasApprovedLeaveOn(ctx context.Context, userID string, date time.Time) (bool, error)
	CountPending(ctx context.Context) (int64, error)
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

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindAllByUser(ctx context.Context, userID string, filter ListFilterRequest) ([]Leave, error) {
	var leaves []Leave
	err := applyFilter(r.db.WithContext(ctx), filter).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindAll(ctx context.Context, filter ListFilterRequest) ([]Leave, error) {
	var leaves []Leave
	err := applyFilter(r.db.WithContext(ctx), filter).
		Preload("Profile").
		Order("start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

func applyFilter(db *gorm.DB, filter ListFilterRequest) *gorm.DB {
	if filter.StartDate != "" {
		db = db.Where("end_date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		db = db.Where("start_date <= ?", filter.EndDate)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	return db
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Preload("Profile").
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, userID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("user_id = ?", userID).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("status = ?", StatusPending).
		Count(&count).Error
	return count, err
}

func (r *repository) HasApprovedLeaveOn(ctx context.Context, userID string, date time.Time) (bool, error) {
	// Kolom date dibandingkan sebagai string YYYY-MM-DD supaya tidak
	// bergeser sehari tergantung query mode driver.
	day := date.Format("2006-01-02")

	var count int64
	err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("user_id = ?", userID).
		Where("status = ?", StatusApproved).
		Where("start_date <= ? AND end_date >= ?", day, day).
		Count(&count).Error
	return count > 0, err
}
