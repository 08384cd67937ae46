package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)
	// FindIncomplete mengambil baris terbaru dengan check-in terisi dan
	// check-out kosong sejak `since`.
	FindIncomplete(ctx context.Context, userID string, since time.Time) (*Attendance, error)
	FindAllByUser(ctx context.Context, userID string, from, to *time.Time) ([]Attendance, error)
	FindAll(ctx context.Context, from, to *time.Time) ([]Attendance, error)
	Update(ctx context.Context, a *Attendance) error
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

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("attendance_date = ?", date.Format("2006-01-02")).
		First(&a).Error
	return &a, err
}

func (r *repository) FindIncomplete(ctx context.Context, userID string, since time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("clock_out IS NULL").
		Where("clock_in >= ?", since).
		Order("clock_in DESC").
		First(&a).Error
	return &a, err
}

func (r *repository) FindAllByUser(ctx context.Context, userID string, from, to *time.Time) ([]Attendance, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	q = applyDateRange(q, from, to)

	var rows []Attendance
	err := q.Order("attendance_date DESC, clock_in DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindAll(ctx context.Context, from, to *time.Time) ([]Attendance, error) {
	q := r.db.WithContext(ctx).Preload("Profile")
	q = applyDateRange(q, from, to)

	var rows []Attendance
	err := q.Order("attendance_date DESC, clock_in DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func applyDateRange(q *gorm.DB, from, to *time.Time) *gorm.DB {
	if from != nil {
		q = q.Where("attendance_date >= ?", from.Format("2006-01-02"))
	}
	if to != nil {
		q = q.Where("attendance_date <= ?", to.Format("2006-01-02"))
	}
	return q
}
