package attendance

import (
	"context"
	"database/sql"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn            func(tx *sql.Tx) Repository
	createFn            func(ctx context.Context, a *Attendance) error
	findByUserAndDateFn func(ctx context.Context, userID string, date time.Time) (*Attendance, error)
	findIncompleteFn    func(ctx context.Context, userID string, since time.Time) (*Attendance, error)
	findAllByUserFn     func(ctx context.Context, userID string, from, to *time.Time) ([]Attendance, error)
	findAllFn           func(ctx context.Context, from, to *time.Time) ([]Attendance, error)
	updateFn            func(ctx context.Context, a *Attendance) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository              { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, a *Attendance) error { return f.createFn(ctx, a) }
func (f *fakeRepo) FindByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error) {
	return f.findByUserAndDateFn(ctx, userID, date)
}
func (f *fakeRepo) FindIncomplete(ctx context.Context, userID string, since time.Time) (*Attendance, error) {
	return f.findIncompleteFn(ctx, userID, since)
}
func (f *fakeRepo) FindAllByUser(ctx context.Context, userID string, from, to *time.Time) ([]Attendance, error) {
	return f.findAllByUserFn(ctx, userID, from, to)
}
func (f *fakeRepo) FindAll(ctx context.Context, from, to *time.Time) ([]Attendance, error) {
	return f.findAllFn(ctx, from, to)
}
func (f *fakeRepo) Update(ctx context.Context, a *Attendance) error { return f.updateFn(ctx, a) }

type fakeFiles struct {
	uploadFn func(ctx context.Context, bucket string, ownerID uuid.UUID, filename, contentType string, size int64, r io.Reader) (string, error)
}

func (f *fakeFiles) Upload(ctx context.Context, bucket string, ownerID uuid.UUID, filename, contentType string, size int64, r io.Reader) (string, error) {
	return f.uploadFn(ctx, bucket, ownerID, filename, contentType, size, r)
}

func (f *fakeFiles) Open(ctx context.Context, actorID, role, bucket, filePath string) (io.ReadCloser, string, error) {
	return nil, "", nil
}

type fakeLeaveChecker struct {
	onLeave bool
	err     error
}

func (f *fakeLeaveChecker) HasApprovedLeaveOn(ctx context.Context, userID string, date time.Time) (bool, error) {
	return f.onLeave, f.err
}

func testPhoto() Photo {
	return Photo{
		Filename:    "selfie.jpg",
		ContentType: "image/jpeg",
		Size:        1024,
		Reader:      strings.NewReader("fake-bytes"),
	}
}

func newTestService(db *sql.DB, repo Repository, leaves LeaveChecker, now time.Time) *service {
	files := &fakeFiles{
		uploadFn: func(ctx context.Context, bucket string, ownerID uuid.UUID, filename, contentType string, size int64, r io.Reader) (string, error) {
			return ownerID.String() + "/foto.jpg", nil
		},
	}
	svc := NewService(db, repo, leaves, files).(*service)
	svc.now = func() time.Time { return now }
	return svc
}

func TestService_CheckIn_Success(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	userID := uuid.New().String()
	ctx := context.Background()

	// Selasa 09:00 WIB
	now := time.Date(2026, 1, 6, 9, 0, 0, 0, ZoneWIB)

	var saved Attendance
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }
	repo.findIncompleteFn = func(ctx context.Context, userID string, since time.Time) (*Attendance, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := newTestService(db, repo, &fakeLeaveChecker{}, now)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.CheckIn(ctx, userID, CheckInRequest{}, testPhoto())

	assert.NoError(t, err)
	assert.Equal(t, StatusPresent, resp.Status)
	assert.Equal(t, "2026-01-06", resp.AttendanceDate)
	assert.Equal(t, userID, saved.UserID.String())
	assert.NotEmpty(t, saved.ClockInPhoto)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_CheckIn_WednesdayIsOvertime(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	// Rabu 08:30 WIB
	now := time.Date(2026, 1, 7, 8, 30, 0, 0, ZoneWIB)

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, a *Attendance) error { return nil }
	repo.findIncompleteFn = func(ctx context.Context, userID string, since time.Time) (*Attendance, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := newTestService(db, repo, &fakeLeaveChecker{}, now)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.CheckIn(context.Background(), uuid.New().String(), CheckInRequest{}, testPhoto())

	assert.NoError(t, err)
	assert.Equal(t, StatusOvertime, resp.Status)
}

func TestService_CheckIn_BlockedByApprovedLeave(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	now := time.Date(2026, 1, 6, 9, 0, 0, 0, ZoneWIB)
	svc := newTestService(db, &fakeRepo{}, &fakeLeaveChecker{onLeave: true}, now)

	_, err := svc.CheckIn(context.Background(), uuid.New().String(), CheckInRequest{}, testPhoto())

	assert.ErrorIs(t, err, ErrOnApprovedLeave)
}

func TestService_CheckIn_BlockedByIncompletePreviousDay(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	now := time.Date(2026, 1, 6, 9, 0, 0, 0, ZoneWIB)
	userID := uuid.New().String()

	created := false
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, a *Attendance) error { created = true; return nil }
	repo.findIncompleteFn = func(ctx context.Context, uid string, since time.Time) (*Attendance, error) {
		yesterday := now.AddDate(0, 0, -1)
		return &Attendance{
			ID:             uuid.New(),
			UserID:         uuid.MustParse(userID),
			AttendanceDate: DateOf(yesterday),
			ClockIn:        yesterday,
			Status:         StatusPresent,
		}, nil
	}

	svc := newTestService(db, repo, &fakeLeaveChecker{}, now)

	_, err := svc.CheckIn(context.Background(), userID, CheckInRequest{}, testPhoto())

	assert.ErrorIs(t, err, ErrIncompletePreviousDay)
	assert.False(t, created)
}

func TestService_CheckIn_PhotoRequired(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	now := time.Date(2026, 1, 6, 9, 0, 0, 0, ZoneWIB)
	svc := newTestService(db, &fakeRepo{}, &fakeLeaveChecker{}, now)

	_, err := svc.CheckIn(context.Background(), uuid.New().String(), CheckInRequest{}, Photo{})

	assert.ErrorIs(t, err, ErrPhotoRequired)
}

func TestService_CheckOut_SameDay(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	userUUID := uuid.New()
	clockIn := time.Date(2026, 1, 6, 9, 0, 0, 0, ZoneWIB)
	now := clockIn.Add(8*time.Hour + 30*time.Minute)

	var saved Attendance
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findIncompleteFn = func(ctx context.Context, userID string, since time.Time) (*Attendance, error) {
		return &Attendance{
			ID:             uuid.New(),
			UserID:         userUUID,
			AttendanceDate: DateOf(clockIn),
			ClockIn:        clockIn,
			Status:         StatusPresent,
		}, nil
	}
	repo.updateFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }

	svc := newTestService(db, repo, &fakeLeaveChecker{}, now)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.CheckOut(context.Background(), userUUID.String(), CheckOutRequest{Note: "rekap harian"}, testPhoto())

	assert.NoError(t, err)
	assert.Equal(t, "8j 30m", resp.WorkDuration)
	assert.NotNil(t, saved.ClockOut)
	assert.NotNil(t, saved.ActivityNote)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_CheckOut_NoActiveCheckIn(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	now := time.Date(2026, 1, 6, 17, 0, 0, 0, ZoneWIB)

	repo := &fakeRepo{}
	repo.findIncompleteFn = func(ctx context.Context, userID string, since time.Time) (*Attendance, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := newTestService(db, repo, &fakeLeaveChecker{}, now)

	_, err := svc.CheckOut(context.Background(), uuid.New().String(), CheckOutRequest{Note: "x"}, testPhoto())

	assert.ErrorIs(t, err, ErrNoActiveCheckIn)
}

func TestService_CheckOut_ManualCrossMidnight(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	userUUID := uuid.New()
	attendanceDate := time.Date(2026, 1, 5, 0, 0, 0, 0, ZoneWIB)
	clockIn := time.Date(2026, 1, 5, 22, 0, 0, 0, ZoneWIB)
	now := time.Date(2026, 1, 6, 10, 0, 0, 0, ZoneWIB)

	var saved Attendance
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByUserAndDateFn = func(ctx context.Context, userID string, date time.Time) (*Attendance, error) {
		return &Attendance{
			ID:             uuid.New(),
			UserID:         userUUID,
			AttendanceDate: attendanceDate,
			ClockIn:        clockIn,
			Status:         StatusPresent,
		}, nil
	}
	repo.updateFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }

	svc := newTestService(db, repo, &fakeLeaveChecker{}, now)

	date := "2026-01-05"
	manual := "06:00"
	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.CheckOut(context.Background(), userUUID.String(), CheckOutRequest{
		Note:       "shift malam",
		Date:       &date,
		ManualTime: &manual,
	}, testPhoto())

	assert.NoError(t, err)
	// 06:00 <= jam check-in, jadi checkout jatuh di tanggal 6
	assert.Equal(t, 6, saved.ClockOut.In(ZoneWIB).Day())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_CheckOut_ManualTimeRequiredForPastDay(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	now := time.Date(2026, 1, 6, 10, 0, 0, 0, ZoneWIB)

	repo := &fakeRepo{}
	repo.findByUserAndDateFn = func(ctx context.Context, userID string, date time.Time) (*Attendance, error) {
		return &Attendance{ID: uuid.New(), ClockIn: now.AddDate(0, 0, -1)}, nil
	}

	svc := newTestService(db, repo, &fakeLeaveChecker{}, now)

	date := "2026-01-05"
	_, err := svc.CheckOut(context.Background(), uuid.New().String(), CheckOutRequest{
		Note: "x",
		Date: &date,
	}, testPhoto())

	assert.ErrorIs(t, err, ErrManualTimeRequired)
}

func TestService_CheckOut_AlreadyCheckedOut(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	now := time.Date(2026, 1, 6, 10, 0, 0, 0, ZoneWIB)
	doneAt := now.Add(-time.Hour)

	repo := &fakeRepo{}
	repo.findByUserAndDateFn = func(ctx context.Context, userID string, date time.Time) (*Attendance, error) {
		return &Attendance{ID: uuid.New(), ClockIn: now.AddDate(0, 0, -1), ClockOut: &doneAt}, nil
	}

	svc := newTestService(db, repo, &fakeLeaveChecker{}, now)

	date := "2026-01-05"
	manual := "17:00"
	_, err := svc.CheckOut(context.Background(), uuid.New().String(), CheckOutRequest{
		Note:       "x",
		Date:       &date,
		ManualTime: &manual,
	}, testPhoto())

	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
}

func TestService_Status(t *testing.T) {
	now := time.Date(2026, 1, 6, 10, 0, 0, 0, ZoneWIB)
	userID := uuid.New().String()

	t.Run("belum check-in", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		repo := &fakeRepo{}
		repo.findByUserAndDateFn = func(ctx context.Context, userID string, date time.Time) (*Attendance, error) {
			return nil, gorm.ErrRecordNotFound
		}
		repo.findIncompleteFn = func(ctx context.Context, userID string, since time.Time) (*Attendance, error) {
			return nil, gorm.ErrRecordNotFound
		}

		svc := newTestService(db, repo, &fakeLeaveChecker{}, now)
		resp, err := svc.Status(context.Background(), userID)

		assert.NoError(t, err)
		assert.Equal(t, StateNotCheckedIn, resp.State)
		assert.Nil(t, resp.Today)
	})

	t.Run("check-in hari ini masih terbuka", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		open := &Attendance{
			ID:             uuid.New(),
			UserID:         uuid.MustParse(userID),
			AttendanceDate: DateOf(now),
			ClockIn:        now.Add(-time.Hour),
			Status:         StatusPresent,
		}
		repo := &fakeRepo{}
		repo.findByUserAndDateFn = func(ctx context.Context, userID string, date time.Time) (*Attendance, error) {
			return open, nil
		}
		repo.findIncompleteFn = func(ctx context.Context, userID string, since time.Time) (*Attendance, error) {
			return open, nil
		}

		svc := newTestService(db, repo, &fakeLeaveChecker{}, now)
		resp, err := svc.Status(context.Background(), userID)

		assert.NoError(t, err)
		// Baris terbuka milik hari ini bukan INCOMPLETE_PREVIOUS_DAY
		assert.Equal(t, StateCheckedIn, resp.State)
		assert.NotNil(t, resp.Today)
	})

	t.Run("check-in kemarin belum ditutup", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		yesterday := now.AddDate(0, 0, -1)
		repo := &fakeRepo{}
		repo.findByUserAndDateFn = func(ctx context.Context, userID string, date time.Time) (*Attendance, error) {
			return nil, gorm.ErrRecordNotFound
		}
		repo.findIncompleteFn = func(ctx context.Context, userID string, since time.Time) (*Attendance, error) {
			return &Attendance{
				ID:             uuid.New(),
				UserID:         uuid.MustParse(userID),
				AttendanceDate: DateOf(yesterday),
				ClockIn:        yesterday,
				Status:         StatusPresent,
			}, nil
		}

		svc := newTestService(db, repo, &fakeLeaveChecker{}, now)
		resp, err := svc.Status(context.Background(), userID)

		assert.NoError(t, err)
		assert.Equal(t, StateIncompletePreviousDay, resp.State)
		assert.NotNil(t, resp.Incomplete)
	})
}
