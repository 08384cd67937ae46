package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"sistem-pengajuan/internal/files"
	"sistem-pengajuan/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LeaveChecker adalah interface lokal supaya package attendance tidak
// bergantung langsung ke package leave.
type LeaveChecker interface {
	HasApprovedLeaveOn(ctx context.Context, userID string, date time.Time) (bool, error)
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	// Status mengembalikan state harian eksplisit untuk user, termasuk
	// deteksi check-in hari sebelumnya yang belum ditutup.
	Status(ctx context.Context, userID string) (DayStateResponse, error)
	CheckIn(ctx context.Context, userID string, req CheckInRequest, photo Photo) (AttendanceResponse, error)
	CheckOut(ctx context.Context, userID string, req CheckOutRequest, photo Photo) (AttendanceResponse, error)
	GetAll(ctx context.Context, actorID string, canReadAll bool, filter ListFilterRequest) ([]AttendanceResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	leaves LeaveChecker
	files  files.Service
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *sql.DB, repo Repository, leaves LeaveChecker, fileService files.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		leaves: leaves,
		files:  fileService,
		logger: l,
		now:    time.Now,
	}
}

func (s *service) Status(ctx context.Context, userID string) (DayStateResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return DayStateResponse{}, ErrInvalidUserID
	}

	now := s.now().In(ZoneWIB)
	today := DateOf(now)

	todayRow, err := s.repo.FindByUserAndDate(ctx, userID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return DayStateResponse{}, err
	}
	hasToday := err == nil

	incomplete, err := s.repo.FindIncomplete(ctx, userID, now.Add(-incompleteWindow))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return DayStateResponse{}, err
	}
	hasIncomplete := err == nil

	// Baris hari ini yang belum ditutup bukan "incomplete previous day"
	if hasIncomplete && DateOf(incomplete.ClockIn).Equal(today) {
		hasIncomplete = false
	}

	resp := DayStateResponse{State: StateNotCheckedIn}
	switch {
	case hasIncomplete:
		resp.State = StateIncompletePreviousDay
		r := mapToResponse(*incomplete)
		resp.Incomplete = &r
	case hasToday && todayRow.ClockOut != nil:
		resp.State = StateCheckedOut
	case hasToday:
		resp.State = StateCheckedIn
	}
	if hasToday {
		r := mapToResponse(*todayRow)
		resp.Today = &r
	}

	return resp, nil
}

func (s *service) CheckIn(ctx context.Context, userID string, req CheckInRequest, photo Photo) (AttendanceResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return AttendanceResponse{}, ErrInvalidUserID
	}
	if photo.Reader == nil {
		return AttendanceResponse{}, ErrPhotoRequired
	}

	now := s.now().In(ZoneWIB)
	today := DateOf(now)

	// Cuti/izin yang disetujui untuk hari ini memblokir check-in.
	// Ditegakkan di server, bukan sekadar peringatan di client.
	onLeave, err := s.leaves.HasApprovedLeaveOn(ctx, userID, today)
	if err != nil {
		s.logger.Error("check-in leave lookup failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if onLeave {
		return AttendanceResponse{}, ErrOnApprovedLeave
	}

	// Baris hari sebelumnya yang belum ditutup memblokir check-in baru
	// sampai diselesaikan lewat check-out manual.
	incomplete, err := s.repo.FindIncomplete(ctx, userID, now.Add(-incompleteWindow))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if err == nil && !DateOf(incomplete.ClockIn).Equal(today) {
		return AttendanceResponse{}, ErrIncompletePreviousDay
	}

	// Upload foto dulu, lalu insert baris. Dua panggilan terpisah; foto
	// yatim saat insert gagal dibiarkan (tidak ada kompensasi hapus).
	photoPath, err := s.files.Upload(ctx, storage.BucketFotoAbsensi, userUUID, photo.Filename, photo.ContentType, photo.Size, photo.Reader)
	if err != nil {
		s.logger.Error("check-in photo upload failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &Attendance{
		ID:             uuid.New(),
		UserID:         userUUID,
		AttendanceDate: today,
		ClockIn:        now,
		ClockInPhoto:   photoPath,
		ClockInNote:    req.Note,
		Status:         StatusForCheckIn(now),
	}

	if err := qtx.Create(ctx, row); err != nil {
		return AttendanceResponse{}, mapCreateError(err)
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("check-in recorded",
		zap.String("user_id", userID),
		zap.String("date", today.Format("2006-01-02")),
		zap.String("status", row.Status),
	)
	return mapToResponse(*row), nil
}

func (s *service) CheckOut(ctx context.Context, userID string, req CheckOutRequest, photo Photo) (AttendanceResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return AttendanceResponse{}, ErrInvalidUserID
	}
	if photo.Reader == nil {
		return AttendanceResponse{}, ErrPhotoRequired
	}

	now := s.now().In(ZoneWIB)

	row, checkout, err := s.resolveCheckout(ctx, userID, req, now)
	if err != nil {
		return AttendanceResponse{}, err
	}

	photoPath, err := s.files.Upload(ctx, storage.BucketFotoAbsensi, userUUID, photo.Filename, photo.ContentType, photo.Size, photo.Reader)
	if err != nil {
		s.logger.Error("check-out photo upload failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	note := req.Note
	row.ClockOut = &checkout
	row.ClockOutPhoto = &photoPath
	row.ActivityNote = &note

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("check-out recorded",
		zap.String("user_id", userID),
		zap.String("date", row.AttendanceDate.Format("2006-01-02")),
		zap.String("duration", FormatWorkDuration(row.ClockIn, checkout)),
	)
	return mapToResponse(*row), nil
}

// resolveCheckout menentukan baris absensi yang ditutup dan timestamp
// checkout efektifnya. Hari lampau dicari berdasarkan tanggal eksplisit
// dengan jam manual; hari yang sama memakai baris incomplete terbaru
// dalam 48 jam terakhir.
func (s *service) resolveCheckout(ctx context.Context, userID string, req CheckOutRequest, now time.Time) (*Attendance, time.Time, error) {
	if req.Date != nil {
		date, err := time.ParseInLocation("2006-01-02", *req.Date, ZoneWIB)
		if err != nil {
			return nil, time.Time{}, ErrInvalidDate
		}

		row, err := s.repo.FindByUserAndDate(ctx, userID, date)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, time.Time{}, ErrAttendanceNotFound
			}
			return nil, time.Time{}, err
		}
		if row.ClockOut != nil {
			return nil, time.Time{}, ErrAlreadyCheckedOut
		}
		if req.ManualTime == nil {
			return nil, time.Time{}, ErrManualTimeRequired
		}

		checkout, err := ResolveManualCheckout(row.AttendanceDate, row.ClockIn, *req.ManualTime)
		if err != nil {
			return nil, time.Time{}, err
		}
		return row, checkout, nil
	}

	row, err := s.repo.FindIncomplete(ctx, userID, now.Add(-incompleteWindow))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, time.Time{}, ErrNoActiveCheckIn
		}
		return nil, time.Time{}, err
	}
	return row, now, nil
}

func (s *service) GetAll(ctx context.Context, actorID string, canReadAll bool, filter ListFilterRequest) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(actorID); err != nil {
		return nil, ErrInvalidUserID
	}

	from, to, err := parseDateRange(filter)
	if err != nil {
		return nil, err
	}

	var rows []Attendance
	if canReadAll {
		rows, err = s.repo.FindAll(ctx, from, to)
	} else {
		rows, err = s.repo.FindAllByUser(ctx, actorID, from, to)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

func parseDateRange(filter ListFilterRequest) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if filter.StartDate != "" {
		t, err := time.ParseInLocation("2006-01-02", filter.StartDate, ZoneWIB)
		if err != nil {
			return nil, nil, ErrInvalidDate
		}
		from = &t
	}
	if filter.EndDate != "" {
		t, err := time.ParseInLocation("2006-01-02", filter.EndDate, ZoneWIB)
		if err != nil {
			return nil, nil, ErrInvalidDate
		}
		to = &t
	}
	return from, to, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		UserID:         a.UserID.String(),
		AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
		ClockIn:        a.ClockIn.In(ZoneWIB).Format(time.RFC3339),
		ClockInPhoto:   a.ClockInPhoto,
		Note:           a.ClockInNote,
		ActivityNote:   a.ActivityNote,
		Status:         a.Status,
	}
	if a.Profile != nil {
		resp.EmployeeName = a.Profile.FullName
	}
	if a.ClockOut != nil {
		v := a.ClockOut.In(ZoneWIB).Format(time.RFC3339)
		resp.ClockOut = &v
		resp.ClockOutPhoto = a.ClockOutPhoto
		resp.WorkDuration = FormatWorkDuration(a.ClockIn, *a.ClockOut)
	}
	return resp
}
