package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"sistem-pengajuan/internal/events"
	"sistem-pengajuan/internal/files"
	leaveerrors "sistem-pengajuan/internal/leave/errors"
	"sistem-pengajuan/internal/messaging/kafka"
	"sistem-pengajuan/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

const (
	TypePermission = "PERMISSION"
	TypeSick       = "SICK"
	TypeAnnual     = "ANNUAL"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, userID string, req CreateLeaveRequest, evidence *Evidence) (LeaveResponse, error)
	GetAll(ctx context.Context, userID string, filter ListFilterRequest) ([]LeaveResponse, error)
	AdminGetAll(ctx context.Context, filter ListFilterRequest) ([]LeaveResponse, error)
	Decide(ctx context.Context, actorID, id string, req DecideLeaveRequest) (LeaveResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	files  files.Service
	outbox kafka.OutboxRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *sql.DB, repo Repository, fileService files.Service, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		files:  fileService,
		outbox: outbox,
		logger: l,
		now:    time.Now,
	}
}

func (s *service) Create(ctx context.Context, userID string, req CreateLeaveRequest, evidence *Evidence) (LeaveResponse, error) {
	userUUID, startDate, endDate, err := validateCreateRequest(userID, req)
	if err != nil {
		s.logger.Warn("create leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	overlap, err := s.repo.HasOverlappingPeriod(ctx, userID, startDate, endDate, nil)
	if err != nil {
		s.logger.Error("create leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("create leave overlap detected",
			zap.String("user_id", userID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	var evidencePath *string
	if evidence != nil {
		stored, err := s.files.Upload(ctx, storage.BucketBuktiIzin, userUUID, evidence.Filename, evidence.ContentType, evidence.Size, evidence.Reader)
		if err != nil {
			s.logger.Error("create leave evidence upload failed", zap.Error(err))
			return LeaveResponse{}, err
		}
		evidencePath = &stored
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	totalDays := int(endDate.Sub(startDate).Hours()/24) + 1
	l := &Leave{
		ID:           uuid.New(),
		UserID:       userUUID,
		LeaveType:    req.LeaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		TotalDays:    totalDays,
		Reason:       req.Reason,
		EvidencePath: evidencePath,
		Status:       StatusPending,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("user_id", userID),
		zap.String("leave_type", l.LeaveType),
	)
	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, userID string, filter ListFilterRequest) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, leaveerrors.ErrInvalidUserID
	}
	leaves, err := s.repo.FindAllByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) AdminGetAll(ctx context.Context, filter ListFilterRequest) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) Decide(ctx context.Context, actorID, id string, req DecideLeaveRequest) (LeaveResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	if req.Status != StatusApproved && req.Status != StatusRejected {
		return LeaveResponse{}, leaveerrors.ErrInvalidStatus
	}
	if req.Status == StatusRejected && (req.AdminNote == nil || *req.AdminNote == "") {
		return LeaveResponse{}, leaveerrors.ErrAdminNoteRequired
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	now := s.now().UTC()
	l.Status = req.Status
	l.AdminNote = req.AdminNote
	l.DecidedBy = &actorUUID
	l.DecidedAt = &now

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("decide leave persist failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	// Event keputusan ditulis di transaksi yang sama dengan update status.
	if err := s.writeDecisionEvent(ctx, tx, l, actorID, now); err != nil {
		s.logger.Error("decide leave outbox write failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("decide leave success",
		zap.String("leave_id", id),
		zap.String("status", l.Status),
		zap.String("decided_by", actorID),
	)
	return mapToResponse(*l), nil
}

func (s *service) writeDecisionEvent(ctx context.Context, tx *sql.Tx, l *Leave, actorID string, occurredAt time.Time) error {
	payload, err := json.Marshal(events.LeaveDecidedEvent{
		EventType:  "leave.decided",
		LeaveID:    l.ID.String(),
		UserID:     l.UserID.String(),
		Status:     l.Status,
		DecidedBy:  actorID,
		OccurredAt: occurredAt,
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "leave",
		AggregateID:   l.ID.String(),
		EventType:     "leave.decided",
		Topic:         events.LeaveDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func validateCreateRequest(userID string, req CreateLeaveRequest) (uuid.UUID, time.Time, time.Time, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidUserID
	}

	switch req.LeaveType {
	case TypePermission, TypeSick, TypeAnnual:
	default:
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidLeaveType
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, err
	}
	if startDate.After(endDate) {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return userUUID, startDate, endDate, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:           l.ID.String(),
		UserID:       l.UserID.String(),
		LeaveType:    l.LeaveType,
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		TotalDays:    l.TotalDays,
		Reason:       l.Reason,
		EvidencePath: l.EvidencePath,
		Status:       l.Status,
		AdminNote:    l.AdminNote,
		CreatedAt:    l.CreatedAt.Format(time.RFC3339),
	}
	if l.Profile != nil {
		resp.EmployeeName = l.Profile.FullName
	}
	if l.DecidedBy != nil {
		v := l.DecidedBy.String()
		resp.DecidedBy = &v
	}
	if l.DecidedAt != nil {
		v := l.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
