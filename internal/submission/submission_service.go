package submission

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sistem-pengajuan/internal/events"
	"sistem-pengajuan/internal/files"
	"sistem-pengajuan/internal/messaging/kafka"
	"sistem-pengajuan/internal/shared/counter"
	"sistem-pengajuan/internal/storage"
	submissionerrors "sistem-pengajuan/internal/submission/errors"

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
	TypeGoods         = "GOODS"
	TypeCash          = "CASH"
	TypeReimbursement = "REIMBURSEMENT"
)

// GateChecker adalah interface lokal supaya package submission tidak
// bergantung langsung ke package setting.
type GateChecker interface {
	SubmissionOpen(ctx context.Context) (bool, error)
}

//go:generate mockgen -source=submission_service.go -destination=mock/submission_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, userID string, req CreateSubmissionRequest, evidence *Evidence) (SubmissionResponse, error)
	GetAll(ctx context.Context, userID string, filter ListFilterRequest) ([]SubmissionResponse, error)
	AdminGetAll(ctx context.Context, filter ListFilterRequest) ([]SubmissionResponse, error)
	Decide(ctx context.Context, actorID, id string, req DecideSubmissionRequest) (SubmissionResponse, error)
	AttachTransferProof(ctx context.Context, actorID, id string, proof Evidence) (SubmissionResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	gate    GateChecker
	files   files.Service
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
	now     func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	gate GateChecker,
	fileService files.Service,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("submission.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("submission.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		gate:    gate,
		files:   fileService,
		outbox:  outbox,
		logger:  l,
		now:     time.Now,
	}
}

func (s *service) Create(ctx context.Context, userID string, req CreateSubmissionRequest, evidence *Evidence) (SubmissionResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return SubmissionResponse{}, submissionerrors.ErrInvalidUserID
	}
	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("create submission validation failed", zap.Error(err))
		return SubmissionResponse{}, err
	}

	// Gate global dicek di server pada setiap create, bukan hanya di client.
	open, err := s.gate.SubmissionOpen(ctx)
	if err != nil {
		s.logger.Error("create submission gate check failed", zap.Error(err))
		return SubmissionResponse{}, err
	}
	if !open {
		s.logger.Warn("create submission rejected, gate closed", zap.String("user_id", userID))
		return SubmissionResponse{}, submissionerrors.ErrSubmissionClosed
	}

	number, err := s.nextNumber(ctx, req.Type)
	if err != nil {
		s.logger.Error("create submission numbering failed", zap.Error(err))
		return SubmissionResponse{}, err
	}

	var evidencePath *string
	if evidence != nil {
		stored, err := s.files.Upload(ctx, evidenceBucket(req.Type), userUUID, evidence.Filename, evidence.ContentType, evidence.Size, evidence.Reader)
		if err != nil {
			s.logger.Error("create submission evidence upload failed", zap.Error(err))
			return SubmissionResponse{}, err
		}
		evidencePath = &stored
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SubmissionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &Submission{
		ID:              uuid.New(),
		Number:          number,
		Type:            req.Type,
		UserID:          userUUID,
		Category:        req.Category,
		Description:     req.Description,
		RequestedQty:    req.RequestedQty,
		RequestedAmount: req.RequestedAmount,
		EvidencePath:    evidencePath,
		Status:          StatusPending,
	}
	if req.ItemName != "" {
		row.ItemName = &req.ItemName
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("create submission persist failed", zap.Error(err))
		return SubmissionResponse{}, mapCreateError(err)
	}
	if err := tx.Commit(); err != nil {
		return SubmissionResponse{}, err
	}

	s.logger.Info("create submission success",
		zap.String("submission_id", row.ID.String()),
		zap.String("number", row.Number),
		zap.String("type", row.Type),
		zap.String("user_id", userID),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, userID string, filter ListFilterRequest) ([]SubmissionResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, submissionerrors.ErrInvalidUserID
	}
	rows, err := s.repo.FindAllByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) AdminGetAll(ctx context.Context, filter ListFilterRequest) ([]SubmissionResponse, error) {
	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

// Decide menimpa seluruh field keputusan. Tidak ada aturan yang melarang
// nominal disetujui melebihi yang diminta, dan keputusan boleh diulang.
func (s *service) Decide(ctx context.Context, actorID, id string, req DecideSubmissionRequest) (SubmissionResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return SubmissionResponse{}, submissionerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(id); err != nil {
		return SubmissionResponse{}, submissionerrors.ErrInvalidSubmissionID
	}
	if req.Status != StatusApproved && req.Status != StatusRejected {
		return SubmissionResponse{}, submissionerrors.ErrInvalidStatus
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SubmissionResponse{}, submissionerrors.ErrSubmissionNotFound
		}
		return SubmissionResponse{}, err
	}

	approvedQty := req.ApprovedQty
	if row.Type == TypeGoods && approvedQty == nil {
		// Kuantitas disetujui yang kosong mengikuti jumlah yang diminta
		approvedQty = row.RequestedQty
	}
	if req.ApprovedAmount != nil && *req.ApprovedAmount < 0 {
		return SubmissionResponse{}, submissionerrors.ErrInvalidAmount
	}

	now := s.now().UTC()
	row.Status = req.Status
	row.AdminNote = req.AdminNote
	row.ApprovedQty = approvedQty
	row.ApprovedAmount = req.ApprovedAmount
	row.DecidedBy = &actorUUID
	row.DecidedAt = &now

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SubmissionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Update(ctx, row); err != nil {
		s.logger.Error("decide submission persist failed",
			zap.String("submission_id", id),
			zap.Error(err),
		)
		return SubmissionResponse{}, err
	}

	// Event keputusan ditulis di transaksi yang sama dengan update status.
	if err := s.writeDecisionEvent(ctx, tx, row, actorID, now); err != nil {
		s.logger.Error("decide submission outbox write failed",
			zap.String("submission_id", id),
			zap.Error(err),
		)
		return SubmissionResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SubmissionResponse{}, err
	}

	s.logger.Info("decide submission success",
		zap.String("submission_id", id),
		zap.String("status", row.Status),
		zap.String("decided_by", actorID),
	)
	return mapToResponse(*row), nil
}

func (s *service) AttachTransferProof(ctx context.Context, actorID, id string, proof Evidence) (SubmissionResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return SubmissionResponse{}, submissionerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(id); err != nil {
		return SubmissionResponse{}, submissionerrors.ErrInvalidSubmissionID
	}
	if proof.Reader == nil {
		return SubmissionResponse{}, submissionerrors.ErrProofRequired
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SubmissionResponse{}, submissionerrors.ErrSubmissionNotFound
		}
		return SubmissionResponse{}, err
	}

	stored, err := s.files.Upload(ctx, storage.BucketBuktiTransfer, actorUUID, proof.Filename, proof.ContentType, proof.Size, proof.Reader)
	if err != nil {
		s.logger.Error("transfer proof upload failed", zap.Error(err))
		return SubmissionResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SubmissionResponse{}, err
	}
	defer tx.Rollback()

	row.TransferProofPath = &stored
	if err := s.repo.WithTx(tx).Update(ctx, row); err != nil {
		return SubmissionResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return SubmissionResponse{}, err
	}

	s.logger.Info("transfer proof attached",
		zap.String("submission_id", id),
		zap.String("path", stored),
	)
	return mapToResponse(*row), nil
}

func (s *service) writeDecisionEvent(ctx context.Context, tx *sql.Tx, row *Submission, actorID string, occurredAt time.Time) error {
	payload, err := json.Marshal(events.SubmissionDecidedEvent{
		EventType:      "submission.decided",
		SubmissionID:   row.ID.String(),
		SubmissionType: row.Type,
		UserID:         row.UserID.String(),
		Status:         row.Status,
		DecidedBy:      actorID,
		OccurredAt:     occurredAt,
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "submission",
		AggregateID:   row.ID.String(),
		EventType:     "submission.decided",
		Topic:         events.SubmissionDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) nextNumber(ctx context.Context, submissionType string) (string, error) {
	seq, err := s.counter.GetNextValue(ctx, submissionType)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("PGJ-%s-%05d", typeCode(submissionType), seq), nil
}

func typeCode(submissionType string) string {
	switch submissionType {
	case TypeGoods:
		return "GDS"
	case TypeCash:
		return "CSH"
	case TypeReimbursement:
		return "RBS"
	default:
		return "UNK"
	}
}

func evidenceBucket(submissionType string) string {
	if submissionType == TypeReimbursement {
		return storage.BucketBuktiReimbursement
	}
	return storage.BucketBuktiLaporan
}

func validateCreateRequest(req CreateSubmissionRequest) error {
	switch req.Type {
	case TypeGoods:
		if req.ItemName == "" {
			return submissionerrors.ErrItemNameRequired
		}
		if req.RequestedQty == nil || *req.RequestedQty < 1 {
			return submissionerrors.ErrInvalidQuantity
		}
	case TypeCash, TypeReimbursement:
		if req.RequestedAmount == nil || *req.RequestedAmount < 0 {
			return submissionerrors.ErrInvalidAmount
		}
	default:
		return submissionerrors.ErrInvalidSubmissionType
	}
	return nil
}

func mapToResponse(row Submission) SubmissionResponse {
	resp := SubmissionResponse{
		ID:                row.ID.String(),
		Number:            row.Number,
		Type:              row.Type,
		UserID:            row.UserID.String(),
		ItemName:          row.ItemName,
		Category:          row.Category,
		Description:       row.Description,
		RequestedQty:      row.RequestedQty,
		RequestedAmount:   row.RequestedAmount,
		ApprovedQty:       row.ApprovedQty,
		ApprovedAmount:    row.ApprovedAmount,
		EvidencePath:      row.EvidencePath,
		TransferProofPath: row.TransferProofPath,
		Status:            row.Status,
		AdminNote:         row.AdminNote,
		CreatedAt:         row.CreatedAt.Format(time.RFC3339),
	}
	if row.Profile != nil {
		resp.EmployeeName = row.Profile.FullName
	}
	if row.DecidedBy != nil {
		v := row.DecidedBy.String()
		resp.DecidedBy = &v
	}
	if row.DecidedAt != nil {
		v := row.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func mapToListResponse(rows []Submission) []SubmissionResponse {
	resp := make([]SubmissionResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp
}
