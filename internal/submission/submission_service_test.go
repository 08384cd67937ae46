package submission

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"testing"
	"time"

	"sistem-pengajuan/internal/events"
	"sistem-pengajuan/internal/messaging/kafka"
	submissionerrors "sistem-pengajuan/internal/submission/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	withTxFn             func(tx *sql.Tx) Repository
	createFn             func(ctx context.Context, s *Submission) error
	findAllByUserFn      func(ctx context.Context, userID string, filter ListFilterRequest) ([]Submission, error)
	findAllFn            func(ctx context.Context, filter ListFilterRequest) ([]Submission, error)
	findByIDFn           func(ctx context.Context, id string) (*Submission, error)
	updateFn             func(ctx context.Context, s *Submission) error
	countPendingByTypeFn func(ctx context.Context) (map[string]int64, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository                  { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, s *Submission) error { return f.createFn(ctx, s) }
func (f *fakeRepo) FindAllByUser(ctx context.Context, userID string, filter ListFilterRequest) ([]Submission, error) {
	return f.findAllByUserFn(ctx, userID, filter)
}
func (f *fakeRepo) FindAll(ctx context.Context, filter ListFilterRequest) ([]Submission, error) {
	return f.findAllFn(ctx, filter)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Submission, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, s *Submission) error { return f.updateFn(ctx, s) }
func (f *fakeRepo) CountPendingByType(ctx context.Context) (map[string]int64, error) {
	return f.countPendingByTypeFn(ctx)
}

type fakeGate struct {
	open bool
	err  error
}

func (f *fakeGate) SubmissionOpen(ctx context.Context) (bool, error) { return f.open, f.err }

type fakeCounter struct {
	next int64
}

func (f *fakeCounter) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

type fakeFiles struct {
	uploadFn func(ctx context.Context, bucket string, ownerID uuid.UUID, filename, contentType string, size int64, r io.Reader) (string, error)
}

func (f *fakeFiles) Upload(ctx context.Context, bucket string, ownerID uuid.UUID, filename, contentType string, size int64, r io.Reader) (string, error) {
	return f.uploadFn(ctx, bucket, ownerID, filename, contentType, size, r)
}

func (f *fakeFiles) Open(ctx context.Context, actorID, role, bucket, filePath string) (io.ReadCloser, string, error) {
	return nil, "", nil
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error                  { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestService_Create_GoodsSuccess(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	userID := uuid.New().String()

	var saved Submission
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, s *Submission) error { saved = *s; return nil }

	svc := NewService(db, repo, &fakeCounter{}, &fakeGate{open: true}, &fakeFiles{}, &fakeOutbox{})

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), userID, CreateSubmissionRequest{
		Type:         TypeGoods,
		ItemName:     "kursi kantor",
		Category:     "inventaris",
		Description:  "kursi rusak",
		RequestedQty: intPtr(2),
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, StatusPending, resp.Status)
	assert.Equal(t, "PGJ-GDS-00001", resp.Number)
	assert.Equal(t, "kursi kantor", *saved.ItemName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_GateClosed(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeCounter{}, &fakeGate{open: false}, &fakeFiles{}, &fakeOutbox{})

	_, err := svc.Create(context.Background(), uuid.New().String(), CreateSubmissionRequest{
		Type:            TypeCash,
		Category:        "operasional",
		Description:     "kas kecil",
		RequestedAmount: int64Ptr(150000),
	}, nil)

	assert.ErrorIs(t, err, submissionerrors.ErrSubmissionClosed)
}

func TestService_Create_Validation(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeCounter{}, &fakeGate{open: true}, &fakeFiles{}, &fakeOutbox{})
	userID := uuid.New().String()

	tests := []struct {
		name string
		req  CreateSubmissionRequest
		want error
	}{
		{
			name: "jenis asing",
			req:  CreateSubmissionRequest{Type: "TRAVEL", Category: "x", Description: "x"},
			want: submissionerrors.ErrInvalidSubmissionType,
		},
		{
			name: "barang tanpa nama",
			req:  CreateSubmissionRequest{Type: TypeGoods, Category: "x", Description: "x", RequestedQty: intPtr(1)},
			want: submissionerrors.ErrItemNameRequired,
		},
		{
			name: "barang dengan qty nol",
			req:  CreateSubmissionRequest{Type: TypeGoods, ItemName: "meja", Category: "x", Description: "x", RequestedQty: intPtr(0)},
			want: submissionerrors.ErrInvalidQuantity,
		},
		{
			name: "kas tanpa nominal",
			req:  CreateSubmissionRequest{Type: TypeCash, Category: "x", Description: "x"},
			want: submissionerrors.ErrInvalidAmount,
		},
		{
			name: "reimbursement nominal negatif",
			req:  CreateSubmissionRequest{Type: TypeReimbursement, Category: "x", Description: "x", RequestedAmount: int64Ptr(-1)},
			want: submissionerrors.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), userID, tt.req, nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestService_Create_ReimbursementEvidenceBucket(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	uploaded := ""
	files := &fakeFiles{
		uploadFn: func(ctx context.Context, bucket string, ownerID uuid.UUID, filename, contentType string, size int64, r io.Reader) (string, error) {
			uploaded = bucket
			return ownerID.String() + "/nota.jpg", nil
		},
	}

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, s *Submission) error { return nil }

	svc := NewService(db, repo, &fakeCounter{}, &fakeGate{open: true}, files, &fakeOutbox{})

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.Create(context.Background(), uuid.New().String(), CreateSubmissionRequest{
		Type:            TypeReimbursement,
		Category:        "transportasi",
		Description:     "bensin dinas",
		RequestedAmount: int64Ptr(75000),
	}, &Evidence{Filename: "nota.jpg", ContentType: "image/jpeg", Size: 500})

	assert.NoError(t, err)
	assert.Equal(t, "bukti-reimbursement", uploaded)
}

func TestService_Decide_GoodsQtyDefaultsToRequested(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	id := uuid.New()

	var saved Submission
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, sid string) (*Submission, error) {
		return &Submission{
			ID:           id,
			Type:         TypeGoods,
			UserID:       uuid.New(),
			RequestedQty: intPtr(3),
			Status:       StatusPending,
		}, nil
	}
	repo.updateFn = func(ctx context.Context, s *Submission) error { saved = *s; return nil }

	svc := NewService(db, repo, &fakeCounter{}, &fakeGate{open: true}, &fakeFiles{}, &fakeOutbox{})

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Decide(context.Background(), uuid.New().String(), id.String(), DecideSubmissionRequest{
		Status: StatusApproved,
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, *resp.ApprovedQty)
	assert.Equal(t, 3, *saved.ApprovedQty)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Decide_NegativeAmountRejected(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	id := uuid.New()
	repo := &fakeRepo{}
	repo.findByIDFn = func(ctx context.Context, sid string) (*Submission, error) {
		return &Submission{ID: id, Type: TypeCash, UserID: uuid.New(), Status: StatusPending}, nil
	}

	svc := NewService(db, repo, &fakeCounter{}, &fakeGate{open: true}, &fakeFiles{}, &fakeOutbox{})

	_, err := svc.Decide(context.Background(), uuid.New().String(), id.String(), DecideSubmissionRequest{
		Status:         StatusApproved,
		ApprovedAmount: int64Ptr(-500),
	})

	assert.ErrorIs(t, err, submissionerrors.ErrInvalidAmount)
}

func TestService_Decide_IsIdempotentOverwrite(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	id := uuid.New()
	note := "sudah ditransfer"

	stored := &Submission{
		ID:              id,
		Type:            TypeCash,
		UserID:          uuid.New(),
		RequestedAmount: int64Ptr(200000),
		Status:          StatusApproved,
		AdminNote:       &note,
		ApprovedAmount:  int64Ptr(200000),
	}

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, sid string) (*Submission, error) { return stored, nil }
	repo.updateFn = func(ctx context.Context, s *Submission) error { stored = s; return nil }

	outbox := &fakeOutbox{}
	svc := NewService(db, repo, &fakeCounter{}, &fakeGate{open: true}, &fakeFiles{}, outbox)

	// Keputusan kedua menimpa keputusan pertama tanpa error
	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Decide(context.Background(), uuid.New().String(), id.String(), DecideSubmissionRequest{
		Status:         StatusRejected,
		AdminNote:      &note,
		ApprovedAmount: nil,
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusRejected, resp.Status)
	assert.Nil(t, resp.ApprovedAmount)
	assert.Len(t, outbox.created, 1)
}

func TestService_Decide_WritesOutboxEvent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	id := uuid.New()
	userID := uuid.New()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, sid string) (*Submission, error) {
		return &Submission{ID: id, Type: TypeCash, UserID: userID, RequestedAmount: int64Ptr(100), Status: StatusPending}, nil
	}
	repo.updateFn = func(ctx context.Context, s *Submission) error { return nil }

	outbox := &fakeOutbox{}
	svc := NewService(db, repo, &fakeCounter{}, &fakeGate{open: true}, &fakeFiles{}, outbox)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.Decide(context.Background(), uuid.New().String(), id.String(), DecideSubmissionRequest{
		Status: StatusApproved,
	})

	assert.NoError(t, err)
	assert.Len(t, outbox.created, 1)
	assert.Equal(t, events.SubmissionDecidedTopic, outbox.created[0].Topic)
	assert.Equal(t, kafka.OutboxStatusPending, outbox.created[0].Status)

	var payload events.SubmissionDecidedEvent
	assert.NoError(t, json.Unmarshal(outbox.created[0].Payload, &payload))
	assert.Equal(t, id.String(), payload.SubmissionID)
	assert.Equal(t, TypeCash, payload.SubmissionType)
	assert.Equal(t, userID.String(), payload.UserID)
	assert.WithinDuration(t, time.Now().UTC(), payload.OccurredAt, 5*time.Second)
}

func TestNextNumberFormat(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	counter := &fakeCounter{next: 41}
	svc := NewService(db, &fakeRepo{}, counter, &fakeGate{open: true}, &fakeFiles{}, &fakeOutbox{}).(*service)

	number, err := svc.nextNumber(context.Background(), TypeReimbursement)

	assert.NoError(t, err)
	assert.Equal(t, "PGJ-RBS-00042", number)
}
