package report

import (
	"context"
	"net/http"
	"sort"
	"time"

	"sistem-pengajuan/internal/shared/apperror"
	"sistem-pengajuan/internal/submission"

	"go.uber.org/zap"
)

var ErrInvalidDate = apperror.New(
	apperror.CodeInvalidInput,
	"Format tanggal tidak valid (YYYY-MM-DD)",
	http.StatusBadRequest,
)

// SubmissionSource dan NameReader adalah interface lokal; repository
// submission dan profile memenuhinya tanpa import balik.
type SubmissionSource interface {
	FindAll(ctx context.Context, filter submission.ListFilterRequest) ([]submission.Submission, error)
}

type NameReader interface {
	FindNamesByUserIDs(ctx context.Context, userIDs []string) (map[string]string, error)
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, filter ReportFilterRequest) (ReportResponse, error)
	ExportPDF(ctx context.Context, filter ReportFilterRequest) ([]byte, error)
	ExportExcel(ctx context.Context, filter ReportFilterRequest) ([]byte, error)
}

type service struct {
	submissions SubmissionSource
	names       NameReader
	logger      *zap.Logger
}

func NewService(submissions SubmissionSource, names NameReader, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{submissions: submissions, names: names, logger: l}
}

func (s *service) Generate(ctx context.Context, filter ReportFilterRequest) (ReportResponse, error) {
	if err := validateFilter(filter); err != nil {
		return ReportResponse{}, err
	}

	types := []string{submission.TypeGoods, submission.TypeCash, submission.TypeReimbursement}
	if filter.Type != "" {
		types = []string{filter.Type}
	}

	var rows []submission.Submission
	for _, t := range types {
		part, err := s.submissions.FindAll(ctx, submission.ListFilterRequest{
			StartDate: filter.StartDate,
			EndDate:   filter.EndDate,
			Type:      t,
		})
		if err != nil {
			s.logger.Error("report fetch failed", zap.String("type", t), zap.Error(err))
			return ReportResponse{}, err
		}
		rows = append(rows, part...)
	}

	names, err := s.fetchNames(ctx, rows)
	if err != nil {
		s.logger.Error("report name lookup failed", zap.Error(err))
		return ReportResponse{}, err
	}

	details := make([]ReportRow, len(rows))
	summary := ReportSummary{TotalRows: len(rows)}
	for i, row := range rows {
		detail := mapToRow(row, names)
		details[i] = detail

		if row.Status != submission.StatusApproved {
			continue
		}
		summary.ApprovedRows++
		switch row.Type {
		case submission.TypeGoods:
			if detail.ApprovedQty != nil {
				summary.TotalGoodsQty += *detail.ApprovedQty
			} else if detail.RequestedQty != nil {
				summary.TotalGoodsQty += *detail.RequestedQty
			}
		case submission.TypeCash:
			summary.TotalCash += detail.EffectiveNominal
		case submission.TypeReimbursement:
			summary.TotalReimbursement += detail.EffectiveNominal
		}
	}

	sort.SliceStable(details, func(i, j int) bool {
		return details[i].Date > details[j].Date
	})

	return ReportResponse{Summary: summary, Details: details}, nil
}

func (s *service) fetchNames(ctx context.Context, rows []submission.Submission) (map[string]string, error) {
	seen := make(map[string]struct{}, len(rows))
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		id := row.UserID.String()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return s.names.FindNamesByUserIDs(ctx, ids)
}

func mapToRow(row submission.Submission, names map[string]string) ReportRow {
	detail := ReportRow{
		Date:            row.CreatedAt.Format("2006-01-02"),
		Number:          row.Number,
		EmployeeName:    names[row.UserID.String()],
		Type:            row.Type,
		Category:        row.Category,
		Description:     row.Description,
		RequestedQty:    row.RequestedQty,
		ApprovedQty:     row.ApprovedQty,
		RequestedAmount: row.RequestedAmount,
		ApprovedAmount:  row.ApprovedAmount,
		Status:          row.Status,
	}

	switch {
	case row.Status == submission.StatusApproved && row.ApprovedAmount != nil:
		detail.EffectiveNominal = *row.ApprovedAmount
	case row.RequestedAmount != nil:
		detail.EffectiveNominal = *row.RequestedAmount
	}
	return detail
}

func validateFilter(filter ReportFilterRequest) error {
	for _, v := range []string{filter.StartDate, filter.EndDate} {
		if v == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", v); err != nil {
			return ErrInvalidDate
		}
	}
	return nil
}
