package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"sistem-pengajuan/internal/submission"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	cacheKeyBadgeCounts = "dashboard:badge_counts"

	// TTL di bawah interval polling supaya angka tidak basi lebih dari
	// satu siklus.
	cacheTTL = 20 * time.Second
)

// PendingSubmissionCounter dan PendingLeaveCounter adalah interface
// lokal; repository submission dan leave memenuhinya.
type PendingSubmissionCounter interface {
	CountPendingByType(ctx context.Context) (map[string]int64, error)
}

type PendingLeaveCounter interface {
	CountPending(ctx context.Context) (int64, error)
}

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	BadgeCounts(ctx context.Context) (BadgeCountsResponse, error)
}

type service struct {
	submissions PendingSubmissionCounter
	leaves      PendingLeaveCounter
	rdb         *redis.Client
	sf          singleflight.Group
	logger      *zap.Logger
}

func NewService(submissions PendingSubmissionCounter, leaves PendingLeaveCounter, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{submissions: submissions, leaves: leaves, rdb: rdb, logger: l}
}

func (s *service) BadgeCounts(ctx context.Context) (BadgeCountsResponse, error) {
	val, err := s.rdb.Get(ctx, cacheKeyBadgeCounts).Result()
	if err == nil {
		var cached BadgeCountsResponse
		if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil {
			return cached, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		s.logger.Warn("badge cache read failed, falling back to database", zap.Error(err))
	}

	v, err, _ := s.sf.Do(cacheKeyBadgeCounts, func() (any, error) {
		resp, err := s.countFromDB(ctx)
		if err != nil {
			return BadgeCountsResponse{}, err
		}

		if payload, jsonErr := json.Marshal(resp); jsonErr == nil {
			if setErr := s.rdb.Set(ctx, cacheKeyBadgeCounts, payload, cacheTTL).Err(); setErr != nil {
				s.logger.Warn("badge cache fill failed", zap.Error(setErr))
			}
		}
		return resp, nil
	})
	if err != nil {
		return BadgeCountsResponse{}, err
	}
	return v.(BadgeCountsResponse), nil
}

func (s *service) countFromDB(ctx context.Context) (BadgeCountsResponse, error) {
	counts, err := s.submissions.CountPendingByType(ctx)
	if err != nil {
		return BadgeCountsResponse{}, err
	}

	pendingLeave, err := s.leaves.CountPending(ctx)
	if err != nil {
		return BadgeCountsResponse{}, err
	}

	resp := BadgeCountsResponse{
		PendingGoods:         counts[submission.TypeGoods],
		PendingCash:          counts[submission.TypeCash],
		PendingReimbursement: counts[submission.TypeReimbursement],
		PendingLeave:         pendingLeave,
	}
	resp.TotalPending = resp.PendingGoods + resp.PendingCash + resp.PendingReimbursement + resp.PendingLeave
	return resp, nil
}
