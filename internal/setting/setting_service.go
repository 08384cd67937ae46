package setting

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	cacheKeySubmissionOpen = "setting:submission_open"
	cacheTTL               = 60 * time.Second
)

//go:generate mockgen -source=setting_service.go -destination=mock/setting_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context) (SettingResponse, error)
	Update(ctx context.Context, actorID string, req UpdateSettingRequest) (SettingResponse, error)

	// SubmissionOpen dibaca pada setiap create pengajuan (cache-aside,
	// singleflight meredam stampede saat cache kosong).
	SubmissionOpen(ctx context.Context) (bool, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("setting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("setting.service")
	}
	return &service{repo: repo, rdb: rdb, logger: l}
}

func (s *service) Get(ctx context.Context) (SettingResponse, error) {
	row, err := s.findOrDefault(ctx)
	if err != nil {
		return SettingResponse{}, err
	}
	return mapToResponse(row), nil
}

func (s *service) Update(ctx context.Context, actorID string, req UpdateSettingRequest) (SettingResponse, error) {
	row := &Setting{
		Key:       KeySubmissionOpen,
		Enabled:   *req.Open,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.Upsert(ctx, row); err != nil {
		s.logger.Error("update setting persist failed", zap.Error(err))
		return SettingResponse{}, err
	}

	// Invalidate dulu, pembaca berikutnya mengisi ulang dari database
	if err := s.rdb.Del(ctx, cacheKeySubmissionOpen).Err(); err != nil {
		s.logger.Warn("setting cache invalidation failed", zap.Error(err))
	}

	s.logger.Info("submission gate updated",
		zap.Bool("open", row.Enabled),
		zap.String("actor_id", actorID),
	)
	return mapToResponse(row), nil
}

func (s *service) SubmissionOpen(ctx context.Context) (bool, error) {
	val, err := s.rdb.Get(ctx, cacheKeySubmissionOpen).Result()
	if err == nil {
		return val == "1", nil
	}
	if !errors.Is(err, redis.Nil) {
		s.logger.Warn("setting cache read failed, falling back to database", zap.Error(err))
	}

	v, err, _ := s.sf.Do(cacheKeySubmissionOpen, func() (any, error) {
		row, err := s.findOrDefault(ctx)
		if err != nil {
			return false, err
		}

		cached := "0"
		if row.Enabled {
			cached = "1"
		}
		if err := s.rdb.Set(ctx, cacheKeySubmissionOpen, cached, cacheTTL).Err(); err != nil {
			s.logger.Warn("setting cache fill failed", zap.Error(err))
		}
		return row.Enabled, nil
	})
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// findOrDefault mengembalikan baris setting; tanpa baris, gerbang
// dianggap terbuka.
func (s *service) findOrDefault(ctx context.Context) (*Setting, error) {
	row, err := s.repo.FindByKey(ctx, KeySubmissionOpen)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &Setting{Key: KeySubmissionOpen, Enabled: true}, nil
		}
		return nil, err
	}
	return row, nil
}

func mapToResponse(row *Setting) SettingResponse {
	resp := SettingResponse{SubmissionOpen: row.Enabled}
	if !row.UpdatedAt.IsZero() {
		resp.UpdatedAt = row.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}
