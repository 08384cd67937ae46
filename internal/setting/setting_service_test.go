package setting

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	findByKeyFn func(ctx context.Context, key string) (*Setting, error)
	upsertFn    func(ctx context.Context, s *Setting) error
}

func (f *fakeRepo) FindByKey(ctx context.Context, key string) (*Setting, error) {
	return f.findByKeyFn(ctx, key)
}
func (f *fakeRepo) Upsert(ctx context.Context, s *Setting) error { return f.upsertFn(ctx, s) }

func TestService_SubmissionOpen_CacheHit(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	dbHits := 0
	repo := &fakeRepo{
		findByKeyFn: func(ctx context.Context, key string) (*Setting, error) {
			dbHits++
			return &Setting{Key: KeySubmissionOpen, Enabled: false}, nil
		},
	}

	mock.ExpectGet(cacheKeySubmissionOpen).SetVal("1")

	svc := NewService(repo, rdb)
	open, err := svc.SubmissionOpen(context.Background())

	assert.NoError(t, err)
	assert.True(t, open)
	assert.Zero(t, dbHits)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_SubmissionOpen_CacheMissFillsCache(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	repo := &fakeRepo{
		findByKeyFn: func(ctx context.Context, key string) (*Setting, error) {
			return &Setting{Key: KeySubmissionOpen, Enabled: false}, nil
		},
	}

	mock.ExpectGet(cacheKeySubmissionOpen).RedisNil()
	mock.ExpectSet(cacheKeySubmissionOpen, "0", cacheTTL).SetVal("OK")

	svc := NewService(repo, rdb)
	open, err := svc.SubmissionOpen(context.Background())

	assert.NoError(t, err)
	assert.False(t, open)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_SubmissionOpen_DefaultsOpenWithoutRow(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	repo := &fakeRepo{
		findByKeyFn: func(ctx context.Context, key string) (*Setting, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	mock.ExpectGet(cacheKeySubmissionOpen).RedisNil()
	mock.ExpectSet(cacheKeySubmissionOpen, "1", cacheTTL).SetVal("OK")

	svc := NewService(repo, rdb)
	open, err := svc.SubmissionOpen(context.Background())

	assert.NoError(t, err)
	assert.True(t, open)
}

func TestService_Update_InvalidatesCache(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	var saved Setting
	repo := &fakeRepo{
		upsertFn: func(ctx context.Context, s *Setting) error { saved = *s; return nil },
	}

	mock.ExpectDel(cacheKeySubmissionOpen).SetVal(1)

	open := false
	svc := NewService(repo, rdb)
	resp, err := svc.Update(context.Background(), "admin-1", UpdateSettingRequest{Open: &open})

	assert.NoError(t, err)
	assert.False(t, resp.SubmissionOpen)
	assert.Equal(t, KeySubmissionOpen, saved.Key)
	assert.False(t, saved.Enabled)
	assert.WithinDuration(t, time.Now().UTC(), saved.UpdatedAt, 5*time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}
