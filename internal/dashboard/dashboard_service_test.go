package dashboard

import (
	"context"
	"encoding/json"
	"testing"

	"sistem-pengajuan/internal/submission"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type fakeSubmissionCounter struct {
	counts map[string]int64
	hits   int
}

func (f *fakeSubmissionCounter) CountPendingByType(ctx context.Context) (map[string]int64, error) {
	f.hits++
	return f.counts, nil
}

type fakeLeaveCounter struct {
	count int64
}

func (f *fakeLeaveCounter) CountPending(ctx context.Context) (int64, error) {
	return f.count, nil
}

func TestService_BadgeCounts_CacheMiss(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	submissions := &fakeSubmissionCounter{counts: map[string]int64{
		submission.TypeGoods:         2,
		submission.TypeReimbursement: 1,
	}}
	leaves := &fakeLeaveCounter{count: 3}

	expected := BadgeCountsResponse{
		PendingGoods:         2,
		PendingCash:          0,
		PendingReimbursement: 1,
		PendingLeave:         3,
		TotalPending:         6,
	}
	payload, _ := json.Marshal(expected)

	mock.ExpectGet(cacheKeyBadgeCounts).RedisNil()
	mock.ExpectSet(cacheKeyBadgeCounts, payload, cacheTTL).SetVal("OK")

	svc := NewService(submissions, leaves, rdb)
	resp, err := svc.BadgeCounts(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, resp)
	assert.Equal(t, 1, submissions.hits)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_BadgeCounts_CacheHitSkipsDatabase(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	cached := BadgeCountsResponse{PendingGoods: 5, TotalPending: 5}
	payload, _ := json.Marshal(cached)
	mock.ExpectGet(cacheKeyBadgeCounts).SetVal(string(payload))

	submissions := &fakeSubmissionCounter{}
	svc := NewService(submissions, &fakeLeaveCounter{}, rdb)

	resp, err := svc.BadgeCounts(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, cached, resp)
	assert.Zero(t, submissions.hits)
	assert.NoError(t, mock.ExpectationsWereMet())
}
