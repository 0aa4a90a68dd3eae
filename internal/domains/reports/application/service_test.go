package application

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-shop-api/internal/domains/reports/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/reports/ports"
)

type fakeReportRepo struct {
	calls     atomic.Int32
	snapshots atomic.Int32
	err       error
}

func (f *fakeReportRepo) Snapshot(ctx context.Context, fn func(context.Context, ports.Queries) error) error {
	f.snapshots.Add(1)
	return fn(ctx, f)
}

func (f *fakeReportRepo) TotalsByManufacturer(context.Context) ([]domain.Total, error) {
	f.calls.Add(1)
	return []domain.Total{{Label: "Acme", Amount: 500}}, f.err
}

func (f *fakeReportRepo) TotalsByCategory(context.Context) ([]domain.Total, error) {
	f.calls.Add(1)
	return []domain.Total{{Label: "Widgets", Amount: 500}}, nil
}

func (f *fakeReportRepo) TotalsByMonth(context.Context) ([]domain.Total, error) {
	f.calls.Add(1)
	return []domain.Total{{Label: "2024-03", Amount: 500}}, nil
}

type memoryCache struct {
	mu            sync.Mutex
	summary       *domain.Summary
	generation    int64
	getErr        error
	invalidateErr error
	setCalls      int
}

func (c *memoryCache) Get(context.Context) (*domain.Summary, int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.summary, c.generation, c.getErr
}

func (c *memoryCache) Set(_ context.Context, generation int64, summary *domain.Summary) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setCalls++
	if generation == c.generation {
		c.summary = summary
	}
	return nil
}

func (c *memoryCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.invalidateErr != nil {
		return c.invalidateErr
	}
	c.generation++
	c.summary = nil
	return nil
}

// pausingRepo blocks TotalsByMonth until released so a test can commit an
// order between the aggregate queries and the cache write.
type pausingRepo struct {
	mu         sync.Mutex
	monthTotal int64
	paused     chan struct{}
	release    chan struct{}
	pause      atomic.Bool
}

func newPausingRepo(monthTotal int64) *pausingRepo {
	return &pausingRepo{monthTotal: monthTotal, paused: make(chan struct{}), release: make(chan struct{})}
}

func (r *pausingRepo) Snapshot(ctx context.Context, fn func(context.Context, ports.Queries) error) error {
	return fn(ctx, r)
}

func (r *pausingRepo) TotalsByManufacturer(context.Context) ([]domain.Total, error) {
	return nil, nil
}

func (r *pausingRepo) TotalsByCategory(context.Context) ([]domain.Total, error) {
	return nil, nil
}

func (r *pausingRepo) TotalsByMonth(context.Context) ([]domain.Total, error) {
	r.mu.Lock()
	total := r.monthTotal
	r.mu.Unlock()
	if r.pause.CompareAndSwap(true, false) {
		close(r.paused)
		<-r.release
	}
	return []domain.Total{{Label: "2024-03", Amount: total}}, nil
}

func (r *pausingRepo) setMonthTotal(total int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.monthTotal = total
}

func clock() time.Time { return time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC) }

func TestService_SummaryWithoutCache(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewService(repo, WithClock(clock))

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Total{{Label: "Acme", Amount: 500}}, summary.ByManufacturer)
	assert.Equal(t, []domain.Total{{Label: "Widgets", Amount: 500}}, summary.ByCategory)
	assert.Equal(t, []domain.Total{{Label: "2024-03", Amount: 500}}, summary.ByMonth)
	assert.Equal(t, clock(), summary.GeneratedAt)
	require.NoError(t, svc.Invalidate(context.Background()))
}

func TestService_SummaryReadsThroughCache(t *testing.T) {
	repo := &fakeReportRepo{}
	cache := &memoryCache{}
	svc := NewService(repo, WithCache(cache), WithClock(clock))
	ctx := context.Background()

	_, err := svc.Summary(ctx)
	require.NoError(t, err)
	_, err = svc.Summary(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, repo.calls.Load(), "second read served from cache")
	assert.EqualValues(t, 1, repo.snapshots.Load())
	assert.Equal(t, 1, cache.setCalls)

	require.NoError(t, svc.Invalidate(ctx))
	_, err = svc.Summary(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 6, repo.calls.Load())
}

func TestService_SummaryIgnoresCacheFailures(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewService(repo, WithCache(&memoryCache{getErr: errors.New("redis down")}))

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Len(t, summary.ByMonth, 1)
}

func TestService_SummaryPropagatesStoreErrors(t *testing.T) {
	boom := errors.New("boom")
	cache := &memoryCache{}
	svc := NewService(&fakeReportRepo{err: boom}, WithCache(cache))

	_, err := svc.Summary(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Zero(t, cache.setCalls)
}

func TestService_SummaryDoesNotCacheAcrossInvalidation(t *testing.T) {
	repo := newPausingRepo(100)
	cache := &memoryCache{}
	svc := NewService(repo, WithCache(cache), WithClock(clock))
	ctx := context.Background()

	repo.pause.Store(true)
	done := make(chan *domain.Summary)
	go func() {
		summary, err := svc.Summary(ctx)
		assert.NoError(t, err)
		done <- summary
	}()

	<-repo.paused
	repo.setMonthTotal(500)
	require.NoError(t, svc.Invalidate(ctx))
	close(repo.release)

	inFlight := <-done
	assert.EqualValues(t, 100, inFlight.ByMonth[0].Amount)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, summary.ByMonth, 1)
	assert.EqualValues(t, 500, summary.ByMonth[0].Amount)
}

func TestService_FailedInvalidationBypassesCache(t *testing.T) {
	repo := &fakeReportRepo{}
	cache := &memoryCache{}
	svc := NewService(repo, WithCache(cache), WithClock(clock))
	ctx := context.Background()

	_, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.NotNil(t, cache.summary)

	cache.invalidateErr = errors.New("redis down")
	require.Error(t, svc.Invalidate(ctx))

	_, err = svc.Summary(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 6, repo.calls.Load(), "cache not trusted after a lost invalidation")

	cache.invalidateErr = nil
	_, err = svc.Summary(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 9, repo.calls.Load(), "retried invalidation drops the old entry")

	_, err = svc.Summary(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 9, repo.calls.Load(), "cache trusted again")
}
