package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"arogya/models"

	"go.uber.org/zap"
)

type fakeSlotRepo struct {
	records map[string]*models.SlotRecord
	err     error
	calls   int
}

func (f *fakeSlotRepo) GetByDate(ctx context.Context, date string) (*models.SlotRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if record, ok := f.records[date]; ok {
		return record, nil
	}
	return &models.SlotRecord{Date: date}, nil
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestService(repo *fakeSlotRepo, clock *fakeClock) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		Repo:     repo,
		Cache:    NewCache(CacheTTL, clock.Now),
		Capacity: 10,
		Logger:   zap.NewNop(),
	}
}

func record(date string, booked int) *models.SlotRecord {
	entries := make([]models.BookedEntry, booked)
	for i := range entries {
		entries[i] = models.BookedEntry{SlotNumber: i + 1, Status: "confirmed"}
	}
	return &models.SlotRecord{Date: date, Bookings: entries}
}

func TestRemainingComputedFromBookedCount(t *testing.T) {
	repo := &fakeSlotRepo{records: map[string]*models.SlotRecord{
		"2025-06-02": record("2025-06-02", 4),
	}}
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestService(repo, clock)

	remaining, err := svc.Remaining(context.Background(), "2025-06-02", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if remaining != 6 {
		t.Fatalf("expected 6 remaining, got %d", remaining)
	}
}

func TestRemainingStaysWithinBounds(t *testing.T) {
	repo := &fakeSlotRepo{records: map[string]*models.SlotRecord{
		"2025-06-02": record("2025-06-02", 15),
		"2025-06-03": record("2025-06-03", 0),
	}}
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestService(repo, clock)

	overbooked, err := svc.Remaining(context.Background(), "2025-06-02", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overbooked != 0 {
		t.Fatalf("expected clamp to 0, got %d", overbooked)
	}

	empty, err := svc.Remaining(context.Background(), "2025-06-03", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if empty != 10 {
		t.Fatalf("expected full capacity 10, got %d", empty)
	}
}

func TestCacheServesWithinTTL(t *testing.T) {
	repo := &fakeSlotRepo{records: map[string]*models.SlotRecord{
		"2025-06-02": record("2025-06-02", 3),
	}}
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestService(repo, clock)

	if _, err := svc.Remaining(context.Background(), "2025-06-02", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clock.Advance(29 * time.Second)
	remaining, err := svc.Remaining(context.Background(), "2025-06-02", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if remaining != 7 {
		t.Fatalf("expected cached 7, got %d", remaining)
	}
	if repo.calls != 1 {
		t.Fatalf("expected a single fetch within TTL, got %d", repo.calls)
	}
}

func TestCacheRefetchesAfterTTL(t *testing.T) {
	repo := &fakeSlotRepo{records: map[string]*models.SlotRecord{
		"2025-06-02": record("2025-06-02", 3),
	}}
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestService(repo, clock)

	if _, err := svc.Remaining(context.Background(), "2025-06-02", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clock.Advance(30 * time.Second)
	if _, err := svc.Remaining(context.Background(), "2025-06-02", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls != 2 {
		t.Fatalf("expected exactly one refetch after TTL, got %d calls", repo.calls)
	}
}

func TestForceRefreshBypassesCache(t *testing.T) {
	repo := &fakeSlotRepo{records: map[string]*models.SlotRecord{
		"2025-06-02": record("2025-06-02", 3),
	}}
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestService(repo, clock)

	if _, err := svc.Remaining(context.Background(), "2025-06-02", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Remaining(context.Background(), "2025-06-02", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls != 2 {
		t.Fatalf("expected forced refetch, got %d calls", repo.calls)
	}
}

func TestInvalidateIsIdempotent(t *testing.T) {
	repo := &fakeSlotRepo{records: map[string]*models.SlotRecord{
		"2025-06-02": record("2025-06-02", 3),
	}}
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestService(repo, clock)

	if _, err := svc.Remaining(context.Background(), "2025-06-02", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc.Invalidate("2025-06-02")
	svc.Invalidate("2025-06-02")

	if _, err := svc.Remaining(context.Background(), "2025-06-02", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls != 2 {
		t.Fatalf("expected fresh fetch after invalidation, got %d calls", repo.calls)
	}
}

func TestFetchFailurePropagates(t *testing.T) {
	repo := &fakeSlotRepo{err: errors.New("connection reset")}
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestService(repo, clock)

	if _, err := svc.Remaining(context.Background(), "2025-06-02", false); err == nil {
		t.Fatalf("expected fetch failure to propagate")
	}
}

func TestExpiredEntriesSweptOnRead(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	cache := NewCache(30*time.Second, clock.Now)

	cache.Set("2025-06-02", 5)
	cache.Set("2025-06-03", 8)
	clock.Advance(31 * time.Second)

	if _, ok := cache.Get("2025-06-04"); ok {
		t.Fatalf("unexpected hit for unseen date")
	}
	cache.mu.Lock()
	size := len(cache.entries)
	cache.mu.Unlock()
	if size != 0 {
		t.Fatalf("expected expired entries swept, %d left", size)
	}
}
