package availability

import (
	"context"
	"fmt"
	"time"

	slotsRepo "arogya/database/repository/slots"

	"go.uber.org/zap"
)

// CacheTTL is how long a fetched slot count stays fresh.
const CacheTTL = 30 * time.Second

// DefaultAvailabilityService computes remaining slots from the per-date
// appointment record, fronted by the TTL cache.
type DefaultAvailabilityService struct {
	Repo     slotsRepo.SlotRecordRepository
	Cache    *Cache
	Capacity int
	Logger   *zap.Logger
}

func (s *DefaultAvailabilityService) Remaining(ctx context.Context, date string, forceRefresh bool) (int, error) {
	if !forceRefresh {
		if remaining, ok := s.Cache.Get(date); ok {
			return remaining, nil
		}
	}

	record, err := s.Repo.GetByDate(ctx, date)
	if err != nil {
		// Propagated, not masked: a fetch failure must not read as open slots.
		s.Logger.Error("availability: slot record fetch failed",
			zap.String("date", date), zap.Error(err))
		return 0, fmt.Errorf("failed to read slot record: %w", err)
	}

	remaining := s.Capacity - record.BookedCount()
	if remaining < 0 {
		remaining = 0
	}
	if remaining > s.Capacity {
		remaining = s.Capacity
	}

	s.Cache.Set(date, remaining)
	return remaining, nil
}

func (s *DefaultAvailabilityService) Invalidate(date string) {
	s.Cache.Invalidate(date)
}
