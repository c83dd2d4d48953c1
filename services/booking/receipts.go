package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"arogya/models"

	"github.com/go-redis/redis/v8"
)

// ErrReceiptNotFound is returned when no receipt exists for an order ID.
var ErrReceiptNotFound = errors.New("receipt not found")

// ReceiptTTL is how long a completed booking's receipt stays retrievable.
const ReceiptTTL = 24 * time.Hour

const receiptKeyPrefix = "receipt:"

// ReceiptStore keeps receipts for returning browsers after the payment
// redirect. The pre-redirect in-memory state does not survive the handoff,
// so this store is the only source for the receipt view.
type ReceiptStore interface {
	Save(ctx context.Context, receipt *models.Receipt) error
	Get(ctx context.Context, orderID string) (*models.Receipt, error)
}

// RedisReceiptStore stores receipts in Redis keyed by order ID.
type RedisReceiptStore struct {
	Client *redis.Client
}

func (s *RedisReceiptStore) Save(ctx context.Context, receipt *models.Receipt) error {
	data, err := json.Marshal(receipt)
	if err != nil {
		return fmt.Errorf("failed to marshal receipt: %w", err)
	}
	if err := s.Client.Set(ctx, receiptKeyPrefix+receipt.OrderID, data, ReceiptTTL).Err(); err != nil {
		return fmt.Errorf("failed to store receipt: %w", err)
	}
	return nil
}

func (s *RedisReceiptStore) Get(ctx context.Context, orderID string) (*models.Receipt, error) {
	data, err := s.Client.Get(ctx, receiptKeyPrefix+orderID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrReceiptNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch receipt: %w", err)
	}

	var receipt models.Receipt
	if err := json.Unmarshal([]byte(data), &receipt); err != nil {
		return nil, fmt.Errorf("failed to parse stored receipt: %w", err)
	}
	return &receipt, nil
}
