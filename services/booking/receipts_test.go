package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"arogya/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newRedisStore(t *testing.T) (*RedisReceiptStore, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return &RedisReceiptStore{Client: client}, server
}

func TestReceiptRoundTrip(t *testing.T) {
	store, _ := newRedisStore(t)

	saved := &models.Receipt{
		ReceiptID:   "rcpt-1",
		OrderID:     "ord-1",
		PaymentID:   "pay-1",
		SlotNumber:  4,
		Date:        "2025-06-05",
		PatientName: "Asha Rao",
		Amount:      500,
		IssuedAt:    time.Date(2025, 6, 2, 12, 30, 0, 0, time.UTC),
	}
	if err := store.Save(context.Background(), saved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Get(context.Background(), "ord-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SlotNumber != 4 || got.PaymentID != "pay-1" {
		t.Fatalf("receipt not preserved: %+v", got)
	}
}

func TestMissingReceipt(t *testing.T) {
	store, _ := newRedisStore(t)

	_, err := store.Get(context.Background(), "ord-unknown")
	if !errors.Is(err, ErrReceiptNotFound) {
		t.Fatalf("expected ErrReceiptNotFound, got %v", err)
	}
}

func TestReceiptExpires(t *testing.T) {
	store, server := newRedisStore(t)

	if err := store.Save(context.Background(), &models.Receipt{OrderID: "ord-2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	server.FastForward(ReceiptTTL + time.Minute)

	_, err := store.Get(context.Background(), "ord-2")
	if !errors.Is(err, ErrReceiptNotFound) {
		t.Fatalf("expected expiry after TTL, got %v", err)
	}
}
