package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arogya/database"
	"arogya/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const appointmentsCollection = "appointments"

// MongoSlotRecordRepo is the MongoDB-backed slot record repository.
type MongoSlotRecordRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRecordRepo returns a repository bound to the appointments collection.
func NewMongoSlotRecordRepo() *MongoSlotRecordRepo {
	return &MongoSlotRecordRepo{coll: database.Collection(appointmentsCollection)}
}

func (r *MongoSlotRecordRepo) GetByDate(ctx context.Context, date string) (*models.SlotRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var record models.SlotRecord
	err := r.coll.FindOne(ctx, bson.M{"date": date}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// No bookings yet for this date.
		return &models.SlotRecord{Date: date}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slot record for %s: %w", date, err)
	}
	return &record, nil
}
