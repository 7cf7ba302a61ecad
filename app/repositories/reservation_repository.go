package repositories

import (
	"context"
	"time"

	"BE-Cafe-Corner/app/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReservationRepository interface {
	FindByDate(ctx context.Context, date string) ([]entities.ReservationData, error)
	Create(ctx context.Context, res entities.ReservationData) (entities.ReservationData, error)
	GetByCode(ctx context.Context, code string) (entities.ReservationData, error)
	GetByID(ctx context.Context, id string) (entities.ReservationData, error)
	List(ctx context.Context, date, status string, limit, offset int) ([]entities.ReservationData, int, error)
	UpdateStatus(ctx context.Context, id, status string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// IsDuplicateCode reports whether err came from the unique index on the
// reservation code. The usecase regenerates the code and retries on it.
func IsDuplicateCode(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

type reservationRepository struct {
	collection *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) ReservationRepository {
	return &reservationRepository{collection: db.Collection("reservations")}
}

// FindByDate returns every reservation stored for the calendar date, any
// status. Pending reservations still occupy capacity.
func (r *reservationRepository) FindByDate(ctx context.Context, date string) ([]entities.ReservationData, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reservations []entities.ReservationData
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) Create(ctx context.Context, res entities.ReservationData) (entities.ReservationData, error) {
	res.ID = primitive.NewObjectID().Hex()
	res.CreatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, res); err != nil {
		return entities.ReservationData{}, err
	}
	return res, nil
}

func (r *reservationRepository) GetByCode(ctx context.Context, code string) (entities.ReservationData, error) {
	var res entities.ReservationData
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&res)
	return res, err
}

func (r *reservationRepository) GetByID(ctx context.Context, id string) (entities.ReservationData, error) {
	var res entities.ReservationData
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&res)
	return res, err
}

func (r *reservationRepository) List(ctx context.Context, date, status string, limit, offset int) ([]entities.ReservationData, int, error) {
	filter := bson.M{}
	if date != "" {
		filter["date"] = date
	}
	if status != "" {
		filter["status"] = status
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var reservations []entities.ReservationData
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, 0, err
	}
	return reservations, int(total), nil
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *reservationRepository) Delete(ctx context.Context, id string) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
