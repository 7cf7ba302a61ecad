package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type DashboardRepository interface {
	CountReservations(ctx context.Context, startDate, endDate, status string) (int, error)
	SumGuests(ctx context.Context, startDate, endDate string) (int, error)
}

type dashboardRepository struct {
	reservations *mongo.Collection
}

func NewDashboardRepository(db *mongo.Database) DashboardRepository {
	return &dashboardRepository{reservations: db.Collection("reservations")}
}

// dateRangeFilter matches the stored YYYY-MM-DD strings lexicographically,
// which orders the same as the dates themselves.
func dateRangeFilter(startDate, endDate string) bson.M {
	return bson.M{"date": bson.M{"$gte": startDate, "$lte": endDate}}
}

func (r *dashboardRepository) CountReservations(ctx context.Context, startDate, endDate, status string) (int, error) {
	filter := dateRangeFilter(startDate, endDate)
	if status != "" {
		filter["status"] = status
	}
	total, err := r.reservations.CountDocuments(ctx, filter)
	return int(total), err
}

func (r *dashboardRepository) SumGuests(ctx context.Context, startDate, endDate string) (int, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: dateRangeFilter(startDate, endDate)}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$party_size"}}},
		}}},
	}
	cursor, err := r.reservations.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
