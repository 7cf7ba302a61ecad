package repositories

import (
	"context"
	"errors"

	"BE-Cafe-Corner/app/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SettingsRepository reads the single settings document on every call. Callers
// must not cache the result; a settings update becomes visible on the next
// read.
type SettingsRepository interface {
	Get(ctx context.Context) (entities.Settings, error)
	Upsert(ctx context.Context, settings entities.Settings) error
}

type settingsRepository struct {
	collection *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) SettingsRepository {
	return &settingsRepository{collection: db.Collection("settings")}
}

func (r *settingsRepository) Get(ctx context.Context) (entities.Settings, error) {
	var settings entities.Settings
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// No document yet: serve defaults without persisting them.
		return entities.Settings{
			SiteName:            "Cafe Corner",
			ReservationCapacity: entities.DefaultReservationCapacity,
		}, nil
	}
	return settings, err
}

func (r *settingsRepository) Upsert(ctx context.Context, settings entities.Settings) error {
	update := bson.M{"$set": bson.M{
		"site_name":            settings.SiteName,
		"address":              settings.Address,
		"phone":                settings.Phone,
		"email":                settings.Email,
		"opening_hours":        settings.OpeningHours,
		"reservation_capacity": settings.ReservationCapacity,
		"social":               settings.Social,
	}}
	_, err := r.collection.UpdateOne(ctx, bson.M{}, update, options.Update().SetUpsert(true))
	return err
}
