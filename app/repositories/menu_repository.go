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

type MenuRepository interface {
	Create(ctx context.Context, item entities.MenuItem) (entities.MenuItem, error)
	GetAll(ctx context.Context, name, category string, availableOnly bool, limit, offset int) ([]entities.MenuItem, int, error)
	GetByID(ctx context.Context, id string) (entities.MenuItem, error)
	Update(ctx context.Context, id string, item entities.MenuItem) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int, error)
}

type menuRepository struct {
	collection *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) MenuRepository {
	return &menuRepository{collection: db.Collection("menus")}
}

func (r *menuRepository) Create(ctx context.Context, item entities.MenuItem) (entities.MenuItem, error) {
	item.ID = primitive.NewObjectID().Hex()
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	if _, err := r.collection.InsertOne(ctx, item); err != nil {
		return entities.MenuItem{}, err
	}
	return item, nil
}

func (r *menuRepository) GetAll(ctx context.Context, name, category string, availableOnly bool, limit, offset int) ([]entities.MenuItem, int, error) {
	filter := bson.M{}
	if name != "" {
		filter["name"] = bson.M{"$regex": name, "$options": "i"}
	}
	if category != "" {
		filter["category"] = category
	}
	if availableOnly {
		filter["available"] = true
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var items []entities.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, int(total), nil
}

func (r *menuRepository) GetByID(ctx context.Context, id string) (entities.MenuItem, error) {
	var item entities.MenuItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	return item, err
}

func (r *menuRepository) Update(ctx context.Context, id string, item entities.MenuItem) (int64, error) {
	update := bson.M{"$set": bson.M{
		"name":        item.Name,
		"category":    item.Category,
		"description": item.Description,
		"price":       item.Price,
		"image_url":   item.ImageURL,
		"available":   item.Available,
		"updated_at":  time.Now(),
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *menuRepository) Delete(ctx context.Context, id string) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *menuRepository) Count(ctx context.Context) (int, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	return int(total), err
}
