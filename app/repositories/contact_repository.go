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

type ContactRepository interface {
	Create(ctx context.Context, msg entities.ContactMessage) (entities.ContactMessage, error)
	GetAll(ctx context.Context, unreadOnly bool, limit, offset int) ([]entities.ContactMessage, int, error)
	GetByID(ctx context.Context, id string) (entities.ContactMessage, error)
	MarkRead(ctx context.Context, id string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	CountUnread(ctx context.Context) (int, error)
}

type contactRepository struct {
	collection *mongo.Collection
}

func NewContactRepository(db *mongo.Database) ContactRepository {
	return &contactRepository{collection: db.Collection("contacts")}
}

func (r *contactRepository) Create(ctx context.Context, msg entities.ContactMessage) (entities.ContactMessage, error) {
	msg.ID = primitive.NewObjectID().Hex()
	msg.CreatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, msg); err != nil {
		return entities.ContactMessage{}, err
	}
	return msg, nil
}

func (r *contactRepository) GetAll(ctx context.Context, unreadOnly bool, limit, offset int) ([]entities.ContactMessage, int, error) {
	filter := bson.M{}
	if unreadOnly {
		filter["read"] = false
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

	var messages []entities.ContactMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, 0, err
	}
	return messages, int(total), nil
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (entities.ContactMessage, error) {
	var msg entities.ContactMessage
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&msg)
	return msg, err
}

func (r *contactRepository) MarkRead(ctx context.Context, id string) (int64, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *contactRepository) Delete(ctx context.Context, id string) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *contactRepository) CountUnread(ctx context.Context) (int, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{"read": false})
	return int(total), err
}
