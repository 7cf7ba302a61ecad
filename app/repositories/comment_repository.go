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

type CommentRepository interface {
	Create(ctx context.Context, comment entities.Comment) (entities.Comment, error)
	GetByPost(ctx context.Context, postID, status string) ([]entities.Comment, error)
	GetByStatus(ctx context.Context, status string, limit, offset int) ([]entities.Comment, int, error)
	GetByID(ctx context.Context, id string) (entities.Comment, error)
	UpdateStatus(ctx context.Context, id, status string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}

type commentRepository struct {
	collection *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) CommentRepository {
	return &commentRepository{collection: db.Collection("comments")}
}

func (r *commentRepository) Create(ctx context.Context, comment entities.Comment) (entities.Comment, error) {
	comment.ID = primitive.NewObjectID().Hex()
	comment.CreatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, comment); err != nil {
		return entities.Comment{}, err
	}
	return comment, nil
}

func (r *commentRepository) GetByPost(ctx context.Context, postID, status string) ([]entities.Comment, error) {
	filter := bson.M{"post_id": postID}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []entities.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) GetByStatus(ctx context.Context, status string, limit, offset int) ([]entities.Comment, int, error) {
	filter := bson.M{}
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

	var comments []entities.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, 0, err
	}
	return comments, int(total), nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (entities.Comment, error) {
	var comment entities.Comment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	return comment, err
}

func (r *commentRepository) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *commentRepository) Delete(ctx context.Context, id string) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *commentRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	return int(total), err
}
