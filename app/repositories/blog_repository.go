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

type BlogRepository interface {
	Create(ctx context.Context, post entities.BlogPost) (entities.BlogPost, error)
	GetAll(ctx context.Context, search string, publishedOnly bool, limit, offset int) ([]entities.BlogPost, int, error)
	GetByID(ctx context.Context, id string) (entities.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (entities.BlogPost, error)
	Update(ctx context.Context, id string, post entities.BlogPost) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	CountPublished(ctx context.Context) (int, error)
}

// IsDuplicateSlug reports whether err came from the unique index on the blog
// slug.
func IsDuplicateSlug(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

type blogRepository struct {
	collection *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) BlogRepository {
	return &blogRepository{collection: db.Collection("blogs")}
}

func (r *blogRepository) Create(ctx context.Context, post entities.BlogPost) (entities.BlogPost, error) {
	post.ID = primitive.NewObjectID().Hex()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		return entities.BlogPost{}, err
	}
	return post, nil
}

func (r *blogRepository) GetAll(ctx context.Context, search string, publishedOnly bool, limit, offset int) ([]entities.BlogPost, int, error) {
	filter := bson.M{}
	if search != "" {
		filter["title"] = bson.M{"$regex": search, "$options": "i"}
	}
	if publishedOnly {
		filter["published"] = true
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

	var posts []entities.BlogPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, err
	}
	return posts, int(total), nil
}

func (r *blogRepository) GetByID(ctx context.Context, id string) (entities.BlogPost, error) {
	var post entities.BlogPost
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	return post, err
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (entities.BlogPost, error) {
	var post entities.BlogPost
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&post)
	return post, err
}

func (r *blogRepository) Update(ctx context.Context, id string, post entities.BlogPost) (int64, error) {
	update := bson.M{"$set": bson.M{
		"title":      post.Title,
		"slug":       post.Slug,
		"body":       post.Body,
		"author":     post.Author,
		"image_url":  post.ImageURL,
		"published":  post.Published,
		"updated_at": time.Now(),
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *blogRepository) Delete(ctx context.Context, id string) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *blogRepository) CountPublished(ctx context.Context) (int, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{"published": true})
	return int(total), err
}
