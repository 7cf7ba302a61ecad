package repositories

import (
	"context"
	"time"

	"BE-Cafe-Corner/app/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	Create(ctx context.Context, user entities.User) error
	GetByUsername(ctx context.Context, username string) (entities.GetUser, string, error)
	GetByEmail(ctx context.Context, email string) (entities.GetUser, string, error)
	GetByID(ctx context.Context, id string) (entities.GetUser, error)
	Update(ctx context.Context, id string, user entities.UpdateUser) (int64, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) (int64, error)
	SaveResetToken(ctx context.Context, reset entities.PasswordReset) error
	GetResetToken(ctx context.Context, token string) (entities.PasswordReset, error)
	DeleteResetToken(ctx context.Context, token string) error
}

// IsDuplicateUser reports whether err came from the unique index on the user
// email.
func IsDuplicateUser(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

type userRepository struct {
	users  *mongo.Collection
	resets *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		users:  db.Collection("users"),
		resets: db.Collection("password_resets"),
	}
}

func (r *userRepository) Create(ctx context.Context, user entities.User) error {
	user.ID = primitive.NewObjectID().Hex()
	user.CreatedAt = time.Now()
	_, err := r.users.InsertOne(ctx, user)
	return err
}

func (r *userRepository) getOne(ctx context.Context, filter bson.M) (entities.GetUser, string, error) {
	var user entities.User
	if err := r.users.FindOne(ctx, filter).Decode(&user); err != nil {
		return entities.GetUser{}, "", err
	}
	return entities.GetUser{
		Id:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Name:     user.Name,
		Role:     user.Role,
	}, user.Password, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (entities.GetUser, string, error) {
	return r.getOne(ctx, bson.M{"username": username})
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (entities.GetUser, string, error) {
	return r.getOne(ctx, bson.M{"email": email})
}

func (r *userRepository) GetByID(ctx context.Context, id string) (entities.GetUser, error) {
	user, _, err := r.getOne(ctx, bson.M{"_id": id})
	return user, err
}

func (r *userRepository) Update(ctx context.Context, id string, user entities.UpdateUser) (int64, error) {
	update := bson.M{"$set": bson.M{
		"username": user.Username,
		"email":    user.Email,
		"name":     user.Name,
	}}
	result, err := r.users.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, email, passwordHash string) (int64, error) {
	result, err := r.users.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"password_hash": passwordHash}})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *userRepository) SaveResetToken(ctx context.Context, reset entities.PasswordReset) error {
	_, err := r.resets.InsertOne(ctx, reset)
	return err
}

func (r *userRepository) GetResetToken(ctx context.Context, token string) (entities.PasswordReset, error) {
	var reset entities.PasswordReset
	err := r.resets.FindOne(ctx, bson.M{"token": token}).Decode(&reset)
	return reset, err
}

func (r *userRepository) DeleteResetToken(ctx context.Context, token string) error {
	_, err := r.resets.DeleteOne(ctx, bson.M{"token": token})
	return err
}
