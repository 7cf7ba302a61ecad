package usecases

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"
	"unicode"

	"BE-Cafe-Corner/app/entities"
	"BE-Cafe-Corner/app/models"
	"BE-Cafe-Corner/app/repositories"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = 15 * time.Minute

type UserUsecase interface {
	Register(ctx context.Context, user models.User) error
	Login(ctx context.Context, username, password string) (string, string, string, error) // accessToken, refreshToken, userID
	GetProfile(ctx context.Context, id string) (entities.GetUser, error)
	UpdateUser(ctx context.Context, id string, input entities.UpdateUser) (entities.UpdateUser, error)
	PasswordReset(ctx context.Context, email string) error
	PasswordResetConfirm(ctx context.Context, token, newPassword, confirmPassword string) error
}

type userUsecase struct {
	userRepo repositories.UserRepository
	mailer   Mailer
	now      func() time.Time
}

func NewUserUsecase(userRepo repositories.UserRepository, mailer Mailer) UserUsecase {
	return &userUsecase{userRepo: userRepo, mailer: mailer, now: time.Now}
}

func (u *userUsecase) Register(ctx context.Context, user models.User) error {
	if !isValidPassword(user.Password) {
		return NewValidationError("password must contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return NewInternalError()
	}

	err = u.userRepo.Create(ctx, entities.User{
		Username: user.Username,
		Email:    user.Email,
		Password: string(hashedPassword),
		Name:     user.Name,
		Role:     "user",
	})
	if repositories.IsDuplicateUser(err) {
		return NewValidationError("email is already registered")
	}
	if err != nil {
		return NewInternalError()
	}
	return nil
}

func (u *userUsecase) Login(ctx context.Context, inputUsername, password string) (string, string, string, error) {
	var user entities.GetUser
	var storedHash string
	var err error

	// login works with either username or email
	if isEmail(inputUsername) {
		user, storedHash, err = u.userRepo.GetByEmail(ctx, inputUsername)
	} else {
		user, storedHash, err = u.userRepo.GetByUsername(ctx, inputUsername)
	}
	if err != nil {
		// mask the lookup failure, the caller only learns the credentials failed
		return "", "", "", NewValidationError("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)); err != nil {
		return "", "", "", NewValidationError("invalid credentials")
	}

	accessToken, err := GenerateToken(user.Username, user.Role, 15*time.Minute)
	if err != nil {
		return "", "", "", NewInternalError()
	}
	refreshToken, err := GenerateToken(user.Username, user.Role, 7*24*time.Hour)
	if err != nil {
		return "", "", "", NewInternalError()
	}

	return accessToken, refreshToken, user.Id, nil
}

func (u *userUsecase) GetProfile(ctx context.Context, id string) (entities.GetUser, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.GetUser{}, NewNotFoundError("user not found")
	}
	if err != nil {
		return entities.GetUser{}, NewInternalError()
	}
	return user, nil
}

func (u *userUsecase) UpdateUser(ctx context.Context, id string, input entities.UpdateUser) (entities.UpdateUser, error) {
	oldUser, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return input, NewNotFoundError("user not found")
	}

	// keep old values where the request left fields empty
	if input.Username == "" {
		input.Username = oldUser.Username
	}
	if input.Email == "" {
		input.Email = oldUser.Email
	}
	if input.Name == "" {
		input.Name = oldUser.Name
	}

	matched, err := u.userRepo.Update(ctx, id, input)
	if repositories.IsDuplicateUser(err) {
		return input, NewValidationError("email is already registered")
	}
	if err != nil {
		return input, NewInternalError()
	}
	if matched == 0 {
		return input, NewNotFoundError("user not found")
	}
	return input, nil
}

func (u *userUsecase) PasswordReset(ctx context.Context, email string) error {
	_, _, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return NewNotFoundError("email not found")
	}

	token := uuid.NewString()
	err = u.userRepo.SaveResetToken(ctx, entities.PasswordReset{
		Token:     token,
		Email:     email,
		ExpiresAt: u.now().Add(resetTokenTTL),
	})
	if err != nil {
		return NewInternalError()
	}

	if u.mailer != nil {
		if err := u.mailer.SendPasswordReset(email, token); err != nil {
			return NewInternalError()
		}
	}
	return nil
}

func (u *userUsecase) PasswordResetConfirm(ctx context.Context, token, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return NewValidationError("passwords do not match")
	}
	if !isValidPassword(newPassword) {
		return NewValidationError("password must contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	}

	reset, err := u.userRepo.GetResetToken(ctx, token)
	if err != nil {
		return NewNotFoundError("invalid or expired reset token")
	}
	if u.now().After(reset.ExpiresAt) {
		_ = u.userRepo.DeleteResetToken(ctx, token)
		return NewNotFoundError("invalid or expired reset token")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return NewInternalError()
	}
	matched, err := u.userRepo.UpdatePassword(ctx, reset.Email, string(hashedPassword))
	if err != nil {
		return NewInternalError()
	}
	if matched == 0 {
		return NewNotFoundError("user not found")
	}
	_ = u.userRepo.DeleteResetToken(ctx, token)
	return nil
}

// GenerateToken signs an HS256 JWT carrying the username and role claims used
// by the auth middleware.
func GenerateToken(username, role string, ttl time.Duration) (string, error) {
	secret := []byte(os.Getenv("secret_key"))
	claims := jwt.MapClaims{
		"username": username,
		"role":     role,
		"exp":      jwt.NewNumericDate(time.Now().Add(ttl)),
		"iat":      jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func isEmail(input string) bool {
	return strings.Contains(input, "@")
}

func isValidPassword(password string) bool {
	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasNumber && hasSpecial
}
