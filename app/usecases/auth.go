package usecases

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"BE-Cafe-Corner/app/entities"
	"BE-Cafe-Corner/app/repositories"

	"golang.org/x/oauth2"
)

type AuthUsecase interface {
	GetGoogleLoginURL() (string, error)
	ProcessGoogleLogin(ctx context.Context, code string) (string, error)
}

type authUsecase struct {
	userRepo     repositories.UserRepository
	googleConfig *oauth2.Config
}

func NewAuthUsecase(userRepo repositories.UserRepository, cfg *oauth2.Config) AuthUsecase {
	return &authUsecase{userRepo: userRepo, googleConfig: cfg}
}

func (u *authUsecase) GetGoogleLoginURL() (string, error) {
	return u.googleConfig.AuthCodeURL("random-secret-state"), nil
}

// ProcessGoogleLogin exchanges the OAuth code, auto-registers the Google
// account on first login, and returns an access token.
func (u *authUsecase) ProcessGoogleLogin(ctx context.Context, code string) (string, error) {
	token, err := u.googleConfig.Exchange(ctx, code)
	if err != nil {
		return "", NewValidationError("google login failed")
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		return "", NewInternalError()
	}
	defer resp.Body.Close()

	var googleUser entities.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		return "", NewInternalError()
	}

	user, _, err := u.userRepo.GetByEmail(ctx, googleUser.Email)
	if err != nil {
		newUser := entities.User{
			Name:     googleUser.Name,
			Email:    googleUser.Email,
			Username: googleUser.Email,
			Password: "GOOGLE_OAUTH_" + googleUser.ID,
			Role:     "user",
		}
		if errCreate := u.userRepo.Create(ctx, newUser); errCreate != nil {
			return "", NewInternalError()
		}
		user, _, err = u.userRepo.GetByEmail(ctx, googleUser.Email)
		if err != nil {
			return "", NewInternalError()
		}
	}

	accessToken, err := GenerateToken(user.Username, user.Role, 15*time.Minute)
	if err != nil {
		return "", NewInternalError()
	}
	return accessToken, nil
}
