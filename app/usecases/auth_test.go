package usecases

import (
	"strings"
	"testing"

	"golang.org/x/oauth2"
)

func TestGetGoogleLoginURL(t *testing.T) {
	usecase := NewAuthUsecase(NewMockUserRepository(), &oauth2.Config{
		ClientID:    "client-123",
		RedirectURL: "http://localhost:8080/auth/google/callback",
		Scopes:      []string{"email", "profile"},
		Endpoint: oauth2.Endpoint{
			AuthURL: "https://accounts.google.com/o/oauth2/auth",
		},
	})

	url, err := usecase.GetGoogleLoginURL()
	if err != nil {
		t.Fatalf("GetGoogleLoginURL: %v", err)
	}
	for _, fragment := range []string{
		"https://accounts.google.com/o/oauth2/auth",
		"client_id=client-123",
		"state=random-secret-state",
	} {
		if !strings.Contains(url, fragment) {
			t.Errorf("login URL %q missing %q", url, fragment)
		}
	}
}
