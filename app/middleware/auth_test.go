package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func signTestToken(t *testing.T, secret, username, role string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"username": username,
		"role":     role,
		"exp":      jwt.NewNumericDate(time.Now().Add(ttl)),
		"iat":      jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func runProtected(t *testing.T, setAuth func(*http.Request), roles ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	if setAuth != nil {
		setAuth(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RoleAuthMiddleware(roles...)(func(c echo.Context) error {
		return c.String(http.StatusOK, ExtractTokenUsername(c))
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestRoleAuthMiddleware(t *testing.T) {
	t.Setenv("secret_key", "test-secret")

	t.Run("no credentials", func(t *testing.T) {
		rec := runProtected(t, nil, "admin")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("cookie token accepted", func(t *testing.T) {
		token := signTestToken(t, "test-secret", "admin1", "admin", time.Minute)
		rec := runProtected(t, func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
		}, "admin")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
		}
		if rec.Body.String() != "admin1" {
			t.Errorf("username claim = %q, want admin1", rec.Body.String())
		}
	})

	t.Run("bearer header accepted", func(t *testing.T) {
		token := signTestToken(t, "test-secret", "admin2", "admin", time.Minute)
		rec := runProtected(t, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token)
		}, "admin")
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("wrong role", func(t *testing.T) {
		token := signTestToken(t, "test-secret", "user1", "user", time.Minute)
		rec := runProtected(t, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token)
		}, "admin")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("any listed role passes", func(t *testing.T) {
		token := signTestToken(t, "test-secret", "user2", "user", time.Minute)
		rec := runProtected(t, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token)
		}, "user", "admin")
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token := signTestToken(t, "test-secret", "admin3", "admin", -time.Minute)
		rec := runProtected(t, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token)
		}, "admin")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token := signTestToken(t, "other-secret", "admin4", "admin", time.Minute)
		rec := runProtected(t, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token)
		}, "admin")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}
