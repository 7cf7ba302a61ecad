package middleware

import (
	"net/http"
	"os"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// AccessTokenCookie is where the login handler stores the JWT. The middleware
// also accepts an Authorization: Bearer header so API clients without cookie
// handling keep working.
const AccessTokenCookie = "access_token"

func tokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// RoleAuthMiddleware rejects requests whose JWT is missing, invalid, or does
// not carry one of the required roles.
func RoleAuthMiddleware(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			jwtSecret := []byte(os.Getenv("secret_key"))

			tokenString := tokenFromRequest(c)
			if tokenString == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				return jwtSecret, nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
			}

			c.Set("user", token)

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token claims"})
			}

			role, ok := claims["role"].(string)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Role claim missing"})
			}

			for _, requiredRole := range requiredRoles {
				if requiredRole == role {
					return next(c)
				}
			}
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
		}
	}
}

// ExtractTokenUsername returns the username claim of the request's JWT, or ""
// when the middleware did not run.
func ExtractTokenUsername(c echo.Context) string {
	user, ok := c.Get("user").(*jwt.Token)
	if !ok || !user.Valid {
		return ""
	}
	claims, ok := user.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	username, _ := claims["username"].(string)
	return username
}
