package handlers

import (
	"net/http"
	"time"

	"BE-Cafe-Corner/app/entities"
	"BE-Cafe-Corner/app/middleware"
	"BE-Cafe-Corner/app/models"
	"BE-Cafe-Corner/app/usecases"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userUsecase usecases.UserUsecase
	authUsecase usecases.AuthUsecase
}

func NewUserHandler(userUsecase usecases.UserUsecase, authUsecase usecases.AuthUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase, authUsecase: authUsecase}
}

func setAccessCookie(c echo.Context, token string, maxAge time.Duration) {
	cookie := &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge > 0 {
		cookie.Expires = time.Now().Add(maxAge)
	} else {
		cookie.MaxAge = -1
	}
	c.SetCookie(cookie)
}

// Login godoc
// @Summary Log in with username or email
// @Description Sets the access token as an HTTP-only cookie and also returns it in the body
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.Login true "Credentials"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var loginData models.Login
	if err := c.Bind(&loginData); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid Input"})
	}
	if err := c.Validate(&loginData); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error"})
	}

	accessToken, refreshToken, userID, err := h.userUsecase.Login(c.Request().Context(), loginData.Username, loginData.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid Credentials"})
	}

	setAccessCookie(c, accessToken, 15*time.Minute)
	c.Response().Header().Set("Refresh-Token", "Bearer "+refreshToken)
	return c.JSON(http.StatusOK, echo.Map{
		"message":      "Login successful",
		"id":           userID,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// Logout godoc
// @Summary Log out
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /logout [post]
func (h *UserHandler) Logout(c echo.Context) error {
	setAccessCookie(c, "", 0)
	return c.JSON(http.StatusOK, echo.Map{"message": "Logout successful"})
}

// RegisterUser godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.User true "Registration body"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /register [post]
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var newUser models.User
	if err := c.Bind(&newUser); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid Input"})
	}
	if err := c.Validate(&newUser); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error"})
	}

	if err := h.userUsecase.Register(c.Request().Context(), newUser); err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"error": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User registered successfully"})
}

// PasswordReset godoc
// @Summary Request a password-reset email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.ResetRequest true "Account email"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /password/reset_request [post]
func (h *UserHandler) PasswordReset(c echo.Context) error {
	var resetReq models.ResetRequest
	if err := c.Bind(&resetReq); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid Input"})
	}
	if err := c.Validate(&resetReq); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error"})
	}

	if err := h.userUsecase.PasswordReset(c.Request().Context(), resetReq.Email); err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"error": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Reset email sent"})
}

// PasswordResetConfirm godoc
// @Summary Confirm a password reset
// @Tags Auth
// @Accept json
// @Produce json
// @Param token path string true "Reset token from the email link"
// @Param request body models.PasswordConfirmReset true "New password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /password/reset/{token} [put]
func (h *UserHandler) PasswordResetConfirm(c echo.Context) error {
	token := c.Param("token")
	var passReset models.PasswordConfirmReset
	if err := c.Bind(&passReset); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid Input"})
	}
	if err := c.Validate(&passReset); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation Error"})
	}

	err := h.userUsecase.PasswordResetConfirm(c.Request().Context(), token, passReset.NewPassword, passReset.ConfirmPassword)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"error": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Password reset successfully"})
}

func (h *UserHandler) GetUserByID(c echo.Context) error {
	user, err := h.userUsecase.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"error": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": user})
}

func (h *UserHandler) UpdateUserByID(c echo.Context) error {
	var input entities.UpdateUser
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid Input"})
	}

	updated, err := h.userUsecase.UpdateUser(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"error": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "user updated", "data": updated})
}

// GoogleLogin redirects the browser to Google's consent page.
func (h *UserHandler) GoogleLogin(c echo.Context) error {
	url, err := h.authUsecase.GetGoogleLoginURL()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error"})
	}
	return c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback finishes the OAuth flow and sets the access cookie.
func (h *UserHandler) GoogleCallback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing authorization code"})
	}

	accessToken, err := h.authUsecase.ProcessGoogleLogin(c.Request().Context(), code)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"error": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error"})
	}

	setAccessCookie(c, accessToken, 15*time.Minute)
	return c.JSON(http.StatusOK, echo.Map{"message": "Login successful", "accessToken": accessToken})
}
