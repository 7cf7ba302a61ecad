package handlers

import (
	"net/http"

	"BE-Cafe-Corner/app/entities"
	"BE-Cafe-Corner/app/usecases"

	"github.com/labstack/echo/v4"
)

type SettingsHandler struct {
	settingsUsecase usecases.SettingsUsecase
}

func NewSettingsHandler(settingsUsecase usecases.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{settingsUsecase: settingsUsecase}
}

func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsUsecase.Get(c.Request().Context())
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": settings})
}

func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req entities.SettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing or invalid required fields"})
	}

	if err := h.settingsUsecase.Update(c.Request().Context(), req); err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "settings updated"})
}
