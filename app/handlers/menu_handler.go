package handlers

import (
	"net/http"
	"strconv"

	"BE-Cafe-Corner/app/entities"
	"BE-Cafe-Corner/app/usecases"

	"github.com/labstack/echo/v4"
)

type MenuHandler struct {
	menuUsecase usecases.MenuUsecase
}

func NewMenuHandler(menuUsecase usecases.MenuUsecase) *MenuHandler {
	return &MenuHandler{menuUsecase: menuUsecase}
}

// GetMenu godoc
// @Summary Browse the menu
// @Tags Menu
// @Produce json
// @Param name query string false "Name search"
// @Param category query string false "Category filter"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10)"
// @Success 200 {object} entities.MenuListResponse
// @Failure 400 {object} map[string]string
// @Router /menu [get]
func (h *MenuHandler) GetMenu(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	// the public listing only shows items marked available
	availableOnly := c.Path() == "/menu"

	items, totalPage, totalData, err := h.menuUsecase.GetAll(
		c.Request().Context(), c.QueryParam("name"), c.QueryParam("category"), availableOnly, page, pageSize)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, entities.MenuListResponse{
		Message:   "success",
		Data:      items,
		Page:      page,
		PageSize:  pageSize,
		TotalPage: totalPage,
		TotalData: totalData,
	})
}

// GetMenuItem godoc
// @Summary Get a menu item
// @Tags Menu
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} entities.MenuItem
// @Failure 404 {object} map[string]string
// @Router /menu/{id} [get]
func (h *MenuHandler) GetMenuItem(c echo.Context) error {
	item, err := h.menuUsecase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": item})
}

// CreateMenuItem godoc
// @Summary Create a menu item (admin)
// @Tags Menu
// @Accept json
// @Produce json
// @Param request body entities.MenuItemRequest true "Menu item body"
// @Success 200 {object} entities.MenuItem
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /admin/menu [post]
func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	var req entities.MenuItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing or invalid required fields"})
	}

	item, err := h.menuUsecase.Create(c.Request().Context(), req)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "menu item created", "data": item})
}

// UpdateMenuItem godoc
// @Summary Update a menu item (admin)
// @Tags Menu
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Param request body entities.MenuItemRequest true "Menu item body"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/menu/{id} [put]
func (h *MenuHandler) UpdateMenuItem(c echo.Context) error {
	var req entities.MenuItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing or invalid required fields"})
	}

	err := h.menuUsecase.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "menu item updated"})
}

// DeleteMenuItem godoc
// @Summary Delete a menu item (admin)
// @Tags Menu
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/menu/{id} [delete]
func (h *MenuHandler) DeleteMenuItem(c echo.Context) error {
	err := h.menuUsecase.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "menu item deleted"})
}
