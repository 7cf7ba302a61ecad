package handlers

import (
	"net/http"
	"strconv"

	"BE-Cafe-Corner/app/entities"
	"BE-Cafe-Corner/app/usecases"

	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	contactUsecase usecases.ContactUsecase
}

func NewContactHandler(contactUsecase usecases.ContactUsecase) *ContactHandler {
	return &ContactHandler{contactUsecase: contactUsecase}
}

func (h *ContactHandler) CreateMessage(c echo.Context) error {
	var req entities.ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing or invalid required fields"})
	}

	msg, err := h.contactUsecase.Create(c.Request().Context(), req)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "message sent, we will get back to you soon", "data": msg})
}

func (h *ContactHandler) ListMessages(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	unreadOnly := c.QueryParam("unread") == "true"

	messages, totalPage, totalData, err := h.contactUsecase.GetAll(c.Request().Context(), unreadOnly, page, pageSize)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, entities.ContactListResponse{
		Message:   "success",
		Data:      messages,
		Page:      page,
		PageSize:  pageSize,
		TotalPage: totalPage,
		TotalData: totalData,
	})
}

func (h *ContactHandler) MarkRead(c echo.Context) error {
	err := h.contactUsecase.MarkRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "message marked as read"})
}

func (h *ContactHandler) DeleteMessage(c echo.Context) error {
	err := h.contactUsecase.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "message deleted"})
}
