package handlers

import (
	"net/http"
	"strconv"

	"BE-Cafe-Corner/app/entities"
	"BE-Cafe-Corner/app/usecases"

	"github.com/labstack/echo/v4"
)

type ReservationHandler struct {
	reservationUsecase usecases.ReservationUsecase
}

func NewReservationHandler(reservationUsecase usecases.ReservationUsecase) *ReservationHandler {
	return &ReservationHandler{reservationUsecase: reservationUsecase}
}

// CreateReservation godoc
// @Summary Request a table reservation
// @Description Runs the slot admission check and stores the reservation as pending
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body entities.ReservationRequest true "Reservation request body"
// @Success 200 {object} entities.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req entities.ReservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing or invalid required fields"})
	}

	data, err := h.reservationUsecase.Create(c.Request().Context(), req)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, entities.ReservationResponse{
		Message: "reservation created successfully",
		Data:    data,
	})
}

// GetReservationByCode godoc
// @Summary Look up a reservation by its code
// @Tags Reservation
// @Produce json
// @Param code path string true "Reservation code"
// @Success 200 {object} entities.ReservationResponse
// @Failure 404 {object} map[string]string
// @Router /reservations/{code} [get]
func (h *ReservationHandler) GetReservationByCode(c echo.Context) error {
	data, err := h.reservationUsecase.GetByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, entities.ReservationResponse{Message: "success", Data: data})
}

// CancelReservation godoc
// @Summary Cancel a pending reservation
// @Description Only the requester may cancel, and only while the reservation is pending
// @Tags Reservation
// @Produce json
// @Param code path string true "Reservation code"
// @Param email query string true "Email used on the reservation"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{code} [delete]
func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "email is required"})
	}
	err := h.reservationUsecase.CancelByCode(c.Request().Context(), c.Param("code"), email)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "reservation cancelled"})
}

// ListReservations godoc
// @Summary List reservations (admin)
// @Tags Reservation
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Param status query string false "Status filter (pending/approved/rejected)"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10)"
// @Success 200 {object} entities.ReservationListResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /admin/reservations [get]
func (h *ReservationHandler) ListReservations(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	data, totalPage, totalData, err := h.reservationUsecase.List(
		c.Request().Context(), c.QueryParam("date"), c.QueryParam("status"), page, pageSize)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, entities.ReservationListResponse{
		Message:   "success",
		Data:      data,
		Page:      page,
		PageSize:  pageSize,
		TotalPage: totalPage,
		TotalData: totalData,
	})
}

// UpdateReservationStatus godoc
// @Summary Approve or reject a pending reservation (admin)
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body entities.UpdateReservationStatusRequest true "Status update request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/reservations/{id}/status [put]
func (h *ReservationHandler) UpdateReservationStatus(c echo.Context) error {
	var req entities.UpdateReservationStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "status must be approved or rejected"})
	}

	err := h.reservationUsecase.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "update status success"})
}

// DeleteReservation godoc
// @Summary Delete a reservation (admin)
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/reservations/{id} [delete]
func (h *ReservationHandler) DeleteReservation(c echo.Context) error {
	err := h.reservationUsecase.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "reservation deleted"})
}
