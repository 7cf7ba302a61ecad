package entities

import (
	"time"
)

// Reservation statuses. A reservation is created pending and moves exactly once
// to approved or rejected.
const (
	ReservationStatusPending  = "pending"
	ReservationStatusApproved = "approved"
	ReservationStatusRejected = "rejected"
)

// ReservationDurationMinutes is fixed for every reservation. The table is held
// for one hour starting at the requested time.
const ReservationDurationMinutes = 60

// ==========================================
// 1. REQUEST MODELS
// ==========================================

type ReservationRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Date      string `json:"date" validate:"required"`      // YYYY-MM-DD
	Time      string `json:"time" validate:"required"`      // hh:mm AM/PM, e.g. "07:30 PM"
	PartySize int    `json:"partySize" validate:"required,min=1,max=15"`
	Note      string `json:"note"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// ==========================================
// 2. RESPONSE MODELS
// ==========================================

type ReservationResponse struct {
	Message string          `json:"message"`
	Data    ReservationData `json:"data"`
}

type ReservationListResponse struct {
	Message   string            `json:"message"`
	Data      []ReservationData `json:"data"`
	Page      int               `json:"page"`
	PageSize  int               `json:"pageSize"`
	TotalPage int               `json:"totalPage"`
	TotalData int               `json:"totalData"`
}

// ==========================================
// 3. STORED DOCUMENT
// ==========================================

type ReservationData struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Code           string    `json:"code" bson:"code"`
	Name           string    `json:"name" bson:"name"`
	Email          string    `json:"email" bson:"email"`
	Phone          string    `json:"phone" bson:"phone"`
	Date           string    `json:"date" bson:"date"`
	Time           string    `json:"time" bson:"time"`
	PartySize      int       `json:"partySize" bson:"party_size"`
	DurationMinute int       `json:"durationMinute" bson:"duration_minute"`
	Status         string    `json:"status" bson:"status"`
	Note           string    `json:"note" bson:"note"`
	CreatedAt      time.Time `json:"createdAt" bson:"created_at"`
}
