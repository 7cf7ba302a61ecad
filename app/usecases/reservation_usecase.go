package usecases

import (
	"context"
	"errors"
	"sync"
	"time"

	"BE-Cafe-Corner/app/entities"
	"BE-Cafe-Corner/app/repositories"
	"BE-Cafe-Corner/app/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "03:04 PM"

	// maxCodeRetries bounds the regenerate-on-collision loop for reservation
	// codes. The code space is a million values, so a retry is already rare.
	maxCodeRetries = 5
)

type ReservationUsecase interface {
	Create(ctx context.Context, req entities.ReservationRequest) (entities.ReservationData, error)
	GetByCode(ctx context.Context, code string) (entities.ReservationData, error)
	CancelByCode(ctx context.Context, code, email string) error
	List(ctx context.Context, date, status string, page, pageSize int) ([]entities.ReservationData, int, int, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type reservationUsecase struct {
	resRepo      repositories.ReservationRepository
	settingsRepo repositories.SettingsRepository
	mailer       Mailer
	now          func() time.Time

	// slotLocks serializes the fetch-sum-insert sequence per calendar date so
	// two racing requests cannot both pass the capacity check and jointly
	// exceed it.
	mu        sync.Mutex
	slotLocks map[string]*sync.Mutex
}

func NewReservationUsecase(resRepo repositories.ReservationRepository, settingsRepo repositories.SettingsRepository, mailer Mailer) ReservationUsecase {
	return &reservationUsecase{
		resRepo:      resRepo,
		settingsRepo: settingsRepo,
		mailer:       mailer,
		now:          time.Now,
		slotLocks:    make(map[string]*sync.Mutex),
	}
}

// parseSlot normalizes a stored date ("2006-01-02") and wall-clock time
// ("03:04 PM") into the reservation's occupancy window. The window is
// half-open: [start, start+60m).
func parseSlot(date, timeStr string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(dateLayout+" "+timeLayout, date+" "+timeStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.Add(entities.ReservationDurationMinutes * time.Minute), nil
}

// overlaps tests half-open interval intersection. Touching endpoints do not
// count: a 7:00 PM table and an 8:00 PM table never share an instant.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func (u *reservationUsecase) lockDate(date string) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()
	lock, ok := u.slotLocks[date]
	if !ok {
		lock = &sync.Mutex{}
		u.slotLocks[date] = lock
	}
	return lock
}

// Create runs the slot admission check and persists the reservation as
// pending. Capacity counts every reservation on the same date regardless of
// status: a pending table still occupies seats until an admin decides on it.
func (u *reservationUsecase) Create(ctx context.Context, req entities.ReservationRequest) (entities.ReservationData, error) {
	start, end, err := parseSlot(req.Date, req.Time)
	if err != nil {
		return entities.ReservationData{}, NewValidationError("invalid date or time format, use YYYY-MM-DD and hh:mm AM/PM")
	}
	if req.PartySize <= 0 {
		return entities.ReservationData{}, NewValidationError("party size must be at least 1")
	}
	if !start.After(u.now()) {
		return entities.ReservationData{}, NewPastDateError()
	}

	lock := u.lockDate(req.Date)
	lock.Lock()
	defer lock.Unlock()

	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return entities.ReservationData{}, NewInternalError()
	}
	capacity := settings.ReservationCapacity
	if capacity <= 0 {
		capacity = entities.DefaultReservationCapacity
	}

	existing, err := u.resRepo.FindByDate(ctx, req.Date)
	if err != nil {
		return entities.ReservationData{}, NewInternalError()
	}

	occupied := 0
	for _, res := range existing {
		resStart, resEnd, err := parseSlot(res.Date, res.Time)
		if err != nil {
			// Unreadable stored slot, leave it out of the sum.
			continue
		}
		if overlaps(start, end, resStart, resEnd) {
			occupied += res.PartySize
		}
	}
	if occupied+req.PartySize > capacity {
		return entities.ReservationData{}, NewCapacityExceededError()
	}

	data := entities.ReservationData{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Date:           req.Date,
		Time:           req.Time,
		PartySize:      req.PartySize,
		DurationMinute: entities.ReservationDurationMinutes,
		Status:         entities.ReservationStatusPending,
		Note:           req.Note,
	}

	// The unique index on code turns a random collision into a duplicate-key
	// error; regenerate and retry a bounded number of times.
	for attempt := 0; attempt < maxCodeRetries; attempt++ {
		data.Code = utils.GenerateReservationCode()
		created, err := u.resRepo.Create(ctx, data)
		if err == nil {
			return created, nil
		}
		if !repositories.IsDuplicateCode(err) {
			return entities.ReservationData{}, NewInternalError()
		}
	}
	return entities.ReservationData{}, NewInternalError()
}

func (u *reservationUsecase) GetByCode(ctx context.Context, code string) (entities.ReservationData, error) {
	res, err := u.resRepo.GetByCode(ctx, code)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.ReservationData{}, NewNotFoundError("reservation not found")
	}
	if err != nil {
		return entities.ReservationData{}, NewInternalError()
	}
	return res, nil
}

// CancelByCode lets the requester withdraw a reservation that is still
// pending. Approved reservations cannot be self-cancelled.
func (u *reservationUsecase) CancelByCode(ctx context.Context, code, email string) error {
	res, err := u.resRepo.GetByCode(ctx, code)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return NewNotFoundError("reservation not found")
	}
	if err != nil {
		return NewInternalError()
	}
	if res.Email != email {
		return NewNotFoundError("reservation not found")
	}
	if res.Status != entities.ReservationStatusPending {
		return NewValidationError("only pending reservations can be cancelled")
	}
	if _, err := u.resRepo.Delete(ctx, res.ID); err != nil {
		return NewInternalError()
	}
	return nil
}

func (u *reservationUsecase) List(ctx context.Context, date, status string, page, pageSize int) ([]entities.ReservationData, int, int, error) {
	if status != "" &&
		status != entities.ReservationStatusPending &&
		status != entities.ReservationStatusApproved &&
		status != entities.ReservationStatusRejected {
		return nil, 0, 0, NewValidationError("status is not valid")
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	reservations, totalData, err := u.resRepo.List(ctx, date, status, pageSize, offset)
	if err != nil {
		return nil, 0, 0, NewInternalError()
	}
	totalPage := (totalData + pageSize - 1) / pageSize
	return reservations, totalPage, totalData, nil
}

// UpdateStatus performs the admin decision. Transitions are terminal: only a
// pending reservation may move, and only to approved or rejected. The guest is
// emailed about the decision.
func (u *reservationUsecase) UpdateStatus(ctx context.Context, id, status string) error {
	if status != entities.ReservationStatusApproved && status != entities.ReservationStatusRejected {
		return NewValidationError("status must be approved or rejected")
	}
	res, err := u.resRepo.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return NewNotFoundError("reservation not found")
	}
	if err != nil {
		return NewInternalError()
	}
	if res.Status != entities.ReservationStatusPending {
		return NewValidationError("reservation has already been " + res.Status)
	}
	if _, err := u.resRepo.UpdateStatus(ctx, id, status); err != nil {
		return NewInternalError()
	}

	if u.mailer != nil {
		// Notification best effort, the transition already happened.
		_ = u.mailer.SendReservationStatus(res.Email, res.Name, res.Code, res.Date, res.Time, status)
	}
	return nil
}

func (u *reservationUsecase) Delete(ctx context.Context, id string) error {
	deleted, err := u.resRepo.Delete(ctx, id)
	if err != nil {
		return NewInternalError()
	}
	if deleted == 0 {
		return NewNotFoundError("reservation not found")
	}
	return nil
}
