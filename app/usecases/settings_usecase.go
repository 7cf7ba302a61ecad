package usecases

import (
	"context"

	"BE-Cafe-Corner/app/entities"
	"BE-Cafe-Corner/app/repositories"
)

// SettingsUsecase reads through to the repository on every call instead of
// keeping a process-wide cache; an update is visible to the next read without
// any invalidation step.
type SettingsUsecase interface {
	Get(ctx context.Context) (entities.Settings, error)
	Update(ctx context.Context, req entities.SettingsRequest) error
}

type settingsUsecase struct {
	settingsRepo repositories.SettingsRepository
}

func NewSettingsUsecase(settingsRepo repositories.SettingsRepository) SettingsUsecase {
	return &settingsUsecase{settingsRepo: settingsRepo}
}

func (u *settingsUsecase) Get(ctx context.Context) (entities.Settings, error) {
	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return entities.Settings{}, NewInternalError()
	}
	return settings, nil
}

func (u *settingsUsecase) Update(ctx context.Context, req entities.SettingsRequest) error {
	if req.ReservationCapacity <= 0 {
		return NewValidationError("reservation capacity must be larger than 0")
	}
	settings := entities.Settings{
		SiteName:            req.SiteName,
		Address:             req.Address,
		Phone:               req.Phone,
		Email:               req.Email,
		OpeningHours:        req.OpeningHours,
		ReservationCapacity: req.ReservationCapacity,
		Social:              req.Social,
	}
	if err := u.settingsRepo.Upsert(ctx, settings); err != nil {
		return NewInternalError()
	}
	return nil
}
