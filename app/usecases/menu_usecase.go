package usecases

import (
	"context"
	"errors"

	"BE-Cafe-Corner/app/entities"
	"BE-Cafe-Corner/app/repositories"
	"BE-Cafe-Corner/app/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

type MenuUsecase interface {
	Create(ctx context.Context, req entities.MenuItemRequest) (entities.MenuItem, error)
	GetAll(ctx context.Context, name, category string, availableOnly bool, page, pageSize int) ([]entities.MenuItem, int, int, error)
	GetByID(ctx context.Context, id string) (entities.MenuItem, error)
	Update(ctx context.Context, id string, req entities.MenuItemRequest) error
	Delete(ctx context.Context, id string) error
}

type menuUsecase struct {
	menuRepo repositories.MenuRepository
	baseURL  string
}

func NewMenuUsecase(menuRepo repositories.MenuRepository, baseURL string) MenuUsecase {
	return &menuUsecase{menuRepo: menuRepo, baseURL: baseURL}
}

func validCategory(category string) bool {
	for _, c := range entities.MenuCategories {
		if c == category {
			return true
		}
	}
	return false
}

func (u *menuUsecase) Create(ctx context.Context, req entities.MenuItemRequest) (entities.MenuItem, error) {
	if !validCategory(req.Category) {
		return entities.MenuItem{}, NewValidationError("category is not valid")
	}
	if req.Price <= 0 {
		return entities.MenuItem{}, NewValidationError("price must be larger than 0")
	}

	imageURL, err := utils.ProcessImageMove("", req.ImageURL, u.baseURL, "menu")
	if err != nil {
		return entities.MenuItem{}, NewValidationError(err.Error())
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	item := entities.MenuItem{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    imageURL,
		Available:   available,
	}
	created, err := u.menuRepo.Create(ctx, item)
	if err != nil {
		return entities.MenuItem{}, NewInternalError()
	}
	return created, nil
}

func (u *menuUsecase) GetAll(ctx context.Context, name, category string, availableOnly bool, page, pageSize int) ([]entities.MenuItem, int, int, error) {
	if category != "" && !validCategory(category) {
		return nil, 0, 0, NewValidationError("category is not valid")
	}
	_, pageSize, offset := utils.Pagination(page, pageSize)

	items, totalData, err := u.menuRepo.GetAll(ctx, name, category, availableOnly, pageSize, offset)
	if err != nil {
		return nil, 0, 0, NewInternalError()
	}
	return items, utils.TotalPages(totalData, pageSize), totalData, nil
}

func (u *menuUsecase) GetByID(ctx context.Context, id string) (entities.MenuItem, error) {
	item, err := u.menuRepo.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.MenuItem{}, NewNotFoundError("menu item not found")
	}
	if err != nil {
		return entities.MenuItem{}, NewInternalError()
	}
	return item, nil
}

func (u *menuUsecase) Update(ctx context.Context, id string, req entities.MenuItemRequest) error {
	if !validCategory(req.Category) {
		return NewValidationError("category is not valid")
	}
	if req.Price <= 0 {
		return NewValidationError("price must be larger than 0")
	}

	old, err := u.menuRepo.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return NewNotFoundError("menu item not found")
	}
	if err != nil {
		return NewInternalError()
	}

	imageURL, err := utils.ProcessImageMove(old.ImageURL, req.ImageURL, u.baseURL, "menu")
	if err != nil {
		return NewValidationError(err.Error())
	}

	available := old.Available
	if req.Available != nil {
		available = *req.Available
	}
	item := entities.MenuItem{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    imageURL,
		Available:   available,
	}
	matched, err := u.menuRepo.Update(ctx, id, item)
	if err != nil {
		return NewInternalError()
	}
	if matched == 0 {
		return NewNotFoundError("menu item not found")
	}
	return nil
}

func (u *menuUsecase) Delete(ctx context.Context, id string) error {
	deleted, err := u.menuRepo.Delete(ctx, id)
	if err != nil {
		return NewInternalError()
	}
	if deleted == 0 {
		return NewNotFoundError("menu item not found")
	}
	return nil
}
