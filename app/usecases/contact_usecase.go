package usecases

import (
	"context"

	"BE-Cafe-Corner/app/entities"
	"BE-Cafe-Corner/app/repositories"
	"BE-Cafe-Corner/app/utils"
)

type ContactUsecase interface {
	Create(ctx context.Context, req entities.ContactRequest) (entities.ContactMessage, error)
	GetAll(ctx context.Context, unreadOnly bool, page, pageSize int) ([]entities.ContactMessage, int, int, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type contactUsecase struct {
	contactRepo repositories.ContactRepository
	mailer      Mailer
}

func NewContactUsecase(contactRepo repositories.ContactRepository, mailer Mailer) ContactUsecase {
	return &contactUsecase{contactRepo: contactRepo, mailer: mailer}
}

func (u *contactUsecase) Create(ctx context.Context, req entities.ContactRequest) (entities.ContactMessage, error) {
	msg := entities.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	}
	created, err := u.contactRepo.Create(ctx, msg)
	if err != nil {
		return entities.ContactMessage{}, NewInternalError()
	}

	if u.mailer != nil {
		// Inbox notification best effort, the message is already stored.
		_ = u.mailer.SendContactNotification(req.Name, req.Email, req.Subject, req.Body)
	}
	return created, nil
}

func (u *contactUsecase) GetAll(ctx context.Context, unreadOnly bool, page, pageSize int) ([]entities.ContactMessage, int, int, error) {
	_, pageSize, offset := utils.Pagination(page, pageSize)

	messages, totalData, err := u.contactRepo.GetAll(ctx, unreadOnly, pageSize, offset)
	if err != nil {
		return nil, 0, 0, NewInternalError()
	}
	return messages, utils.TotalPages(totalData, pageSize), totalData, nil
}

func (u *contactUsecase) MarkRead(ctx context.Context, id string) error {
	matched, err := u.contactRepo.MarkRead(ctx, id)
	if err != nil {
		return NewInternalError()
	}
	if matched == 0 {
		return NewNotFoundError("message not found")
	}
	return nil
}

func (u *contactUsecase) Delete(ctx context.Context, id string) error {
	deleted, err := u.contactRepo.Delete(ctx, id)
	if err != nil {
		return NewInternalError()
	}
	if deleted == 0 {
		return NewNotFoundError("message not found")
	}
	return nil
}
