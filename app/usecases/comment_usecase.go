package usecases

import (
	"context"
	"errors"

	"BE-Cafe-Corner/app/entities"
	"BE-Cafe-Corner/app/repositories"
	"BE-Cafe-Corner/app/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

type CommentUsecase interface {
	Create(ctx context.Context, postID string, req entities.CommentRequest) (entities.Comment, error)
	GetApprovedByPost(ctx context.Context, postID string) ([]entities.Comment, error)
	GetPending(ctx context.Context, page, pageSize int) ([]entities.Comment, int, int, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type commentUsecase struct {
	commentRepo repositories.CommentRepository
	blogRepo    repositories.BlogRepository
}

func NewCommentUsecase(commentRepo repositories.CommentRepository, blogRepo repositories.BlogRepository) CommentUsecase {
	return &commentUsecase{commentRepo: commentRepo, blogRepo: blogRepo}
}

// Create stores a visitor comment awaiting moderation. Comments only appear
// publicly once an admin approves them.
func (u *commentUsecase) Create(ctx context.Context, postID string, req entities.CommentRequest) (entities.Comment, error) {
	post, err := u.blogRepo.GetByID(ctx, postID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.Comment{}, NewNotFoundError("post not found")
	}
	if err != nil {
		return entities.Comment{}, NewInternalError()
	}
	if !post.Published {
		return entities.Comment{}, NewNotFoundError("post not found")
	}

	comment := entities.Comment{
		PostID: postID,
		Name:   req.Name,
		Email:  req.Email,
		Body:   req.Body,
		Status: entities.CommentStatusPending,
	}
	created, err := u.commentRepo.Create(ctx, comment)
	if err != nil {
		return entities.Comment{}, NewInternalError()
	}
	return created, nil
}

func (u *commentUsecase) GetApprovedByPost(ctx context.Context, postID string) ([]entities.Comment, error) {
	comments, err := u.commentRepo.GetByPost(ctx, postID, entities.CommentStatusApproved)
	if err != nil {
		return nil, NewInternalError()
	}
	return comments, nil
}

func (u *commentUsecase) GetPending(ctx context.Context, page, pageSize int) ([]entities.Comment, int, int, error) {
	_, pageSize, offset := utils.Pagination(page, pageSize)

	comments, totalData, err := u.commentRepo.GetByStatus(ctx, entities.CommentStatusPending, pageSize, offset)
	if err != nil {
		return nil, 0, 0, NewInternalError()
	}
	return comments, utils.TotalPages(totalData, pageSize), totalData, nil
}

func (u *commentUsecase) Approve(ctx context.Context, id string) error {
	comment, err := u.commentRepo.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return NewNotFoundError("comment not found")
	}
	if err != nil {
		return NewInternalError()
	}
	if comment.Status == entities.CommentStatusApproved {
		return NewValidationError("comment is already approved")
	}
	if _, err := u.commentRepo.UpdateStatus(ctx, id, entities.CommentStatusApproved); err != nil {
		return NewInternalError()
	}
	return nil
}

func (u *commentUsecase) Delete(ctx context.Context, id string) error {
	deleted, err := u.commentRepo.Delete(ctx, id)
	if err != nil {
		return NewInternalError()
	}
	if deleted == 0 {
		return NewNotFoundError("comment not found")
	}
	return nil
}
