package usecases

import (
	"context"
	"errors"

	"BE-Cafe-Corner/app/entities"
	"BE-Cafe-Corner/app/repositories"
	"BE-Cafe-Corner/app/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

type BlogUsecase interface {
	Create(ctx context.Context, req entities.BlogPostRequest) (entities.BlogPost, error)
	GetAll(ctx context.Context, search string, publishedOnly bool, page, pageSize int) ([]entities.BlogPost, int, int, error)
	GetBySlug(ctx context.Context, slug string) (entities.BlogPost, error)
	GetByID(ctx context.Context, id string) (entities.BlogPost, error)
	Update(ctx context.Context, id string, req entities.BlogPostRequest) error
	Delete(ctx context.Context, id string) error
}

type blogUsecase struct {
	blogRepo repositories.BlogRepository
	baseURL  string
}

func NewBlogUsecase(blogRepo repositories.BlogRepository, baseURL string) BlogUsecase {
	return &blogUsecase{blogRepo: blogRepo, baseURL: baseURL}
}

func (u *blogUsecase) Create(ctx context.Context, req entities.BlogPostRequest) (entities.BlogPost, error) {
	slug := utils.Slugify(req.Title)
	if slug == "" {
		return entities.BlogPost{}, NewValidationError("title must contain at least one letter or digit")
	}

	imageURL, err := utils.ProcessImageMove("", req.ImageURL, u.baseURL, "blog")
	if err != nil {
		return entities.BlogPost{}, NewValidationError(err.Error())
	}

	published := false
	if req.Published != nil {
		published = *req.Published
	}
	post := entities.BlogPost{
		Title:     req.Title,
		Slug:      slug,
		Body:      req.Body,
		Author:    req.Author,
		ImageURL:  imageURL,
		Published: published,
	}
	created, err := u.blogRepo.Create(ctx, post)
	if repositories.IsDuplicateSlug(err) {
		return entities.BlogPost{}, NewValidationError("a post with this title already exists")
	}
	if err != nil {
		return entities.BlogPost{}, NewInternalError()
	}
	return created, nil
}

func (u *blogUsecase) GetAll(ctx context.Context, search string, publishedOnly bool, page, pageSize int) ([]entities.BlogPost, int, int, error) {
	_, pageSize, offset := utils.Pagination(page, pageSize)

	posts, totalData, err := u.blogRepo.GetAll(ctx, search, publishedOnly, pageSize, offset)
	if err != nil {
		return nil, 0, 0, NewInternalError()
	}
	return posts, utils.TotalPages(totalData, pageSize), totalData, nil
}

func (u *blogUsecase) GetBySlug(ctx context.Context, slug string) (entities.BlogPost, error) {
	post, err := u.blogRepo.GetBySlug(ctx, slug)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.BlogPost{}, NewNotFoundError("post not found")
	}
	if err != nil {
		return entities.BlogPost{}, NewInternalError()
	}
	return post, nil
}

func (u *blogUsecase) GetByID(ctx context.Context, id string) (entities.BlogPost, error) {
	post, err := u.blogRepo.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.BlogPost{}, NewNotFoundError("post not found")
	}
	if err != nil {
		return entities.BlogPost{}, NewInternalError()
	}
	return post, nil
}

func (u *blogUsecase) Update(ctx context.Context, id string, req entities.BlogPostRequest) error {
	old, err := u.blogRepo.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return NewNotFoundError("post not found")
	}
	if err != nil {
		return NewInternalError()
	}

	slug := utils.Slugify(req.Title)
	if slug == "" {
		return NewValidationError("title must contain at least one letter or digit")
	}

	imageURL, err := utils.ProcessImageMove(old.ImageURL, req.ImageURL, u.baseURL, "blog")
	if err != nil {
		return NewValidationError(err.Error())
	}

	published := old.Published
	if req.Published != nil {
		published = *req.Published
	}
	post := entities.BlogPost{
		Title:     req.Title,
		Slug:      slug,
		Body:      req.Body,
		Author:    req.Author,
		ImageURL:  imageURL,
		Published: published,
	}
	matched, err := u.blogRepo.Update(ctx, id, post)
	if repositories.IsDuplicateSlug(err) {
		return NewValidationError("a post with this title already exists")
	}
	if err != nil {
		return NewInternalError()
	}
	if matched == 0 {
		return NewNotFoundError("post not found")
	}
	return nil
}

func (u *blogUsecase) Delete(ctx context.Context, id string) error {
	deleted, err := u.blogRepo.Delete(ctx, id)
	if err != nil {
		return NewInternalError()
	}
	if deleted == 0 {
		return NewNotFoundError("post not found")
	}
	return nil
}
