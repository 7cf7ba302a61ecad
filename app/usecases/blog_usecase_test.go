package usecases

import (
	"context"
	"testing"

	"BE-Cafe-Corner/app/entities"
)

func makeBlogRequest(title string) entities.BlogPostRequest {
	return entities.BlogPostRequest{
		Title:  title,
		Body:   "body of " + title,
		Author: "Barista Bob",
	}
}

func TestBlogCreate(t *testing.T) {
	repo := NewMockBlogRepository()
	usecase := NewBlogUsecase(repo, "http://localhost:8080")
	ctx := context.Background()

	t.Run("slug derived from title", func(t *testing.T) {
		created, err := usecase.Create(ctx, makeBlogRequest("Our New Winter Menu!"))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if created.Slug != "our-new-winter-menu" {
			t.Errorf("slug = %q, want %q", created.Slug, "our-new-winter-menu")
		}
		if created.Published {
			t.Error("post should default to draft")
		}
	})

	t.Run("duplicate title", func(t *testing.T) {
		_, err := usecase.Create(ctx, makeBlogRequest("Our New Winter Menu"))
		assertUseCaseError(t, err, 400, "a post with this title already exists")
	})

	t.Run("title with no slug content", func(t *testing.T) {
		_, err := usecase.Create(ctx, makeBlogRequest("!!!"))
		assertUseCaseError(t, err, 400, "title must contain at least one letter or digit")
	})
}

func TestBlogGetBySlug(t *testing.T) {
	repo := NewMockBlogRepository()
	usecase := NewBlogUsecase(repo, "http://localhost:8080")
	ctx := context.Background()

	req := makeBlogRequest("Latte Art Basics")
	req.Published = boolPtr(true)
	created, err := usecase.Create(ctx, req)
	if err != nil {
		t.Fatalf("seeding: %v", err)
	}

	got, err := usecase.GetBySlug(ctx, created.Slug)
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("id = %q, want %q", got.ID, created.ID)
	}

	_, err = usecase.GetBySlug(ctx, "no-such-post")
	assertUseCaseError(t, err, 404, "post not found")
}

func TestBlogUpdate(t *testing.T) {
	repo := NewMockBlogRepository()
	usecase := NewBlogUsecase(repo, "http://localhost:8080")
	ctx := context.Background()

	req := makeBlogRequest("House Blend Story")
	req.Published = boolPtr(true)
	created, err := usecase.Create(ctx, req)
	if err != nil {
		t.Fatalf("seeding: %v", err)
	}

	t.Run("retitle reslugs, publish state survives", func(t *testing.T) {
		if err := usecase.Update(ctx, created.ID, makeBlogRequest("House Blend, Revisited")); err != nil {
			t.Fatalf("Update: %v", err)
		}
		got, err := usecase.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.Slug != "house-blend-revisited" {
			t.Errorf("slug = %q, want %q", got.Slug, "house-blend-revisited")
		}
		if !got.Published {
			t.Error("published flag should survive an update that omits it")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		err := usecase.Update(ctx, "missing", makeBlogRequest("Anything"))
		assertUseCaseError(t, err, 404, "post not found")
	})
}

func TestBlogDelete(t *testing.T) {
	repo := NewMockBlogRepository()
	usecase := NewBlogUsecase(repo, "http://localhost:8080")
	ctx := context.Background()

	created, err := usecase.Create(ctx, makeBlogRequest("Ephemeral Post"))
	if err != nil {
		t.Fatalf("seeding: %v", err)
	}
	if err := usecase.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	err = usecase.Delete(ctx, created.ID)
	assertUseCaseError(t, err, 404, "post not found")
}
