package usecases

import (
	"context"
	"testing"

	"BE-Cafe-Corner/app/entities"
)

func makeCommentRequest(name string) entities.CommentRequest {
	return entities.CommentRequest{
		Name:  name,
		Email: name + "@example.com",
		Body:  "great coffee",
	}
}

func seedPost(t *testing.T, blogRepo *MockBlogRepository, published bool) entities.BlogPost {
	t.Helper()
	post, err := blogRepo.Create(context.Background(), entities.BlogPost{
		Title:     "A Post",
		Slug:      "a-post-" + map[bool]string{true: "pub", false: "draft"}[published],
		Published: published,
	})
	if err != nil {
		t.Fatalf("seeding post: %v", err)
	}
	return post
}

func TestCommentCreate(t *testing.T) {
	blogRepo := NewMockBlogRepository()
	commentRepo := NewMockCommentRepository()
	usecase := NewCommentUsecase(commentRepo, blogRepo)
	ctx := context.Background()

	published := seedPost(t, blogRepo, true)
	draft := seedPost(t, blogRepo, false)

	t.Run("lands pending on a published post", func(t *testing.T) {
		created, err := usecase.Create(ctx, published.ID, makeCommentRequest("ana"))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if created.Status != entities.CommentStatusPending {
			t.Errorf("status = %q, want pending", created.Status)
		}
		if created.PostID != published.ID {
			t.Errorf("postID = %q, want %q", created.PostID, published.ID)
		}
	})

	t.Run("draft post looks like not found", func(t *testing.T) {
		_, err := usecase.Create(ctx, draft.ID, makeCommentRequest("ben"))
		assertUseCaseError(t, err, 404, "post not found")
	})

	t.Run("unknown post", func(t *testing.T) {
		_, err := usecase.Create(ctx, "missing", makeCommentRequest("cam"))
		assertUseCaseError(t, err, 404, "post not found")
	})
}

func TestCommentModeration(t *testing.T) {
	blogRepo := NewMockBlogRepository()
	commentRepo := NewMockCommentRepository()
	usecase := NewCommentUsecase(commentRepo, blogRepo)
	ctx := context.Background()

	post := seedPost(t, blogRepo, true)
	first, err := usecase.Create(ctx, post.ID, makeCommentRequest("dee"))
	if err != nil {
		t.Fatalf("seeding comment: %v", err)
	}
	if _, err := usecase.Create(ctx, post.ID, makeCommentRequest("eli")); err != nil {
		t.Fatalf("seeding comment: %v", err)
	}

	t.Run("pending queue holds both", func(t *testing.T) {
		pending, _, totalData, err := usecase.GetPending(ctx, 1, 10)
		if err != nil {
			t.Fatalf("GetPending: %v", err)
		}
		if len(pending) != 2 || totalData != 2 {
			t.Errorf("pending = %d (total %d), want 2", len(pending), totalData)
		}
	})

	t.Run("public view is empty before approval", func(t *testing.T) {
		approved, err := usecase.GetApprovedByPost(ctx, post.ID)
		if err != nil {
			t.Fatalf("GetApprovedByPost: %v", err)
		}
		if len(approved) != 0 {
			t.Errorf("approved = %d, want 0", len(approved))
		}
	})

	t.Run("approval publishes exactly one", func(t *testing.T) {
		if err := usecase.Approve(ctx, first.ID); err != nil {
			t.Fatalf("Approve: %v", err)
		}
		approved, err := usecase.GetApprovedByPost(ctx, post.ID)
		if err != nil {
			t.Fatalf("GetApprovedByPost: %v", err)
		}
		if len(approved) != 1 || approved[0].ID != first.ID {
			t.Errorf("approved = %v, want only the first comment", approved)
		}
	})

	t.Run("double approval rejected", func(t *testing.T) {
		err := usecase.Approve(ctx, first.ID)
		assertUseCaseError(t, err, 400, "comment is already approved")
	})

	t.Run("approve unknown comment", func(t *testing.T) {
		err := usecase.Approve(ctx, "missing")
		assertUseCaseError(t, err, 404, "comment not found")
	})

	t.Run("delete removes from queue", func(t *testing.T) {
		if err := usecase.Delete(ctx, first.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		err := usecase.Delete(ctx, first.ID)
		assertUseCaseError(t, err, 404, "comment not found")
	})
}
