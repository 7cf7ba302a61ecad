package handlers

import (
	"net/http"
	"strconv"

	"BE-Cafe-Corner/app/entities"
	"BE-Cafe-Corner/app/usecases"

	"github.com/labstack/echo/v4"
)

type BlogHandler struct {
	blogUsecase    usecases.BlogUsecase
	commentUsecase usecases.CommentUsecase
}

func NewBlogHandler(blogUsecase usecases.BlogUsecase, commentUsecase usecases.CommentUsecase) *BlogHandler {
	return &BlogHandler{blogUsecase: blogUsecase, commentUsecase: commentUsecase}
}

// GetPosts lists blog posts. The public route only returns published posts;
// the admin route returns everything including drafts.
func (h *BlogHandler) GetPosts(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	publishedOnly := c.Path() == "/blog"

	posts, totalPage, totalData, err := h.blogUsecase.GetAll(
		c.Request().Context(), c.QueryParam("search"), publishedOnly, page, pageSize)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, entities.BlogListResponse{
		Message:   "success",
		Data:      posts,
		Page:      page,
		PageSize:  pageSize,
		TotalPage: totalPage,
		TotalData: totalData,
	})
}

func (h *BlogHandler) GetPostBySlug(c echo.Context) error {
	post, err := h.blogUsecase.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	if !post.Published {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "post not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": post})
}

func (h *BlogHandler) CreatePost(c echo.Context) error {
	var req entities.BlogPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing or invalid required fields"})
	}

	post, err := h.blogUsecase.Create(c.Request().Context(), req)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "post created", "data": post})
}

func (h *BlogHandler) UpdatePost(c echo.Context) error {
	var req entities.BlogPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing or invalid required fields"})
	}

	err := h.blogUsecase.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "post updated"})
}

func (h *BlogHandler) DeletePost(c echo.Context) error {
	err := h.blogUsecase.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "post deleted"})
}

// CreateComment stores a visitor comment for moderation.
func (h *BlogHandler) CreateComment(c echo.Context) error {
	var req entities.CommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing or invalid required fields"})
	}

	comment, err := h.commentUsecase.Create(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "comment submitted for moderation", "data": comment})
}

func (h *BlogHandler) GetComments(c echo.Context) error {
	comments, err := h.commentUsecase.GetApprovedByPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": comments})
}

func (h *BlogHandler) GetPendingComments(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	comments, totalPage, totalData, err := h.commentUsecase.GetPending(c.Request().Context(), page, pageSize)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":   "success",
		"data":      comments,
		"totalPage": totalPage,
		"totalData": totalData,
	})
}

func (h *BlogHandler) ApproveComment(c echo.Context) error {
	err := h.commentUsecase.Approve(c.Request().Context(), c.Param("id"))
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "comment approved"})
}

func (h *BlogHandler) DeleteComment(c echo.Context) error {
	err := h.commentUsecase.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "comment deleted"})
}
