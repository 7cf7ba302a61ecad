package usecases

import (
	"context"
	"time"

	"BE-Cafe-Corner/app/entities"
	"BE-Cafe-Corner/app/repositories"
)

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, startDate, endDate string) (entities.DashboardResponse, error)
}

type dashboardUsecase struct {
	dashboardRepo repositories.DashboardRepository
	menuRepo      repositories.MenuRepository
	blogRepo      repositories.BlogRepository
	commentRepo   repositories.CommentRepository
	contactRepo   repositories.ContactRepository
}

func NewDashboardUsecase(
	dashboardRepo repositories.DashboardRepository,
	menuRepo repositories.MenuRepository,
	blogRepo repositories.BlogRepository,
	commentRepo repositories.CommentRepository,
	contactRepo repositories.ContactRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		dashboardRepo: dashboardRepo,
		menuRepo:      menuRepo,
		blogRepo:      blogRepo,
		commentRepo:   commentRepo,
		contactRepo:   contactRepo,
	}
}

func (u *dashboardUsecase) GetDashboard(ctx context.Context, startDate, endDate string) (entities.DashboardResponse, error) {
	if startDate == "" || endDate == "" {
		return entities.DashboardResponse{}, NewValidationError("start date and end date are required")
	}
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return entities.DashboardResponse{}, NewValidationError("invalid start date format, use YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return entities.DashboardResponse{}, NewValidationError("invalid end date format, use YYYY-MM-DD")
	}
	if start.After(end) {
		return entities.DashboardResponse{}, NewValidationError("start date must be smaller than end date")
	}

	total, err := u.dashboardRepo.CountReservations(ctx, startDate, endDate, "")
	if err != nil {
		return entities.DashboardResponse{}, NewInternalError()
	}
	pending, err := u.dashboardRepo.CountReservations(ctx, startDate, endDate, entities.ReservationStatusPending)
	if err != nil {
		return entities.DashboardResponse{}, NewInternalError()
	}
	approved, err := u.dashboardRepo.CountReservations(ctx, startDate, endDate, entities.ReservationStatusApproved)
	if err != nil {
		return entities.DashboardResponse{}, NewInternalError()
	}
	rejected, err := u.dashboardRepo.CountReservations(ctx, startDate, endDate, entities.ReservationStatusRejected)
	if err != nil {
		return entities.DashboardResponse{}, NewInternalError()
	}
	guests, err := u.dashboardRepo.SumGuests(ctx, startDate, endDate)
	if err != nil {
		return entities.DashboardResponse{}, NewInternalError()
	}
	menuItems, err := u.menuRepo.Count(ctx)
	if err != nil {
		return entities.DashboardResponse{}, NewInternalError()
	}
	publishedPosts, err := u.blogRepo.CountPublished(ctx)
	if err != nil {
		return entities.DashboardResponse{}, NewInternalError()
	}
	pendingComments, err := u.commentRepo.CountByStatus(ctx, entities.CommentStatusPending)
	if err != nil {
		return entities.DashboardResponse{}, NewInternalError()
	}
	unreadContacts, err := u.contactRepo.CountUnread(ctx)
	if err != nil {
		return entities.DashboardResponse{}, NewInternalError()
	}

	response := entities.DashboardResponse{Message: "get dashboard data success"}
	response.Data = entities.DashboardData{
		TotalReservations:    total,
		PendingReservations:  pending,
		ApprovedReservations: approved,
		RejectedReservations: rejected,
		TotalGuests:          guests,
		MenuItems:            menuItems,
		PublishedPosts:       publishedPosts,
		PendingComments:      pendingComments,
		UnreadContacts:       unreadContacts,
	}
	return response, nil
}
