package usecases

import (
	"context"
	"testing"

	"BE-Cafe-Corner/app/entities"
)

func newTestDashboardUsecase(t *testing.T) (DashboardUsecase, *MockDashboardRepository) {
	t.Helper()
	dashboardRepo := &MockDashboardRepository{Reservations: []entities.ReservationData{
		{Date: "2030-06-01", PartySize: 4, Status: entities.ReservationStatusPending},
		{Date: "2030-06-02", PartySize: 6, Status: entities.ReservationStatusApproved},
		{Date: "2030-06-03", PartySize: 2, Status: entities.ReservationStatusRejected},
		{Date: "2030-07-01", PartySize: 10, Status: entities.ReservationStatusApproved},
	}}

	ctx := context.Background()
	menuRepo := NewMockMenuRepository()
	if _, err := menuRepo.Create(ctx, entities.MenuItem{Name: "latte", Category: "coffee", Available: true}); err != nil {
		t.Fatalf("seeding menu: %v", err)
	}
	blogRepo := NewMockBlogRepository()
	if _, err := blogRepo.Create(ctx, entities.BlogPost{Title: "P", Slug: "p", Published: true}); err != nil {
		t.Fatalf("seeding blog: %v", err)
	}
	if _, err := blogRepo.Create(ctx, entities.BlogPost{Title: "D", Slug: "d"}); err != nil {
		t.Fatalf("seeding blog: %v", err)
	}
	commentRepo := NewMockCommentRepository()
	if _, err := commentRepo.Create(ctx, entities.Comment{PostID: "1", Status: entities.CommentStatusPending}); err != nil {
		t.Fatalf("seeding comment: %v", err)
	}
	contactRepo := NewMockContactRepository()
	if _, err := contactRepo.Create(ctx, entities.ContactMessage{Name: "A", Email: "a@example.com"}); err != nil {
		t.Fatalf("seeding contact: %v", err)
	}

	return NewDashboardUsecase(dashboardRepo, menuRepo, blogRepo, commentRepo, contactRepo), dashboardRepo
}

func TestDashboardValidation(t *testing.T) {
	usecase, _ := newTestDashboardUsecase(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		start, end  string
		wantMessage string
	}{
		{"missing dates", "", "", "start date and end date are required"},
		{"bad start", "01-06-2030", "2030-06-30", "invalid start date format, use YYYY-MM-DD"},
		{"bad end", "2030-06-01", "30-06-2030", "invalid end date format, use YYYY-MM-DD"},
		{"inverted range", "2030-06-30", "2030-06-01", "start date must be smaller than end date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := usecase.GetDashboard(ctx, tt.start, tt.end)
			assertUseCaseError(t, err, 400, tt.wantMessage)
		})
	}
}

func TestDashboardCounters(t *testing.T) {
	usecase, _ := newTestDashboardUsecase(t)

	response, err := usecase.GetDashboard(context.Background(), "2030-06-01", "2030-06-30")
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}

	want := entities.DashboardData{
		TotalReservations:    3,
		PendingReservations:  1,
		ApprovedReservations: 1,
		RejectedReservations: 1,
		TotalGuests:          12,
		MenuItems:            1,
		PublishedPosts:       1,
		PendingComments:      1,
		UnreadContacts:       1,
	}
	if response.Data != want {
		t.Errorf("dashboard data = %+v, want %+v", response.Data, want)
	}
}
