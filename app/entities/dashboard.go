package entities

type DashboardResponse struct {
	Message string        `json:"message"`
	Data    DashboardData `json:"data"`
}

type DashboardData struct {
	TotalReservations    int `json:"totalReservations"`
	PendingReservations  int `json:"pendingReservations"`
	ApprovedReservations int `json:"approvedReservations"`
	RejectedReservations int `json:"rejectedReservations"`
	TotalGuests          int `json:"totalGuests"`
	MenuItems            int `json:"menuItems"`
	PublishedPosts       int `json:"publishedPosts"`
	PendingComments      int `json:"pendingComments"`
	UnreadContacts       int `json:"unreadContacts"`
}
