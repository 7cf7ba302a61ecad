package entities

// DefaultReservationCapacity is used when no settings document exists yet. It
// is the maximum total party size across all reservations whose one-hour
// windows overlap at any instant.
const DefaultReservationCapacity = 60

type SettingsRequest struct {
	SiteName            string       `json:"siteName" validate:"required"`
	Address             string       `json:"address"`
	Phone               string       `json:"phone"`
	Email               string       `json:"email" validate:"omitempty,email"`
	OpeningHours        string       `json:"openingHours"`
	ReservationCapacity int          `json:"reservationCapacity" validate:"required,gt=0"`
	Social              SocialLinks  `json:"social"`
}

type Settings struct {
	ID                  string      `json:"-" bson:"_id,omitempty"`
	SiteName            string      `json:"siteName" bson:"site_name"`
	Address             string      `json:"address" bson:"address"`
	Phone               string      `json:"phone" bson:"phone"`
	Email               string      `json:"email" bson:"email"`
	OpeningHours        string      `json:"openingHours" bson:"opening_hours"`
	ReservationCapacity int         `json:"reservationCapacity" bson:"reservation_capacity"`
	Social              SocialLinks `json:"social" bson:"social"`
}

type SocialLinks struct {
	Instagram string `json:"instagram" bson:"instagram"`
	Facebook  string `json:"facebook" bson:"facebook"`
	Twitter   string `json:"twitter" bson:"twitter"`
}
