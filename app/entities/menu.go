package entities

import "time"

// Menu categories accepted by validation. Kept in one place so the usecase and
// the request validation agree.
var MenuCategories = []string{"coffee", "tea", "food", "dessert"}

type MenuItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageURL    string  `json:"imageURL"`
	Available   *bool   `json:"available"`
}

type MenuItem struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Category    string    `json:"category" bson:"category"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	ImageURL    string    `json:"imageURL" bson:"image_url"`
	Available   bool      `json:"available" bson:"available"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}

type MenuListResponse struct {
	Message   string     `json:"message"`
	Data      []MenuItem `json:"data"`
	Page      int        `json:"page"`
	PageSize  int        `json:"pageSize"`
	TotalPage int        `json:"totalPage"`
	TotalData int        `json:"totalData"`
}
