package entities

import "time"

type BlogPostRequest struct {
	Title     string `json:"title" validate:"required"`
	Body      string `json:"body" validate:"required"`
	Author    string `json:"author"`
	ImageURL  string `json:"imageURL"`
	Published *bool  `json:"published"`
}

type BlogPost struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Slug      string    `json:"slug" bson:"slug"`
	Body      string    `json:"body" bson:"body"`
	Author    string    `json:"author" bson:"author"`
	ImageURL  string    `json:"imageURL" bson:"image_url"`
	Published bool      `json:"published" bson:"published"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

type BlogListResponse struct {
	Message   string     `json:"message"`
	Data      []BlogPost `json:"data"`
	Page      int        `json:"page"`
	PageSize  int        `json:"pageSize"`
	TotalPage int        `json:"totalPage"`
	TotalData int        `json:"totalData"`
}
