package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups products. Name carries a unique index in the store.
type Category struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateCategoryRequest is the POST /category body.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"omitempty,max=200"`
}

// UpdateCategoryRequest is the PUT /category/{id} body. Pointer fields make
// the partial patch explicit: nil means "leave untouched".
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=50"`
	Description *string `json:"description" validate:"omitempty,max=200"`
}

// ListCategoriesParams are the category listing parameters. Categories
// support search and the pagination window only; sort is fixed newest-first.
type ListCategoriesParams struct {
	Page   int    `json:"page" validate:"gte=1"`
	Limit  int    `json:"limit" validate:"gte=1"`
	Search string `json:"search,omitempty" validate:"-"`
}
