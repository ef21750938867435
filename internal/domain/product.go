package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product status values.
const (
	StatusInStock  = "In Stock"
	StatusStockOut = "Stock Out"
)

// Product is the catalog entry. Name is unique per category (enforced by the
// service, not the store); ProductCode carries a store unique index.
// CategoryName is a snapshot of the referenced category's name taken at
// write time and is not re-synced when the category is renamed.
type Product struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Description  string             `json:"description" bson:"description"`
	Price        float64            `json:"price" bson:"price"`
	Discount     float64            `json:"discount" bson:"discount"`
	Image        string             `json:"image" bson:"image"`
	Status       string             `json:"status" bson:"status"`
	ProductCode  string             `json:"productCode" bson:"productCode"`
	CategoryID   primitive.ObjectID `json:"categoryId" bson:"categoryId"`
	CategoryName string             `json:"categoryName" bson:"categoryName"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProductView is a Product with its derived pricing attached. Pricing is
// computed at read time and never persisted.
type ProductView struct {
	Product
	Pricing Pricing `json:"pricing"`
}

// View derives the pricing fields for a response.
func (p Product) View() ProductView {
	return ProductView{Product: p, Pricing: ComputePricing(p.Price, p.Discount)}
}

// CreateProductRequest is the POST /product body.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"required,max=500"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Discount    *float64 `json:"discount" validate:"omitempty,gte=0,lte=100"`
	Image       string   `json:"image" validate:"required,url"`
	Status      string   `json:"status" validate:"omitempty,productstatus"`
	CategoryID  string   `json:"categoryId" validate:"required,objectid"`
}

// UpdateProductRequest is the PUT /product/{id} body. Every field is
// optional; nil fields are left untouched by the patch.
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Discount    *float64 `json:"discount" validate:"omitempty,gte=0,lte=100"`
	Image       *string  `json:"image" validate:"omitempty,url"`
	Status      *string  `json:"status" validate:"omitempty,productstatus"`
	CategoryID  *string  `json:"categoryId" validate:"omitempty,objectid"`
}

// ListProductsParams are the parsed and coerced listing query parameters.
// Page and Limit arrive on the wire as strings and are coerced before
// validation; see transport/http.
type ListProductsParams struct {
	Page      int    `json:"page" validate:"gte=1"`
	Limit     int    `json:"limit" validate:"gte=1"`
	Search    string `json:"search,omitempty" validate:"-"`
	Category  string `json:"category,omitempty" validate:"omitempty,objectid"`
	Status    string `json:"status,omitempty" validate:"omitempty,productstatus"`
	SortBy    string `json:"sortBy,omitempty" validate:"omitempty,oneof=name price createdAt updatedAt"`
	SortOrder string `json:"sortOrder,omitempty" validate:"omitempty,oneof=asc desc"`
}
