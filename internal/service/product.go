package service

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kaanhvc/catalog-api/internal/domain"
	"github.com/kaanhvc/catalog-api/internal/events"
	"github.com/kaanhvc/catalog-api/internal/repository"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.ProductView, error)
	ListProducts(ctx context.Context, params domain.ListProductsParams) ([]domain.ProductView, domain.Pagination, error)
	GetProductByID(ctx context.Context, id primitive.ObjectID) (*domain.ProductView, error)
	UpdateProduct(ctx context.Context, id primitive.ObjectID, req domain.UpdateProductRequest) (*domain.ProductView, error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error
}

type productService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	eventBus   *events.Bus
	logger     hclog.Logger
}

func NewProductService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	eventBus *events.Bus,
	logger hclog.Logger) ProductService {
	return &productService{
		products:   products,
		categories: categories,
		eventBus:   eventBus,
		logger:     logger,
	}
}

func (s *productService) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.ProductView, error) {
	s.logger.Debug("Creating product", "name", req.Name)

	categoryID, err := primitive.ObjectIDFromHex(req.CategoryID)
	if err != nil {
		return nil, domain.NewValidationError("Validation failed",
			domain.FieldError{Field: "categoryId", Message: "must be a valid id", Code: "objectid"})
	}

	// the referenced category must exist
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	// application-level uniqueness on (name, categoryId). The pre-check is
	// race-prone: two concurrent creates can both pass it, and no store
	// index backs this pair, so the loser is not caught later either.
	existing, err := s.products.FindByNameAndCategory(ctx, req.Name, categoryID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewValidationError("Validation failed", domain.FieldError{
			Field:   "name",
			Message: "a product with this name already exists in this category",
			Code:    "duplicate",
		})
	}

	discount := 0.0
	if req.Discount != nil {
		discount = *req.Discount
	}
	status := req.Status
	if status == "" {
		status = domain.StatusInStock
	}

	product := &domain.Product{
		Name:         req.Name,
		Description:  req.Description,
		Price:        *req.Price,
		Discount:     discount,
		Image:        req.Image,
		Status:       status,
		ProductCode:  domain.GenerateProductCode(req.Name, time.Now()),
		CategoryID:   categoryID,
		CategoryName: category.Name,
	}

	if err := s.products.Create(ctx, product); err != nil {
		s.logger.Error("Unable to create product", "name", req.Name, "error", err)
		return nil, err
	}

	s.eventBus.Publish(events.Event{Type: events.ProductCreated, ID: product.ID.Hex(), Name: product.Name})

	view := product.View()
	return &view, nil
}

func (s *productService) ListProducts(ctx context.Context, params domain.ListProductsParams) ([]domain.ProductView, domain.Pagination, error) {
	s.logger.Debug("Listing products", "page", params.Page, "limit", params.Limit, "search", params.Search)

	products, total, err := s.products.List(ctx, params)
	if err != nil {
		s.logger.Error("Unable to list products", "error", err)
		return nil, domain.Pagination{}, err
	}

	views := make([]domain.ProductView, len(products))
	for i, p := range products {
		views[i] = p.View()
	}

	return views, domain.NewPagination(params.Page, params.Limit, total), nil
}

func (s *productService) GetProductByID(ctx context.Context, id primitive.ObjectID) (*domain.ProductView, error) {
	s.logger.Debug("Getting product", "id", id.Hex())

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := product.View()
	return &view, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id primitive.ObjectID, req domain.UpdateProductRequest) (*domain.ProductView, error) {
	s.logger.Debug("Updating product", "id", id.Hex())

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// a category change re-validates the reference and refreshes the name
	// snapshot; renames of the old category never propagate here
	if req.CategoryID != nil {
		categoryID, err := primitive.ObjectIDFromHex(*req.CategoryID)
		if err != nil {
			return nil, domain.NewValidationError("Validation failed",
				domain.FieldError{Field: "categoryId", Message: "must be a valid id", Code: "objectid"})
		}
		category, err := s.categories.GetByID(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		product.CategoryID = categoryID
		product.CategoryName = category.Name
	}

	// explicit patch application over the allow-listed fields; the product
	// code is immutable and not patchable
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Discount != nil {
		product.Discount = *req.Discount
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Status != nil {
		product.Status = *req.Status
	}

	if err := s.products.Update(ctx, product); err != nil {
		s.logger.Error("Unable to update product", "id", id.Hex(), "error", err)
		return nil, err
	}

	s.eventBus.Publish(events.Event{Type: events.ProductUpdated, ID: product.ID.Hex(), Name: product.Name})

	view := product.View()
	return &view, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	s.logger.Debug("Deleting product", "id", id.Hex())

	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}

	s.eventBus.Publish(events.Event{Type: events.ProductDeleted, ID: id.Hex()})
	return nil
}
