package service

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kaanhvc/catalog-api/internal/domain"
	"github.com/kaanhvc/catalog-api/internal/events"
	"github.com/kaanhvc/catalog-api/internal/repository"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (*domain.Category, error)
	ListCategories(ctx context.Context, params domain.ListCategoriesParams) ([]domain.Category, domain.Pagination, error)
	GetCategoryByID(ctx context.Context, id primitive.ObjectID) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id primitive.ObjectID, req domain.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id primitive.ObjectID) error
}

type categoryService struct {
	repo     repository.CategoryRepository
	eventBus *events.Bus
	logger   hclog.Logger
}

func NewCategoryService(repo repository.CategoryRepository, eventBus *events.Bus, logger hclog.Logger) CategoryService {
	return &categoryService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (*domain.Category, error) {
	s.logger.Debug("Creating category", "name", req.Name)

	category := &domain.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	// name uniqueness is enforced by the store index; a losing concurrent
	// create surfaces here as a duplicate error
	if err := s.repo.Create(ctx, category); err != nil {
		s.logger.Error("Unable to create category", "name", req.Name, "error", err)
		return nil, err
	}

	s.eventBus.Publish(events.Event{Type: events.CategoryCreated, ID: category.ID.Hex(), Name: category.Name})
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, params domain.ListCategoriesParams) ([]domain.Category, domain.Pagination, error) {
	s.logger.Debug("Listing categories", "page", params.Page, "limit", params.Limit)

	categories, total, err := s.repo.List(ctx, params)
	if err != nil {
		s.logger.Error("Unable to list categories", "error", err)
		return nil, domain.Pagination{}, err
	}

	return categories, domain.NewPagination(params.Page, params.Limit, total), nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id primitive.ObjectID) (*domain.Category, error) {
	s.logger.Debug("Getting category", "id", id.Hex())

	return s.repo.GetByID(ctx, id)
}

func (s *categoryService) UpdateCategory(ctx context.Context, id primitive.ObjectID, req domain.UpdateCategoryRequest) (*domain.Category, error) {
	s.logger.Debug("Updating category", "id", id.Hex())

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// explicit patch application over the allow-listed fields; absent
	// fields stay untouched
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := s.repo.Update(ctx, category); err != nil {
		s.logger.Error("Unable to update category", "id", id.Hex(), "error", err)
		return nil, err
	}

	s.eventBus.Publish(events.Event{Type: events.CategoryUpdated, ID: category.ID.Hex(), Name: category.Name})
	return category, nil
}

// DeleteCategory removes the category without guarding against products
// that still reference it; their categoryName snapshots stay intact.
func (s *categoryService) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	s.logger.Debug("Deleting category", "id", id.Hex())

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.eventBus.Publish(events.Event{Type: events.CategoryDeleted, ID: id.Hex()})
	return nil
}
