package service

import (
	"context"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kaanhvc/catalog-api/internal/domain"
	"github.com/kaanhvc/catalog-api/internal/events"
	"github.com/kaanhvc/catalog-api/internal/repository"
)

func newCategoryService(t *testing.T) (CategoryService, *events.Bus) {
	t.Helper()
	bus := events.NewBus()
	t.Cleanup(bus.Close)
	repo := repository.NewMemoryCategoryRepository()
	return NewCategoryService(repo, bus, hclog.NewNullLogger()), bus
}

func strPtr(s string) *string { return &s }

func TestCreateCategory(t *testing.T) {
	svc, bus := newCategoryService(t)
	sub := bus.Subscribe()

	category, err := svc.CreateCategory(context.Background(), domain.CreateCategoryRequest{
		Name:        "Beverages",
		Description: "Hot and cold drinks",
	})
	require.NoError(t, err)
	assert.False(t, category.ID.IsZero())
	assert.Equal(t, "Beverages", category.Name)
	assert.False(t, category.CreatedAt.IsZero())

	event := <-sub
	assert.Equal(t, events.CategoryCreated, event.Type)
	assert.Equal(t, category.ID.Hex(), event.ID)
}

func TestCreateCategoryDuplicateNameIsConflict(t *testing.T) {
	svc, _ := newCategoryService(t)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "Beverages"})
	require.NoError(t, err)

	// the second create loses to the unique store index: 409, not 400
	_, err = svc.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "Beverages"})
	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.KindDuplicate, derr.Kind)
	assert.Equal(t, 409, derr.Kind.Status())
}

func TestUpdateCategoryPartialPatch(t *testing.T) {
	svc, _ := newCategoryService(t)
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, domain.CreateCategoryRequest{
		Name:        "Beverages",
		Description: "Drinks",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateCategory(ctx, category.ID, domain.UpdateCategoryRequest{
		Description: strPtr("Hot and cold drinks"),
	})
	require.NoError(t, err)

	// absent fields stay untouched
	assert.Equal(t, "Beverages", updated.Name)
	assert.Equal(t, "Hot and cold drinks", updated.Description)
	assert.True(t, updated.UpdatedAt.After(category.CreatedAt) || updated.UpdatedAt.Equal(category.CreatedAt))
}

func TestUpdateCategoryNotFound(t *testing.T) {
	svc, _ := newCategoryService(t)

	_, err := svc.UpdateCategory(context.Background(), primitive.NewObjectID(), domain.UpdateCategoryRequest{
		Name: strPtr("Anything"),
	})

	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.KindNotFound, derr.Kind)
}

func TestDeleteCategory(t *testing.T) {
	svc, _ := newCategoryService(t)
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "Beverages"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, category.ID))

	_, err = svc.GetCategoryByID(ctx, category.ID)
	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.KindNotFound, derr.Kind)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	svc, _ := newCategoryService(t)

	err := svc.DeleteCategory(context.Background(), primitive.NewObjectID())
	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.KindNotFound, derr.Kind)
}

func TestListCategoriesPagination(t *testing.T) {
	svc, _ := newCategoryService(t)
	ctx := context.Background()

	for _, name := range []string{"Beverages", "Snacks", "Bakery", "Dairy", "Frozen"} {
		_, err := svc.CreateCategory(ctx, domain.CreateCategoryRequest{Name: name})
		require.NoError(t, err)
	}

	categories, pagination, err := svc.ListCategories(ctx, domain.ListCategoriesParams{Page: 2, Limit: 2})
	require.NoError(t, err)

	assert.Len(t, categories, 2)
	assert.Equal(t, 2, pagination.CurrentPage)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.Equal(t, int64(5), pagination.TotalItems)
	assert.True(t, pagination.HasNextPage)
	assert.True(t, pagination.HasPrevPage)
}
