package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kaanhvc/catalog-api/internal/domain"
)

// In-memory repositories mirroring the Mongo implementations' semantics,
// including the unique index on category names. They back the service and
// handler tests and run the server without a store.

type memoryCategoryRepository struct {
	categories []domain.Category
	mutex      sync.RWMutex
}

func NewMemoryCategoryRepository() CategoryRepository {
	return &memoryCategoryRepository{}
}

func (r *memoryCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	// the store's unique index on name
	for _, c := range r.categories {
		if c.Name == category.Name {
			return domain.NewDuplicateError("name", category.Name)
		}
	}

	now := time.Now().UTC()
	category.ID = primitive.NewObjectID()
	category.CreatedAt = now
	category.UpdatedAt = now
	r.categories = append(r.categories, *category)
	return nil
}

func (r *memoryCategoryRepository) List(ctx context.Context, params domain.ListCategoriesParams) ([]domain.Category, int64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	matched := []domain.Category{}
	for _, c := range r.categories {
		if params.Search != "" && !containsFold(c.Name, params.Search) && !containsFold(c.Description, params.Search) {
			continue
		}
		matched = append(matched, c)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	return pageSlice(matched, params.Page, params.Limit), total, nil
}

func (r *memoryCategoryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Category, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, c := range r.categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	return nil, domain.NewNotFoundError("Category")
}

func (r *memoryCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, c := range r.categories {
		if c.Name == category.Name && c.ID != category.ID {
			return domain.NewDuplicateError("name", category.Name)
		}
	}

	for i, c := range r.categories {
		if c.ID == category.ID {
			category.UpdatedAt = time.Now().UTC()
			r.categories[i] = *category
			return nil
		}
	}
	return domain.NewNotFoundError("Category")
}

func (r *memoryCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return domain.NewNotFoundError("Category")
}

type memoryProductRepository struct {
	products []domain.Product
	mutex    sync.RWMutex
}

func NewMemoryProductRepository() ProductRepository {
	return &memoryProductRepository{}
}

func (r *memoryProductRepository) Create(ctx context.Context, product *domain.Product) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	// the store's unique index on productCode
	for _, p := range r.products {
		if p.ProductCode == product.ProductCode {
			return domain.NewDuplicateError("productCode", product.ProductCode)
		}
	}

	now := time.Now().UTC()
	product.ID = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products = append(r.products, *product)
	return nil
}

func (r *memoryProductRepository) List(ctx context.Context, params domain.ListProductsParams) ([]domain.Product, int64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	matched := []domain.Product{}
	for _, p := range r.products {
		if params.Search != "" && !containsFold(p.Name, params.Search) && !containsFold(p.Description, params.Search) {
			continue
		}
		if params.Category != "" && p.CategoryID.Hex() != params.Category {
			continue
		}
		if params.Status != "" && p.Status != params.Status {
			continue
		}
		matched = append(matched, p)
	}

	sortProducts(matched, params.SortBy, params.SortOrder)

	total := int64(len(matched))
	return pageSlice(matched, params.Page, params.Limit), total, nil
}

func (r *memoryProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domain.NewNotFoundError("Product")
}

func (r *memoryProductRepository) FindByNameAndCategory(ctx context.Context, name string, categoryID primitive.ObjectID) (*domain.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, p := range r.products {
		if p.Name == name && p.CategoryID == categoryID {
			product := p
			return &product, nil
		}
	}
	return nil, nil
}

func (r *memoryProductRepository) Update(ctx context.Context, product *domain.Product) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, p := range r.products {
		if p.ID == product.ID {
			product.UpdatedAt = time.Now().UTC()
			r.products[i] = *product
			return nil
		}
	}
	return domain.NewNotFoundError("Product")
}

func (r *memoryProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.NewNotFoundError("Product")
}

func sortProducts(products []domain.Product, sortBy, sortOrder string) {
	less := func(a, b domain.Product) bool {
		switch sortBy {
		case "name":
			return a.Name < b.Name
		case "price":
			return a.Price < b.Price
		case "updatedAt":
			return a.UpdatedAt.Before(b.UpdatedAt)
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		if sortOrder == "asc" {
			return less(products[i], products[j])
		}
		return less(products[j], products[i])
	})
}

func pageSlice[T any](items []T, page, limit int) []T {
	start := domain.Skip(page, limit)
	if start > len(items) {
		start = len(items)
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
