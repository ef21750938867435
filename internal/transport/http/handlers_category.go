package http

import (
	"net/http"

	"github.com/hashicorp/go-hclog"

	"github.com/kaanhvc/catalog-api/internal/domain"
	"github.com/kaanhvc/catalog-api/internal/service"
)

type CategoryHandler struct {
	categoryService service.CategoryService
	validator       *domain.Validation
	responder       *Responder
	logger          hclog.Logger
}

func NewCategoryHandler(cs service.CategoryService, validator *domain.Validation, responder *Responder, log hclog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: cs,
		validator:       validator,
		responder:       responder,
		logger:          log,
	}
}

// CreateCategory handles POST /category
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCategoryRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}
	if err := h.validator.Validate(req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	category, err := h.categoryService.CreateCategory(r.Context(), req)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.JSON(w, http.StatusCreated, "Category created successfully", category)
}

// ListCategories handles GET /category
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	params, verr := parseListCategoriesParams(r.URL.Query(), h.validator)
	if verr != nil {
		h.responder.Error(w, r, verr)
		return
	}

	categories, pagination, err := h.categoryService.ListCategories(r.Context(), params)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	filters := map[string]string{}
	if params.Search != "" {
		filters["search"] = params.Search
	}
	sort := map[string]string{"sortBy": "createdAt", "sortOrder": "desc"}

	h.responder.List(w, "Categories retrieved successfully", categories, pagination, filters, sort)
}

// GetCategoryByID handles GET /category/{id}
func (h *CategoryHandler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	id, verr := pathID(r)
	if verr != nil {
		h.responder.Error(w, r, verr)
		return
	}

	category, err := h.categoryService.GetCategoryByID(r.Context(), id)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.JSON(w, http.StatusOK, "Category retrieved successfully", category)
}

// UpdateCategory handles PUT /category/{id}
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, verr := pathID(r)
	if verr != nil {
		h.responder.Error(w, r, verr)
		return
	}

	var req domain.UpdateCategoryRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}
	if err := h.validator.Validate(req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	category, err := h.categoryService.UpdateCategory(r.Context(), id, req)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.JSON(w, http.StatusOK, "Category updated successfully", category)
}

// DeleteCategory handles DELETE /category/{id}
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, verr := pathID(r)
	if verr != nil {
		h.responder.Error(w, r, verr)
		return
	}

	if err := h.categoryService.DeleteCategory(r.Context(), id); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.JSON(w, http.StatusOK, "Category deleted successfully", nil)
}
