package http

import (
	"net/http"

	"github.com/hashicorp/go-hclog"

	"github.com/kaanhvc/catalog-api/internal/domain"
	"github.com/kaanhvc/catalog-api/internal/service"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *domain.Validation
	responder      *Responder
	logger         hclog.Logger
}

func NewProductHandler(ps service.ProductService, validator *domain.Validation, responder *Responder, log hclog.Logger) *ProductHandler {
	return &ProductHandler{
		productService: ps,
		validator:      validator,
		responder:      responder,
		logger:         log,
	}
}

// CreateProduct handles POST /product
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateProductRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}
	if err := h.validator.Validate(req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	view, err := h.productService.CreateProduct(r.Context(), req)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.JSON(w, http.StatusCreated, "Product created successfully", view)
}

// ListProducts handles GET /product
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params, verr := parseListProductsParams(r.URL.Query(), h.validator)
	if verr != nil {
		h.responder.Error(w, r, verr)
		return
	}

	views, pagination, err := h.productService.ListProducts(r.Context(), params)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	// echo the applied filters and sort back in the envelope
	filters := map[string]string{}
	if params.Search != "" {
		filters["search"] = params.Search
	}
	if params.Category != "" {
		filters["category"] = params.Category
	}
	if params.Status != "" {
		filters["status"] = params.Status
	}

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	sortOrder := params.SortOrder
	if sortOrder == "" {
		sortOrder = "desc"
	}
	sort := map[string]string{"sortBy": sortBy, "sortOrder": sortOrder}

	h.responder.List(w, "Products retrieved successfully", views, pagination, filters, sort)
}

// GetProductByID handles GET /product/{id}
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, verr := pathID(r)
	if verr != nil {
		h.responder.Error(w, r, verr)
		return
	}

	view, err := h.productService.GetProductByID(r.Context(), id)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.JSON(w, http.StatusOK, "Product retrieved successfully", view)
}

// UpdateProduct handles PUT /product/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, verr := pathID(r)
	if verr != nil {
		h.responder.Error(w, r, verr)
		return
	}

	var req domain.UpdateProductRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}
	if err := h.validator.Validate(req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	view, err := h.productService.UpdateProduct(r.Context(), id, req)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.JSON(w, http.StatusOK, "Product updated successfully", view)
}

// DeleteProduct handles DELETE /product/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, verr := pathID(r)
	if verr != nil {
		h.responder.Error(w, r, verr)
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.JSON(w, http.StatusOK, "Product deleted successfully", nil)
}
