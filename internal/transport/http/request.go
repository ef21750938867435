package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kaanhvc/catalog-api/internal/domain"
)

// Listing defaults.
const (
	defaultPage  = 1
	defaultLimit = 10
)

// Query values arrive as strings; only plain digit runs are coerced.
var digitsOnly = regexp.MustCompile(`^\d+$`)

func decodeJSONBody(r *http.Request, dst interface{}) *domain.Error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("Invalid request body",
			domain.FieldError{Field: "body", Message: "must be valid JSON", Code: "json"})
	}
	return nil
}

// pathID validates the {id} path parameter against the store's native id
// shape. A malformed id is a validation failure and never reaches the store.
func pathID(r *http.Request) (primitive.ObjectID, *domain.Error) {
	raw := mux.Vars(r)["id"]
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, domain.NewValidationError("Validation failed",
			domain.FieldError{Field: "id", Message: "must be a valid id", Code: "objectid"})
	}
	return id, nil
}

// coercePositiveInt coerces a numeric query parameter, collecting a field
// error when the raw value is not a digit run.
func coercePositiveInt(field, raw string, fallback int, details *[]domain.FieldError) int {
	if raw == "" {
		return fallback
	}
	if !digitsOnly.MatchString(raw) {
		*details = append(*details, domain.FieldError{
			Field:   field,
			Message: "must be a positive integer",
			Code:    "numeric",
		})
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*details = append(*details, domain.FieldError{
			Field:   field,
			Message: "must be a positive integer",
			Code:    "numeric",
		})
		return fallback
	}
	return n
}

// parseListProductsParams coerces and validates the listing query. All
// violations, coercion and constraint alike, aggregate into one error.
func parseListProductsParams(query url.Values, v *domain.Validation) (domain.ListProductsParams, *domain.Error) {
	var details []domain.FieldError

	params := domain.ListProductsParams{
		Page:      coercePositiveInt("page", query.Get("page"), defaultPage, &details),
		Limit:     coercePositiveInt("limit", query.Get("limit"), defaultLimit, &details),
		Search:    query.Get("search"),
		Category:  query.Get("category"),
		Status:    query.Get("status"),
		SortBy:    query.Get("sortBy"),
		SortOrder: query.Get("sortOrder"),
	}

	if err := v.Validate(params); err != nil {
		details = append(details, err.Details...)
	}
	if len(details) > 0 {
		return params, domain.NewValidationError("Validation failed", details...)
	}
	return params, nil
}

func parseListCategoriesParams(query url.Values, v *domain.Validation) (domain.ListCategoriesParams, *domain.Error) {
	var details []domain.FieldError

	params := domain.ListCategoriesParams{
		Page:   coercePositiveInt("page", query.Get("page"), defaultPage, &details),
		Limit:  coercePositiveInt("limit", query.Get("limit"), defaultLimit, &details),
		Search: query.Get("search"),
	}

	if err := v.Validate(params); err != nil {
		details = append(details, err.Details...)
	}
	if len(details) > 0 {
		return params, domain.NewValidationError("Validation failed", details...)
	}
	return params, nil
}
