package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/hashicorp/go-hclog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"

	"github.com/kaanhvc/catalog-api/internal/domain"
)

// SuccessResponse is the envelope for every 2xx response.
type SuccessResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Data       interface{}        `json:"data"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
	Filters    interface{}        `json:"filters,omitempty"`
	Sort       interface{}        `json:"sort,omitempty"`
}

// ErrorBody is the error section of the failure envelope.
type ErrorBody struct {
	Type    domain.ErrorKind    `json:"type"`
	Message string              `json:"message"`
	Code    string              `json:"code,omitempty"`
	Details []domain.FieldError `json:"details,omitempty"`
	Stack   string              `json:"stack,omitempty"`
}

// ErrorResponse is the envelope for every non-2xx response.
type ErrorResponse struct {
	Success   bool      `json:"success"`
	Error     ErrorBody `json:"error"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
	Method    string    `json:"method"`
}

// Responder is the single exit point for responses. Every failure from any
// layer funnels through Error; no handler formats its own error body.
type Responder struct {
	logger       hclog.Logger
	includeStack bool
}

func NewResponder(logger hclog.Logger, includeStack bool) *Responder {
	return &Responder{logger: logger, includeStack: includeStack}
}

func (rs *Responder) JSON(w http.ResponseWriter, status int, message string, data interface{}) {
	rs.write(w, status, SuccessResponse{Success: true, Message: message, Data: data})
}

// List writes a listing envelope echoing the applied pagination, filters
// and sort.
func (rs *Responder) List(w http.ResponseWriter, message string, data interface{}, pagination domain.Pagination, filters, sort interface{}) {
	rs.write(w, http.StatusOK, SuccessResponse{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: &pagination,
		Filters:    filters,
		Sort:       sort,
	})
}

func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	derr := Normalize(err)
	status := derr.Kind.Status()

	if status >= http.StatusInternalServerError {
		rs.logger.Error("Request failed",
			"method", r.Method,
			"url", r.URL.String(),
			"query", r.URL.RawQuery,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
			"timestamp", time.Now().UTC(),
			"error", err,
		)
	}

	body := ErrorBody{
		Type:    derr.Kind,
		Message: derr.Message,
		Code:    derr.Code,
		Details: derr.Details,
	}
	if rs.includeStack && status >= http.StatusInternalServerError {
		body.Stack = string(debug.Stack())
	}

	rs.write(w, status, ErrorResponse{
		Success:   false,
		Error:     body,
		Timestamp: time.Now().UTC(),
		Path:      r.URL.Path,
		Method:    r.Method,
	})
}

func (rs *Responder) write(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		rs.logger.Error("Error encoding response", "error", err)
	}
}

// Normalize maps any failure onto the error taxonomy. Domain errors pass
// through; raw driver errors that escape the repositories are classified
// here so every failure source shares one wire format.
func Normalize(err error) *domain.Error {
	var derr *domain.Error
	if errors.As(err, &derr) {
		return derr
	}

	if mongo.IsDuplicateKeyError(err) {
		return &domain.Error{Kind: domain.KindDuplicate, Message: "Duplicate value violates a unique index"}
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.NewNotFoundError("Resource")
	}

	// a malformed identifier that slipped past validation is still a client
	// error, not a server fault
	if errors.Is(err, primitive.ErrInvalidHex) {
		return domain.NewValidationError("Validation failed",
			domain.FieldError{Field: "id", Message: "must be a valid id", Code: "objectid"})
	}

	var selectionErr topology.ServerSelectionError
	if errors.As(err, &selectionErr) || mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return domain.NewDatabaseError(err)
	}

	return domain.NewInternalError(err)
}
