package domain

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsValidID reports whether s is a syntactically valid store identifier
// (24 hex characters). A malformed id never reaches the store layer.
func IsValidID(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}

type Validation struct {
	validator *validator.Validate
}

func NewValidation() *Validation {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("objectid", validateObjectID)
	v.RegisterValidation("productstatus", validateProductStatus)

	// Report wire field names, not Go struct field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &Validation{validator: v}
}

func validateObjectID(fl validator.FieldLevel) bool {
	return IsValidID(fl.Field().String())
}

func validateProductStatus(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == StatusInStock || s == StatusStockOut
}

// Validate checks i against its struct tags and aggregates every violated
// field into a single validation error. It performs no I/O.
func (v *Validation) Validate(i interface{}) *Error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return NewInternalError(err)
	}

	details := make([]FieldError, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		details = append(details, FieldError{
			Field:   fe.Field(),
			Message: messageForTag(fe),
			Code:    fe.Tag(),
		})
	}

	return NewValidationError("Validation failed", details...)
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "url":
		return "must be a valid URL"
	case "objectid":
		return "must be a valid id"
	case "productstatus":
		return fmt.Sprintf("must be one of '%s', '%s'", StatusInStock, StatusStockOut)
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' constraint", fe.Tag())
	}
}
