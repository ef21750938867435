package http

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"

	"github.com/kaanhvc/catalog-api/internal/domain"
)

func TestNormalizePassesDomainErrorsThrough(t *testing.T) {
	original := domain.NewNotFoundError("Category")

	normalized := Normalize(fmt.Errorf("service: %w", original))

	assert.Same(t, original, normalized)
}

func TestNormalizeClassifiesDriverErrors(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		kind   domain.ErrorKind
		status int
	}{
		{"No documents", mongo.ErrNoDocuments, domain.KindNotFound, 404},
		{"Wrapped no documents", fmt.Errorf("decode: %w", mongo.ErrNoDocuments), domain.KindNotFound, 404},
		{"Invalid hex id", primitive.ErrInvalidHex, domain.KindValidation, 400},
		{"Server selection", topology.ServerSelectionError{Wrapped: errors.New("no reachable servers")}, domain.KindDatabase, 503},
		{"Anything else", errors.New("boom"), domain.KindInternal, 500},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			normalized := Normalize(tc.err)
			require.NotNil(t, normalized)
			assert.Equal(t, tc.kind, normalized.Kind)
			assert.Equal(t, tc.status, normalized.Kind.Status())
		})
	}
}

func TestNormalizeNamesMalformedIDField(t *testing.T) {
	normalized := Normalize(primitive.ErrInvalidHex)

	require.Len(t, normalized.Details, 1)
	assert.Equal(t, "id", normalized.Details[0].Field)
}
