package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"shipments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	t.Run("carries_field_details", func(t *testing.T) {
		err := errs.NewValidationError("Validation failed",
			errs.FieldError{Field: "senderName", Message: "Sender name is required"},
			errs.FieldError{Field: "origin", Message: "Origin must be at least 2 characters"},
		)

		assert.Equal(t, "Validation failed", err.Error())
		require.Len(t, err.Details, 2)
		assert.Equal(t, "senderName", err.Details[0].Field)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("includes_cause_in_message", func(t *testing.T) {
		cause := errors.New("unexpected token")
		err := errs.NewValidationErrorWithCause("Invalid JSON in request body", cause)

		assert.Contains(t, err.Error(), "Invalid JSON in request body")
		assert.Contains(t, err.Error(), "unexpected token")
	})
}

func TestInvalidIDError(t *testing.T) {
	err := errs.NewInvalidIDError("not-an-id")

	assert.Equal(t, "Invalid shipment ID: not-an-id", err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidID)
}

func TestInvalidStatusTransitionError(t *testing.T) {
	t.Run("lists_allowed_transitions", func(t *testing.T) {
		err := errs.NewInvalidStatusTransitionError("pending", "delivered", []string{"in_transit", "cancelled"})

		assert.Equal(t,
			"Invalid status transition from 'pending' to 'delivered'. Allowed transitions: in_transit, cancelled",
			err.Error(),
		)
		require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
	})

	t.Run("terminal_state_yields_final_state_message", func(t *testing.T) {
		err := errs.NewInvalidStatusTransitionError("delivered", "pending", nil)

		assert.Equal(t, "Cannot change status from 'delivered'. This is a final state.", err.Error())
	})
}

func TestObjectNotFoundError(t *testing.T) {
	err := errs.NewObjectNotFoundError("Shipment")

	assert.Equal(t, "Shipment not found", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDuplicateEntryError(t *testing.T) {
	err := errs.NewDuplicateEntryError("trackingNumber", "SHP-20260115-ABCD1234")

	assert.Equal(t, "Duplicate value for trackingNumber: SHP-20260115-ABCD1234", err.Error())
	require.ErrorIs(t, err, errs.ErrDuplicateEntry)
}

func TestCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{"validation", errs.NewValidationError("Validation failed"), errs.CodeValidationError},
		{"invalid_id", errs.NewInvalidIDError("x"), errs.CodeInvalidID},
		{"transition", errs.NewInvalidStatusTransitionError("delivered", "pending", nil), errs.CodeInvalidStatusTransition},
		{"query_params", errs.NewInvalidQueryParamsError("Invalid sortBy field: volume"), errs.CodeInvalidQueryParams},
		{"not_found", errs.NewObjectNotFoundError("Shipment"), errs.CodeResourceNotFound},
		{"duplicate", errs.NewDuplicateEntryError("trackingNumber", "x"), errs.CodeDuplicateEntry},
		{"unknown", errors.New("boom"), errs.CodeInternalError},
		{"nil", nil, errs.CodeInternalError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errs.Code(tc.err))
		})
	}
}

func TestCode_SurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", errs.NewObjectNotFoundError("Shipment"))

	assert.Equal(t, errs.CodeResourceNotFound, errs.Code(wrapped))
}
