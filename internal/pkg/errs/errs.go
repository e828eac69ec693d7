package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the application's failure taxonomy. Every typed error
// in this package unwraps to exactly one of them, so callers classify with
// errors.Is and extract detail with errors.As.
var (
	ErrValidation              = errors.New("validation failed")
	ErrInvalidID               = errors.New("invalid id")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidQueryParams      = errors.New("invalid query params")
	ErrObjectNotFound          = errors.New("object not found")
	ErrDuplicateEntry          = errors.New("duplicate entry")
)

// Machine-readable error codes surfaced in the API error envelope.
const (
	CodeValidationError         = "VALIDATION_ERROR"
	CodeInvalidID               = "INVALID_ID"
	CodeInvalidStatusTransition = "INVALID_STATUS_TRANSITION"
	CodeInvalidQueryParams      = "INVALID_QUERY_PARAMS"
	CodeResourceNotFound        = "RESOURCE_NOT_FOUND"
	CodeDuplicateEntry          = "DUPLICATE_ENTRY"
	CodeInternalError           = "INTERNAL_ERROR"
)

// FieldError describes a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports malformed, missing, or out-of-range input fields.
type ValidationError struct {
	Message string
	Details []FieldError
	Cause   error
}

// NewValidationError creates a ValidationError with optional field details.
func NewValidationError(message string, details ...FieldError) *ValidationError {
	return &ValidationError{Message: message, Details: details}
}

// NewValidationErrorWithCause creates a ValidationError wrapping an
// underlying cause.
func NewValidationErrorWithCause(message string, cause error, details ...FieldError) *ValidationError {
	return &ValidationError{Message: message, Details: details, Cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// InvalidIDError reports a structurally malformed shipment identifier.
type InvalidIDError struct {
	ID    string
	Cause error
}

// NewInvalidIDError creates an InvalidIDError for the given raw identifier.
func NewInvalidIDError(id string) *InvalidIDError {
	return &InvalidIDError{ID: id}
}

// NewInvalidIDErrorWithCause creates an InvalidIDError wrapping an
// underlying cause.
func NewInvalidIDErrorWithCause(id string, cause error) *InvalidIDError {
	return &InvalidIDError{ID: id, Cause: cause}
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("Invalid shipment ID: %s", e.ID)
}

func (e *InvalidIDError) Unwrap() error {
	return ErrInvalidID
}

// InvalidStatusTransitionError reports an update that requested a status
// change not permitted by the lifecycle graph. It carries the current
// status, the attempted status, and the transitions allowed from current.
type InvalidStatusTransitionError struct {
	Current   string
	Attempted string
	Allowed   []string
}

// NewInvalidStatusTransitionError creates an InvalidStatusTransitionError.
func NewInvalidStatusTransitionError(current, attempted string, allowed []string) *InvalidStatusTransitionError {
	return &InvalidStatusTransitionError{Current: current, Attempted: attempted, Allowed: allowed}
}

func (e *InvalidStatusTransitionError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("Cannot change status from '%s'. This is a final state.", e.Current)
	}
	return fmt.Sprintf(
		"Invalid status transition from '%s' to '%s'. Allowed transitions: %s",
		e.Current, e.Attempted, strings.Join(e.Allowed, ", "),
	)
}

func (e *InvalidStatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// InvalidQueryParamsError reports semantically invalid list parameters
// (bad sort field, unknown status filter, malformed or inverted dates).
type InvalidQueryParamsError struct {
	Message string
}

// NewInvalidQueryParamsError creates an InvalidQueryParamsError.
func NewInvalidQueryParamsError(message string) *InvalidQueryParamsError {
	return &InvalidQueryParamsError{Message: message}
}

func (e *InvalidQueryParamsError) Error() string {
	return e.Message
}

func (e *InvalidQueryParamsError) Unwrap() error {
	return ErrInvalidQueryParams
}

// ObjectNotFoundError reports a lookup for a record that does not exist.
type ObjectNotFoundError struct {
	Resource string
	Cause    error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named
// resource, e.g. "Shipment".
func NewObjectNotFoundError(resource string) *ObjectNotFoundError {
	return &ObjectNotFoundError{Resource: resource}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping
// an underlying cause.
func NewObjectNotFoundErrorWithCause(resource string, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{Resource: resource, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// DuplicateEntryError reports a uniqueness-constraint violation from the
// persistence layer, e.g. a tracking-number collision.
type DuplicateEntryError struct {
	Field string
	Value string
	Cause error
}

// NewDuplicateEntryError creates a DuplicateEntryError for the given field.
func NewDuplicateEntryError(field, value string) *DuplicateEntryError {
	return &DuplicateEntryError{Field: field, Value: value}
}

// NewDuplicateEntryErrorWithCause creates a DuplicateEntryError wrapping an
// underlying cause.
func NewDuplicateEntryErrorWithCause(field, value string, cause error) *DuplicateEntryError {
	return &DuplicateEntryError{Field: field, Value: value, Cause: cause}
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("Duplicate value for %s: %s", e.Field, e.Value)
}

func (e *DuplicateEntryError) Unwrap() error {
	return ErrDuplicateEntry
}

// Code classifies err into one of the machine-readable error codes.
// Unrecognized errors map to CodeInternalError.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidationError
	case errors.Is(err, ErrInvalidID):
		return CodeInvalidID
	case errors.Is(err, ErrInvalidStatusTransition):
		return CodeInvalidStatusTransition
	case errors.Is(err, ErrInvalidQueryParams):
		return CodeInvalidQueryParams
	case errors.Is(err, ErrObjectNotFound):
		return CodeResourceNotFound
	case errors.Is(err, ErrDuplicateEntry):
		return CodeDuplicateEntry
	default:
		return CodeInternalError
	}
}
