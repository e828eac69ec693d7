// Package errs provides the standardized error taxonomy for the shipment
// API. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The package defines one typed error per failure class in the API
// contract:
//   - ValidationError: malformed, missing, or out-of-range input fields
//   - InvalidIDError: structurally invalid shipment identifiers
//   - InvalidStatusTransitionError: lifecycle-graph violations
//   - InvalidQueryParamsError: semantically invalid list parameters
//   - ObjectNotFoundError: lookups for absent records
//   - DuplicateEntryError: uniqueness-constraint violations
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() producing the API-facing message text
//   - Unwrap() returning the sentinel for errors.Is classification
//
// Business-rule failures are constructed in the service layer and travel
// unmodified to the transport boundary, where Code maps them onto the
// machine-readable codes of the error envelope.
package errs
