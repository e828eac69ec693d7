package kernel

import (
	"shipments/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrIDIsNotConstructed indicates that an ID was not initialized through
// one of the constructor functions. It is returned when validating a
// zero-value ID.
var ErrIDIsNotConstructed = errs.NewInvalidIDError("ID must be created via NewID or IDFromString")

// ID is a value object wrapping the store-assigned shipment identifier.
// The wire format is a 24-character lowercase hexadecimal string (a
// document-store object id). ID is immutable; the zero value is invalid
// and must be constructed via NewID or IDFromString.
type ID struct {
	id primitive.ObjectID
}

// NewID generates a fresh identifier. Used by store adapters when
// persisting a new shipment; identifiers are never client-supplied.
func NewID() ID {
	return ID{id: primitive.NewObjectID()}
}

// IDFromString parses an identifier from its 24-hex-character string form.
// Returns an InvalidIDError for any other input.
func IDFromString(s string) (ID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return ID{}, errs.NewInvalidIDErrorWithCause(s, err)
	}
	return ID{id: oid}, nil
}

// RestoreID wraps a driver-level object id loaded from the store.
func RestoreID(oid primitive.ObjectID) ID {
	return ID{id: oid}
}

// IsValidID reports whether s is a structurally valid identifier. It is
// the boundary-level precheck that runs before any lookup is attempted.
func IsValidID(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}

// String returns the canonical 24-character hexadecimal representation.
func (i ID) String() string {
	return i.id.Hex()
}

// ObjectID exposes the underlying driver type for store adapters.
func (i ID) ObjectID() primitive.ObjectID {
	return i.id
}

// IsEqual compares two IDs for equality.
func (i ID) IsEqual(other ID) bool {
	return i.id == other.id
}

// IsZero reports whether the ID is the zero value, i.e. not yet assigned
// by the persistence layer.
func (i ID) IsZero() bool {
	return i.id.IsZero()
}

// Validate checks that the ID was properly constructed. Returns
// ErrIDIsNotConstructed for a zero value.
func (i ID) Validate() error {
	if i.id.IsZero() {
		return ErrIDIsNotConstructed
	}
	return nil
}
