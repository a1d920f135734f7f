package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no document exists under the given id.
var ErrNotFound = errors.New("document not found")

// Range is an exclusive lower bound on a string-valued field. Timestamps are
// fixed-width RFC3339 strings, so lexicographic comparison orders them
// correctly.
type Range struct {
	Field string
	After string
}

// Query selects documents in a collection by field equality, set membership
// and an optional range bound, with ordering and an optional limit.
type Query struct {
	Equals     map[string]string // field == value
	Contains   map[string]string // value ∈ set-valued field
	Range      *Range
	OrderBy    string
	Descending bool
	Limit      int
}

// SetOp is a single atomic set-membership mutation. Ops passed together to
// ApplySetOps are applied transactionally across documents.
type SetOp struct {
	Collection string
	ID         string
	Field      string
	Value      string
	Remove     bool
}

// Store is the document store contract: get/put/delete by id, atomic set
// add/remove on array fields, atomic ordered append, partial field updates
// and query by field. Set mutations are idempotent: adding a present value
// or removing an absent one is a no-op.
type Store interface {
	Get(ctx context.Context, collection, id string, out interface{}) error
	Put(ctx context.Context, collection, id string, doc interface{}) error
	Delete(ctx context.Context, collection, id string) error

	AddToSet(ctx context.Context, collection, id, field, value string) error
	RemoveFromSet(ctx context.Context, collection, id, field, value string) error
	ApplySetOps(ctx context.Context, ops ...SetOp) error

	AppendToList(ctx context.Context, collection, id, field string, value interface{}) error
	UpdateFields(ctx context.Context, collection, id string, fields map[string]interface{}) error

	Query(ctx context.Context, collection string, q Query, out interface{}) error
}
