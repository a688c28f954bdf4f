package process

import "context"

// Repository defines read access to the process collection.
// Results are always returned in insertion order.
type Repository interface {
	// FindAll returns every process record
	FindAll(ctx context.Context) ([]Record, error)

	// FindByID returns the first record with the given id or ErrProcessNotFound
	FindByID(ctx context.Context, id string) (*Record, error)

	// FindByType returns all records of the given document type, possibly none
	FindByType(ctx context.Context, documentType DocumentType) ([]Record, error)

	// Count returns the size of the collection
	Count(ctx context.Context) (int, error)
}
