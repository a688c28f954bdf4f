package persistence

import (
	"context"

	"github.com/invoiceapi/backend/internal/domain/process"
)

// MemoryProcessRepository implements process.Repository over a fixed slice
type MemoryProcessRepository struct {
	records []process.Record
}

// NewMemoryProcessRepository creates a repository seeded from the given literals
func NewMemoryProcessRepository(seeds []ProcessSeed) (*MemoryProcessRepository, error) {
	records, err := BuildProcesses(seeds)
	if err != nil {
		return nil, err
	}
	return &MemoryProcessRepository{records: records}, nil
}

// FindAll returns a copy of every record in insertion order
func (r *MemoryProcessRepository) FindAll(ctx context.Context) ([]process.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]process.Record, len(r.records))
	copy(out, r.records)
	return out, nil
}

// FindByID returns the first record whose id equals the input
func (r *MemoryProcessRepository) FindByID(ctx context.Context, id string) (*process.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range r.records {
		if r.records[i].ID == id {
			found := r.records[i]
			return &found, nil
		}
	}
	return nil, process.ErrProcessNotFound
}

// FindByType returns the records of one document type in insertion order, never nil
func (r *MemoryProcessRepository) FindByType(ctx context.Context, documentType process.DocumentType) ([]process.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]process.Record, 0)
	for i := range r.records {
		if r.records[i].HasType(documentType) {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}

// Count returns the number of seeded records
func (r *MemoryProcessRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return len(r.records), nil
}
