package persistence

import (
	"context"

	"github.com/invoiceapi/backend/internal/domain/invoice"
)

// MemoryInvoiceRepository implements invoice.Repository over a fixed slice.
// The slice is written once in the constructor and only read afterwards,
// so concurrent readers need no locking.
type MemoryInvoiceRepository struct {
	invoices []invoice.Invoice
}

// NewMemoryInvoiceRepository creates a repository seeded from the given literals
func NewMemoryInvoiceRepository(seeds []InvoiceSeed) (*MemoryInvoiceRepository, error) {
	invoices, err := BuildInvoices(seeds)
	if err != nil {
		return nil, err
	}
	return &MemoryInvoiceRepository{invoices: invoices}, nil
}

// FindAll returns a copy of every invoice in insertion order
func (r *MemoryInvoiceRepository) FindAll(ctx context.Context) ([]invoice.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]invoice.Invoice, len(r.invoices))
	copy(out, r.invoices)
	return out, nil
}

// FindByNumber returns the first invoice whose number equals the input
func (r *MemoryInvoiceRepository) FindByNumber(ctx context.Context, number string) (*invoice.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range r.invoices {
		if r.invoices[i].InvoiceNumber == number {
			found := r.invoices[i]
			return &found, nil
		}
	}
	return nil, invoice.ErrInvoiceNotFound
}

// FindByVendor returns the invoices of a vendor in insertion order, never nil
func (r *MemoryInvoiceRepository) FindByVendor(ctx context.Context, vendorNumber string) ([]invoice.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]invoice.Invoice, 0)
	for i := range r.invoices {
		if r.invoices[i].BelongsToVendor(vendorNumber) {
			out = append(out, r.invoices[i])
		}
	}
	return out, nil
}

// Count returns the number of seeded invoices
func (r *MemoryInvoiceRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return len(r.invoices), nil
}
