package invoice

import "context"

// Repository defines read access to the invoice collection.
// Results are always returned in insertion order.
type Repository interface {
	// FindAll returns every invoice
	FindAll(ctx context.Context) ([]Invoice, error)

	// FindByNumber returns the first invoice with the given number or ErrInvoiceNotFound
	FindByNumber(ctx context.Context, number string) (*Invoice, error)

	// FindByVendor returns all invoices issued by the given vendor, possibly none
	FindByVendor(ctx context.Context, vendorNumber string) ([]Invoice, error)

	// Count returns the size of the collection
	Count(ctx context.Context) (int, error)
}
