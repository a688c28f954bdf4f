package invoice

import (
	"strings"
	"time"

	"github.com/invoiceapi/backend/internal/domain/shared"
)

// DateLayout is the calendar-date layout used for DocDate on the wire
const DateLayout = "2006-01-02"

// ErrInvoiceNotFound is returned when no invoice matches the requested number
var ErrInvoiceNotFound = shared.NewDomainError(shared.CodeNotFound, "Invoice not found")

// Invoice is a billing record tied to a vendor and a purchase order.
// Instances are created once from the seed list and never mutated.
type Invoice struct {
	InvoiceNumber   string
	DocDate         time.Time
	VendorNumber    string
	DeliveryAddress string
	VendorName      string
	PurchaseOrder   string
}

// NewInvoice creates an invoice, normalizing the document date to a calendar day in UTC
func NewInvoice(number string, docDate time.Time, vendorNumber, deliveryAddress, vendorName, purchaseOrder string) (*Invoice, error) {
	if strings.TrimSpace(number) == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidSeed, "invoice number cannot be empty")
	}
	if docDate.IsZero() {
		return nil, shared.NewDomainError(shared.CodeInvalidSeed, "invoice document date cannot be empty")
	}

	return &Invoice{
		InvoiceNumber:   number,
		DocDate:         time.Date(docDate.Year(), docDate.Month(), docDate.Day(), 0, 0, 0, 0, time.UTC),
		VendorNumber:    vendorNumber,
		DeliveryAddress: deliveryAddress,
		VendorName:      vendorName,
		PurchaseOrder:   purchaseOrder,
	}, nil
}

// MustDate builds a UTC calendar date, used for literal seed data
func MustDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// FormattedDocDate returns the document date as an ISO-8601 calendar date
func (i *Invoice) FormattedDocDate() string {
	return i.DocDate.Format(DateLayout)
}

// BelongsToVendor reports whether the invoice was issued by the given vendor.
// Comparison is exact and case-sensitive.
func (i *Invoice) BelongsToVendor(vendorNumber string) bool {
	return i.VendorNumber == vendorNumber
}
