package persistence

import (
	"fmt"
	"time"

	"github.com/invoiceapi/backend/internal/domain/invoice"
	"github.com/invoiceapi/backend/internal/domain/process"
)

// InvoiceSeed is the literal form of a seeded invoice
type InvoiceSeed struct {
	InvoiceNumber   string
	DocDate         time.Time
	VendorNumber    string
	DeliveryAddress string
	VendorName      string
	PurchaseOrder   string
}

// ProcessSeed is the literal form of a seeded process record
type ProcessSeed struct {
	DocumentType process.DocumentType
	Count        int
	ID           string
	Endpoint     string
}

// DefaultInvoiceSeeds returns the sample invoices served by the API
func DefaultInvoiceSeeds() []InvoiceSeed {
	return []InvoiceSeed{
		{
			InvoiceNumber:   "INV-2024-001",
			DocDate:         invoice.MustDate(2024, time.January, 15),
			VendorNumber:    "VEND-001",
			DeliveryAddress: "123 Main Street, New York, NY 10001",
			VendorName:      "ABC Supply Company",
			PurchaseOrder:   "PO-2024-001",
		},
		{
			InvoiceNumber:   "INV-2024-002",
			DocDate:         invoice.MustDate(2024, time.January, 16),
			VendorNumber:    "VEND-002",
			DeliveryAddress: "456 Oak Avenue, Los Angeles, CA 90210",
			VendorName:      "XYZ Manufacturing Inc",
			PurchaseOrder:   "PO-2024-002",
		},
		{
			InvoiceNumber:   "INV-2024-003",
			DocDate:         invoice.MustDate(2024, time.January, 17),
			VendorNumber:    "VEND-003",
			DeliveryAddress: "789 Pine Road, Chicago, IL 60601",
			VendorName:      "Global Tech Solutions",
			PurchaseOrder:   "PO-2024-003",
		},
	}
}

// DefaultProcessSeeds returns the sample process records served by the API
func DefaultProcessSeeds() []ProcessSeed {
	return []ProcessSeed{
		{
			DocumentType: process.DocumentTypePurchaseBill,
			Count:        1,
			ID:           "PROC-003",
			Endpoint:     "/processes/type/PurchaseBill",
		},
		{
			DocumentType: process.DocumentTypeInvoice,
			Count:        0,
			ID:           "PROC-005",
			Endpoint:     "/processes/type/Invoice",
		},
	}
}

// BuildInvoices converts seeds into invoices, enforcing unique invoice numbers
func BuildInvoices(seeds []InvoiceSeed) ([]invoice.Invoice, error) {
	seen := make(map[string]struct{}, len(seeds))
	out := make([]invoice.Invoice, 0, len(seeds))

	for i, s := range seeds {
		if _, dup := seen[s.InvoiceNumber]; dup {
			return nil, fmt.Errorf("invoice seed %d: duplicate invoice number %q", i, s.InvoiceNumber)
		}
		inv, err := invoice.NewInvoice(s.InvoiceNumber, s.DocDate, s.VendorNumber, s.DeliveryAddress, s.VendorName, s.PurchaseOrder)
		if err != nil {
			return nil, fmt.Errorf("invoice seed %d: %w", i, err)
		}
		seen[s.InvoiceNumber] = struct{}{}
		out = append(out, *inv)
	}

	return out, nil
}

// BuildProcesses converts seeds into process records, enforcing unique ids
func BuildProcesses(seeds []ProcessSeed) ([]process.Record, error) {
	seen := make(map[string]struct{}, len(seeds))
	out := make([]process.Record, 0, len(seeds))

	for i, s := range seeds {
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("process seed %d: duplicate process id %q", i, s.ID)
		}
		rec, err := process.NewRecord(s.DocumentType, s.Count, s.ID, s.Endpoint)
		if err != nil {
			return nil, fmt.Errorf("process seed %d: %w", i, err)
		}
		seen[s.ID] = struct{}{}
		out = append(out, *rec)
	}

	return out, nil
}
