package invoice

import "github.com/invoiceapi/backend/internal/domain/invoice"

// InvoiceResponse is the wire shape consumed by the RPA client.
// Field names are upper case on the wire.
type InvoiceResponse struct {
	InvoiceNumber   string `json:"INVOICENUMBER" example:"INV-2024-001"`
	DocDate         string `json:"DOCDATE" example:"2024-01-15"`
	VendorNumber    string `json:"VENDORNUMBER" example:"VEND-001"`
	DeliveryAddress string `json:"DELIVERYADDRESS" example:"123 Main Street, New York, NY 10001"`
	VendorName      string `json:"VENDORNAME" example:"ABC Supply Company"`
	PurchaseOrder   string `json:"PURCHASEORDER" example:"PO-2024-001"`
}

// ToInvoiceResponse converts a domain Invoice to its response shape
func ToInvoiceResponse(inv *invoice.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceNumber:   inv.InvoiceNumber,
		DocDate:         inv.FormattedDocDate(),
		VendorNumber:    inv.VendorNumber,
		DeliveryAddress: inv.DeliveryAddress,
		VendorName:      inv.VendorName,
		PurchaseOrder:   inv.PurchaseOrder,
	}
}

// ToInvoiceResponses converts a slice, never returning nil
func ToInvoiceResponses(invoices []invoice.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		out = append(out, ToInvoiceResponse(&invoices[i]))
	}
	return out
}
