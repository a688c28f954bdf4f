package handler

import (
	"github.com/gin-gonic/gin"
	invoiceapp "github.com/invoiceapi/backend/internal/application/invoice"
	"github.com/invoiceapi/backend/internal/interfaces/http/dto"
)

// InvoiceHandler handles invoice lookups
type InvoiceHandler struct {
	BaseHandler
	invoiceService *invoiceapp.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *invoiceapp.InvoiceService, mode dto.ErrorMode) *InvoiceHandler {
	return &InvoiceHandler{
		BaseHandler:    BaseHandler{ErrorMode: mode},
		invoiceService: invoiceService,
	}
}

// List godoc
// @ID           listInvoices
// @Summary      List invoices
// @Description  Returns every invoice in load order
// @Tags         invoices
// @Produce      json
// @Success      200 {array} invoice.InvoiceResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoices)
}

// GetByNumber godoc
// @ID           getInvoiceByNumber
// @Summary      Get invoice by number
// @Description  Exact, case-sensitive match on INVOICENUMBER. In legacy error mode a miss returns 200 with an error body.
// @Tags         invoices
// @Produce      json
// @Param        invoice_number path string true "Invoice number" example(INV-2024-001)
// @Success      200 {object} invoice.InvoiceResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /invoices/{invoice_number} [get]
func (h *InvoiceHandler) GetByNumber(c *gin.Context) {
	inv, err := h.invoiceService.GetByNumber(c.Request.Context(), c.Param("invoice_number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inv)
}

// ListByVendor godoc
// @ID           listInvoicesByVendor
// @Summary      List invoices of a vendor
// @Description  Exact, case-sensitive match on VENDORNUMBER. Unknown vendors yield an empty array.
// @Tags         invoices
// @Produce      json
// @Param        vendor_number path string true "Vendor number" example(VEND-001)
// @Success      200 {array} invoice.InvoiceResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /invoices/vendor/{vendor_number} [get]
func (h *InvoiceHandler) ListByVendor(c *gin.Context) {
	invoices, err := h.invoiceService.ListByVendor(c.Request.Context(), c.Param("vendor_number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoices)
}
