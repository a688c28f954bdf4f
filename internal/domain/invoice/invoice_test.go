package invoice

import (
	"testing"
	"time"

	"github.com/invoiceapi/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoice(t *testing.T) {
	t.Run("creates invoice with calendar date", func(t *testing.T) {
		docDate := time.Date(2024, time.January, 15, 13, 45, 0, 0, time.FixedZone("EST", -5*3600))

		inv, err := NewInvoice("INV-1", docDate, "VEND-001", "1 Road", "ACME", "PO-1")
		require.NoError(t, err)

		assert.Equal(t, "INV-1", inv.InvoiceNumber)
		assert.Equal(t, "2024-01-15", inv.FormattedDocDate())
		assert.Equal(t, time.UTC, inv.DocDate.Location())
		assert.Equal(t, "VEND-001", inv.VendorNumber)
		assert.Equal(t, "1 Road", inv.DeliveryAddress)
		assert.Equal(t, "ACME", inv.VendorName)
		assert.Equal(t, "PO-1", inv.PurchaseOrder)
	})

	t.Run("rejects empty number", func(t *testing.T) {
		_, err := NewInvoice("  ", MustDate(2024, time.January, 1), "V", "A", "N", "P")
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeInvalidSeed, domainErr.Code)
	})

	t.Run("rejects zero date", func(t *testing.T) {
		_, err := NewInvoice("INV-1", time.Time{}, "V", "A", "N", "P")
		assert.Error(t, err)
	})
}

func TestInvoice_BelongsToVendor(t *testing.T) {
	inv, err := NewInvoice("INV-1", MustDate(2024, time.January, 1), "VEND-001", "A", "N", "P")
	require.NoError(t, err)

	assert.True(t, inv.BelongsToVendor("VEND-001"))
	assert.False(t, inv.BelongsToVendor("vend-001"))
	assert.False(t, inv.BelongsToVendor("VEND-0011"))
	assert.False(t, inv.BelongsToVendor(""))
}

func TestErrInvoiceNotFound(t *testing.T) {
	assert.True(t, shared.IsNotFound(ErrInvoiceNotFound))
	assert.Equal(t, "Invoice not found", ErrInvoiceNotFound.Error())
}
