package persistence

import (
	"context"
	"testing"

	"github.com/invoiceapi/backend/internal/domain/invoice"
	"github.com/invoiceapi/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInvoiceRepository(t *testing.T) *MemoryInvoiceRepository {
	t.Helper()
	repo, err := NewMemoryInvoiceRepository(DefaultInvoiceSeeds())
	require.NoError(t, err)
	return repo
}

func TestMemoryInvoiceRepository_FindAll(t *testing.T) {
	repo := newTestInvoiceRepository(t)
	ctx := context.Background()

	first, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, first, 3)

	// Mutating a result must not leak into the next call
	first[0].VendorName = "Mutated"

	second, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, second, 3)
	assert.Equal(t, "ABC Supply Company", second[0].VendorName)
	assert.Equal(t, "INV-2024-002", second[1].InvoiceNumber)
}

func TestMemoryInvoiceRepository_FindByNumber(t *testing.T) {
	repo := newTestInvoiceRepository(t)
	ctx := context.Background()

	t.Run("every seeded number resolves to itself", func(t *testing.T) {
		for _, seed := range DefaultInvoiceSeeds() {
			inv, err := repo.FindByNumber(ctx, seed.InvoiceNumber)
			require.NoError(t, err)
			assert.Equal(t, seed.InvoiceNumber, inv.InvoiceNumber)
		}
	})

	t.Run("INV-2024-002 is XYZ Manufacturing", func(t *testing.T) {
		inv, err := repo.FindByNumber(ctx, "INV-2024-002")
		require.NoError(t, err)
		assert.Equal(t, "XYZ Manufacturing Inc", inv.VendorName)
		assert.Equal(t, "2024-01-16", inv.FormattedDocDate())
	})

	t.Run("unknown number is not found", func(t *testing.T) {
		inv, err := repo.FindByNumber(ctx, "INV-9999")
		assert.Nil(t, inv)
		assert.ErrorIs(t, err, invoice.ErrInvoiceNotFound)
		assert.True(t, shared.IsNotFound(err))
	})

	t.Run("match is case-sensitive", func(t *testing.T) {
		_, err := repo.FindByNumber(ctx, "inv-2024-001")
		assert.True(t, shared.IsNotFound(err))
	})

	t.Run("returned pointer is detached from storage", func(t *testing.T) {
		inv, err := repo.FindByNumber(ctx, "INV-2024-001")
		require.NoError(t, err)
		inv.VendorName = "Mutated"

		again, err := repo.FindByNumber(ctx, "INV-2024-001")
		require.NoError(t, err)
		assert.Equal(t, "ABC Supply Company", again.VendorName)
	})
}

func TestMemoryInvoiceRepository_FindByVendor(t *testing.T) {
	repo := newTestInvoiceRepository(t)
	ctx := context.Background()

	t.Run("equals filtering the full list", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)

		for _, vendor := range []string{"VEND-001", "VEND-002", "VEND-003", "VEND-404", ""} {
			expected := make([]invoice.Invoice, 0)
			for _, inv := range all {
				if inv.VendorNumber == vendor {
					expected = append(expected, inv)
				}
			}

			got, err := repo.FindByVendor(ctx, vendor)
			require.NoError(t, err)
			assert.Equal(t, expected, got, "vendor %q", vendor)
		}
	})

	t.Run("absent vendor yields empty non-nil slice", func(t *testing.T) {
		got, err := repo.FindByVendor(ctx, "VEND-999")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestMemoryInvoiceRepository_CanceledContext(t *testing.T) {
	repo := newTestInvoiceRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FindAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.FindByNumber(ctx, "INV-2024-001")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.Count(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryInvoiceRepository_Count(t *testing.T) {
	repo := newTestInvoiceRepository(t)
	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
