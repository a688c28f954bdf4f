package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	invoiceapp "github.com/invoiceapi/backend/internal/application/invoice"
	processapp "github.com/invoiceapi/backend/internal/application/process"
	"github.com/invoiceapi/backend/internal/infrastructure/persistence"
	"github.com/invoiceapi/backend/internal/interfaces/http/dto"
	"github.com/invoiceapi/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := middleware.SetupValidator(); err != nil {
		panic(err)
	}
	m.Run()
}

func newServices(t *testing.T) (*invoiceapp.InvoiceService, *processapp.ProcessService) {
	t.Helper()
	invoiceRepo, err := persistence.NewMemoryInvoiceRepository(persistence.DefaultInvoiceSeeds())
	require.NoError(t, err)
	processRepo, err := persistence.NewMemoryProcessRepository(persistence.DefaultProcessSeeds())
	require.NoError(t, err)
	return invoiceapp.NewInvoiceService(invoiceRepo), processapp.NewProcessService(processRepo)
}

func newRouter(t *testing.T, mode dto.ErrorMode) *gin.Engine {
	t.Helper()
	invoices, processes := newServices(t)
	ih := NewInvoiceHandler(invoices, mode)
	ph := NewProcessHandler(processes, mode)

	r := gin.New()
	r.GET("/", NewRootHandler().Welcome)
	r.GET("/invoices", ih.List)
	r.GET("/invoices/:invoice_number", ih.GetByNumber)
	r.GET("/invoices/vendor/:vendor_number", ih.ListByVendor)
	r.GET("/processes", ph.List)
	r.GET("/processes/:process_id", ph.GetByID)
	r.GET("/processes/type/:document_type", ph.ListByType)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRootHandler_Welcome(t *testing.T) {
	w := get(newRouter(t, dto.ErrorModeStrict), "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Welcome to the Invoice API"}`, w.Body.String())
}

func TestInvoiceHandler_List(t *testing.T) {
	w := get(newRouter(t, dto.ErrorModeStrict), "/invoices")
	require.Equal(t, http.StatusOK, w.Code)

	var got []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, map[string]string{
		"INVOICENUMBER":   "INV-2024-001",
		"DOCDATE":         "2024-01-15",
		"VENDORNUMBER":    "VEND-001",
		"DELIVERYADDRESS": "123 Main Street, New York, NY 10001",
		"VENDORNAME":      "ABC Supply Company",
		"PURCHASEORDER":   "PO-2024-001",
	}, got[0])
	assert.Equal(t, "INV-2024-003", got[2]["INVOICENUMBER"])
}

func TestInvoiceHandler_GetByNumber(t *testing.T) {
	tests := []struct {
		name       string
		mode       dto.ErrorMode
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "found",
			mode:       dto.ErrorModeStrict,
			path:       "/invoices/INV-2024-002",
			wantStatus: http.StatusOK,
			wantBody: `{"INVOICENUMBER":"INV-2024-002","DOCDATE":"2024-01-16","VENDORNUMBER":"VEND-002",
				"DELIVERYADDRESS":"456 Oak Avenue, Los Angeles, CA 90210","VENDORNAME":"XYZ Manufacturing Inc","PURCHASEORDER":"PO-2024-002"}`,
		},
		{
			name:       "missing strict",
			mode:       dto.ErrorModeStrict,
			path:       "/invoices/INV-9999",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Invoice not found"}`,
		},
		{
			name:       "missing legacy",
			mode:       dto.ErrorModeLegacy,
			path:       "/invoices/INV-9999",
			wantStatus: http.StatusOK,
			wantBody:   `{"error":"Invoice not found"}`,
		},
		{
			name:       "case sensitive",
			mode:       dto.ErrorModeStrict,
			path:       "/invoices/inv-2024-001",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Invoice not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(newRouter(t, tt.mode), tt.path)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestInvoiceHandler_ListByVendor(t *testing.T) {
	r := newRouter(t, dto.ErrorModeStrict)

	w := get(r, "/invoices/vendor/VEND-003")
	require.Equal(t, http.StatusOK, w.Code)
	var got []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Global Tech Solutions", got[0]["VENDORNAME"])

	w = get(r, "/invoices/vendor/VEND-999")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestProcessHandler(t *testing.T) {
	strict := newRouter(t, dto.ErrorModeStrict)
	legacy := newRouter(t, dto.ErrorModeLegacy)

	t.Run("list", func(t *testing.T) {
		w := get(strict, "/processes")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[
			{"document_type":"PurchaseBill","count":1,"id":"PROC-003","endpoint":"/processes/type/PurchaseBill"},
			{"document_type":"Invoice","count":0,"id":"PROC-005","endpoint":"/processes/type/Invoice"}
		]`, w.Body.String())
	})

	t.Run("get by id", func(t *testing.T) {
		w := get(strict, "/processes/PROC-003")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"document_type":"PurchaseBill","count":1,"id":"PROC-003","endpoint":"/processes/type/PurchaseBill"}`, w.Body.String())
	})

	t.Run("missing id", func(t *testing.T) {
		w := get(strict, "/processes/PROC-001")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Process not found"}`, w.Body.String())

		w = get(legacy, "/processes/PROC-001")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"error":"Process not found"}`, w.Body.String())
	})

	t.Run("by type", func(t *testing.T) {
		w := get(strict, "/processes/type/Invoice")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"document_type":"Invoice","count":0,"id":"PROC-005","endpoint":"/processes/type/Invoice"}]`, w.Body.String())

		w = get(strict, "/processes/type/PO")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("invalid type", func(t *testing.T) {
		const want = `{"error":"Invalid process name. Must be one of: PO, Invoice, PurchaseBill"}`
		for _, raw := range []string{"Receipt", "po", "INVOICE"} {
			w := get(strict, "/processes/type/"+raw)
			assert.Equal(t, http.StatusBadRequest, w.Code, raw)
			assert.JSONEq(t, want, w.Body.String())

			w = get(legacy, "/processes/type/"+raw)
			assert.Equal(t, http.StatusOK, w.Code, raw)
			assert.JSONEq(t, want, w.Body.String())
		}
	})
}

func TestBaseHandler_HandleError(t *testing.T) {
	t.Run("non domain error is hidden behind 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		h := &BaseHandler{ErrorMode: dto.ErrorModeLegacy}

		h.HandleError(c, errors.New("connection reset by peer"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"An unexpected error occurred"}`, w.Body.String())
		require.Len(t, c.Errors, 1)
	})

	t.Run("nil error writes nothing", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		(&BaseHandler{}).HandleError(c, nil)
		assert.Empty(t, w.Body.String())
	})
}

type stubCounter struct {
	n   int
	err error
}

func (s stubCounter) Count(context.Context) (int, error) { return s.n, s.err }

func TestHealthHandler(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		invoices, processes := newServices(t)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

		NewHealthHandler(invoices, processes).Health(c)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, 3, resp.Invoices)
		assert.Equal(t, 2, resp.Processes)
		assert.NotEmpty(t, resp.Time)
	})

	t.Run("unavailable", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

		NewHealthHandler(stubCounter{n: 3}, stubCounter{err: context.DeadlineExceeded}).Health(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"error":"Process data unavailable"}`, w.Body.String())
	})
}
