package process

import (
	"context"
	"testing"

	"github.com/invoiceapi/backend/internal/domain/process"
	"github.com/invoiceapi/backend/internal/domain/shared"
	"github.com/invoiceapi/backend/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap/zaptest"
)

// MockProcessRepository is a mock implementation of process.Repository
type MockProcessRepository struct {
	mock.Mock
}

func (m *MockProcessRepository) FindAll(ctx context.Context) ([]process.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]process.Record), args.Error(1)
}

func (m *MockProcessRepository) FindByID(ctx context.Context, id string) (*process.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*process.Record), args.Error(1)
}

func (m *MockProcessRepository) FindByType(ctx context.Context, documentType process.DocumentType) ([]process.Record, error) {
	args := m.Called(ctx, documentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]process.Record), args.Error(1)
}

func (m *MockProcessRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func testRecord(t *testing.T, dt process.DocumentType, count int, id string) process.Record {
	t.Helper()
	r, err := process.NewRecord(dt, count, id, "/processes/type/"+dt.String())
	require.NoError(t, err)
	return *r
}

func TestProcessService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProcessRepository)
	repo.On("FindAll", ctx).Return([]process.Record{
		testRecord(t, process.DocumentTypePurchaseBill, 1, "PROC-003"),
		testRecord(t, process.DocumentTypeInvoice, 0, "PROC-005"),
	}, nil)

	got, err := NewProcessService(repo).List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, ProcessResponse{
		DocumentType: "PurchaseBill",
		Count:        1,
		ID:           "PROC-003",
		Endpoint:     "/processes/type/PurchaseBill",
	}, got[0])
	assert.Equal(t, "PROC-005", got[1].ID)
	repo.AssertExpectations(t)
}

func TestProcessService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		r := testRecord(t, process.DocumentTypePurchaseBill, 1, "PROC-003")
		repo := new(MockProcessRepository)
		repo.On("FindByID", ctx, "PROC-003").Return(&r, nil)

		got, err := NewProcessService(repo).GetByID(ctx, "PROC-003")
		require.NoError(t, err)
		assert.Equal(t, "PurchaseBill", got.DocumentType)
		assert.Equal(t, 1, got.Count)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockProcessRepository)
		repo.On("FindByID", ctx, "PROC-001").Return(nil, process.ErrProcessNotFound)

		got, err := NewProcessService(repo).GetByID(ctx, "PROC-001")
		assert.Nil(t, got)
		assert.True(t, shared.IsNotFound(err))
		assert.Equal(t, "Process not found", err.(*shared.DomainError).Message)
	})
}

func TestProcessService_ListByType(t *testing.T) {
	ctx := context.Background()

	t.Run("valid type with records", func(t *testing.T) {
		repo := new(MockProcessRepository)
		repo.On("FindByType", ctx, process.DocumentTypeInvoice).Return([]process.Record{
			testRecord(t, process.DocumentTypeInvoice, 0, "PROC-005"),
		}, nil)

		got, err := NewProcessService(repo).ListByType(ctx, "Invoice")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 0, got[0].Count)
	})

	t.Run("valid type without records", func(t *testing.T) {
		repo := new(MockProcessRepository)
		repo.On("FindByType", ctx, process.DocumentTypePO).Return([]process.Record{}, nil)

		got, err := NewProcessService(repo).ListByType(ctx, "PO")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	invalid := []string{"Receipt", "po", "invoice", ""}
	for _, raw := range invalid {
		t.Run("invalid type "+raw, func(t *testing.T) {
			repo := new(MockProcessRepository)

			got, err := NewProcessService(repo).ListByType(ctx, raw)
			assert.Nil(t, got)
			require.Error(t, err)
			assert.True(t, shared.IsInvalidInput(err))
			assert.Equal(t, "Invalid process name. Must be one of: PO, Invoice, PurchaseBill", err.(*shared.DomainError).Message)
			repo.AssertNotCalled(t, "FindByType", mock.Anything, mock.Anything)
		})
	}
}

func TestProcessService_RecordsLookupMetrics(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp, err := telemetry.NewMeterProviderWithReader(telemetry.MetricsConfig{ServiceName: "test"}, reader, zaptest.NewLogger(t))
	require.NoError(t, err)
	lookups, err := telemetry.NewLookupMetrics(mp.Meter("test"))
	require.NoError(t, err)

	repo := new(MockProcessRepository)
	repo.On("FindByID", ctx, "PROC-404").Return(nil, process.ErrProcessNotFound)

	svc := NewProcessService(repo)
	svc.SetLookupMetrics(lookups)
	_, _ = svc.GetByID(ctx, "PROC-404")
	_, _ = svc.ListByType(ctx, "Receipt")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	outcomes := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "invoice_api.lookups" {
				continue
			}
			for _, dp := range m.Data.(metricdata.Sum[int64]).DataPoints {
				v, _ := dp.Attributes.Value(telemetry.AttrOutcome)
				outcomes[v.AsString()] += dp.Value
			}
		}
	}
	assert.Equal(t, map[string]int64{"not_found": 1, "invalid": 1}, outcomes)
}
