package invoice

import (
	"context"

	"github.com/invoiceapi/backend/internal/domain/invoice"
	"github.com/invoiceapi/backend/internal/domain/shared"
	"github.com/invoiceapi/backend/internal/infrastructure/telemetry"
)

const metricsResource = "invoice"

// InvoiceService answers read queries over the invoice collection
type InvoiceService struct {
	repo    invoice.Repository
	lookups *telemetry.LookupMetrics
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(repo invoice.Repository) *InvoiceService {
	return &InvoiceService{repo: repo}
}

// SetLookupMetrics sets the lookup counters (optional)
func (s *InvoiceService) SetLookupMetrics(m *telemetry.LookupMetrics) {
	s.lookups = m
}

// List returns every invoice in seed order
func (s *InvoiceService) List(ctx context.Context) ([]InvoiceResponse, error) {
	invoices, err := s.repo.FindAll(ctx)
	if err != nil {
		s.lookups.Record(ctx, metricsResource, "list", telemetry.OutcomeError, 0)
		return nil, err
	}
	s.lookups.Record(ctx, metricsResource, "list", telemetry.OutcomeFound, len(invoices))
	return ToInvoiceResponses(invoices), nil
}

// GetByNumber returns the invoice with the exact, case-sensitive number
func (s *InvoiceService) GetByNumber(ctx context.Context, number string) (*InvoiceResponse, error) {
	inv, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		outcome := telemetry.OutcomeError
		if shared.IsNotFound(err) {
			outcome = telemetry.OutcomeNotFound
		}
		s.lookups.Record(ctx, metricsResource, "get", outcome, 0)
		return nil, err
	}
	s.lookups.Record(ctx, metricsResource, "get", telemetry.OutcomeFound, 1)
	resp := ToInvoiceResponse(inv)
	return &resp, nil
}

// ListByVendor returns the invoices of one vendor, possibly none
func (s *InvoiceService) ListByVendor(ctx context.Context, vendorNumber string) ([]InvoiceResponse, error) {
	invoices, err := s.repo.FindByVendor(ctx, vendorNumber)
	if err != nil {
		s.lookups.Record(ctx, metricsResource, "list_by_vendor", telemetry.OutcomeError, 0)
		return nil, err
	}
	s.lookups.Record(ctx, metricsResource, "list_by_vendor", telemetry.OutcomeFound, len(invoices))
	return ToInvoiceResponses(invoices), nil
}

// Count returns the size of the collection
func (s *InvoiceService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
