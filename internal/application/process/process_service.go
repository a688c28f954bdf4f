package process

import (
	"context"

	"github.com/invoiceapi/backend/internal/domain/process"
	"github.com/invoiceapi/backend/internal/domain/shared"
	"github.com/invoiceapi/backend/internal/infrastructure/telemetry"
)

const metricsResource = "process"

// ProcessService answers read queries over the process status collection
type ProcessService struct {
	repo    process.Repository
	lookups *telemetry.LookupMetrics
}

// NewProcessService creates a new ProcessService
func NewProcessService(repo process.Repository) *ProcessService {
	return &ProcessService{repo: repo}
}

// SetLookupMetrics sets the lookup counters (optional)
func (s *ProcessService) SetLookupMetrics(m *telemetry.LookupMetrics) {
	s.lookups = m
}

// List returns every process record in seed order
func (s *ProcessService) List(ctx context.Context) ([]ProcessResponse, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		s.lookups.Record(ctx, metricsResource, "list", telemetry.OutcomeError, 0)
		return nil, err
	}
	s.lookups.Record(ctx, metricsResource, "list", telemetry.OutcomeFound, len(records))
	return ToProcessResponses(records), nil
}

// GetByID returns the record with the exact, case-sensitive id
func (s *ProcessService) GetByID(ctx context.Context, id string) (*ProcessResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.lookups.Record(ctx, metricsResource, "get", outcomeOf(err), 0)
		return nil, err
	}
	s.lookups.Record(ctx, metricsResource, "get", telemetry.OutcomeFound, 1)
	resp := ToProcessResponse(record)
	return &resp, nil
}

// ListByType validates rawType against the document type enumeration and
// returns the matching records, possibly none.
func (s *ProcessService) ListByType(ctx context.Context, rawType string) ([]ProcessResponse, error) {
	documentType, err := process.ParseDocumentType(rawType)
	if err != nil {
		s.lookups.Record(ctx, metricsResource, "list_by_type", telemetry.OutcomeInvalid, 0)
		return nil, err
	}

	records, err := s.repo.FindByType(ctx, documentType)
	if err != nil {
		s.lookups.Record(ctx, metricsResource, "list_by_type", outcomeOf(err), 0)
		return nil, err
	}
	s.lookups.Record(ctx, metricsResource, "list_by_type", telemetry.OutcomeFound, len(records))
	return ToProcessResponses(records), nil
}

// Count returns the size of the collection
func (s *ProcessService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func outcomeOf(err error) string {
	switch {
	case shared.IsNotFound(err):
		return telemetry.OutcomeNotFound
	case shared.IsInvalidInput(err):
		return telemetry.OutcomeInvalid
	default:
		return telemetry.OutcomeError
	}
}
