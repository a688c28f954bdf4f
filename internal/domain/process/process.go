package process

import (
	"strings"

	"github.com/invoiceapi/backend/internal/domain/shared"
)

// DocumentType classifies a process record
type DocumentType string

const (
	DocumentTypePO           DocumentType = "PO"
	DocumentTypeInvoice      DocumentType = "Invoice"
	DocumentTypePurchaseBill DocumentType = "PurchaseBill"
)

var documentTypes = []DocumentType{
	DocumentTypePO,
	DocumentTypeInvoice,
	DocumentTypePurchaseBill,
}

// AllDocumentTypes returns the closed enumeration in declaration order
func AllDocumentTypes() []DocumentType {
	out := make([]DocumentType, len(documentTypes))
	copy(out, documentTypes)
	return out
}

// IsValid reports whether t is one of the known document types (case-sensitive)
func (t DocumentType) IsValid() bool {
	for _, dt := range documentTypes {
		if t == dt {
			return true
		}
	}
	return false
}

// String returns the wire value
func (t DocumentType) String() string {
	return string(t)
}

// ErrProcessNotFound is returned when no process matches the requested id
var ErrProcessNotFound = shared.NewDomainError(shared.CodeNotFound, "Process not found")

// ErrInvalidDocumentType is returned for values outside the enumeration
var ErrInvalidDocumentType = shared.NewDomainError(
	shared.CodeInvalidInput,
	"Invalid process name. Must be one of: "+joinDocumentTypes(", "),
)

func joinDocumentTypes(sep string) string {
	names := make([]string, len(documentTypes))
	for i, dt := range documentTypes {
		names[i] = string(dt)
	}
	return strings.Join(names, sep)
}

// ParseDocumentType converts a raw path value into a DocumentType
func ParseDocumentType(raw string) (DocumentType, error) {
	t := DocumentType(raw)
	if !t.IsValid() {
		return "", ErrInvalidDocumentType
	}
	return t, nil
}

// Record is a status entry counting documents of one type in the external
// automation process. Endpoint is informational only.
type Record struct {
	DocumentType DocumentType
	Count        int
	ID           string
	Endpoint     string
}

// NewRecord creates a process record after checking its invariants
func NewRecord(documentType DocumentType, count int, id, endpoint string) (*Record, error) {
	if !documentType.IsValid() {
		return nil, shared.NewDomainError(shared.CodeInvalidSeed, "unknown document type: "+string(documentType))
	}
	if count < 0 {
		return nil, shared.NewDomainError(shared.CodeInvalidSeed, "process count cannot be negative")
	}
	if strings.TrimSpace(id) == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidSeed, "process id cannot be empty")
	}

	return &Record{
		DocumentType: documentType,
		Count:        count,
		ID:           id,
		Endpoint:     endpoint,
	}, nil
}

// HasType reports whether the record is of the given document type
func (r *Record) HasType(t DocumentType) bool {
	return r.DocumentType == t
}
