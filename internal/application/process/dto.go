package process

import "github.com/invoiceapi/backend/internal/domain/process"

// ProcessResponse is the wire shape of a process status entry
type ProcessResponse struct {
	DocumentType string `json:"document_type" example:"PurchaseBill"`
	Count        int    `json:"count" example:"1"`
	ID           string `json:"id" example:"PROC-003"`
	Endpoint     string `json:"endpoint" example:"/processes/type/PurchaseBill"`
}

// ToProcessResponse converts a domain Record to its response shape
func ToProcessResponse(r *process.Record) ProcessResponse {
	return ProcessResponse{
		DocumentType: r.DocumentType.String(),
		Count:        r.Count,
		ID:           r.ID,
		Endpoint:     r.Endpoint,
	}
}

// ToProcessResponses converts a slice, never returning nil
func ToProcessResponses(records []process.Record) []ProcessResponse {
	out := make([]ProcessResponse, 0, len(records))
	for i := range records {
		out = append(out, ToProcessResponse(&records[i]))
	}
	return out
}
