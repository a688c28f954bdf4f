package handler

import (
	"github.com/gin-gonic/gin"
	processapp "github.com/invoiceapi/backend/internal/application/process"
	"github.com/invoiceapi/backend/internal/domain/process"
	"github.com/invoiceapi/backend/internal/interfaces/http/dto"
)

// ProcessHandler handles process status lookups
type ProcessHandler struct {
	BaseHandler
	processService *processapp.ProcessService
}

// NewProcessHandler creates a new ProcessHandler
func NewProcessHandler(processService *processapp.ProcessService, mode dto.ErrorMode) *ProcessHandler {
	return &ProcessHandler{
		BaseHandler:    BaseHandler{ErrorMode: mode},
		processService: processService,
	}
}

// DocumentTypeURI binds the document type path segment
type DocumentTypeURI struct {
	DocumentType string `uri:"document_type" binding:"document_type"`
}

// List godoc
// @ID           listProcesses
// @Summary      List process status entries
// @Description  Returns every process status entry in load order
// @Tags         processes
// @Produce      json
// @Success      200 {array} process.ProcessResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /processes [get]
func (h *ProcessHandler) List(c *gin.Context) {
	records, err := h.processService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

// GetByID godoc
// @ID           getProcessByID
// @Summary      Get process status entry by id
// @Description  Exact, case-sensitive match on id. In legacy error mode a miss returns 200 with an error body.
// @Tags         processes
// @Produce      json
// @Param        process_id path string true "Process id" example(PROC-003)
// @Success      200 {object} process.ProcessResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /processes/{process_id} [get]
func (h *ProcessHandler) GetByID(c *gin.Context) {
	record, err := h.processService.GetByID(c.Request.Context(), c.Param("process_id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// ListByType godoc
// @ID           listProcessesByType
// @Summary      List process status entries of a document type
// @Description  document_type must be one of PO, Invoice, PurchaseBill (case-sensitive). A valid type without entries yields an empty array.
// @Tags         processes
// @Produce      json
// @Param        document_type path string true "Document type" Enums(PO, Invoice, PurchaseBill)
// @Success      200 {array} process.ProcessResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /processes/type/{document_type} [get]
func (h *ProcessHandler) ListByType(c *gin.Context) {
	var uri DocumentTypeURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.HandleError(c, process.ErrInvalidDocumentType)
		return
	}

	records, err := h.processService.ListByType(c.Request.Context(), uri.DocumentType)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}
