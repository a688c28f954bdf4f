package server

import (
	invoiceapp "github.com/invoiceapi/backend/internal/application/invoice"
	processapp "github.com/invoiceapi/backend/internal/application/process"
	"github.com/invoiceapi/backend/internal/interfaces/http/dto"
	"github.com/invoiceapi/backend/internal/interfaces/http/handler"
	"github.com/invoiceapi/backend/internal/interfaces/http/router"
)

// Handlers groups the handlers the engine routes to
type Handlers struct {
	Root      *handler.RootHandler
	Invoices  *handler.InvoiceHandler
	Processes *handler.ProcessHandler
	Health    *handler.HealthHandler
	System    *handler.SystemHandler
}

// NewHandlers builds every handler on top of the application services
func NewHandlers(invoices *invoiceapp.InvoiceService, processes *processapp.ProcessService, mode dto.ErrorMode) Handlers {
	return Handlers{
		Root:      handler.NewRootHandler(),
		Invoices:  handler.NewInvoiceHandler(invoices, mode),
		Processes: handler.NewProcessHandler(processes, mode),
		Health:    handler.NewHealthHandler(invoices, processes),
		System:    handler.NewSystemHandler(),
	}
}

// registerRoutes adds the contract routes followed by the operational ones.
// The vendor and type routes are static segments, so gin matches them before
// the :invoice_number and :process_id parameters.
func registerRoutes(r *router.Router, h Handlers) {
	rootRoutes := router.NewDomainGroup("root", "/")
	rootRoutes.GET("", "Welcome message", h.Root.Welcome)

	invoiceRoutes := router.NewDomainGroup("invoices", "/invoices")
	invoiceRoutes.GET("", "List all invoices", h.Invoices.List)
	invoiceRoutes.GET("/:invoice_number", "Get invoice by number", h.Invoices.GetByNumber)
	invoiceRoutes.GET("/vendor/:vendor_number", "List invoices by vendor", h.Invoices.ListByVendor)

	processRoutes := router.NewDomainGroup("processes", "/processes")
	processRoutes.GET("", "List all processes", h.Processes.List)
	processRoutes.GET("/:process_id", "Get process by id", h.Processes.GetByID)
	processRoutes.GET("/type/:document_type", "List processes by document type", h.Processes.ListByType)

	healthRoutes := router.NewDomainGroup("health", "/health")
	healthRoutes.GET("", "Liveness and loaded record counts", h.Health.Health)

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", "Service name, version and uptime", h.System.GetSystemInfo)
	systemRoutes.GET("/ping", "Ping", h.System.Ping)

	r.Register(rootRoutes).
		Register(invoiceRoutes).
		Register(processRoutes).
		Register(healthRoutes).
		Register(systemRoutes)
}
