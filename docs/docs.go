// Package docs registers the OpenAPI document of the Invoice API with swag.
// It mirrors the handler annotations; regenerate with `swag init -g cmd/server/main.go`.
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Confirms the API is reachable",
                "produces": ["application/json"],
                "tags": ["root"],
                "summary": "Greeting",
                "operationId": "getRoot",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        },
        "/invoices": {
            "get": {
                "description": "Returns every invoice in load order",
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "List invoices",
                "operationId": "listInvoices",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/invoice.InvoiceResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/invoices/vendor/{vendor_number}": {
            "get": {
                "description": "Exact, case-sensitive match on VENDORNUMBER. Unknown vendors yield an empty array.",
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "List invoices of a vendor",
                "operationId": "listInvoicesByVendor",
                "parameters": [
                    {"type": "string", "example": "VEND-001", "description": "Vendor number", "name": "vendor_number", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/invoice.InvoiceResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/invoices/{invoice_number}": {
            "get": {
                "description": "Exact, case-sensitive match on INVOICENUMBER. In legacy error mode a miss returns 200 with an error body.",
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Get invoice by number",
                "operationId": "getInvoiceByNumber",
                "parameters": [
                    {"type": "string", "example": "INV-2024-001", "description": "Invoice number", "name": "invoice_number", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/invoice.InvoiceResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/processes": {
            "get": {
                "description": "Returns every process status entry in load order",
                "produces": ["application/json"],
                "tags": ["processes"],
                "summary": "List process status entries",
                "operationId": "listProcesses",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/process.ProcessResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/processes/type/{document_type}": {
            "get": {
                "description": "document_type must be one of PO, Invoice, PurchaseBill (case-sensitive). A valid type without entries yields an empty array.",
                "produces": ["application/json"],
                "tags": ["processes"],
                "summary": "List process status entries of a document type",
                "operationId": "listProcessesByType",
                "parameters": [
                    {"enum": ["PO", "Invoice", "PurchaseBill"], "type": "string", "description": "Document type", "name": "document_type", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/process.ProcessResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/processes/{process_id}": {
            "get": {
                "description": "Exact, case-sensitive match on id. In legacy error mode a miss returns 200 with an error body.",
                "produces": ["application/json"],
                "tags": ["processes"],
                "summary": "Get process status entry by id",
                "operationId": "getProcessByID",
                "parameters": [
                    {"type": "string", "example": "PROC-003", "description": "Process id", "name": "process_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/process.ProcessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "operationId": "getHealth",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/system/info": {
            "get": {
                "description": "Returns service name, version and uptime",
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Get system information",
                "operationId": "getSystemInfo",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SystemInfoResponse"}}
                }
            }
        },
        "/system/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Ping the API",
                "operationId": "pingSystem",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PingResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Invoice not found"}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "invoices": {"type": "integer", "example": 3},
                "processes": {"type": "integer", "example": 2},
                "status": {"type": "string", "example": "healthy"},
                "time": {"type": "string", "example": "2024-01-15T12:00:00Z"}
            }
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Welcome to the Invoice API"}
            }
        },
        "handler.PingResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "pong"},
                "timestamp": {"type": "string", "example": "2024-01-15T12:00:00Z"}
            }
        },
        "handler.SystemInfoResponse": {
            "type": "object",
            "properties": {
                "description": {"type": "string", "example": "API that returns invoice data in JSON format"},
                "go_version": {"type": "string", "example": "go1.25.5"},
                "name": {"type": "string", "example": "Invoice API"},
                "uptime": {"type": "string", "example": "1h30m45s"},
                "version": {"type": "string", "example": "1.0.0"}
            }
        },
        "invoice.InvoiceResponse": {
            "type": "object",
            "properties": {
                "DELIVERYADDRESS": {"type": "string", "example": "123 Main Street, New York, NY 10001"},
                "DOCDATE": {"type": "string", "example": "2024-01-15"},
                "INVOICENUMBER": {"type": "string", "example": "INV-2024-001"},
                "PURCHASEORDER": {"type": "string", "example": "PO-2024-001"},
                "VENDORNAME": {"type": "string", "example": "ABC Supply Company"},
                "VENDORNUMBER": {"type": "string", "example": "VEND-001"}
            }
        },
        "process.ProcessResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer", "example": 1},
                "document_type": {"type": "string", "example": "PurchaseBill"},
                "endpoint": {"type": "string", "example": "/processes/type/PurchaseBill"},
                "id": {"type": "string", "example": "PROC-003"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Invoice API",
	Description:      "API that returns invoice data in JSON format",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
