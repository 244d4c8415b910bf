package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Remark Assist API",
        "description": "Report card remark assistant for Vietnamese elementary teachers",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Imports", "description": "Roster workbook uploads"},
        {"name": "Remarks", "description": "Remark code assignment and text autofill"},
        {"name": "Bank", "description": "Template bank generation"},
        {"name": "Exports", "description": "Remark list and bank downloads"},
        {"name": "Sessions", "description": "In-memory working sessions"},
        {"name": "Subjects", "description": "Fixed classroom vocabulary"}
    ],
    "paths": {
        "/imports": {
            "post": {
                "tags": ["Imports"],
                "summary": "Import a student roster from an Excel workbook",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"},
                    {"name": "subject", "in": "formData", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "No recognisable header row", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/remarks/process": {
            "post": {
                "tags": ["Remarks"],
                "summary": "Assign remark codes and autofill remark texts",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ProcessRemarksRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/remarks/generate": {
            "post": {
                "tags": ["Remarks"],
                "summary": "Generate individualised remark texts",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateRemarksRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/bank/generate": {
            "post": {
                "tags": ["Bank"],
                "summary": "Generate a 34-template remark bank",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateBankRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/remarks": {
            "post": {
                "tags": ["Exports"],
                "summary": "Export the remark list",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["xlsx", "csv", "pdf"]},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExportRemarksRequest"}}
                ],
                "responses": {
                    "200": {"description": "Rendered file"}
                }
            }
        },
        "/exports/bank": {
            "post": {
                "tags": ["Exports"],
                "summary": "Export the template bank",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["xlsx", "csv", "pdf"]},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExportBankRequest"}}
                ],
                "responses": {
                    "200": {"description": "Rendered file"}
                }
            }
        },
        "/sessions": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Open a working session",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSessionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/sessions/{id}": {
            "get": {
                "tags": ["Sessions"],
                "summary": "Get a working session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Sessions"],
                "summary": "Replace a session's bank and roster",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateSessionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/subjects": {
            "get": {
                "tags": ["Subjects"],
                "summary": "List subjects, grades and semesters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "StudentRecord": {
            "type": "object",
            "properties": {
                "sequence_number": {"type": "integer"},
                "full_name": {"type": "string"},
                "score": {"type": "number"},
                "level": {"type": "string", "enum": ["T", "H", "C"]},
                "remark_code": {"type": "string"},
                "remark_text": {"type": "string"}
            }
        },
        "TemplateBankEntry": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "level": {"type": "string", "enum": ["T", "H", "C"]},
                "score": {"type": "integer"},
                "text": {"type": "string"}
            }
        },
        "ProcessRemarksRequest": {
            "type": "object",
            "required": ["subject", "records"],
            "properties": {
                "subject": {"type": "string"},
                "records": {"type": "array", "items": {"$ref": "#/definitions/StudentRecord"}},
                "bank": {"type": "array", "items": {"$ref": "#/definitions/TemplateBankEntry"}}
            }
        },
        "GenerateBankRequest": {
            "type": "object",
            "required": ["subject", "grade", "semester"],
            "properties": {
                "subject": {"type": "string"},
                "grade": {"type": "string"},
                "semester": {"type": "string"}
            }
        },
        "GenerateRemarksRequest": {
            "type": "object",
            "required": ["subject", "grade", "semester", "records"],
            "properties": {
                "subject": {"type": "string"},
                "grade": {"type": "string"},
                "semester": {"type": "string"},
                "records": {"type": "array", "items": {"$ref": "#/definitions/StudentRecord"}}
            }
        },
        "ExportRemarksRequest": {
            "type": "object",
            "properties": {
                "records": {"type": "array", "items": {"$ref": "#/definitions/StudentRecord"}}
            }
        },
        "ExportBankRequest": {
            "type": "object",
            "properties": {
                "entries": {"type": "array", "items": {"$ref": "#/definitions/TemplateBankEntry"}}
            }
        },
        "CreateSessionRequest": {
            "type": "object",
            "required": ["subject"],
            "properties": {
                "subject": {"type": "string"},
                "grade": {"type": "string"},
                "semester": {"type": "string"}
            }
        },
        "UpdateSessionRequest": {
            "type": "object",
            "properties": {
                "bank": {"type": "array", "items": {"$ref": "#/definitions/TemplateBankEntry"}},
                "records": {"type": "array", "items": {"$ref": "#/definitions/StudentRecord"}}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
