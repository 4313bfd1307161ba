// Package docs registers the swagger document served under /swagger.
package docs

import "github.com/swaggo/swag"

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
        "/api/v1/checklists": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Checklist"],
                "summary": "Open a checklist session",
                "parameters": [
                    {"description": "Source or inline content", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/http.openReq"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/checklists/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Checklist"],
                "summary": "Get the rendered checklist",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Checklist"],
                "summary": "Close a checklist session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/checklists/{id}/reload": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Checklist"],
                "summary": "Refetch the document and reset checkbox state",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/checklists/{id}/toggle": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Checklist"],
                "summary": "Toggle a checklist item",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true},
                    {"description": "Item key", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.toggleReq"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/api/v1/checklists/{id}/links": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Checklist"],
                "summary": "Report a link press",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true},
                    {"description": "Link", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.linkReq"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/checklists/{id}/view": {
            "get": {
                "produces": ["text/html"],
                "tags": ["Checklist"],
                "summary": "Render the checklist as an HTML page",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "light or dark", "name": "theme", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy"}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "API is ready"}}
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive"}}
            }
        }
    },
    "definitions": {
        "http.openReq": {
            "type": "object",
            "properties": {
                "source_url": {"type": "string"},
                "content": {"type": "string"},
                "interactive": {"type": "boolean"}
            }
        },
        "http.toggleReq": {
            "type": "object",
            "required": ["label"],
            "properties": {
                "depth": {"type": "integer"},
                "label": {"type": "string"}
            }
        },
        "http.linkReq": {
            "type": "object",
            "required": ["url"],
            "properties": {
                "url": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Tesla Buddy API",
	Description:      "Markdown checklists with interactive checkboxes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
