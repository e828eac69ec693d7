// Package docs registers the OpenAPI description of the shipment tracking
// API with the swag runtime, serving it at /swagger in non-production
// environments.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "API is healthy"}
                }
            }
        },
        "/api/v1/shipments": {
            "get": {
                "tags": ["shipments"],
                "summary": "List shipments with pagination, filtering, and sorting",
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer", "description": "Page number (default 1)"},
                    {"name": "limit", "in": "query", "type": "integer", "description": "Page size (default 10, max 100)"},
                    {"name": "sortBy", "in": "query", "type": "string", "description": "Sort field (default createdAt)"},
                    {"name": "order", "in": "query", "type": "string", "enum": ["asc", "desc"]},
                    {"name": "status", "in": "query", "type": "string", "enum": ["pending", "in_transit", "delivered", "cancelled"]},
                    {"name": "origin", "in": "query", "type": "string"},
                    {"name": "destination", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "startDate", "in": "query", "type": "string", "format": "date"},
                    {"name": "endDate", "in": "query", "type": "string", "format": "date"}
                ],
                "responses": {
                    "200": {"description": "Shipments retrieved successfully"},
                    "400": {"description": "Invalid query parameters"}
                }
            },
            "post": {
                "tags": ["shipments"],
                "summary": "Create a new shipment",
                "parameters": [
                    {
                        "name": "shipment",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/CreateShipment"}
                    }
                ],
                "responses": {
                    "201": {"description": "Shipment created successfully"},
                    "400": {"description": "Validation failed"}
                }
            }
        },
        "/api/v1/shipments/{id}": {
            "get": {
                "tags": ["shipments"],
                "summary": "Get a shipment by id",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Shipment retrieved successfully"},
                    "400": {"description": "Invalid shipment id"},
                    "404": {"description": "Shipment not found"}
                }
            },
            "put": {
                "tags": ["shipments"],
                "summary": "Update a shipment",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {
                        "name": "shipment",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/UpdateShipment"}
                    }
                ],
                "responses": {
                    "200": {"description": "Shipment updated successfully"},
                    "400": {"description": "Validation or status transition failure"},
                    "404": {"description": "Shipment not found"}
                }
            },
            "delete": {
                "tags": ["shipments"],
                "summary": "Delete a shipment",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Shipment deleted successfully"},
                    "400": {"description": "Invalid shipment id"},
                    "404": {"description": "Shipment not found"}
                }
            }
        },
        "/api/v1/shipments/tracking/{trackingNumber}": {
            "get": {
                "tags": ["shipments"],
                "summary": "Get a shipment by tracking number",
                "parameters": [
                    {"name": "trackingNumber", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Shipment retrieved successfully"},
                    "404": {"description": "Shipment not found"}
                }
            }
        }
    },
    "definitions": {
        "CreateShipment": {
            "type": "object",
            "required": ["senderName", "receiverName", "origin", "destination"],
            "properties": {
                "senderName": {"type": "string", "minLength": 2, "maxLength": 100},
                "receiverName": {"type": "string", "minLength": 2, "maxLength": 100},
                "origin": {"type": "string", "minLength": 2, "maxLength": 200},
                "destination": {"type": "string", "minLength": 2, "maxLength": 200},
                "status": {
                    "type": "string",
                    "enum": ["pending", "in_transit", "delivered", "cancelled"],
                    "default": "pending"
                }
            }
        },
        "UpdateShipment": {
            "type": "object",
            "minProperties": 1,
            "properties": {
                "senderName": {"type": "string", "minLength": 2, "maxLength": 100},
                "receiverName": {"type": "string", "minLength": 2, "maxLength": 100},
                "origin": {"type": "string", "minLength": 2, "maxLength": 200},
                "destination": {"type": "string", "minLength": 2, "maxLength": 200},
                "status": {
                    "type": "string",
                    "enum": ["pending", "in_transit", "delivered", "cancelled"]
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Shipment Tracking API",
	Description:      "RESTful API for creating, tracking, and managing shipments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
