// Package docs registers swagger document of customer API served by echo-swagger.
// Keep it in sync with swag annotations of handlers.
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
        "/api/customers": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Returns all customers ordered by creation time",
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Get all customers",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Customer"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Creates new customer, id and timestamps are assigned by server",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "New customer",
                "parameters": [
                    {"description": "Data for new customer", "name": "newCustomer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.newCustomer"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Customer"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.validationErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        },
        "/api/customers/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Returns single customer with provided id",
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Get single customer by id",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Customer guid", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Customer"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Applies provided fields to existing customer",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Update customer",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Customer guid", "name": "id", "in": "path", "required": true},
                    {"description": "Customer fields to update", "name": "updateCustomer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.updateCustomer"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Customer"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.validationErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Deletes customer with provided id",
                "tags": ["customers"],
                "summary": "Delete customer by id",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Customer guid", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Successful status code"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handlers.validationErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "details": {
                    "type": "object",
                    "properties": {
                        "formErrors": {"type": "array", "items": {"type": "string"}},
                        "fieldErrors": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}
                    }
                }
            }
        },
        "handlers.newCustomer": {
            "type": "object",
            "required": ["address", "block", "home", "name", "phone", "road", "town"],
            "properties": {
                "address": {"type": "string", "maxLength": 255},
                "block": {"type": "string", "maxLength": 100},
                "home": {"type": "string", "maxLength": 100},
                "name": {"type": "string", "maxLength": 100},
                "phone": {"type": "string", "maxLength": 32},
                "road": {"type": "string", "maxLength": 100},
                "town": {"type": "string", "maxLength": 100}
            }
        },
        "handlers.updateCustomer": {
            "type": "object",
            "properties": {
                "address": {"type": "string", "maxLength": 255, "minLength": 1},
                "block": {"type": "string", "maxLength": 100, "minLength": 1},
                "home": {"type": "string", "maxLength": 100, "minLength": 1},
                "name": {"type": "string", "maxLength": 100, "minLength": 1},
                "phone": {"type": "string", "maxLength": 32, "minLength": 1},
                "road": {"type": "string", "maxLength": 100, "minLength": 1},
                "town": {"type": "string", "maxLength": 100, "minLength": 1}
            }
        },
        "model.Customer": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "block": {"type": "string"},
                "createdAt": {"type": "string"},
                "home": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "road": {"type": "string"},
                "town": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Customer Directory API",
	Description:      "CRUD API for customers",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
