// Package docs holds the OpenAPI document served under /swagger. Keep it in
// step with the swag annotations on the handlers.
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
        "/feedbacks": {
            "get": {
                "description": "Returns one page of feedbacks ordered by id",
                "produces": ["application/json"],
                "tags": ["feedbacks"],
                "summary": "List feedbacks",
                "parameters": [
                    {"minimum": 1, "type": "integer", "description": "Page number (1-based)", "name": "page", "in": "query"},
                    {"minimum": 1, "type": "integer", "description": "Page size", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.FeedbackListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["feedbacks"],
                "summary": "Create feedback",
                "parameters": [
                    {"description": "Feedback payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.FeedbackCreate"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/types.FeedbackResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "409": {"description": "Feedback already exists", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/feedbacks/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["feedbacks"],
                "summary": "Get feedback",
                "parameters": [
                    {"type": "string", "description": "Feedback ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.FeedbackResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["feedbacks"],
                "summary": "Delete feedback",
                "parameters": [
                    {"type": "string", "description": "Feedback ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            },
            "patch": {
                "description": "Partially updates a feedback. Absent fields are left unchanged; a null status clears it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["feedbacks"],
                "summary": "Update feedback",
                "parameters": [
                    {"type": "string", "description": "Feedback ID (UUID)", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/docs.FeedbackUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.FeedbackResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/healthchecker": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Service banner",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.MessageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "docs.FeedbackUpdateRequest": {
            "description": "Partial feedback update",
            "type": "object",
            "properties": {
                "email": {"type": "string", "minLength": 1, "maxLength": 255, "example": "alice@example.com"},
                "feedback": {"type": "string", "minLength": 1, "maxLength": 500, "example": "The course was great"},
                "name": {"type": "string", "minLength": 1, "maxLength": 255, "example": "Alice"},
                "rating": {"type": "number", "example": 4.5},
                "status": {"type": "string", "maxLength": 50, "example": "reviewed", "x-nullable": true}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "status": {"type": "string", "example": "fail"}
            }
        },
        "types.Feedback": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "feedback": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "rating": {"type": "number"},
                "status": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "types.FeedbackCreate": {
            "type": "object",
            "required": ["email", "feedback", "name", "rating"],
            "properties": {
                "email": {"type": "string", "maxLength": 255},
                "feedback": {"type": "string", "maxLength": 500},
                "name": {"type": "string", "maxLength": 255},
                "rating": {"type": "number"},
                "status": {"type": "string", "maxLength": 50}
            }
        },
        "types.FeedbackData": {
            "type": "object",
            "properties": {
                "feedback": {"$ref": "#/definitions/types.Feedback"}
            }
        },
        "types.FeedbackListResponse": {
            "type": "object",
            "properties": {
                "feedbacks": {"type": "array", "items": {"$ref": "#/definitions/types.Feedback"}},
                "results": {"type": "integer"},
                "status": {"type": "string", "example": "success"}
            }
        },
        "types.FeedbackResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/types.FeedbackData"},
                "status": {"type": "string", "example": "success"}
            }
        },
        "types.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "status": {"type": "string", "example": "success"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Feedback API",
	Description:      "CRUD API for course feedback backed by PostgreSQL.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
