// Package docs registers the OpenAPI document served under /apiv2beta/swagger.
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
        "/api-token-auth/": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Obtain an API token",
                "parameters": [
                    {
                        "description": "Username and password",
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/server.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/server.TokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api-token-auth/revoke/": {
            "post": {
                "security": [{"TokenAuth": []}],
                "tags": ["auth"],
                "summary": "Revoke the presented API token",
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/comments/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "List comments, oldest first",
                "parameters": [
                    {"type": "integer", "description": "Only comments on this dweet", "name": "reply_to", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Offset", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Comment"}}}
                }
            }
        },
        "/comments/{id}/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "Get a comment",
                "parameters": [
                    {"type": "integer", "description": "Comment ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Comment"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"TokenAuth": []}],
                "description": "Allowed for the author and for moderators.",
                "tags": ["comments"],
                "summary": "Delete a comment",
                "parameters": [
                    {"type": "integer", "description": "Comment ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/dweets/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dweets"],
                "summary": "List dweets, newest first",
                "parameters": [
                    {"type": "integer", "default": 20, "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Offset", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Dweet"}}}
                }
            }
        },
        "/dweets/{id}/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dweets"],
                "summary": "Get a dweet",
                "parameters": [
                    {"type": "integer", "description": "Dweet ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Dweet"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"TokenAuth": []}],
                "description": "Allowed for the author and for moderators.",
                "tags": ["dweets"],
                "summary": "Delete a dweet and its comments",
                "parameters": [
                    {"type": "integer", "description": "Dweet ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.Comment": {
            "type": "object",
            "properties": {
                "author": {"$ref": "#/definitions/models.User"},
                "author_id": {"type": "integer"},
                "id": {"type": "integer"},
                "posted": {"type": "string"},
                "reply_to": {"type": "integer"},
                "text": {"type": "string"}
            }
        },
        "models.Dweet": {
            "type": "object",
            "properties": {
                "author": {"$ref": "#/definitions/models.User"},
                "author_id": {"type": "integer"},
                "code": {"type": "string"},
                "comments_count": {"type": "integer"},
                "id": {"type": "integer"},
                "posted": {"type": "string"}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "date_joined": {"type": "string"},
                "id": {"type": "integer"},
                "is_moderator": {"type": "boolean"},
                "username": {"type": "string"}
            }
        },
        "server.LoginRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "server.TokenResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "TokenAuth": {
            "description": "\"Token\" or \"Bearer\" followed by a space and the token from /api-token-auth/.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "2.0-beta",
	Host:             "localhost:8375",
	BasePath:         "/apiv2beta",
	Schemes:          []string{"http", "https"},
	Title:            "dwitter API",
	Description:      "Dweets and comments with author/moderator gated deletion.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
