// Package docs registers the OpenAPI document served under /swagger. The
// template is kept in step with the handler annotations; regenerate it with
// `swag init -g cmd/api/main.go` after changing them.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a user account",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/signupRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/account"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a business account",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/registerBusinessRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/account"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/authenticate": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/authenticateRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/authenticateResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/oauth2/authorization": {
            "get": {"tags": ["oauth2"], "summary": "Start federated login", "responses": {"302": {"description": "Found"}}}
        },
        "/login/oauth2/code": {
            "get": {
                "tags": ["oauth2"],
                "summary": "Federated login callback",
                "parameters": [
                    {"type": "string", "name": "state", "in": "query", "required": true},
                    {"type": "string", "name": "code", "in": "query", "required": true}
                ],
                "responses": {"302": {"description": "Found"}}
            }
        },
        "/user/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Current identity",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/identity"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/hobbies": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["hobbies"],
                "summary": "Create a hobby",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/hobbyRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/hobby"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/error"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["hobbies"],
                "summary": "Update a hobby",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/hobbyRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/hobby"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/hobbies/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["hobbies"],
                "summary": "Get a hobby",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/hobby"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/error"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["hobbies"],
                "summary": "Delete a hobby",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/hobbies/save": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["favorites"],
                "summary": "Save a hobby to the caller's list",
                "parameters": [
                    {"type": "string", "name": "id", "in": "query", "required": true},
                    {"type": "string", "name": "username", "in": "query", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/hobbies/remove": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["favorites"],
                "summary": "Remove a hobby from the caller's list",
                "parameters": [
                    {"type": "string", "name": "id", "in": "query", "required": true},
                    {"type": "string", "name": "username", "in": "query", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/hobbies/saved": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["favorites"],
                "summary": "List the caller's saved hobbies",
                "parameters": [{"type": "string", "name": "username", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/hobby"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/hobbies/is-saved": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["favorites"],
                "summary": "Check whether a hobby is on the caller's list",
                "parameters": [
                    {"type": "string", "name": "id", "in": "query", "required": true},
                    {"type": "string", "name": "username", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"saved": {"type": "boolean"}}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/api/files": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["files"],
                "summary": "Upload an image",
                "consumes": ["multipart/form-data"],
                "parameters": [{"type": "file", "name": "file", "in": "formData", "required": true}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/api/files/{name}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["files"],
                "summary": "Download an image",
                "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/health": {
            "get": {"tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/health/ready": {
            "get": {"tags": ["health"], "summary": "Readiness probe", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        }
    },
    "definitions": {
        "error": {"type": "object", "properties": {"error": {"type": "string"}}},
        "signupRequest": {
            "type": "object",
            "required": ["username", "email", "password"],
            "properties": {"username": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}, "full_name": {"type": "string"}}
        },
        "registerBusinessRequest": {
            "type": "object",
            "required": ["username", "email", "password", "business_name"],
            "properties": {"username": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}, "business_name": {"type": "string"}}
        },
        "authenticateRequest": {
            "type": "object",
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "authenticateResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "username": {"type": "string"}, "roles": {"type": "array", "items": {"type": "string"}}}
        },
        "account": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "username": {"type": "string"}, "email": {"type": "string"},
                "display_name": {"type": "string"}, "roles": {"type": "array", "items": {"type": "string"}},
                "kind": {"type": "string"}, "created_at": {"type": "string"}
            }
        },
        "identity": {
            "type": "object",
            "properties": {"username": {"type": "string"}, "roles": {"type": "array", "items": {"type": "string"}}, "display_name": {"type": "string"}, "email": {"type": "string"}}
        },
        "hobbyRequest": {
            "type": "object",
            "required": ["name", "category", "location", "creator"],
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"}, "slogan": {"type": "string"}, "intro": {"type": "string"},
                "description": {"type": "string"}, "category": {"type": "string"}, "location": {"type": "string"},
                "creator": {"type": "string"}, "image_key": {"type": "string"}
            }
        },
        "hobby": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"}, "slogan": {"type": "string"}, "intro": {"type": "string"},
                "description": {"type": "string"}, "category": {"type": "string"}, "location": {"type": "string"},
                "creator": {"type": "string"}, "image_key": {"type": "string"},
                "created_at": {"type": "string"}, "updated_at": {"type": "string"}
            }
        },
        "file": {"type": "object", "properties": {"key": {"type": "string"}, "url": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Hobbie API",
	Description:      "Accounts, authentication and hobbies of the Hobbie marketplace.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
