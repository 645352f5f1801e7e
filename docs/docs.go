// Package docs registers the OpenAPI document served at /swagger/.
// Regenerate with: swag init -g cmd/ambassadors/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ambassadors": {
            "get": {
                "tags": ["ambassadors"],
                "summary": "Search the ambassador directory",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Name, role or team substring", "name": "q", "in": "query"},
                    {"type": "string", "description": "District or team; Barchasi for all", "name": "district", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}}
            }
        },
        "/ambassadors/team": {
            "get": {
                "tags": ["ambassadors"],
                "summary": "Team tree with leaders and members",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}}
            }
        },
        "/ambassadors/districts": {
            "get": {
                "tags": ["ambassadors"],
                "summary": "Directory category options",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}}
            }
        },
        "/map/regions": {
            "get": {
                "tags": ["map"],
                "summary": "Regions with geometry and member counts",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}}
            }
        },
        "/map/regions/{regionID}": {
            "get": {
                "tags": ["map"],
                "summary": "One region and its ambassadors",
                "parameters": [{"type": "string", "name": "regionID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/events": {
            "get": {
                "tags": ["events"],
                "summary": "List events",
                "parameters": [{"type": "string", "description": "Event type; Barchasi for all", "name": "type", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}}
            }
        },
        "/events/{eventID}": {
            "get": {
                "tags": ["events"],
                "summary": "Get an event",
                "parameters": [{"type": "string", "format": "uuid", "name": "eventID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/events/{eventID}/registrations": {
            "post": {
                "tags": ["events"],
                "summary": "Register for an event",
                "consumes": ["application/json"],
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "eventID", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "409": {"description": "event_full or already_registered", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "503": {"description": "store_unavailable", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/blog": {
            "get": {
                "tags": ["blog"],
                "summary": "List blog posts",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}}
            }
        },
        "/blog/{slug}": {
            "get": {
                "tags": ["blog"],
                "summary": "Get a blog post by slug or id",
                "parameters": [{"type": "string", "name": "slug", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/partners": {
            "get": {
                "tags": ["network"],
                "summary": "Venture funds and mentors",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}}
            }
        },
        "/jobs": {
            "get": {
                "tags": ["network"],
                "summary": "Search approved team listings",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "string", "name": "role", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}}
            }
        },
        "/team-requests": {
            "post": {
                "tags": ["submissions"],
                "summary": "Ask for team members",
                "consumes": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.TeamRequestRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/contact": {
            "post": {
                "tags": ["submissions"],
                "summary": "Send a contact message",
                "consumes": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.ContactRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/assistant/messages": {
            "post": {
                "tags": ["assistant"],
                "summary": "Ask the AI mentor",
                "consumes": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.AskRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "503": {"description": "assistant_unavailable", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness and database reachability",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "helpers.APIError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {"data": {}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.RegisterRequest": {
            "type": "object",
            "required": ["name", "phone", "district"],
            "properties": {
                "name": {"type": "string"},
                "phone": {"type": "string", "example": "+998901234567"},
                "district": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "controllers.TeamRequestRequest": {
            "type": "object",
            "required": ["startup_name", "founder_name", "phone", "description", "roles_needed"],
            "properties": {
                "startup_name": {"type": "string"},
                "founder_name": {"type": "string"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "telegram": {"type": "string"},
                "description": {"type": "string"},
                "roles_needed": {"type": "array", "items": {"type": "string"}},
                "other_role": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "controllers.ContactRequest": {
            "type": "object",
            "required": ["name", "message"],
            "properties": {
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "controllers.AskRequest": {
            "type": "object",
            "required": ["message"],
            "properties": {"message": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Startup Ambassadors API",
	Description:      "Directory, district map, events, blog and submissions for Startup Ambassadors Tashkent.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
