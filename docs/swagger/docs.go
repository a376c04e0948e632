// Package swagger holds the OpenAPI description of the UI routes.
package swagger

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
        "/": {
            "get": {
                "description": "Renders the application page. Outside production mode the debug query parameter adds a panel with the effective configuration.",
                "produces": ["text/html"],
                "tags": ["ui"],
                "summary": "Render Application",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Show the debug panel",
                        "name": "debug",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Application page",
                        "schema": {"type": "string"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/_ui/click/{id}": {
            "post": {
                "description": "Runs the click listener of a rendered button and tells the browser whether to reload or close the page.",
                "produces": ["application/json"],
                "tags": ["ui"],
                "summary": "Click Button",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Button id from the data-ui-click attribute",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Per-server token from the ui-token meta tag",
                        "name": "X-UI-Token",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Click result",
                        "schema": {"$ref": "#/definitions/content.ClickResult"}
                    },
                    "401": {
                        "description": "Missing or invalid token",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    },
                    "404": {
                        "description": "Unknown button",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    },
                    "500": {
                        "description": "Listener failed",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        }
    },
    "definitions": {
        "content.ClickResult": {
            "type": "object",
            "properties": {
                "close": {"type": "boolean"},
                "reload": {"type": "boolean"},
                "notifications": {"type": "array", "items": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "embed-ui UI API",
	Description:      "Routes served by an embedded UI server.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
