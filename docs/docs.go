// Package docs registers the storefront OpenAPI document with swag so that
// fiber-swagger can serve it under /swagger.
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
    "securityDefinitions": {
        "BasicAuth": {"type": "basic"},
        "BearerAuth": {"type": "apiKey", "in": "header", "name": "Authorization"}
    },
    "paths": {
        "/ping": {"get": {"tags": ["system"], "summary": "Build info and uptime", "responses": {"200": {"description": "OK"}}}},
        "/metrics": {"get": {"tags": ["system"], "summary": "Process metrics", "security": [{"BasicAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/products": {"get": {"tags": ["products"], "summary": "Catalog state of the session", "parameters": [{"name": "reload", "in": "query", "type": "boolean"}], "responses": {"200": {"description": "OK"}}}},
        "/v1/products/featured": {"get": {"tags": ["products"], "summary": "Featured products", "responses": {"200": {"description": "OK"}}}},
        "/v1/products/{id}": {"get": {"tags": ["products"], "summary": "Fetch one product into the session", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/v1/products/actions": {"post": {"tags": ["products"], "summary": "Dispatch a catalog action", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/v1/products/admin": {
            "get": {"tags": ["admin"], "summary": "Paginated catalog", "security": [{"BasicAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["admin"], "summary": "Create a product", "security": [{"BasicAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/v1/products/admin/{id}": {"put": {"tags": ["admin"], "summary": "Update a product", "security": [{"BasicAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}},
        "/v1/filter": {"get": {"tags": ["filter"], "summary": "Filter state of the session", "responses": {"200": {"description": "OK"}}}},
        "/v1/filter/products": {"get": {"tags": ["filter"], "summary": "Paginated filtered products", "parameters": [{"name": "limit", "in": "query", "type": "integer"}, {"name": "page", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK"}}}},
        "/v1/filter/options": {"get": {"tags": ["filter"], "summary": "Filter options and sort keys", "responses": {"200": {"description": "OK"}}}},
        "/v1/filter/sort": {"put": {"tags": ["filter"], "summary": "Change the sort key", "responses": {"200": {"description": "OK"}}}},
        "/v1/filter/view": {"put": {"tags": ["filter"], "summary": "Switch grid or list view", "responses": {"200": {"description": "OK"}}}},
        "/v1/filter/filters": {
            "put": {"tags": ["filter"], "summary": "Set one filter", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["filter"], "summary": "Clear filters", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/filter/actions": {"post": {"tags": ["filter"], "summary": "Dispatch a filter action", "responses": {"200": {"description": "OK"}}}},
        "/v1/cart": {
            "get": {"tags": ["cart"], "summary": "Cart state of the session", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["cart"], "summary": "Empty the cart", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/cart/summary": {"get": {"tags": ["cart"], "summary": "Cart with formatted prices", "responses": {"200": {"description": "OK"}}}},
        "/v1/cart/items": {"post": {"tags": ["cart"], "summary": "Add a product to the cart", "responses": {"201": {"description": "Created"}}}},
        "/v1/cart/items/{id}": {
            "patch": {"tags": ["cart"], "summary": "Increase or decrease an item amount", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["cart"], "summary": "Remove an item", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}
        },
        "/v1/cart/actions": {"post": {"tags": ["cart"], "summary": "Dispatch a cart action", "responses": {"200": {"description": "OK"}}}},
        "/v1/session": {
            "get": {"tags": ["session"], "summary": "Whole provider tree of the session", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["session"], "summary": "End the session", "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/session/admin": {"get": {"tags": ["admin"], "summary": "Live session count", "security": [{"BasicAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/user": {"get": {"tags": ["user"], "summary": "Signed-in user or null", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/checkout": {"get": {"tags": ["user"], "summary": "Checkout summary, signed-in users only", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "302": {"description": "Redirect to the landing route"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Storefront API",
	Description:      "Per-session storefront state: catalog, filters, cart and checkout.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
