// Package docs registers the OpenAPI document served at /swagger.
// Keep it in step with the @-annotations in internal/http/handlers.go.
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
        "/auth/captcha": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "New captcha challenge",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpapi.captchaResp"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Credentials", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Identity"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Log out",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/auth/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Identity"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/auth/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign up",
                "parameters": [
                    {"description": "Profile", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Identity"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/cart": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Current cart",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpapi.cartResp"}}
                }
            },
            "put": {
                "description": "Replaces whatever the cart held before.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Put a bundle in the cart",
                "parameters": [
                    {"description": "Selection", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/httpapi.putCartReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CartItem"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "tags": ["cart"],
                "summary": "Empty the cart",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/catalog": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List bundles",
                "parameters": [
                    {"type": "string", "description": "Name contains", "name": "q", "in": "query"},
                    {"type": "string", "description": "Tag", "name": "tag", "in": "query"},
                    {"type": "integer", "description": "Min price", "name": "min_price", "in": "query"},
                    {"type": "integer", "description": "Max price", "name": "max_price", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.ProductBundle"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/catalog/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get bundle by id",
                "parameters": [
                    {"type": "integer", "description": "Bundle ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ProductBundle"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/checkout": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["checkout"],
                "summary": "Place the order",
                "parameters": [
                    {"description": "Shipping details", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.CheckoutForm"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.OrderRecord"}},
                    "303": {"description": "See Other", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/order-status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Order status and tracking",
                "parameters": [
                    {"type": "boolean", "description": "Expand the tracking panel", "name": "track", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.OrderStatusView"}},
                    "303": {"description": "See Other", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/payment": {
            "get": {
                "produces": ["application/json"],
                "tags": ["payment"],
                "summary": "Payment page summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpapi.paymentSummaryResp"}},
                    "303": {"description": "See Other", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "description": "Accepts JSON or multipart with an optional \"screenshot\" file; only the file name is kept.",
                "consumes": ["application/json", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["payment"],
                "summary": "Complete the mock payment",
                "parameters": [
                    {"description": "Screenshot reference", "name": "input", "in": "body", "schema": {"$ref": "#/definitions/httpapi.completePaymentReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpapi.completePaymentResp"}},
                    "303": {"description": "See Other", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "domain.CartItem": {
            "type": "object",
            "properties": {
                "bundle": {"$ref": "#/definitions/domain.ProductBundle"},
                "selected_size": {"$ref": "#/definitions/domain.SizeSelection"}
            }
        },
        "domain.CheckoutForm": {
            "type": "object",
            "required": ["address", "city", "email", "name", "phone", "pincode", "state"],
            "properties": {
                "address": {"type": "string"},
                "city": {"type": "string"},
                "email": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "pincode": {"type": "string"},
                "state": {"type": "string"}
            }
        },
        "domain.Identity": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "token": {"type": "string"}
            }
        },
        "domain.OrderRecord": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "city": {"type": "string"},
                "combo": {"$ref": "#/definitions/domain.CartItem"},
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "name": {"type": "string"},
                "order_id": {"type": "string"},
                "phone": {"type": "string"},
                "pincode": {"type": "string"},
                "state": {"type": "string"}
            }
        },
        "domain.OrderStatusView": {
            "type": "object",
            "properties": {
                "order": {"$ref": "#/definitions/domain.OrderRecord"},
                "payment": {"$ref": "#/definitions/domain.PaymentConfirmation"},
                "show_tracking": {"type": "boolean"},
                "steps": {"type": "array", "items": {"$ref": "#/definitions/domain.OrderStep"}},
                "tracking": {"$ref": "#/definitions/domain.TrackingStatus"}
            }
        },
        "domain.OrderStep": {
            "type": "object",
            "properties": {
                "completed": {"type": "boolean"},
                "key": {"type": "string"},
                "name": {"type": "string"},
                "step": {"type": "integer"}
            }
        },
        "domain.PaymentConfirmation": {
            "type": "object",
            "properties": {
                "order_id": {"type": "string"},
                "screenshot": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "domain.ProductBundle": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "dress_images": {"type": "array", "items": {"type": "string"}},
                "id": {"type": "integer"},
                "items": {"type": "array", "items": {"type": "string"}},
                "name": {"type": "string"},
                "price": {"type": "integer"},
                "shoes_image": {"type": "string"},
                "sunglasses_image": {"type": "string"},
                "tag": {"type": "string"},
                "watch_image": {"type": "string"}
            }
        },
        "domain.SizeSelection": {
            "type": "object",
            "properties": {
                "dress": {"type": "string"},
                "shoes": {"type": "string"}
            }
        },
        "domain.TrackingStatus": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "estimated_delivery": {"type": "string"},
                "progress": {"type": "integer"},
                "stage": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "httpapi.captchaResp": {
            "type": "object",
            "properties": {
                "challenge": {"type": "string"},
                "enabled": {"type": "boolean"}
            }
        },
        "httpapi.cartResp": {
            "type": "object",
            "properties": {
                "empty": {"type": "boolean"},
                "item": {"$ref": "#/definitions/domain.CartItem"}
            }
        },
        "httpapi.completePaymentReq": {
            "type": "object",
            "properties": {
                "screenshot": {"type": "string"}
            }
        },
        "httpapi.completePaymentResp": {
            "type": "object",
            "properties": {
                "payment": {"$ref": "#/definitions/domain.PaymentConfirmation"},
                "redirect": {"type": "string"}
            }
        },
        "httpapi.paymentSummaryResp": {
            "type": "object",
            "properties": {
                "cart": {"$ref": "#/definitions/domain.CartItem"},
                "order": {"$ref": "#/definitions/domain.OrderRecord"}
            }
        },
        "httpapi.putCartReq": {
            "type": "object",
            "properties": {
                "bundle_id": {"type": "integer"},
                "selected_size": {"$ref": "#/definitions/domain.SizeSelection"}
            }
        },
        "service.LoginRequest": {
            "type": "object",
            "properties": {
                "captcha": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "service.SignupRequest": {
            "type": "object",
            "properties": {
                "captcha": {"type": "string"},
                "confirm_password": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "password": {"type": "string"},
                "phone": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:9091",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "BABA Shopping API",
	Description:      "Single-session storefront: catalog, cart, checkout, mock UPI payment and order tracking.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
