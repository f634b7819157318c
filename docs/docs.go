// Package docs holds the OpenAPI document served by gin-swagger at /docs.
// It mirrors the swag annotations on the handlers in internal/handler.
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
        "/product": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "product"
                ],
                "summary": "Create a product with its full UOM tree",
                "parameters": [
                    {
                        "description": "CreateProduct",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateProductRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.ProductResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/apierror.ValidationError"
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "product"
                ],
                "summary": "List every product with its subtree",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.ProductResponse"
                            }
                        }
                    }
                }
            }
        },
        "/product/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "product"
                ],
                "summary": "Get a product by id",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Product id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ProductResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "product"
                ],
                "summary": "Partially update a product tree",
                "description": "Only fields present in the body are applied. Every uomId, addonId and addonItemId must exist under its parent.",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Product id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "UpdateProduct",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateProductRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ProductResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "product"
                ],
                "summary": "Delete a product and everything below it",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Product id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ProductResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    }
                }
            }
        },
        "/product/{id}/uoms": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "product"
                ],
                "summary": "Attach a new UOM tree to a product",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Product id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "CreateUOM",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateUOMRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.ProductResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/apierror.ValidationError"
                        }
                    }
                }
            }
        },
        "/product/{id}/uoms/{uomId}": {
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "product"
                ],
                "summary": "Delete a UOM of a product",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Product id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "UOM id",
                        "name": "uomId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ProductResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    }
                }
            }
        },
        "/product/{id}/uoms/{uomId}/addons": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "product"
                ],
                "summary": "Attach a new addon to a product UOM",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Product id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "UOM id",
                        "name": "uomId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "CreateAddon",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateAddonRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ProductResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/apierror.ValidationError"
                        }
                    }
                }
            }
        },
        "/product/{id}/uoms/{uomId}/addons/{addonId}": {
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "product"
                ],
                "summary": "Delete an addon of a product UOM",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Product id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "UOM id",
                        "name": "uomId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Addon id",
                        "name": "addonId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ProductResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    }
                }
            }
        },
        "/uom": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "uom"
                ],
                "summary": "Create a standalone UOM tree",
                "parameters": [
                    {
                        "description": "CreateUOM",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateUOMRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.UOMResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/apierror.ValidationError"
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "uom"
                ],
                "summary": "List every UOM with its subtree",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.UOMResponse"
                            }
                        }
                    }
                }
            }
        },
        "/uom/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "uom"
                ],
                "summary": "Get a UOM by id",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "UOM id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.UOMResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "uom"
                ],
                "summary": "Partially update a UOM, its barcode and image",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "UOM id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "UpdateUOM",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateUOMRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.UOMResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/apierror.ValidationError"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "uom"
                ],
                "summary": "Delete a UOM and everything below it",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "UOM id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.UOMResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    }
                }
            }
        },
        "/addon": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "addon"
                ],
                "summary": "Create a standalone addon with its items",
                "parameters": [
                    {
                        "description": "CreateAddon",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateAddonRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.AddonResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/apierror.ValidationError"
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "addon"
                ],
                "summary": "List every addon with its items",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.AddonResponse"
                            }
                        }
                    }
                }
            }
        },
        "/addon/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "addon"
                ],
                "summary": "Get an addon by id",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Addon id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AddonResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "addon"
                ],
                "summary": "Partially update an addon and its items",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Addon id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "UpdateAddon",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateAddonRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AddonResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/apierror.ValidationError"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "addon"
                ],
                "summary": "Delete an addon and its items",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Addon id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AddonResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "apierror.APIError": {
            "type": "object",
            "properties": {
                "detail": {
                    "type": "string"
                }
            }
        },
        "apierror.ValidationError": {
            "type": "object",
            "properties": {
                "detail": {
                    "type": "string"
                },
                "fields": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.AddonItemResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "dto.AddonResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "uomId": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "addonItems": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AddonItemResponse"
                    }
                }
            }
        },
        "dto.CreateAddonItemRequest": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "name": {
                    "type": "string"
                }
            }
        },
        "dto.CreateAddonRequest": {
            "type": "object",
            "required": [
                "addonItems",
                "name"
            ],
            "properties": {
                "name": {
                    "type": "string"
                },
                "addonItems": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CreateAddonItemRequest"
                    }
                }
            }
        },
        "dto.CreateProductRequest": {
            "type": "object",
            "required": [
                "name",
                "uoms"
            ],
            "properties": {
                "name": {
                    "type": "string"
                },
                "uoms": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CreateUOMRequest"
                    }
                }
            }
        },
        "dto.CreateUOMBarcodeRequest": {
            "type": "object",
            "required": [
                "barcode"
            ],
            "properties": {
                "barcode": {
                    "type": "string"
                }
            }
        },
        "dto.CreateUOMImageRequest": {
            "type": "object",
            "required": [
                "url"
            ],
            "properties": {
                "url": {
                    "type": "string"
                }
            }
        },
        "dto.CreateUOMRequest": {
            "type": "object",
            "required": [
                "addons",
                "name",
                "uomBarcode",
                "uomImage"
            ],
            "properties": {
                "name": {
                    "type": "string"
                },
                "uomBarcode": {
                    "$ref": "#/definitions/dto.CreateUOMBarcodeRequest"
                },
                "uomImage": {
                    "$ref": "#/definitions/dto.CreateUOMImageRequest"
                },
                "addons": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CreateAddonRequest"
                    }
                }
            }
        },
        "dto.ProductResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "uoms": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.UOMResponse"
                    }
                }
            }
        },
        "dto.UOMBarcodeResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "barcode": {
                    "type": "string"
                }
            }
        },
        "dto.UOMImageResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "dto.UOMResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "productId": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "uomBarcode": {
                    "$ref": "#/definitions/dto.UOMBarcodeResponse"
                },
                "uomImage": {
                    "$ref": "#/definitions/dto.UOMImageResponse"
                },
                "addons": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AddonResponse"
                    }
                }
            }
        },
        "dto.UpdateAddonItemRequest": {
            "type": "object",
            "required": [
                "addonItemId"
            ],
            "properties": {
                "addonItemId": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "dto.UpdateAddonRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "addonItems": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.UpdateAddonItemRequest"
                    }
                }
            }
        },
        "dto.UpdateProductAddonRequest": {
            "type": "object",
            "required": [
                "addonId"
            ],
            "properties": {
                "addonId": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "addonItems": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.UpdateAddonItemRequest"
                    }
                }
            }
        },
        "dto.UpdateProductRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "uoms": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.UpdateProductUOMRequest"
                    }
                }
            }
        },
        "dto.UpdateProductUOMRequest": {
            "type": "object",
            "required": [
                "uomId"
            ],
            "properties": {
                "uomId": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "uomBarcode": {
                    "$ref": "#/definitions/dto.UpdateUOMBarcodeRequest"
                },
                "uomImage": {
                    "$ref": "#/definitions/dto.UpdateUOMImageRequest"
                },
                "addons": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.UpdateProductAddonRequest"
                    }
                }
            }
        },
        "dto.UpdateUOMBarcodeRequest": {
            "type": "object",
            "properties": {
                "barcode": {
                    "type": "string"
                }
            }
        },
        "dto.UpdateUOMImageRequest": {
            "type": "object",
            "properties": {
                "url": {
                    "type": "string"
                }
            }
        },
        "dto.UpdateUOMRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "uomBarcode": {
                    "$ref": "#/definitions/dto.UpdateUOMBarcodeRequest"
                },
                "uomImage": {
                    "$ref": "#/definitions/dto.UpdateUOMImageRequest"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Complex Product CRUD API",
	Description:      "Products with nested units of measure, barcodes, images, addons and addon items.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
