// Package docs holds the OpenAPI description served under /swagger.
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
        "/customers": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Customers"
                ],
                "summary": "List customers",
                "description": "Lists customers filtered by type and segment, sorted and paginated.",
                "parameters": [
                    {
                        "enum": [
                            "PERSONAL",
                            "BUSINESS"
                        ],
                        "type": "string",
                        "description": "Customer type",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "enum": [
                            "STANDARD",
                            "VIP",
                            "PYME"
                        ],
                        "type": "string",
                        "description": "Customer segment",
                        "name": "segment",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 0,
                        "description": "Zero-based page",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 20,
                        "description": "Page size (1-100)",
                        "name": "size",
                        "in": "query"
                    },
                    {
                        "enum": [
                            "createdAt",
                            "firstName",
                            "lastName",
                            "businessName"
                        ],
                        "type": "string",
                        "description": "Sort field",
                        "name": "sort",
                        "in": "query"
                    },
                    {
                        "enum": [
                            "asc",
                            "desc"
                        ],
                        "type": "string",
                        "description": "Sort direction",
                        "name": "direction",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "List of customers",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/customer.Response"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid query parameter",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Customers"
                ],
                "summary": "Create a new customer",
                "description": "Creates a PERSONAL or BUSINESS customer. The segment always starts as STANDARD.",
                "parameters": [
                    {
                        "description": "Customer creation request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateCustomerRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Customer successfully created",
                        "schema": {
                            "$ref": "#/definitions/customer.Response"
                        }
                    },
                    "400": {
                        "description": "Missing field, invalid payload or business rule violation",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "An active customer already holds the document",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error during creation",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/customers/by-document/{documentNumber}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Customers"
                ],
                "summary": "Find the active customer by document number",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Document number",
                        "name": "documentNumber",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Customer details retrieved",
                        "schema": {
                            "$ref": "#/definitions/customer.Response"
                        }
                    },
                    "404": {
                        "description": "No active customer holds the document number",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "More than one active customer holds the document number",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/customers/eligibility": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Customers"
                ],
                "summary": "Customer eligibility by document",
                "description": "Resolves the single active customer holding the document.",
                "parameters": [
                    {
                        "enum": [
                            "DNI",
                            "RUC",
                            "CE"
                        ],
                        "type": "string",
                        "description": "Document type",
                        "name": "documentType",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Document number",
                        "name": "documentNumber",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Eligibility projection",
                        "schema": {
                            "$ref": "#/definitions/customer.Eligibility"
                        }
                    },
                    "400": {
                        "description": "Missing or invalid parameters",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "No active customer holds the document",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "More than one active customer holds the document",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/customers/{customerID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Customers"
                ],
                "summary": "Retrieve customer details",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Customer ID",
                        "name": "customerID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Customer details retrieved",
                        "schema": {
                            "$ref": "#/definitions/customer.Response"
                        }
                    },
                    "404": {
                        "description": "Customer not found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Customers"
                ],
                "summary": "Replace a customer",
                "description": "Fully updates a customer. The segment is mandatory.",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Customer ID",
                        "name": "customerID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Customer update request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateCustomerRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Customer updated",
                        "schema": {
                            "$ref": "#/definitions/customer.Response"
                        }
                    },
                    "400": {
                        "description": "Invalid payload or business rule violation",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Customer not found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Document already belongs to another active customer",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Segment missing or not allowed for the customer type",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Customers"
                ],
                "summary": "Soft-delete a customer",
                "description": "Marks the customer inactive. Deleting an inactive customer succeeds without changes.",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Customer ID",
                        "name": "customerID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Customer deactivated"
                    },
                    "404": {
                        "description": "Customer not found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.AddressRequest": {
            "type": "object",
            "properties": {
                "line1": {
                    "type": "string",
                    "maxLength": 200
                },
                "city": {
                    "type": "string",
                    "maxLength": 100
                },
                "district": {
                    "type": "string",
                    "maxLength": 100
                },
                "country": {
                    "type": "string",
                    "maxLength": 100
                }
            }
        },
        "dto.CreateCustomerRequest": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "enum": [
                        "PERSONAL",
                        "BUSINESS"
                    ]
                },
                "segment": {
                    "type": "string",
                    "enum": [
                        "STANDARD",
                        "VIP",
                        "PYME"
                    ]
                },
                "firstName": {
                    "type": "string",
                    "maxLength": 200
                },
                "lastName": {
                    "type": "string",
                    "maxLength": 200
                },
                "businessName": {
                    "type": "string",
                    "maxLength": 300
                },
                "email": {
                    "type": "string"
                },
                "documentType": {
                    "type": "string",
                    "enum": [
                        "DNI",
                        "RUC",
                        "CE"
                    ]
                },
                "documentNumber": {
                    "type": "string",
                    "maxLength": 30
                },
                "phone": {
                    "type": "string",
                    "maxLength": 30
                },
                "address": {
                    "$ref": "#/definitions/dto.AddressRequest"
                },
                "active": {
                    "type": "boolean"
                }
            }
        },
        "dto.UpdateCustomerRequest": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "enum": [
                        "PERSONAL",
                        "BUSINESS"
                    ]
                },
                "segment": {
                    "type": "string",
                    "enum": [
                        "STANDARD",
                        "VIP",
                        "PYME"
                    ]
                },
                "firstName": {
                    "type": "string",
                    "maxLength": 200
                },
                "lastName": {
                    "type": "string",
                    "maxLength": 200
                },
                "businessName": {
                    "type": "string",
                    "maxLength": 300
                },
                "email": {
                    "type": "string"
                },
                "documentType": {
                    "type": "string",
                    "enum": [
                        "DNI",
                        "RUC",
                        "CE"
                    ]
                },
                "documentNumber": {
                    "type": "string",
                    "maxLength": 30
                },
                "phone": {
                    "type": "string",
                    "maxLength": 30
                },
                "address": {
                    "$ref": "#/definitions/dto.AddressRequest"
                },
                "active": {
                    "type": "boolean"
                }
            }
        },
        "dto.ErrorDetail": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "field": {
                    "type": "string"
                },
                "fields": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "array",
                        "items": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "$ref": "#/definitions/dto.ErrorDetail"
                }
            }
        },
        "customer.AddressResponse": {
            "type": "object",
            "properties": {
                "line1": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "district": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                }
            }
        },
        "customer.Response": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "PERSONAL",
                        "BUSINESS"
                    ]
                },
                "segment": {
                    "type": "string",
                    "enum": [
                        "STANDARD",
                        "VIP",
                        "PYME"
                    ]
                },
                "firstName": {
                    "type": "string"
                },
                "lastName": {
                    "type": "string"
                },
                "businessName": {
                    "type": "string"
                },
                "displayName": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "documentType": {
                    "type": "string",
                    "enum": [
                        "DNI",
                        "RUC",
                        "CE"
                    ]
                },
                "documentNumber": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "address": {
                    "$ref": "#/definitions/customer.AddressResponse"
                },
                "active": {
                    "type": "boolean"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "deletedAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "customer.Eligibility": {
            "type": "object",
            "properties": {
                "customerId": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "segment": {
                    "type": "string"
                },
                "hasActiveProduct": {
                    "type": "boolean"
                }
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
	Title:            "Customers Service API",
	Description:      "Customer master records with active-document uniqueness, segment rules and eligibility lookups.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
