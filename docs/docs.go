// Package docs registers the OpenAPI document served under /swagger/*.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler annotations.
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
        "/records": {
            "get": {
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "List records",
                "parameters": [
                    {"type": "integer", "description": "Page number (1-based)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Case-sensitive substring of data", "name": "search", "in": "query"},
                    {"type": "string", "description": "Inclusive lower bound (YYYY-MM-DD or RFC 3339)", "name": "startDate", "in": "query"},
                    {"type": "string", "description": "Inclusive upper bound (YYYY-MM-DD or RFC 3339)", "name": "endDate", "in": "query"},
                    {"type": "string", "enum": ["createdAt", "data"], "name": "sortBy", "in": "query"},
                    {"type": "string", "enum": ["asc", "desc"], "name": "sortOrder", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.QueryResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Problem"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            }
        },
        "/records/performance": {
            "get": {
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Run the query benchmark",
                "parameters": [
                    {"type": "boolean", "description": "Store the report and return a presigned URL", "name": "archive", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.BenchmarkReport"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.Problem"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            }
        },
        "/records/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Records in a date range",
                "parameters": [
                    {"type": "string", "description": "Inclusive lower bound", "name": "startDate", "in": "query", "required": true},
                    {"type": "string", "description": "Inclusive upper bound", "name": "endDate", "in": "query", "required": true},
                    {"type": "integer", "description": "Maximum rows (default 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.DateRangeResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            }
        },
        "/records/search/date-range": {
            "get": {
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Paginated records in a date range",
                "parameters": [
                    {"type": "string", "description": "Inclusive lower bound (YYYY-MM-DD or RFC 3339)", "name": "startDate", "in": "query", "required": true},
                    {"type": "string", "description": "Inclusive upper bound (YYYY-MM-DD or RFC 3339)", "name": "endDate", "in": "query", "required": true},
                    {"type": "integer", "description": "Page number (1-based)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "string", "description": "createdAt or data", "name": "sortBy", "in": "query"},
                    {"type": "string", "description": "asc or desc", "name": "sortOrder", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.QueryResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Problem"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            }
        },
        "/records/search/text": {
            "get": {
                "description": "Paginated records whose data contains q (case-sensitive). Date parameters are ignored.",
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Text search",
                "parameters": [
                    {"type": "string", "description": "Case-sensitive substring of data", "name": "q", "in": "query", "required": true},
                    {"type": "integer", "description": "Page number (1-based)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "string", "description": "createdAt or data", "name": "sortBy", "in": "query"},
                    {"type": "string", "description": "asc or desc", "name": "sortOrder", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.QueryResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Problem"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            }
        },
        "/records/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Dataset statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Stats"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            }
        },
        "/records/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Get a record",
                "parameters": [
                    {"type": "integer", "description": "Record id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.RecordDetail"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Problem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            }
        }
    },
    "definitions": {
        "handler.Problem": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "title": {"type": "string"},
                "status": {"type": "integer"},
                "detail": {"type": "string"},
                "instance": {"type": "string"},
                "code": {"type": "string"},
                "request_id": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "model.Record": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "data": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "model.RecordDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "data": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"},
                "query_time_ms": {"type": "integer"}
            }
        },
        "model.QueryResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/model.Record"}},
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "limit": {"type": "integer"},
                "total_pages": {"type": "integer"},
                "query_time_ms": {"type": "integer"}
            }
        },
        "model.DateRangeResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/model.Record"}},
                "count": {"type": "integer"},
                "query_time_ms": {"type": "integer"},
                "date_range": {
                    "type": "object",
                    "properties": {
                        "start_date": {"type": "string"},
                        "end_date": {"type": "string"}
                    }
                }
            }
        },
        "model.MonthlyBucket": {
            "type": "object",
            "properties": {
                "month": {"type": "string"},
                "count": {"type": "integer"}
            }
        },
        "model.Stats": {
            "type": "object",
            "properties": {
                "total_records": {"type": "integer"},
                "monthly_stats": {"type": "array", "items": {"$ref": "#/definitions/model.MonthlyBucket"}},
                "recent_records": {"type": "integer"},
                "query_time_ms": {"type": "integer"}
            }
        },
        "model.BenchmarkResult": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "query_time_ms": {"type": "integer"},
                "result_count": {"type": "integer"}
            }
        },
        "model.BenchmarkReport": {
            "type": "object",
            "properties": {
                "individual_queries": {"type": "array", "items": {"$ref": "#/definitions/model.BenchmarkResult"}},
                "total_time_ms": {"type": "integer"},
                "average_time_ms": {"type": "number"},
                "archive_url": {"type": "string"}
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
	Title:            "Record Query API",
	Description:      "Filtered, paginated and aggregated reads over a time-stamped record table.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
