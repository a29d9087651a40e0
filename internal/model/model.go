// Package model holds the normalized operation model extracted from an
// OpenAPI document. It is built once per generation run and never mutated
// afterwards; every renderer consumes it read-only.
package model

// Method is a recognized HTTP method, lowercase.
type Method string

const (
	MethodGet    Method = "get"
	MethodPost   Method = "post"
	MethodPut    Method = "put"
	MethodPatch  Method = "patch"
	MethodDelete Method = "delete"
	MethodHead   Method = "head"
)

// Methods lists the recognized methods in the order operations are
// extracted from a path item. Anything else (options, trace) is ignored.
var Methods = []Method{MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete, MethodHead}

// Shape is the coarse classification of an OpenAPI schema, derived only
// from the top-level schema type. No $ref following, no oneOf/allOf
// resolution; anything the classifier does not recognize is Unknown.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeString
	ShapeNumber
	ShapeBoolean
	ShapeArray
	ShapeObject
)

// ShapeOf classifies a top-level schema type string.
func ShapeOf(schemaType string) Shape {
	switch schemaType {
	case "string":
		return ShapeString
	case "number", "integer":
		return ShapeNumber
	case "boolean":
		return ShapeBoolean
	case "array":
		return ShapeArray
	case "object":
		return ShapeObject
	default:
		return ShapeUnknown
	}
}

// TSType renders the shape as a TypeScript type expression.
func (s Shape) TSType() string {
	switch s {
	case ShapeString:
		return "string"
	case ShapeNumber:
		return "number"
	case ShapeBoolean:
		return "boolean"
	case ShapeArray:
		return "unknown[]"
	case ShapeObject:
		return "Record<string, unknown>"
	default:
		return "unknown"
	}
}

// Location is where a parameter is carried.
type Location string

const (
	InPath   Location = "path"
	InQuery  Location = "query"
	InHeader Location = "header"
	InCookie Location = "cookie"
)

// Parameter is a single operation parameter.
type Parameter struct {
	Name        string
	In          Location
	Required    bool
	Shape       Shape
	Description string
}

// RequestBody holds the first declared content type of a request body.
type RequestBody struct {
	ContentType string
	Required    bool
	Shape       Shape
}

// Response holds the first declared content entry of one status code.
// HasSchema is false when the response declares no content (or content
// without a schema), in which case only the description survives.
type Response struct {
	Status      string
	ContentType string
	Shape       Shape
	Description string
	HasSchema   bool
}

// Operation is one path × method pair from the document.
type Operation struct {
	Tag         string
	ID          string
	Method      Method
	Path        string
	Summary     string
	Parameters  []Parameter
	RequestBody *RequestBody
	Responses   []Response
}

// IsQuery reports whether the operation maps to a read-style cached hook.
// Only get and head qualify; everything else becomes a mutation.
func (op Operation) IsQuery() bool {
	return op.Method == MethodGet || op.Method == MethodHead
}

// ParamsIn returns the parameters carried in the given location, in
// declaration order. The flat Parameters list stays the source of truth.
func (op Operation) ParamsIn(loc Location) []Parameter {
	var out []Parameter
	for _, p := range op.Parameters {
		if p.In == loc {
			out = append(out, p)
		}
	}
	return out
}

// PathParams returns the path parameters in declaration order.
func (op Operation) PathParams() []Parameter { return op.ParamsIn(InPath) }

// QueryParams returns the query parameters in declaration order.
func (op Operation) QueryParams() []Parameter { return op.ParamsIn(InQuery) }

// HeaderParams returns the header parameters in declaration order.
func (op Operation) HeaderParams() []Parameter { return op.ParamsIn(InHeader) }

// SuccessResponse returns the first 2xx response that carries a schema,
// or nil when no response types the operation.
func (op Operation) SuccessResponse() *Response {
	for i := range op.Responses {
		r := &op.Responses[i]
		if len(r.Status) == 3 && r.Status[0] == '2' && r.HasSchema {
			return r
		}
	}
	return nil
}

// OperationModel is the full extraction result for one document.
type OperationModel struct {
	Title      string
	Version    string
	BaseURL    string
	Operations []Operation
}
