// Package loader reads an OpenAPI 3.x document from a file or URL, bundles
// its references, and extracts the normalized operation model the renderers
// consume. Any failure here is fatal for the run: nothing is written when
// the document cannot be loaded.
package loader

import (
	"context"
	"fmt"

	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi/datamodel"
	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"

	"github.com/querykit/querykit/internal/model"
	"github.com/querykit/querykit/internal/naming"
)

// Load fetches and parses the document at source (local path or http(s)
// URL, JSON or YAML) and returns the extracted operation model.
func Load(ctx context.Context, source string) (*model.OperationModel, error) {
	raw, err := fetch(ctx, source)
	if err != nil {
		return nil, err
	}

	basePath, baseURL := baseRef(source)
	config := &datamodel.DocumentConfiguration{
		AllowFileReferences:   true,
		AllowRemoteReferences: true,
		BasePath:              basePath,
		BaseURL:               baseURL,
	}
	document, err := libopenapi.NewDocumentWithConfiguration(raw, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}

	v3doc, errs := document.BuildV3Model()
	if errs != nil {
		return nil, fmt.Errorf("failed to build v3 model: %v", errs)
	}

	return extract(&v3doc.Model), nil
}

// extract walks every path item × recognized method combination in
// document order and builds one Operation per combination.
func extract(doc *v3.Document) *model.OperationModel {
	out := &model.OperationModel{}

	if doc.Info != nil {
		out.Title = doc.Info.Title
		out.Version = doc.Info.Version
	}
	for _, server := range doc.Servers {
		if server != nil && server.URL != "" {
			out.BaseURL = server.URL
			break
		}
	}

	if doc.Paths == nil || doc.Paths.PathItems == nil {
		return out
	}

	for pair := doc.Paths.PathItems.First(); pair != nil; pair = pair.Next() {
		path := pair.Key()
		item := pair.Value()
		if item == nil {
			continue
		}

		byMethod := map[model.Method]*v3.Operation{
			model.MethodGet:    item.Get,
			model.MethodPost:   item.Post,
			model.MethodPut:    item.Put,
			model.MethodPatch:  item.Patch,
			model.MethodDelete: item.Delete,
			model.MethodHead:   item.Head,
		}

		for _, method := range model.Methods {
			op := byMethod[method]
			if op == nil {
				continue
			}
			out.Operations = append(out.Operations, extractOperation(path, method, item, op))
		}
	}

	return out
}

func extractOperation(path string, method model.Method, item *v3.PathItem, op *v3.Operation) model.Operation {
	tag := "default"
	if len(op.Tags) > 0 && op.Tags[0] != "" {
		tag = op.Tags[0]
	}

	// Path-item parameters and operation parameters are concatenated, not
	// de-duplicated by (name, in). A spec that re-declares a path-level
	// parameter at the operation level produces a duplicate entry.
	var params []model.Parameter
	for _, p := range item.Parameters {
		if p != nil {
			params = append(params, extractParameter(p))
		}
	}
	for _, p := range op.Parameters {
		if p != nil {
			params = append(params, extractParameter(p))
		}
	}

	return model.Operation{
		Tag:         tag,
		ID:          naming.OperationID(op.OperationId, string(method), path),
		Method:      method,
		Path:        path,
		Summary:     op.Summary,
		Parameters:  params,
		RequestBody: extractRequestBody(op.RequestBody),
		Responses:   extractResponses(op.Responses),
	}
}

func extractParameter(p *v3.Parameter) model.Parameter {
	shape := shapeOf(p.Schema)
	if shape == model.ShapeUnknown {
		// Parameters without a usable schema type are treated as strings.
		shape = model.ShapeString
	}
	return model.Parameter{
		Name:        p.Name,
		In:          model.Location(p.In),
		Required:    p.Required != nil && *p.Required,
		Shape:       shape,
		Description: p.Description,
	}
}

func extractRequestBody(rb *v3.RequestBody) *model.RequestBody {
	if rb == nil {
		return nil
	}
	body := &model.RequestBody{
		Required: rb.Required != nil && *rb.Required,
		Shape:    model.ShapeUnknown,
	}
	if rb.Content != nil {
		// First declared content type wins.
		if pair := rb.Content.First(); pair != nil {
			body.ContentType = pair.Key()
			if mt := pair.Value(); mt != nil {
				body.Shape = shapeOf(mt.Schema)
			}
		}
	}
	return body
}

func extractResponses(responses *v3.Responses) []model.Response {
	if responses == nil || responses.Codes == nil {
		return nil
	}
	var out []model.Response
	for pair := responses.Codes.First(); pair != nil; pair = pair.Next() {
		status := pair.Key()
		resp := pair.Value()
		if resp == nil {
			continue
		}
		r := model.Response{Status: status, Description: resp.Description}
		if resp.Content != nil {
			if cp := resp.Content.First(); cp != nil {
				r.ContentType = cp.Key()
				if mt := cp.Value(); mt != nil && mt.Schema != nil {
					r.Shape = shapeOf(mt.Schema)
					r.HasSchema = true
				}
			}
		}
		out = append(out, r)
	}
	return out
}

// shapeOf classifies a schema by its top-level type only. Proxies that
// cannot produce a schema (or carry no type) classify as Unknown.
func shapeOf(proxy *base.SchemaProxy) model.Shape {
	if proxy == nil {
		return model.ShapeUnknown
	}
	schema := proxy.Schema()
	if schema == nil || len(schema.Type) == 0 {
		return model.ShapeUnknown
	}
	return model.ShapeOf(schema.Type[0])
}
