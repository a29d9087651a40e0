package render

import (
	"fmt"
	"strings"

	"github.com/querykit/querykit/internal/model"
	"github.com/querykit/querykit/internal/naming"
)

// Hooks renders one hooks file containing every operation of the given
// groups. importPrefix is "." when the file sits next to client.ts and
// queryKeys.ts (combined mode) and ".." when it lives under hooks/
// (per-tag mode); nothing else may differ between the two modes.
func Hooks(groups model.GroupedOperations, importPrefix string) string {
	hasQuery, hasMutation := false, false
	var keyGroups model.GroupedOperations
	for _, g := range groups {
		groupHasQuery := false
		for _, op := range g.Operations {
			if op.IsQuery() {
				hasQuery = true
				groupHasQuery = true
			} else {
				hasMutation = true
			}
		}
		if groupHasQuery {
			keyGroups = append(keyGroups, g)
		}
	}

	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n")

	switch {
	case hasQuery && hasMutation:
		b.WriteString("import { useMutation, useQuery } from \"@tanstack/react-query\";\n\n")
	case hasQuery:
		b.WriteString("import { useQuery } from \"@tanstack/react-query\";\n\n")
	case hasMutation:
		b.WriteString("import { useMutation } from \"@tanstack/react-query\";\n\n")
	}

	if hasQuery {
		fmt.Fprintf(&b, "import { client, defaultRetry } from %s;\n", tsString(importPrefix+"/client"))
	} else {
		fmt.Fprintf(&b, "import { client } from %s;\n", tsString(importPrefix+"/client"))
	}
	b.WriteString(keysImport(keyGroups, importPrefix))

	for _, g := range groups {
		for _, op := range g.Operations {
			b.WriteString("\n")
			if op.IsQuery() {
				b.WriteString(queryHook(g.Tag, op))
			} else {
				b.WriteString(mutationHook(op))
			}
		}
	}
	return b.String()
}

func queryHook(tag string, op model.Operation) string {
	hookParams := append(append(append([]model.Parameter{}, op.PathParams()...), op.QueryParams()...), op.HeaderParams()...)
	queryParams := op.QueryParams()
	headerParams := op.HeaderParams()

	var b strings.Builder
	b.WriteString(hookDoc(op))

	if len(hookParams) > 0 {
		fmt.Fprintf(&b, "export function %s(params: %s, options?: Record<string, unknown>) {\n",
			naming.HookName(op.ID), typeLiteral(hookParams, nil))
	} else {
		fmt.Fprintf(&b, "export function %s(options?: Record<string, unknown>) {\n", naming.HookName(op.ID))
	}

	keyCall := fmt.Sprintf("%sKeys.%s()", naming.TagIdent(tag), naming.KeyName(op.ID))
	requestFields := []string{fmt.Sprintf("method: %s", tsString(string(op.Method))), "path: " + pathExpr(op, "params")}
	if len(queryParams) > 0 {
		fmt.Fprintf(&b, "  const query = %s;\n", objectLiteral(queryParams, "params"))
		keyCall = fmt.Sprintf("%sKeys.%s(query)", naming.TagIdent(tag), naming.KeyName(op.ID))
		requestFields = append(requestFields, "query")
	}
	if len(headerParams) > 0 {
		requestFields = append(requestFields, "headers: "+objectLiteral(headerParams, "params"))
	}
	requestFields = append(requestFields, "signal")

	b.WriteString("  return useQuery({\n")
	fmt.Fprintf(&b, "    queryKey: %s,\n", keyCall)
	fmt.Fprintf(&b, "    queryFn: ({ signal }) => client.request<%s>({ %s }),\n",
		responseType(op), strings.Join(requestFields, ", "))
	b.WriteString("    retry: defaultRetry,\n")
	b.WriteString("    ...options,\n")
	b.WriteString("  });\n")
	b.WriteString("}\n")
	return b.String()
}

func mutationHook(op model.Operation) string {
	variables := append(append(append([]model.Parameter{}, op.PathParams()...), op.QueryParams()...), op.HeaderParams()...)
	queryParams := op.QueryParams()
	headerParams := op.HeaderParams()

	var b strings.Builder
	b.WriteString(hookDoc(op))
	fmt.Fprintf(&b, "export function %s(options?: Record<string, unknown>) {\n", naming.HookName(op.ID))
	b.WriteString("  return useMutation({\n")

	requestFields := []string{fmt.Sprintf("method: %s", tsString(string(op.Method))), "path: " + pathExpr(op, "variables")}
	if len(queryParams) > 0 {
		requestFields = append(requestFields, "query: "+objectLiteral(queryParams, "variables"))
	}
	if len(headerParams) > 0 {
		requestFields = append(requestFields, "headers: "+objectLiteral(headerParams, "variables"))
	}
	if op.RequestBody != nil {
		requestFields = append(requestFields, "body: variables.body")
	}

	if len(variables) > 0 || op.RequestBody != nil {
		fmt.Fprintf(&b, "    mutationFn: (variables: %s) =>\n", typeLiteral(variables, op.RequestBody))
	} else {
		b.WriteString("    mutationFn: () =>\n")
	}
	fmt.Fprintf(&b, "      client.request<%s>({ %s }),\n", responseType(op), strings.Join(requestFields, ", "))
	b.WriteString("    ...options,\n")
	b.WriteString("  });\n")
	b.WriteString("}\n")
	return b.String()
}

func hookDoc(op model.Operation) string {
	line := strings.ToUpper(string(op.Method)) + " " + op.Path
	if op.Summary != "" {
		return fmt.Sprintf("/** %s. %s */\n", strings.TrimRight(op.Summary, "."), line)
	}
	return fmt.Sprintf("/** %s */\n", line)
}

// dedupByName keeps the first declaration of each parameter name. The
// model deliberately keeps duplicates from the additive path-item plus
// operation-level merge, but a TypeScript object type or literal may
// declare each property only once.
func dedupByName(params []model.Parameter) []model.Parameter {
	seen := make(map[string]bool, len(params))
	var out []model.Parameter
	for _, p := range params {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		out = append(out, p)
	}
	return out
}

// typeLiteral renders the inline object type for hook params or mutation
// variables, e.g. "{ petId: string; limit?: number; body?: unknown }".
func typeLiteral(params []model.Parameter, body *model.RequestBody) string {
	var fields []string
	for _, p := range dedupByName(params) {
		opt := "?"
		if p.Required {
			opt = ""
		}
		fields = append(fields, fmt.Sprintf("%s%s: %s", tsProp(p.Name), opt, p.Shape.TSType()))
	}
	if body != nil {
		opt := "?"
		if body.Required {
			opt = ""
		}
		fields = append(fields, fmt.Sprintf("body%s: %s", opt, body.Shape.TSType()))
	}
	return "{ " + strings.Join(fields, "; ") + " }"
}

// objectLiteral renders "{ limit: params.limit, status: params.status }"
// for the given parameters read off ref.
func objectLiteral(params []model.Parameter, ref string) string {
	var fields []string
	for _, p := range dedupByName(params) {
		fields = append(fields, fmt.Sprintf("%s: %s", tsProp(p.Name), tsAccess(ref, p.Name)))
	}
	return "{ " + strings.Join(fields, ", ") + " }"
}

// pathExpr renders the request path. Templated paths become template
// literals with every {name} placeholder replaced by a runtime reference:
// required parameters are referenced directly, optional ones fall back to
// the empty string so the path stays well-formed.
func pathExpr(op model.Operation, ref string) string {
	if !strings.Contains(op.Path, "{") {
		return tsString(op.Path)
	}
	path := op.Path
	for _, p := range op.PathParams() {
		access := tsAccess(ref, p.Name)
		if !p.Required {
			access += ` ?? ""`
		}
		path = strings.ReplaceAll(path, "{"+p.Name+"}", "${"+access+"}")
	}
	return "`" + path + "`"
}

func responseType(op model.Operation) string {
	if r := op.SuccessResponse(); r != nil {
		return r.Shape.TSType()
	}
	return "unknown"
}
