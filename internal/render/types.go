package render

import (
	"fmt"
	"strings"

	"github.com/querykit/querykit/internal/model"
	"github.com/querykit/querykit/internal/naming"
)

// Types renders the optional types.ts: one coarse parameter interface per
// operation that declares parameters. Type fidelity is deliberately
// limited to the top-level schema type; $ref, oneOf and allOf are not
// resolved.
func Types(groups model.GroupedOperations) string {
	var b strings.Builder
	b.WriteString(Header)

	for _, g := range groups {
		for _, op := range g.Operations {
			params := dedupByName(append(append(append([]model.Parameter{}, op.PathParams()...), op.QueryParams()...), op.HeaderParams()...))
			if len(params) == 0 {
				continue
			}
			fmt.Fprintf(&b, "\n/** Parameters of %s %s. */\n", strings.ToUpper(string(op.Method)), op.Path)
			fmt.Fprintf(&b, "export interface %s {\n", naming.ParamsTypeName(op.ID))
			for _, p := range params {
				opt := "?"
				if p.Required {
					opt = ""
				}
				fmt.Fprintf(&b, "  %s%s: %s;\n", tsProp(p.Name), opt, p.Shape.TSType())
			}
			b.WriteString("}\n")
		}
	}
	return b.String()
}
