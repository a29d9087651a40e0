package render

import (
	"fmt"
	"strings"

	"github.com/querykit/querykit/internal/model"
	"github.com/querykit/querykit/internal/naming"
)

// Invalidate renders invalidate.ts: per-tag helpers that invalidate cache
// entries through the key factory, one per operation plus an "all" helper
// targeting the tag's root key.
func Invalidate(groups model.GroupedOperations) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\nimport type { QueryClient } from \"@tanstack/react-query\";\n\n")
	b.WriteString(keysImport(groups, "."))

	for _, g := range groups {
		ident := naming.TagIdent(g.Tag)
		fmt.Fprintf(&b, "\nexport const invalidate%s = {\n", naming.Exported(ident))
		fmt.Fprintf(&b, "  all: (queryClient: QueryClient) =>\n")
		fmt.Fprintf(&b, "    queryClient.invalidateQueries({ queryKey: %sKeys.root }),\n", ident)
		for _, op := range g.Operations {
			name := naming.KeyName(op.ID)
			fmt.Fprintf(&b, "  %s: (queryClient: QueryClient, params?: Record<string, unknown>) =>\n", name)
			fmt.Fprintf(&b, "    queryClient.invalidateQueries({ queryKey: %sKeys.%s(params) }),\n", ident, name)
		}
		b.WriteString("};\n")
	}
	return b.String()
}

// keysImport renders the import of every tag's key object from the
// queryKeys module, relative to the importing file.
func keysImport(groups model.GroupedOperations, prefix string) string {
	if len(groups) == 0 {
		return ""
	}
	idents := make([]string, len(groups))
	for i, g := range groups {
		idents[i] = naming.TagIdent(g.Tag) + "Keys"
	}
	return fmt.Sprintf("import { %s } from %s;\n", strings.Join(idents, ", "), tsString(prefix+"/queryKeys"))
}
