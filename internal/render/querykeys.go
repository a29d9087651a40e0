package render

import (
	"fmt"
	"strings"

	"github.com/querykit/querykit/internal/model"
	"github.com/querykit/querykit/internal/naming"
)

// QueryKeys renders queryKeys.ts: one key object per tag holding a root
// key plus one key-producing function per operation. The tuple shape
// [tag, operationId, params ?? {}] is the contract the hooks and
// invalidation files build on.
func QueryKeys(groups model.GroupedOperations) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\nexport type OperationKey = readonly [string, string, Record<string, unknown>];\n")

	for _, g := range groups {
		fmt.Fprintf(&b, "\nexport const %sKeys = {\n", naming.TagIdent(g.Tag))
		fmt.Fprintf(&b, "  root: [%s] as const,\n", tsString(g.Tag))
		for _, op := range g.Operations {
			fmt.Fprintf(&b, "  %s: (params?: Record<string, unknown>) => [%s, %s, params ?? {}] as const,\n",
				naming.KeyName(op.ID), tsString(g.Tag), tsString(op.ID))
		}
		b.WriteString("};\n")
	}
	return b.String()
}
