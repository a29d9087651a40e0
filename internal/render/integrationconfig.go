package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/querykit/querykit/internal/integration"
)

// IntegrationConfig re-emits the resolved openapi-ts descriptor as a
// generated config module so downstream tooling sees the exact settings
// this run used.
func IntegrationConfig(desc *integration.Descriptor) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\nconst config = {\n")
	fmt.Fprintf(&b, "  typesPath: %s,\n", tsString(desc.TypesPath))
	if desc.BaseURL != "" {
		fmt.Fprintf(&b, "  baseUrl: %s,\n", tsString(desc.BaseURL))
	}
	if len(desc.Headers) > 0 {
		keys := make([]string, 0, len(desc.Headers))
		for k := range desc.Headers {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString("  headers: {\n")
		for _, k := range keys {
			fmt.Fprintf(&b, "    %s: %s,\n", tsProp(k), tsString(desc.Headers[k]))
		}
		b.WriteString("  },\n")
	}
	b.WriteString("} as const;\n\nexport default config;\n")
	return b.String()
}
