package render

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// pair is one query parameter in declaration order.
type pair struct {
	key   string
	value any
}

// encodeQuery is the reference implementation of the query-string policy
// the client renderer emits as the buildQuery helper: entries keep their
// input order, nil values are skipped entirely, slice values repeat the key
// once per element in element order, everything else is stringified. An
// empty result is the empty string; a non-empty result carries a leading
// "?" and no trailing separator. It exists so the emitted policy stays
// pinned by tests without widening the package API.
func encodeQuery(pairs []pair) string {
	var parts []string
	for _, p := range pairs {
		if p.value == nil {
			continue
		}
		v := reflect.ValueOf(p.value)
		if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
			for i := 0; i < v.Len(); i++ {
				parts = append(parts, encodePart(p.key, v.Index(i).Interface()))
			}
			continue
		}
		parts = append(parts, encodePart(p.key, p.value))
	}
	if len(parts) == 0 {
		return ""
	}
	return "?" + strings.Join(parts, "&")
}

func encodePart(key string, value any) string {
	return url.QueryEscape(key) + "=" + url.QueryEscape(fmt.Sprint(value))
}

// buildQueryTS is the TypeScript twin of encodeQuery, emitted verbatim
// into the generated client.
const buildQueryTS = `export function buildQuery(params?: Record<string, unknown>): string {
  if (!params) return "";
  const parts: string[] = [];
  for (const [key, value] of Object.entries(params)) {
    if (value === undefined || value === null) continue;
    const values = Array.isArray(value) ? value : [value];
    for (const item of values) {
      parts.push(` + "`${encodeURIComponent(key)}=${encodeURIComponent(String(item))}`" + `);
    }
  }
  return parts.length === 0 ? "" : ` + "`?${parts.join(\"&\")}`" + `;
}`
