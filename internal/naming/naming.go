// Package naming derives every generated identifier in one place. All four
// renderers go through these functions so that hook names, key-factory
// entries and invalidation helpers agree across files.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und, cases.NoLower)

// CamelCase converts a string containing separators (slashes, braces,
// underscores, dashes, spaces) into camelCase. A string that is already a
// single identifier only has its first rune lowered.
func CamelCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(lowerFirst(words[0]))
	for _, w := range words[1:] {
		b.WriteString(titleCaser.String(w))
	}
	return b.String()
}

// Sanitize strips the brace characters an operationId may carry when it
// was derived from a templated path. Idempotent.
func Sanitize(id string) string {
	return strings.NewReplacer("{", "", "}", "").Replace(id)
}

// OperationID resolves the generated id for an operation: the declared id
// when present, otherwise one synthesized from the method and path. The
// result is always sanitized.
func OperationID(declared string, method, path string) string {
	if declared == "" {
		declared = CamelCase(method + "_" + path)
	}
	return Sanitize(declared)
}

// KeyName is the key-factory entry name for an operation.
func KeyName(operationID string) string {
	return CamelCase(operationID)
}

// HookName is the exported hook name for an operation: "use" plus the
// capitalized key name.
func HookName(operationID string) string {
	return "use" + Exported(KeyName(operationID))
}

// ParamsTypeName is the per-operation parameter interface name.
func ParamsTypeName(operationID string) string {
	return Exported(KeyName(operationID)) + "Params"
}

// VariablesTypeName is the per-mutation variables type name.
func VariablesTypeName(operationID string) string {
	return Exported(KeyName(operationID)) + "Variables"
}

// TagIdent converts a tag into a valid identifier stem, e.g. "store-orders"
// becomes "storeOrders" so the key object renders as "storeOrdersKeys".
func TagIdent(tag string) string {
	return CamelCase(tag)
}

// Exported upper-cases the first rune.
func Exported(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
