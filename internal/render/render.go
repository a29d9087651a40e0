// Package render turns the operation model into generated TypeScript
// source. Every renderer is a pure function from model (plus options) to
// one string; nothing in here touches the filesystem. Identifier
// derivation lives in internal/naming so the four output files agree on
// every name.
package render

import (
	"strconv"
	"unicode"
)

// Header is the first line of every generated file.
const Header = "// Code generated by querykit. DO NOT EDIT.\n"

// tsProp renders an object property name, quoting it only when it is not
// a plain TypeScript identifier (e.g. "X-Request-Id").
func tsProp(name string) string {
	if isTSIdent(name) {
		return name
	}
	return strconv.Quote(name)
}

// tsAccess renders a property access on ref, using dot access for plain
// identifiers and bracket access otherwise.
func tsAccess(ref, name string) string {
	if isTSIdent(name) {
		return ref + "." + name
	}
	return ref + "[" + strconv.Quote(name) + "]"
}

func tsString(s string) string {
	return strconv.Quote(s)
}

func isTSIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' || r == '$' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
