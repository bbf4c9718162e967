// Package util holds the small, dependency-free helpers the rest of the
// compiler leans on: case conversions, identifier construction, and AST
// filters over a parsed Solidity source unit.
package util

import "strings"

// ToSnakeCase converts a Solidity-style identifier ("ownerOf", "ERC20")
// into snake_case ("owner_of", "erc20").
func ToSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z' || runes[i-1] >= '0' && runes[i-1] <= '9'
				nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
				if prevLower || (nextLower && i > 0) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToPascalCase converts a snake_case or camelCase identifier into
// PascalCase ("owner_of" -> "OwnerOf").
func ToPascalCase(s string) string {
	parts := splitWords(s)
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// ToCamelCase converts an identifier into camelCase ("OwnerOf" -> "ownerOf").
func ToCamelCase(s string) string {
	p := ToPascalCase(s)
	if p == "" {
		return p
	}
	return strings.ToLower(p[:1]) + p[1:]
}

// ToUpperSnakeCase converts an identifier into UPPER_SNAKE_CASE, the
// convention used for generated constants (e.g. storage keys).
func ToUpperSnakeCase(s string) string {
	return strings.ToUpper(ToSnakeCase(s))
}

func splitWords(s string) []string {
	s = ToSnakeCase(s)
	return strings.FieldsFunc(s, func(r rune) bool { return r == '_' })
}
