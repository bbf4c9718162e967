package util

import (
	"go/token"
	"strings"
)

// SafeIdent returns an identifier safe to emit in the target language: it
// lowercases+snake-cases the input and appends an underscore if the result
// collides with a Go keyword, following the same guard the neo-go binding
// generator applies to generated parameter names (token.IsKeyword).
func SafeIdent(name string) string {
	id := ToSnakeCase(name)
	if id == "" {
		return "_"
	}
	if token.IsKeyword(id) {
		id += "_"
	}
	return id
}

// SuperFnName builds the name of the synthesized MRO-continuation method for
// a logical function name, e.g. "transfer" -> "super_transfer".
func SuperFnName(fnName string) string {
	return "super_" + ToSnakeCase(fnName)
}

// ModifierBeforeName builds the name of a modifier's pre-placeholder helper.
func ModifierBeforeName(modName string) string {
	return "modifier_before_" + ToSnakeCase(modName)
}

// ModifierAfterName builds the name of a modifier's post-placeholder helper.
func ModifierAfterName(modName string) string {
	return "modifier_after_" + ToSnakeCase(modName)
}

// BaseInitName builds the name of a per-ancestor constructor helper, e.g.
// "Ownable" -> "_ownable_init".
func BaseInitName(className string) string {
	return "_" + ToSnakeCase(className) + "_init"
}

// JoinPath renders a C3 path (leaf-to-root class names) for diagnostics.
func JoinPath(path []string) string {
	return strings.Join(path, " -> ")
}
