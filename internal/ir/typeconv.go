package ir

import (
	"strconv"
	"strings"

	"github.com/odradev/nysa-go/internal/solidity"
)

// TypeFromTypeName lowers a syntactic solidity.TypeName into an IR Type. It
// never fails: an unrecognized elementary name becomes TypeCustom, to be
// resolved later against the package's enum/struct/contract tables.
func TypeFromTypeName(tn solidity.TypeName) Type {
	if tn.IsMapping {
		return Mapping(TypeFromTypeName(*tn.KeyType), TypeFromTypeName(*tn.ValueType))
	}
	if tn.IsArray {
		// solast-go flattens `T[]` to IsArray with ValueType == T; fall back
		// to treating Name as the element when ValueType is absent.
		if tn.ValueType != nil {
			return Array(TypeFromTypeName(*tn.ValueType))
		}
		return Array(TypeFromTypeName(TypeName{Name: tn.Name}))
	}
	return elementaryType(tn.Name)
}

// TypeName is a local shorthand so typeconv.go doesn't need a second import
// alias; solidity.TypeName is referenced directly everywhere else.
type TypeName = solidity.TypeName

func elementaryType(name string) Type {
	switch name {
	case "address", "address payable":
		return Address()
	case "bool":
		return Bool()
	case "string":
		return Str()
	}
	if bits, ok := widthOf(name, "uint"); ok {
		return Uint(bits)
	}
	if bits, ok := widthOf(name, "int"); ok {
		return Int(bits)
	}
	if n, ok := widthOf(name, "bytes"); ok {
		return Bytes(n)
	}
	if name == "byte" {
		return Bytes(1)
	}
	return Custom(name)
}

func widthOf(name, prefix string) (int, bool) {
	if !strings.HasPrefix(name, prefix) {
		return 0, false
	}
	rest := name[len(prefix):]
	if rest == "" {
		// bare "uint"/"int" defaults to 256 bits.
		if prefix == "uint" || prefix == "int" {
			return 256, true
		}
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}
