package util

import "github.com/odradev/nysa-go/internal/solidity"

// Contracts returns every ContractDefinition in a source unit, in source
// order (libraries and interfaces included — callers filter by Kind).
func Contracts(unit *solidity.SourceUnit) []*solidity.ContractDefinition {
	var out []*solidity.ContractDefinition
	for _, n := range unit.Children {
		if c, ok := n.(*solidity.ContractDefinition); ok {
			out = append(out, c)
		}
	}
	return out
}

// Functions returns every FunctionDefinition directly declared on a
// contract (not inherited).
func Functions(c *solidity.ContractDefinition) []*solidity.FunctionDefinition {
	var out []*solidity.FunctionDefinition
	for _, n := range c.SubNodes {
		if f, ok := n.(*solidity.FunctionDefinition); ok {
			out = append(out, f)
		}
	}
	return out
}

// Events returns every EventDefinition declared on a contract.
func Events(c *solidity.ContractDefinition) []*solidity.EventDefinition {
	var out []*solidity.EventDefinition
	for _, n := range c.SubNodes {
		if e, ok := n.(*solidity.EventDefinition); ok {
			out = append(out, e)
		}
	}
	return out
}

// Errors returns every ErrorDefinition declared on a contract.
func Errors(c *solidity.ContractDefinition) []*solidity.ErrorDefinition {
	var out []*solidity.ErrorDefinition
	for _, n := range c.SubNodes {
		if e, ok := n.(*solidity.ErrorDefinition); ok {
			out = append(out, e)
		}
	}
	return out
}

// Enums returns every EnumDefinition declared on a contract.
func Enums(c *solidity.ContractDefinition) []*solidity.EnumDefinition {
	var out []*solidity.EnumDefinition
	for _, n := range c.SubNodes {
		if e, ok := n.(*solidity.EnumDefinition); ok {
			out = append(out, e)
		}
	}
	return out
}

// Structs returns every StructDefinition declared on a contract.
func Structs(c *solidity.ContractDefinition) []*solidity.StructDefinition {
	var out []*solidity.StructDefinition
	for _, n := range c.SubNodes {
		if s, ok := n.(*solidity.StructDefinition); ok {
			out = append(out, s)
		}
	}
	return out
}

// StateVariables returns every VariableDefinition declared directly on a
// contract (its own storage slots, not inherited ones).
func StateVariables(c *solidity.ContractDefinition) []*solidity.VariableDefinition {
	var out []*solidity.VariableDefinition
	for _, n := range c.SubNodes {
		if v, ok := n.(*solidity.VariableDefinition); ok {
			out = append(out, v)
		}
	}
	return out
}

// ValueTypeDefs returns every `type Foo is <underlying>;` declaration in a
// source unit: file-level ones directly under the unit, plus any declared
// inside a contract body.
func ValueTypeDefs(unit *solidity.SourceUnit) []*solidity.UserDefinedValueTypeDefinition {
	var out []*solidity.UserDefinedValueTypeDefinition
	for _, n := range unit.Children {
		if v, ok := n.(*solidity.UserDefinedValueTypeDefinition); ok {
			out = append(out, v)
		}
	}
	for _, c := range Contracts(unit) {
		for _, n := range c.SubNodes {
			if v, ok := n.(*solidity.UserDefinedValueTypeDefinition); ok {
				out = append(out, v)
			}
		}
	}
	return out
}

// IsLibrary reports whether a contract definition is a `library`.
func IsLibrary(c *solidity.ContractDefinition) bool { return c.Kind == "library" }

// IsInterface reports whether a contract definition is an `interface`.
func IsInterface(c *solidity.ContractDefinition) bool { return c.Kind == "interface" }
