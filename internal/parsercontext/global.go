// Package parsercontext implements the three-layer scoped state the
// generator walks the IR through: GlobalContext, ContractContext, and
// LocalContext. Grounded directly on nysa/src/parser/context.rs:
// the same three structs, the same narrower-borrows-wider delegation shape,
// translated from Rust's `delegate!` macro into explicit Go methods that
// forward to the wider context.
package parsercontext

import (
	"github.com/odradev/nysa-go/internal/ir"
)

// ItemType is the closed result of resolving a name in a context.
type ItemType int

const (
	ItemUnknown ItemType = iota
	ItemContract
	ItemLibrary
	ItemInterface
	ItemEnum
	ItemStruct
	ItemEvent
	ItemStorage
	ItemLocal
)

// Resolution is the result of a name lookup: its ItemType tag plus whatever
// payload is relevant (a Var for Storage/Local, a class name otherwise).
type Resolution struct {
	Kind  ItemType
	Name  string
	Var   ir.Var
	Class *ir.ContractData
}

// GlobalContext holds every interface, library, contract, enum, struct,
// event name, and the error-intern table for one compiled package (spec
// §4.3).
type GlobalContext struct {
	pkg       *ir.Package
	errorMap  map[string]int
	errorSeq  int
}

// NewGlobalContext builds a GlobalContext from a fully-built IR package.
func NewGlobalContext(pkg *ir.Package) *GlobalContext {
	g := &GlobalContext{pkg: pkg, errorMap: map[string]int{}}
	for _, e := range pkg.Errors {
		g.errorSeq++
		g.errorMap[e.Message] = g.errorSeq
	}
	return g
}

// TypeFromString resolves a bare name against every package-level
// collection: libraries, contracts, events, interfaces, enums, then structs.
func (g *GlobalContext) TypeFromString(name string) (Resolution, bool) {
	for _, l := range g.pkg.Libraries {
		if l.Name == name {
			return Resolution{Kind: ItemLibrary, Name: name, Class: l}, true
		}
	}
	for _, c := range g.pkg.Contracts {
		if c.Name == name {
			return Resolution{Kind: ItemContract, Name: name, Class: c}, true
		}
	}
	for _, e := range g.pkg.Events {
		if e.Name == name {
			return Resolution{Kind: ItemEvent, Name: name}, true
		}
	}
	for _, i := range g.pkg.Interfaces {
		if i.Name == name {
			return Resolution{Kind: ItemInterface, Name: name}, true
		}
	}
	for _, e := range g.pkg.Enums {
		if e.Name == name {
			return Resolution{Kind: ItemEnum, Name: name}, true
		}
	}
	for _, s := range g.pkg.Structs {
		if s.Name == name {
			return Resolution{Kind: ItemStruct, Name: name}, true
		}
	}
	return Resolution{}, false
}

// HasEnums reports whether the package declares any enum.
func (g *GlobalContext) HasEnums() bool { return len(g.pkg.Enums) > 0 }

// FindFn looks up one implementation of a logical function name on a class
// (contract or library); used when resolving library/external calls whose
// return type needs evaluating.
func (g *GlobalContext) FindFn(class, name string) (*ir.Func, bool) {
	c := g.pkg.FindContract(class)
	if c == nil {
		return nil, false
	}
	impls, ok := c.Functions[name]
	if !ok || len(impls.Impls) == 0 {
		return nil, false
	}
	return impls.Impls[0].Func, impls.Impls[0].Func != nil
}

// Package exposes the underlying IR package (read-only consumers only).
func (g *GlobalContext) Package() *ir.Package { return g.pkg }

// InsertError interns an error message, assigning it a new monotonic code
// the first time it's seen.
func (g *GlobalContext) InsertError(msg string) int {
	if code, ok := g.errorMap[msg]; ok {
		return code
	}
	g.errorSeq++
	g.errorMap[msg] = g.errorSeq
	return g.errorSeq
}

// GetError returns the code previously assigned to msg, if any.
func (g *GlobalContext) GetError(msg string) (int, bool) {
	code, ok := g.errorMap[msg]
	return code, ok
}

// ErrorCount returns how many distinct messages have been interned so far.
func (g *GlobalContext) ErrorCount() int { return g.errorSeq }
