package parsercontext

import "github.com/odradev/nysa-go/internal/ir"

// ContractContext narrows a GlobalContext to one contract: it knows that
// contract's mutable storage, which external calls and events it has
// emitted so far, and falls back to the GlobalContext for anything it
// doesn't own itself.
type ContractContext struct {
	global *GlobalContext
	data   *ir.ContractData

	storage        []ir.Var // non-immutable subset of data.Vars
	externalCalls  map[string]bool
	emittedEvents  map[string]bool
}

// NewContractContext narrows g to the given contract/library.
func NewContractContext(g *GlobalContext, data *ir.ContractData) *ContractContext {
	c := &ContractContext{
		global:        g,
		data:          data,
		externalCalls: map[string]bool{},
		emittedEvents: map[string]bool{},
	}
	for _, v := range data.Vars {
		if !v.IsImmutable {
			c.storage = append(c.storage, v)
		}
	}
	return c
}

// Global returns the enclosing GlobalContext.
func (c *ContractContext) Global() *GlobalContext { return c.global }

// Data returns the contract this context is scoped to.
func (c *ContractContext) Data() *ir.ContractData { return c.data }

// TypeFromString checks storage first, then delegates to the global scope.
func (c *ContractContext) TypeFromString(name string) (Resolution, bool) {
	for _, v := range c.storage {
		if v.Name == name {
			return Resolution{Kind: ItemStorage, Name: name, Var: v}, true
		}
	}
	return c.global.TypeFromString(name)
}

// LookupStorageVar finds a mutable storage variable by name.
func (c *ContractContext) LookupStorageVar(name string) (ir.Var, bool) {
	for _, v := range c.storage {
		if v.Name == name {
			return v, true
		}
	}
	return ir.Var{}, false
}

// Storage returns the contract's mutable storage variables.
func (c *ContractContext) Storage() []ir.Var { return c.storage }

// HasEnums delegates straight through to the global scope.
func (c *ContractContext) HasEnums() bool { return c.global.HasEnums() }

// FindFn delegates straight through to the global scope.
func (c *ContractContext) FindFn(class, name string) (*ir.Func, bool) {
	return c.global.FindFn(class, name)
}

// RegisterExternalCall records that this contract calls out to an
// external-contract trait method.
func (c *ContractContext) RegisterExternalCall(name string) { c.externalCalls[name] = true }

// ExternalCalls returns every external-call target registered so far, order
// is not significant to callers (they sort before emission).
func (c *ContractContext) ExternalCalls() []string {
	out := make([]string, 0, len(c.externalCalls))
	for name := range c.externalCalls {
		out = append(out, name)
	}
	return out
}

// RegisterEmittedEvent records that this contract emits the named event at
// least once.
func (c *ContractContext) RegisterEmittedEvent(name string) { c.emittedEvents[name] = true }

// EmittedEvents returns every event name this contract has been recorded as
// emitting.
func (c *ContractContext) EmittedEvents() []string {
	out := make([]string, 0, len(c.emittedEvents))
	for name := range c.emittedEvents {
		out = append(out, name)
	}
	return out
}

// InsertError delegates straight through to the global scope: error codes
// are interned process-wide, not per contract.
func (c *ContractContext) InsertError(msg string) int { return c.global.InsertError(msg) }

// GetError delegates straight through to the global scope.
func (c *ContractContext) GetError(msg string) (int, bool) { return c.global.GetError(msg) }
