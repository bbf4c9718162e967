// Package errors defines the compiler's error-kind taxonomy:
// every distinct failure the core can produce is its own named type
// implementing error, so a caller can type-switch on what went wrong
// instead of string-matching.
package errors

import "fmt"

// ServiceError should be used to return error messages in JSON format,
// e.g. from the CLI's non-zero-exit diagnostic output.
type ServiceError struct {
	Message string `json:"message"`
}

func (e *ServiceError) Error() string { return e.Message }

// LinearizationError wraps an inconsistent C3 order: a diamond whose
// ancestors can't be merged into one consistent order.
type LinearizationError struct {
	Class string
}

func (e *LinearizationError) Error() string {
	return fmt.Sprintf("linearization error: %q has no consistent C3 order", e.Class)
}

// ConstructorNotFoundError fires when a contract's MRO has no constructor
// anywhere along it.
type ConstructorNotFoundError struct {
	Contract string
}

func (e *ConstructorNotFoundError) Error() string {
	return fmt.Sprintf("constructor not found for %q along its MRO", e.Contract)
}

// MappingInitError fires when a mapping-typed state variable carries a
// non-empty initializer (mappings can't be literal-initialized).
type MappingInitError struct {
	Variable string
}

func (e *MappingInitError) Error() string {
	return fmt.Sprintf("mapping-init error: %q has a non-empty initializer", e.Variable)
}

// InvalidModifierError fires when a modifier body has zero or more than one
// placeholder (`_;`) statement.
type InvalidModifierError struct {
	Modifier       string
	PlaceholderCnt int
}

func (e *InvalidModifierError) Error() string {
	return fmt.Sprintf("invalid modifier %q: expected exactly one placeholder, found %d", e.Modifier, e.PlaceholderCnt)
}

// InvalidTypeError fires when a state variable's declared type has no
// representation in the target (e.g. function types).
type InvalidTypeError struct {
	Variable, Type string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid type: %q has type %q, not representable in the target", e.Variable, e.Type)
}

// UnsupportedTypeError fires when a type appears in a position the backend
// has no lowering for.
type UnsupportedTypeError struct {
	Type    string
	Context string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %q in %s", e.Type, e.Context)
}

// UnexpectedExpressionError fires when an expression reaches a generator
// function in a shape that function's contract forbids.
type UnexpectedExpressionError struct {
	Context string
}

func (e *UnexpectedExpressionError) Error() string {
	return fmt.Sprintf("unexpected expression shape in %s", e.Context)
}

// InvalidCollectionError fires on a collection access with no key, or the
// wrong key arity for the collection's nesting depth.
type InvalidCollectionError struct {
	Collection string
	KeyCount   int
}

func (e *InvalidCollectionError) Error() string {
	return fmt.Sprintf("invalid collection access on %q with %d keys", e.Collection, e.KeyCount)
}

// InvalidStatementError fires when a statement reaches a generator
// function that does not accept it (e.g. a bare return where an expression
// is expected).
type InvalidStatementError struct {
	Context string
}

func (e *InvalidStatementError) Error() string {
	return fmt.Sprintf("invalid statement in %s", e.Context)
}

// UnknownPropertyError fires on `type(T).foo` for an unrecognized foo.
type UnknownPropertyError struct {
	Type, Property string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("unknown property %q on type(%s)", e.Property, e.Type)
}
