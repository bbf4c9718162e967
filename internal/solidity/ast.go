// Package solidity defines the input contract this compiler consumes: the
// public node shapes produced by an external Solidity parser. The parser
// itself is out of scope; these types mirror the node surface of
// github.com/th13vn/solast-go/pkg/ast (ContractDefinition, FunctionDefinition,
// EventDefinition, ErrorDefinition, EnumDefinition, StructDefinition and
// friends), extended with the Expression/Statement shapes the IR builder
// needs that aren't exercised by that package's own test suite.
package solidity

// SourceUnit is the root node of a parsed Solidity file.
type SourceUnit struct {
	Children []Node
}

// Node is any top-level or nested AST node.
type Node interface {
	node()
}

// PragmaDirective is a `pragma solidity ...;` declaration.
type PragmaDirective struct {
	Name  string
	Value string
}

func (*PragmaDirective) node() {}

// ImportDirective is an `import "...";` declaration.
type ImportDirective struct {
	Path string
}

func (*ImportDirective) node() {}

// ContractDefinition covers contracts, interfaces, and libraries; Kind
// distinguishes them ("contract", "interface", "library").
type ContractDefinition struct {
	Name          string
	Kind          string
	IsAbstract    bool
	BaseContracts []InheritanceSpecifier
	SubNodes      []Node
}

func (*ContractDefinition) node() {}

// InheritanceSpecifier names one base contract in a `contract C is A, B` list.
type InheritanceSpecifier struct {
	Name string
	Args []Expression
}

// StateMutability enumerates Solidity's function mutability modifiers.
type StateMutability string

const (
	MutabilityNonPayable StateMutability = "nonpayable"
	MutabilityPayable    StateMutability = "payable"
	MutabilityView       StateMutability = "view"
	MutabilityPure       StateMutability = "pure"
)

// FunctionKind distinguishes ordinary functions from constructors, modifiers,
// fallback and receive functions.
type FunctionKind string

const (
	FunctionKindFunction    FunctionKind = "function"
	FunctionKindConstructor FunctionKind = "constructor"
	FunctionKindModifier    FunctionKind = "modifier"
	FunctionKindFallback    FunctionKind = "fallback"
	FunctionKindReceive     FunctionKind = "receive"
)

// FunctionDefinition covers functions, constructors, modifiers, fallback and
// receive declarations.
type FunctionDefinition struct {
	Name            string
	Kind            FunctionKind
	Visibility      string
	StateMutability StateMutability
	IsVirtual       bool
	IsOverride      bool
	Parameters      []Parameter
	ReturnParameters []Parameter
	Modifiers       []ModifierInvocation
	Body            *Block
}

func (*FunctionDefinition) node() {}

// ModifierInvocation is a `onlyOwner` or `Base(args)` annotation on a
// function or constructor.
type ModifierInvocation struct {
	Name string
	Args []Expression
}

// Parameter is one function/event/error parameter or struct/variable member.
type Parameter struct {
	Name         string
	Type         TypeName
	StorageLoc   string // "memory" | "storage" | "calldata" | ""
	IsIndexed    bool   // event parameters only
}

// TypeName is the syntactic type written in source, prior to IR resolution.
type TypeName struct {
	Name       string // "uint256", "address", "bool", "string", "bytes32", a custom name, ...
	IsArray    bool
	IsMapping  bool
	KeyType    *TypeName
	ValueType  *TypeName
}

// VariableDefinition is a state variable or a local variable declaration.
type VariableDefinition struct {
	Name          string
	Type          TypeName
	Visibility    string
	IsConstant    bool
	IsImmutable   bool
	InitialValue  Expression
}

func (*VariableDefinition) node() {}

// EventDefinition declares an `event Name(...)`.
type EventDefinition struct {
	Name       string
	Parameters []Parameter
}

func (*EventDefinition) node() {}

// ErrorDefinition declares a custom `error Name(...)`.
type ErrorDefinition struct {
	Name       string
	Parameters []Parameter
}

func (*ErrorDefinition) node() {}

// EnumDefinition declares an `enum Name { ... }`.
type EnumDefinition struct {
	Name    string
	Members []string
}

func (*EnumDefinition) node() {}

// StructDefinition declares a `struct Name { ... }`.
type StructDefinition struct {
	Name    string
	Members []Parameter
}

func (*StructDefinition) node() {}

// UserDefinedValueTypeDefinition declares a `type Foo is uint256;` alias.
type UserDefinedValueTypeDefinition struct {
	Name       string
	Underlying TypeName
}

func (*UserDefinedValueTypeDefinition) node() {}

// Block is a brace-delimited statement list.
type Block struct {
	Statements []Statement
}

// Statement is any Solidity statement node the IR builder recognizes.
type Statement interface {
	stmt()
}

type ExpressionStatement struct{ Expr Expression }
type VariableDeclarationStatement struct {
	Decls   []VariableDefinition
	InitVal Expression
}
type ReturnStatement struct{ Value Expression }
type IfStatement struct {
	Condition Expression
	Then      Statement
	Else      Statement
}
type WhileStatement struct {
	Condition Expression
	Body      Statement
}
type BlockStatement struct{ Block Block }
type EmitStatement struct {
	EventName string
	Args      []Expression
}
type RevertStatement struct {
	ErrorName string // "" for bare require()/revert(msg)
	Args      []Expression
	Message   string
}
type PlaceholderStatement struct{}

// UncheckedStatement is `unchecked { ... }`: arithmetic inside never
// reverts on overflow/underflow.
type UncheckedStatement struct{ Block Block }

func (*ExpressionStatement) stmt()          {}
func (*VariableDeclarationStatement) stmt() {}
func (*ReturnStatement) stmt()              {}
func (*IfStatement) stmt()                  {}
func (*WhileStatement) stmt()               {}
func (*BlockStatement) stmt()               {}
func (*EmitStatement) stmt()                {}
func (*RevertStatement) stmt()              {}
func (*PlaceholderStatement) stmt()         {}
func (*UncheckedStatement) stmt()           {}

// Expression is any Solidity expression node the IR builder recognizes.
type Expression interface {
	expr()
}

type BoolLiteral struct{ Value bool }
type NumberLiteral struct{ Value string } // decimal or 0x-prefixed text, arbitrary precision
type StringLiteral struct{ Value string }
type HexLiteral struct{ Value string }
type ArrayLiteral struct{ Elements []Expression }
type Identifier struct{ Name string }
type TypeExpression struct{ Type TypeName }
type MemberAccess struct {
	Expr Expression
	Name string
}
type IndexAccess struct {
	Base Expression
	Keys []Expression // len > 1 for nested mapping sugar m[a][b] flattened by the parser
}
type FunctionCall struct {
	Callee Expression
	Args   []Expression
}
type SuperCall struct {
	Name string
	Args []Expression
}
type ExternalCall struct {
	Receiver Expression
	Name     string
	Args     []Expression
}
type TypeInfoExpression struct {
	Type     TypeName
	Property string // "min" | "max"
}
type UnaryOp struct {
	Op      string
	Operand Expression
	Prefix  bool
}
type BinaryOp struct {
	Op    string
	Left  Expression
	Right Expression
}
type Assignment struct {
	Op     string // "=", "+=", "-=", ...
	Target Expression
	Value  Expression
}
type IncDecExpression struct {
	Op      string // "++" | "--"
	Operand Expression
	Prefix  bool
}
type TupleExpression struct{ Elements []Expression }
type RequireExpression struct {
	Condition Expression
	Message   string
}
type ZeroAddressExpression struct{}
type MsgExpression struct{ Property string } // "sender" | "value" | "data"
type Keccak256Expression struct{ Args []Expression }
type AbiEncodePackedExpression struct{ Args []Expression }

func (*BoolLiteral) expr()               {}
func (*NumberLiteral) expr()             {}
func (*StringLiteral) expr()             {}
func (*HexLiteral) expr()                {}
func (*ArrayLiteral) expr()              {}
func (*Identifier) expr()                {}
func (*TypeExpression) expr()            {}
func (*MemberAccess) expr()              {}
func (*IndexAccess) expr()               {}
func (*FunctionCall) expr()              {}
func (*SuperCall) expr()                 {}
func (*ExternalCall) expr()              {}
func (*TypeInfoExpression) expr()        {}
func (*UnaryOp) expr()                   {}
func (*BinaryOp) expr()                  {}
func (*Assignment) expr()                {}
func (*IncDecExpression) expr()          {}
func (*TupleExpression) expr()           {}
func (*RequireExpression) expr()         {}
func (*ZeroAddressExpression) expr()     {}
func (*MsgExpression) expr()             {}
func (*Keccak256Expression) expr()       {}
func (*AbiEncodePackedExpression) expr() {}
