package solidity

// This file gives the AST node types enough custom JSON decoding to read
// the tagged-union wire format the compiler's CLI accepts as input: every
// Node/Statement/Expression value is wrapped with a discriminator field,
// "astKind", naming its concrete Go type, the same shape solc's own
// --combined-json ast output and most syn-based Rust AST-to-JSON bridges use
// for closed sum types. The discriminator is deliberately spelled "astKind"
// rather than "kind": ContractDefinition and FunctionDefinition already have
// their own domain-level "kind" field (contract/interface/library,
// function/constructor/modifier/...), and encoding/json matches JSON object
// keys to Go struct fields case-insensitively, so a bare "kind" discriminator
// would silently clobber those fields on decode. Nothing here needs to
// encode these types back to JSON: the compiler only ever consumes an AST,
// never produces one.

import (
	"encoding/json"
	"fmt"
)

type astKindTag struct {
	ASTKind string `json:"astKind"`
}

func kindOf(raw json.RawMessage) (string, error) {
	var t astKindTag
	if err := json.Unmarshal(raw, &t); err != nil {
		return "", fmt.Errorf("reading astKind tag: %w", err)
	}
	if t.ASTKind == "" {
		return "", fmt.Errorf("missing \"astKind\" field in AST node")
	}
	return t.ASTKind, nil
}

func decodeNodes(raw []json.RawMessage) ([]Node, error) {
	out := make([]Node, len(raw))
	for i, r := range raw {
		n, err := decodeNode(r)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func decodeNode(raw json.RawMessage) (Node, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "PragmaDirective":
		var n PragmaDirective
		return &n, json.Unmarshal(raw, &n)
	case "ImportDirective":
		var n ImportDirective
		return &n, json.Unmarshal(raw, &n)
	case "ContractDefinition":
		var n ContractDefinition
		return &n, json.Unmarshal(raw, &n)
	case "VariableDefinition":
		var n VariableDefinition
		return &n, json.Unmarshal(raw, &n)
	case "EventDefinition":
		var n EventDefinition
		return &n, json.Unmarshal(raw, &n)
	case "ErrorDefinition":
		var n ErrorDefinition
		return &n, json.Unmarshal(raw, &n)
	case "EnumDefinition":
		var n EnumDefinition
		return &n, json.Unmarshal(raw, &n)
	case "StructDefinition":
		var n StructDefinition
		return &n, json.Unmarshal(raw, &n)
	case "UserDefinedValueTypeDefinition":
		var n UserDefinedValueTypeDefinition
		return &n, json.Unmarshal(raw, &n)
	case "FunctionDefinition":
		var n FunctionDefinition
		return &n, json.Unmarshal(raw, &n)
	default:
		return nil, fmt.Errorf("unknown node kind %q", kind)
	}
}

func decodeStatements(raw []json.RawMessage) ([]Statement, error) {
	out := make([]Statement, len(raw))
	for i, r := range raw {
		s, err := decodeStatement(r)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func decodeOptionalStatement(raw json.RawMessage) (Statement, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	return decodeStatement(raw)
}

func decodeStatement(raw json.RawMessage) (Statement, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "ExpressionStatement":
		var n ExpressionStatement
		return &n, json.Unmarshal(raw, &n)
	case "VariableDeclarationStatement":
		var n VariableDeclarationStatement
		return &n, json.Unmarshal(raw, &n)
	case "ReturnStatement":
		var n ReturnStatement
		return &n, json.Unmarshal(raw, &n)
	case "IfStatement":
		var n IfStatement
		return &n, json.Unmarshal(raw, &n)
	case "WhileStatement":
		var n WhileStatement
		return &n, json.Unmarshal(raw, &n)
	case "BlockStatement":
		var n BlockStatement
		return &n, json.Unmarshal(raw, &n)
	case "EmitStatement":
		var n EmitStatement
		return &n, json.Unmarshal(raw, &n)
	case "RevertStatement":
		var n RevertStatement
		return &n, json.Unmarshal(raw, &n)
	case "PlaceholderStatement":
		var n PlaceholderStatement
		return &n, nil
	case "UncheckedStatement":
		var n UncheckedStatement
		return &n, json.Unmarshal(raw, &n)
	default:
		return nil, fmt.Errorf("unknown statement kind %q", kind)
	}
}

func decodeExpressions(raw []json.RawMessage) ([]Expression, error) {
	out := make([]Expression, len(raw))
	for i, r := range raw {
		e, err := decodeExpression(r)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func decodeOptionalExpression(raw json.RawMessage) (Expression, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	return decodeExpression(raw)
}

func decodeExpression(raw json.RawMessage) (Expression, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "BoolLiteral":
		var n BoolLiteral
		return &n, json.Unmarshal(raw, &n)
	case "NumberLiteral":
		var n NumberLiteral
		return &n, json.Unmarshal(raw, &n)
	case "StringLiteral":
		var n StringLiteral
		return &n, json.Unmarshal(raw, &n)
	case "HexLiteral":
		var n HexLiteral
		return &n, json.Unmarshal(raw, &n)
	case "ArrayLiteral":
		var n ArrayLiteral
		return &n, json.Unmarshal(raw, &n)
	case "Identifier":
		var n Identifier
		return &n, json.Unmarshal(raw, &n)
	case "TypeExpression":
		var n TypeExpression
		return &n, json.Unmarshal(raw, &n)
	case "MemberAccess":
		var n MemberAccess
		return &n, json.Unmarshal(raw, &n)
	case "IndexAccess":
		var n IndexAccess
		return &n, json.Unmarshal(raw, &n)
	case "FunctionCall":
		var n FunctionCall
		return &n, json.Unmarshal(raw, &n)
	case "SuperCall":
		var n SuperCall
		return &n, json.Unmarshal(raw, &n)
	case "ExternalCall":
		var n ExternalCall
		return &n, json.Unmarshal(raw, &n)
	case "TypeInfoExpression":
		var n TypeInfoExpression
		return &n, json.Unmarshal(raw, &n)
	case "UnaryOp":
		var n UnaryOp
		return &n, json.Unmarshal(raw, &n)
	case "BinaryOp":
		var n BinaryOp
		return &n, json.Unmarshal(raw, &n)
	case "Assignment":
		var n Assignment
		return &n, json.Unmarshal(raw, &n)
	case "IncDecExpression":
		var n IncDecExpression
		return &n, json.Unmarshal(raw, &n)
	case "TupleExpression":
		var n TupleExpression
		return &n, json.Unmarshal(raw, &n)
	case "RequireExpression":
		var n RequireExpression
		return &n, json.Unmarshal(raw, &n)
	case "ZeroAddressExpression":
		var n ZeroAddressExpression
		return &n, nil
	case "MsgExpression":
		var n MsgExpression
		return &n, json.Unmarshal(raw, &n)
	case "Keccak256Expression":
		var n Keccak256Expression
		return &n, json.Unmarshal(raw, &n)
	case "AbiEncodePackedExpression":
		var n AbiEncodePackedExpression
		return &n, json.Unmarshal(raw, &n)
	default:
		return nil, fmt.Errorf("unknown expression kind %q", kind)
	}
}

// UnmarshalJSON reads the root's Children as a tagged-union Node list.
func (u *SourceUnit) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Children []json.RawMessage `json:"children"`
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	children, err := decodeNodes(shadow.Children)
	if err != nil {
		return fmt.Errorf("source unit: %w", err)
	}
	u.Children = children
	return nil
}

// UnmarshalJSON reads a contract's base-contract arguments and sub-nodes as
// tagged unions.
func (c *ContractDefinition) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Name          string
		Kind          string
		IsAbstract    bool
		BaseContracts []struct {
			Name string
			Args []json.RawMessage
		}
		SubNodes []json.RawMessage
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	c.Name = shadow.Name
	c.Kind = shadow.Kind
	c.IsAbstract = shadow.IsAbstract
	c.BaseContracts = make([]InheritanceSpecifier, len(shadow.BaseContracts))
	for i, b := range shadow.BaseContracts {
		args, err := decodeExpressions(b.Args)
		if err != nil {
			return fmt.Errorf("contract %s: base %s: %w", shadow.Name, b.Name, err)
		}
		c.BaseContracts[i] = InheritanceSpecifier{Name: b.Name, Args: args}
	}
	subNodes, err := decodeNodes(shadow.SubNodes)
	if err != nil {
		return fmt.Errorf("contract %s: %w", shadow.Name, err)
	}
	c.SubNodes = subNodes
	return nil
}

// UnmarshalJSON reads a function's modifiers and body as tagged unions.
func (f *FunctionDefinition) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Name             string
		Kind             FunctionKind
		Visibility       string
		StateMutability  StateMutability
		IsVirtual        bool
		IsOverride       bool
		Parameters       []Parameter
		ReturnParameters []Parameter
		Modifiers        []struct {
			Name string
			Args []json.RawMessage
		}
		Body *struct {
			Statements []json.RawMessage
		}
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	f.Name = shadow.Name
	f.Kind = shadow.Kind
	f.Visibility = shadow.Visibility
	f.StateMutability = shadow.StateMutability
	f.IsVirtual = shadow.IsVirtual
	f.IsOverride = shadow.IsOverride
	f.Parameters = shadow.Parameters
	f.ReturnParameters = shadow.ReturnParameters

	f.Modifiers = make([]ModifierInvocation, len(shadow.Modifiers))
	for i, m := range shadow.Modifiers {
		args, err := decodeExpressions(m.Args)
		if err != nil {
			return fmt.Errorf("function %s: modifier %s: %w", shadow.Name, m.Name, err)
		}
		f.Modifiers[i] = ModifierInvocation{Name: m.Name, Args: args}
	}

	if shadow.Body != nil {
		stmts, err := decodeStatements(shadow.Body.Statements)
		if err != nil {
			return fmt.Errorf("function %s: body: %w", shadow.Name, err)
		}
		f.Body = &Block{Statements: stmts}
	}
	return nil
}

// UnmarshalJSON reads a variable's initializer as a tagged union.
func (v *VariableDefinition) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Name         string
		Type         TypeName
		Visibility   string
		IsConstant   bool
		IsImmutable  bool
		InitialValue json.RawMessage
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	v.Name = shadow.Name
	v.Type = shadow.Type
	v.Visibility = shadow.Visibility
	v.IsConstant = shadow.IsConstant
	v.IsImmutable = shadow.IsImmutable
	init, err := decodeOptionalExpression(shadow.InitialValue)
	if err != nil {
		return fmt.Errorf("variable %s: initializer: %w", shadow.Name, err)
	}
	v.InitialValue = init
	return nil
}

// UnmarshalJSON reads a block's statement list as a tagged union.
func (b *Block) UnmarshalJSON(data []byte) error {
	var shadow struct{ Statements []json.RawMessage }
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	stmts, err := decodeStatements(shadow.Statements)
	if err != nil {
		return err
	}
	b.Statements = stmts
	return nil
}

func (s *ExpressionStatement) UnmarshalJSON(data []byte) error {
	var shadow struct{ Expr json.RawMessage }
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	e, err := decodeExpression(shadow.Expr)
	if err != nil {
		return err
	}
	s.Expr = e
	return nil
}

func (s *VariableDeclarationStatement) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Decls   []VariableDefinition
		InitVal json.RawMessage
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	s.Decls = shadow.Decls
	init, err := decodeOptionalExpression(shadow.InitVal)
	if err != nil {
		return err
	}
	s.InitVal = init
	return nil
}

func (s *ReturnStatement) UnmarshalJSON(data []byte) error {
	var shadow struct{ Value json.RawMessage }
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	v, err := decodeOptionalExpression(shadow.Value)
	if err != nil {
		return err
	}
	s.Value = v
	return nil
}

func (s *IfStatement) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Condition json.RawMessage
		Then      json.RawMessage
		Else      json.RawMessage
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	cond, err := decodeExpression(shadow.Condition)
	if err != nil {
		return err
	}
	then, err := decodeStatement(shadow.Then)
	if err != nil {
		return err
	}
	els, err := decodeOptionalStatement(shadow.Else)
	if err != nil {
		return err
	}
	s.Condition, s.Then, s.Else = cond, then, els
	return nil
}

func (s *WhileStatement) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Condition json.RawMessage
		Body      json.RawMessage
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	cond, err := decodeExpression(shadow.Condition)
	if err != nil {
		return err
	}
	body, err := decodeStatement(shadow.Body)
	if err != nil {
		return err
	}
	s.Condition, s.Body = cond, body
	return nil
}

func (s *BlockStatement) UnmarshalJSON(data []byte) error {
	var shadow struct{ Block Block }
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	s.Block = shadow.Block
	return nil
}

func (s *EmitStatement) UnmarshalJSON(data []byte) error {
	var shadow struct {
		EventName string
		Args      []json.RawMessage
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	args, err := decodeExpressions(shadow.Args)
	if err != nil {
		return err
	}
	s.EventName, s.Args = shadow.EventName, args
	return nil
}

func (s *RevertStatement) UnmarshalJSON(data []byte) error {
	var shadow struct {
		ErrorName string
		Args      []json.RawMessage
		Message   string
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	args, err := decodeExpressions(shadow.Args)
	if err != nil {
		return err
	}
	s.ErrorName, s.Args, s.Message = shadow.ErrorName, args, shadow.Message
	return nil
}

func (e *ArrayLiteral) UnmarshalJSON(data []byte) error {
	var shadow struct{ Elements []json.RawMessage }
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	els, err := decodeExpressions(shadow.Elements)
	if err != nil {
		return err
	}
	e.Elements = els
	return nil
}

func (e *MemberAccess) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Expr json.RawMessage
		Name string
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	x, err := decodeExpression(shadow.Expr)
	if err != nil {
		return err
	}
	e.Expr, e.Name = x, shadow.Name
	return nil
}

func (e *IndexAccess) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Base json.RawMessage
		Keys []json.RawMessage
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	base, err := decodeExpression(shadow.Base)
	if err != nil {
		return err
	}
	keys, err := decodeExpressions(shadow.Keys)
	if err != nil {
		return err
	}
	e.Base, e.Keys = base, keys
	return nil
}

func (e *FunctionCall) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Callee json.RawMessage
		Args   []json.RawMessage
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	callee, err := decodeExpression(shadow.Callee)
	if err != nil {
		return err
	}
	args, err := decodeExpressions(shadow.Args)
	if err != nil {
		return err
	}
	e.Callee, e.Args = callee, args
	return nil
}

func (e *SuperCall) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Name string
		Args []json.RawMessage
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	args, err := decodeExpressions(shadow.Args)
	if err != nil {
		return err
	}
	e.Name, e.Args = shadow.Name, args
	return nil
}

func (e *ExternalCall) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Receiver json.RawMessage
		Name     string
		Args     []json.RawMessage
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	recv, err := decodeExpression(shadow.Receiver)
	if err != nil {
		return err
	}
	args, err := decodeExpressions(shadow.Args)
	if err != nil {
		return err
	}
	e.Receiver, e.Name, e.Args = recv, shadow.Name, args
	return nil
}

func (e *UnaryOp) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Op      string
		Operand json.RawMessage
		Prefix  bool
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	operand, err := decodeExpression(shadow.Operand)
	if err != nil {
		return err
	}
	e.Op, e.Operand, e.Prefix = shadow.Op, operand, shadow.Prefix
	return nil
}

func (e *BinaryOp) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Op    string
		Left  json.RawMessage
		Right json.RawMessage
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	left, err := decodeExpression(shadow.Left)
	if err != nil {
		return err
	}
	right, err := decodeExpression(shadow.Right)
	if err != nil {
		return err
	}
	e.Op, e.Left, e.Right = shadow.Op, left, right
	return nil
}

func (e *Assignment) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Op     string
		Target json.RawMessage
		Value  json.RawMessage
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	target, err := decodeExpression(shadow.Target)
	if err != nil {
		return err
	}
	value, err := decodeExpression(shadow.Value)
	if err != nil {
		return err
	}
	e.Op, e.Target, e.Value = shadow.Op, target, value
	return nil
}

func (e *IncDecExpression) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Op      string
		Operand json.RawMessage
		Prefix  bool
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	operand, err := decodeExpression(shadow.Operand)
	if err != nil {
		return err
	}
	e.Op, e.Operand, e.Prefix = shadow.Op, operand, shadow.Prefix
	return nil
}

func (e *TupleExpression) UnmarshalJSON(data []byte) error {
	var shadow struct{ Elements []json.RawMessage }
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	els, err := decodeExpressions(shadow.Elements)
	if err != nil {
		return err
	}
	e.Elements = els
	return nil
}

func (e *RequireExpression) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Condition json.RawMessage
		Message   string
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	cond, err := decodeExpression(shadow.Condition)
	if err != nil {
		return err
	}
	e.Condition, e.Message = cond, shadow.Message
	return nil
}

func (e *Keccak256Expression) UnmarshalJSON(data []byte) error {
	var shadow struct{ Args []json.RawMessage }
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	args, err := decodeExpressions(shadow.Args)
	if err != nil {
		return err
	}
	e.Args = args
	return nil
}

func (e *AbiEncodePackedExpression) UnmarshalJSON(data []byte) error {
	var shadow struct{ Args []json.RawMessage }
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	args, err := decodeExpressions(shadow.Args)
	if err != nil {
		return err
	}
	e.Args = args
	return nil
}
