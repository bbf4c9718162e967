package ir

import (
	"fmt"
	"sort"

	"github.com/odradev/nysa-go/internal/linearization"
	"github.com/odradev/nysa-go/internal/solidity"
	"github.com/odradev/nysa-go/internal/util"
)

// Builder turns a parsed solidity.SourceUnit into the language-neutral IR.
// It runs in two passes: the first registers
// every contract's name and base list with the C3 graph and records every
// enum/struct name so type resolution in the second pass can
// tell a custom type from an unresolved one; the second pass walks bodies,
// grouping functions across each contract's MRO into FnImplementations and
// splitting modifiers around their placeholder.
type Builder struct {
	c3 *linearization.C3

	enums      map[string]bool
	structs    map[string]bool
	contracts  map[string]*solidity.ContractDefinition
	valueTypes map[string]Type

	// storageVars is the current contract's state-variable type table
	// (name -> declared Type), populated once per buildContract call before
	// any function body is built. locals is the current function/
	// constructor/modifier body's parameter-and-declared-variable set,
	// which shadows storageVars (spec §3: "Storage and local namespaces are
	// disjoint within one function scope; lookup prefers locals").
	storageVars map[string]Type
	locals      map[string]bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		c3:         linearization.New(),
		enums:      map[string]bool{},
		structs:    map[string]bool{},
		contracts:  map[string]*solidity.ContractDefinition{},
		valueTypes: map[string]Type{},
	}
}

// enterScope resets the local-variable set for a new function/constructor/
// modifier body, seeding it with its parameter names.
func (b *Builder) enterScope(params []Param) {
	b.locals = make(map[string]bool, len(params))
	for _, p := range params {
		b.locals[p.Name] = true
	}
}

// declareLocals adds a freshly declared local's name(s) to the current
// scope so subsequent statements in the same body resolve them as locals
// rather than falling through to a same-named storage variable.
func (b *Builder) declareLocals(vars []Var) {
	if b.locals == nil {
		b.locals = map[string]bool{}
	}
	for _, v := range vars {
		b.locals[v.Name] = true
	}
}

// identFor resolves a bare name reference against the current scope: a
// local (or parameter) shadows a state variable of the same name; anything
// else not found in the contract's state-variable table is left unresolved
// (a free identifier such as an enum variant a later pass rewrites through
// MemberAccess).
func (b *Builder) identFor(name string) *Ident {
	if b.locals != nil && b.locals[name] {
		return &Ident{Name: name}
	}
	if t, ok := b.storageVars[name]; ok {
		return &Ident{Name: name, IsStorage: true, StorageType: t}
	}
	return &Ident{Name: name}
}

// Build lowers a full source unit into an ir.Package.
func (b *Builder) Build(unit *solidity.SourceUnit) (*Package, error) {
	contracts := util.Contracts(unit)
	for _, c := range contracts {
		b.contracts[c.Name] = c
	}
	for _, vt := range util.ValueTypeDefs(unit) {
		// The underlying type is always a primitive (spec's supplemented
		// "user-defined value types" feature only allows elementary types),
		// so it needs no further resolution against enums/structs/contracts.
		b.valueTypes[vt.Name] = TypeFromTypeName(vt.Underlying)
	}
	for _, c := range contracts {
		for _, e := range util.Enums(c) {
			b.enums[e.Name] = true
		}
		for _, s := range util.Structs(c) {
			b.structs[s.Name] = true
		}
		if util.IsInterface(c) {
			// Interface bases are stripped before linearization (spec
			// §4.1): an interface contributes no storage, no MRO
			// position, and no C3 class of its own.
			continue
		}
		var bases []string
		for _, base := range c.BaseContracts {
			if bc, ok := b.contracts[base.Name]; ok && util.IsInterface(bc) {
				continue
			}
			bases = append(bases, base.Name)
		}
		b.c3.Add(c.Name, bases)
		for _, f := range util.Functions(c) {
			if f.Kind == solidity.FunctionKindFunction {
				b.c3.RegisterFn(c.Name, f.Name)
			}
		}
		for _, v := range util.StateVariables(c) {
			b.c3.RegisterVar(c.Name, v.Name)
		}
	}

	pkg := &Package{Name: "main"}

	for _, c := range contracts {
		switch {
		case util.IsInterface(c):
			pkg.Interfaces = append(pkg.Interfaces, b.buildInterface(c))
		default:
			data, err := b.buildContract(c)
			if err != nil {
				return nil, fmt.Errorf("contract %q: %w", c.Name, err)
			}
			if util.IsLibrary(c) {
				pkg.Libraries = append(pkg.Libraries, data)
			} else {
				pkg.Contracts = append(pkg.Contracts, data)
			}
			b.collectEvents(pkg, c)
			b.collectErrors(pkg, c)
			b.collectEnums(pkg, c)
			b.collectStructs(pkg, c)
		}
	}

	return pkg, nil
}

func (b *Builder) resolveType(tn solidity.TypeName) Type {
	t := TypeFromTypeName(tn)
	if t.Kind == TypeCustom {
		if underlying, ok := b.valueTypes[t.Name]; ok {
			// A user-defined value type is transparent at runtime: it
			// resolves straight to its underlying primitive everywhere
			// (storage default-on-miss, casts, width inference), same as
			// Solidity's own `type Foo is uint256;` semantics.
			return underlying
		}
		if b.enums[t.Name] {
			ct := Custom(t.Name) // enum: underlying width resolved at codegen time
			ct.IsEnum = true
			return ct
		}
		if b.structs[t.Name] {
			return Custom(t.Name)
		}
		if _, ok := b.contracts[t.Name]; ok {
			return Address() // a contract-typed variable is an address at runtime
		}
	}
	return t
}

func (b *Builder) buildInterface(c *solidity.ContractDefinition) *InterfaceData {
	data := &InterfaceData{Name: c.Name}
	for _, f := range util.Functions(c) {
		data.Functions = append(data.Functions, FuncSignature{
			Name:       f.Name,
			Params:     b.buildParams(f.Parameters),
			Returns:    b.buildParams(f.ReturnParameters),
			Mutability: string(f.StateMutability),
		})
	}
	return data
}

func (b *Builder) buildParams(ps []solidity.Parameter) []Param {
	out := make([]Param, len(ps))
	for i, p := range ps {
		out[i] = Param{Name: p.Name, Type: b.resolveType(p.Type)}
	}
	return out
}

// buildContract flattens one contract's full MRO into a single ContractData:
// state variables deduped leaf-first, and every logical function name
// grouped with one FnImplementation per class that declares it.
func (b *Builder) buildContract(c *solidity.ContractDefinition) (*ContractData, error) {
	path, err := b.c3.Path(c.Name)
	if err != nil {
		return nil, err
	}

	data := &ContractData{
		Name:        c.Name,
		ClassIdent:  util.SafeIdent(c.Name),
		Path:        path,
		Functions:   map[string]*FnImplementations{},
		IsLibrary:   util.IsLibrary(c),
		IsAbstract:  c.IsAbstract,
		IsInterface: util.IsInterface(c),
	}

	seenVar := map[string]bool{}
	for _, className := range path {
		def, ok := b.contracts[className]
		if !ok {
			continue
		}
		for _, v := range util.StateVariables(def) {
			if seenVar[v.Name] {
				continue
			}
			seenVar[v.Name] = true
			data.Vars = append(data.Vars, Var{
				Name:        v.Name,
				Type:        b.resolveType(v.Type),
				Init:        b.buildOptionalExpr(v.InitialValue),
				IsImmutable: v.IsImmutable || v.IsConstant,
			})
		}
	}

	b.storageVars = make(map[string]Type, len(data.Vars))
	for _, v := range data.Vars {
		b.storageVars[v.Name] = v.Type
	}

	for _, className := range path {
		def, ok := b.contracts[className]
		if !ok {
			continue
		}
		for _, f := range util.Functions(def) {
			switch f.Kind {
			case solidity.FunctionKindConstructor:
				b.attachConstructor(data, className, f)
			case solidity.FunctionKindModifier:
				b.attachModifier(data, className, f)
			default:
				b.attachFunction(data, className, f)
			}
		}
	}

	return data, nil
}

func (b *Builder) attachFunction(data *ContractData, class string, f *solidity.FunctionDefinition) {
	params := b.buildParams(f.Parameters)
	returns := b.buildParams(f.ReturnParameters)
	b.enterScope(append(append([]Param{}, params...), returns...))
	impl := FnImplementation{
		Class: class,
		Kind:  FnKindFunction,
		Func: &Func{
			Owner:         class,
			Name:          f.Name,
			Params:        params,
			Returns:       returns,
			Stmts:         b.buildBlock(f.Body),
			ModifierCalls: b.buildModifierCalls(f.Modifiers),
			Visibility:    f.Visibility,
			Mutability:    string(f.StateMutability),
			IsVirtual:     f.IsVirtual,
			IsOverride:    f.IsOverride,
		},
	}
	group, ok := data.Functions[f.Name]
	if !ok {
		group = &FnImplementations{Name: f.Name, Kind: FnKindFunction}
		data.Functions[f.Name] = group
	}
	group.Impls = append(group.Impls, impl)
}

func (b *Builder) attachConstructor(data *ContractData, class string, f *solidity.FunctionDefinition) {
	params := b.buildParams(f.Parameters)
	b.enterScope(params)
	ctor := &Constructor{
		Owner:         class,
		Params:        params,
		Stmts:         b.buildBlock(f.Body),
		ModifierCalls: b.buildModifierCalls(f.Modifiers),
		BaseInitCalls: b.buildBaseInitCalls(f.Modifiers),
		Payable:       f.StateMutability == solidity.MutabilityPayable,
	}
	impl := FnImplementation{Class: class, Kind: FnKindConstructor, Constructor: ctor}
	if data.Constructors == nil {
		data.Constructors = &FnImplementations{Name: "constructor", Kind: FnKindConstructor}
	}
	data.Constructors.Impls = append(data.Constructors.Impls, impl)
}

// attachModifier splits a modifier's body around its PlaceholderStatement.
func (b *Builder) attachModifier(data *ContractData, class string, f *solidity.FunctionDefinition) {
	params := b.buildParams(f.Parameters)
	b.enterScope(params)
	before, after := splitAtPlaceholder(f.Body)
	mod := &Modifier{
		Owner:       class,
		Name:        f.Name,
		Params:      params,
		BeforeStmts: b.buildStmts(before),
		AfterStmts:  b.buildStmts(after),
		Mutability:  string(f.StateMutability),
	}
	impl := FnImplementation{Class: class, Kind: FnKindModifier, Modifier: mod}
	group, ok := data.Functions[f.Name]
	if !ok {
		group = &FnImplementations{Name: f.Name, Kind: FnKindModifier}
		data.Functions[f.Name] = group
	}
	group.Impls = append(group.Impls, impl)
}

func splitAtPlaceholder(body *solidity.Block) (before, after []solidity.Statement) {
	if body == nil {
		return nil, nil
	}
	for i, s := range body.Statements {
		if _, ok := s.(*solidity.PlaceholderStatement); ok {
			return body.Statements[:i], body.Statements[i+1:]
		}
	}
	return body.Statements, nil
}

func (b *Builder) buildModifierCalls(mods []solidity.ModifierInvocation) []ModifierCall {
	var out []ModifierCall
	for _, m := range mods {
		if _, isBase := b.contracts[m.Name]; isBase {
			continue // base-constructor call, not a modifier; see buildBaseInitCalls
		}
		out = append(out, ModifierCall{Name: m.Name, Args: b.buildExprs(m.Args)})
	}
	return out
}

func (b *Builder) buildBaseInitCalls(mods []solidity.ModifierInvocation) []BaseInitCall {
	var out []BaseInitCall
	for _, m := range mods {
		if _, isBase := b.contracts[m.Name]; isBase {
			out = append(out, BaseInitCall{Class: m.Name, Args: b.buildExprs(m.Args)})
		}
	}
	return out
}

func (b *Builder) collectEvents(pkg *Package, c *solidity.ContractDefinition) {
	for _, e := range util.Events(c) {
		pkg.Events = append(pkg.Events, Event{Name: e.Name, Fields: b.buildParams(e.Parameters)})
	}
}

func (b *Builder) collectErrors(pkg *Package, c *solidity.ContractDefinition) {
	for _, e := range util.Errors(c) {
		pkg.Errors = append(pkg.Errors, Error{Name: e.Name, Message: e.Name, Params: b.buildParams(e.Parameters)})
	}
}

func (b *Builder) collectEnums(pkg *Package, c *solidity.ContractDefinition) {
	for _, e := range util.Enums(c) {
		pkg.Enums = append(pkg.Enums, Enum{Name: e.Name, Variants: append([]string{}, e.Members...)})
	}
}

func (b *Builder) collectStructs(pkg *Package, c *solidity.ContractDefinition) {
	for _, s := range util.Structs(c) {
		pkg.Structs = append(pkg.Structs, Struct{
			Name:           s.Name,
			Fields:         b.buildParams(s.Members),
			OwningContract: c.Name,
		})
	}
}

// AssignErrorCodes interns every distinct require/revert message in
// declaration order, once the whole package is built. It also
// backfills RequireExpr.ErrorCode for every require() site found while
// walking.
func AssignErrorCodes(pkg *Package) {
	seen := map[string]int{}
	next := 1
	intern := func(msg string) int {
		if code, ok := seen[msg]; ok {
			return code
		}
		code := next
		seen[msg] = code
		next++
		return code
	}

	for i := range pkg.Errors {
		pkg.Errors[i].Code = intern(pkg.Errors[i].Message)
	}

	walkAllFunctions(pkg, func(stmts []Stmt) {
		for _, s := range stmts {
			internErrorsInStmt(s, intern)
		}
	})

	// Deterministic iteration elsewhere relies on Errors being sorted by
	// code once codes are finalized.
	sort.Slice(pkg.Errors, func(i, j int) bool { return pkg.Errors[i].Code < pkg.Errors[j].Code })
}

func walkAllFunctions(pkg *Package, visit func(stmts []Stmt)) {
	classes := append(append([]*ContractData{}, pkg.Contracts...), pkg.Libraries...)
	for _, c := range classes {
		if c.Constructors != nil {
			for _, impl := range c.Constructors.Impls {
				if impl.Constructor != nil {
					visit(impl.Constructor.Stmts)
				}
			}
		}
		for _, fns := range c.Functions {
			for _, impl := range fns.Impls {
				if impl.Func != nil {
					visit(impl.Func.Stmts)
				}
				if impl.Modifier != nil {
					visit(impl.Modifier.BeforeStmts)
					visit(impl.Modifier.AfterStmts)
				}
			}
		}
	}
}

func internErrorsInStmt(s Stmt, intern func(string) int) {
	switch v := s.(type) {
	case *ExprStmt:
		internErrorsInExpr(v.Expr, intern)
	case *IfStmt:
		internErrorsInExpr(v.Cond, intern)
		internErrorsInStmt(v.Then, intern)
	case *IfElseStmt:
		internErrorsInExpr(v.Cond, intern)
		internErrorsInStmt(v.Then, intern)
		internErrorsInStmt(v.Else, intern)
	case *WhileStmt:
		internErrorsInExpr(v.Cond, intern)
		internErrorsInStmt(v.Body, intern)
	case *BlockStmt:
		for _, inner := range v.Stmts {
			internErrorsInStmt(inner, intern)
		}
	case *ReturningBlockStmt:
		for _, inner := range v.Stmts {
			internErrorsInStmt(inner, intern)
		}
	case *RevertStmt:
		v.ErrorCode = intern(v.Message)
	case *VarDefStmt:
		internErrorsInExpr(v.Init, intern)
	case *ReturnStmt:
		internErrorsInExpr(v.Value, intern)
	}
}

func internErrorsInExpr(e Expression, intern func(string) int) {
	switch v := e.(type) {
	case *RequireExpr:
		v.ErrorCode = intern(v.Message)
		internErrorsInExpr(v.Condition, intern)
	case *BinaryExpr:
		internErrorsInExpr(v.Left, intern)
		internErrorsInExpr(v.Right, intern)
	case *UnaryExpr:
		internErrorsInExpr(v.Operand, intern)
	case *AssignExpr:
		internErrorsInExpr(v.Target, intern)
		internErrorsInExpr(v.Value, intern)
	case *FunctionCallExpr:
		internErrorsInExpr(v.Callee, intern)
		for _, a := range v.Args {
			internErrorsInExpr(a, intern)
		}
	}
}
