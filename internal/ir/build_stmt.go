package ir

import "github.com/odradev/nysa-go/internal/solidity"

// buildBlock lowers a (possibly nil, for bodiless interface functions)
// function body.
func (b *Builder) buildBlock(block *solidity.Block) []Stmt {
	if block == nil {
		return nil
	}
	if block.Statements == nil {
		return []Stmt{}
	}
	return b.buildStmts(block.Statements)
}

func (b *Builder) buildStmts(ss []solidity.Statement) []Stmt {
	if ss == nil {
		return nil
	}
	out := make([]Stmt, len(ss))
	for i, s := range ss {
		out[i] = b.buildStmt(s)
	}
	return out
}

// buildStmt lowers one syntactic Solidity statement into its IR shape (spec
// §3 Stmt, §4.2).
func (b *Builder) buildStmt(s solidity.Statement) Stmt {
	switch v := s.(type) {
	case *solidity.ExpressionStatement:
		return &ExprStmt{Expr: b.buildExpr(v.Expr)}
	case *solidity.VariableDeclarationStatement:
		vars := make([]Var, len(v.Decls))
		for i, d := range v.Decls {
			vars[i] = Var{Name: d.Name, Type: b.resolveType(d.Type)}
		}
		if v.InitVal == nil {
			b.declareLocals(vars)
			return &VarDeclStmt{Vars: vars}
		}
		// The initializer is built before the new names are registered: a
		// declaration's own right-hand side never sees its own binding
		// (`uint x = x;` resolves the rhs `x` as whatever `x` meant before
		// this statement, matching Solidity's no-self-reference rule).
		init := b.buildExpr(v.InitVal)
		b.declareLocals(vars)
		return &VarDefStmt{Vars: vars, Init: init}
	case *solidity.ReturnStatement:
		return &ReturnStmt{Value: b.buildOptionalExpr(v.Value)}
	case *solidity.IfStatement:
		cond := b.buildExpr(v.Condition)
		then := b.buildStmt(v.Then)
		if v.Else == nil {
			return &IfStmt{Cond: cond, Then: then}
		}
		return &IfElseStmt{Cond: cond, Then: then, Else: b.buildStmt(v.Else)}
	case *solidity.WhileStatement:
		return &WhileStmt{Cond: b.buildExpr(v.Condition), Body: b.buildStmt(v.Body)}
	case *solidity.BlockStatement:
		return &BlockStmt{Stmts: b.buildStmts(v.Block.Statements)}
	case *solidity.EmitStatement:
		return &EmitStmt{Event: v.EventName, Args: b.buildExprs(v.Args)}
	case *solidity.RevertStatement:
		if v.ErrorName != "" {
			return &RevertNamedStmt{ErrorName: v.ErrorName, Args: b.buildExprs(v.Args)}
		}
		// ErrorCode is backfilled by AssignErrorCodes.
		return &RevertStmt{Message: v.Message}
	case *solidity.PlaceholderStatement:
		return &PlaceholderStmt{}
	case *solidity.UncheckedStatement:
		return &UncheckedStmt{Stmts: b.buildStmts(v.Block.Statements)}
	default:
		return &BlockStmt{}
	}
}
