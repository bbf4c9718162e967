package codegen

import "github.com/odradev/nysa-go/internal/ir"

// EmitErrorsModule writes `pub mod errors { <Error enum> }`.
func (e *Emitter) EmitErrorsModule(pkg *ir.Package) {
	e.Line("pub mod errors {")
	e.Indent()
	e.Line("pub enum Error {")
	e.Indent()
	for _, er := range pkg.Errors {
		e.Line("%s = %d,", er.Name, er.Code)
	}
	e.Dedent()
	e.Line("}")
	e.Dedent()
	e.Line("}")
	e.Line("")
}

// EmitEventsModule writes `pub mod events { <one record per event> }`.
func (e *Emitter) EmitEventsModule(pkg *ir.Package, d Dialect) {
	e.Line("pub mod events {")
	e.Indent()
	for _, ev := range pkg.Events {
		e.Line("pub struct %s {", ev.Name)
		e.Indent()
		for _, f := range ev.Fields {
			e.Line("pub %s: %s,", f.Name, d.LowerType(f.Type))
		}
		e.Dedent()
		e.Line("}")
	}
	e.Dedent()
	e.Line("}")
	e.Line("")
}

// EmitEnumsModule writes `pub mod enums { <one enum per Solidity enum> }`.
func (e *Emitter) EmitEnumsModule(pkg *ir.Package) {
	e.Line("pub mod enums {")
	e.Indent()
	for _, en := range pkg.Enums {
		e.Line("pub enum %s {", en.Name)
		e.Indent()
		for _, v := range en.Variants {
			e.Line("%s,", v)
		}
		e.Dedent()
		e.Line("}")
	}
	e.Dedent()
	e.Line("}")
	e.Line("")
}

// EmitStructsModule writes `pub mod structs { <one record per struct,
// optionally nested by contract namespace> }`.
func (e *Emitter) EmitStructsModule(pkg *ir.Package, d Dialect) {
	e.Line("pub mod structs {")
	e.Indent()
	for _, s := range pkg.Structs {
		e.Line("pub struct %s {", s.Name)
		e.Indent()
		for _, f := range s.Fields {
			e.Line("pub %s: %s,", f.Name, d.LowerType(f.Type))
		}
		e.Dedent()
		e.Line("}")
	}
	e.Dedent()
	e.Line("}")
	e.Line("")
}

// EmitExternalContractModules writes one `pub mod <ext_contract> { <trait
// declaration> }` per interface registered in the package.
func (e *Emitter) EmitExternalContractModules(pkg *ir.Package, d Dialect) {
	for _, iface := range pkg.Interfaces {
		e.Line("pub mod %s {", iface.Name)
		e.Indent()
		e.Line("pub trait %s {", iface.Name)
		e.Indent()
		for _, f := range iface.Functions {
			params := ""
			for i, p := range f.Params {
				if i > 0 {
					params += ", "
				}
				params += p.Name + ": " + d.LowerType(p.Type)
			}
			ret := ""
			if len(f.Returns) == 1 {
				ret = " -> " + d.LowerType(f.Returns[0].Type)
			}
			e.Line("fn %s(%s)%s;", f.Name, params, ret)
		}
		e.Dedent()
		e.Line("}")
		e.Dedent()
		e.Line("}")
		e.Line("")
	}
}

// EmitUseHeader writes the per-contract-module `use super::{...}` import
// line every generated contract module opens with.
func (e *Emitter) EmitUseHeader() {
	e.Line("use super::{errors::*, events::*, enums::*, structs::*};")
}
