/*
 * Slug
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package emitter renders a checked AST as Lua source text (spec §4.5).
Unlike the checker, emission assumes the tree is already well-typed; it
does not re-validate anything, and AssertTrue is used freely
for shape invariants that the parser and checker are responsible for
upholding.
*/
package emitter

import (
	"strconv"
	"strings"

	"github.com/krotik/common/errorutil"
	"github.com/krotik/common/stringutil"
	"github.com/krotik/slug/ast"
)

/*
IndentationLevel is the number of spaces one nesting level adds, matching
the teacher pretty-printer's convention.
*/
const IndentationLevel = 4

type emitter struct {
	buf    strings.Builder
	indent int
	locals map[string]bool
}

/*
Emit renders a top-level statement list as a complete Lua chunk.
*/
func Emit(program []ast.Statement) (string, error) {
	e := &emitter{locals: make(map[string]bool)}
	if err := e.emitStatements(program); err != nil {
		return "", err
	}
	return e.buf.String(), nil
}

func (e *emitter) indentString() string {
	return stringutil.GenerateRollingString(" ", e.indent*IndentationLevel)
}

func (e *emitter) writeLine(code string) {
	e.buf.WriteString(e.indentString())
	e.buf.WriteString(code)
	e.buf.WriteString("\n")
}

func (e *emitter) emitStatements(stmts []ast.Statement) error {
	for _, s := range stmts {
		if err := e.emitStatement(s); err != nil {
			return err
		}
	}
	return nil
}

/*
emitStatements returning the final statement's value, if it is a bare
expression statement, as a Lua "return" line - used for any statement
list standing in for a value (function bodies, block terms).
*/
func (e *emitter) emitStatementsAsValue(stmts []ast.Statement) error {
	for i, s := range stmts {
		if i == len(stmts)-1 {
			if es, ok := s.(*ast.ExpressionStatement); ok {
				code, err := e.emitExpr(es.Expr)
				if err != nil {
					return err
				}
				e.writeLine("return " + code)
				continue
			}
		}
		if err := e.emitStatement(s); err != nil {
			return err
		}
	}
	return nil
}

func (e *emitter) emitStatement(s ast.Statement) error {
	switch n := s.(type) {
	case *ast.ExpressionStatement:
		code, err := e.emitExpr(n.Expr)
		if err != nil {
			return err
		}
		e.writeLine(code)
		return nil
	case *ast.FunStatement:
		return e.emitFunStatement(n)
	}
	errorutil.AssertTrue(false, "unknown statement node in emitter")
	return nil
}

func (e *emitter) emitFunStatement(fs *ast.FunStatement) error {
	e.writeLine("local function " + fs.Name + "(" + strings.Join(fs.ParamNames, ", ") + ")")
	child := e.child()
	for _, p := range fs.ParamNames {
		child.locals[p] = true
	}
	if err := child.emitStatementsAsValue(fs.Body); err != nil {
		return err
	}
	e.buf.WriteString(child.buf.String())
	e.writeLine("end")
	return nil
}

/*
child returns a nested emitter one indent level deeper, with its own
buffer and a copy of the parent's locals, used for rendering a function
or block body. The caller copies the child's buffer into its own.
*/
func (e *emitter) child() *emitter {
	locals := make(map[string]bool, len(e.locals))
	for k, v := range e.locals {
		locals[k] = v
	}
	return &emitter{indent: e.indent + 1, locals: locals}
}

func (e *emitter) emitExpr(expr ast.Expression) (string, error) {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		return formatNumber(n.Value), nil
	case *ast.StringLiteral:
		return strconv.Quote(n.Value), nil
	case *ast.BoolLiteral:
		if n.Value {
			return "true", nil
		}
		return "false", nil
	case *ast.EOF:
		return "nil", nil
	case *ast.Identifier:
		return n.Name, nil
	case *ast.Index:
		return e.emitIndex(n)
	case *ast.Call:
		return e.emitCall(n)
	case *ast.Operation:
		return e.emitOperation(n)
	case *ast.Definition:
		return e.emitDefinition(n)
	case *ast.DictLiteral:
		return e.emitDictLiteral(n)
	case *ast.BlockExpr:
		return e.emitBlockExpr(n)
	case *ast.Fun:
		return e.emitAnonFun(n)
	}
	errorutil.AssertTrue(false, "unknown expression node in emitter")
	return "", nil
}

func (e *emitter) emitIndex(n *ast.Index) (string, error) {
	target, err := e.emitExpr(n.Target)
	if err != nil {
		return "", err
	}
	key, ok := n.Key.(*ast.Identifier)
	errorutil.AssertTrue(ok, "Index.Key must be an identifier")
	return target + "." + key.Name, nil
}

func (e *emitter) emitCall(n *ast.Call) (string, error) {
	callee, err := e.emitExpr(n.Callee)
	if err != nil {
		return "", err
	}
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		code, err := e.emitExpr(a)
		if err != nil {
			return "", err
		}
		args[i] = code
	}
	return callee + "(" + strings.Join(args, ", ") + ")", nil
}

/*
emitOperation always parenthesises a nested Operation operand. Lua's own
operator precedence does not exactly mirror spec §4.3.3's climbing
order, so re-deriving which parens are redundant is not attempted here;
every translated operator application is unambiguous at the cost of a
few always-safe extra parens.
*/
func (e *emitter) emitOperation(n *ast.Operation) (string, error) {
	left, err := e.emitOperand(n.Left)
	if err != nil {
		return "", err
	}
	right, err := e.emitOperand(n.Right)
	if err != nil {
		return "", err
	}
	return left + " " + translateOperator(n.Op) + " " + right, nil
}

func (e *emitter) emitOperand(n ast.Expression) (string, error) {
	code, err := e.emitExpr(n)
	if err != nil {
		return "", err
	}
	if _, ok := n.(*ast.Operation); ok {
		return "(" + code + ")", nil
	}
	return code, nil
}

/*
translateOperator maps a source operator lexeme to its Lua spelling.
Only "!=" differs; everything else (arithmetic, "==", comparisons,
"and"/"or", "^") is spelled identically in Lua.
*/
func translateOperator(op ast.Operator) string {
	if op == "!=" {
		return "~="
	}
	return string(op)
}

/*
emitDefinition renders a binding. A name assigned for the first time in
the current (function/block) scope, and not already local in an
enclosing one, is declared "local"; later assignments to it, including
from nested scopes, are plain reassignment.
Assigning through an Index target is always plain reassignment - there
is no "local" form for a table field.
*/
func (e *emitter) emitDefinition(n *ast.Definition) (string, error) {
	targetCode, err := e.emitExpr(n.Target)
	if err != nil {
		return "", err
	}

	valueCode := "nil"
	if n.Value != nil {
		valueCode, err = e.emitExpr(n.Value)
		if err != nil {
			return "", err
		}
	}

	if ident, ok := n.Target.(*ast.Identifier); ok {
		if !e.locals[ident.Name] {
			e.locals[ident.Name] = true
			return "local " + targetCode + " = " + valueCode, nil
		}
	}
	return targetCode + " = " + valueCode, nil
}

func (e *emitter) emitDictLiteral(n *ast.DictLiteral) (string, error) {
	parts := make([]string, len(n.Entries))
	for i, entry := range n.Entries {
		if def, ok := entry.(*ast.Definition); ok {
			ident, ok := def.Target.(*ast.Identifier)
			errorutil.AssertTrue(ok, "dict literal field must be a plain name")
			valueCode := "nil"
			if def.Value != nil {
				var err error
				valueCode, err = e.emitExpr(def.Value)
				if err != nil {
					return "", err
				}
			}
			parts[i] = ident.Name + " = " + valueCode
			continue
		}
		code, err := e.emitExpr(entry)
		if err != nil {
			return "", err
		}
		parts[i] = code
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}

/*
emitBlockExpr renders a block used in value position as an
immediately-invoked Lua function, since Lua has no block expressions.
*/
func (e *emitter) emitBlockExpr(n *ast.BlockExpr) (string, error) {
	child := e.child()
	if err := child.emitStatementsAsValue(n.Statements); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("(function()\n")
	b.WriteString(child.buf.String())
	b.WriteString(e.indentString())
	b.WriteString("end)()")
	return b.String(), nil
}

func (e *emitter) emitAnonFun(n *ast.Fun) (string, error) {
	child := e.child()
	for _, p := range n.ParamNames {
		child.locals[p] = true
	}
	if err := child.emitStatementsAsValue(n.Body); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("function(")
	b.WriteString(strings.Join(n.ParamNames, ", "))
	b.WriteString(")\n")
	b.WriteString(child.buf.String())
	b.WriteString(e.indentString())
	b.WriteString("end")
	return b.String(), nil
}

/*
formatNumber renders a float as Lua source, dropping the fractional part
for values that are mathematically integral so "10" prints as "10" and
not "10.0" - matching how the lexer's int-literal lexemes round-trip.
*/
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
