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
Package checker walks a parsed program and enforces the static type
lattice of spec §3.3/§4.4: every expression is typed, every name is
resolved through the nested symbol/type tables in package env, and
every call, operator application, and assignment is checked against the
declared or inferred types of its operands.

The package exposes two traversal surfaces mirroring spec §4.4.1:
InferType is a read-only query (no binding, no side effect on the
environment) used when an expression's type is needed without
committing to it; Visit is the full checking pass, which binds names
introduced by Definition nodes and recurses into nested scopes. Both
share the same per-node-kind dispatch; the only behavioural difference
is whether a Definition's target name actually gets written into the
symbol/type tables.
*/
package checker

import (
	"github.com/krotik/common/errorutil"
	"github.com/krotik/slug/ast"
	"github.com/krotik/slug/env"
	"github.com/krotik/slug/lexer"
)

/*
Checker holds the current frame of the symbol/type table chain while
visiting a program. A fresh Checker should be used per program; nested
scopes are pushed/popped on the same instance as Fun/Block/Dict nodes
are entered and left.
*/
type Checker struct {
	syms  *env.SymTab
	types *env.TypeTab
}

/*
New creates a Checker with an empty global scope.
*/
func New() *Checker {
	return &Checker{syms: env.NewSymTab(), types: env.NewTypeTab()}
}

/*
CheckProgram visits every top-level statement. Named function
statements are pre-declared (spec §4.4.6) before any body is visited,
so mutual recursion and forward references between top-level functions
resolve correctly.
*/
func (c *Checker) CheckProgram(stmts []ast.Statement) error {
	for _, s := range stmts {
		if fs, ok := s.(*ast.FunStatement); ok {
			if err := c.declareFunSignature(fs); err != nil {
				return err
			}
		}
	}
	for _, s := range stmts {
		if err := c.visitStatement(s); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) visitStatement(s ast.Statement) error {
	switch n := s.(type) {
	case *ast.ExpressionStatement:
		_, err := c.Visit(n.Expr)
		return err
	case *ast.FunStatement:
		return c.visitFunStatement(n)
	}
	errorutil.AssertTrue(false, "unknown statement node")
	return nil
}

/*
InferType computes e's type without mutating any symbol/type table.
*/
func (c *Checker) InferType(e ast.Expression) (ast.Type, error) {
	return c.eval(e, false)
}

/*
Visit computes e's type and, where e introduces a binding (a
Definition), commits it to the current frame.
*/
func (c *Checker) Visit(e ast.Expression) (ast.Type, error) {
	return c.eval(e, true)
}

func (c *Checker) eval(e ast.Expression, bind bool) (ast.Type, error) {
	switch n := e.(type) {
	case *ast.NumberLiteral:
		return ast.NumType, nil
	case *ast.StringLiteral:
		return ast.StrType, nil
	case *ast.BoolLiteral:
		return ast.BoolType, nil
	case *ast.EOF:
		return ast.NilType, nil
	case *ast.Identifier:
		return c.evalIdentifier(n)
	case *ast.BlockExpr:
		return c.evalBlock(n)
	case *ast.DictLiteral:
		return c.evalDict(n)
	case *ast.Index:
		return c.evalIndex(n)
	case *ast.Call:
		return c.evalCall(n)
	case *ast.Operation:
		return c.evalOperation(n)
	case *ast.Definition:
		return c.evalDefinition(n, bind)
	case *ast.Fun:
		return c.evalFun(n)
	}
	errorutil.AssertTrue(false, "unknown expression node")
	return ast.UndefinedType, nil
}

func (c *Checker) evalIdentifier(n *ast.Identifier) (ast.Type, error) {
	slot, depth, ok := c.syms.GetName(n.Name)
	if !ok {
		return ast.UndefinedType, newError(ErrUnknownIdentifier, "unknown identifier \""+n.Name+"\"", n.Pos)
	}
	typ, err := c.types.GetType(slot, depth)
	errorutil.AssertOk(err)
	return typ, nil
}

/*
pushScope replaces the checker's current frame with a child seeded with
names/types, returning a closure that restores the previous frame.
*/
func (c *Checker) pushScope(names []string, types []ast.Type) func() {
	prevSyms, prevTypes := c.syms, c.types
	c.syms = c.syms.NewChild(names)
	c.types = c.types.NewChild(types)
	return func() {
		c.syms, c.types = prevSyms, prevTypes
	}
}

/*
visitStatements visits a statement list in the checker's current frame
and returns the type of the last statement's expression, or Nil if the
list is empty or does not end in a bare expression statement.
*/
func (c *Checker) visitStatements(stmts []ast.Statement) (ast.Type, error) {
	result := ast.NilType
	for i, s := range stmts {
		if err := c.visitStatement(s); err != nil {
			return ast.UndefinedType, err
		}
		if i == len(stmts)-1 {
			if es, ok := s.(*ast.ExpressionStatement); ok {
				t, err := c.InferType(es.Expr)
				if err != nil {
					return ast.UndefinedType, err
				}
				result = t
			}
		}
	}
	return result, nil
}

func (c *Checker) evalBlock(n *ast.BlockExpr) (ast.Type, error) {
	pop := c.pushScope(nil, nil)
	defer pop()
	return c.visitStatements(n.Statements)
}

/*
evalDict visits a dict literal's entries in a fresh child frame so that
field-defining entries ("name = value") do not leak into the enclosing
scope. Entries are syntactically arbitrary expressions (spec §9); only
Definition entries give the literal a field. The literal's own static
type is Any - the lattice has no Dict/Map member, so field access on it
is not checked and yields Any (see evalIndex).
*/
func (c *Checker) evalDict(n *ast.DictLiteral) (ast.Type, error) {
	pop := c.pushScope(nil, nil)
	defer pop()
	for _, entry := range n.Entries {
		if _, err := c.Visit(entry); err != nil {
			return ast.UndefinedType, err
		}
	}
	return ast.AnyType, nil
}

/*
evalIndex checks "target.key" member access. An Array target yields its
element type; an Any target yields Any (dict literals are typed Any);
anything else is not indexable.
*/
func (c *Checker) evalIndex(n *ast.Index) (ast.Type, error) {
	targetType, err := c.InferType(n.Target)
	if err != nil {
		return ast.UndefinedType, err
	}
	switch targetType.Kind {
	case ast.Array:
		if targetType.Elem != nil {
			return *targetType.Elem, nil
		}
		return ast.AnyType, nil
	case ast.Any:
		return ast.AnyType, nil
	}
	return ast.UndefinedType, newError(ErrNotIndexable, "type "+targetType.String()+" is not indexable", n.Pos)
}

/*
lastPos is used for diagnostics where no node position is directly
available.
*/
func lastPos(e ast.Expression) lexer.Position {
	if e == nil {
		return lexer.Position{Line: 1, Col: 1}
	}
	return e.Position()
}
