/*
 * Slug
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package checker

import "github.com/krotik/slug/ast"

/*
funSignature builds the Fun(signature) type for a parameter/return-type
pair. Signature[0] is the return type, Signature[1:] the parameters.
*/
func funSignature(paramTypes []ast.Type, returnType ast.Type) ast.Type {
	sig := make([]ast.Type, 0, len(paramTypes)+1)
	sig = append(sig, returnType)
	sig = append(sig, paramTypes...)
	return ast.FunOf(sig)
}

/*
declareFunSignature binds a named function's signature into the current
frame before any top-level body is visited (spec §4.4.6), so that
recursive and mutually-recursive calls resolve. A function with no
declared return type is given a provisional Any return, narrowed once
its body has actually been checked (see visitFunStatement).
*/
func (c *Checker) declareFunSignature(fs *ast.FunStatement) error {
	if c.syms.HasNameHere(fs.Name) {
		return newError(ErrRedeclared, "\""+fs.Name+"\" is already declared in this scope", fs.Pos)
	}
	ret := ast.AnyType
	if fs.ReturnType != nil {
		ret = *fs.ReturnType
	}
	c.bind(fs.Name, funSignature(fs.ParamTypes, ret))
	return nil
}

/*
visitFunBody creates a child scope seeded with the function's
parameters and checks its statements against ret (spec §4.4.4: "each
statement's inferred type must equal R"). When ret is non-nil and not
Any, every statement's inferred type is compared against it as the
statement is visited, erroring on the first mismatch rather than only
looking at the body's trailing statement - matching
original_source/.../ast.rs's per-statement visit loop
(`Statement::Fun`/`Expression::Fun`). The trailing expression
statement's type is returned regardless, so a function with no
declared return type can still have its signature narrowed from it.
*/
func (c *Checker) visitFunBody(paramNames []string, paramTypes []ast.Type, body []ast.Statement, ret *ast.Type) (ast.Type, error) {
	pop := c.pushScope(paramNames, paramTypes)
	defer pop()

	result := ast.NilType
	for _, s := range body {
		if err := c.visitStatement(s); err != nil {
			return ast.UndefinedType, err
		}
		es, ok := s.(*ast.ExpressionStatement)
		if !ok {
			continue
		}
		t, err := c.InferType(es.Expr)
		if err != nil {
			return ast.UndefinedType, err
		}
		if ret != nil && ret.Kind != ast.Any && !ast.Equal(t, *ret) {
			return ast.UndefinedType, newError(ErrReturnTypeMismatch,
				"function returns "+t.String()+", declared "+ret.String(), s.Position())
		}
		result = t
	}
	return result, nil
}

/*
visitFunStatement checks a named function's body against its
pre-declared signature (declareFunSignature having already run for
every top-level function statement) and, for a function with no
declared return type, narrows the signature bound to its name to the
type actually inferred from the body.
*/
func (c *Checker) visitFunStatement(fs *ast.FunStatement) error {
	inferred, err := c.visitFunBody(fs.ParamNames, fs.ParamTypes, fs.Body, fs.ReturnType)
	if err != nil {
		return err
	}

	if fs.ReturnType != nil {
		return nil
	}

	slot, depth, ok := c.syms.GetName(fs.Name)
	if ok && depth == 0 {
		_ = c.types.SetType(slot, depth, funSignature(fs.ParamTypes, inferred))
	}
	return nil
}

/*
evalFun checks an anonymous function expression. Unlike a named
function statement, it has no pre-declaration step - it cannot be
referenced recursively by name - so its signature is simply computed
fresh each time it is evaluated.
*/
func (c *Checker) evalFun(n *ast.Fun) (ast.Type, error) {
	inferred, err := c.visitFunBody(n.ParamNames, n.ParamTypes, n.Body, n.ReturnType)
	if err != nil {
		return ast.UndefinedType, err
	}

	ret := inferred
	if n.ReturnType != nil {
		ret = *n.ReturnType
	}
	return funSignature(n.ParamTypes, ret), nil
}
