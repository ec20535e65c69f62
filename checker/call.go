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

import (
	"strconv"

	"github.com/krotik/slug/ast"
)

/*
evalCall checks a call expression (spec §4.4.5). The callee must be of
Fun type (or Any, which is permitted unconditionally). Arity/argument
checking follows the original implementation's resolution of the
parameter-slicing question left open by spec §9:

  - Non-variadic: Signature[1:] (the parameter types, Signature[0]
    being the return type) must have exactly as many entries as there
    are arguments, and each argument's type must be strictly Equal to
    the corresponding parameter type.
  - Variadic (Signature's last parameter is Many(T)): the fixed prefix
    Signature[1 : len(Signature)-1] is checked the same way against the
    matching argument prefix; every remaining argument only needs to be
    Compatible with T.
*/
func (c *Checker) evalCall(n *ast.Call) (ast.Type, error) {
	calleeType, err := c.InferType(n.Callee)
	if err != nil {
		return ast.UndefinedType, err
	}
	if calleeType.Kind == ast.Any {
		return ast.AnyType, nil
	}
	if calleeType.Kind != ast.Fun {
		return ast.UndefinedType, newError(ErrCallNonFun, "cannot call a value of type "+calleeType.String(), n.Pos)
	}

	argTypes := make([]ast.Type, len(n.Args))
	for i, a := range n.Args {
		t, err := c.InferType(a)
		if err != nil {
			return ast.UndefinedType, err
		}
		argTypes[i] = t
	}

	params := calleeType.Signature[1:]
	if len(params) > 0 && params[len(params)-1].Kind == ast.Many {
		fixed := params[:len(params)-1]
		tail := params[len(params)-1].Elem

		if len(argTypes) < len(fixed) {
			return ast.UndefinedType, newError(ErrArityMismatch, "too few arguments", n.Pos)
		}
		for i, p := range fixed {
			if !ast.Equal(p, argTypes[i]) {
				return ast.UndefinedType, newError(ErrTypeMismatch,
					"argument "+strconv.Itoa(i+1)+" has type "+argTypes[i].String()+", expected "+p.String(), n.Pos)
			}
		}
		for i := len(fixed); i < len(argTypes); i++ {
			if tail != nil && !ast.Compatible(*tail, argTypes[i]) {
				return ast.UndefinedType, newError(ErrTypeMismatch,
					"argument "+strconv.Itoa(i+1)+" has type "+argTypes[i].String()+", expected "+tail.String(), n.Pos)
			}
		}
	} else {
		if len(argTypes) != len(params) {
			return ast.UndefinedType, newError(ErrArityMismatch, "expected "+strconv.Itoa(len(params))+" arguments, got "+strconv.Itoa(len(argTypes)), n.Pos)
		}
		for i, p := range params {
			if !ast.Equal(p, argTypes[i]) {
				return ast.UndefinedType, newError(ErrTypeMismatch,
					"argument "+strconv.Itoa(i+1)+" has type "+argTypes[i].String()+", expected "+p.String(), n.Pos)
			}
		}
	}

	return calleeType.Signature[0], nil
}

