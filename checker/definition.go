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
	"github.com/krotik/common/errorutil"
	"github.com/krotik/slug/ast"
)

/*
evalDefinition checks a binding or assignment (spec §4.4.3). Two shapes
are distinguished by DeclaredType:

  - A typed declaration ("name type = value" or "name type") introduces
    name fresh in the current frame; redeclaring a name already bound
    directly in that frame is an error (ErrRedeclared) rather than a
    silent shadow.
  - An untyped assignment ("name = value") either creates name with the
    value's inferred type, if name is not yet visible, or - if name is
    already bound anywhere in the enclosing chain - requires the new
    value's type to be Compatible with the type recorded at that
    binding (ErrTypeMutation otherwise). A name's type is fixed at its
    first binding; only its value may change thereafter.

Assigning through an Index target ("target.key = value") never binds a
name; it checks the new value against the indexed element's type.
*/
func (c *Checker) evalDefinition(n *ast.Definition, bind bool) (ast.Type, error) {
	if idx, ok := n.Target.(*ast.Index); ok {
		return c.evalIndexAssignment(n, idx, bind)
	}

	ident := n.Target.(*ast.Identifier)

	var valueType ast.Type = ast.UndefinedType
	if n.Value != nil {
		t, err := c.eval(n.Value, bind)
		if err != nil {
			return ast.UndefinedType, err
		}
		valueType = t
	}

	if n.DeclaredType != nil {
		if n.Value != nil && !ast.Compatible(*n.DeclaredType, valueType) {
			return ast.UndefinedType, newError(ErrTypeMismatch,
				"cannot assign "+valueType.String()+" to declared type "+n.DeclaredType.String(), n.Pos)
		}
		if bind {
			if c.syms.HasNameHere(ident.Name) {
				return ast.UndefinedType, newError(ErrRedeclared, "\""+ident.Name+"\" is already declared in this scope", n.Pos)
			}
			c.bind(ident.Name, *n.DeclaredType)
		}
		return *n.DeclaredType, nil
	}

	if slot, depth, ok := c.syms.GetName(ident.Name); ok {
		existing, err := c.types.GetType(slot, depth)
		if err != nil {
			return ast.UndefinedType, err
		}
		if n.Value != nil && !ast.Compatible(existing, valueType) {
			return ast.UndefinedType, newError(ErrTypeMutation,
				"cannot assign "+valueType.String()+" to \""+ident.Name+"\" of type "+existing.String(), n.Pos)
		}
		return existing, nil
	}

	if bind {
		c.bind(ident.Name, valueType)
	}
	return valueType, nil
}

func (c *Checker) bind(name string, typ ast.Type) {
	slot := c.syms.AddName(name)
	if slot == c.types.Size() {
		c.types.Grow()
	}
	errorutil.AssertOk(c.types.SetType(slot, 0, typ))
}

func (c *Checker) evalIndexAssignment(n *ast.Definition, idx *ast.Index, bind bool) (ast.Type, error) {
	elemType, err := c.evalIndex(idx)
	if err != nil {
		return ast.UndefinedType, err
	}
	if n.Value != nil {
		valueType, err := c.eval(n.Value, bind)
		if err != nil {
			return ast.UndefinedType, err
		}
		if !ast.Compatible(elemType, valueType) {
			return ast.UndefinedType, newError(ErrTypeMutation,
				"cannot assign "+valueType.String()+" to element of type "+elemType.String(), n.Pos)
		}
	}
	return elemType, nil
}
