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
evalOperation checks a binary expression against the operator type
table (spec §4.4.2). Both operands are read via InferType - an operator
never introduces a binding, so there is nothing for Visit's mutation to
do here even when reached through the mutating traversal.
*/
func (c *Checker) evalOperation(n *ast.Operation) (ast.Type, error) {
	leftType, err := c.InferType(n.Left)
	if err != nil {
		return ast.UndefinedType, err
	}
	rightType, err := c.InferType(n.Right)
	if err != nil {
		return ast.UndefinedType, err
	}

	result, ok := operatorResult(n.Op, leftType, rightType)
	if !ok {
		return ast.UndefinedType, newError(ErrOperatorTypeError,
			"operator \""+string(n.Op)+"\" is not defined for "+leftType.String()+" and "+rightType.String(), n.Pos)
	}
	return result, nil
}
