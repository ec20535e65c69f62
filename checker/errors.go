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
	"errors"
	"fmt"

	"github.com/krotik/slug/lexer"
)

/*
Semantic error kinds (spec §4.4, §7). Each names one way a program can
fail the checker without being a syntax error.
*/
var (
	ErrUnknownIdentifier   = errors.New("UnknownIdentifier")
	ErrCallNonFun          = errors.New("CallNonFun")
	ErrNotIndexable        = errors.New("NotIndexable")
	ErrTypeMismatch        = errors.New("TypeMismatch")
	ErrTypeMutation        = errors.New("TypeMutation")
	ErrRedeclared          = errors.New("Redeclared")
	ErrReturnTypeMismatch  = errors.New("ReturnTypeMismatch")
	ErrOperatorTypeError   = errors.New("OperatorTypeError")
	ErrArityMismatch       = errors.New("ArityMismatch")
)

/*
Error is a semantic diagnostic produced while visiting the AST.
*/
type Error struct {
	Kind    error
	Message string
	Pos     lexer.Position
}

/*
Error renders the diagnostic in the shared wire format.
*/
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s @ %s", e.Kind, e.Message, e.Pos)
}

/*
Unwrap exposes the sentinel kind so callers can use errors.Is.
*/
func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, message string, pos lexer.Position) *Error {
	return &Error{Kind: kind, Message: message, Pos: pos}
}
