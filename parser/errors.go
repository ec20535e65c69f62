/*
 * Slug
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"errors"
	"fmt"

	"github.com/krotik/slug/lexer"
)

/*
Sentinel parse error kinds (spec §7).
*/
var (
	ErrUnexpectedToken         = errors.New("UnexpectedToken")
	ErrUnexpectedEnd           = errors.New("UnexpectedEnd")
	ErrExpectedContent         = errors.New("ExpectedContent")
	ErrExpectedKind            = errors.New("ExpectedKind")
	ErrIllegalAssignmentTarget = errors.New("IllegalAssignmentTarget")
)

/*
Error is a parse-phase diagnostic.
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

/*
wrapCursorError translates a cursor-level error (UnexpectedKind /
UnexpectedContent) into the parser's own error taxonomy while keeping
the original message, since the cursor itself carries no notion of
ExpectedContent/ExpectedKind kinds.
*/
func wrapCursorError(err error, pos lexer.Position) *Error {
	return newError(ErrUnexpectedToken, err.Error(), pos)
}
