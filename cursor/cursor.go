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
Package cursor provides a random-access forward/backward iterator over a
flat token sequence ("traveler"). It underlies the parser's lookahead and
backtracking.
*/
package cursor

import (
	"fmt"

	"github.com/krotik/slug/lexer"
)

/*
Cursor is a single-owner, single-threaded pointer into a token sequence.
*/
type Cursor struct {
	tokens []*lexer.Token
	index  int
}

/*
New creates a cursor positioned at the first token of tokens.
*/
func New(tokens []*lexer.Token) *Cursor {
	return &Cursor{tokens: tokens, index: 0}
}

/*
Current returns the token at the cursor, or nil if the cursor is out of
bounds (empty sequence or walked past either end).
*/
func (c *Cursor) Current() *lexer.Token {
	if c.index < 0 || c.index >= len(c.tokens) {
		return nil
	}
	return c.tokens[c.index]
}

/*
CurrentContent returns the content of the current token, or "" if there
is none.
*/
func (c *Cursor) CurrentContent() string {
	if t := c.Current(); t != nil {
		return t.Content
	}
	return ""
}

/*
CurrentKind returns the kind of the current token, or "" if there is
none.
*/
func (c *Cursor) CurrentKind() lexer.Kind {
	if t := c.Current(); t != nil {
		return t.Kind
	}
	return ""
}

/*
Peek looks n tokens ahead of the cursor without moving it. n may be
negative to look behind. Returns nil if the offset is out of bounds.
*/
func (c *Cursor) Peek(n int) *lexer.Token {
	idx := c.index + n
	if idx < 0 || idx >= len(c.tokens) {
		return nil
	}
	return c.tokens[idx]
}

/*
Next advances the cursor by one token. Returns false if already at or
past the end of the sequence.
*/
func (c *Cursor) Next() bool {
	if c.index >= len(c.tokens) {
		return false
	}
	c.index++
	return c.index < len(c.tokens)
}

/*
Prev retreats the cursor by one token. Returns false if already at the
start of the sequence.
*/
func (c *Cursor) Prev() bool {
	if c.index <= 0 {
		return false
	}
	c.index--
	return true
}

/*
Remaining returns the number of tokens from the cursor (inclusive) to
the end of the sequence.
*/
func (c *Cursor) Remaining() int {
	r := len(c.tokens) - c.index
	if r < 0 {
		return 0
	}
	return r
}

/*
Mark returns the current index so the caller can Reset back to it - a
save/restore alternative to interleaved Prev() backtracking. The parser
in this module uses neither; it only looks ahead with Peek.
*/
func (c *Cursor) Mark() int {
	return c.index
}

/*
Reset moves the cursor back to a previously taken Mark.
*/
func (c *Cursor) Reset(mark int) {
	c.index = mark
}

/*
Expect advances past the current token if it has the given kind,
returning its content. Otherwise it returns UnexpectedKind.
*/
func (c *Cursor) Expect(kind lexer.Kind) (string, error) {
	t := c.Current()
	if t == nil {
		return "", fmt.Errorf("%w: expected %s, found end of input", ErrUnexpectedKind, kind)
	}
	if t.Kind != kind {
		return "", fmt.Errorf("%w: expected %s, found %s %q @ %s", ErrUnexpectedKind, kind, t.Kind, t.Content, t.Pos)
	}
	content := t.Content
	c.Next()
	return content, nil
}

/*
ExpectContent advances past the current token if its content matches
text, otherwise returns UnexpectedContent.
*/
func (c *Cursor) ExpectContent(text string) error {
	t := c.Current()
	if t == nil {
		return fmt.Errorf("%w: expected %q, found end of input", ErrUnexpectedContent, text)
	}
	if t.Content != text {
		return fmt.Errorf("%w: expected %q, found %q @ %s", ErrUnexpectedContent, text, t.Content, t.Pos)
	}
	c.Next()
	return nil
}
