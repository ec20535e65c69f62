/*
 * Slug
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package cursor

import (
	"errors"
	"testing"

	"github.com/krotik/slug/lexer"
)

func tokens() []*lexer.Token {
	return []*lexer.Token{
		lexer.NewToken(lexer.Identifier, "a", lexer.Position{Line: 1, Col: 1}),
		lexer.NewToken(lexer.Symbol, "=", lexer.Position{Line: 1, Col: 3}),
		lexer.NewToken(lexer.IntLiteral, "1", lexer.Position{Line: 1, Col: 5}),
	}
}

func TestCursorCurrentAndPeek(t *testing.T) {
	c := New(tokens())

	if c.CurrentContent() != "a" {
		t.Error("Unexpected current content:", c.CurrentContent())
		return
	}
	if c.Peek(1).Content != "=" {
		t.Error("Unexpected peek(1):", c.Peek(1))
		return
	}
	if c.Peek(-1) != nil {
		t.Error("Expected peek(-1) out of bounds to be nil")
		return
	}
	if c.Peek(10) != nil {
		t.Error("Expected out-of-range peek to be nil")
	}
}

func TestCursorNextPrevAndRemaining(t *testing.T) {
	c := New(tokens())

	if c.Remaining() != 3 {
		t.Error("Unexpected remaining:", c.Remaining())
		return
	}

	c.Next()
	if c.CurrentContent() != "=" {
		t.Error("Unexpected content after Next:", c.CurrentContent())
		return
	}
	if c.Peek(-1).Content != "a" {
		t.Error("Unexpected backward peek:", c.Peek(-1))
		return
	}

	if !c.Prev() {
		t.Error("Expected Prev to succeed")
		return
	}
	if c.CurrentContent() != "a" {
		t.Error("Unexpected content after Prev:", c.CurrentContent())
		return
	}
	if c.Prev() {
		t.Error("Expected Prev at start to fail")
	}
}

func TestCursorMarkReset(t *testing.T) {
	c := New(tokens())

	mark := c.Mark()
	c.Next()
	c.Next()
	if c.CurrentContent() != "1" {
		t.Error("Unexpected content before reset:", c.CurrentContent())
		return
	}
	c.Reset(mark)
	if c.CurrentContent() != "a" {
		t.Error("Reset did not restore position:", c.CurrentContent())
	}
}

func TestCursorExpect(t *testing.T) {
	c := New(tokens())

	content, err := c.Expect(lexer.Identifier)
	if err != nil || content != "a" {
		t.Error("Unexpected Expect result:", content, err)
		return
	}

	_, err = c.Expect(lexer.IntLiteral)
	if err == nil || !errors.Is(err, ErrUnexpectedKind) {
		t.Error("Expected ErrUnexpectedKind, got", err)
	}
}

func TestCursorExpectContent(t *testing.T) {
	c := New(tokens())
	c.Next()

	if err := c.ExpectContent("="); err != nil {
		t.Error("Unexpected error:", err)
		return
	}
	if c.CurrentContent() != "1" {
		t.Error("ExpectContent did not advance cursor:", c.CurrentContent())
		return
	}

	err := c.ExpectContent("nope")
	if err == nil || !errors.Is(err, ErrUnexpectedContent) {
		t.Error("Expected ErrUnexpectedContent, got", err)
	}
}

func TestCursorExpectAtEnd(t *testing.T) {
	c := New(nil)

	if c.Current() != nil {
		t.Error("Expected nil current on empty cursor")
	}
	if _, err := c.Expect(lexer.Identifier); err == nil {
		t.Error("Expected error expecting a kind at end of input")
	}
	if err := c.ExpectContent("x"); err == nil {
		t.Error("Expected error expecting content at end of input")
	}
}
