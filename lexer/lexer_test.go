/*
 * Slug
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package lexer

import "testing"

func TestLexFlatLine(t *testing.T) {
	root, err := Lex("a = 1")
	if err != nil {
		t.Error("Unexpected error:", err)
		return
	}

	if root.Kind != Block {
		t.Error("Expected root to be a Block token")
		return
	}

	kinds := []Kind{Identifier, Symbol, IntLiteral, EOL}
	if len(root.Children) != len(kinds) {
		t.Error("Unexpected child count:", len(root.Children))
		return
	}
	for i, k := range kinds {
		if root.Children[i].Kind != k {
			t.Error("Unexpected kind at", i, ":", root.Children[i].Kind)
			return
		}
	}
}

func TestLexIndentedBlock(t *testing.T) {
	src := "fun f:\n    a = 1\n    b = 2\n"

	root, err := Lex(src)
	if err != nil {
		t.Error("Unexpected error:", err)
		return
	}

	// fun, Identifier(f), Symbol(:), EOL, Block
	if len(root.Children) != 5 {
		t.Error("Unexpected top-level child count:", len(root.Children))
		return
	}

	block := root.Children[4]
	if block.Kind != Block {
		t.Error("Expected a nested Block token, got", block.Kind)
		return
	}

	// a, =, 1, EOL, b, =, 2, EOL
	if len(block.Children) != 8 {
		t.Error("Unexpected nested child count:", len(block.Children))
		return
	}
}

func TestLexBadIndent(t *testing.T) {
	src := "a = 1\n        b = 2\n    c = 3\n"

	_, err := Lex(src)
	if err == nil {
		t.Error("Expected an indentation error")
		return
	}
	if lexErr, ok := err.(*Error); !ok || lexErr.Kind != ErrBadIndent {
		t.Error("Expected ErrBadIndent, got", err)
		return
	}
}

func TestLexUnterminatedString(t *testing.T) {
	_, err := Lex(`a = "unterminated`)
	if err == nil {
		t.Error("Expected an unterminated string error")
		return
	}
	if lexErr, ok := err.(*Error); !ok || lexErr.Kind != ErrUnterminatedString {
		t.Error("Expected ErrUnterminatedString, got", err)
		return
	}
}

func TestLexInvalidCharacter(t *testing.T) {
	_, err := Lex("a = @")
	if err == nil {
		t.Error("Expected an invalid character error")
		return
	}
	if lexErr, ok := err.(*Error); !ok || lexErr.Kind != ErrInvalidCharacter {
		t.Error("Expected ErrInvalidCharacter, got", err)
		return
	}
}

func TestLexNumberKinds(t *testing.T) {
	root, err := Lex("1 1.5")
	if err != nil {
		t.Error("Unexpected error:", err)
		return
	}
	if root.Children[0].Kind != IntLiteral || root.Children[0].Content != "1" {
		t.Error("Unexpected int token:", root.Children[0])
		return
	}
	if root.Children[1].Kind != FloatLiteral || root.Children[1].Content != "1.5" {
		t.Error("Unexpected float token:", root.Children[1])
		return
	}
}

func TestLexKeywordsTypesAndBools(t *testing.T) {
	root, err := Lex("true false fun and or not str num bool any nil other")
	if err != nil {
		t.Error("Unexpected error:", err)
		return
	}

	want := []struct {
		kind    Kind
		content string
	}{
		{BoolLiteral, "true"},
		{BoolLiteral, "false"},
		{Keyword, "fun"},
		{Keyword, "and"},
		{Keyword, "or"},
		{Keyword, "not"},
		{TypeKind, "str"},
		{TypeKind, "num"},
		{TypeKind, "bool"},
		{TypeKind, "any"},
		{TypeKind, "nil"},
		{Identifier, "other"},
	}
	for i, w := range want {
		got := root.Children[i]
		if got.Kind != w.kind || got.Content != w.content {
			t.Error("Unexpected token at", i, ":", got)
			return
		}
	}
}

func TestLexTabWidthExpansion(t *testing.T) {
	src := "fun f:\n\ta = 1\n"

	rootDefault, err := LexTabWidth(src, 4)
	if err != nil {
		t.Error("Unexpected error:", err)
		return
	}
	rootWide, err := LexTabWidth(src, 8)
	if err != nil {
		t.Error("Unexpected error:", err)
		return
	}

	if ok, msg := rootDefault.Equals(rootWide, true); !ok {
		t.Error("Tab expansion should not change token shape:", msg)
	}
}

func TestLexBlankLinesIgnored(t *testing.T) {
	src := "a = 1\n\n\nb = 2\n"

	root, err := Lex(src)
	if err != nil {
		t.Error("Unexpected error:", err)
		return
	}
	// a = 1 EOL b = 2 EOL -> 8 tokens, blank lines contribute nothing
	if len(root.Children) != 8 {
		t.Error("Unexpected child count:", len(root.Children))
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Col: 7}
	if p.String() != "line 3 col 7" {
		t.Error("Unexpected position string:", p.String())
	}
}
