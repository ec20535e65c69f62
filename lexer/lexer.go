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

import (
	"fmt"
	"strings"

	"github.com/krotik/common/stringutil"
)

/*
DefaultTabWidth is the indent width a tab character expands to when no
explicit width is given.
*/
const DefaultTabWidth = 4

/*
Lex tokenizes source using the default tab width and returns the root
Block token whose children are the top-level region's tokens.
*/
func Lex(source string) (*Token, error) {
	return LexTabWidth(source, DefaultTabWidth)
}

/*
LexTabWidth tokenizes source, expanding tab characters in leading
whitespace to tabWidth spaces for the purpose of measuring indentation.
*/
func LexTabWidth(source string, tabWidth int) (*Token, error) {
	lines := splitLines(source, tabWidth)

	children, _, err := lexRegion(lines, 0, 0)
	if err != nil {
		return nil, err
	}

	return NewBlock(children, Position{1, 1}), nil
}

// Indentation handling
// ====================

type line struct {
	no           int
	text         string
	indent       int
	contentStart int
	blank        bool
}

/*
splitLines breaks source into physical lines and measures each non-blank
line's indentation, expanding tabs to tabWidth spaces.
*/
func splitLines(source string, tabWidth int) []line {
	raw := strings.Split(source, "\n")
	lines := make([]line, 0, len(raw))

	for i, text := range raw {
		text = strings.TrimRight(text, "\r")

		l := line{no: i + 1, text: text}

		indent := 0
		contentStart := 0
	scanIndent:
		for contentStart < len(text) {
			switch text[contentStart] {
			case ' ':
				indent++
			case '\t':
				indent += tabWidth
			default:
				break scanIndent
			}
			contentStart++
		}

		l.indent = indent
		l.contentStart = contentStart
		l.blank = contentStart >= len(text)

		lines = append(lines, l)
	}

	return lines
}

/*
lexRegion consumes lines starting at index start which belong to the
region indented at exactly level, recursing into deeper indents as
nested Block tokens. It returns the flat token sequence for this region
and the index of the first line not consumed.
*/
func lexRegion(lines []line, start int, level int) ([]*Token, int, error) {
	var tokens []*Token

	idx := start
	for idx < len(lines) {
		ln := lines[idx]

		if ln.blank {
			idx++
			continue
		}

		if ln.indent < level {
			break
		}

		if ln.indent > level {
			return nil, idx, newError(ErrBadIndent,
				fmt.Sprintf("unexpected indent (got %d, expected %d)", ln.indent, level),
				Position{ln.no, ln.contentStart + 1})
		}

		lineTokens, err := tokenizeLine(ln)
		if err != nil {
			return nil, idx, err
		}

		tokens = append(tokens, lineTokens...)
		tokens = append(tokens, NewToken(EOL, "", Position{ln.no, len(ln.text) + 1}))
		idx++

		j := idx
		for j < len(lines) && lines[j].blank {
			j++
		}

		if j < len(lines) && lines[j].indent > level {
			children, next, err := lexRegion(lines, j, lines[j].indent)
			if err != nil {
				return nil, next, err
			}

			tokens = append(tokens, NewBlock(children, Position{lines[j].no, lines[j].contentStart + 1}))
			idx = next
		}
	}

	return tokens, idx, nil
}

// Line tokenization
// =================

func tokenizeLine(ln line) ([]*Token, error) {
	var tokens []*Token

	text := ln.text
	pos := ln.contentStart

	for pos < len(text) {
		for pos < len(text) && (text[pos] == ' ' || text[pos] == '\t') {
			pos++
		}
		if pos >= len(text) {
			break
		}

		start := pos
		col := start + 1
		c := text[pos]

		switch {
		case c == '"':
			content, newPos, err := scanString(text, pos)
			if err != nil {
				return nil, newError(ErrUnterminatedString, err.Error(), Position{ln.no, col})
			}
			tokens = append(tokens, NewToken(StringLiteral, content, Position{ln.no, col}))
			pos = newPos

		case isDigit(c):
			content, kind, newPos := scanNumber(text, pos)
			tokens = append(tokens, NewToken(kind, content, Position{ln.no, col}))
			pos = newPos

		case isIdentStart(c):
			content, newPos := scanWord(text, pos)
			tokens = append(tokens, NewToken(classifyWord(content), content, Position{ln.no, col}))
			pos = newPos

		default:
			if op, newPos, ok := matchLongest(text, pos, Operators); ok {
				tokens = append(tokens, NewToken(Operator, op, Position{ln.no, col}))
				pos = newPos
			} else if sym, newPos, ok := matchLongest(text, pos, Symbols); ok {
				tokens = append(tokens, NewToken(Symbol, sym, Position{ln.no, col}))
				pos = newPos
			} else {
				return nil, newError(ErrInvalidCharacter,
					fmt.Sprintf("unexpected character %q", text[pos]),
					Position{ln.no, col})
			}
		}
	}

	return tokens, nil
}

func scanString(text string, pos int) (string, int, error) {
	start := pos + 1
	i := start
	for i < len(text) && text[i] != '"' {
		i++
	}
	if i >= len(text) {
		return "", i, fmt.Errorf("unterminated string literal")
	}
	return text[start:i], i + 1, nil
}

func scanNumber(text string, pos int) (string, Kind, int) {
	start := pos
	for pos < len(text) && isDigit(text[pos]) {
		pos++
	}

	kind := IntLiteral
	if pos < len(text) && text[pos] == '.' && pos+1 < len(text) && isDigit(text[pos+1]) {
		kind = FloatLiteral
		pos++
		for pos < len(text) && isDigit(text[pos]) {
			pos++
		}
	}

	return text[start:pos], kind, pos
}

func scanWord(text string, pos int) (string, int) {
	start := pos
	for pos < len(text) && isIdentContinue(text[pos]) {
		pos++
	}
	return text[start:pos], pos
}

func matchLongest(text string, pos int, table []string) (string, int, bool) {
	for _, candidate := range table {
		if strings.HasPrefix(text[pos:], candidate) {
			return candidate, pos + len(candidate), true
		}
	}
	return "", pos, false
}

func classifyWord(word string) Kind {
	if word == "true" || word == "false" {
		return BoolLiteral
	}
	if stringutil.IndexOf(word, Keywords) != -1 {
		return Keyword
	}
	if stringutil.IndexOf(word, Types) != -1 {
		return TypeKind
	}
	return Identifier
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentContinue(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
