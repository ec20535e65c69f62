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
Package lexer turns Slug source text into a tree of tokens. Indented
regions become nested Block tokens; everything else is a flat sequence
of EOL-separated tokens.
*/
package lexer

import "fmt"

/*
Kind identifies the lexical class of a Token.
*/
type Kind string

/*
Token kinds as defined by the language's closed token taxonomy.
*/
const (
	IntLiteral    Kind = "IntLiteral"
	FloatLiteral  Kind = "FloatLiteral"
	StringLiteral Kind = "StringLiteral"
	BoolLiteral   Kind = "BoolLiteral"
	Identifier    Kind = "Identifier"
	Keyword       Kind = "Keyword"
	TypeKind      Kind = "Type"
	Symbol        Kind = "Symbol"
	Operator      Kind = "Operator"
	EOL           Kind = "EOL"
	Block         Kind = "Block"
)

/*
Keywords is the closed keyword set. true/false are reserved words too but
are lexed with the more specific BoolLiteral kind (see classifyWord).
*/
var Keywords = []string{"fun", "true", "false", "and", "or", "not"}

/*
Types is the closed type-name set.
*/
var Types = []string{"str", "num", "bool", "any", "nil"}

/*
Operators is the longest-match-first operator table.
*/
var Operators = []string{"==", "!=", "<=", ">=", "<", ">", "+", "-", "*", "/", "%", "^"}

/*
Symbols is the longest-match-first symbol table.
*/
var Symbols = []string{"..", ":", ",", "!", "=", "(", ")", "[", "]", "."}

/*
Position is a 1-based (line, column) source location.
*/
type Position struct {
	Line int
	Col  int
}

/*
String renders a position as "line L col C" for use in error messages.
*/
func (p Position) String() string {
	return fmt.Sprintf("line %d col %d", p.Line, p.Col)
}

/*
Token is an immutable lexical unit. Block is the only recursive kind:
its Children hold the nested tokens of an indented region.
*/
type Token struct {
	Kind     Kind
	Content  string
	Pos      Position
	Children []*Token
}

/*
NewToken creates a leaf token.
*/
func NewToken(kind Kind, content string, pos Position) *Token {
	return &Token{Kind: kind, Content: content, Pos: pos}
}

/*
NewBlock creates a Block token wrapping the given children.
*/
func NewBlock(children []*Token, pos Position) *Token {
	return &Token{Kind: Block, Children: children, Pos: pos}
}

/*
String gives a short debug representation of a token.
*/
func (t *Token) String() string {
	if t.Kind == Block {
		return fmt.Sprintf("Block(%d children)@%s", len(t.Children), t.Pos)
	}
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Content, t.Pos)
}

/*
Equals checks structural equality of two tokens, optionally ignoring
position - used by tests that compare lexer output against fixtures.
*/
func (t *Token) Equals(other *Token, ignorePosition bool) (bool, string) {
	if t == nil || other == nil {
		if t == other {
			return true, ""
		}
		return false, "one token is nil"
	}

	if t.Kind != other.Kind {
		return false, fmt.Sprintf("kind differs: %v vs %v", t.Kind, other.Kind)
	}

	if t.Kind != Block && t.Content != other.Content {
		return false, fmt.Sprintf("content differs: %q vs %q", t.Content, other.Content)
	}

	if !ignorePosition && t.Pos != other.Pos {
		return false, fmt.Sprintf("position differs: %v vs %v", t.Pos, other.Pos)
	}

	if len(t.Children) != len(other.Children) {
		return false, fmt.Sprintf("child count differs: %d vs %d", len(t.Children), len(other.Children))
	}

	for i, c := range t.Children {
		if ok, msg := c.Equals(other.Children[i], ignorePosition); !ok {
			return false, fmt.Sprintf("child %d: %s", i, msg)
		}
	}

	return true, ""
}
