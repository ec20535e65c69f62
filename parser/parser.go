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
Package parser turns a lexed token tree into statement/expression ASTs
using recursive descent with two-stack operator-precedence climbing for
binary expressions (spec §4).
*/
package parser

import (
	"github.com/krotik/slug/ast"
	"github.com/krotik/slug/cursor"
	"github.com/krotik/slug/lexer"
)

type parser struct {
	cur *cursor.Cursor
}

/*
Parse parses a full source file's root Block token (as produced by
lexer.Lex) into its top-level statement list.
*/
func Parse(root *lexer.Token) ([]ast.Statement, error) {
	if root == nil || root.Kind != lexer.Block {
		return nil, newError(ErrUnexpectedToken, "expected a root block token", lexer.Position{Line: 1, Col: 1})
	}
	return parseTokens(root.Children)
}

func parseTokens(tokens []*lexer.Token) ([]ast.Statement, error) {
	p := &parser{cur: cursor.New(tokens)}
	return p.parseProgram()
}

/*
parseProgram parses statements until at most one token remains: the
lexer ends every line with an EOL and emits no end-of-input token, so
the one token left over is the trailing EOL.
*/
func (p *parser) parseProgram() ([]ast.Statement, error) {
	var stmts []ast.Statement
	for p.cur.Remaining() > 1 {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

/*
parseStatement skips any leading EOL separators, then parses either a
named function declaration ("fun" IDENT ...) or a bare expression
statement.
*/
func (p *parser) parseStatement() (ast.Statement, error) {
	for p.cur.CurrentKind() == lexer.EOL {
		if !p.cur.Next() {
			return nil, newError(ErrUnexpectedEnd, "expected statement, found end of input", p.lastPos())
		}
	}

	if t := p.cur.Current(); t != nil && t.Kind == lexer.Keyword && t.Content == "fun" {
		if next := p.cur.Peek(1); next != nil && next.Kind == lexer.Identifier {
			return p.parseFunStatement()
		}
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	stmt := &ast.ExpressionStatement{Expr: expr}
	stmt.Pos = expr.Position()
	return stmt, nil
}

/*
parseFunStatement parses "fun" IDENT ( "(" param_list ")" )? type? ":"
(EOL block | expression).
*/
func (p *parser) parseFunStatement() (*ast.FunStatement, error) {
	pos := p.cur.Current().Pos
	p.cur.Next() // consume 'fun'

	name, err := p.cur.Expect(lexer.Identifier)
	if err != nil {
		return nil, wrapCursorError(err, pos)
	}

	paramNames, paramTypes, returnType, body, err := p.parseFunRest()
	if err != nil {
		return nil, err
	}

	stmt := &ast.FunStatement{
		Name:       name,
		ParamNames: paramNames,
		ParamTypes: paramTypes,
		ReturnType: returnType,
		Body:       body,
	}
	stmt.Pos = pos
	return stmt, nil
}

/*
parseAnonFun parses "fun" ( "(" param_list ")" )? type? ":" (EOL block |
expression), the same tail grammar as a named function minus the name.
*/
func (p *parser) parseAnonFun() (ast.Expression, error) {
	pos := p.cur.Current().Pos
	p.cur.Next() // consume 'fun'

	paramNames, paramTypes, returnType, body, err := p.parseFunRest()
	if err != nil {
		return nil, err
	}

	fn := &ast.Fun{
		ParamNames: paramNames,
		ParamTypes: paramTypes,
		ReturnType: returnType,
		Body:       body,
	}
	fn.Pos = pos
	return fn, nil
}

/*
parseFunRest parses the shared tail of both a named and an anonymous
function, starting right after the "fun" keyword (and, for a named
function, its name) has been consumed.
*/
func (p *parser) parseFunRest() (paramNames []string, paramTypes []ast.Type, returnType *ast.Type, body []ast.Statement, err error) {
	paramNames, paramTypes, err = p.parseParamList()
	if err != nil {
		return nil, nil, nil, nil, err
	}

	returnType, err = p.parseOptionalType()
	if err != nil {
		return nil, nil, nil, nil, err
	}

	if err = p.cur.ExpectContent(":"); err != nil {
		return nil, nil, nil, nil, wrapCursorError(err, p.lastPos())
	}

	body, err = p.parseFunBody()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return paramNames, paramTypes, returnType, body, nil
}

/*
parseParamList parses an optional "(" (IDENT type? ("," IDENT type?)*)?
")". A function with no parens declares zero parameters.
*/
func (p *parser) parseParamList() ([]string, []ast.Type, error) {
	if p.cur.CurrentContent() != "(" {
		return nil, nil, nil
	}
	p.cur.Next() // consume '('

	var names []string
	var types []ast.Type
	for p.cur.CurrentContent() != ")" {
		if p.cur.Current() == nil {
			return nil, nil, newError(ErrUnexpectedEnd, "unterminated parameter list", p.lastPos())
		}
		name, err := p.cur.Expect(lexer.Identifier)
		if err != nil {
			return nil, nil, wrapCursorError(err, p.lastPos())
		}
		typ := ast.AnyType
		if t := p.cur.Current(); t != nil && t.Kind == lexer.TypeKind {
			typ, err = p.parseType()
			if err != nil {
				return nil, nil, err
			}
		}
		names = append(names, name)
		types = append(types, typ)
		if p.cur.CurrentContent() == "," {
			p.cur.Next()
		}
	}
	p.cur.Next() // consume ')'
	return names, types, nil
}

/*
parseFunBody parses "EOL block | expression": a block of statements on
following indented lines, or a single inline expression wrapped as its
own one-statement body.
*/
func (p *parser) parseFunBody() ([]ast.Statement, error) {
	if p.cur.CurrentKind() == lexer.EOL {
		p.cur.Next()
		block := p.cur.Current()
		if block == nil || block.Kind != lexer.Block {
			return nil, newError(ErrUnexpectedToken, "expected an indented function body", p.lastPos())
		}
		p.cur.Next()
		return parseTokens(block.Children)
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	stmt := &ast.ExpressionStatement{Expr: expr}
	stmt.Pos = expr.Position()
	return []ast.Statement{stmt}, nil
}
