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
	"strconv"

	"github.com/krotik/slug/ast"
	"github.com/krotik/slug/lexer"
)

/*
parseExpression parses one operand followed by zero or more binary
operators, reduced by the two-stack precedence-climbing algorithm of
spec §4.3.3: an incoming operator whose level is greater than or equal
to the level on top of the operator stack reduces the top first. This
is the mechanical algorithm description; DESIGN.md records a deliberate
deviation from the shape given by the spec's own prose example, which
contradicts it.
*/
func (p *parser) parseExpression() (ast.Expression, error) {
	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	return p.parseOperatorChain(left)
}

func (p *parser) parseOperatorChain(left ast.Expression) (ast.Expression, error) {
	var exprStack []ast.Expression
	var opStack []ast.OperatorInfo
	exprStack = append(exprStack, left)

	reduce := func() {
		top := opStack[len(opStack)-1]
		opStack = opStack[:len(opStack)-1]
		r := exprStack[len(exprStack)-1]
		l := exprStack[len(exprStack)-2]
		exprStack = exprStack[:len(exprStack)-2]
		op := &ast.Operation{Left: l, Op: top.Op, Right: r}
		op.Pos = l.Position()
		exprStack = append(exprStack, op)
	}

	for {
		t := p.cur.Current()
		if t == nil {
			break
		}
		info, ok := ast.LookupOperator(t.Content)
		if !ok || !isOperatorToken(t) {
			break
		}
		p.cur.Next()

		right, err := p.parseOperand()
		if err != nil {
			return nil, err
		}

		for len(opStack) > 0 && info.Level >= opStack[len(opStack)-1].Level {
			reduce()
		}
		exprStack = append(exprStack, right)
		opStack = append(opStack, info)
	}

	for len(opStack) > 0 {
		reduce()
	}
	return exprStack[0], nil
}

/*
isOperatorToken reports whether t is usable in infix operator position.
Keyword tokens only qualify for "and"/"or"; Symbol tokens only for "!"
(its binary-level-4 reading, distinct from its postfix zero-arg-call
reading consumed in parseTail).
*/
func isOperatorToken(t *lexer.Token) bool {
	switch t.Kind {
	case lexer.Operator:
		return true
	case lexer.Keyword:
		return t.Content == "and" || t.Content == "or"
	case lexer.Symbol:
		return t.Content == "!"
	}
	return false
}

/*
parseOperand parses one term and applies its tail chain (spec §4.3.2's
"IDENT tail*" shape, generalized to every term alternative).
*/
func (p *parser) parseOperand() (ast.Expression, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return p.parseTail(term)
}

func (p *parser) lastPos() lexer.Position {
	if t := p.cur.Peek(-1); t != nil {
		return t.Pos
	}
	return lexer.Position{Line: 1, Col: 1}
}

/*
parseTerm parses one bare term: a literal, an identifier, a parenthesised
expression, a dict literal, an anonymous function, or (via a preceding
EOL) a block value.
*/
func (p *parser) parseTerm() (ast.Expression, error) {
	t := p.cur.Current()
	if t == nil {
		return nil, newError(ErrUnexpectedEnd, "expected expression, found end of input", p.lastPos())
	}

	if t.Kind == lexer.EOL {
		return p.parseBlockTerm()
	}

	switch t.Kind {
	case lexer.IntLiteral, lexer.FloatLiteral:
		p.cur.Next()
		v, err := strconv.ParseFloat(t.Content, 64)
		if err != nil {
			return nil, newError(ErrUnexpectedToken, "malformed number literal "+t.Content, t.Pos)
		}
		n := &ast.NumberLiteral{Value: v}
		n.Pos = t.Pos
		return n, nil
	case lexer.StringLiteral:
		p.cur.Next()
		n := &ast.StringLiteral{Value: t.Content}
		n.Pos = t.Pos
		return n, nil
	case lexer.BoolLiteral:
		p.cur.Next()
		n := &ast.BoolLiteral{Value: t.Content == "true"}
		n.Pos = t.Pos
		return n, nil
	case lexer.Identifier:
		p.cur.Next()
		n := &ast.Identifier{Name: t.Content}
		n.Pos = t.Pos
		return n, nil
	case lexer.Keyword:
		if t.Content == "fun" {
			return p.parseAnonFun()
		}
	case lexer.Symbol:
		switch t.Content {
		case "(":
			p.cur.Next()
			inner, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if err := p.cur.ExpectContent(")"); err != nil {
				return nil, wrapCursorError(err, t.Pos)
			}
			return inner, nil
		case "[":
			return p.parseDictLiteral()
		}
	}

	return nil, newError(ErrUnexpectedToken, "unexpected token \""+t.Content+"\"", t.Pos)
}

/*
parseBlockTerm consumes a leading EOL and, if a nested Block token
follows, parses it as a statement sequence. A singleton block containing
exactly one bare ExpressionStatement is flattened to that expression
(spec §4.3.2); otherwise it becomes a BlockExpr. With no Block following,
the EOL marks the end of the available term and an EOF node is returned.
*/
func (p *parser) parseBlockTerm() (ast.Expression, error) {
	eol := p.cur.Current()
	p.cur.Next()

	block := p.cur.Current()
	if block == nil || block.Kind != lexer.Block {
		e := &ast.EOF{}
		e.Pos = eol.Pos
		return e, nil
	}
	p.cur.Next()

	stmts, err := parseTokens(block.Children)
	if err != nil {
		return nil, err
	}
	if len(stmts) == 1 {
		if es, ok := stmts[0].(*ast.ExpressionStatement); ok {
			return es.Expr, nil
		}
	}
	b := &ast.BlockExpr{Statements: stmts}
	b.Pos = block.Pos
	return b, nil
}

/*
parseDictLiteral parses "[" entry (","? EOL?)* "]". Entries are full
expressions, which naturally covers the common "name = value" shape
since a bare identifier term's tail includes the "=" assignment form.
*/
func (p *parser) parseDictLiteral() (ast.Expression, error) {
	open := p.cur.Current()
	p.cur.Next()

	var entries []ast.Expression
	for {
		for {
			t := p.cur.Current()
			if t == nil {
				return nil, newError(ErrUnexpectedEnd, "unterminated dict literal", open.Pos)
			}
			if t.Kind == lexer.EOL || (t.Kind == lexer.Symbol && t.Content == ",") {
				p.cur.Next()
				continue
			}
			break
		}
		if p.cur.CurrentContent() == "]" {
			p.cur.Next()
			break
		}
		entry, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	d := &ast.DictLiteral{Entries: entries}
	d.Pos = open.Pos
	return d, nil
}

/*
parseTail applies the tail productions in a loop: "!" (zero-arg call),
"." IDENT (member index), a run of juxtaposed argument operands (call),
"=" expression (assignment), or a type followed by an optional "="
(typed definition). The last two are terminal - nothing meaningfully
follows an assignment or a typed declaration in the same tail chain.
*/
func (p *parser) parseTail(left ast.Expression) (ast.Expression, error) {
	for {
		t := p.cur.Current()
		if t == nil {
			return left, nil
		}

		if t.Kind == lexer.Symbol && t.Content == "!" {
			p.cur.Next()
			c := &ast.Call{Callee: left}
			c.Pos = t.Pos
			left = c
			continue
		}
		if t.Kind == lexer.Symbol && t.Content == "." {
			p.cur.Next()
			name, err := p.cur.Expect(lexer.Identifier)
			if err != nil {
				return nil, wrapCursorError(err, t.Pos)
			}
			key := &ast.Identifier{Name: name}
			key.Pos = t.Pos
			idx := &ast.Index{Target: left, Key: key}
			idx.Pos = t.Pos
			left = idx
			continue
		}
		if t.Kind == lexer.Symbol && t.Content == "=" {
			target, err := requireAssignable(left, t.Pos)
			if err != nil {
				return nil, err
			}
			p.cur.Next()
			value, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			def := &ast.Definition{Target: target, Value: value}
			def.Pos = t.Pos
			return def, nil
		}
		if t.Kind == lexer.TypeKind {
			target, err := requireAssignable(left, t.Pos)
			if err != nil {
				return nil, err
			}
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			var value ast.Expression
			if p.cur.CurrentContent() == "=" {
				p.cur.Next()
				value, err = p.parseExpression()
				if err != nil {
					return nil, err
				}
			}
			def := &ast.Definition{DeclaredType: &typ, Target: target, Value: value}
			def.Pos = t.Pos
			return def, nil
		}

		if looksLikeArgStart(t) {
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			call := &ast.Call{Callee: left, Args: args}
			call.Pos = t.Pos
			left = call
			continue
		}
		return left, nil
	}
}

/*
parseCallArgs collects juxtaposed argument operands until a line end,
")" , "]", or a token that cannot start a term (spec §4.3.2). Commas
between arguments are accepted but optional.
*/
func (p *parser) parseCallArgs() ([]ast.Expression, error) {
	var args []ast.Expression
	for {
		t := p.cur.Current()
		if t == nil || t.Kind == lexer.EOL {
			break
		}
		if t.Kind == lexer.Symbol && (t.Content == ")" || t.Content == "]") {
			break
		}
		if t.Kind == lexer.Symbol && t.Content == "," {
			p.cur.Next()
			continue
		}
		if !looksLikeArgStart(t) {
			break
		}
		arg, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

/*
looksLikeArgStart reports whether t can open a new term, used to decide
whether the token following a callable expression begins a juxtaposition
call rather than ending the tail chain. "and"/"or" are deliberately
excluded even though their Kind is Keyword, since they are binary
operators, not term starts.
*/
func looksLikeArgStart(t *lexer.Token) bool {
	switch t.Kind {
	case lexer.IntLiteral, lexer.FloatLiteral, lexer.StringLiteral, lexer.BoolLiteral, lexer.Identifier:
		return true
	case lexer.Symbol:
		return t.Content == "(" || t.Content == "["
	case lexer.Keyword:
		return t.Content == "fun"
	}
	return false
}

func requireAssignable(e ast.Expression, pos lexer.Position) (ast.Expression, error) {
	switch e.(type) {
	case *ast.Identifier, *ast.Index:
		return e, nil
	}
	return nil, newError(ErrIllegalAssignmentTarget, "assignment target must be an identifier or index expression", pos)
}

/*
parseType parses "TYPE_KEYWORD '..'?", the ".." suffix marking an array
of the named element type (spec §3.2).
*/
func (p *parser) parseType() (ast.Type, error) {
	t := p.cur.Current()
	content, err := p.cur.Expect(lexer.TypeKind)
	if err != nil {
		return ast.Type{}, wrapCursorError(err, p.lastPos())
	}
	base, ok := ast.TypeFromName(content)
	if !ok {
		return ast.Type{}, newError(ErrUnexpectedToken, "unknown type \""+content+"\"", t.Pos)
	}
	if p.cur.CurrentContent() == ".." {
		p.cur.Next()
		return ast.ArrayOf(base), nil
	}
	return base, nil
}

/*
parseOptionalType parses a type if the current token is one, otherwise
returns nil without consuming anything - used for function return types.
*/
func (p *parser) parseOptionalType() (*ast.Type, error) {
	if t := p.cur.Current(); t != nil && t.Kind == lexer.TypeKind {
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &typ, nil
	}
	return nil, nil
}
