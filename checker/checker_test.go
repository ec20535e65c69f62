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
	"testing"

	"github.com/krotik/slug/lexer"
	"github.com/krotik/slug/parser"
)

func check(t *testing.T, src string) error {
	t.Helper()
	root, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	stmts, err := parser.Parse(root)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return New().CheckProgram(stmts)
}

func TestCheckValidProgram(t *testing.T) {
	if err := check(t, "x num = 5\ny = x + 1\n\n"); err != nil {
		t.Error("Unexpected error:", err)
	}
}

func TestCheckUnknownIdentifier(t *testing.T) {
	err := check(t, "y = x\n\n")
	if err == nil || !errors.Is(err, ErrUnknownIdentifier) {
		t.Error("Expected ErrUnknownIdentifier, got", err)
	}
}

func TestCheckRedeclared(t *testing.T) {
	err := check(t, "x num = 1\nx num = 2\n\n")
	if err == nil || !errors.Is(err, ErrRedeclared) {
		t.Error("Expected ErrRedeclared, got", err)
	}
}

func TestCheckTypeMutation(t *testing.T) {
	err := check(t, "x num = 1\nx = \"str\"\n\n")
	if err == nil || !errors.Is(err, ErrTypeMutation) {
		t.Error("Expected ErrTypeMutation, got", err)
	}
}

func TestCheckUntypedReassignmentSameTypeOk(t *testing.T) {
	if err := check(t, "x num = 1\nx = 2\n\n"); err != nil {
		t.Error("Unexpected error:", err)
	}
}

func TestCheckOperatorTypeError(t *testing.T) {
	err := check(t, "y = 1 + \"a\"\n\n")
	if err == nil || !errors.Is(err, ErrOperatorTypeError) {
		t.Error("Expected ErrOperatorTypeError, got", err)
	}
}

func TestCheckStringConcatenation(t *testing.T) {
	if err := check(t, "y = \"a\" + \"b\"\n\n"); err != nil {
		t.Error("Unexpected error:", err)
	}
}

func TestCheckNotIndexable(t *testing.T) {
	err := check(t, "x num = 1\ny = x.a\n\n")
	if err == nil || !errors.Is(err, ErrNotIndexable) {
		t.Error("Expected ErrNotIndexable, got", err)
	}
}

func TestCheckCallNonFun(t *testing.T) {
	err := check(t, "x num = 1\ny = x 5\n\n")
	if err == nil || !errors.Is(err, ErrCallNonFun) {
		t.Error("Expected ErrCallNonFun, got", err)
	}
}

func TestCheckArityMismatch(t *testing.T) {
	err := check(t, "fun add(a num, b num) num:\n    a + b\n\nadd 1\n\n")
	if err == nil || !errors.Is(err, ErrArityMismatch) {
		t.Error("Expected ErrArityMismatch, got", err)
	}
}

func TestCheckArgumentTypeMismatch(t *testing.T) {
	err := check(t, "fun add(a num, b num) num:\n    a + b\n\nadd 1 \"x\"\n\n")
	if err == nil || !errors.Is(err, ErrTypeMismatch) {
		t.Error("Expected ErrTypeMismatch, got", err)
	}
}

func TestCheckRecursiveFunction(t *testing.T) {
	src := "fun fact(n num) num:\n    fact n\n\n"
	if err := check(t, src); err != nil {
		t.Error("Unexpected error:", err)
	}
}

func TestCheckReturnTypeMismatch(t *testing.T) {
	err := check(t, "fun f num:\n    \"str\"\n\n")
	if err == nil || !errors.Is(err, ErrReturnTypeMismatch) {
		t.Error("Expected ErrReturnTypeMismatch, got", err)
	}
}

func TestCheckReturnTypeMismatchOnNonFinalStatement(t *testing.T) {
	// The first statement already violates the declared return type, so
	// this must fail there rather than only looking at the trailing "10".
	err := check(t, "fun f() num:\n    s = \"hello\"\n    10\n\n")
	if err == nil || !errors.Is(err, ErrReturnTypeMismatch) {
		t.Error("Expected ErrReturnTypeMismatch, got", err)
	}
}

func TestCheckInferredReturnTypeFromBody(t *testing.T) {
	// f has no declared return type; its inferred Num return should let a
	// later call bind cleanly against the narrowed signature.
	src := "fun f:\n    1\n\ny = f!\ny + 1\n\n"
	if err := check(t, src); err != nil {
		t.Error("Unexpected error:", err)
	}
}

func TestCheckAnonymousFunction(t *testing.T) {
	src := "f = fun(x num) num: x + 1\ny = f 2\n\n"
	if err := check(t, src); err != nil {
		t.Error("Unexpected error:", err)
	}
}

func TestCheckDictLiteralFieldScopeIsolated(t *testing.T) {
	// "a" bound inside the dict literal must not leak to the outer scope.
	err := check(t, "d = [a = 1]\ny = a\n\n")
	if err == nil || !errors.Is(err, ErrUnknownIdentifier) {
		t.Error("Expected ErrUnknownIdentifier, got", err)
	}
}

func TestCheckAnyTypedCalleeBypassesArgumentChecking(t *testing.T) {
	// A callee of static type Any is callable with any arguments at all -
	// the checker has nothing concrete to check it against.
	src := "f any\nf 1 2\n\n"
	if err := check(t, src); err != nil {
		t.Error("Unexpected error:", err)
	}
}

func TestCheckNonVariadicArgumentCheckIsStrictNotCompatible(t *testing.T) {
	// spec §4.4.5: fixed parameters are checked with structural equality,
	// not the looser Compatible relation - a Num argument does not satisfy
	// an Any-typed parameter.
	err := check(t, "fun apply(f any, x any) any:\n    f x\n\napply 1 2\n\n")
	if err == nil || !errors.Is(err, ErrTypeMismatch) {
		t.Error("Expected ErrTypeMismatch, got", err)
	}
}
