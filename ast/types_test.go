/*
 * Slug
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package ast

import "testing"

func TestTypeFromName(t *testing.T) {
	cases := map[string]Type{
		"str":  StrType,
		"num":  NumType,
		"bool": BoolType,
		"any":  AnyType,
		"nil":  NilType,
	}
	for name, want := range cases {
		got, ok := TypeFromName(name)
		if !ok || !Equal(got, want) {
			t.Error("Unexpected type for", name, ":", got, ok)
			return
		}
	}
	if _, ok := TypeFromName("bogus"); ok {
		t.Error("Expected unknown type name to fail")
	}
}

func TestEqualScalars(t *testing.T) {
	if !Equal(NumType, NumType) {
		t.Error("Expected Num to equal Num")
	}
	if Equal(NumType, StrType) {
		t.Error("Expected Num not to equal Str")
	}
}

func TestEqualArray(t *testing.T) {
	a := ArrayOf(NumType)
	b := ArrayOf(NumType)
	c := ArrayOf(StrType)

	if !Equal(a, b) {
		t.Error("Expected Array(Num) to equal Array(Num)")
	}
	if Equal(a, c) {
		t.Error("Expected Array(Num) not to equal Array(Str)")
	}
}

func TestEqualFun(t *testing.T) {
	f1 := FunOf([]Type{NumType, StrType})
	f2 := FunOf([]Type{NumType, StrType})
	f3 := FunOf([]Type{NumType, BoolType})

	if !Equal(f1, f2) {
		t.Error("Expected matching Fun signatures to be equal")
	}
	if Equal(f1, f3) {
		t.Error("Expected differing Fun signatures not to be equal")
	}
}

func TestCompatibleAny(t *testing.T) {
	if !Compatible(AnyType, StrType) {
		t.Error("Expected Any to be compatible with Str")
	}
	if !Compatible(NumType, AnyType) {
		t.Error("Expected Num to accept Any")
	}
}

func TestCompatibleArrayOfNil(t *testing.T) {
	empty := ArrayOf(NilType)
	strs := ArrayOf(StrType)

	if !Compatible(strs, empty) {
		t.Error("Expected Array(Str) to accept an empty-literal Array(Nil)")
	}
	if !Compatible(ArrayOf(NumType), empty) {
		t.Error("Expected Array(Num) to accept an empty-literal Array(Nil)")
	}
}

func TestCompatibleArrayElementwise(t *testing.T) {
	if !Compatible(ArrayOf(NumType), ArrayOf(NumType)) {
		t.Error("Expected matching arrays to be compatible")
	}
	if Compatible(ArrayOf(NumType), ArrayOf(StrType)) {
		t.Error("Expected mismatched arrays not to be compatible")
	}
}

func TestCompatibleFallsBackToEqual(t *testing.T) {
	if !Compatible(BoolType, BoolType) {
		t.Error("Expected Bool to be compatible with itself")
	}
	if Compatible(BoolType, NumType) {
		t.Error("Expected Bool not to be compatible with Num")
	}
}

func TestTypeString(t *testing.T) {
	cases := []struct {
		typ  Type
		want string
	}{
		{NumType, "Num"},
		{StrType, "Str"},
		{BoolType, "Bool"},
		{NilType, "Nil"},
		{AnyType, "Any"},
		{UndefinedType, "Undefined"},
		{ArrayOf(StrType), "Array(Str)"},
		{ManyOf(NumType), "Many(Num)"},
		{FunOf([]Type{NumType, NumType, NumType}), "Fun([Num, Num, Num])"},
	}
	for _, c := range cases {
		if got := c.typ.String(); got != c.want {
			t.Error("Unexpected String():", got, "want", c.want)
		}
	}
}
