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
Package ast defines the abstract syntax tree the parser produces and the
closed type lattice the checker reasons about.
*/
package ast

import (
	"fmt"
	"strings"
)

/*
Kind identifies a member of the closed type lattice.
*/
type Kind int

/*
The closed set of type kinds: Num | Str | Bool | Nil | Any | Undefined |
Array | Fun | Many.
*/
const (
	Num Kind = iota
	Str
	Bool
	Nil
	Any
	Undefined
	Array
	Fun
	Many
)

/*
Type is a value from the closed type lattice. Elem is populated for
Array and Many; Signature is populated for Fun, with index 0 holding the
return type and indices 1.. holding parameter types.
*/
type Type struct {
	Kind      Kind
	Elem      *Type
	Signature []Type
}

/*
Convenience constructors for the scalar members of the lattice.
*/
var (
	NumType       = Type{Kind: Num}
	StrType       = Type{Kind: Str}
	BoolType      = Type{Kind: Bool}
	NilType       = Type{Kind: Nil}
	AnyType       = Type{Kind: Any}
	UndefinedType = Type{Kind: Undefined}
)

/*
ArrayOf builds Array(of: elem).
*/
func ArrayOf(elem Type) Type {
	e := elem
	return Type{Kind: Array, Elem: &e}
}

/*
ManyOf builds Many(of: elem), the variadic tail-element marker.
*/
func ManyOf(elem Type) Type {
	e := elem
	return Type{Kind: Many, Elem: &e}
}

/*
FunOf builds Fun(signature: [returnType, paramTypes...]).
*/
func FunOf(signature []Type) Type {
	return Type{Kind: Fun, Signature: signature}
}

/*
TypeFromName maps a lexed type keyword ("str", "num", ...) to its Type.
*/
func TypeFromName(name string) (Type, bool) {
	switch name {
	case "str":
		return StrType, true
	case "num":
		return NumType, true
	case "bool":
		return BoolType, true
	case "any":
		return AnyType, true
	case "nil":
		return NilType, true
	}
	return Type{}, false
}

/*
Equal is strict structural equality - used where the spec requires exact
match rather than Compatible's gradual-typing leniency (non-variadic
call-argument checking, §4.4.5).
*/
func Equal(a, b Type) bool {
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case Array, Many:
		if a.Elem == nil || b.Elem == nil {
			return a.Elem == b.Elem
		}
		return Equal(*a.Elem, *b.Elem)
	case Fun:
		if len(a.Signature) != len(b.Signature) {
			return false
		}
		for i := range a.Signature {
			if !Equal(a.Signature[i], b.Signature[i]) {
				return false
			}
		}
		return true
	}

	return true
}

/*
Compatible implements the assignment/argument compatibility relation
from spec §3.3: Any is universally compatible; Array(x) accepts Array(y)
if y is Nil (the empty-literal case) or y is itself compatible with x;
everything else falls back to structural equality.
*/
func Compatible(a, b Type) bool {
	if a.Kind == Any || b.Kind == Any {
		return true
	}

	if a.Kind == Array && b.Kind == Array {
		if b.Elem != nil && b.Elem.Kind == Nil {
			return true
		}
		if a.Elem == nil || b.Elem == nil {
			return a.Elem == b.Elem
		}
		return Compatible(*a.Elem, *b.Elem)
	}

	return Equal(a, b)
}

/*
String renders a type the way diagnostics quote it, e.g. "Num",
"Array(Str)", "Fun([Num, Num])".
*/
func (t Type) String() string {
	switch t.Kind {
	case Num:
		return "Num"
	case Str:
		return "Str"
	case Bool:
		return "Bool"
	case Nil:
		return "Nil"
	case Any:
		return "Any"
	case Undefined:
		return "Undefined"
	case Array:
		if t.Elem == nil {
			return "Array(?)"
		}
		return fmt.Sprintf("Array(%s)", t.Elem.String())
	case Many:
		if t.Elem == nil {
			return "Many(?)"
		}
		return fmt.Sprintf("Many(%s)", t.Elem.String())
	case Fun:
		parts := make([]string, len(t.Signature))
		for i, s := range t.Signature {
			parts[i] = s.String()
		}
		return fmt.Sprintf("Fun([%s])", strings.Join(parts, ", "))
	}
	return "?"
}
