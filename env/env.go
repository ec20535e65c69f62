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
Package env models the two parallel, tree-shaped tables the checker
maintains while walking the AST: a symbol table mapping names to
(slot, parent-depth) indices, and a type table of matching shape holding
the type recorded at each slot. Both form a chain of frames rooted at a
global frame; a child frame is created when entering a function body or
dictionary literal and is discarded when that subtree's visit completes.
*/
package env

import (
	"fmt"
	"strings"

	"github.com/krotik/common/sortutil"
	"github.com/krotik/slug/ast"
)

/*
SymTab is one frame of the symbol table chain.
*/
type SymTab struct {
	parent *SymTab
	slots  map[string]int
}

/*
NewSymTab creates the global (root) symbol table frame.
*/
func NewSymTab() *SymTab {
	return &SymTab{slots: make(map[string]int)}
}

/*
NewChild creates a child frame, pre-populated with initialNames bound to
consecutive slots starting at 0. This is used when entering a function
body (parameters) or a dictionary literal (no initial names).
*/
func (s *SymTab) NewChild(initialNames []string) *SymTab {
	child := NewSymTab()
	child.parent = s
	for _, name := range initialNames {
		child.AddName(name)
	}
	return child
}

/*
AddName binds name to a slot in this frame, reusing the existing slot if
name is already bound here. It returns the slot index.
*/
func (s *SymTab) AddName(name string) int {
	if slot, ok := s.slots[name]; ok {
		return slot
	}
	slot := len(s.slots)
	s.slots[name] = slot
	return slot
}

/*
GetName looks up name in this frame and, failing that, walks outward
through parents. It returns the slot, the parent-depth at which it was
found (0 meaning this frame), and whether it was found at all.
*/
func (s *SymTab) GetName(name string) (slot int, depth int, ok bool) {
	for frame := s; frame != nil; frame = frame.parent {
		if slot, exists := frame.slots[name]; exists {
			return slot, depth, true
		}
		depth++
	}
	return 0, 0, false
}

/*
HasNameHere reports whether name is bound directly in this frame
(ignoring parents) - used by the checker's Redeclared check.
*/
func (s *SymTab) HasNameHere(name string) bool {
	_, ok := s.slots[name]
	return ok
}

/*
Names returns the names bound directly in this frame in a stable,
sorted order for debugging/dumping.
*/
func (s *SymTab) Names() []string {
	names := make([]string, 0, len(s.slots))
	for n := range s.slots {
		names = append(names, n)
	}
	sortutil.InterfaceStrings(names)
	return names
}

/*
String renders the frame chain top-down for debugging.
*/
func (s *SymTab) String() string {
	var b strings.Builder
	for frame, depth := s, 0; frame != nil; frame, depth = frame.parent, depth+1 {
		fmt.Fprintf(&b, "frame[%d]: %s\n", depth, strings.Join(frame.Names(), ", "))
	}
	return b.String()
}

/*
TypeTab is one frame of the type table chain, shape-matched to a SymTab
frame: TypeTab.GetType(slot, depth) and SymTab.GetName's returned
(slot, depth) are meant to be used together against the same pair of
chains.
*/
type TypeTab struct {
	parent *TypeTab
	types  []ast.Type
}

/*
NewTypeTab creates the global (root) type table frame.
*/
func NewTypeTab() *TypeTab {
	return &TypeTab{}
}

/*
NewChild creates a child frame pre-populated with initialTypes.
*/
func (t *TypeTab) NewChild(initialTypes []ast.Type) *TypeTab {
	child := &TypeTab{parent: t, types: append([]ast.Type{}, initialTypes...)}
	return child
}

/*
Size returns the number of slots currently allocated in this frame.
*/
func (t *TypeTab) Size() int {
	return len(t.types)
}

/*
Grow appends one Undefined-typed slot to this frame. Callers use this
after SymTab.AddName returns a slot index that does not yet exist here.
*/
func (t *TypeTab) Grow() {
	t.types = append(t.types, ast.UndefinedType)
}

func (t *TypeTab) frameAt(depth int) (*TypeTab, error) {
	frame := t
	for i := 0; i < depth; i++ {
		if frame == nil {
			return nil, fmt.Errorf("no frame at depth %d", depth)
		}
		frame = frame.parent
	}
	if frame == nil {
		return nil, fmt.Errorf("no frame at depth %d", depth)
	}
	return frame, nil
}

/*
SetType writes typ into the slot at the given parent-depth. The frame at
that depth must already have enough slots (see Grow).
*/
func (t *TypeTab) SetType(slot int, depth int, typ ast.Type) error {
	frame, err := t.frameAt(depth)
	if err != nil {
		return err
	}
	if slot < 0 || slot >= len(frame.types) {
		return fmt.Errorf("slot %d out of range (size %d)", slot, len(frame.types))
	}
	frame.types[slot] = typ
	return nil
}

/*
GetType reads the type recorded at (slot, depth).
*/
func (t *TypeTab) GetType(slot int, depth int) (ast.Type, error) {
	frame, err := t.frameAt(depth)
	if err != nil {
		return ast.Type{}, err
	}
	if slot < 0 || slot >= len(frame.types) {
		return ast.Type{}, fmt.Errorf("slot %d out of range (size %d)", slot, len(frame.types))
	}
	return frame.types[slot], nil
}
