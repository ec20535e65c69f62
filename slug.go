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
Package slug wires the lexer, parser, checker and emitter into the
single Compile entry point an embedding host uses to turn source text
into Lua.
*/
package slug

import (
	"github.com/krotik/slug/ast"
	"github.com/krotik/slug/checker"
	"github.com/krotik/slug/config"
	"github.com/krotik/slug/emitter"
	"github.com/krotik/slug/lexer"
	"github.com/krotik/slug/parser"
)

/*
Compile lexes, parses, type-checks and emits source, using config.Config
for the lexer's tab width. It returns the first error from whichever
stage fails.
*/
func Compile(source string) (string, error) {
	return CompileWithConfig(source, config.Config)
}

/*
CompileWithConfig is Compile with an explicit configuration map, letting
an embedding host override config.DefaultConfig's TabWidth without
mutating the package-level config.Config.
*/
func CompileWithConfig(source string, cfg map[string]interface{}) (string, error) {
	stmts, err := Parse(source, cfg)
	if err != nil {
		return "", err
	}

	if err := checker.New().CheckProgram(stmts); err != nil {
		return "", err
	}

	return emitter.Emit(stmts)
}

/*
Parse lexes and parses source into its statement tree without checking
or emitting it - exposed for callers that want to run their own
analysis passes over the AST.
*/
func Parse(source string, cfg map[string]interface{}) ([]ast.Statement, error) {
	tabWidth := 4
	if v, ok := cfg[config.TabWidth]; ok {
		if n, ok := v.(int); ok {
			tabWidth = n
		}
	}

	root, err := lexer.LexTabWidth(source, tabWidth)
	if err != nil {
		return nil, err
	}
	return parser.Parse(root)
}
