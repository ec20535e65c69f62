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
Package config holds the knobs an embedding host can set. The lexer,
emitter and checker never read this package; of its options only
TabWidth is read, by the root slug package, which passes it to the
lexer.
*/
package config

import (
	"fmt"
	"strconv"

	"github.com/krotik/common/errorutil"
)

// Global variables
// ================

/*
ProductVersion is the current version of Slug.
*/
const ProductVersion = "1.0.0"

/*
Known configuration options for Slug.
*/
const (
	// TabWidth is the number of columns a tab character expands to
	// while the lexer measures a line's indentation (spec §2.1).
	TabWidth = "TabWidth"

	// IndentationLevel is the number of spaces per nesting level of
	// generated Lua. No package reads this option; the emitter indents
	// by its own emitter.IndentationLevel constant.
	IndentationLevel = "IndentationLevel"

	// LogLevel is exposed for an embedding host's own logger; the
	// core packages never log on their own (see DESIGN.md's ambient
	// stack notes).
	LogLevel = "LogLevel"
)

/*
DefaultConfig is the default configuration.
*/
var DefaultConfig = map[string]interface{}{
	TabWidth:         4,
	IndentationLevel: 4,
	LogLevel:         "info",
}

/*
Config is the actual config which is used
*/
var Config map[string]interface{}

/*
Initialise the config
*/
func init() {
	data := make(map[string]interface{})
	for k, v := range DefaultConfig {
		data[k] = v
	}

	Config = data
}

// Helper functions
// ================

/*
Str reads a config value as a string value.
*/
func Str(key string) string {
	return fmt.Sprint(Config[key])
}

/*
Int reads a config value as an int value.
*/
func Int(key string) int {
	ret, err := strconv.ParseInt(fmt.Sprint(Config[key]), 10, 64)

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return int(ret)
}

/*
Bool reads a config value as a boolean value.
*/
func Bool(key string) bool {
	ret, err := strconv.ParseBool(fmt.Sprint(Config[key]))

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return ret
}
