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

func TestLookupOperatorLevels(t *testing.T) {
	cases := map[string]int{
		"^":   0,
		"*":   1,
		"/":   1,
		"%":   1,
		"+":   2,
		"-":   2,
		"==":  3,
		"!=":  3,
		"<":   4,
		">":   4,
		"<=":  4,
		">=":  4,
		"and": 4,
		"or":  4,
	}
	for content, level := range cases {
		info, ok := LookupOperator(content)
		if !ok {
			t.Error("Expected operator", content, "to be known")
			continue
		}
		if info.Level != level {
			t.Error("Unexpected level for", content, ":", info.Level)
		}
	}
}

func TestLookupOperatorUnknown(t *testing.T) {
	if _, ok := LookupOperator("nope"); ok {
		t.Error("Expected unknown operator lookup to fail")
	}
}
