/*
 * Slug
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package cursor

import "errors"

/*
Sentinel cursor error kinds.
*/
var (
	ErrUnexpectedKind    = errors.New("UnexpectedKind")
	ErrUnexpectedContent = errors.New("UnexpectedContent")
)
