// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package textindex

import (
	"io"

	"github.com/rs/zerolog"
)

// logger receives construction and persistence events. It discards
// everything until a caller installs its own logger via SetLogger.
var logger = zerolog.New(io.Discard)

// SetLogger installs l as the package logger.
func SetLogger(l zerolog.Logger) {
	logger = l
}
