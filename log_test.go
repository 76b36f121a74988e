// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package textindex

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	defer SetLogger(zerolog.New(io.Discard))

	c := FromText([]byte("abracadabra$"))
	assert.Contains(t, buf.String(), "csa built")

	buf.Reset()
	path := filepath.Join(t.TempDir(), "csa")
	assert.NoError(t, Store(c, path))
	assert.Contains(t, buf.String(), "structure stored")

	buf.Reset()
	assert.NoError(t, Load(new(CSA), path))
	assert.Contains(t, buf.String(), "structure loaded")
}
