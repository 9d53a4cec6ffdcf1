// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package userdata

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchLocalFile(t *testing.T) {
	t.Parallel()
	content := []byte("#cloud-config\npackages:\n  - htop\n")
	src := filepath.Join(t.TempDir(), "cloud-init.yaml")
	require.NoError(t, os.WriteFile(src, content, 0o644))

	got, err := Fetch(context.Background(), src)
	require.NoError(t, err)
	// Verbatim passthrough, byte for byte.
	assert.Equal(t, content, got)
}

func TestFetchMissingSource(t *testing.T) {
	t.Parallel()
	_, err := Fetch(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
