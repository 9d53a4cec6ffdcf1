// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package resourceid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResourceGroupID(t *testing.T) {
	t.Parallel()
	sub, rg, err := Parse("/subscriptions/00000000-0000-0000-0000-000000000001/resourceGroups/demo-rg")
	require.NoError(t, err)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", sub)
	assert.Equal(t, "demo-rg", rg)
}

func TestParseNestedResourceID(t *testing.T) {
	t.Parallel()
	sub, rg, err := Parse("/subscriptions/00000000-0000-0000-0000-000000000001/resourceGroups/demo-rg/providers/Microsoft.Compute/virtualMachines/demo")
	require.NoError(t, err)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", sub)
	assert.Equal(t, "demo-rg", rg)
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()
	_, _, err := Parse("not-a-resource-id")
	assert.Error(t, err)
}
