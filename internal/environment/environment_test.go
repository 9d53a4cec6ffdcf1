// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation(t *testing.T) {
	t.Setenv("VMUP_LOCATION", "")
	assert.Equal(t, "westeurope", Location())
	t.Setenv("VMUP_LOCATION", "eastus")
	assert.Equal(t, "eastus", Location())
}

func TestAdminUsername(t *testing.T) {
	t.Setenv("VMUP_ADMIN_USERNAME", "")
	assert.Equal(t, "azureuser", AdminUsername())
	t.Setenv("VMUP_ADMIN_USERNAME", "ops")
	assert.Equal(t, "ops", AdminUsername())
}

func TestResourceGroup(t *testing.T) {
	t.Setenv("VMUP_RESOURCE_GROUP", "")
	assert.Equal(t, "", ResourceGroup())
	t.Setenv("VMUP_RESOURCE_GROUP", "demo-rg")
	assert.Equal(t, "demo-rg", ResourceGroup())
}

func TestSubscriptionID(t *testing.T) {
	t.Setenv("VMUP_SUBSCRIPTION_ID", "sub-1")
	assert.Equal(t, "sub-1", SubscriptionID())
}
