// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package vmup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivedNames(t *testing.T) {
	t.Parallel()
	s := validSpec()
	assert.Equal(t, "demo-vnet", s.VirtualNetworkName())
	assert.Equal(t, "demo-subnet", s.SubnetName())
	assert.Equal(t, "demo-nsg", s.SecurityGroupName())
	assert.Equal(t, "demo-ip", s.PublicIPName())
	assert.Equal(t, "demo-nic", s.InterfaceName())
	assert.Equal(t, "demo-osdisk", s.OSDiskName())
	assert.Equal(t, "demo-rg", DefaultResourceGroupName("demo"))
}

func TestDeploymentIDStable(t *testing.T) {
	t.Parallel()
	a := validSpec()
	b := validSpec()
	if a.DeploymentID() != b.DeploymentID() {
		t.Errorf("expected identical specs to share a deployment ID, got %s and %s", a.DeploymentID(), b.DeploymentID())
	}
	b.VMName = "other"
	if a.DeploymentID() == b.DeploymentID() {
		t.Error("expected different vm names to produce different deployment IDs")
	}
}
