// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package vmup

import (
	"strings"

	"github.com/google/uuid"
)

// All network resources are named after the VM so a run's resources can be
// recognised at a glance in the portal.
const (
	suffixVirtualNetwork = "-vnet"
	suffixSubnet         = "-subnet"
	suffixSecurityGroup  = "-nsg"
	suffixPublicIP       = "-ip"
	suffixInterface      = "-nic"
	suffixResourceGroup  = "-rg"
	suffixOSDisk         = "-osdisk"
)

// IPConfigName is the name of the single NIC IP configuration.
const IPConfigName = "ipconfig1"

// VirtualNetworkName returns the derived virtual network name.
func (s *Spec) VirtualNetworkName() string { return s.VMName + suffixVirtualNetwork }

// SubnetName returns the derived subnet name.
func (s *Spec) SubnetName() string { return s.VMName + suffixSubnet }

// SecurityGroupName returns the derived network security group name.
func (s *Spec) SecurityGroupName() string { return s.VMName + suffixSecurityGroup }

// PublicIPName returns the derived public IP address name.
func (s *Spec) PublicIPName() string { return s.VMName + suffixPublicIP }

// InterfaceName returns the derived network interface name.
func (s *Spec) InterfaceName() string { return s.VMName + suffixInterface }

// OSDiskName returns the derived OS disk name.
func (s *Spec) OSDiskName() string { return s.VMName + suffixOSDisk }

// DefaultResourceGroupName returns the resource group name derived from the
// VM name, used when the operator accepts the prompt default.
func DefaultResourceGroupName(vmName string) string { return vmName + suffixResourceGroup }

// DeploymentID is a deterministic identifier for the run, stamped on every
// resource as a tag. Identical inputs always map to the same ID so repeated
// runs against the same names are recognisable as the same deployment.
func (s *Spec) DeploymentID() string {
	return uuidV5(s.SubscriptionID, s.ResourceGroup, s.VMName).String()
}

func uuidV5(s ...string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(strings.Join(s, "")))
}
