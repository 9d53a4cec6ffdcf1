// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package deployment

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Azure/vmup"
	toval "github.com/Azure/vmup/to"
)

// API is the set of resource manager operations the deployer issues.
// The production implementation wraps the ARM SDK clients; tests substitute
// a recording fake to assert the call sequence and parameters.
type API interface {
	ResourceGroupExists(ctx context.Context, name string) (bool, error)
	ListImageSKUs(ctx context.Context, location, publisher, offer string) ([]string, error)
	CreateResourceGroup(ctx context.Context, name string, params armresources.ResourceGroup) (armresources.ResourceGroup, error)
	CreateVirtualNetwork(ctx context.Context, resourceGroup, name string, params armnetwork.VirtualNetwork) (armnetwork.VirtualNetwork, error)
	CreateSubnet(ctx context.Context, resourceGroup, vnetName, name string, params armnetwork.Subnet) (armnetwork.Subnet, error)
	CreateSecurityGroup(ctx context.Context, resourceGroup, name string, params armnetwork.SecurityGroup) (armnetwork.SecurityGroup, error)
	CreatePublicIP(ctx context.Context, resourceGroup, name string, params armnetwork.PublicIPAddress) (armnetwork.PublicIPAddress, error)
	CreateInterface(ctx context.Context, resourceGroup, name string, params armnetwork.Interface) (armnetwork.Interface, error)
	CreateVirtualMachine(ctx context.Context, resourceGroup, name string, params armcompute.VirtualMachine) (armcompute.VirtualMachine, error)
	DeleteResourceGroup(ctx context.Context, name string) error
}

// Result describes the provisioned machine.
type Result struct {
	DeploymentID     string
	ResourceGroupID  string
	VirtualMachineID string
	PublicIPAddress  string
	SSHCommand       string
}

// Deployer runs the provisioning sequence against an API.
type Deployer struct {
	api API
	log *zap.Logger
}

// NewDeployer creates a deployer. A nil logger is replaced with a no-op one.
func NewDeployer(api API, logger *zap.Logger) *Deployer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Deployer{api: api, log: logger}
}

// Deploy validates the spec, runs the preflight reads, then issues the fixed
// create sequence. It returns on the first error without deleting anything.
func (d *Deployer) Deploy(ctx context.Context, spec *vmup.Spec) (*Result, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("deployment.Deploy: %w", err)
	}

	imageSKU, err := d.preflight(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("deployment.Deploy: %w", err)
	}

	result := &Result{DeploymentID: spec.DeploymentID()}

	d.log.Info("creating resource group", zap.String("name", spec.ResourceGroup), zap.String("location", spec.Location))
	rg, err := d.api.CreateResourceGroup(ctx, spec.ResourceGroup, resourceGroupParams(spec))
	if err != nil {
		return nil, fmt.Errorf("deployment.Deploy: creating resource group %s: %w", spec.ResourceGroup, err)
	}
	result.ResourceGroupID = toval.ValOrZero(rg.ID)

	d.log.Info("creating virtual network", zap.String("name", spec.VirtualNetworkName()), zap.String("addressSpace", vmup.VNetAddressSpace))
	if _, err := d.api.CreateVirtualNetwork(ctx, spec.ResourceGroup, spec.VirtualNetworkName(), virtualNetworkParams(spec)); err != nil {
		return nil, fmt.Errorf("deployment.Deploy: creating virtual network %s: %w", spec.VirtualNetworkName(), err)
	}

	d.log.Info("creating subnet", zap.String("name", spec.SubnetName()), zap.String("addressPrefix", vmup.SubnetAddressPrefix))
	subnet, err := d.api.CreateSubnet(ctx, spec.ResourceGroup, spec.VirtualNetworkName(), spec.SubnetName(), subnetParams())
	if err != nil {
		return nil, fmt.Errorf("deployment.Deploy: creating subnet %s: %w", spec.SubnetName(), err)
	}

	d.log.Info("creating network security group", zap.String("name", spec.SecurityGroupName()))
	nsg, err := d.api.CreateSecurityGroup(ctx, spec.ResourceGroup, spec.SecurityGroupName(), securityGroupParams(spec))
	if err != nil {
		return nil, fmt.Errorf("deployment.Deploy: creating network security group %s: %w", spec.SecurityGroupName(), err)
	}

	d.log.Info("creating public IP address", zap.String("name", spec.PublicIPName()))
	pip, err := d.api.CreatePublicIP(ctx, spec.ResourceGroup, spec.PublicIPName(), publicIPParams(spec))
	if err != nil {
		return nil, fmt.Errorf("deployment.Deploy: creating public IP %s: %w", spec.PublicIPName(), err)
	}
	if pip.Properties != nil {
		result.PublicIPAddress = toval.ValOrZero(pip.Properties.IPAddress)
	}

	d.log.Info("creating network interface", zap.String("name", spec.InterfaceName()))
	nic, err := d.api.CreateInterface(ctx, spec.ResourceGroup, spec.InterfaceName(),
		interfaceParams(spec, toval.ValOrZero(subnet.ID), toval.ValOrZero(pip.ID), toval.ValOrZero(nsg.ID)))
	if err != nil {
		return nil, fmt.Errorf("deployment.Deploy: creating network interface %s: %w", spec.InterfaceName(), err)
	}

	d.log.Info("creating virtual machine",
		zap.String("name", spec.VMName),
		zap.String("size", vmup.VMSize),
		zap.String("image", imageURN(imageSKU)))
	vm, err := d.api.CreateVirtualMachine(ctx, spec.ResourceGroup, spec.VMName,
		virtualMachineParams(spec, toval.ValOrZero(nic.ID), imageSKU))
	if err != nil {
		return nil, fmt.Errorf("deployment.Deploy: creating virtual machine %s: %w", spec.VMName, err)
	}
	result.VirtualMachineID = toval.ValOrZero(vm.ID)
	result.SSHCommand = fmt.Sprintf("ssh %s@%s", spec.AdminUsername, result.PublicIPAddress)

	d.log.Info("virtual machine created",
		zap.String("id", result.VirtualMachineID),
		zap.String("publicIP", result.PublicIPAddress))
	return result, nil
}

// Destroy deletes the resource group and everything in it.
func (d *Deployer) Destroy(ctx context.Context, resourceGroup string) error {
	d.log.Info("deleting resource group", zap.String("name", resourceGroup))
	if err := d.api.DeleteResourceGroup(ctx, resourceGroup); err != nil {
		return fmt.Errorf("deployment.Destroy: deleting resource group %s: %w", resourceGroup, err)
	}
	return nil
}

// preflight runs the read-only checks concurrently: whether the resource
// group already exists (informational, CreateOrUpdate is idempotent) and
// which Ubuntu SKU to deploy in the chosen region. It returns the freshest
// 22.04 SKU the region offers; when the listing itself fails (restricted
// credentials) it falls back to the fixed SKU so provisioning can proceed.
func (d *Deployer) preflight(ctx context.Context, spec *vmup.Spec) (string, error) {
	imageSKU := vmup.ImageSKU
	grp, ctx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		exists, err := d.api.ResourceGroupExists(ctx, spec.ResourceGroup)
		if err != nil {
			d.log.Warn("could not check resource group existence", zap.Error(err))
			return nil
		}
		if exists {
			d.log.Info("resource group already exists, reusing it", zap.String("name", spec.ResourceGroup))
		}
		return nil
	})

	grp.Go(func() error {
		skus, err := d.api.ListImageSKUs(ctx, spec.Location, vmup.ImagePublisher, vmup.ImageOffer)
		if err != nil {
			d.log.Warn("could not list image SKUs, deploying the fixed image", zap.Error(err))
			return nil
		}
		resolved, ok := resolveImageSKU(skus)
		if !ok {
			return fmt.Errorf("image %s is not offered in %s", imageURN(vmup.ImageSKU), spec.Location)
		}
		if resolved != vmup.ImageSKU {
			d.log.Info("region offers a newer image SKU", zap.String("sku", resolved))
		}
		imageSKU = resolved
		return nil
	})

	if err := grp.Wait(); err != nil {
		return "", err
	}
	return imageSKU, nil
}

// resolveImageSKU picks the newest SKU from the listing that is in the same
// release family and hypervisor generation as the fixed SKU. SKU names within
// an offer sort by recency, so the lexically greatest match is the freshest.
func resolveImageSKU(skus []string) (string, bool) {
	family := strings.SplitN(vmup.ImageSKU, "-", 2)[0]
	gen2 := strings.HasSuffix(vmup.ImageSKU, "-gen2")
	best := ""
	for _, sku := range skus {
		if !strings.HasPrefix(sku, family) || strings.Contains(sku, "arm64") {
			continue
		}
		if strings.HasSuffix(sku, "-gen2") != gen2 {
			continue
		}
		if sku > best {
			best = sku
		}
	}
	return best, best != ""
}

func imageURN(sku string) string {
	return fmt.Sprintf("%s:%s:%s:%s", vmup.ImagePublisher, vmup.ImageOffer, sku, vmup.ImageVersion)
}

func tagsFor(spec *vmup.Spec) map[string]*string {
	tags := make(map[string]*string, len(spec.Tags)+1)
	for k, v := range spec.Tags {
		tags[k] = to.Ptr(v)
	}
	tags["vmup-deployment-id"] = to.Ptr(spec.DeploymentID())
	return tags
}

func resourceGroupParams(spec *vmup.Spec) armresources.ResourceGroup {
	return armresources.ResourceGroup{
		Location: to.Ptr(spec.Location),
		Tags:     tagsFor(spec),
	}
}

func virtualNetworkParams(spec *vmup.Spec) armnetwork.VirtualNetwork {
	return armnetwork.VirtualNetwork{
		Location: to.Ptr(spec.Location),
		Tags:     tagsFor(spec),
		Properties: &armnetwork.VirtualNetworkPropertiesFormat{
			AddressSpace: &armnetwork.AddressSpace{
				AddressPrefixes: []*string{to.Ptr(vmup.VNetAddressSpace)},
			},
		},
	}
}

func subnetParams() armnetwork.Subnet {
	return armnetwork.Subnet{
		Properties: &armnetwork.SubnetPropertiesFormat{
			AddressPrefix: to.Ptr(vmup.SubnetAddressPrefix),
		},
	}
}

func securityGroupParams(spec *vmup.Spec) armnetwork.SecurityGroup {
	return armnetwork.SecurityGroup{
		Location: to.Ptr(spec.Location),
		Tags:     tagsFor(spec),
		Properties: &armnetwork.SecurityGroupPropertiesFormat{
			SecurityRules: []*armnetwork.SecurityRule{
				{
					Name: to.Ptr("allow-ssh-inbound"),
					Properties: &armnetwork.SecurityRulePropertiesFormat{
						Protocol:                 to.Ptr(armnetwork.SecurityRuleProtocolTCP),
						Direction:                to.Ptr(armnetwork.SecurityRuleDirectionInbound),
						Access:                   to.Ptr(armnetwork.SecurityRuleAccessAllow),
						Priority:                 to.Ptr[int32](100),
						SourceAddressPrefix:      to.Ptr("*"),
						SourcePortRange:          to.Ptr("*"),
						DestinationAddressPrefix: to.Ptr("*"),
						DestinationPortRange:     to.Ptr(fmt.Sprint(vmup.SSHPort)),
					},
				},
			},
		},
	}
}

func publicIPParams(spec *vmup.Spec) armnetwork.PublicIPAddress {
	return armnetwork.PublicIPAddress{
		Location: to.Ptr(spec.Location),
		Tags:     tagsFor(spec),
		SKU: &armnetwork.PublicIPAddressSKU{
			Name: to.Ptr(armnetwork.PublicIPAddressSKUNameStandard),
		},
		Properties: &armnetwork.PublicIPAddressPropertiesFormat{
			// Static so the address is known as soon as the allocation
			// completes, before the VM boots.
			PublicIPAllocationMethod: to.Ptr(armnetwork.IPAllocationMethodStatic),
		},
	}
}

func interfaceParams(spec *vmup.Spec, subnetID, publicIPID, securityGroupID string) armnetwork.Interface {
	return armnetwork.Interface{
		Location: to.Ptr(spec.Location),
		Tags:     tagsFor(spec),
		Properties: &armnetwork.InterfacePropertiesFormat{
			IPConfigurations: []*armnetwork.InterfaceIPConfiguration{
				{
					Name: to.Ptr(vmup.IPConfigName),
					Properties: &armnetwork.InterfaceIPConfigurationPropertiesFormat{
						PrivateIPAllocationMethod: to.Ptr(armnetwork.IPAllocationMethodDynamic),
						Subnet:                    &armnetwork.Subnet{ID: to.Ptr(subnetID)},
						PublicIPAddress:           &armnetwork.PublicIPAddress{ID: to.Ptr(publicIPID)},
					},
				},
			},
			NetworkSecurityGroup: &armnetwork.SecurityGroup{ID: to.Ptr(securityGroupID)},
		},
	}
}

func virtualMachineParams(spec *vmup.Spec, interfaceID, imageSKU string) armcompute.VirtualMachine {
	osProfile := &armcompute.OSProfile{
		ComputerName:  to.Ptr(spec.VMName),
		AdminUsername: to.Ptr(spec.AdminUsername),
		AdminPassword: to.Ptr(spec.AdminPassword),
		LinuxConfiguration: &armcompute.LinuxConfiguration{
			DisablePasswordAuthentication: to.Ptr(false),
		},
	}
	if spec.SSHPublicKey != "" {
		osProfile.LinuxConfiguration.SSH = &armcompute.SSHConfiguration{
			PublicKeys: []*armcompute.SSHPublicKey{
				{
					Path:    to.Ptr(fmt.Sprintf("/home/%s/.ssh/authorized_keys", spec.AdminUsername)),
					KeyData: to.Ptr(spec.SSHPublicKey),
				},
			},
		}
	}
	if len(spec.UserData) > 0 {
		osProfile.CustomData = to.Ptr(base64.StdEncoding.EncodeToString(spec.UserData))
	}

	return armcompute.VirtualMachine{
		Location: to.Ptr(spec.Location),
		Tags:     tagsFor(spec),
		Properties: &armcompute.VirtualMachineProperties{
			HardwareProfile: &armcompute.HardwareProfile{
				VMSize: to.Ptr(armcompute.VirtualMachineSizeTypes(vmup.VMSize)),
			},
			StorageProfile: &armcompute.StorageProfile{
				ImageReference: &armcompute.ImageReference{
					Publisher: to.Ptr(vmup.ImagePublisher),
					Offer:     to.Ptr(vmup.ImageOffer),
					SKU:       to.Ptr(imageSKU),
					Version:   to.Ptr(vmup.ImageVersion),
				},
				OSDisk: &armcompute.OSDisk{
					Name:         to.Ptr(spec.OSDiskName()),
					CreateOption: to.Ptr(armcompute.DiskCreateOptionTypesFromImage),
					Caching:      to.Ptr(armcompute.CachingTypesReadWrite),
					DiskSizeGB:   to.Ptr[int32](vmup.OSDiskSizeGB),
					ManagedDisk: &armcompute.ManagedDiskParameters{
						StorageAccountType: to.Ptr(armcompute.StorageAccountTypesPremiumLRS),
					},
				},
			},
			OSProfile: osProfile,
			NetworkProfile: &armcompute.NetworkProfile{
				NetworkInterfaces: []*armcompute.NetworkInterfaceReference{
					{
						ID: to.Ptr(interfaceID),
						Properties: &armcompute.NetworkInterfaceReferenceProperties{
							Primary: to.Ptr(true),
						},
					},
				},
			},
		},
	}
}
