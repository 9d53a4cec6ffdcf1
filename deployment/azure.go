// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package deployment

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/Azure/vmup/to"
)

// azureAPI implements API on the track-2 resource manager clients. Each
// create is a long-running operation: begin, then poll until done.
type azureAPI struct {
	resourceGroups  *armresources.ResourceGroupsClient
	virtualNetworks *armnetwork.VirtualNetworksClient
	subnets         *armnetwork.SubnetsClient
	securityGroups  *armnetwork.SecurityGroupsClient
	publicIPs       *armnetwork.PublicIPAddressesClient
	interfaces      *armnetwork.InterfacesClient
	virtualMachines *armcompute.VirtualMachinesClient
	images          *armcompute.VirtualMachineImagesClient
}

// NewAzureAPI creates the resource manager clients for one subscription.
func NewAzureAPI(subscriptionID string, cred azcore.TokenCredential) (API, error) {
	rg, err := armresources.NewResourceGroupsClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("deployment.NewAzureAPI: resource groups client: %w", err)
	}
	vnets, err := armnetwork.NewVirtualNetworksClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("deployment.NewAzureAPI: virtual networks client: %w", err)
	}
	subnets, err := armnetwork.NewSubnetsClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("deployment.NewAzureAPI: subnets client: %w", err)
	}
	nsgs, err := armnetwork.NewSecurityGroupsClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("deployment.NewAzureAPI: security groups client: %w", err)
	}
	pips, err := armnetwork.NewPublicIPAddressesClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("deployment.NewAzureAPI: public IP addresses client: %w", err)
	}
	nics, err := armnetwork.NewInterfacesClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("deployment.NewAzureAPI: interfaces client: %w", err)
	}
	vms, err := armcompute.NewVirtualMachinesClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("deployment.NewAzureAPI: virtual machines client: %w", err)
	}
	images, err := armcompute.NewVirtualMachineImagesClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("deployment.NewAzureAPI: virtual machine images client: %w", err)
	}
	return &azureAPI{
		resourceGroups:  rg,
		virtualNetworks: vnets,
		subnets:         subnets,
		securityGroups:  nsgs,
		publicIPs:       pips,
		interfaces:      nics,
		virtualMachines: vms,
		images:          images,
	}, nil
}

func (a *azureAPI) ResourceGroupExists(ctx context.Context, name string) (bool, error) {
	resp, err := a.resourceGroups.CheckExistence(ctx, name, nil)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (a *azureAPI) ListImageSKUs(ctx context.Context, location, publisher, offer string) ([]string, error) {
	resp, err := a.images.ListSKUs(ctx, location, publisher, offer, nil)
	if err != nil {
		return nil, err
	}
	resources := to.Vals(resp.VirtualMachineImageResourceArray)
	skus := make([]string, 0, len(resources))
	for _, r := range resources {
		skus = append(skus, to.ValOrZero(r.Name))
	}
	return skus, nil
}

func (a *azureAPI) CreateResourceGroup(ctx context.Context, name string, params armresources.ResourceGroup) (armresources.ResourceGroup, error) {
	resp, err := a.resourceGroups.CreateOrUpdate(ctx, name, params, nil)
	if err != nil {
		return armresources.ResourceGroup{}, err
	}
	return resp.ResourceGroup, nil
}

func (a *azureAPI) CreateVirtualNetwork(ctx context.Context, resourceGroup, name string, params armnetwork.VirtualNetwork) (armnetwork.VirtualNetwork, error) {
	poller, err := a.virtualNetworks.BeginCreateOrUpdate(ctx, resourceGroup, name, params, nil)
	if err != nil {
		return armnetwork.VirtualNetwork{}, err
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return armnetwork.VirtualNetwork{}, err
	}
	return resp.VirtualNetwork, nil
}

func (a *azureAPI) CreateSubnet(ctx context.Context, resourceGroup, vnetName, name string, params armnetwork.Subnet) (armnetwork.Subnet, error) {
	poller, err := a.subnets.BeginCreateOrUpdate(ctx, resourceGroup, vnetName, name, params, nil)
	if err != nil {
		return armnetwork.Subnet{}, err
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return armnetwork.Subnet{}, err
	}
	return resp.Subnet, nil
}

func (a *azureAPI) CreateSecurityGroup(ctx context.Context, resourceGroup, name string, params armnetwork.SecurityGroup) (armnetwork.SecurityGroup, error) {
	poller, err := a.securityGroups.BeginCreateOrUpdate(ctx, resourceGroup, name, params, nil)
	if err != nil {
		return armnetwork.SecurityGroup{}, err
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return armnetwork.SecurityGroup{}, err
	}
	return resp.SecurityGroup, nil
}

func (a *azureAPI) CreatePublicIP(ctx context.Context, resourceGroup, name string, params armnetwork.PublicIPAddress) (armnetwork.PublicIPAddress, error) {
	poller, err := a.publicIPs.BeginCreateOrUpdate(ctx, resourceGroup, name, params, nil)
	if err != nil {
		return armnetwork.PublicIPAddress{}, err
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return armnetwork.PublicIPAddress{}, err
	}
	return resp.PublicIPAddress, nil
}

func (a *azureAPI) CreateInterface(ctx context.Context, resourceGroup, name string, params armnetwork.Interface) (armnetwork.Interface, error) {
	poller, err := a.interfaces.BeginCreateOrUpdate(ctx, resourceGroup, name, params, nil)
	if err != nil {
		return armnetwork.Interface{}, err
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return armnetwork.Interface{}, err
	}
	return resp.Interface, nil
}

func (a *azureAPI) CreateVirtualMachine(ctx context.Context, resourceGroup, name string, params armcompute.VirtualMachine) (armcompute.VirtualMachine, error) {
	poller, err := a.virtualMachines.BeginCreateOrUpdate(ctx, resourceGroup, name, params, nil)
	if err != nil {
		return armcompute.VirtualMachine{}, err
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return armcompute.VirtualMachine{}, err
	}
	return resp.VirtualMachine, nil
}

func (a *azureAPI) DeleteResourceGroup(ctx context.Context, name string) error {
	poller, err := a.resourceGroups.BeginDelete(ctx, name, nil)
	if err != nil {
		return err
	}
	_, err = poller.PollUntilDone(ctx, nil)
	return err
}
