// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package vmup

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/brunoga/deep"
)

// The VM shape is fixed: one image, one size, one disk.
// Everything else in a Spec is naming, region and credentials.
const (
	// ImagePublisher, ImageOffer, ImageSKU and ImageVersion identify the
	// Ubuntu 22.04 LTS (gen2) marketplace image.
	ImagePublisher = "Canonical"
	ImageOffer     = "0001-com-ubuntu-server-jammy"
	ImageSKU       = "22_04-lts-gen2"
	ImageVersion   = "latest"

	// VMSize is a 2 vCPU / 4 GiB size class.
	VMSize = "Standard_B2s"

	// OSDiskSizeGB is the size of the premium managed OS disk.
	OSDiskSizeGB = 40

	// VNetAddressSpace and SubnetAddressPrefix are the fixed network ranges.
	VNetAddressSpace    = "10.1.0.0/16"
	SubnetAddressPrefix = "10.1.0.0/24"

	// SSHPort is the only port opened on the network security group.
	SSHPort = 22

	// DefaultAdminUsername is used when the operator does not supply one.
	DefaultAdminUsername = "azureuser"
)

// vmNameRe is the permitted shape for the VM name, from which all other
// resource names are derived. Azure compute names must start with a letter,
// may contain letters, digits and hyphens, and must not end with a hyphen.
var vmNameRe = regexp.MustCompile(`^[a-zA-Z]([a-zA-Z0-9-]{0,62}[a-zA-Z0-9])?$`)

// ErrSpecInvalid is wrapped by all Spec.Validate errors.
var ErrSpecInvalid = errors.New("spec invalid")

// Spec is the flat set of parameters for one provisioning run.
// Create one with NewSpec and fill in the operator supplied values.
type Spec struct {
	SubscriptionID string
	ResourceGroup  string
	Location       string
	VMName         string
	AdminUsername  string
	AdminPassword  string

	// SSHPublicKey is optional. When set it is installed for AdminUsername
	// in addition to password authentication.
	SSHPublicKey string

	// UserDataSource is optional. A local path or go-getter URL to a
	// cloud-init file passed verbatim to the VM as customData.
	UserDataSource string

	// UserData is the fetched content of UserDataSource. It is never
	// templated, only base64 encoded on the wire.
	UserData []byte

	// Tags are applied to every created resource.
	Tags map[string]string
}

// NewSpec returns a Spec with the default admin username and tags map.
// The returned value must still be populated with subscription, names,
// location and credentials before it validates.
func NewSpec() *Spec {
	return &Spec{
		AdminUsername: DefaultAdminUsername,
		Tags:          map[string]string{"created-by": "vmup"},
	}
}

// Clone returns a deep copy of the spec, so prompt flows can mutate a copy
// without touching shared defaults.
func (s *Spec) Clone() (*Spec, error) {
	cpy, err := deep.Copy(s)
	if err != nil {
		return nil, fmt.Errorf("vmup.Clone: %w", err)
	}
	return cpy, nil
}

// Validate checks the string non-emptiness invariants and the VM name shape.
// It does not validate the password against provider policy; that is left to
// the provider (the run fails there if the policy is not met).
func (s *Spec) Validate() error {
	if s.SubscriptionID == "" {
		return fmt.Errorf("%w: subscription id is empty", ErrSpecInvalid)
	}
	if s.ResourceGroup == "" {
		return fmt.Errorf("%w: resource group name is empty", ErrSpecInvalid)
	}
	if s.Location == "" {
		return fmt.Errorf("%w: location is empty", ErrSpecInvalid)
	}
	if s.VMName == "" {
		return fmt.Errorf("%w: vm name is empty", ErrSpecInvalid)
	}
	if !vmNameRe.MatchString(s.VMName) {
		return fmt.Errorf("%w: vm name %q must start with a letter and contain only letters, digits and hyphens", ErrSpecInvalid, s.VMName)
	}
	if s.AdminUsername == "" {
		return fmt.Errorf("%w: admin username is empty", ErrSpecInvalid)
	}
	if s.AdminPassword == "" {
		return fmt.Errorf("%w: admin password is empty", ErrSpecInvalid)
	}
	return nil
}
