// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package up implements the interactive provisioning command.
package up

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Azure/vmup"
	"github.com/Azure/vmup/account"
	"github.com/Azure/vmup/deployment"
	"github.com/Azure/vmup/internal/auth"
	"github.com/Azure/vmup/internal/environment"
	"github.com/Azure/vmup/internal/logging"
	"github.com/Azure/vmup/internal/prompt"
	"github.com/Azure/vmup/internal/userdata"
)

// UpCmd provisions the virtual machine.
var UpCmd = cobra.Command{
	Use:   "up",
	Short: "Provision the Ubuntu VM, prompting for anything not supplied by flags.",
	Long: `Provision a single Ubuntu 22.04 LTS virtual machine.

Prompts for subscription, region, names and an admin password unless the
corresponding flag or VMUP_* environment variable is set. Prints the public
IP address and an SSH command line when the machine is up.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		cred, err := auth.NewToken()
		if err != nil {
			cmd.PrintErrf("%s could not get Azure credential: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
		lister, err := account.NewLister(cred)
		if err != nil {
			cmd.PrintErrf("%s could not create subscription lister: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}

		// One prompter for the whole run: line buffering must not split
		// across readers.
		p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())

		spec, err := buildSpec(ctx, cmd, p, lister)
		if err != nil {
			cmd.PrintErrf("%s %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(cmd, p, spec) {
			cmd.Println("aborted")
			return
		}

		api, err := deployment.NewAzureAPI(spec.SubscriptionID, cred)
		if err != nil {
			cmd.PrintErrf("%s could not create resource manager clients: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
		deployer := deployment.NewDeployer(api, logging.FromContext(ctx))
		result, err := deployer.Deploy(ctx, spec)
		if err != nil {
			cmd.PrintErrf("%s provisioning failed, created resources are left in place: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}

		cmd.Printf("\nVirtual machine %s is up.\n", spec.VMName)
		cmd.Printf("Public IP address: %s\n", result.PublicIPAddress)
		cmd.Printf("Connect with:      %s\n", result.SSHCommand)
	},
}

// buildSpec collects the run parameters from flags, environment and prompts.
func buildSpec(ctx context.Context, cmd *cobra.Command, p *prompt.Prompter, lister *account.Lister) (*vmup.Spec, error) {
	spec, err := vmup.NewSpec().Clone()
	if err != nil {
		return nil, err
	}

	spec.SubscriptionID, err = chooseSubscription(ctx, cmd, p, lister)
	if err != nil {
		return nil, err
	}

	spec.Location, err = chooseLocation(ctx, cmd, p, lister, spec.SubscriptionID)
	if err != nil {
		return nil, err
	}

	spec.VMName, _ = cmd.Flags().GetString("name")
	if spec.VMName == "" {
		if spec.VMName, err = p.Line("VM name", ""); err != nil {
			return nil, err
		}
	}

	spec.ResourceGroup, _ = cmd.Flags().GetString("resource-group")
	if spec.ResourceGroup == "" {
		spec.ResourceGroup = environment.ResourceGroup()
	}
	if spec.ResourceGroup == "" {
		if spec.ResourceGroup, err = p.Line("Resource group", vmup.DefaultResourceGroupName(spec.VMName)); err != nil {
			return nil, err
		}
	}

	if adminUser, _ := cmd.Flags().GetString("admin-user"); adminUser != "" {
		spec.AdminUsername = adminUser
	} else if spec.AdminUsername, err = p.Line("Admin username", environment.AdminUsername()); err != nil {
		return nil, err
	}

	if spec.AdminPassword, err = p.Password("Admin password"); err != nil {
		return nil, err
	}

	if keyPath, _ := cmd.Flags().GetString("ssh-key"); keyPath != "" {
		key, err := os.ReadFile(keyPath)
		if err != nil {
			return nil, fmt.Errorf("reading ssh public key: %w", err)
		}
		spec.SSHPublicKey = strings.TrimSpace(string(key))
	}

	if src, _ := cmd.Flags().GetString("user-data"); src != "" {
		spec.UserDataSource = src
		if spec.UserData, err = userdata.Fetch(ctx, src); err != nil {
			return nil, err
		}
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

func chooseSubscription(ctx context.Context, cmd *cobra.Command, p *prompt.Prompter, lister *account.Lister) (string, error) {
	if id, _ := cmd.Flags().GetString("subscription"); id != "" {
		return id, nil
	}
	if id := environment.SubscriptionID(); id != "" {
		return id, nil
	}

	subs, err := lister.ListSubscriptions(ctx)
	if err != nil {
		return "", err
	}
	switch len(subs) {
	case 0:
		return "", fmt.Errorf("no subscriptions visible to this credential")
	case 1:
		cmd.Printf("Using subscription %s (%s)\n", subs[0].DisplayName, subs[0].ID)
		return subs[0].ID, nil
	}

	options := make([]string, len(subs))
	for i, s := range subs {
		options[i] = fmt.Sprintf("%s (%s)", s.DisplayName, s.ID)
	}
	idx, err := p.Select("Subscription", options)
	if err != nil {
		return "", err
	}
	return subs[idx].ID, nil
}

func chooseLocation(ctx context.Context, cmd *cobra.Command, p *prompt.Prompter, lister *account.Lister, subscriptionID string) (string, error) {
	choice, _ := cmd.Flags().GetString("location")

	locs, err := lister.ListLocations(ctx, subscriptionID)
	if err != nil {
		return "", err
	}
	valid := account.LocationSet(locs)

	for {
		if choice == "" {
			if choice, err = p.Line("Location", environment.Location()); err != nil {
				return "", err
			}
		}
		if valid.Contains(choice) {
			return choice, nil
		}
		cmd.Printf("location %q is not available to this subscription\n", choice)
		choice = ""
	}
}

func confirm(cmd *cobra.Command, p *prompt.Prompter, spec *vmup.Spec) bool {
	cmd.Println("\nAbout to create:")
	cmd.Printf("  Subscription:   %s\n", spec.SubscriptionID)
	cmd.Printf("  Resource group: %s (%s)\n", spec.ResourceGroup, spec.Location)
	cmd.Printf("  Virtual machine: %s (%s, %dGB %s)\n", spec.VMName, vmup.VMSize, vmup.OSDiskSizeGB, "Premium_LRS")
	cmd.Printf("  Image:          %s:%s:%s:%s\n", vmup.ImagePublisher, vmup.ImageOffer, vmup.ImageSKU, vmup.ImageVersion)
	cmd.Printf("  Open ports:     %d (SSH)\n", vmup.SSHPort)
	if spec.UserDataSource != "" {
		cmd.Printf("  User data:      %s\n", spec.UserDataSource)
	}

	answer, err := p.Line("Proceed? (y/N)", "N")
	if err != nil {
		return false
	}
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}

func init() {
	UpCmd.Flags().StringP("subscription", "s", "", "subscription ID (skips the selection prompt)")
	UpCmd.Flags().StringP("location", "l", "", "region to deploy to (skips the prompt)")
	UpCmd.Flags().StringP("name", "n", "", "virtual machine name (skips the prompt)")
	UpCmd.Flags().StringP("resource-group", "g", "", "resource group name (skips the prompt)")
	UpCmd.Flags().String("admin-user", "", "admin username (skips the prompt)")
	UpCmd.Flags().String("ssh-key", "", "path to an SSH public key to install for the admin user")
	UpCmd.Flags().String("user-data", "", "path or go-getter URL of a cloud-init file")
	UpCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
}
