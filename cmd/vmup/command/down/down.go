// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package down implements deletion of a provisioned resource group.
package down

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Azure/vmup/deployment"
	"github.com/Azure/vmup/internal/auth"
	"github.com/Azure/vmup/internal/environment"
	"github.com/Azure/vmup/internal/logging"
	"github.com/Azure/vmup/internal/prompt"
	"github.com/Azure/vmup/internal/resourceid"
)

// DownCmd deletes the resource group created by up, and with it every
// resource inside.
var DownCmd = cobra.Command{
	Use:   "down resource-group",
	Short: "Delete a resource group created by up, and everything in it.",
	Long: `Delete a resource group and all resources it contains.

The argument is either a resource group name (the subscription must then be
supplied by flag or environment) or a full resource ID, from which the
subscription is taken.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		subscriptionID, _ := cmd.Flags().GetString("subscription")
		if subscriptionID == "" {
			subscriptionID = environment.SubscriptionID()
		}
		resourceGroup := args[0]
		if strings.HasPrefix(resourceGroup, "/") {
			var err error
			if subscriptionID, resourceGroup, err = resourceid.Parse(resourceGroup); err != nil {
				cmd.PrintErrf("%s %v\n", cmd.ErrPrefix(), err)
				os.Exit(1)
			}
		}
		if subscriptionID == "" {
			cmd.PrintErrf("%s subscription is required: set --subscription or VMUP_SUBSCRIPTION_ID\n", cmd.ErrPrefix())
			os.Exit(1)
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
			answer, err := p.Line("Delete resource group "+resourceGroup+" and everything in it? (y/N)", "N")
			if err != nil || !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
				cmd.Println("aborted")
				return
			}
		}

		cred, err := auth.NewToken()
		if err != nil {
			cmd.PrintErrf("%s could not get Azure credential: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
		api, err := deployment.NewAzureAPI(subscriptionID, cred)
		if err != nil {
			cmd.PrintErrf("%s could not create resource manager clients: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
		deployer := deployment.NewDeployer(api, logging.FromContext(cmd.Context()))
		if err := deployer.Destroy(cmd.Context(), resourceGroup); err != nil {
			cmd.PrintErrf("%s %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
		cmd.Printf("deleted resource group %s\n", resourceGroup)
	},
}

func init() {
	DownCmd.Flags().StringP("subscription", "s", "", "subscription ID containing the resource group")
	DownCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
}
