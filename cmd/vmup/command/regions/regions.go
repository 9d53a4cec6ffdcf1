// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package regions implements listing of the locations a subscription can
// deploy to.
package regions

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Azure/vmup/account"
	"github.com/Azure/vmup/internal/auth"
	"github.com/Azure/vmup/internal/environment"
)

// RegionsCmd lists the locations available to a subscription.
var RegionsCmd = cobra.Command{
	Use:   "regions",
	Short: "List the regions available to a subscription.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		subscriptionID, _ := cmd.Flags().GetString("subscription")
		if subscriptionID == "" {
			subscriptionID = environment.SubscriptionID()
		}
		if subscriptionID == "" {
			cmd.PrintErrf("%s subscription is required: set --subscription or VMUP_SUBSCRIPTION_ID\n", cmd.ErrPrefix())
			os.Exit(1)
		}

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
		locs, err := lister.ListLocations(cmd.Context(), subscriptionID)
		if err != nil {
			cmd.PrintErrf("%s could not list locations: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
		for _, loc := range locs {
			cmd.Printf("%-24s%s\n", loc.Name, loc.DisplayName)
		}
	},
}

func init() {
	RegionsCmd.Flags().StringP("subscription", "s", "", "subscription ID to list regions for")
}
