// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package environment contains the types and methods for fetching configuration from the local environment.
package environment

import "os"

const (
	defaultLocation         = "westeurope"    // defaultLocation is the region offered when VMUP_LOCATION is unset.
	defaultLocationEnv      = "VMUP_LOCATION" // defaultLocationEnv overrides the default region.
	defaultAdminUsername    = "azureuser"     // defaultAdminUsername is the admin account offered when VMUP_ADMIN_USERNAME is unset.
	defaultAdminUsernameEnv = "VMUP_ADMIN_USERNAME"
	resourceGroupEnv        = "VMUP_RESOURCE_GROUP"  // resourceGroupEnv pre-answers the resource group prompt.
	subscriptionEnv         = "VMUP_SUBSCRIPTION_ID" // subscriptionEnv pre-answers the subscription selection.
)

// Location contents of the `VMUP_LOCATION` environment variable, or the default which is `westeurope`.
func Location() string {
	loc := defaultLocation
	if l := os.Getenv(defaultLocationEnv); l != "" {
		loc = l
	}
	return loc
}

// AdminUsername contents of the `VMUP_ADMIN_USERNAME` environment variable, or the default which is `azureuser`.
func AdminUsername() string {
	user := defaultAdminUsername
	if u := os.Getenv(defaultAdminUsernameEnv); u != "" {
		user = u
	}
	return user
}

// ResourceGroup contents of the `VMUP_RESOURCE_GROUP` environment variable, empty when unset.
func ResourceGroup() string {
	return os.Getenv(resourceGroupEnv)
}

// SubscriptionID contents of the `VMUP_SUBSCRIPTION_ID` environment variable, empty when unset.
func SubscriptionID() string {
	return os.Getenv(subscriptionEnv)
}
