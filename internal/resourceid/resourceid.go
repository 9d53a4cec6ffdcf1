// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package resourceid extracts the parts of Azure resource IDs that the
// commands accept in place of plain names.
package resourceid

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
)

// Parse returns the subscription ID and resource group name from a resource
// ID such as /subscriptions/<sub>/resourceGroups/<rg>[/...].
func Parse(resID string) (subscription, resourceGroup string, err error) {
	r, err := arm.ParseResourceID(resID)
	if err != nil {
		return "", "", fmt.Errorf("resourceid.Parse: could not parse %s: %w", resID, err)
	}
	return r.SubscriptionID, r.ResourceGroupName, nil
}
