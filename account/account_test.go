// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package account

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/stretchr/testify/assert"
)

func TestLocationSet(t *testing.T) {
	t.Parallel()
	locs := []Location{
		{Name: "westeurope", DisplayName: "West Europe"},
		{Name: "eastus", DisplayName: "East US"},
	}
	s := LocationSet(locs)
	assert.True(t, s.Contains("westeurope"))
	assert.True(t, s.Contains("eastus"))
	assert.False(t, s.Contains("moon"))
	assert.Equal(t, 2, s.Cardinality())
}

func TestSortSubscriptions(t *testing.T) {
	t.Parallel()
	subs := []Subscription{
		{ID: "2", DisplayName: "Prod"},
		{ID: "1", DisplayName: "Dev"},
		{ID: "0", DisplayName: "Dev"},
	}
	sortSubscriptions(subs)
	assert.Equal(t, []Subscription{
		{ID: "0", DisplayName: "Dev"},
		{ID: "1", DisplayName: "Dev"},
		{ID: "2", DisplayName: "Prod"},
	}, subs)
}

func TestNewSubscription(t *testing.T) {
	t.Parallel()
	state := armsubscriptions.SubscriptionStateEnabled
	got := newSubscription(&armsubscriptions.Subscription{
		SubscriptionID: to.Ptr("sub-1"),
		DisplayName:    to.Ptr("Dev"),
		State:          &state,
	})
	assert.Equal(t, Subscription{ID: "sub-1", DisplayName: "Dev", State: "Enabled"}, got)

	// Nil fields do not panic.
	assert.Equal(t, Subscription{}, newSubscription(&armsubscriptions.Subscription{}))
}

func TestNewLocation(t *testing.T) {
	t.Parallel()
	got := newLocation(&armsubscriptions.Location{
		Name:        to.Ptr("westeurope"),
		DisplayName: to.Ptr("West Europe"),
	})
	assert.Equal(t, Location{Name: "westeurope", DisplayName: "West Europe"}, got)
}
