// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package account lists the subscriptions and locations visible to a
// credential, for the interactive selection prompts.
package account

import (
	"context"
	"fmt"
	"sort"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	sets "github.com/deckarep/golang-set/v2"

	"github.com/Azure/vmup/to"
)

// Subscription is the subset of subscription data the prompts need.
type Subscription struct {
	ID          string
	DisplayName string
	State       string
}

// Location is a region the subscription can deploy to.
type Location struct {
	Name        string
	DisplayName string
}

// Lister reads subscriptions and locations from the resource manager.
type Lister struct {
	client *armsubscriptions.Client
}

// NewLister creates a Lister for the given credential.
func NewLister(cred azcore.TokenCredential) (*Lister, error) {
	client, err := armsubscriptions.NewClient(cred, nil)
	if err != nil {
		return nil, fmt.Errorf("account.NewLister: %w", err)
	}
	return &Lister{client: client}, nil
}

// ListSubscriptions returns all subscriptions visible to the credential,
// sorted by display name.
func (l *Lister) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	var subs []Subscription
	pager := l.client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("account.ListSubscriptions: %w", err)
		}
		for _, s := range page.Value {
			if s == nil {
				continue
			}
			subs = append(subs, newSubscription(s))
		}
	}
	sortSubscriptions(subs)
	return subs, nil
}

// ListLocations returns the locations available to a subscription, sorted
// by name.
func (l *Lister) ListLocations(ctx context.Context, subscriptionID string) ([]Location, error) {
	var locs []Location
	pager := l.client.NewListLocationsPager(subscriptionID, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("account.ListLocations: %w", err)
		}
		for _, loc := range page.Value {
			if loc == nil {
				continue
			}
			locs = append(locs, newLocation(loc))
		}
	}
	sort.Slice(locs, func(i, j int) bool { return locs[i].Name < locs[j].Name })
	return locs, nil
}

// LocationSet returns the set of location names, used to validate the
// region prompt answer.
func LocationSet(locs []Location) sets.Set[string] {
	s := sets.NewThreadUnsafeSet[string]()
	for _, loc := range locs {
		s.Add(loc.Name)
	}
	return s
}

func newSubscription(s *armsubscriptions.Subscription) Subscription {
	sub := Subscription{
		ID:          to.ValOrZero(s.SubscriptionID),
		DisplayName: to.ValOrZero(s.DisplayName),
	}
	if s.State != nil {
		sub.State = string(*s.State)
	}
	return sub
}

func newLocation(l *armsubscriptions.Location) Location {
	return Location{
		Name:        to.ValOrZero(l.Name),
		DisplayName: to.ValOrZero(l.DisplayName),
	}
}

func sortSubscriptions(subs []Subscription) {
	sort.Slice(subs, func(i, j int) bool {
		if subs[i].DisplayName == subs[j].DisplayName {
			return subs[i].ID < subs[j].ID
		}
		return subs[i].DisplayName < subs[j].DisplayName
	})
}
