// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package vmup holds the provisioning specification for a single fixed-shape
// Ubuntu virtual machine on Azure.
// The shape (image, size, OS disk) is deliberately not configurable; only
// names, region and credentials vary between runs.
//
// The deployment package consumes a Spec and issues the resource manager
// calls in a fixed order.
package vmup
