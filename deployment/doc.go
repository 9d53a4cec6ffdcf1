// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package deployment issues the fixed sequence of Azure resource manager
// calls that stand up one virtual machine: resource group, virtual network,
// subnet, network security group, public IP, network interface, virtual
// machine.
//
// The sequence is strictly ordered and has no retry or rollback: the first
// failed call aborts the run and already-created resources are left in
// place for the operator to inspect or delete.
package deployment
