// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package up

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/vmup"
	"github.com/Azure/vmup/internal/prompt"
)

func testCmd(input string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	return cmd, &out
}

func TestConfirmYes(t *testing.T) {
	spec := vmup.NewSpec()
	spec.SubscriptionID = "sub-1"
	spec.ResourceGroup = "demo-rg"
	spec.Location = "westeurope"
	spec.VMName = "demo"
	spec.UserDataSource = "./cloud-init.yaml"

	cmd, out := testCmd("y\n")
	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	assert.True(t, confirm(cmd, p, spec))
	// The summary names the fixed shape and the cloud-init source.
	assert.Contains(t, out.String(), "Standard_B2s")
	assert.Contains(t, out.String(), "22_04-lts-gen2")
	assert.Contains(t, out.String(), "./cloud-init.yaml")
}

func TestConfirmDefaultsToNo(t *testing.T) {
	cmd, _ := testCmd("\n")
	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	assert.False(t, confirm(cmd, p, vmup.NewSpec()))
}

func TestChooseSubscriptionFlagWins(t *testing.T) {
	cmd, _ := testCmd("")
	cmd.Flags().String("subscription", "", "")
	require.NoError(t, cmd.Flags().Set("subscription", "sub-flag"))

	got, err := chooseSubscription(context.Background(), cmd, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "sub-flag", got)
}

func TestChooseSubscriptionEnvFallback(t *testing.T) {
	t.Setenv("VMUP_SUBSCRIPTION_ID", "sub-env")
	cmd, _ := testCmd("")
	cmd.Flags().String("subscription", "", "")

	got, err := chooseSubscription(context.Background(), cmd, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "sub-env", got)
}
