// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package auth

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// environmentToCloud maps environment names to their corresponding cloud configurations.
var environmentToCloud = map[string]cloud.Configuration{
	"public":       cloud.AzurePublic,
	"usgovernment": cloud.AzureGovernment,
	"china":        cloud.AzureChina,
}

// NewToken creates a new Entra token credential.
// It uses well-known ARM/AZURE environment variables to pick the flow:
// explicit client secret first, then the Azure CLI when requested, then the
// default chain.
func NewToken() (azcore.TokenCredential, error) {
	cld := cloud.AzurePublic
	if env := getFirstSetEnvVar("ARM_ENVIRONMENT", "AZURE_ENVIRONMENT"); env != "" {
		if cfg, ok := environmentToCloud[env]; ok {
			cld = cfg
		}
	}
	clientOpts := azcore.ClientOptions{Cloud: cld}

	clientID := getFirstSetEnvVar("ARM_CLIENT_ID", "AZURE_CLIENT_ID")
	clientSecret := getFirstSetEnvVar("ARM_CLIENT_SECRET", "AZURE_CLIENT_SECRET")
	tenantID := getFirstSetEnvVar("ARM_TENANT_ID", "AZURE_TENANT_ID")

	if clientID != "" && clientSecret != "" && tenantID != "" {
		cred, err := azidentity.NewClientSecretCredential(tenantID, clientID, clientSecret,
			&azidentity.ClientSecretCredentialOptions{ClientOptions: clientOpts})
		if err != nil {
			return nil, fmt.Errorf("auth.NewToken: client secret credential: %w", err)
		}
		return cred, nil
	}

	if boolEnvVar("ARM_USE_CLI") {
		cred, err := azidentity.NewAzureCLICredential(&azidentity.AzureCLICredentialOptions{
			TenantID: tenantID,
		})
		if err != nil {
			return nil, fmt.Errorf("auth.NewToken: azure cli credential: %w", err)
		}
		return cred, nil
	}

	cred, err := azidentity.NewDefaultAzureCredential(&azidentity.DefaultAzureCredentialOptions{
		ClientOptions: clientOpts,
		TenantID:      tenantID,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.NewToken: default credential: %w", err)
	}
	return cred, nil
}

func getFirstSetEnvVar(vars ...string) string {
	for _, v := range vars {
		if val := os.Getenv(v); val != "" {
			return val
		}
	}

	return ""
}

func boolEnvVar(vars ...string) bool {
	for _, v := range vars {
		if val := os.Getenv(v); val != "" {
			b, _ := strconv.ParseBool(val)
			if b {
				return true
			}
		}
	}

	return false
}
