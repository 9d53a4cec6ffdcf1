// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

/*
Package auth provides a small helper for creating an azcore.TokenCredential
using well-known Azure environment variables and conventions.

It wraps azidentity with environment-driven configuration so calling code can
obtain a credential suitable for use with the Azure SDKs without duplicating
environment parsing logic.

Usage

	import "github.com/Azure/vmup/internal/auth"

	cred, err := auth.NewToken()
	if err != nil {
	    // handle error
	}
	// use cred with Azure SDK clients that accept azcore.TokenCredential

# Environment variables

NewToken reads the following variables to determine the credential flow:

- ARM_ENVIRONMENT, AZURE_ENVIRONMENT ("public", "usgovernment", "china")
- ARM_CLIENT_ID, AZURE_CLIENT_ID
- ARM_CLIENT_SECRET, AZURE_CLIENT_SECRET
- ARM_TENANT_ID, AZURE_TENANT_ID
- ARM_USE_CLI

When a client id, secret and tenant are all present a client secret
credential is used. When ARM_USE_CLI is true the Azure CLI credential is
used. Otherwise the default credential chain applies, which covers
environment, managed identity and the Azure CLI in that order.
*/
package auth
