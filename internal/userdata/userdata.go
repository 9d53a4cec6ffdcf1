// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package userdata fetches the optional cloud-init file for a run.
// The source can be a local path or any go-getter URL (git, http, s3, ...).
// Content is passed through verbatim; there is no templating.
package userdata

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter/v2"
)

// Fetch retrieves the file at src and returns its content.
func Fetch(ctx context.Context, src string) ([]byte, error) {
	tmp, err := os.MkdirTemp("", "vmup-userdata-")
	if err != nil {
		return nil, fmt.Errorf("userdata.Fetch: %w", err)
	}
	defer os.RemoveAll(tmp)

	dst := filepath.Join(tmp, "user-data")
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("userdata.Fetch: %w", err)
	}

	client := getter.Client{}
	req := &getter.Request{
		Src:     src,
		Dst:     dst,
		Pwd:     wd,
		GetMode: getter.ModeFile,
		Copy:    true,
	}
	if _, err := client.Get(ctx, req); err != nil {
		return nil, fmt.Errorf("userdata.Fetch: getting %s: %w", src, err)
	}

	b, err := os.ReadFile(dst)
	if err != nil {
		return nil, fmt.Errorf("userdata.Fetch: reading fetched file: %w", err)
	}
	return b, nil
}
