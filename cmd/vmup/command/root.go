// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package command

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Azure/vmup/cmd/vmup/command/down"
	"github.com/Azure/vmup/cmd/vmup/command/regions"
	"github.com/Azure/vmup/cmd/vmup/command/up"
	"github.com/Azure/vmup/internal/logging"
)

var version = "dev"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "vmup",
	Version: version,
	Short:   "A cli tool that provisions a fixed-shape Ubuntu VM on Azure",
	Long: `A cli tool that provisions a single Ubuntu 22.04 LTS virtual machine on Azure.

It prompts for subscription, region, names and an admin password, then
creates a resource group, virtual network, subnet, network security group,
public IP, network interface and the virtual machine, in that order.
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := cfg.Build()
		if err != nil {
			return err
		}
		cmd.SetContext(logging.NewContext(cmd.Context(), logger))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, _ []string) {
		_ = logging.FromContext(cmd.Context()).Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(&up.UpCmd)
	rootCmd.AddCommand(&down.DownCmd)
	rootCmd.AddCommand(&regions.RegionsCmd)
}
