// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"context"

	"github.com/luxfi/dapi"
	"github.com/spf13/cobra"
)

// NewRootCmd returns the dapi command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	config := NewDefaultCLIConfig()

	cmd := &cobra.Command{
		Use:           "dapi",
		Short:         "Query masternodes over gRPC and JSON-RPC",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, config)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = _logger.Sync()
		},
	}
	addGlobalFlags(cmd, config)

	cmd.AddCommand(
		newStatusCmd(config),
		newIdentityCmd(config),
		newContractCmd(config),
		newDocumentsCmd(config),
		newBlockCmd(config),
		newTxCmd(config),
		newSendCmd(config),
		newBestBlockHashCmd(config),
	)
	return cmd
}

// withClient runs fn against a fresh client and shuts it down afterwards.
func withClient(cmd *cobra.Command, config *CLIConfig, fn func(ctx context.Context, client *dapi.Client) error) error {
	client, err := newClient(config)
	if err != nil {
		return err
	}
	defer client.Shutdown()

	ctx, cancel := context.WithTimeout(cmd.Context(), config.Timeout)
	defer cancel()
	return fn(ctx, client)
}
