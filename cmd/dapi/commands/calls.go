// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/luxfi/dapi"
	"github.com/spf13/cobra"
)

const notFound = "not found"

// printBytes writes b as hex, or "not found" for an absent payload.
func printBytes(w io.Writer, b []byte) {
	if b == nil {
		fmt.Fprintln(w, notFound)
		return
	}
	fmt.Fprintln(w, hex.EncodeToString(b))
}

func newStatusCmd(config *CLIConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the core status of a masternode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, config, func(ctx context.Context, client *dapi.Client) error {
				status, err := client.GetStatus(ctx)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(status)
			})
		},
	}
}

func newIdentityCmd(config *CLIConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "identity <id>",
		Short: "Fetch a serialized identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, config, func(ctx context.Context, client *dapi.Client) error {
				identity, err := client.GetIdentity(ctx, args[0])
				if err != nil {
					return err
				}
				printBytes(cmd.OutOrStdout(), identity)
				return nil
			})
		},
	}
}

func newContractCmd(config *CLIConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "contract <id>",
		Short: "Fetch a serialized data contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, config, func(ctx context.Context, client *dapi.Client) error {
				contract, err := client.GetDataContract(ctx, args[0])
				if err != nil {
					return err
				}
				printBytes(cmd.OutOrStdout(), contract)
				return nil
			})
		},
	}
}

func newDocumentsCmd(config *CLIConfig) *cobra.Command {
	var (
		where, orderBy string
		query          dapi.DocumentQuery
	)
	cmd := &cobra.Command{
		Use:   "documents <contract-id> <type>",
		Short: "Query documents of a data contract",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := json.Unmarshal([]byte(where), &query.Where); err != nil {
				return fmt.Errorf("invalid --where: %w", err)
			}
			if err := json.Unmarshal([]byte(orderBy), &query.OrderBy); err != nil {
				return fmt.Errorf("invalid --order-by: %w", err)
			}
			return withClient(cmd, config, func(ctx context.Context, client *dapi.Client) error {
				docs, err := client.GetDocuments(ctx, args[0], args[1], &query)
				if err != nil {
					return err
				}
				for _, doc := range docs {
					printBytes(cmd.OutOrStdout(), doc)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&where, "where", "[]", `Where clauses as JSON, e.g. [["label","==","alice"]]`)
	cmd.Flags().StringVar(&orderBy, "order-by", "[]", `Order-by clauses as JSON, e.g. [["label","asc"]]`)
	cmd.Flags().Uint32Var(&query.Limit, "limit", 0, "Max number of documents (0 for the node default)")
	cmd.Flags().Uint32Var(&query.StartAt, "start-at", 0, "Start at this position")
	cmd.Flags().Uint32Var(&query.StartAfter, "start-after", 0, "Start after this position")
	return cmd
}

func newBlockCmd(config *CLIConfig) *cobra.Command {
	var (
		height int
		hash   string
	)
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Fetch a serialized block by height or hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (height != 0) == (hash != "") {
				return fmt.Errorf("exactly one of --height and --hash is required")
			}
			return withClient(cmd, config, func(ctx context.Context, client *dapi.Client) error {
				var (
					block []byte
					err   error
				)
				if hash != "" {
					block, err = client.GetBlockByHash(ctx, hash)
				} else {
					block, err = client.GetBlockByHeight(ctx, height)
				}
				if err != nil {
					return err
				}
				printBytes(cmd.OutOrStdout(), block)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&height, "height", 0, "Block height")
	cmd.Flags().StringVar(&hash, "hash", "", "Block hash (64 hex characters)")
	return cmd
}

func newTxCmd(config *CLIConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "tx <id>",
		Short: "Fetch a serialized transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, config, func(ctx context.Context, client *dapi.Client) error {
				tx, err := client.GetTransaction(ctx, args[0])
				if err != nil {
					return err
				}
				printBytes(cmd.OutOrStdout(), tx)
				return nil
			})
		},
	}
}

func newSendCmd(config *CLIConfig) *cobra.Command {
	var opts dapi.SendTransactionOptions
	cmd := &cobra.Command{
		Use:   "send <tx-hex>",
		Short: "Broadcast a serialized transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("invalid transaction hex: %w", err)
			}
			return withClient(cmd, config, func(ctx context.Context, client *dapi.Client) error {
				id, err := client.SendTransaction(ctx, tx, opts)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&opts.AllowHighFees, "allow-high-fees", false, "Accept absurdly high fees")
	cmd.Flags().BoolVar(&opts.BypassLimits, "bypass-limits", false, "Bypass mempool limits")
	return cmd
}

func newBestBlockHashCmd(config *CLIConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "best-block-hash",
		Short: "Show the tip hash over JSON-RPC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, config, func(ctx context.Context, client *dapi.Client) error {
				hash, err := client.GetBestBlockHash(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), hash)
				return nil
			})
		},
	}
}
