// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dapi

import (
	"context"
	"math"
)

// BlockHashLength is the length of a hex encoded block hash.
const BlockHashLength = 64

// Status is the state of the masternode's core chain.
type Status struct {
	CoreVersion     uint32  `json:"coreVersion"`
	ProtocolVersion uint32  `json:"protocolVersion"`
	Blocks          uint32  `json:"blocks"`
	TimeOffset      uint32  `json:"timeOffset"`
	Connections     uint32  `json:"connections"`
	Proxy           string  `json:"proxy"`
	Difficulty      float64 `json:"difficulty"`
	Testnet         bool    `json:"testnet"`
	RelayFee        float64 `json:"relayFee"`
	Errors          string  `json:"errors"`
	Network         string  `json:"network"`
}

// SendTransactionOptions relax the node's mempool checks.
type SendTransactionOptions struct {
	AllowHighFees bool
	BypassLimits  bool
}

// GetStatus returns the masternode's core status.
func (c *Client) GetStatus(ctx context.Context) (*Status, error) {
	c.logger.Info("getStatus")
	r := Invoke[GetStatusResponse](ctx, c, TransportGRPC, opGetStatus, &GetStatusRequest{})
	if r.Err != nil {
		return nil, r.Err
	}
	resp := r.Value
	return &Status{
		CoreVersion:     resp.CoreVersion,
		ProtocolVersion: resp.ProtocolVersion,
		Blocks:          resp.Blocks,
		TimeOffset:      resp.TimeOffset,
		Connections:     resp.Connections,
		Proxy:           resp.Proxy,
		Difficulty:      resp.Difficulty,
		Testnet:         resp.Testnet,
		RelayFee:        resp.RelayFee,
		Errors:          resp.Errors,
		Network:         resp.Network,
	}, nil
}

// GetBlockByHeight returns the serialized block at height, or nil, nil if
// the node does not know it. height must be positive.
func (c *Client) GetBlockByHeight(ctx context.Context, height int) ([]byte, error) {
	if height <= 0 || uint64(height) > math.MaxUint32 {
		return nil, preconditionf("block height must be a positive 32-bit value, got %d", height)
	}
	return c.getBlock(ctx, &GetBlockRequest{Height: uint32(height)})
}

// GetBlockByHash returns the serialized block with the given hex hash, or
// nil, nil if the node does not know it.
func (c *Client) GetBlockByHash(ctx context.Context, hash string) ([]byte, error) {
	if len(hash) != BlockHashLength {
		return nil, preconditionf("block hash must be %d characters, got %d", BlockHashLength, len(hash))
	}
	return c.getBlock(ctx, &GetBlockRequest{Hash: hash})
}

func (c *Client) getBlock(ctx context.Context, req *GetBlockRequest) ([]byte, error) {
	r := Invoke[GetBlockResponse](ctx, c, TransportGRPC, opGetBlock, req)
	return Normalize(r, func(resp *GetBlockResponse) ([]byte, bool) {
		return resp.Block, true
	}).Get()
}

// SendTransaction broadcasts a serialized transaction and returns its id.
func (c *Client) SendTransaction(ctx context.Context, tx []byte, opts SendTransactionOptions) (string, error) {
	req := &SendTransactionRequest{
		Transaction:   tx,
		AllowHighFees: opts.AllowHighFees,
		BypassLimits:  opts.BypassLimits,
	}
	r := Invoke[SendTransactionResponse](ctx, c, TransportGRPC, opSendTransaction, req)
	if r.Err != nil {
		return "", r.Err
	}
	return r.Value.TransactionID, nil
}

// GetTransaction returns the serialized transaction with the given id, or
// nil, nil if the node does not know it. The id is the byte-reversed hex of
// the transaction hash, as the node reports it.
func (c *Client) GetTransaction(ctx context.Context, id string) ([]byte, error) {
	c.logger.Info("getTransaction")
	r := Invoke[GetTransactionResponse](ctx, c, TransportGRPC, opGetTransaction, &GetTransactionRequest{ID: id})
	return Normalize(r, func(resp *GetTransactionResponse) ([]byte, bool) {
		return resp.Transaction, true
	}).Get()
}

// GetBestBlockHash asks the node's JSON-RPC endpoint for the tip hash.
func (c *Client) GetBestBlockHash(ctx context.Context) (string, error) {
	r := Invoke[string](ctx, c, TransportJSON, opGetBestBlockHash, map[string]interface{}{})
	if r.Err != nil {
		return "", r.Err
	}
	return *r.Value, nil
}
