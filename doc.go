// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package dapi is a client for the masternode API: Platform and Core over
// gRPC, plus the legacy JSON-RPC endpoint.
//
// # Masternode selection
//
// A Client never names a masternode directly. It asks a NodeProvider for the
// node of each new connection:
//
//	client, err := dapi.NewWithAddress("10.0.0.1")       // FixedNode
//
//	nodes, err := dapi.NewRotatingNodes(pool, dapi.RoundRobin{})
//	client, err := dapi.New(nodes)
//
// With rotation (the default) the gRPC connection is closed after every call
// and the next call asks the provider again, so an unreliable or dishonest
// node cannot be queried over and over. WithRotation(false) opens one
// connection per transport and keeps it until Shutdown.
//
// # Results
//
// Lookups that can legitimately miss (GetIdentity, GetDataContract,
// GetBlockByHeight, GetBlockByHash, GetTransaction) return nil, nil when the
// node answers NotFound. Every other failure is returned as *TransportError
// (gRPC) or *HTTPError (JSON-RPC). Bad input fails with
// ErrPreconditionViolation before any connection is made.
//
//	identity, err := client.GetIdentity(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if identity == nil {
//	    // no such identity
//	}
//
// Lower level, Invoke returns a tagged Result for any Operation.
//
// # Architecture
//
//   - node.go: NodeProvider, FixedNode, RotatingNodes and selectors
//   - conn.go: connection lifecycle per transport (acquire, release, shutdown)
//   - dispatch.go: Invoke and failure classification
//   - result.go: Result, Outcome and Normalize
//   - transport.go, dial.go, dial_grpc.go, json.go: transports
//   - codec.go, messages.go: protobuf wire encoding of the API messages
//   - platform.go, core.go: the public call surface
package dapi
