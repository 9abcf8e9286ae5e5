// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dapi

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// TransportKind names one of the masternode's RPC transports.
type TransportKind string

// Transport kinds
const (
	TransportGRPC TransportKind = "grpc" // Platform/Core binary RPC
	TransportJSON TransportKind = "json" // legacy JSON-RPC over HTTP
)

// Conn is a live handle to one masternode over one transport.
type Conn interface {
	// Invoke makes a synchronous call. method is the full gRPC method path
	// or the JSON-RPC method name, depending on the transport.
	Invoke(ctx context.Context, method string, args, reply interface{}) error

	// Close releases the handle
	Close() error
}

// opener builds a handle for addr. It must not contact the node: failures
// surface on the first call over the handle.
type opener func(addr NodeAddress, o *options) (Conn, error)

var (
	transportsMu sync.RWMutex
	transports   = map[TransportKind]opener{
		TransportGRPC: openGRPC,
		TransportJSON: openJSON,
	}
)

// AvailableTransports returns the registered transport kinds, sorted
func AvailableTransports() []TransportKind {
	transportsMu.RLock()
	defer transportsMu.RUnlock()
	result := make([]TransportKind, 0, len(transports))
	for kind := range transports {
		result = append(result, kind)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// HasTransport checks if a transport kind is available
func HasTransport(kind TransportKind) bool {
	transportsMu.RLock()
	defer transportsMu.RUnlock()
	_, ok := transports[kind]
	return ok
}

// lookupOpener prefers a per-client override over the registry.
func lookupOpener(kind TransportKind, o *options) (opener, error) {
	if fn, ok := o.openers[kind]; ok {
		return fn, nil
	}
	transportsMu.RLock()
	defer transportsMu.RUnlock()
	fn, ok := transports[kind]
	if !ok {
		return nil, fmt.Errorf("unknown transport: %s", kind)
	}
	return fn, nil
}
