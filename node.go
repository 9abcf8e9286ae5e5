// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dapi

import (
	"fmt"
	"math/rand/v2"
	"net"
	"strconv"
	"sync"
)

// Default masternode ports.
const (
	DefaultGRPCPort = 3010
	DefaultJRPCPort = 3000
)

// NodeAddress identifies one masternode. A zero port means the client's
// configured port for that transport.
type NodeAddress struct {
	Host     string
	GRPCPort int
	JRPCPort int
}

// GRPCAddr returns the host:port target of the binary transport.
func (a NodeAddress) GRPCAddr() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.GRPCPort))
}

// JRPCURL returns the base URL of the JSON-RPC transport.
func (a NodeAddress) JRPCURL() string {
	return "http://" + net.JoinHostPort(a.Host, strconv.Itoa(a.JRPCPort)) + "/"
}

func (a NodeAddress) String() string {
	return a.Host
}

func (a NodeAddress) withPorts(grpcPort, jrpcPort int) NodeAddress {
	if a.GRPCPort == 0 {
		a.GRPCPort = grpcPort
	}
	if a.JRPCPort == 0 {
		a.JRPCPort = jrpcPort
	}
	return a
}

// ParseNodeAddress accepts "host" or "host:port". An explicit port is taken
// as the gRPC port.
func ParseNodeAddress(s string) (NodeAddress, error) {
	if s == "" {
		return NodeAddress{}, fmt.Errorf("empty masternode address")
	}
	host, port, err := net.SplitHostPort(s)
	if err != nil {
		// no port
		return NodeAddress{Host: s}, nil
	}
	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 || p > 65535 {
		return NodeAddress{}, fmt.Errorf("invalid port in masternode address %q", s)
	}
	return NodeAddress{Host: host, GRPCPort: p}, nil
}

// NodeProvider supplies the masternode to contact for the next call.
type NodeProvider interface {
	Next() NodeAddress
}

// FixedNode always returns the same masternode.
type FixedNode NodeAddress

// NewFixedNode returns a provider for a single host.
func NewFixedNode(host string) FixedNode {
	return FixedNode{Host: host}
}

// Next implements NodeProvider.
func (f FixedNode) Next() NodeAddress {
	return NodeAddress(f)
}

// Selector picks an index into a pool of n > 0 nodes. last is the index
// returned by the previous selection, or -1.
type Selector interface {
	Select(n, last int) int
}

// RoundRobin walks the pool in order.
type RoundRobin struct{}

// Select implements Selector.
func (RoundRobin) Select(n, last int) int {
	return (last + 1) % n
}

// RandomSelector picks uniformly, never repeating the last node when there is
// another to choose from.
type RandomSelector struct{}

// Select implements Selector.
func (RandomSelector) Select(n, last int) int {
	if n == 1 || last < 0 || last >= n {
		return rand.IntN(n)
	}
	i := rand.IntN(n - 1)
	if i >= last {
		i++
	}
	return i
}

// RotatingNodes returns a node chosen per call from a fixed pool.
type RotatingNodes struct {
	mu       sync.Mutex
	nodes    []NodeAddress
	selector Selector
	last     int
}

// NewRotatingNodes builds a rotating provider. A nil selector means
// RandomSelector.
func NewRotatingNodes(nodes []NodeAddress, selector Selector) (*RotatingNodes, error) {
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}
	if selector == nil {
		selector = RandomSelector{}
	}
	pool := make([]NodeAddress, len(nodes))
	copy(pool, nodes)
	return &RotatingNodes{
		nodes:    pool,
		selector: selector,
		last:     -1,
	}, nil
}

// Next implements NodeProvider.
func (r *RotatingNodes) Next() NodeAddress {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.selector.Select(len(r.nodes), r.last)
	r.last = i
	return r.nodes[i]
}

// Nodes returns a copy of the pool.
func (r *RotatingNodes) Nodes() []NodeAddress {
	out := make([]NodeAddress, len(r.nodes))
	copy(out, r.nodes)
	return out
}
