// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dapi

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Defaults
const (
	DefaultShutdownTimeout = 5 * time.Second
	DefaultIdleTimeout     = 5 * time.Second
	DefaultJRPCTimeout     = 10 * time.Second
)

// Client talks to one masternode at a time over gRPC and JSON-RPC. Calls on
// one Client are serialized.
type Client struct {
	mu      sync.Mutex
	conns   *connManager
	logger  *zap.Logger
	metrics *Metrics
}

// Option configures a Client
type Option func(*options)

type options struct {
	rotate          bool
	debug           bool
	grpcPort        int
	jrpcPort        int
	shutdownTimeout time.Duration
	idleTimeout     time.Duration
	jrpcTimeout     time.Duration
	logger          *zap.Logger
	metrics         *Metrics
	openers         map[TransportKind]opener
}

func defaultOptions() *options {
	return &options{
		rotate:          true,
		grpcPort:        DefaultGRPCPort,
		jrpcPort:        DefaultJRPCPort,
		shutdownTimeout: DefaultShutdownTimeout,
		idleTimeout:     DefaultIdleTimeout,
		jrpcTimeout:     DefaultJRPCTimeout,
		logger:          zap.NewNop(),
		openers:         map[TransportKind]opener{},
	}
}

// WithRotation chooses between a fresh connection, possibly to another
// masternode, on every call (true, the default) and one connection reused
// until Shutdown (false).
func WithRotation(rotate bool) Option {
	return func(o *options) { o.rotate = rotate }
}

// WithDebug logs JSON-RPC requests and responses in full
func WithDebug(debug bool) Option {
	return func(o *options) { o.debug = debug }
}

// WithGRPCPort sets the gRPC port used for nodes that do not carry their own
func WithGRPCPort(port int) Option {
	return func(o *options) { o.grpcPort = port }
}

// WithJRPCPort sets the JSON-RPC port used for nodes that do not carry their own
func WithJRPCPort(port int) Option {
	return func(o *options) { o.jrpcPort = port }
}

// WithShutdownTimeout bounds the wait for a connection to close
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *options) { o.shutdownTimeout = d }
}

// WithIdleTimeout sets the idle timeout of gRPC channels
func WithIdleTimeout(d time.Duration) Option {
	return func(o *options) { o.idleTimeout = d }
}

// WithJRPCTimeout sets the connect, response and overall JSON-RPC timeout
func WithJRPCTimeout(d time.Duration) Option {
	return func(o *options) { o.jrpcTimeout = d }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records calls and connection events on m
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// withOpener overrides how handles of kind are opened
func withOpener(kind TransportKind, fn opener) Option {
	return func(o *options) { o.openers[kind] = fn }
}

// New creates a client that asks provider for the masternode of each new
// connection. No connection is made until the first call.
func New(provider NodeProvider, opts ...Option) (*Client, error) {
	if provider == nil {
		return nil, ErrNoNodes
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Client{
		conns:   newConnManager(provider, o),
		logger:  o.logger,
		metrics: o.metrics,
	}, nil
}

// NewWithAddress creates a client bound to a single masternode given as
// "host" or "host:grpcPort".
func NewWithAddress(address string, opts ...Option) (*Client, error) {
	addr, err := ParseNodeAddress(address)
	if err != nil {
		return nil, err
	}
	return New(FixedNode(addr), opts...)
}

// State returns a snapshot of the connection state of kind.
func (c *Client) State(kind TransportKind) ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conns.state(kind).ConnectionState
}

// Shutdown closes every open connection. It is safe to call more than once,
// and before any call was made. A later call opens a new connection.
func (c *Client) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger.Info("shutdown",
		zap.Bool("grpc", c.conns.state(TransportGRPC).Live),
		zap.Bool("json", c.conns.state(TransportJSON).Live))
	c.conns.shutdownAll()
}
