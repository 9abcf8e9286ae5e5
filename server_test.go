// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dapi

import (
	"context"
	"net"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fakeNode is an in-process masternode speaking the Platform and Core
// services with the client's own codec.
type fakeNode struct {
	mu       sync.Mutex
	handlers map[string]func(req message) (message, error)
	calls    map[string]int
	last     map[string]message
}

func newFakeNode() *fakeNode {
	return &fakeNode{
		handlers: map[string]func(message) (message, error){},
		calls:    map[string]int{},
		last:     map[string]message{},
	}
}

func (f *fakeNode) on(method string, h func(req message) (message, error)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[method] = h
}

// fail makes method answer with code.
func (f *fakeNode) fail(method string, code codes.Code) {
	f.on(method, func(message) (message, error) {
		return nil, status.Error(code, method+" failed")
	})
}

func (f *fakeNode) callCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeNode) lastRequest(method string) message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last[method]
}

func (f *fakeNode) handle(method string, req message) (message, error) {
	f.mu.Lock()
	f.calls[method]++
	f.last[method] = req
	h := f.handlers[method]
	f.mu.Unlock()

	if h == nil {
		return nil, status.Errorf(codes.Unimplemented, "%s not configured", method)
	}
	return h(req)
}

func (f *fakeNode) method(name string, newReq func() message) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(_ interface{}, _ context.Context, dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {
			req := newReq()
			if err := dec(req); err != nil {
				return nil, err
			}
			return f.handle(name, req)
		},
	}
}

// start serves f on a random loopback port and returns the port.
func (f *fakeNode) start(t *testing.T) int {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer(grpc.ForceServerCodec(protoCodec{}))
	srv.RegisterService(&grpc.ServiceDesc{
		ServiceName: platformService,
		HandlerType: (*interface{})(nil),
		Methods: []grpc.MethodDesc{
			f.method("applyStateTransition", func() message { return &ApplyStateTransitionRequest{} }),
			f.method("getIdentity", func() message { return &GetIdentityRequest{} }),
			f.method("getDataContract", func() message { return &GetDataContractRequest{} }),
			f.method("getDocuments", func() message { return &GetDocumentsRequest{} }),
		},
	}, f)
	srv.RegisterService(&grpc.ServiceDesc{
		ServiceName: coreService,
		HandlerType: (*interface{})(nil),
		Methods: []grpc.MethodDesc{
			f.method("getStatus", func() message { return &GetStatusRequest{} }),
			f.method("getBlock", func() message { return &GetBlockRequest{} }),
			f.method("sendTransaction", func() message { return &SendTransactionRequest{} }),
			f.method("getTransaction", func() message { return &GetTransactionRequest{} }),
		},
	}, f)

	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	return lis.Addr().(*net.TCPAddr).Port
}

// countingProvider counts how often a node is requested.
type countingProvider struct {
	NodeProvider
	n atomic.Int32
}

func (p *countingProvider) Next() NodeAddress {
	p.n.Add(1)
	return p.NodeProvider.Next()
}

func (p *countingProvider) count() int {
	return int(p.n.Load())
}

// newTestClient returns a client bound to node on loopback.
func newTestClient(t *testing.T, port int, opts ...Option) (*Client, *countingProvider) {
	t.Helper()

	provider := &countingProvider{NodeProvider: NewFixedNode("127.0.0.1")}
	opts = append([]Option{
		WithGRPCPort(port),
		WithLogger(zaptest.NewLogger(t)),
	}, opts...)
	client, err := New(provider, opts...)
	require.NoError(t, err)
	t.Cleanup(client.Shutdown)
	return client, provider
}

// fakeConn is a Conn that answers every call with err and records closes.
type fakeConn struct {
	err     error
	closed  atomic.Bool
	closeCh chan struct{} // blocks Close until closed, when set
}

func (c *fakeConn) Invoke(context.Context, string, interface{}, interface{}) error {
	return c.err
}

func (c *fakeConn) Close() error {
	if c.closeCh != nil {
		<-c.closeCh
	}
	c.closed.Store(true)
	return nil
}

// recordingOpener opens fakeConns and remembers the addresses asked for.
type recordingOpener struct {
	mu    sync.Mutex
	err   error
	addrs []NodeAddress
	conns []*fakeConn
	block chan struct{}
}

func (r *recordingOpener) open(addr NodeAddress, _ *options) (Conn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := &fakeConn{err: r.err, closeCh: r.block}
	r.addrs = append(r.addrs, addr)
	r.conns = append(r.conns, c)
	return c, nil
}

func (r *recordingOpener) opened() []NodeAddress {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]NodeAddress(nil), r.addrs...)
}
