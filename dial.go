// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dapi

import (
	"fmt"
	"net"
	"net/http"
)

// open builds a handle of the given kind for addr.
func open(kind TransportKind, addr NodeAddress, o *options) (Conn, error) {
	fn, err := lookupOpener(kind, o)
	if err != nil {
		return nil, err
	}
	conn, err := fn(addr, o)
	if err != nil {
		return nil, fmt.Errorf("open %s connection to %s: %w", kind, addr, err)
	}
	return conn, nil
}

// openJSON builds an HTTP client bound to the node's JSON-RPC endpoint.
func openJSON(addr NodeAddress, o *options) (Conn, error) {
	return &jsonConn{
		uri:    addr.JRPCURL(),
		client: newHTTPClient(o),
	}, nil
}

// newHTTPClient bounds connect, response and overall time by the same
// duration. In debug mode requests and responses are logged in full.
func newHTTPClient(o *options) *http.Client {
	timeout := o.jrpcTimeout
	var transport http.RoundTripper = &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: timeout}).DialContext,
		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
	}
	if o.debug {
		transport = &debugTransport{next: transport, logger: o.logger}
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
