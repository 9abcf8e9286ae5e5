// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dapi

import (
	"net/http"
	"net/http/httputil"

	"go.uber.org/zap"
)

// debugTransport logs every JSON-RPC exchange, bodies included.
type debugTransport struct {
	next   http.RoundTripper
	logger *zap.Logger
}

func (t *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if dump, err := httputil.DumpRequestOut(req, true); err == nil {
		t.logger.Debug("jrpc request", zap.ByteString("dump", dump))
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		t.logger.Debug("jrpc request failed", zap.String("url", req.URL.String()), zap.Error(err))
		return nil, err
	}

	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		t.logger.Debug("jrpc response", zap.ByteString("dump", dump))
	}
	return resp, nil
}

func (t *debugTransport) CloseIdleConnections() {
	if c, ok := t.next.(interface{ CloseIdleConnections() }); ok {
		c.CloseIdleConnections()
	}
}
