// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dapi

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// startJRPC serves handler and returns its port.
func startJRPC(t *testing.T, handler http.HandlerFunc) int {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	_, port, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)
	p, err := strconv.Atoi(port)
	require.NoError(t, err)
	return p
}

func bestBlockHashHandler(t *testing.T, hits *atomic.Int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			Method string                 `json:"method"`
			Params map[string]interface{} `json:"params"`
			ID     uint64                 `json:"id"`
		}
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			return
		}
		assert.Equal(t, "getBestBlockHash", req.Method)
		assert.NotNil(t, req.Params)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"result":  "00000bafbc94add76cb75e2ec92894837288a481e5c005f6563d91623bf8bc2c",
			"id":      req.ID,
		})
	}
}

func TestGetBestBlockHash(t *testing.T) {
	var hits atomic.Int32
	port := startJRPC(t, bestBlockHashHandler(t, &hits))
	client, provider := newTestClient(t, DefaultGRPCPort, WithJRPCPort(port))

	hash, err := client.GetBestBlockHash(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "00000bafbc94add76cb75e2ec92894837288a481e5c005f6563d91623bf8bc2c", hash)
	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, 1, provider.count())

	// JSON-RPC is not torn down per call, only the gRPC channel is
	assert.True(t, client.State(TransportJSON).Live)
	assert.False(t, client.State(TransportGRPC).Live)

	client.Shutdown()
	assert.False(t, client.State(TransportJSON).Live)
}

func TestBestBlockHashFollowsRotationPolicy(t *testing.T) {
	var hits atomic.Int32
	port := startJRPC(t, bestBlockHashHandler(t, &hits))

	rotating, provider := newTestClient(t, DefaultGRPCPort, WithJRPCPort(port))
	for i := 0; i < 2; i++ {
		_, err := rotating.GetBestBlockHash(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 2, provider.count())

	reused, provider := newTestClient(t, DefaultGRPCPort, WithJRPCPort(port), WithRotation(false))
	for i := 0; i < 2; i++ {
		_, err := reused.GetBestBlockHash(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 1, provider.count())
	assert.Equal(t, int32(4), hits.Load())
}

func TestBestBlockHashHTTPError(t *testing.T) {
	port := startJRPC(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})
	core, logs := observer.New(zapcore.InfoLevel)
	client, _ := newTestClient(t, DefaultGRPCPort, WithJRPCPort(port), WithLogger(zap.New(core)))

	hash, err := client.GetBestBlockHash(context.Background())
	require.Error(t, err)
	assert.Empty(t, hash)
	assert.Contains(t, err.Error(), "503")

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)

	warnings := logs.FilterMessage("jRPC failed").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, int64(503), warnings[0].ContextMap()["status"])
}

func TestBestBlockHashRPCError(t *testing.T) {
	port := startJRPC(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","error":{"code":-32601,"message":"method not found"},"id":1}`))
	})
	client, _ := newTestClient(t, DefaultGRPCPort, WithJRPCPort(port))

	_, err := client.GetBestBlockHash(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "method not found")
}

func TestDebugLogsExchange(t *testing.T) {
	var hits atomic.Int32
	port := startJRPC(t, bestBlockHashHandler(t, &hits))
	core, logs := observer.New(zapcore.DebugLevel)
	client, _ := newTestClient(t, DefaultGRPCPort, WithJRPCPort(port), WithDebug(true), WithLogger(zap.New(core)))

	_, err := client.GetBestBlockHash(context.Background())
	require.NoError(t, err)

	requests := logs.FilterMessage("jrpc request").All()
	require.Len(t, requests, 1)
	assert.Contains(t, requests[0].ContextMap()["dump"], "getBestBlockHash")
	assert.Equal(t, 1, logs.FilterMessage("jrpc response").Len())
}
