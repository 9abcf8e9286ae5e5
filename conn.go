// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dapi

import (
	"time"

	"go.uber.org/zap"
)

// ConnectionState describes the handle of one transport. Live implies the
// handle was opened for Address.
type ConnectionState struct {
	Address NodeAddress
	Live    bool
}

type connState struct {
	ConnectionState
	conn Conn
}

// connManager owns the handles of a client. It is not safe for concurrent
// use; the Client serializes access.
type connManager struct {
	provider NodeProvider
	opts     *options
	logger   *zap.Logger
	metrics  *Metrics
	states   map[TransportKind]*connState
}

func newConnManager(provider NodeProvider, o *options) *connManager {
	return &connManager{
		provider: provider,
		opts:     o,
		logger:   o.logger,
		metrics:  o.metrics,
		states: map[TransportKind]*connState{
			TransportGRPC: {},
			TransportJSON: {},
		},
	}
}

func (m *connManager) state(kind TransportKind) *connState {
	st, ok := m.states[kind]
	if !ok {
		st = &connState{}
		m.states[kind] = st
	}
	return st
}

// acquire returns a usable handle for kind. Under the reuse policy a live
// handle is returned as is and the provider is not consulted.
func (m *connManager) acquire(kind TransportKind) (Conn, error) {
	st := m.state(kind)
	if !m.opts.rotate && st.Live {
		return st.conn, nil
	}

	addr := m.provider.Next().withPorts(m.opts.grpcPort, m.opts.jrpcPort)
	conn, err := open(kind, addr, m.opts)
	if err != nil {
		return nil, err
	}
	if st.Live {
		// superseded JSON handle under rotation
		m.close(kind, st)
	}

	st.conn = conn
	st.Address = addr
	st.Live = true
	m.metrics.connectionEvent(kind, connOpened)
	m.logger.Debug("connection opened",
		zap.String("transport", string(kind)),
		zap.String("masternode", addr.Host))
	return conn, nil
}

// release tears down the gRPC handle after a call under the rotation policy.
// The JSON handle is only replaced or shut down.
func (m *connManager) release(kind TransportKind) {
	if !m.opts.rotate || kind != TransportGRPC {
		return
	}
	if st := m.state(kind); st.Live {
		m.close(kind, st)
	}
}

// shutdownAll closes every live handle regardless of policy.
func (m *connManager) shutdownAll() {
	for _, kind := range []TransportKind{TransportGRPC, TransportJSON} {
		if st := m.state(kind); st.Live {
			m.close(kind, st)
		}
	}
}

// close marks st dead and closes its handle, waiting at most
// shutdownTimeout. A handle that does not close in time is abandoned.
func (m *connManager) close(kind TransportKind, st *connState) {
	conn, addr := st.conn, st.Address
	st.conn = nil
	st.Live = false

	done := make(chan error, 1)
	go func() {
		done <- conn.Close()
	}()

	timer := time.NewTimer(m.opts.shutdownTimeout)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			m.logger.Debug("connection close failed",
				zap.String("transport", string(kind)),
				zap.String("masternode", addr.Host),
				zap.Error(err))
		}
		m.metrics.connectionEvent(kind, connClosed)
		m.logger.Debug("connection closed",
			zap.String("transport", string(kind)),
			zap.String("masternode", addr.Host))
	case <-timer.C:
		m.metrics.connectionEvent(kind, connAbandoned)
		m.logger.Warn("connection did not close in time, abandoning it",
			zap.String("transport", string(kind)),
			zap.String("masternode", addr.Host),
			zap.Duration("timeout", m.opts.shutdownTimeout))
	}
}
