// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dapi

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Operation describes one remote procedure.
type Operation struct {
	Service string
	Method  string

	// NotFoundIsAbsent maps a not-found status to OutcomeNotFound instead of
	// an error.
	NotFoundIsAbsent bool
}

// path returns the method name as the transport expects it.
func (op Operation) path(kind TransportKind) string {
	if kind == TransportGRPC {
		return "/" + op.Service + "/" + op.Method
	}
	return op.Method
}

var (
	opApplyStateTransition = Operation{Service: platformService, Method: "applyStateTransition"}
	opGetIdentity          = Operation{Service: platformService, Method: "getIdentity", NotFoundIsAbsent: true}
	opGetDataContract      = Operation{Service: platformService, Method: "getDataContract", NotFoundIsAbsent: true}
	opGetDocuments         = Operation{Service: platformService, Method: "getDocuments"}

	opGetStatus       = Operation{Service: coreService, Method: "getStatus"}
	opGetBlock        = Operation{Service: coreService, Method: "getBlock", NotFoundIsAbsent: true}
	opSendTransaction = Operation{Service: coreService, Method: "sendTransaction"}
	opGetTransaction  = Operation{Service: coreService, Method: "getTransaction", NotFoundIsAbsent: true}

	opGetBestBlockHash = Operation{Method: "getBestBlockHash"}
)

// Invoke runs exactly one remote call of op over kind and returns its tagged
// outcome. The handle is released on every path.
func Invoke[Resp any](ctx context.Context, c *Client, kind TransportKind, op Operation, req interface{}) (r Result[*Resp]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	defer func() {
		c.conns.release(kind)
		c.metrics.observeCall(op.Method, r.Outcome, time.Since(start))
	}()

	conn, err := c.conns.acquire(kind)
	if err != nil {
		c.logger.Warn("RPC failed", zap.String("method", op.Method), zap.Error(err))
		return failedResult[*Resp](err)
	}

	reply := new(Resp)
	if err := conn.Invoke(ctx, op.path(kind), req, reply); err != nil {
		return classify[*Resp](c.logger, kind, op, err)
	}
	return okResult(reply)
}

// classify turns a call failure into NotFound or a propagated error.
func classify[T any](logger *zap.Logger, kind TransportKind, op Operation, err error) Result[T] {
	if kind != TransportGRPC {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			logger.Warn("jRPC failed",
				zap.String("method", op.Method),
				zap.Int("status", httpErr.StatusCode))
		} else {
			logger.Warn("jRPC failed", zap.String("method", op.Method), zap.Error(err))
		}
		return failedResult[T](err)
	}

	st := status.Convert(err)
	if st.Code() == codes.NotFound && op.NotFoundIsAbsent {
		logger.Debug("RPC not found",
			zap.String("method", op.Method),
			zap.String("message", st.Message()))
		return notFoundResult[T]()
	}

	logger.Warn("RPC failed",
		zap.String("method", op.Method),
		zap.Stringer("status", st.Code()),
		zap.String("message", st.Message()))
	return failedResult[T](newTransportError(op.Method, err))
}
