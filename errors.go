// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dapi

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrPreconditionViolation is returned for bad caller input, before any
	// connection is acquired.
	ErrPreconditionViolation = errors.New("dapi: precondition violation")

	// ErrNoNodes is returned when a node provider is built without candidates.
	ErrNoNodes = errors.New("dapi: no masternodes configured")
)

// preconditionf wraps ErrPreconditionViolation with a formatted reason.
func preconditionf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrPreconditionViolation, fmt.Sprintf(format, args...))
}

// TransportError is a failed binary RPC call other than a normalized
// not-found.
type TransportError struct {
	Method  string
	Code    codes.Code
	Message string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("rpc %s failed: code = %s desc = %s", e.Method, e.Code, e.Message)
}

// GRPCStatus lets status.FromError and status.Code see through the error.
func (e *TransportError) GRPCStatus() *status.Status {
	return status.New(e.Code, e.Message)
}

func newTransportError(method string, err error) *TransportError {
	st := status.Convert(err)
	return &TransportError{
		Method:  method,
		Code:    st.Code(),
		Message: st.Message(),
	}
}

// HTTPError is a non-2xx answer on the JSON-RPC path.
type HTTPError struct {
	Method     string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("jrpc %s: received status code: %d", e.Method, e.StatusCode)
}
