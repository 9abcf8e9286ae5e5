// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	rpc "github.com/gorilla/rpc/v2/json2"
)

// jsonConn is a JSON-RPC handle bound to one masternode.
type jsonConn struct {
	uri    string
	client *http.Client
}

func (c *jsonConn) Invoke(ctx context.Context, method string, params, reply interface{}) error {
	return SendJSONRequest(ctx, c.client, c.uri, method, params, reply)
}

// Close drops idle keep-alive connections. The client itself holds nothing
// else worth releasing.
func (c *jsonConn) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

// CleanlyCloseBody drains and closes an HTTP response body to prevent
// HTTP/2 GOAWAY errors caused by closing bodies with unread data.
// See: https://github.com/golang/go/issues/46071
func CleanlyCloseBody(body io.ReadCloser) error {
	if body == nil {
		return nil
	}
	_, _ = io.Copy(io.Discard, body)
	return body.Close()
}

// SendJSONRequest posts a single JSON-RPC call to uri and decodes its result
// into reply. A non-2xx answer is returned as *HTTPError.
func SendJSONRequest(
	ctx context.Context,
	client *http.Client,
	uri string,
	method string,
	params interface{},
	reply interface{},
) error {
	requestBodyBytes, err := rpc.EncodeClientRequest(method, params)
	if err != nil {
		return fmt.Errorf("failed to encode client params: %w", err)
	}

	request, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		uri,
		bytes.NewReader(requestBodyBytes),
	)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(request)
	if err != nil {
		return fmt.Errorf("failed to issue request: %w", err)
	}
	defer CleanlyCloseBody(resp.Body)

	// Return an error for any non successful status code
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{Method: method, StatusCode: resp.StatusCode}
	}

	if err := rpc.DecodeClientResponse(resp.Body, reply); err != nil {
		return fmt.Errorf("failed to decode client response: %w", err)
	}
	return nil
}
