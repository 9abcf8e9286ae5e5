// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dapi

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// openGRPC builds a plaintext channel. grpc.NewClient does not connect until
// the first call.
func openGRPC(addr NodeAddress, o *options) (Conn, error) {
	conn, err := grpc.NewClient(addr.GRPCAddr(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithIdleTimeout(o.idleTimeout),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(protoCodec{})),
	)
	if err != nil {
		return nil, fmt.Errorf("grpc dial: %w", err)
	}
	return &grpcConn{conn: conn}, nil
}

type grpcConn struct {
	conn *grpc.ClientConn
}

func (c *grpcConn) Invoke(ctx context.Context, method string, args, reply interface{}) error {
	return c.conn.Invoke(ctx, method, args, reply)
}

func (c *grpcConn) Close() error {
	return c.conn.Close()
}
