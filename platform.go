// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dapi

import (
	"context"
)

// ApplyStateTransition submits a serialized state transition.
func (c *Client) ApplyStateTransition(ctx context.Context, stateTransition []byte) error {
	req := &ApplyStateTransitionRequest{StateTransition: stateTransition}
	r := Invoke[ApplyStateTransitionResponse](ctx, c, TransportGRPC, opApplyStateTransition, req)
	return r.Err
}

// GetIdentity fetches a serialized identity. It returns nil, nil when the
// identity does not exist.
func (c *Client) GetIdentity(ctx context.Context, id string) ([]byte, error) {
	req := &GetIdentityRequest{ID: id}
	r := Invoke[GetIdentityResponse](ctx, c, TransportGRPC, opGetIdentity, req)
	return Normalize(r, func(resp *GetIdentityResponse) ([]byte, bool) {
		return nonEmpty(resp.Identity)
	}).Get()
}

// GetDataContract fetches a serialized data contract. It returns nil, nil
// when the contract does not exist.
func (c *Client) GetDataContract(ctx context.Context, contractID string) ([]byte, error) {
	req := &GetDataContractRequest{ID: contractID}
	r := Invoke[GetDataContractResponse](ctx, c, TransportGRPC, opGetDataContract, req)
	return Normalize(r, func(resp *GetDataContractResponse) ([]byte, bool) {
		return nonEmpty(resp.DataContract)
	}).Get()
}

// GetDocuments returns the serialized documents of documentType in the
// contract that match query. No match is an empty, non-nil slice.
func (c *Client) GetDocuments(ctx context.Context, contractID, documentType string, query *DocumentQuery) ([][]byte, error) {
	req, err := query.request(contractID, documentType)
	if err != nil {
		return nil, err
	}
	r := Invoke[GetDocumentsResponse](ctx, c, TransportGRPC, opGetDocuments, req)
	if r.Err != nil {
		return nil, r.Err
	}
	docs := r.Value.Documents
	if docs == nil {
		docs = [][]byte{}
	}
	return docs, nil
}
