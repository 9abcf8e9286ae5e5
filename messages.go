// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dapi

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Service names of the v0 masternode API.
const (
	platformService = "org.dash.platform.dapi.v0.Platform"
	coreService     = "org.dash.platform.dapi.v0.Core"
)

// Platform

type ApplyStateTransitionRequest struct {
	StateTransition []byte
}

func (m *ApplyStateTransitionRequest) marshalProto() []byte {
	return appendBytes(nil, 1, m.StateTransition)
}

func (m *ApplyStateTransitionRequest) unmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return consumeBytes(typ, b, &m.StateTransition)
		}
		return 0
	})
}

type ApplyStateTransitionResponse struct{}

func (m *ApplyStateTransitionResponse) marshalProto() []byte { return nil }

func (m *ApplyStateTransitionResponse) unmarshalProto(b []byte) error {
	return consumeFields(b, func(protowire.Number, protowire.Type, []byte) int { return 0 })
}

type GetIdentityRequest struct {
	ID string
}

func (m *GetIdentityRequest) marshalProto() []byte {
	return appendString(nil, 1, m.ID)
}

func (m *GetIdentityRequest) unmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return consumeString(typ, b, &m.ID)
		}
		return 0
	})
}

type GetIdentityResponse struct {
	Identity []byte
}

func (m *GetIdentityResponse) marshalProto() []byte {
	return appendBytes(nil, 1, m.Identity)
}

func (m *GetIdentityResponse) unmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return consumeBytes(typ, b, &m.Identity)
		}
		return 0
	})
}

type GetDataContractRequest struct {
	ID string
}

func (m *GetDataContractRequest) marshalProto() []byte {
	return appendString(nil, 1, m.ID)
}

func (m *GetDataContractRequest) unmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return consumeString(typ, b, &m.ID)
		}
		return 0
	})
}

type GetDataContractResponse struct {
	DataContract []byte
}

func (m *GetDataContractResponse) marshalProto() []byte {
	return appendBytes(nil, 1, m.DataContract)
}

func (m *GetDataContractResponse) unmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return consumeBytes(typ, b, &m.DataContract)
		}
		return 0
	})
}

// GetDocumentsRequest carries the encoded query clauses verbatim. StartAfter
// and StartAt are alternatives; only a non-zero one goes on the wire.
type GetDocumentsRequest struct {
	DataContractID string
	DocumentType   string
	Where          []byte
	OrderBy        []byte
	Limit          uint32
	StartAfter     uint32
	StartAt        uint32
}

func (m *GetDocumentsRequest) marshalProto() []byte {
	b := appendString(nil, 1, m.DataContractID)
	b = appendString(b, 2, m.DocumentType)
	b = appendBytes(b, 3, m.Where)
	b = appendBytes(b, 4, m.OrderBy)
	b = appendUint32(b, 5, m.Limit)
	b = appendUint32(b, 6, m.StartAfter)
	return appendUint32(b, 7, m.StartAt)
}

func (m *GetDocumentsRequest) unmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeString(typ, b, &m.DataContractID)
		case 2:
			return consumeString(typ, b, &m.DocumentType)
		case 3:
			return consumeBytes(typ, b, &m.Where)
		case 4:
			return consumeBytes(typ, b, &m.OrderBy)
		case 5:
			return consumeUint32(typ, b, &m.Limit)
		case 6:
			return consumeUint32(typ, b, &m.StartAfter)
		case 7:
			return consumeUint32(typ, b, &m.StartAt)
		}
		return 0
	})
}

type GetDocumentsResponse struct {
	Documents [][]byte
}

func (m *GetDocumentsResponse) marshalProto() []byte {
	var b []byte
	for _, doc := range m.Documents {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, doc)
	}
	return b
}

func (m *GetDocumentsResponse) unmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num != 1 {
			return 0
		}
		var doc []byte
		n := consumeBytes(typ, b, &doc)
		if n > 0 {
			m.Documents = append(m.Documents, doc)
		}
		return n
	})
}

// Core

type GetStatusRequest struct{}

func (m *GetStatusRequest) marshalProto() []byte { return nil }

func (m *GetStatusRequest) unmarshalProto(b []byte) error {
	return consumeFields(b, func(protowire.Number, protowire.Type, []byte) int { return 0 })
}

type GetStatusResponse struct {
	CoreVersion     uint32
	ProtocolVersion uint32
	Blocks          uint32
	TimeOffset      uint32
	Connections     uint32
	Proxy           string
	Difficulty      float64
	Testnet         bool
	RelayFee        float64
	Errors          string
	Network         string
}

func (m *GetStatusResponse) marshalProto() []byte {
	b := appendUint32(nil, 1, m.CoreVersion)
	b = appendUint32(b, 2, m.ProtocolVersion)
	b = appendUint32(b, 3, m.Blocks)
	b = appendUint32(b, 4, m.TimeOffset)
	b = appendUint32(b, 5, m.Connections)
	b = appendString(b, 6, m.Proxy)
	b = appendDouble(b, 7, m.Difficulty)
	b = appendBool(b, 8, m.Testnet)
	b = appendDouble(b, 9, m.RelayFee)
	b = appendString(b, 10, m.Errors)
	return appendString(b, 11, m.Network)
}

func (m *GetStatusResponse) unmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeUint32(typ, b, &m.CoreVersion)
		case 2:
			return consumeUint32(typ, b, &m.ProtocolVersion)
		case 3:
			return consumeUint32(typ, b, &m.Blocks)
		case 4:
			return consumeUint32(typ, b, &m.TimeOffset)
		case 5:
			return consumeUint32(typ, b, &m.Connections)
		case 6:
			return consumeString(typ, b, &m.Proxy)
		case 7:
			return consumeDouble(typ, b, &m.Difficulty)
		case 8:
			return consumeBool(typ, b, &m.Testnet)
		case 9:
			return consumeDouble(typ, b, &m.RelayFee)
		case 10:
			return consumeString(typ, b, &m.Errors)
		case 11:
			return consumeString(typ, b, &m.Network)
		}
		return 0
	})
}

// GetBlockRequest selects a block by Height or, when Height is zero, by Hash.
type GetBlockRequest struct {
	Height uint32
	Hash   string
}

func (m *GetBlockRequest) marshalProto() []byte {
	if m.Height > 0 {
		return appendUint32(nil, 1, m.Height)
	}
	return appendString(nil, 2, m.Hash)
}

func (m *GetBlockRequest) unmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeUint32(typ, b, &m.Height)
		case 2:
			return consumeString(typ, b, &m.Hash)
		}
		return 0
	})
}

type GetBlockResponse struct {
	Block []byte
}

func (m *GetBlockResponse) marshalProto() []byte {
	return appendBytes(nil, 1, m.Block)
}

func (m *GetBlockResponse) unmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return consumeBytes(typ, b, &m.Block)
		}
		return 0
	})
}

type SendTransactionRequest struct {
	Transaction   []byte
	AllowHighFees bool
	BypassLimits  bool
}

func (m *SendTransactionRequest) marshalProto() []byte {
	b := appendBytes(nil, 1, m.Transaction)
	b = appendBool(b, 2, m.AllowHighFees)
	return appendBool(b, 3, m.BypassLimits)
}

func (m *SendTransactionRequest) unmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeBytes(typ, b, &m.Transaction)
		case 2:
			return consumeBool(typ, b, &m.AllowHighFees)
		case 3:
			return consumeBool(typ, b, &m.BypassLimits)
		}
		return 0
	})
}

type SendTransactionResponse struct {
	TransactionID string
}

func (m *SendTransactionResponse) marshalProto() []byte {
	return appendString(nil, 1, m.TransactionID)
}

func (m *SendTransactionResponse) unmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return consumeString(typ, b, &m.TransactionID)
		}
		return 0
	})
}

type GetTransactionRequest struct {
	ID string
}

func (m *GetTransactionRequest) marshalProto() []byte {
	return appendString(nil, 1, m.ID)
}

func (m *GetTransactionRequest) unmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return consumeString(typ, b, &m.ID)
		}
		return 0
	})
}

type GetTransactionResponse struct {
	Transaction []byte
}

func (m *GetTransactionResponse) marshalProto() []byte {
	return appendBytes(nil, 1, m.Transaction)
}

func (m *GetTransactionResponse) unmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return consumeBytes(typ, b, &m.Transaction)
		}
		return 0
	})
}
