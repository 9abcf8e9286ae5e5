// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dapi

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// DocumentQuery selects, orders and pages documents of one type.
//
// Where holds clauses such as []interface{}{"name", "==", "alice"} and
// OrderBy holds pairs such as []interface{}{"name", "asc"}. Both are CBOR
// encoded on the wire.
type DocumentQuery struct {
	Where      []interface{}
	OrderBy    []interface{}
	Limit      uint32
	StartAfter uint32
	StartAt    uint32
}

// EncodeWhere returns the CBOR encoding of the where clauses. No clauses
// encode as an empty array.
func (q *DocumentQuery) EncodeWhere() ([]byte, error) {
	return encodeClauses(q.Where)
}

// EncodeOrderBy returns the CBOR encoding of the order-by clauses.
func (q *DocumentQuery) EncodeOrderBy() ([]byte, error) {
	return encodeClauses(q.OrderBy)
}

func encodeClauses(clauses []interface{}) ([]byte, error) {
	if clauses == nil {
		clauses = []interface{}{}
	}
	b, err := cbor.Marshal(clauses)
	if err != nil {
		return nil, fmt.Errorf("encode query clauses: %w", err)
	}
	return b, nil
}

func (q *DocumentQuery) validate() error {
	if q.StartAfter > 0 && q.StartAt > 0 {
		return preconditionf("startAfter and startAt are mutually exclusive")
	}
	return nil
}

func (q *DocumentQuery) request(contractID, documentType string) (*GetDocumentsRequest, error) {
	if q == nil {
		q = &DocumentQuery{}
	}
	if err := q.validate(); err != nil {
		return nil, err
	}
	where, err := q.EncodeWhere()
	if err != nil {
		return nil, err
	}
	orderBy, err := q.EncodeOrderBy()
	if err != nil {
		return nil, err
	}
	return &GetDocumentsRequest{
		DataContractID: contractID,
		DocumentType:   documentType,
		Where:          where,
		OrderBy:        orderBy,
		Limit:          q.Limit,
		StartAfter:     q.StartAfter,
		StartAt:        q.StartAt,
	}, nil
}
