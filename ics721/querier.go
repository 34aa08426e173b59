// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ics721

import (
	"context"
	"fmt"
)

// Querier reads from other contracts of the host chain. Implementations must
// not mutate state.
type Querier interface {
	// QueryWasmSmart sends [msg] to [contract] and decodes the JSON response
	// into [out].
	QueryWasmSmart(ctx context.Context, contract string, msg any, out any) error
	// QueryWasmContractInfo returns the host metadata of [contract].
	QueryWasmContractInfo(ctx context.Context, contract string) (*ContractInfoResponse, error)
}

// QueryMsg builds the {"<name>":{}} envelope used by parameterless queries.
func QueryMsg(name string) map[string]struct{} {
	return map[string]struct{}{name: {}}
}

const (
	OwnershipQuery    = "ownership"
	ContractInfoQuery = "contract_info"
	NumTokensQuery    = "num_tokens"
)

// QuerySmart wraps a smart query failure in [ErrQueryFailed].
func QuerySmart(ctx context.Context, q Querier, contract string, name string, out any) error {
	if err := q.QueryWasmSmart(ctx, contract, QueryMsg(name), out); err != nil {
		return fmt.Errorf("%w: %s of %s: %w", ErrQueryFailed, name, contract, err)
	}
	return nil
}

// QueryContractInfo wraps a contract info failure in [ErrQueryFailed].
func QueryContractInfo(ctx context.Context, q Querier, contract string) (*ContractInfoResponse, error) {
	info, err := q.QueryWasmContractInfo(ctx, contract)
	if err != nil {
		return nil, fmt.Errorf("%w: contract info of %s: %w", ErrQueryFailed, contract, err)
	}
	return info, nil
}

// GetOwner returns the cw-ownable owner of [collection], if any.
func GetOwner(ctx context.Context, q Querier, collection string) (*string, error) {
	var ownership Ownership
	if err := QuerySmart(ctx, q, collection, OwnershipQuery, &ownership); err != nil {
		return nil, err
	}
	return ownership.Owner, nil
}

// GetCollectionData collects the baseline class data of [collection].
func GetCollectionData(ctx context.Context, q Querier, collection string) (*CollectionData, error) {
	owner, err := GetOwner(ctx, q, collection)
	if err != nil {
		return nil, err
	}
	contractInfo, err := QueryContractInfo(ctx, q, collection)
	if err != nil {
		return nil, err
	}
	var names CollectionNameResponse
	if err := QuerySmart(ctx, q, collection, ContractInfoQuery, &names); err != nil {
		return nil, err
	}
	var numTokens NumTokensResponse
	if err := QuerySmart(ctx, q, collection, NumTokensQuery, &numTokens); err != nil {
		return nil, err
	}
	return &CollectionData{
		Owner:        owner,
		ContractInfo: contractInfo,
		Name:         names.Name,
		Symbol:       names.Symbol,
		NumTokens:    &numTokens.Count,
	}, nil
}
