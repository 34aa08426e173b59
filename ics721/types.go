// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ics721

import "encoding/json"

// ClassID is the canonical identifier of a class, e.g.
// "wasm.stars1.../channel-1/stars1...".
type ClassID string

func (c ClassID) String() string {
	return string(c)
}

// Class is the descriptor of an NFT collection carried across chains.
type Class struct {
	ID  ClassID `json:"id"`
	URI *string `json:"uri"`
	// Data is an optional, opaque payload set by the source chain. A nil slice
	// means the source did not send any.
	Data []byte `json:"data"`
}

// CollectionData is the baseline class data every ICS-721 contract sends.
type CollectionData struct {
	Owner        *string               `json:"owner"`
	ContractInfo *ContractInfoResponse `json:"contract_info"`
	Name         string                `json:"name"`
	Symbol       string                `json:"symbol"`
	NumTokens    *uint64               `json:"num_tokens"`
}

// ContractInfoResponse is the host's metadata of an instantiated contract.
type ContractInfoResponse struct {
	CodeID  uint64  `json:"code_id"`
	Creator string  `json:"creator"`
	Admin   *string `json:"admin"`
	Pinned  bool    `json:"pinned"`
	IbcPort *string `json:"ibc_port"`
}

// Env is the execution environment of the invoking contract.
type Env struct {
	Block    BlockInfo    `json:"block"`
	Contract ContractInfo `json:"contract"`
}

type BlockInfo struct {
	Height  uint64    `json:"height"`
	Time    Timestamp `json:"time"`
	ChainID string    `json:"chain_id"`
}

type ContractInfo struct {
	Address string `json:"address"`
}

// Ownership is the response of a cw-ownable {"ownership":{}} query.
type Ownership struct {
	Owner         *string         `json:"owner"`
	PendingOwner  *string         `json:"pending_owner"`
	PendingExpiry json.RawMessage `json:"pending_expiry"`
}

// NumTokensResponse is the response of a cw721 {"num_tokens":{}} query.
type NumTokensResponse struct {
	Count uint64 `json:"count"`
}

// CollectionNameResponse is the response of a cw721 {"contract_info":{}} query.
type CollectionNameResponse struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}
