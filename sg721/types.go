// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sg721 holds the messages of the Stargaze collection contract that
// the ICS-721 contract sends and reads.
package sg721

import "github.com/stargaze/sg-ics721/ics721"

// CollectionInfoQuery is the name of the {"collection_info":{}} query.
const CollectionInfoQuery = "collection_info"

// InstantiateMsg creates a new sg721 collection contract.
type InstantiateMsg struct {
	Name           string         `json:"name"`
	Symbol         string         `json:"symbol"`
	Minter         string         `json:"minter"`
	CollectionInfo CollectionInfo `json:"collection_info"`
}

type CollectionInfo struct {
	Creator          string               `json:"creator"`
	Description      string               `json:"description"`
	Image            string               `json:"image"`
	ExternalLink     *string              `json:"external_link"`
	ExplicitContent  *bool                `json:"explicit_content"`
	StartTradingTime *ics721.Timestamp    `json:"start_trading_time"`
	RoyaltyInfo      *RoyaltyInfoResponse `json:"royalty_info"`
}

// CollectionInfoResponse has the same shape as [CollectionInfo].
type CollectionInfoResponse CollectionInfo

type RoyaltyInfoResponse struct {
	PaymentAddress string `json:"payment_address"`
	// Share is a decimal fraction, e.g. "0.05".
	Share string `json:"share"`
}
