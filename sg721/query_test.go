// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sg721

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stargaze/sg-ics721/codec"
	"github.com/stargaze/sg-ics721/ics721"
	"github.com/stargaze/sg-ics721/ics721/snapshot"
)

func TestQueryCollectionInfo(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	link := "https://badkids.art"
	explicit := false
	start := ics721.Timestamp(1_700_000_000_000_000_000)
	expected := &CollectionInfoResponse{
		Creator:          "stars1creator",
		Description:      "Bad Kids is a collection of 9999 bad drawings",
		Image:            "ipfs://bafy/image.png",
		ExternalLink:     &link,
		ExplicitContent:  &explicit,
		StartTradingTime: &start,
		RoyaltyInfo:      &RoyaltyInfoResponse{PaymentAddress: "stars1royalty", Share: "0.05"},
	}

	s := snapshot.New()
	require.NoError(s.SetSmart("stars1collection", CollectionInfoQuery, expected))

	info, err := QueryCollectionInfo(ctx, s, "stars1collection")
	require.NoError(err)
	require.Equal(expected, info)

	_, err = QueryCollectionInfo(ctx, s, "stars1missing")
	require.ErrorIs(err, ics721.ErrQueryFailed)
}

func TestInstantiateMsgJSON(t *testing.T) {
	require := require.New(t)

	msg := InstantiateMsg{
		Name:   "wasm.stars1/channel-0/stars1",
		Symbol: "wasm.stars1/channel-0/stars1",
		Minter: "stars1ics721",
		CollectionInfo: CollectionInfo{
			Creator: "stars1creator",
			Image:   "https://arkprotocol.io",
		},
	}
	b, err := codec.ToJSONBinary(msg)
	require.NoError(err)
	require.JSONEq(`{
		"name": "wasm.stars1/channel-0/stars1",
		"symbol": "wasm.stars1/channel-0/stars1",
		"minter": "stars1ics721",
		"collection_info": {
			"creator": "stars1creator",
			"description": "",
			"image": "https://arkprotocol.io",
			"external_link": null,
			"explicit_content": null,
			"start_trading_time": null,
			"royalty_info": null
		}
	}`, string(b))
}
