// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sg721

import (
	"context"

	"github.com/stargaze/sg-ics721/ics721"
)

// QueryCollectionInfo returns the collection info of [collection].
func QueryCollectionInfo(ctx context.Context, q ics721.Querier, collection string) (*CollectionInfoResponse, error) {
	var info CollectionInfoResponse
	if err := ics721.QuerySmart(ctx, q, collection, CollectionInfoQuery, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
