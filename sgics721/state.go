// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sgics721

import (
	"github.com/stargaze/sg-ics721/ics721"
	"github.com/stargaze/sg-ics721/sg721"
)

// SgCollectionData is the class data sent by this contract: the baseline
// [ics721.CollectionData] fields, flattened, followed by the sg721 collection
// info.
type SgCollectionData struct {
	ics721.CollectionData
	CollectionInfo sg721.CollectionInfoResponse `json:"collection_info"`
}
