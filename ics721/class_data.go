// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ics721

import (
	"fmt"

	"github.com/stargaze/sg-ics721/codec"
)

type ClassDataStatus uint8

const (
	ClassDataAbsent ClassDataStatus = iota
	ClassDataDecoded
	ClassDataMalformed
)

func (s ClassDataStatus) String() string {
	switch s {
	case ClassDataAbsent:
		return "absent"
	case ClassDataDecoded:
		return "decoded"
	case ClassDataMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// ParsedClassData is the outcome of reading the optional data of a class.
// [Data] is set only when [Status] is [ClassDataDecoded] and [Err] only when
// it is [ClassDataMalformed].
type ParsedClassData struct {
	Status ClassDataStatus
	Data   *CollectionData
	Err    error
}

// Usable reports whether the source chain supplied collection data that can
// be used. Absent and malformed payloads are handled alike.
func (p ParsedClassData) Usable() bool {
	return p.Status == ClassDataDecoded
}

var (
	collectionDataFields = codec.Fields{
		Required: []string{"name", "symbol"},
		Optional: []string{"owner", "contract_info", "num_tokens"},
	}
	contractInfoFields = codec.Fields{
		Required: []string{"code_id", "creator", "pinned"},
		Optional: []string{"admin", "ibc_port"},
	}
)

// ParseClassData decodes [data] as [CollectionData]. Decoding is strict: keys
// match exactly, unknown keys are rejected and every non-optional field,
// including those of a present contract_info, is required. Extended class
// data of other chains is therefore malformed here.
func ParseClassData(data []byte) ParsedClassData {
	if data == nil {
		return ParsedClassData{Status: ClassDataAbsent}
	}
	var d CollectionData
	raw, err := codec.FromJSONStrict(data, collectionDataFields, &d)
	if err != nil {
		return ParsedClassData{Status: ClassDataMalformed, Err: err}
	}
	if d.ContractInfo != nil {
		var info ContractInfoResponse
		if _, err := codec.FromJSONStrict(raw["contract_info"], contractInfoFields, &info); err != nil {
			return ParsedClassData{Status: ClassDataMalformed, Err: fmt.Errorf("contract_info: %w", err)}
		}
	}
	return ParsedClassData{Status: ClassDataDecoded, Data: &d}
}
