// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ics721

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stargaze/sg-ics721/codec"
)

func TestParseClassData(t *testing.T) {
	owner := "cosmos1owner"
	count := uint64(3)

	tests := []struct {
		name     string
		data     []byte
		status   ClassDataStatus
		expected *CollectionData
	}{
		{
			name:   "absent",
			data:   nil,
			status: ClassDataAbsent,
		},
		{
			name:   "empty",
			data:   []byte{},
			status: ClassDataMalformed,
		},
		{
			name:   "not json",
			data:   []byte("ipfs://class"),
			status: ClassDataMalformed,
		},
		{
			name:   "null",
			data:   []byte("null"),
			status: ClassDataMalformed,
		},
		{
			name:   "missing symbol",
			data:   []byte(`{"name":"N"}`),
			status: ClassDataMalformed,
		},
		{
			name:   "wrong type",
			data:   []byte(`{"name":"N","symbol":"S","num_tokens":"3"}`),
			status: ClassDataMalformed,
		},
		{
			name:     "name and symbol only",
			data:     []byte(`{"name":"N","symbol":"S"}`),
			status:   ClassDataDecoded,
			expected: &CollectionData{Name: "N", Symbol: "S"},
		},
		{
			name:     "empty name and symbol",
			data:     []byte(`{"name":"","symbol":""}`),
			status:   ClassDataDecoded,
			expected: &CollectionData{},
		},
		{
			name:   "full record",
			data:   []byte(`{"owner":"cosmos1owner","contract_info":{"code_id":1,"creator":"c","admin":null,"pinned":false,"ibc_port":null},"name":"N","symbol":"S","num_tokens":3}`),
			status: ClassDataDecoded,
			expected: &CollectionData{
				Owner:        &owner,
				ContractInfo: &ContractInfoResponse{CodeID: 1, Creator: "c"},
				Name:         "N",
				Symbol:       "S",
				NumTokens:    &count,
			},
		},
		{
			name:     "optional fields null",
			data:     []byte(`{"owner":null,"contract_info":null,"name":"N","symbol":"S","num_tokens":null}`),
			status:   ClassDataDecoded,
			expected: &CollectionData{Name: "N", Symbol: "S"},
		},
		{
			name:   "extended record",
			data:   []byte(`{"owner":null,"contract_info":null,"name":"N","symbol":"S","num_tokens":null,"collection_info":{"creator":"c"}}`),
			status: ClassDataMalformed,
		},
		{
			name:   "upper case keys",
			data:   []byte(`{"NAME":"N","SYMBOL":"S"}`),
			status: ClassDataMalformed,
		},
		{
			name:   "mixed case key next to exact ones",
			data:   []byte(`{"name":"N","symbol":"S","Owner":"cosmos1owner"}`),
			status: ClassDataMalformed,
		},
		{
			name:   "null name",
			data:   []byte(`{"name":null,"symbol":"S"}`),
			status: ClassDataMalformed,
		},
		{
			name:   "empty contract info",
			data:   []byte(`{"contract_info":{},"name":"N","symbol":"S"}`),
			status: ClassDataMalformed,
		},
		{
			name:   "contract info without pinned",
			data:   []byte(`{"contract_info":{"code_id":1,"creator":"c"},"name":"N","symbol":"S"}`),
			status: ClassDataMalformed,
		},
		{
			name:   "contract info with unknown key",
			data:   []byte(`{"contract_info":{"code_id":1,"creator":"c","pinned":false,"label":"l"},"name":"N","symbol":"S"}`),
			status: ClassDataMalformed,
		},
		{
			name:     "contract info without optional fields",
			data:     []byte(`{"contract_info":{"code_id":1,"creator":"c","pinned":true},"name":"N","symbol":"S"}`),
			status:   ClassDataDecoded,
			expected: &CollectionData{ContractInfo: &ContractInfoResponse{CodeID: 1, Creator: "c", Pinned: true}, Name: "N", Symbol: "S"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			parsed := ParseClassData(tt.data)
			require.Equal(tt.status, parsed.Status)
			require.Equal(tt.expected, parsed.Data)
			require.Equal(tt.status == ClassDataDecoded, parsed.Usable())
			if tt.status == ClassDataMalformed {
				require.Error(parsed.Err)
			} else {
				require.NoError(parsed.Err)
			}
		})
	}
}

func TestCollectionDataRoundTrip(t *testing.T) {
	require := require.New(t)

	owner := "stars1owner"
	admin := "stars1admin"
	count := uint64(42)
	data := &CollectionData{
		Owner:        &owner,
		ContractInfo: &ContractInfoResponse{CodeID: 12, Creator: "stars1creator", Admin: &admin, Pinned: true},
		Name:         "Name",
		Symbol:       "SYM",
		NumTokens:    &count,
	}
	b, err := codec.ToJSONBinary(data)
	require.NoError(err)

	parsed := ParseClassData(b)
	require.Equal(ClassDataDecoded, parsed.Status)
	require.Equal(data, parsed.Data)
}

func TestClassDataStatusString(t *testing.T) {
	require := require.New(t)

	require.Equal("absent", ClassDataAbsent.String())
	require.Equal("decoded", ClassDataDecoded.String())
	require.Equal("malformed", ClassDataMalformed.String())
	require.Equal("unknown(9)", ClassDataStatus(9).String())
}
