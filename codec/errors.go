// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "errors"

var (
	ErrInvalidAddress  = errors.New("invalid bech32 address")
	ErrVariantMismatch = errors.New("bech32 variant mismatch")
	ErrIncorrectHrp    = errors.New("incorrect hrp")
	ErrEmptyPayload    = errors.New("empty json payload")
	ErrUnknownField    = errors.New("unknown field")
	ErrMissingField    = errors.New("missing field")
)
