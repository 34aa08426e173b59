// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sgics721

import "errors"

var (
	ErrOwnerConversion = errors.New("failed to convert source owner")
	ErrMarshalInitMsg  = errors.New("failed to marshal instantiate message")
)
