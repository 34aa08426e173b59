// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ics721

import "errors"

var ErrQueryFailed = errors.New("query failed")
