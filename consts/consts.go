// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	// Name is the namespace used for metrics and the CLI.
	Name = "sg_ics721"

	// Version of the ICS-721 application this module speaks.
	Version = "ics721-1"

	// PlaceholderImage is the collection image used when the source chain does
	// not provide one.
	PlaceholderImage = "https://arkprotocol.io"

	DefaultDescription = ""
)
