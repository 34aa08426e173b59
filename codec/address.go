// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/formatting/address"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

// ConvertOwnerChainAddress re-encodes [sourceOwner], a bech32 address of a
// remote chain, with the human readable part of [localAddress].
//
// The payload is carried over untouched. Both addresses must use the same
// bech32 variant.
func ConvertOwnerChainAddress(localAddress string, sourceOwner string) (string, error) {
	_, sourceData, sourceVersion, err := bech32.DecodeGeneric(sourceOwner)
	if err != nil {
		return "", fmt.Errorf("%w: source owner %q: %w", ErrInvalidAddress, sourceOwner, err)
	}
	localHrp, _, localVersion, err := bech32.DecodeGeneric(localAddress)
	if err != nil {
		return "", fmt.Errorf("%w: local address %q: %w", ErrInvalidAddress, localAddress, err)
	}
	if sourceVersion != localVersion {
		return "", fmt.Errorf("%w: source owner %q, local address %q", ErrVariantMismatch, sourceOwner, localAddress)
	}

	var converted string
	switch localVersion {
	case bech32.VersionM:
		converted, err = bech32.EncodeM(localHrp, sourceData)
	default:
		converted, err = bech32.Encode(localHrp, sourceData)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return converted, nil
}

// Hrp returns the human readable part of a bech32 address.
func Hrp(addr string) (string, error) {
	hrp, _, err := address.ParseBech32(addr)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInvalidAddress, addr, err)
	}
	return hrp, nil
}

// ParseLocalAddress validates that [addr] is a bech32 address with the given
// [hrp] and returns its byte payload.
func ParseLocalAddress(hrp string, addr string) ([]byte, error) {
	phrp, payload, err := address.ParseBech32(addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidAddress, addr, err)
	}
	if phrp != hrp {
		return nil, ErrIncorrectHrp
	}
	return payload, nil
}
