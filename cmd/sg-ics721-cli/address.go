// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stargaze/sg-ics721/codec"
)

var convertAddressCmd = &cobra.Command{
	Use:   "convert-address [owner]",
	Short: "Convert a foreign owner address to the prefix of the ICS-721 contract",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("owner address is required")
		}
		local, err := getConfigValue(cmd, "contract", true)
		if err != nil {
			return fmt.Errorf("failed to get contract: %w", err)
		}
		hrp, err := codec.Hrp(local)
		if err != nil {
			return fmt.Errorf("failed to read contract prefix: %w", err)
		}
		converted, err := codec.ConvertOwnerChainAddress(local, args[0])
		if err != nil {
			return err
		}
		payload, err := codec.ParseLocalAddress(hrp, converted)
		if err != nil {
			return err
		}
		return printValue(cmd, convertAddressCmdResponse{
			Owner:     args[0],
			Converted: converted,
			Hrp:       hrp,
			Length:    len(payload),
		})
	},
}

type convertAddressCmdResponse struct {
	Owner     string `json:"owner"`
	Converted string `json:"converted"`
	Hrp       string `json:"hrp"`
	Length    int    `json:"length"`
}

func (r convertAddressCmdResponse) String() string {
	return r.Converted
}

func init() {
	rootCmd.AddCommand(convertAddressCmd)
}
