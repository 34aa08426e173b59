// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stargaze/sg-ics721/codec"
	"github.com/stargaze/sg-ics721/sgics721"
)

var classDataCmd = &cobra.Command{
	Use:   "class-data [collection]",
	Short: "Compose the class data sent with an outgoing class",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("collection address is required")
		}
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		data, err := s.contract.GetClassData(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get class data: %w", err)
		}
		b, err := codec.ToJSONBinary(data)
		if err != nil {
			return fmt.Errorf("failed to marshal class data: %w", err)
		}
		return printValue(cmd, classDataCmdResponse{
			ClassData: data,
			Binary:    base64.StdEncoding.EncodeToString(b),
		})
	},
}

type classDataCmdResponse struct {
	ClassData *sgics721.SgCollectionData `json:"class_data"`
	// Binary is the class data as it is attached to the class.
	Binary string `json:"binary"`
}

func (r classDataCmdResponse) String() string {
	return r.Binary
}

func init() {
	rootCmd.AddCommand(classDataCmd)
}
