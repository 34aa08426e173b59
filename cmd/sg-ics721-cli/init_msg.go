// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/stargaze/sg-ics721/codec"
	"github.com/stargaze/sg-ics721/ics721"
	"github.com/stargaze/sg-ics721/sg721"
	"github.com/stargaze/sg-ics721/utils"
)

var initMsgCmd = &cobra.Command{
	Use:   "init-msg [class id]",
	Short: "Build the sg721 instantiate message for an incoming class",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("class id is required")
		}
		contract, err := getConfigValue(cmd, "contract", true)
		if err != nil {
			return fmt.Errorf("failed to get contract: %w", err)
		}
		class, err := classFromFlags(cmd, ics721.ClassID(args[0]))
		if err != nil {
			return err
		}
		chainID, err := cmd.Flags().GetString("chain-id")
		if err != nil {
			return err
		}
		height, err := cmd.Flags().GetUint64("height")
		if err != nil {
			return err
		}

		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		env := ics721.Env{
			Block: ics721.BlockInfo{
				Height:  height,
				Time:    ics721.TimestampFromTime(time.Now()),
				ChainID: chainID,
			},
			Contract: ics721.ContractInfo{Address: contract},
		}
		b, err := s.contract.InitMsg(cmd.Context(), env, class)
		if err != nil {
			return fmt.Errorf("failed to build instantiate message: %w", err)
		}
		var msg sg721.InstantiateMsg
		if err := codec.FromJSON(b, &msg); err != nil {
			return fmt.Errorf("failed to decode instantiate message: %w", err)
		}
		if isJSON, _ := isJSONOutputRequested(cmd); !isJSON {
			utils.Fprintf(cmd.ErrOrStderr(), "{{yellow}}class data:{{/}} %s\n", ics721.ParseClassData(class.Data).Status)
		}
		return printValue(cmd, initMsgCmdResponse{
			InstantiateMsg: &msg,
			Binary:         base64.StdEncoding.EncodeToString(b),
		})
	},
}

// classFromFlags reads the optional class data either inline, base64
// encoded, or from a file holding the raw JSON.
func classFromFlags(cmd *cobra.Command, id ics721.ClassID) (ics721.Class, error) {
	class := ics721.Class{ID: id}

	uri, err := cmd.Flags().GetString("class-uri")
	if err != nil {
		return class, err
	}
	if uri != "" {
		class.URI = &uri
	}

	inline, err := cmd.Flags().GetString("class-data")
	if err != nil {
		return class, err
	}
	path, err := cmd.Flags().GetString("class-data-file")
	if err != nil {
		return class, err
	}
	switch {
	case inline != "" && path != "":
		return class, errors.New("class-data and class-data-file are mutually exclusive")
	case inline != "":
		class.Data, err = base64.StdEncoding.DecodeString(inline)
		if err != nil {
			return class, fmt.Errorf("failed to decode class data: %w", err)
		}
	case path != "":
		class.Data, err = os.ReadFile(path)
		if err != nil {
			return class, fmt.Errorf("failed to read class data: %w", err)
		}
	}
	return class, nil
}

type initMsgCmdResponse struct {
	InstantiateMsg *sg721.InstantiateMsg `json:"instantiate_msg"`
	Binary         string                `json:"binary"`
}

func (r initMsgCmdResponse) String() string {
	b, err := base64.StdEncoding.DecodeString(r.Binary)
	if err != nil {
		return r.Binary
	}
	return string(b)
}

func init() {
	initMsgCmd.Flags().String("class-uri", "", "Class URI")
	initMsgCmd.Flags().String("class-data", "", "Class data, base64 encoded")
	initMsgCmd.Flags().String("class-data-file", "", "Path to the raw class data")
	initMsgCmd.Flags().String("chain-id", "stargaze-1", "Chain id of the local chain")
	initMsgCmd.Flags().Uint64("height", 0, "Block height of the local chain")
	rootCmd.AddCommand(initMsgCmd)
}
