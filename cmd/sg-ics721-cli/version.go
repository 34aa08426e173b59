// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/spf13/cobra"

	"github.com/stargaze/sg-ics721/consts"
)

const Version = "v0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI and ICS-721 versions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printValue(cmd, versionCmdResponse{
			Version: Version,
			ICS721:  consts.Version,
		})
	},
}

type versionCmdResponse struct {
	Version string `json:"version"`
	ICS721  string `json:"ics721"`
}

func (r versionCmdResponse) String() string {
	return r.Version + " (" + r.ICS721 + ")"
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
