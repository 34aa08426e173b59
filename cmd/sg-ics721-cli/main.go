// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "sg-ics721-cli",
	Short:        "Inspect ICS-721 class data and sg721 instantiate messages",
	Long:         `A CLI application that runs the sg-ics721 class translation against a snapshot of chain state.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format (text or json)")
	rootCmd.PersistentFlags().String("snapshot", "", "Path to a JSON snapshot of contract state")
	rootCmd.PersistentFlags().String("contract", "", "Address of the ICS-721 contract")
	rootCmd.PersistentFlags().String("config", "", "Path to a JSON contract config")
	rootCmd.PersistentFlags().String("log-level", "", "Override the configured log level")
	rootCmd.PersistentFlags().String("log-file", "", "Also write logs to this file, rotated")
}

func main() {
	Execute()
}
