// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/stargaze/sg-ics721/config"
	"github.com/stargaze/sg-ics721/ics721/snapshot"
	"github.com/stargaze/sg-ics721/sgics721"
	"github.com/stargaze/sg-ics721/trace"
)

const (
	configDirName = ".sg-ics721-cli"
	logMaxSizeMB  = 8
	logMaxBackups = 3
)

func init() {
	cobra.OnInitialize(initViper)
}

// initViper reads persisted defaults, e.g. the snapshot path, from
// ~/.sg-ics721-cli/config.yaml if it exists.
func initViper() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if homeDir, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(homeDir, configDirName))
	}
	viper.SetEnvPrefix("SG_ICS721")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "Error reading config:", err)
			os.Exit(1)
		}
	}
}

func isJSONOutputRequested(cmd *cobra.Command) (bool, error) {
	output, err := getConfigValue(cmd, "output", false)
	if err != nil {
		return false, fmt.Errorf("failed to get output format: %w", err)
	}
	return strings.ToLower(output) == "json", nil
}

func printValue(cmd *cobra.Command, v fmt.Stringer) error {
	isJSON, err := isJSONOutputRequested(cmd)
	if err != nil {
		return err
	}

	if isJSON {
		jsonBytes, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), v.String())
	return nil
}

func getConfigValue(cmd *cobra.Command, key string, required bool) (string, error) {
	// Check flags first
	if value, err := cmd.Flags().GetString(key); err == nil && value != "" {
		return value, nil
	}

	// Then check viper
	if value := viper.GetString(key); value != "" {
		return value, nil
	}

	if required {
		return "", fmt.Errorf("required value for %s not found", key)
	}

	return "", nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := getConfigValue(cmd, "config", false)
	if err != nil {
		return nil, err
	}
	var b []byte
	if path != "" {
		b, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	cfg, err := config.New(b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	levelStr, err := getConfigValue(cmd, "log-level", false)
	if err != nil {
		return nil, err
	}
	if levelStr != "" {
		level, err := logging.ToLevel(levelStr)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, level logging.Level) (logging.Logger, error) {
	cores := []logging.WrappedCore{
		logging.NewWrappedCore(level, nopCloser{cmd.ErrOrStderr()}, logging.Colors.ConsoleEncoder()),
	}
	logFile, err := getConfigValue(cmd, "log-file", false)
	if err != nil {
		return nil, err
	}
	if logFile != "" {
		w := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
			Compress:   true,
		}
		cores = append(cores, logging.NewWrappedCore(level, w, logging.Plain.FileEncoder()))
	}
	return logging.NewLogger("sg-ics721", cores...), nil
}

// nopCloser keeps the console writer open when the logger stops.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

// session is everything a command needs to run the contract.
type session struct {
	contract *sgics721.Contract
	log      logging.Logger
	close    func() error
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cmd, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	snapshotPath, err := getConfigValue(cmd, "snapshot", true)
	if err != nil {
		return nil, err
	}
	s, err := snapshot.Load(snapshotPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	tracer, err := trace.New(&cfg.Trace)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	contract, err := sgics721.New(cfg, log, tracer, prometheus.NewRegistry(), s)
	if err != nil {
		return nil, err
	}
	return &session{
		contract: contract,
		log:      log,
		close: func() error {
			log.Stop()
			return tracer.Close()
		},
	}, nil
}
