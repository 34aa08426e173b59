// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package snapshot serves contract queries from a JSON dump of chain state.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/stargaze/sg-ics721/codec"
	"github.com/stargaze/sg-ics721/ics721"
)

var _ ics721.Querier = (*Snapshot)(nil)

var (
	ErrContractNotFound = errors.New("contract not found")
	ErrUnsupportedQuery = errors.New("unsupported query")
	ErrInvalidQuery     = errors.New("invalid query")
)

type Contract struct {
	Info  *ics721.ContractInfoResponse `json:"info"`
	Smart map[string]json.RawMessage   `json:"smart"`
}

// Snapshot maps contract addresses to their recorded query responses. Smart
// responses are keyed by the query name, e.g. "num_tokens".
type Snapshot struct {
	Contracts map[string]*Contract `json:"contracts"`
}

func New() *Snapshot {
	return &Snapshot{Contracts: map[string]*Contract{}}
}

func Parse(b []byte) (*Snapshot, error) {
	s := New()
	if err := codec.FromJSON(b, s); err != nil {
		return nil, err
	}
	if s.Contracts == nil {
		s.Contracts = map[string]*Contract{}
	}
	return s, nil
}

func Load(path string) (*Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse snapshot %s", err, path)
	}
	return s, nil
}

func (s *Snapshot) contract(addr string) *Contract {
	c, ok := s.Contracts[addr]
	if !ok {
		c = &Contract{Smart: map[string]json.RawMessage{}}
		s.Contracts[addr] = c
	}
	if c.Smart == nil {
		c.Smart = map[string]json.RawMessage{}
	}
	return c
}

func (s *Snapshot) SetContractInfo(addr string, info *ics721.ContractInfoResponse) {
	s.contract(addr).Info = info
}

// SetSmart records [resp] as the answer of [addr] to the query [name].
func (s *Snapshot) SetSmart(addr string, name string, resp any) error {
	b, err := codec.ToJSONBinary(resp)
	if err != nil {
		return err
	}
	s.contract(addr).Smart[name] = b
	return nil
}

func (s *Snapshot) QueryWasmSmart(_ context.Context, contract string, msg any, out any) error {
	c, ok := s.Contracts[contract]
	if !ok {
		return fmt.Errorf("%w: %s", ErrContractNotFound, contract)
	}
	b, err := codec.ToJSONBinary(msg)
	if err != nil {
		return err
	}
	var envelope map[string]json.RawMessage
	if err := codec.FromJSON(b, &envelope); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	if len(envelope) != 1 {
		return fmt.Errorf("%w: expected one variant, found %d", ErrInvalidQuery, len(envelope))
	}
	for name := range envelope {
		resp, ok := c.Smart[name]
		if !ok {
			return fmt.Errorf("%w: %s on %s", ErrUnsupportedQuery, name, contract)
		}
		return codec.FromJSON(resp, out)
	}
	return nil
}

func (s *Snapshot) QueryWasmContractInfo(_ context.Context, contract string) (*ics721.ContractInfoResponse, error) {
	c, ok := s.Contracts[contract]
	if !ok || c.Info == nil {
		return nil, fmt.Errorf("%w: %s", ErrContractNotFound, contract)
	}
	info := *c.Info
	return &info, nil
}
