// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sgics721

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/stargaze/sg-ics721/codec"
	"github.com/stargaze/sg-ics721/ics721"
	"github.com/stargaze/sg-ics721/sg721"
	"github.com/stargaze/sg-ics721/trace"
)

// GetClassData extends the baseline collection data of [sender] with its
// sg721 collection info.
func (c *Contract) GetClassData(ctx context.Context, sender string) (_ *SgCollectionData, err error) {
	ctx, span := trace.StartOperation(ctx, c.tracer, "GetClassData",
		attribute.String("sender", sender),
	)
	defer func() { trace.EndOperation(span, err) }()

	data, err := ics721.GetCollectionData(ctx, c.querier, sender)
	if err != nil {
		return nil, err
	}
	info, err := sg721.QueryCollectionInfo(ctx, c.querier, sender)
	if err != nil {
		return nil, err
	}
	c.metrics.classData.Inc()
	return &SgCollectionData{
		CollectionData: *data,
		CollectionInfo: *info,
	}, nil
}

// InitMsg returns the encoded sg721 instantiate message for [class].
func (c *Contract) InitMsg(ctx context.Context, env ics721.Env, class ics721.Class) ([]byte, error) {
	msg, err := c.BuildInstantiateMsg(ctx, env, class)
	if err != nil {
		return nil, err
	}
	b, err := codec.ToJSONBinary(msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMarshalInitMsg, err)
	}
	c.metrics.initMsg.Inc()
	return b, nil
}

// BuildInstantiateMsg derives the sg721 instantiate message for [class].
//
// Name and symbol default to the class id. The creator defaults to the
// creator of this contract. If the class carries decodable collection data,
// its name and symbol are used and its owner, converted to the local address
// prefix, becomes the creator. Undecodable class data is ignored.
func (c *Contract) BuildInstantiateMsg(ctx context.Context, env ics721.Env, class ics721.Class) (_ *sg721.InstantiateMsg, err error) {
	ctx, span := trace.StartOperation(ctx, c.tracer, "BuildInstantiateMsg",
		attribute.String("classID", class.ID.String()),
		attribute.String("contract", env.Contract.Address),
	)
	defer func() { trace.EndOperation(span, err) }()

	// used when the source chain sends no owner, e.g. the nft-transfer module
	fallback := &creatorLookup{
		querier:  c.querier,
		contract: env.Contract.Address,
	}
	creator, err := fallback.get(ctx)
	if err != nil {
		return nil, err
	}
	msg := &sg721.InstantiateMsg{
		Name:   class.ID.String(),
		Symbol: class.ID.String(),
		Minter: env.Contract.Address,
		CollectionInfo: sg721.CollectionInfo{
			Creator:     creator,
			Description: c.config.DefaultDescription,
			Image:       c.config.PlaceholderImage,
		},
	}

	parsed := ics721.ParseClassData(class.Data)
	span.SetAttributes(attribute.Stringer("classData", parsed.Status))
	switch parsed.Status {
	case ics721.ClassDataAbsent:
		c.metrics.classDataAbsent.Inc()
		c.log.Debug("no class data, using class id",
			zap.Stringer("classID", class.ID),
		)
		return msg, nil
	case ics721.ClassDataMalformed:
		c.metrics.classDataMalformed.Inc()
		c.log.Debug("ignoring malformed class data",
			zap.Stringer("classID", class.ID),
			zap.Int("size", len(class.Data)),
			zap.Error(parsed.Err),
		)
		return msg, nil
	}

	data := parsed.Data
	if data.Owner != nil {
		owner, err := codec.ConvertOwnerChainAddress(env.Contract.Address, *data.Owner)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOwnerConversion, err)
		}
		c.metrics.ownerConverted.Inc()
		c.log.Debug("using source owner as creator",
			zap.Stringer("classID", class.ID),
			zap.String("owner", *data.Owner),
			zap.String("creator", owner),
		)
		msg.CollectionInfo.Creator = owner
	} else {
		creator, err := fallback.get(ctx)
		if err != nil {
			return nil, err
		}
		c.metrics.ownerAbsent.Inc()
		msg.CollectionInfo.Creator = creator
	}
	msg.Name = data.Name
	msg.Symbol = data.Symbol
	return msg, nil
}

// creatorLookup queries the creator of [contract] at most once.
type creatorLookup struct {
	querier  ics721.Querier
	contract string

	creator  string
	resolved bool
}

func (l *creatorLookup) get(ctx context.Context) (string, error) {
	if l.resolved {
		return l.creator, nil
	}
	info, err := ics721.QueryContractInfo(ctx, l.querier, l.contract)
	if err != nil {
		return "", err
	}
	l.creator = info.Creator
	l.resolved = true
	return l.creator, nil
}
