// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ics721

import "context"

// Execute is implemented by chain specific ICS-721 contracts. [T] is the
// class data the contract attaches to outgoing classes.
type Execute[T any] interface {
	// GetClassData returns the class data of the collection at [sender],
	// attached when this chain is the source of a class.
	GetClassData(ctx context.Context, sender string) (*T, error)

	// InitMsg returns the instantiate message of the collection contract
	// created when [class] is received for the first time.
	InitMsg(ctx context.Context, env Env, class Class) ([]byte, error)
}
