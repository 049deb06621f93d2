// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/hypersdk/consts"
	"github.com/ava-labs/hypersdk/state"
)

const CounterChunks uint16 = 1

// StakeCounter is the namespace used to allocate stake ids.
const StakeCounter = "stake"

// [counterPrefix] + [name]
func CounterKey(name string) (k []byte) {
	k = make([]byte, 1+len(name)+consts.Uint16Len)
	k[0] = counterPrefix
	copy(k[1:], name)
	binary.BigEndian.PutUint16(k[1+len(name):], CounterChunks)
	return
}

// ConsumeCounter returns the current value of the [name] counter and
// increments it by 1. If no counter exists yet it is treated as if the value
// was 1; ids start at 1 because they are front facing. Every call mutates
// state, so callers must invoke it at most once per logical allocation.
func ConsumeCounter(
	ctx context.Context,
	mu state.Mutable,
	name string,
) (uint64, error) {
	k := CounterKey(name)
	v, err := mu.GetValue(ctx, k)
	if errors.Is(err, database.ErrNotFound) {
		if err := mu.Insert(ctx, k, binary.BigEndian.AppendUint64(nil, 2)); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	value := binary.BigEndian.Uint64(v)
	if err := mu.Insert(ctx, k, binary.BigEndian.AppendUint64(nil, value+1)); err != nil {
		return 0, err
	}
	return value, nil
}

// GetCounter reads the next value of the [name] counter without consuming it.
func GetCounter(
	ctx context.Context,
	im state.Immutable,
	name string,
) (uint64, error) {
	v, err := im.GetValue(ctx, CounterKey(name))
	if errors.Is(err, database.ErrNotFound) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(v), nil
}

// Used to serve RPC queries
func GetCounterFromState(
	ctx context.Context,
	f ReadState,
	name string,
) (uint64, error) {
	values, errs := f(ctx, [][]byte{CounterKey(name)})
	if errors.Is(errs[0], database.ErrNotFound) {
		return 1, nil
	}
	if errs[0] != nil {
		return 0, errs[0]
	}
	return binary.BigEndian.Uint64(values[0]), nil
}
