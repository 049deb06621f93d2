// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apocnetwork/extractorvm/chaintest"
	"github.com/apocnetwork/extractorvm/storage"
)

func TestConsumeCounterSequence(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := chaintest.NewInMemoryStore()

	for want := uint64(1); want <= 100; want++ {
		got, err := storage.ConsumeCounter(ctx, mu, storage.StakeCounter)
		require.NoError(err)
		require.Equal(want, got)
	}

	// The stored value is always the next id to hand out.
	next, err := storage.GetCounter(ctx, mu, storage.StakeCounter)
	require.NoError(err)
	require.Equal(uint64(101), next)
}

func TestConsumeCounterIndependentNames(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := chaintest.NewInMemoryStore()

	got, err := storage.ConsumeCounter(ctx, mu, storage.StakeCounter)
	require.NoError(err)
	require.Equal(uint64(1), got)

	got, err = storage.ConsumeCounter(ctx, mu, "offer")
	require.NoError(err)
	require.Equal(uint64(1), got)

	got, err = storage.ConsumeCounter(ctx, mu, storage.StakeCounter)
	require.NoError(err)
	require.Equal(uint64(2), got)
}
