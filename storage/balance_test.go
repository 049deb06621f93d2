// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage_test

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/stretchr/testify/require"

	"github.com/apocnetwork/extractorvm/chaintest"
	"github.com/apocnetwork/extractorvm/storage"
)

func TestAddBalanceZeroIsNoOp(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := chaintest.NewInMemoryStore()
	owner := codec.CreateAddress(0, ids.GenerateTestID())

	require.NoError(storage.AddBalance(ctx, mu, owner, storage.Quantity{
		Symbol: storage.MustSymbol("TOK"),
		Amount: 0,
	}))

	_, exists, err := storage.GetBalance(ctx, mu, owner)
	require.NoError(err)
	require.False(exists)
}

func TestAddBalanceNegativeRejected(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := chaintest.NewInMemoryStore()
	owner := codec.CreateAddress(0, ids.GenerateTestID())

	err := storage.AddBalance(ctx, mu, owner, storage.Quantity{
		Symbol: storage.MustSymbol("TOK"),
		Amount: -5,
	})
	require.ErrorIs(err, storage.ErrNegativeAmount)
}

func TestBalanceRoundTrip(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := chaintest.NewInMemoryStore()
	owner := codec.CreateAddress(0, ids.GenerateTestID())
	tok := storage.MustSymbol("TOK")

	require.NoError(storage.AddBalance(ctx, mu, owner, storage.Quantity{Symbol: tok, Amount: 10}))
	require.NoError(storage.SubBalance(ctx, mu, owner, storage.Quantity{Symbol: tok, Amount: 10}))

	// Credit then debit of the same amount leaves no row behind.
	_, exists, err := storage.GetBalance(ctx, mu, owner)
	require.NoError(err)
	require.False(exists)
}

func TestSubBalanceErrors(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := chaintest.NewInMemoryStore()
	owner := codec.CreateAddress(0, ids.GenerateTestID())
	tok := storage.MustSymbol("TOK")
	other := storage.MustSymbol("OTHER")

	// No row at all.
	err := storage.SubBalance(ctx, mu, owner, storage.Quantity{Symbol: tok, Amount: 1})
	require.ErrorIs(err, storage.ErrNoBalanceRow)

	require.NoError(storage.AddBalance(ctx, mu, owner, storage.Quantity{Symbol: tok, Amount: 5}))

	// Row exists but the symbol does not.
	err = storage.SubBalance(ctx, mu, owner, storage.Quantity{Symbol: other, Amount: 1})
	require.ErrorIs(err, storage.ErrSymbolNotFound)

	// Symbol exists but the amount is larger than the holding.
	err = storage.SubBalance(ctx, mu, owner, storage.Quantity{Symbol: tok, Amount: 6})
	require.ErrorIs(err, storage.ErrInsufficientBalance)

	// The failed debits left the balance unchanged.
	quantities, exists, err := storage.GetBalance(ctx, mu, owner)
	require.NoError(err)
	require.True(exists)
	require.Equal([]storage.Quantity{{Symbol: tok, Amount: 5}}, quantities)
}

func TestBalanceMultipleSymbols(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := chaintest.NewInMemoryStore()
	owner := codec.CreateAddress(0, ids.GenerateTestID())
	tok := storage.MustSymbol("TOK")
	apoc := storage.MustSymbol("APOC")

	require.NoError(storage.AddBalance(ctx, mu, owner, storage.Quantity{Symbol: tok, Amount: 3}))
	require.NoError(storage.AddBalance(ctx, mu, owner, storage.Quantity{Symbol: apoc, Amount: 7}))
	require.NoError(storage.AddBalance(ctx, mu, owner, storage.Quantity{Symbol: tok, Amount: 2}))

	quantities, exists, err := storage.GetBalance(ctx, mu, owner)
	require.NoError(err)
	require.True(exists)
	require.Equal([]storage.Quantity{
		{Symbol: tok, Amount: 5},
		{Symbol: apoc, Amount: 7},
	}, quantities)

	// Draining one symbol keeps the other entry intact.
	require.NoError(storage.SubBalance(ctx, mu, owner, storage.Quantity{Symbol: tok, Amount: 5}))
	quantities, exists, err = storage.GetBalance(ctx, mu, owner)
	require.NoError(err)
	require.True(exists)
	require.Equal([]storage.Quantity{{Symbol: apoc, Amount: 7}}, quantities)
}
