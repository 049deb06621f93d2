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

func TestValidateAndGetCollection(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := chaintest.NewInMemoryStore()

	owner := codec.CreateAddress(0, ids.GenerateTestID())
	stranger := codec.CreateAddress(0, ids.GenerateTestID())
	collectionA := codec.CreateAddress(1, ids.GenerateTestID())
	collectionB := codec.CreateAddress(1, ids.GenerateTestID())

	require.NoError(storage.SetRegistryTemplate(ctx, mu, collectionA, 7, true, false))
	require.NoError(storage.SetRegistryTemplate(ctx, mu, collectionA, 8, false, false))

	require.NoError(storage.SetRegistryAsset(ctx, mu, owner, 1, collectionA, 7, true))
	require.NoError(storage.SetRegistryAsset(ctx, mu, owner, 2, collectionA, storage.NoTemplate, true))
	require.NoError(storage.SetRegistryAsset(ctx, mu, owner, 3, collectionB, storage.NoTemplate, true))
	require.NoError(storage.SetRegistryAsset(ctx, mu, owner, 4, collectionA, 8, false))

	// Well-formed submission returns the shared collection.
	collection, err := storage.ValidateAndGetCollection(ctx, mu, owner, []uint64{2, 1})
	require.NoError(err)
	require.Equal(collectionA, collection)

	_, err = storage.ValidateAndGetCollection(ctx, mu, owner, nil)
	require.ErrorIs(err, storage.ErrNoAssets)

	_, err = storage.ValidateAndGetCollection(ctx, mu, owner, []uint64{1, 2, 1})
	require.ErrorIs(err, storage.ErrDuplicateAsset)

	_, err = storage.ValidateAndGetCollection(ctx, mu, stranger, []uint64{1})
	require.ErrorIs(err, storage.ErrAssetNotOwned)

	_, err = storage.ValidateAndGetCollection(ctx, mu, owner, []uint64{1, 3})
	require.ErrorIs(err, storage.ErrMixedCollections)

	_, err = storage.ValidateAndGetCollection(ctx, mu, owner, []uint64{4})
	require.ErrorIs(err, storage.ErrNotTransferable)
}

func TestHoldsAnyAsset(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := chaintest.NewInMemoryStore()

	owner := codec.CreateAddress(0, ids.GenerateTestID())
	collection := codec.CreateAddress(1, ids.GenerateTestID())

	require.NoError(storage.SetRegistryAsset(ctx, mu, owner, 5, collection, storage.NoTemplate, true))
	require.NoError(storage.SetRegistryAsset(ctx, mu, owner, 9, collection, storage.NoTemplate, true))

	held, err := storage.HoldsAnyAsset(ctx, mu, owner, []uint64{5, 9})
	require.NoError(err)
	require.True(held)

	require.NoError(storage.DeleteRegistryAsset(ctx, mu, owner, 5))
	held, err = storage.HoldsAnyAsset(ctx, mu, owner, []uint64{5, 9})
	require.NoError(err)
	require.True(held)

	require.NoError(storage.DeleteRegistryAsset(ctx, mu, owner, 9))
	held, err = storage.HoldsAnyAsset(ctx, mu, owner, []uint64{5, 9})
	require.NoError(err)
	require.False(held)
}
