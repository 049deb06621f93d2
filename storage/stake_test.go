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

func TestHashAssetIDsPermutationInvariant(t *testing.T) {
	require := require.New(t)

	h1 := storage.HashAssetIDs([]uint64{3, 1, 2})
	h2 := storage.HashAssetIDs([]uint64{1, 2, 3})
	h3 := storage.HashAssetIDs([]uint64{2, 3, 1})
	require.Equal(h1, h2)
	require.Equal(h2, h3)

	// Different membership produces a different digest.
	h4 := storage.HashAssetIDs([]uint64{1, 2, 4})
	require.NotEqual(h1, h4)

	// The input slice is not reordered.
	input := []uint64{9, 5}
	storage.HashAssetIDs(input)
	require.Equal([]uint64{9, 5}, input)
}

func TestStakeRoundTrip(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := chaintest.NewInMemoryStore()

	stakeID := ids.GenerateTestID()
	owner := codec.CreateAddress(0, ids.GenerateTestID())
	collection := codec.CreateAddress(1, ids.GenerateTestID())
	stake := &storage.Stake{
		ID:         stakeID,
		StakeID:    1,
		Owner:      owner,
		Collection: collection,
		OfferID:    storage.NoOffer,
		AssetIDs:   []uint64{5, 9},
	}
	require.NoError(storage.SetStake(ctx, mu, stake))

	got, err := storage.GetStake(ctx, mu, stakeID)
	require.NoError(err)
	require.Equal(stake, got)

	require.NoError(storage.DeleteStake(ctx, mu, stakeID))
	_, err = storage.GetStake(ctx, mu, stakeID)
	require.ErrorIs(err, storage.ErrStakeNotFound)
}

func TestStakeDigestEntries(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := chaintest.NewInMemoryStore()

	digest := storage.HashAssetIDs([]uint64{5, 9})
	stakeA := ids.GenerateTestID()
	stakeB := ids.GenerateTestID()
	ownerA := codec.CreateAddress(0, ids.GenerateTestID())
	ownerB := codec.CreateAddress(0, ids.GenerateTestID())

	entries, err := storage.GetStakeDigestEntries(ctx, mu, digest)
	require.NoError(err)
	require.Empty(entries)

	require.NoError(storage.AddStakeDigestEntry(ctx, mu, digest, storage.DigestEntry{Stake: stakeA, Owner: ownerA}))
	require.NoError(storage.AddStakeDigestEntry(ctx, mu, digest, storage.DigestEntry{Stake: stakeB, Owner: ownerB}))

	entries, err = storage.GetStakeDigestEntries(ctx, mu, digest)
	require.NoError(err)
	require.Len(entries, 2)
	require.Equal(stakeA, entries[0].Stake)
	require.Equal(ownerA, entries[0].Owner)
	require.Equal(stakeB, entries[1].Stake)
	require.Equal(ownerB, entries[1].Owner)

	require.NoError(storage.RemoveStakeDigestEntry(ctx, mu, digest, stakeA))
	entries, err = storage.GetStakeDigestEntries(ctx, mu, digest)
	require.NoError(err)
	require.Len(entries, 1)
	require.Equal(stakeB, entries[0].Stake)

	// Removing the last entry clears the bucket entirely.
	require.NoError(storage.RemoveStakeDigestEntry(ctx, mu, digest, stakeB))
	entries, err = storage.GetStakeDigestEntries(ctx, mu, digest)
	require.NoError(err)
	require.Empty(entries)
}
