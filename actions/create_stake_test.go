// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions_test

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"
	"github.com/stretchr/testify/require"

	"github.com/apocnetwork/extractorvm/actions"
	"github.com/apocnetwork/extractorvm/chaintest"
	"github.com/apocnetwork/extractorvm/storage"
)

func seedAssets(t *testing.T, mu *chaintest.InMemoryStore, owner codec.Address, collection codec.Address, assetIDs ...uint64) {
	t.Helper()
	for _, assetID := range assetIDs {
		require.NoError(t, storage.SetRegistryAsset(context.Background(), mu, owner, assetID, collection, storage.NoTemplate, true))
	}
}

func TestCreateStake(t *testing.T) {
	ownerA := codec.CreateAddress(0, ids.GenerateTestID())
	ownerB := codec.CreateAddress(0, ids.GenerateTestID())
	collection := codec.CreateAddress(1, ids.GenerateTestID())

	firstID := ids.GenerateTestID()
	secondID := ids.GenerateTestID()

	tooMany := make([]uint64, actions.MaxStakeAssets+1)
	for i := range tooMany {
		tooMany[i] = uint64(i)
	}

	firstState := chaintest.NewInMemoryStore()
	seedAssets(t, firstState, ownerA, collection, 5, 9)

	dupState := chaintest.NewInMemoryStore()
	seedAssets(t, dupState, ownerA, collection, 5, 9)

	crossOwnerState := chaintest.NewInMemoryStore()
	seedAssets(t, crossOwnerState, ownerA, collection, 5, 9)
	seedAssets(t, crossOwnerState, ownerB, collection, 5, 9)

	nonTransferableState := chaintest.NewInMemoryStore()
	require.NoError(t, storage.SetRegistryAsset(context.Background(), nonTransferableState, ownerA, 7, collection, 3, false))

	chaintest.Run(t, []chaintest.ActionTest{
		{
			Name:        "too many assets",
			Action:      &actions.CreateStake{AssetIDs: tooMany},
			Actor:       ownerA,
			State:       chaintest.NewInMemoryStore(),
			ExpectedErr: actions.ErrOutputTooManyAssets,
		},
		{
			Name:        "unowned assets",
			Action:      &actions.CreateStake{AssetIDs: []uint64{5, 9}},
			Actor:       ownerB,
			State:       firstState,
			ExpectedErr: storage.ErrAssetNotOwned,
		},
		{
			Name:        "non-transferable asset",
			Action:      &actions.CreateStake{AssetIDs: []uint64{7}},
			Actor:       ownerA,
			State:       nonTransferableState,
			ExpectedErr: storage.ErrNotTransferable,
		},
		{
			Name:     "first stake emits event",
			Action:   &actions.CreateStake{AssetIDs: []uint64{5, 9}},
			Actor:    ownerA,
			State:    firstState,
			ActionID: firstID,
			ExpectedOutputs: [][]byte{(&actions.StakeEvent{
				ID:         firstID,
				StakeID:    1,
				Owner:      ownerA,
				AssetIDs:   []uint64{5, 9},
				Collection: collection,
			}).Bytes()},
			Assertion: func(mu state.Mutable) bool {
				stake, err := storage.GetStake(context.Background(), mu, firstID)
				return err == nil && stake.Owner == ownerA && stake.StakeID == 1 && stake.OfferID == storage.NoOffer
			},
		},
		{
			Name:         "same owner reordered assets is a duplicate",
			SetupActions: []chain.Action{&actions.CreateStake{AssetIDs: []uint64{5, 9}}},
			Action:       &actions.CreateStake{AssetIDs: []uint64{9, 5}},
			Actor:        ownerA,
			State:        dupState,
			ExpectedErr:  actions.ErrOutputDuplicateStake,
		},
		{
			Name:         "different owner may reuse a digest",
			SetupActions: []chain.Action{&actions.CreateStake{AssetIDs: []uint64{5, 9}}},
			SetupActor:   ownerA,
			Action:       &actions.CreateStake{AssetIDs: []uint64{5, 9}},
			Actor:        ownerB,
			State:        crossOwnerState,
			ActionID:     secondID,
			ExpectedOutputs: [][]byte{(&actions.StakeEvent{
				ID:         secondID,
				StakeID:    2,
				Owner:      ownerB,
				AssetIDs:   []uint64{5, 9},
				Collection: collection,
			}).Bytes()},
			Assertion: func(mu state.Mutable) bool {
				entries, err := storage.GetStakeDigestEntries(context.Background(), mu, storage.HashAssetIDs([]uint64{5, 9}))
				return err == nil && len(entries) == 2
			},
		},
	})
}
