// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/consts"
	"github.com/ava-labs/hypersdk/state"

	mconsts "github.com/apocnetwork/extractorvm/consts"
	"github.com/apocnetwork/extractorvm/storage"
)

var _ chain.Action = (*CreateStake)(nil)

// CreateStake lists a set of registry assets for staking. The actor must own
// every asset. The stake row is keyed by the action id so the full key set is
// known before execution; the counter-issued stake number lives in the row.
// For the stake to become active, the staker separately creates a registry
// offer of (only) these assets to the extractor account with the memo
// "stake".
type CreateStake struct {
	AssetIDs []uint64 `json:"assetIds"`
}

func (*CreateStake) GetTypeID() uint8 {
	return mconsts.CreateStakeID
}

func (c *CreateStake) StateKeys(actor codec.Address, actionID ids.ID) state.Keys {
	keys := state.Keys{}
	keys.Add(string(storage.CounterKey(storage.StakeCounter)), state.All)
	keys.Add(string(storage.StakeDigestKey(storage.HashAssetIDs(c.AssetIDs))), state.All)
	keys.Add(string(storage.StakeKey(actionID)), state.Allocate|state.Write)
	for _, assetID := range c.AssetIDs {
		keys.Add(string(storage.RegistryAssetKey(actor, assetID)), state.Read)
	}
	return keys
}

func (c *CreateStake) StateKeysMaxChunks() []uint16 {
	chunks := []uint16{storage.CounterChunks, storage.StakeDigestChunks, storage.StakeChunks}
	for range c.AssetIDs {
		chunks = append(chunks, storage.RegistryAssetChunks)
	}
	return chunks
}

func (c *CreateStake) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	actionID ids.ID,
) ([][]byte, error) {
	if len(c.AssetIDs) > MaxStakeAssets {
		return nil, ErrOutputTooManyAssets
	}

	collection, err := storage.ValidateAndGetCollection(ctx, mu, actor, c.AssetIDs)
	if err != nil {
		return nil, err
	}

	digest := storage.HashAssetIDs(c.AssetIDs)
	entries, err := storage.GetStakeDigestEntries(ctx, mu, digest)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		// Equal digests from different owners are tolerated: assets are
		// singly owned, so a matching digest only proves a duplicate when the
		// owner matches too.
		if entry.Owner == actor {
			return nil, ErrOutputDuplicateStake
		}
	}

	stakeID, err := storage.ConsumeCounter(ctx, mu, storage.StakeCounter)
	if err != nil {
		return nil, err
	}
	stake := &storage.Stake{
		ID:         actionID,
		StakeID:    stakeID,
		Owner:      actor,
		Collection: collection,
		OfferID:    storage.NoOffer,
		AssetIDs:   c.AssetIDs,
	}
	if err := storage.SetStake(ctx, mu, stake); err != nil {
		return nil, err
	}
	if err := storage.AddStakeDigestEntry(ctx, mu, digest, storage.DigestEntry{
		Stake: actionID,
		Owner: actor,
	}); err != nil {
		return nil, err
	}

	event := &StakeEvent{
		ID:         actionID,
		StakeID:    stakeID,
		Owner:      actor,
		AssetIDs:   c.AssetIDs,
		Collection: collection,
	}
	return [][]byte{event.Bytes()}, nil
}

func (*CreateStake) ComputeUnits(chain.Rules) uint64 {
	return CreateStakeComputeUnits
}

func (c *CreateStake) Size() int {
	return consts.IntLen + len(c.AssetIDs)*consts.Uint64Len
}

func (c *CreateStake) Marshal(p *codec.Packer) {
	p.PackInt(len(c.AssetIDs))
	for _, id := range c.AssetIDs {
		p.PackUint64(id)
	}
}

func UnmarshalCreateStake(p *codec.Packer) (chain.Action, error) {
	var create CreateStake
	count := p.UnpackInt(true)
	if count > MaxStakeAssets {
		return nil, ErrOutputTooManyAssets
	}
	create.AssetIDs = make([]uint64, count)
	for i := range create.AssetIDs {
		create.AssetIDs[i] = p.UnpackUint64(true)
	}
	return &create, p.Err()
}

func (*CreateStake) ValidRange(chain.Rules) (int64, int64) {
	// Returning -1, -1 means that the action is always valid.
	return -1, -1
}
