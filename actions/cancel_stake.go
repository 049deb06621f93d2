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

var _ chain.Action = (*CancelStake)(nil)

// CancelStake removes a stake whose collateral has left the staker's control.
// Any actor may invoke it: a stake is only cancellable without the staker's
// authorization once the registry no longer shows the staker holding any of
// the staked assets, so the validity proof itself gates the cleanup.
//
// [Owner] and [AssetIDs] repeat the stored stake's fields so every key the
// action touches can be declared up front; execution rejects the cancel when
// they do not match the row.
type CancelStake struct {
	Stake    ids.ID        `json:"stake"`
	Owner    codec.Address `json:"owner"`
	AssetIDs []uint64      `json:"assetIds"`
}

func (*CancelStake) GetTypeID() uint8 {
	return mconsts.CancelStakeID
}

func (c *CancelStake) StateKeys(codec.Address, ids.ID) state.Keys {
	keys := state.Keys{}
	keys.Add(string(storage.StakeKey(c.Stake)), state.Read|state.Write)
	keys.Add(string(storage.StakeDigestKey(storage.HashAssetIDs(c.AssetIDs))), state.Read|state.Write)
	for _, assetID := range c.AssetIDs {
		keys.Add(string(storage.RegistryAssetKey(c.Owner, assetID)), state.Read)
	}
	return keys
}

func (c *CancelStake) StateKeysMaxChunks() []uint16 {
	chunks := []uint16{storage.StakeChunks, storage.StakeDigestChunks}
	for range c.AssetIDs {
		chunks = append(chunks, storage.RegistryAssetChunks)
	}
	return chunks
}

func (c *CancelStake) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	_ codec.Address,
	_ ids.ID,
) ([][]byte, error) {
	stake, err := storage.GetStake(ctx, mu, c.Stake)
	if err != nil {
		return nil, err
	}

	digest := storage.HashAssetIDs(stake.AssetIDs)
	if stake.Owner != c.Owner || digest != storage.HashAssetIDs(c.AssetIDs) {
		return nil, ErrOutputStakeMismatch
	}

	held, err := storage.HoldsAnyAsset(ctx, mu, stake.Owner, stake.AssetIDs)
	if err != nil {
		return nil, err
	}
	if held {
		return nil, ErrOutputStakeStillValid
	}

	if err := storage.DeleteStake(ctx, mu, c.Stake); err != nil {
		return nil, err
	}
	if err := storage.RemoveStakeDigestEntry(ctx, mu, digest, c.Stake); err != nil {
		return nil, err
	}
	return nil, nil
}

func (*CancelStake) ComputeUnits(chain.Rules) uint64 {
	return CancelStakeComputeUnits
}

func (c *CancelStake) Size() int {
	return ids.IDLen + codec.AddressLen + consts.IntLen + len(c.AssetIDs)*consts.Uint64Len
}

func (c *CancelStake) Marshal(p *codec.Packer) {
	p.PackID(c.Stake)
	p.PackAddress(c.Owner)
	p.PackInt(len(c.AssetIDs))
	for _, id := range c.AssetIDs {
		p.PackUint64(id)
	}
}

func UnmarshalCancelStake(p *codec.Packer) (chain.Action, error) {
	var cancel CancelStake
	p.UnpackID(true, &cancel.Stake)
	p.UnpackAddress(&cancel.Owner)
	count := p.UnpackInt(true)
	if count > MaxStakeAssets {
		return nil, ErrOutputTooManyAssets
	}
	cancel.AssetIDs = make([]uint64, count)
	for i := range cancel.AssetIDs {
		cancel.AssetIDs[i] = p.UnpackUint64(true)
	}
	return &cancel, p.Err()
}

func (*CancelStake) ValidRange(chain.Rules) (int64, int64) {
	// Returning -1, -1 means that the action is always valid.
	return -1, -1
}
