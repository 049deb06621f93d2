// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	mconsts "github.com/apocnetwork/extractorvm/consts"
	"github.com/apocnetwork/extractorvm/storage"
)

var _ chain.Action = (*SetRewardToken)(nil)

// SetRewardToken points the config singleton at the reward token's contract
// account. Admin only.
type SetRewardToken struct {
	TokenContract codec.Address `json:"tokenContract"`
}

func (*SetRewardToken) GetTypeID() uint8 {
	return mconsts.SetRewardTokenID
}

func (*SetRewardToken) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.ConfigKey()): state.Read | state.Write,
	}
}

func (*SetRewardToken) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.ConfigChunks}
}

func (s *SetRewardToken) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) ([][]byte, error) {
	config, err := storage.GetContractConfig(ctx, mu)
	if err != nil {
		return nil, err
	}
	if config.Admin != actor {
		return nil, ErrOutputNotAuthorized
	}

	config.RewardToken.Contract = s.TokenContract
	if err := storage.SetContractConfig(ctx, mu, config); err != nil {
		return nil, err
	}
	return nil, nil
}

func (*SetRewardToken) ComputeUnits(chain.Rules) uint64 {
	return SetRewardTokenComputeUnits
}

func (*SetRewardToken) Size() int {
	return codec.AddressLen
}

func (s *SetRewardToken) Marshal(p *codec.Packer) {
	p.PackAddress(s.TokenContract)
}

func UnmarshalSetRewardToken(p *codec.Packer) (chain.Action, error) {
	var set SetRewardToken
	p.UnpackAddress(&set.TokenContract)
	return &set, p.Err()
}

func (*SetRewardToken) ValidRange(chain.Rules) (int64, int64) {
	// Returning -1, -1 means that the action is always valid.
	return -1, -1
}
