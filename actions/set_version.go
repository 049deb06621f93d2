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

var _ chain.Action = (*SetVersion)(nil)

// SetVersion updates the version string in the config singleton. Admin only.
type SetVersion struct {
	Version []byte `json:"version"`
}

func (*SetVersion) GetTypeID() uint8 {
	return mconsts.SetVersionID
}

func (*SetVersion) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.ConfigKey()): state.Read | state.Write,
	}
}

func (*SetVersion) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.ConfigChunks}
}

func (s *SetVersion) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) ([][]byte, error) {
	if len(s.Version) == 0 {
		return nil, ErrOutputVersionEmpty
	}
	if len(s.Version) > MaxVersionSize {
		return nil, ErrOutputVersionTooLarge
	}

	config, err := storage.GetContractConfig(ctx, mu)
	if err != nil {
		return nil, err
	}
	if config.Admin != actor {
		return nil, ErrOutputNotAuthorized
	}

	config.Version = string(s.Version)
	if err := storage.SetContractConfig(ctx, mu, config); err != nil {
		return nil, err
	}
	return nil, nil
}

func (*SetVersion) ComputeUnits(chain.Rules) uint64 {
	return SetVersionComputeUnits
}

func (s *SetVersion) Size() int {
	return codec.BytesLen(s.Version)
}

func (s *SetVersion) Marshal(p *codec.Packer) {
	p.PackBytes(s.Version)
}

func UnmarshalSetVersion(p *codec.Packer) (chain.Action, error) {
	var set SetVersion
	p.UnpackBytes(MaxVersionSize, true, &set.Version)
	return &set, p.Err()
}

func (*SetVersion) ValidRange(chain.Rules) (int64, int64) {
	// Returning -1, -1 means that the action is always valid.
	return -1, -1
}
