// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"errors"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	mconsts "github.com/apocnetwork/extractorvm/consts"
	"github.com/apocnetwork/extractorvm/storage"
)

var _ chain.Action = (*InitContract)(nil)

// InitContract initializes the config singleton and the default marketplace
// row. Only needs to be called once when first deploying the contract; later
// invocations are no-ops restricted to the admin. The first caller becomes
// the admin, which plays the role of the contract account's own authority.
type InitContract struct {
	// DefaultMarketplaceCreator is recorded as the creator of the default
	// (empty-name) marketplace row.
	DefaultMarketplaceCreator codec.Address `json:"defaultMarketplaceCreator"`
}

func (*InitContract) GetTypeID() uint8 {
	return mconsts.InitContractID
}

func (*InitContract) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.ConfigKey()):                                    state.All,
		string(storage.MarketplaceKey(storage.DefaultMarketplaceName)): state.All,
	}
}

func (*InitContract) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.ConfigChunks, storage.MarketplaceChunks}
}

func (i *InitContract) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) ([][]byte, error) {
	config, err := storage.GetContractConfig(ctx, mu)
	switch {
	case err == nil:
		if config.Admin != actor {
			return nil, ErrOutputNotAuthorized
		}
	case errors.Is(err, storage.ErrConfigMissing):
		if err := storage.SetContractConfig(ctx, mu, storage.DefaultContractConfig(actor)); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	exists, _, err := storage.GetMarketplace(ctx, mu, storage.DefaultMarketplaceName)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := storage.SetMarketplace(ctx, mu, storage.DefaultMarketplaceName, i.DefaultMarketplaceCreator); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func (*InitContract) ComputeUnits(chain.Rules) uint64 {
	return InitContractComputeUnits
}

func (*InitContract) Size() int {
	return codec.AddressLen
}

func (i *InitContract) Marshal(p *codec.Packer) {
	p.PackAddress(i.DefaultMarketplaceCreator)
}

func UnmarshalInitContract(p *codec.Packer) (chain.Action, error) {
	var init InitContract
	p.UnpackAddress(&init.DefaultMarketplaceCreator)
	return &init, p.Err()
}

func (*InitContract) ValidRange(chain.Rules) (int64, int64) {
	// Returning -1, -1 means that the action is always valid.
	return -1, -1
}
