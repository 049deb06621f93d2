// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ava-labs/avalanchego/trace"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/fees"
	"github.com/ava-labs/hypersdk/state"
	"github.com/ava-labs/hypersdk/vm"

	"github.com/apocnetwork/extractorvm/consts"
	"github.com/apocnetwork/extractorvm/storage"
)

var _ vm.Genesis = (*Genesis)(nil)

// CustomAllocation seeds a claimable balance, as if the quantity had already
// been deposited on behalf of the account.
type CustomAllocation struct {
	Address string `json:"address"` // bech32 address
	Symbol  string `json:"symbol"`
	Balance int64  `json:"balance"`
}

// SupportedToken is an allow-list entry: a token symbol and the contract
// account that issues it.
type SupportedToken struct {
	Symbol   string `json:"symbol"`
	Contract string `json:"contract"` // bech32 address
}

// RegistryCollection seeds a collection row of the asset registry mirror.
type RegistryCollection struct {
	Collection string `json:"collection"` // bech32 address
	Author     string `json:"author"`     // bech32 address
}

// RegistryTemplate seeds a template row of the asset registry mirror.
type RegistryTemplate struct {
	Collection   string `json:"collection"` // bech32 address
	TemplateID   int32  `json:"templateId"`
	Transferable bool   `json:"transferable"`
	Burnable     bool   `json:"burnable"`
}

// RegistryAsset seeds an asset row of the asset registry mirror.
type RegistryAsset struct {
	Owner      string `json:"owner"` // bech32 address
	AssetID    uint64 `json:"assetId"`
	Collection string `json:"collection"` // bech32 address
	TemplateID int32  `json:"templateId"` // -1 when minted without a template
}

type Genesis struct {
	// Address prefix
	HRP string `json:"hrp"`

	// Chain Parameters
	MinBlockGap      int64 `json:"minBlockGap"`      // ms
	MinEmptyBlockGap int64 `json:"minEmptyBlockGap"` // ms

	// Chain Fee Parameters
	MinUnitPrice               fees.Dimensions `json:"minUnitPrice"`
	UnitPriceChangeDenominator fees.Dimensions `json:"unitPriceChangeDenominator"`
	WindowTargetUnits          fees.Dimensions `json:"windowTargetUnits"` // 10s
	MaxBlockUnits              fees.Dimensions `json:"maxBlockUnits"`     // must be possible to reach before block too large

	// Tx Parameters
	ValidityWindow int64 `json:"validityWindow"` // ms

	// Tx Fee Parameters
	BaseComputeUnits          uint64 `json:"baseUnits"`
	StorageKeyReadUnits       uint64 `json:"storageKeyReadUnits"`
	StorageValueReadUnits     uint64 `json:"storageValueReadUnits"` // per chunk
	StorageKeyAllocateUnits   uint64 `json:"storageKeyAllocateUnits"`
	StorageValueAllocateUnits uint64 `json:"storageValueAllocateUnits"` // per chunk
	StorageKeyWriteUnits      uint64 `json:"storageKeyWriteUnits"`
	StorageValueWriteUnits    uint64 `json:"storageValueWriteUnits"` // per chunk

	// Contract Parameters
	//
	// Admin is the account allowed to run the privileged configuration
	// actions. It stands in for the contract account's own authority. When
	// empty, the first InitContract caller becomes admin.
	Admin                     string           `json:"admin"`           // bech32 address
	RegistryAccount           string           `json:"registryAccount"` // bech32 address
	RewardToken               SupportedToken   `json:"rewardToken"`
	SupportedTokens           []SupportedToken `json:"supportedTokens"`
	DefaultMarketplaceCreator string           `json:"defaultMarketplaceCreator"` // bech32 address

	// Allocations
	CustomAllocation []*CustomAllocation `json:"customAllocation"`

	// Registry Seed
	//
	// The asset registry is owned by an external contract; these rows mirror
	// its state at chain creation so staking can be exercised from block one.
	RegistryCollections []*RegistryCollection `json:"registryCollections"`
	RegistryTemplates   []*RegistryTemplate   `json:"registryTemplates"`
	RegistryAssets      []*RegistryAsset      `json:"registryAssets"`
}

func Default() *Genesis {
	return &Genesis{
		HRP: consts.HRP,

		// Chain Parameters
		MinBlockGap:      100,
		MinEmptyBlockGap: 2_500,

		// Chain Fee Parameters
		MinUnitPrice:               fees.Dimensions{100, 100, 100, 100, 100},
		UnitPriceChangeDenominator: fees.Dimensions{48, 48, 48, 48, 48},
		WindowTargetUnits:          fees.Dimensions{20_000_000, 1_000, 1_000, 1_000, 1_000},
		MaxBlockUnits:              fees.Dimensions{1_800_000, 2_000, 2_000, 2_000, 2_000},

		// Tx Parameters
		ValidityWindow: 60_000, // ms

		// Tx Fee Compute Parameters
		BaseComputeUnits: 1,

		// Tx Fee Storage Parameters
		//
		// TODO: tune this
		StorageKeyReadUnits:       5,
		StorageValueReadUnits:     2,
		StorageKeyAllocateUnits:   20,
		StorageValueAllocateUnits: 5,
		StorageKeyWriteUnits:      10,
		StorageValueWriteUnits:    3,
	}
}

func New(b []byte, _ []byte /* upgradeBytes */) (*Genesis, error) {
	g := Default()
	if len(b) > 0 {
		if err := json.Unmarshal(b, g); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %w", string(b), err)
		}
	}
	return g, nil
}

func parseAddress(s string) (codec.Address, error) {
	if len(s) == 0 {
		return codec.EmptyAddress, nil
	}
	return codec.ParseAddressBech32(consts.HRP, s)
}

func (g *Genesis) Load(ctx context.Context, tracer trace.Tracer, mu state.Mutable) error {
	ctx, span := tracer.Start(ctx, "Genesis.Load")
	defer span.End()

	if consts.HRP != g.HRP {
		return ErrInvalidHRP
	}

	// The config singleton is only seeded when the genesis names an admin.
	// Otherwise the contract starts uninitialized and the first InitContract
	// caller becomes admin.
	if len(g.Admin) > 0 {
		admin, err := parseAddress(g.Admin)
		if err != nil {
			return err
		}
		registryAccount, err := parseAddress(g.RegistryAccount)
		if err != nil {
			return err
		}

		config := storage.DefaultContractConfig(admin)
		config.RegistryAccount = registryAccount
		if len(g.RewardToken.Symbol) > 0 {
			symbol, err := storage.NewSymbol(g.RewardToken.Symbol)
			if err != nil {
				return err
			}
			contract, err := parseAddress(g.RewardToken.Contract)
			if err != nil {
				return err
			}
			config.RewardToken = storage.SupportedToken{Symbol: symbol, Contract: contract}
		}
		for _, t := range g.SupportedTokens {
			symbol, err := storage.NewSymbol(t.Symbol)
			if err != nil {
				return err
			}
			contract, err := parseAddress(t.Contract)
			if err != nil {
				return err
			}
			config.SupportedTokens = append(config.SupportedTokens, storage.SupportedToken{
				Symbol:   symbol,
				Contract: contract,
			})
		}
		if err := storage.SetContractConfig(ctx, mu, config); err != nil {
			return err
		}
	}

	if len(g.DefaultMarketplaceCreator) > 0 {
		marketplaceCreator, err := parseAddress(g.DefaultMarketplaceCreator)
		if err != nil {
			return err
		}
		if err := storage.SetMarketplace(ctx, mu, storage.DefaultMarketplaceName, marketplaceCreator); err != nil {
			return err
		}
	}

	for _, alloc := range g.CustomAllocation {
		owner, err := parseAddress(alloc.Address)
		if err != nil {
			return err
		}
		symbol, err := storage.NewSymbol(alloc.Symbol)
		if err != nil {
			return err
		}
		if err := storage.AddBalance(ctx, mu, owner, storage.Quantity{
			Symbol: symbol,
			Amount: alloc.Balance,
		}); err != nil {
			return fmt.Errorf("%w: addr=%s, bal=%d", err, alloc.Address, alloc.Balance)
		}
	}

	for _, c := range g.RegistryCollections {
		collection, err := parseAddress(c.Collection)
		if err != nil {
			return err
		}
		author, err := parseAddress(c.Author)
		if err != nil {
			return err
		}
		if err := storage.SetRegistryCollection(ctx, mu, collection, author); err != nil {
			return err
		}
	}
	for _, t := range g.RegistryTemplates {
		collection, err := parseAddress(t.Collection)
		if err != nil {
			return err
		}
		if err := storage.SetRegistryTemplate(ctx, mu, collection, t.TemplateID, t.Transferable, t.Burnable); err != nil {
			return err
		}
	}
	for _, a := range g.RegistryAssets {
		owner, err := parseAddress(a.Owner)
		if err != nil {
			return err
		}
		collection, err := parseAddress(a.Collection)
		if err != nil {
			return err
		}
		transferable := true
		if a.TemplateID != storage.NoTemplate {
			exists, t, _, err := storage.GetRegistryTemplate(ctx, mu, collection, a.TemplateID)
			if err != nil {
				return err
			}
			transferable = exists && t
		}
		if err := storage.SetRegistryAsset(ctx, mu, owner, a.AssetID, collection, a.TemplateID, transferable); err != nil {
			return err
		}
	}
	return nil
}
