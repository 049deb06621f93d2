// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/consts"
	"github.com/ava-labs/hypersdk/state"
)

const (
	ConfigChunks      uint16 = 8
	MarketplaceChunks uint16 = 1
)

const (
	DefaultVersion = "1.3.2"

	// Operational tunables, in minutes.
	DefaultMinimumClaimDuration uint32 = 1440
	DefaultMinimumCalcDuration  uint32 = 720
)

// DefaultMarketplaceName names the marketplace row created by InitContract.
const DefaultMarketplaceName = ""

// SupportedToken pairs a token symbol with the contract account it is issued
// by. Only allow-listed pairs may be deposited or withdrawn.
type SupportedToken struct {
	Symbol   Symbol        `json:"symbol"`
	Contract codec.Address `json:"contract"`
}

// ContractConfig is the process-wide singleton holding the extractor's
// operational parameters. It is created once by InitContract and mutated only
// by privileged actions.
type ContractConfig struct {
	Version              string           `json:"version"`
	MinimumClaimDuration uint32           `json:"minimumClaimDuration"`
	MinimumCalcDuration  uint32           `json:"minimumCalcDuration"`
	RewardToken          SupportedToken   `json:"rewardToken"`
	RegistryAccount      codec.Address    `json:"registryAccount"`
	Admin                codec.Address    `json:"admin"`
	SupportedTokens      []SupportedToken `json:"supportedTokens"`
}

func DefaultContractConfig(admin codec.Address) *ContractConfig {
	return &ContractConfig{
		Version:              DefaultVersion,
		MinimumClaimDuration: DefaultMinimumClaimDuration,
		MinimumCalcDuration:  DefaultMinimumCalcDuration,
		RewardToken: SupportedToken{
			Symbol: MustSymbol("APOC"),
		},
		Admin: admin,
	}
}

const supportedTokenLen = SymbolLen + codec.AddressLen

// [configPrefix]
func ConfigKey() (k []byte) {
	k = make([]byte, 1+consts.Uint16Len)
	k[0] = configPrefix
	binary.BigEndian.PutUint16(k[1:], ConfigChunks)
	return
}

func SetContractConfig(
	ctx context.Context,
	mu state.Mutable,
	c *ContractConfig,
) error {
	versionLen := len(c.Version)
	v := make([]byte,
		consts.Uint16Len+versionLen+
			consts.Uint32Len*2+
			supportedTokenLen+
			codec.AddressLen*2+
			consts.Uint16Len+len(c.SupportedTokens)*supportedTokenLen)
	offset := 0
	binary.BigEndian.PutUint16(v[offset:], uint16(versionLen))
	offset += consts.Uint16Len
	copy(v[offset:], c.Version)
	offset += versionLen
	binary.BigEndian.PutUint32(v[offset:], c.MinimumClaimDuration)
	offset += consts.Uint32Len
	binary.BigEndian.PutUint32(v[offset:], c.MinimumCalcDuration)
	offset += consts.Uint32Len
	copy(v[offset:], c.RewardToken.Symbol[:])
	offset += SymbolLen
	copy(v[offset:], c.RewardToken.Contract[:])
	offset += codec.AddressLen
	copy(v[offset:], c.RegistryAccount[:])
	offset += codec.AddressLen
	copy(v[offset:], c.Admin[:])
	offset += codec.AddressLen
	binary.BigEndian.PutUint16(v[offset:], uint16(len(c.SupportedTokens)))
	offset += consts.Uint16Len
	for _, t := range c.SupportedTokens {
		copy(v[offset:], t.Symbol[:])
		offset += SymbolLen
		copy(v[offset:], t.Contract[:])
		offset += codec.AddressLen
	}
	return mu.Insert(ctx, ConfigKey(), v)
}

func GetContractConfig(
	ctx context.Context,
	im state.Immutable,
) (*ContractConfig, error) {
	v, err := im.GetValue(ctx, ConfigKey())
	return innerGetContractConfig(v, err)
}

// Used to serve RPC queries
func GetContractConfigFromState(
	ctx context.Context,
	f ReadState,
) (*ContractConfig, error) {
	values, errs := f(ctx, [][]byte{ConfigKey()})
	return innerGetContractConfig(values[0], errs[0])
}

func innerGetContractConfig(v []byte, err error) (*ContractConfig, error) {
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrConfigMissing
	}
	if err != nil {
		return nil, err
	}
	c := &ContractConfig{}
	offset := 0
	versionLen := int(binary.BigEndian.Uint16(v[offset:]))
	offset += consts.Uint16Len
	c.Version = string(v[offset : offset+versionLen])
	offset += versionLen
	c.MinimumClaimDuration = binary.BigEndian.Uint32(v[offset:])
	offset += consts.Uint32Len
	c.MinimumCalcDuration = binary.BigEndian.Uint32(v[offset:])
	offset += consts.Uint32Len
	copy(c.RewardToken.Symbol[:], v[offset:])
	offset += SymbolLen
	copy(c.RewardToken.Contract[:], v[offset:])
	offset += codec.AddressLen
	copy(c.RegistryAccount[:], v[offset:])
	offset += codec.AddressLen
	copy(c.Admin[:], v[offset:])
	offset += codec.AddressLen
	count := int(binary.BigEndian.Uint16(v[offset:]))
	offset += consts.Uint16Len
	c.SupportedTokens = make([]SupportedToken, count)
	for i := range c.SupportedTokens {
		copy(c.SupportedTokens[i].Symbol[:], v[offset:])
		offset += SymbolLen
		copy(c.SupportedTokens[i].Contract[:], v[offset:])
		offset += codec.AddressLen
	}
	return c, nil
}

// SupportedTokenContract resolves [symbol] to its registered token contract.
func (c *ContractConfig) SupportedTokenContract(symbol Symbol) (codec.Address, error) {
	for _, t := range c.SupportedTokens {
		if t.Symbol.Equals(symbol) {
			return t.Contract, nil
		}
	}
	return codec.Address{}, ErrTokenNotSupported
}

// IsTokenSupported reports whether the (contract, symbol) pair is on the
// allow-list.
func (c *ContractConfig) IsTokenSupported(contract codec.Address, symbol Symbol) bool {
	for _, t := range c.SupportedTokens {
		if t.Contract == contract && t.Symbol.Equals(symbol) {
			return true
		}
	}
	return false
}

// [marketplacePrefix] + [name]
func MarketplaceKey(name string) (k []byte) {
	k = make([]byte, 1+len(name)+consts.Uint16Len)
	k[0] = marketplacePrefix
	copy(k[1:], name)
	binary.BigEndian.PutUint16(k[1+len(name):], MarketplaceChunks)
	return
}

func SetMarketplace(
	ctx context.Context,
	mu state.Mutable,
	name string,
	creator codec.Address,
) error {
	v := make([]byte, codec.AddressLen)
	copy(v, creator[:])
	return mu.Insert(ctx, MarketplaceKey(name), v)
}

func GetMarketplace(
	ctx context.Context,
	im state.Immutable,
	name string,
) (bool, codec.Address, error) {
	v, err := im.GetValue(ctx, MarketplaceKey(name))
	if errors.Is(err, database.ErrNotFound) {
		return false, codec.Address{}, nil
	}
	if err != nil {
		return false, codec.Address{}, err
	}
	var creator codec.Address
	copy(creator[:], v)
	return true, creator, nil
}
