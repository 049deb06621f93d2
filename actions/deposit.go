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

var _ chain.Action = (*Deposit)(nil)

// Deposit is the inbound transfer notification: a token contract reporting
// that [From] transferred [Quantity] to the extractor account. The actor must
// be the allow-listed contract for the quantity's symbol, so only the token
// contract itself can mint claimable balance. Notifications carrying the
// "claim" memo are credited to [From]; any other memo rejects the whole
// transfer.
type Deposit struct {
	From     codec.Address    `json:"from"`
	Quantity storage.Quantity `json:"quantity"`
	Memo     []byte           `json:"memo"`
}

func (*Deposit) GetTypeID() uint8 {
	return mconsts.DepositID
}

func (d *Deposit) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.ConfigKey()):        state.Read,
		string(storage.BalanceKey(d.From)): state.All,
	}
}

func (*Deposit) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.ConfigChunks, storage.BalanceChunks}
}

func (d *Deposit) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) ([][]byte, error) {
	if len(d.Memo) > MaxMemoSize {
		return nil, ErrOutputMemoTooLarge
	}

	config, err := storage.GetContractConfig(ctx, mu)
	if err != nil {
		return nil, err
	}
	if !config.IsTokenSupported(actor, d.Quantity.Symbol) {
		return nil, storage.ErrTokenNotSupported
	}

	if string(d.Memo) != DepositMemo {
		return nil, ErrOutputInvalidMemo
	}

	if err := storage.AddBalance(ctx, mu, d.From, d.Quantity); err != nil {
		return nil, err
	}
	return nil, nil
}

func (*Deposit) ComputeUnits(chain.Rules) uint64 {
	return DepositComputeUnits
}

func (d *Deposit) Size() int {
	return codec.AddressLen + storage.SymbolLen + consts.Uint64Len + codec.BytesLen(d.Memo)
}

func (d *Deposit) Marshal(p *codec.Packer) {
	p.PackAddress(d.From)
	p.PackFixedBytes(d.Quantity.Symbol[:])
	p.PackInt64(d.Quantity.Amount)
	p.PackBytes(d.Memo)
}

func UnmarshalDeposit(p *codec.Packer) (chain.Action, error) {
	var deposit Deposit
	p.UnpackAddress(&deposit.From)
	sym := make([]byte, storage.SymbolLen)
	p.UnpackFixedBytes(storage.SymbolLen, &sym)
	copy(deposit.Quantity.Symbol[:], sym)
	deposit.Quantity.Amount = p.UnpackInt64(false)
	p.UnpackBytes(MaxMemoSize, false, &deposit.Memo)
	return &deposit, p.Err()
}

func (*Deposit) ValidRange(chain.Rules) (int64, int64) {
	// Returning -1, -1 means that the action is always valid.
	return -1, -1
}
