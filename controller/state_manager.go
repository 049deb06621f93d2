// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package controller

import (
	"context"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/apocnetwork/extractorvm/consts"
	"github.com/apocnetwork/extractorvm/storage"
)

var _ (chain.StateManager) = (*StateManager)(nil)

// StateManager pays fees from the sponsor's native token entry in its
// balance row.
type StateManager struct{}

func (*StateManager) HeightKey() []byte {
	return storage.HeightKey()
}

func (*StateManager) TimestampKey() []byte {
	return storage.TimestampKey()
}

func (*StateManager) FeeKey() []byte {
	return storage.FeeKey()
}

func (*StateManager) SponsorStateKeys(addr codec.Address) state.Keys {
	return state.Keys{
		string(storage.BalanceKey(addr)): state.Read | state.Write,
	}
}

func (*StateManager) CanDeduct(
	ctx context.Context,
	addr codec.Address,
	im state.Immutable,
	amount uint64,
) error {
	quantities, _, err := storage.GetBalance(ctx, im, addr)
	if err != nil {
		return err
	}
	native := storage.MustSymbol(consts.Symbol)
	for _, q := range quantities {
		if q.Symbol.Equals(native) {
			if uint64(q.Amount) < amount {
				return storage.ErrInsufficientBalance
			}
			return nil
		}
	}
	if amount == 0 {
		return nil
	}
	return storage.ErrInsufficientBalance
}

func (*StateManager) Deduct(
	ctx context.Context,
	addr codec.Address,
	mu state.Mutable,
	amount uint64,
) error {
	if amount == 0 {
		return nil
	}
	return storage.SubBalance(ctx, mu, addr, storage.Quantity{
		Symbol: storage.MustSymbol(consts.Symbol),
		Amount: int64(amount),
	})
}

func (*StateManager) Refund(
	ctx context.Context,
	addr codec.Address,
	mu state.Mutable,
	amount uint64,
) error {
	if amount == 0 {
		return nil
	}
	return storage.AddBalance(ctx, mu, addr, storage.Quantity{
		Symbol: storage.MustSymbol(consts.Symbol),
		Amount: int64(amount),
	})
}
