// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"math"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/consts"
	"github.com/ava-labs/hypersdk/state"
)

const BalanceChunks uint16 = 4

const quantityLen = SymbolLen + consts.Uint64Len

// [balancePrefix] + [owner]
func BalanceKey(owner codec.Address) (k []byte) {
	k = make([]byte, 1+codec.AddressLen+consts.Uint16Len)
	k[0] = balancePrefix
	copy(k[1:], owner[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], BalanceChunks)
	return
}

func packQuantities(quantities []Quantity) []byte {
	v := make([]byte, len(quantities)*quantityLen)
	for i, q := range quantities {
		copy(v[i*quantityLen:], q.Symbol[:])
		binary.BigEndian.PutUint64(v[i*quantityLen+SymbolLen:], uint64(q.Amount))
	}
	return v
}

func unpackQuantities(v []byte) []Quantity {
	quantities := make([]Quantity, 0, len(v)/quantityLen)
	for i := 0; i+quantityLen <= len(v); i += quantityLen {
		var q Quantity
		copy(q.Symbol[:], v[i:i+SymbolLen])
		q.Amount = int64(binary.BigEndian.Uint64(v[i+SymbolLen:]))
		quantities = append(quantities, q)
	}
	return quantities
}

// GetBalance returns every quantity held for [owner]. A missing row is not an
// error; it returns an empty slice and false.
func GetBalance(
	ctx context.Context,
	im state.Immutable,
	owner codec.Address,
) ([]Quantity, bool, error) {
	v, err := im.GetValue(ctx, BalanceKey(owner))
	return innerGetBalance(v, err)
}

// Used to serve RPC queries
func GetBalanceFromState(
	ctx context.Context,
	f ReadState,
	owner codec.Address,
) ([]Quantity, bool, error) {
	values, errs := f(ctx, [][]byte{BalanceKey(owner)})
	return innerGetBalance(values[0], errs[0])
}

func innerGetBalance(v []byte, err error) ([]Quantity, bool, error) {
	if errors.Is(err, database.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return unpackQuantities(v), true, nil
}

// AddBalance credits [quantity] to [owner]. Crediting zero is a no-op and
// never allocates a row. It is not checked whether the credited token is a
// supported token; callers gate on the allow-list first.
func AddBalance(
	ctx context.Context,
	mu state.Mutable,
	owner codec.Address,
	quantity Quantity,
) error {
	if quantity.Amount == 0 {
		return nil
	}
	if quantity.Amount < 0 {
		return ErrNegativeAmount
	}

	k := BalanceKey(owner)
	quantities, exists, err := innerGetBalance(mu.GetValue(ctx, k))
	if err != nil {
		return err
	}
	if !exists {
		return mu.Insert(ctx, k, packQuantities([]Quantity{quantity}))
	}

	found := false
	for i := range quantities {
		if quantities[i].Symbol.Equals(quantity.Symbol) {
			if quantities[i].Amount > math.MaxInt64-quantity.Amount {
				return ErrBalanceOverflow
			}
			quantities[i].Amount += quantity.Amount
			found = true
			break
		}
	}
	if !found {
		quantities = append(quantities, quantity)
	}
	return mu.Insert(ctx, k, packQuantities(quantities))
}

// SubBalance debits [quantity] from [owner]. The per-symbol entry is removed
// when it reaches zero and the whole row is removed once no entries remain.
func SubBalance(
	ctx context.Context,
	mu state.Mutable,
	owner codec.Address,
	quantity Quantity,
) error {
	k := BalanceKey(owner)
	quantities, exists, err := innerGetBalance(mu.GetValue(ctx, k))
	if err != nil {
		return err
	}
	if !exists {
		return ErrNoBalanceRow
	}

	found := false
	for i := range quantities {
		if quantities[i].Symbol.Equals(quantity.Symbol) {
			found = true
			if quantities[i].Amount < quantity.Amount {
				return ErrInsufficientBalance
			}
			quantities[i].Amount -= quantity.Amount
			if quantities[i].Amount == 0 {
				quantities = append(quantities[:i], quantities[i+1:]...)
			}
			break
		}
	}
	if !found {
		return ErrSymbolNotFound
	}

	if len(quantities) == 0 {
		return mu.Remove(ctx, k)
	}
	return mu.Insert(ctx, k, packQuantities(quantities))
}
