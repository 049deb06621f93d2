// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/consts"

	"github.com/apocnetwork/extractorvm/storage"
)

// Actions do not perform external calls directly. Anything that must leave
// the chain (audit notifications, outbound token transfers) is packed into
// the action's outputs and dispatched by the controller once the transaction
// has been accepted, so no side effect can escape a reverted transaction.

// StakeEvent is the immutable audit record emitted when a stake is created,
// addressed to the stake's owner.
type StakeEvent struct {
	ID         ids.ID        `json:"id"`
	StakeID    uint64        `json:"stakeId"`
	Owner      codec.Address `json:"owner"`
	AssetIDs   []uint64      `json:"assetIds"`
	Collection codec.Address `json:"collection"`
}

func (e *StakeEvent) Bytes() []byte {
	size := ids.IDLen + consts.Uint64Len + codec.AddressLen*2 + consts.IntLen + len(e.AssetIDs)*consts.Uint64Len
	p := codec.NewWriter(size, size)
	p.PackID(e.ID)
	p.PackUint64(e.StakeID)
	p.PackAddress(e.Owner)
	p.PackInt(len(e.AssetIDs))
	for _, id := range e.AssetIDs {
		p.PackUint64(id)
	}
	p.PackAddress(e.Collection)
	return p.Bytes()
}

func UnmarshalStakeEvent(b []byte) (*StakeEvent, error) {
	p := codec.NewReader(b, len(b))
	var e StakeEvent
	p.UnpackID(true, &e.ID)
	e.StakeID = p.UnpackUint64(true)
	p.UnpackAddress(&e.Owner)
	count := p.UnpackInt(true)
	e.AssetIDs = make([]uint64, count)
	for i := range e.AssetIDs {
		e.AssetIDs[i] = p.UnpackUint64(true)
	}
	p.UnpackAddress(&e.Collection)
	return &e, p.Err()
}

// TransferInstruction is an outbound transfer call against a token contract,
// emitted by Claim after the local debit has been recorded.
type TransferInstruction struct {
	TokenContract codec.Address    `json:"tokenContract"`
	To            codec.Address    `json:"to"`
	Quantity      storage.Quantity `json:"quantity"`
	Memo          []byte           `json:"memo"`
}

func (i *TransferInstruction) Bytes() []byte {
	size := codec.AddressLen*2 + storage.SymbolLen + consts.Uint64Len + codec.BytesLen(i.Memo)
	p := codec.NewWriter(size, size)
	p.PackAddress(i.TokenContract)
	p.PackAddress(i.To)
	p.PackFixedBytes(i.Quantity.Symbol[:])
	p.PackInt64(i.Quantity.Amount)
	p.PackBytes(i.Memo)
	return p.Bytes()
}

func UnmarshalTransferInstruction(b []byte) (*TransferInstruction, error) {
	p := codec.NewReader(b, len(b))
	var i TransferInstruction
	p.UnpackAddress(&i.TokenContract)
	p.UnpackAddress(&i.To)
	sym := make([]byte, storage.SymbolLen)
	p.UnpackFixedBytes(storage.SymbolLen, &sym)
	copy(i.Quantity.Symbol[:], sym)
	i.Quantity.Amount = p.UnpackInt64(true)
	p.UnpackBytes(MaxMemoSize, false, &i.Memo)
	return &i, p.Err()
}
