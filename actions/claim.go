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

var _ chain.Action = (*Claim)(nil)

// Claim withdraws a quantity from the actor's claimable balance. The debit is
// recorded locally and the matching outbound transfer against the token
// contract is emitted as an output, both inside one atomic transaction.
type Claim struct {
	Quantity storage.Quantity `json:"quantity"`
}

func (*Claim) GetTypeID() uint8 {
	return mconsts.ClaimID
}

func (*Claim) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.ConfigKey()):       state.Read,
		string(storage.BalanceKey(actor)): state.All,
	}
}

func (*Claim) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.ConfigChunks, storage.BalanceChunks}
}

func (c *Claim) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) ([][]byte, error) {
	if c.Quantity.Amount <= 0 {
		return nil, ErrOutputNonPositiveQuantity
	}

	// This will fail if the actor does not have a sufficient balance. The
	// debit lands first; if the symbol then turns out to be unsupported the
	// whole transaction reverts and the debit with it.
	if err := storage.SubBalance(ctx, mu, actor, c.Quantity); err != nil {
		return nil, err
	}

	config, err := storage.GetContractConfig(ctx, mu)
	if err != nil {
		return nil, err
	}
	tokenContract, err := config.SupportedTokenContract(c.Quantity.Symbol)
	if err != nil {
		return nil, err
	}

	instruction := &TransferInstruction{
		TokenContract: tokenContract,
		To:            actor,
		Quantity:      c.Quantity,
		Memo:          []byte(WithdrawMemo),
	}
	return [][]byte{instruction.Bytes()}, nil
}

func (*Claim) ComputeUnits(chain.Rules) uint64 {
	return ClaimComputeUnits
}

func (*Claim) Size() int {
	return storage.SymbolLen + consts.Uint64Len
}

func (c *Claim) Marshal(p *codec.Packer) {
	p.PackFixedBytes(c.Quantity.Symbol[:])
	p.PackInt64(c.Quantity.Amount)
}

func UnmarshalClaim(p *codec.Packer) (chain.Action, error) {
	var claim Claim
	sym := make([]byte, storage.SymbolLen)
	p.UnpackFixedBytes(storage.SymbolLen, &sym)
	copy(claim.Quantity.Symbol[:], sym)
	claim.Quantity.Amount = p.UnpackInt64(false)
	return &claim, p.Err()
}

func (*Claim) ValidRange(chain.Rules) (int64, int64) {
	// Returning -1, -1 means that the action is always valid.
	return -1, -1
}
