// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions_test

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"
	"github.com/stretchr/testify/require"

	"github.com/apocnetwork/extractorvm/actions"
	"github.com/apocnetwork/extractorvm/chaintest"
	"github.com/apocnetwork/extractorvm/storage"
)

func seedConfig(t *testing.T, mu *chaintest.InMemoryStore, admin codec.Address, tokens ...storage.SupportedToken) {
	t.Helper()
	config := storage.DefaultContractConfig(admin)
	config.SupportedTokens = tokens
	require.NoError(t, storage.SetContractConfig(context.Background(), mu, config))
}

func TestClaim(t *testing.T) {
	actor := codec.CreateAddress(0, ids.GenerateTestID())
	admin := codec.CreateAddress(0, ids.GenerateTestID())
	tokenContract := codec.CreateAddress(2, ids.GenerateTestID())
	wax := storage.MustSymbol("WAX")
	tlm := storage.MustSymbol("TLM")

	newState := func(balance int64) *chaintest.InMemoryStore {
		mu := chaintest.NewInMemoryStore()
		seedConfig(t, mu, admin, storage.SupportedToken{Symbol: wax, Contract: tokenContract})
		if balance > 0 {
			require.NoError(t, storage.AddBalance(context.Background(), mu, actor, storage.Quantity{Symbol: wax, Amount: balance}))
		}
		return mu
	}

	balanceIs := func(want int64) func(state.Mutable) bool {
		return func(mu state.Mutable) bool {
			quantities, exists, err := storage.GetBalance(context.Background(), mu, actor)
			if err != nil {
				return false
			}
			if want == 0 {
				// A fully drained row is removed outright.
				return !exists
			}
			return exists && len(quantities) == 1 && quantities[0].Amount == want
		}
	}

	chaintest.Run(t, []chaintest.ActionTest{
		{
			Name:        "zero quantity",
			Action:      &actions.Claim{Quantity: storage.Quantity{Symbol: wax, Amount: 0}},
			Actor:       actor,
			State:       newState(100),
			ExpectedErr: actions.ErrOutputNonPositiveQuantity,
		},
		{
			Name:        "negative quantity",
			Action:      &actions.Claim{Quantity: storage.Quantity{Symbol: wax, Amount: -1}},
			Actor:       actor,
			State:       newState(100),
			ExpectedErr: actions.ErrOutputNonPositiveQuantity,
		},
		{
			// The debit lands before the allow-list check, so the actor
			// needs a balance in the unsupported token to reach it. On
			// chain the whole transaction reverts, debit included.
			Name:   "unsupported token",
			Action: &actions.Claim{Quantity: storage.Quantity{Symbol: tlm, Amount: 10}},
			Actor:  actor,
			State: func() *chaintest.InMemoryStore {
				mu := newState(0)
				require.NoError(t, storage.AddBalance(context.Background(), mu, actor, storage.Quantity{Symbol: tlm, Amount: 50}))
				return mu
			}(),
			ExpectedErr: storage.ErrTokenNotSupported,
		},
		{
			Name:        "unsupported token with no balance fails on the debit",
			Action:      &actions.Claim{Quantity: storage.Quantity{Symbol: tlm, Amount: 10}},
			Actor:       actor,
			State:       newState(100),
			ExpectedErr: storage.ErrSymbolNotFound,
			Assertion:   balanceIs(100),
		},
		{
			Name:        "insufficient balance leaves the balance alone",
			Action:      &actions.Claim{Quantity: storage.Quantity{Symbol: wax, Amount: 101}},
			Actor:       actor,
			State:       newState(100),
			ExpectedErr: storage.ErrInsufficientBalance,
			Assertion:   balanceIs(100),
		},
		{
			Name:   "partial withdrawal",
			Action: &actions.Claim{Quantity: storage.Quantity{Symbol: wax, Amount: 30}},
			Actor:  actor,
			State:  newState(100),
			ExpectedOutputs: [][]byte{(&actions.TransferInstruction{
				TokenContract: tokenContract,
				To:            actor,
				Quantity:      storage.Quantity{Symbol: wax, Amount: 30},
				Memo:          []byte(actions.WithdrawMemo),
			}).Bytes()},
			Assertion: balanceIs(70),
		},
		{
			Name:   "full withdrawal removes the row",
			Action: &actions.Claim{Quantity: storage.Quantity{Symbol: wax, Amount: 100}},
			Actor:  actor,
			State:  newState(100),
			ExpectedOutputs: [][]byte{(&actions.TransferInstruction{
				TokenContract: tokenContract,
				To:            actor,
				Quantity:      storage.Quantity{Symbol: wax, Amount: 100},
				Memo:          []byte(actions.WithdrawMemo),
			}).Bytes()},
			Assertion: balanceIs(0),
		},
	})
}
