// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/apocnetwork/extractorvm/actions"
	"github.com/apocnetwork/extractorvm/chaintest"
	"github.com/apocnetwork/extractorvm/storage"
)

func TestDeposit(t *testing.T) {
	depositor := codec.CreateAddress(0, ids.GenerateTestID())
	admin := codec.CreateAddress(0, ids.GenerateTestID())
	tokenContract := codec.CreateAddress(2, ids.GenerateTestID())
	otherContract := codec.CreateAddress(2, ids.GenerateTestID())
	wax := storage.MustSymbol("WAX")
	tlm := storage.MustSymbol("TLM")

	newState := func() *chaintest.InMemoryStore {
		mu := chaintest.NewInMemoryStore()
		seedConfig(t, mu, admin, storage.SupportedToken{Symbol: wax, Contract: tokenContract})
		return mu
	}

	noBalance := func(mu state.Mutable) bool {
		_, exists, err := storage.GetBalance(context.Background(), mu, depositor)
		return err == nil && !exists
	}

	chaintest.Run(t, []chaintest.ActionTest{
		{
			Name: "memo too large",
			Action: &actions.Deposit{
				From:     depositor,
				Quantity: storage.Quantity{Symbol: wax, Amount: 10},
				Memo:     bytes.Repeat([]byte{'x'}, actions.MaxMemoSize+1),
			},
			Actor:       tokenContract,
			State:       newState(),
			ExpectedErr: actions.ErrOutputMemoTooLarge,
		},
		{
			Name: "unknown symbol",
			Action: &actions.Deposit{
				From:     depositor,
				Quantity: storage.Quantity{Symbol: tlm, Amount: 10},
				Memo:     []byte(actions.DepositMemo),
			},
			Actor:       tokenContract,
			State:       newState(),
			ExpectedErr: storage.ErrTokenNotSupported,
			Assertion:   noBalance,
		},
		{
			// Only the allow-listed contract for the symbol may notify a
			// deposit. Anyone else trying to credit a balance is refused.
			Name: "caller is not the token contract",
			Action: &actions.Deposit{
				From:     depositor,
				Quantity: storage.Quantity{Symbol: wax, Amount: 10},
				Memo:     []byte(actions.DepositMemo),
			},
			Actor:       depositor,
			State:       newState(),
			ExpectedErr: storage.ErrTokenNotSupported,
			Assertion:   noBalance,
		},
		{
			Name: "supported symbol from the wrong contract",
			Action: &actions.Deposit{
				From:     depositor,
				Quantity: storage.Quantity{Symbol: wax, Amount: 10},
				Memo:     []byte(actions.DepositMemo),
			},
			Actor:       otherContract,
			State:       newState(),
			ExpectedErr: storage.ErrTokenNotSupported,
			Assertion:   noBalance,
		},
		{
			Name: "wrong memo",
			Action: &actions.Deposit{
				From:     depositor,
				Quantity: storage.Quantity{Symbol: wax, Amount: 10},
				Memo:     []byte("donation"),
			},
			Actor:       tokenContract,
			State:       newState(),
			ExpectedErr: actions.ErrOutputInvalidMemo,
			Assertion:   noBalance,
		},
		{
			Name: "zero quantity is accepted and writes nothing",
			Action: &actions.Deposit{
				From:     depositor,
				Quantity: storage.Quantity{Symbol: wax, Amount: 0},
				Memo:     []byte(actions.DepositMemo),
			},
			Actor:     tokenContract,
			State:     newState(),
			Assertion: noBalance,
		},
		{
			Name: "valid deposit credits the sender",
			Action: &actions.Deposit{
				From:     depositor,
				Quantity: storage.Quantity{Symbol: wax, Amount: 10},
				Memo:     []byte(actions.DepositMemo),
			},
			Actor: tokenContract,
			State: newState(),
			Assertion: func(mu state.Mutable) bool {
				quantities, exists, err := storage.GetBalance(context.Background(), mu, depositor)
				return err == nil && exists && len(quantities) == 1 &&
					quantities[0].Symbol.Equals(wax) && quantities[0].Amount == 10
			},
		},
	})
}
