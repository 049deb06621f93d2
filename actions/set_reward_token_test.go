// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions_test

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/apocnetwork/extractorvm/actions"
	"github.com/apocnetwork/extractorvm/chaintest"
	"github.com/apocnetwork/extractorvm/storage"
)

func TestSetRewardToken(t *testing.T) {
	admin := codec.CreateAddress(0, ids.GenerateTestID())
	stranger := codec.CreateAddress(0, ids.GenerateTestID())
	tokenContract := codec.CreateAddress(2, ids.GenerateTestID())

	newState := func() *chaintest.InMemoryStore {
		mu := chaintest.NewInMemoryStore()
		seedConfig(t, mu, admin)
		return mu
	}

	chaintest.Run(t, []chaintest.ActionTest{
		{
			Name:        "non-admin rejected",
			Action:      &actions.SetRewardToken{TokenContract: tokenContract},
			Actor:       stranger,
			State:       newState(),
			ExpectedErr: actions.ErrOutputNotAuthorized,
		},
		{
			Name:        "uninitialized contract",
			Action:      &actions.SetRewardToken{TokenContract: tokenContract},
			Actor:       admin,
			State:       chaintest.NewInMemoryStore(),
			ExpectedErr: storage.ErrConfigMissing,
		},
		{
			Name:   "admin points at the reward token contract",
			Action: &actions.SetRewardToken{TokenContract: tokenContract},
			Actor:  admin,
			State:  newState(),
			Assertion: func(mu state.Mutable) bool {
				config, err := storage.GetContractConfig(context.Background(), mu)
				return err == nil &&
					config.RewardToken.Contract == tokenContract &&
					config.RewardToken.Symbol.Equals(storage.MustSymbol("APOC"))
			},
		},
	})
}
