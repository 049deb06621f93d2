// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions_test

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/apocnetwork/extractorvm/actions"
	"github.com/apocnetwork/extractorvm/chaintest"
	"github.com/apocnetwork/extractorvm/storage"
)

func TestInitContract(t *testing.T) {
	deployer := codec.CreateAddress(0, ids.GenerateTestID())
	stranger := codec.CreateAddress(0, ids.GenerateTestID())
	creator := codec.CreateAddress(0, ids.GenerateTestID())

	initializedState := chaintest.NewInMemoryStore()
	reinitState := chaintest.NewInMemoryStore()

	chaintest.Run(t, []chaintest.ActionTest{
		{
			Name:   "first caller becomes admin",
			Action: &actions.InitContract{DefaultMarketplaceCreator: creator},
			Actor:  deployer,
			State:  initializedState,
			Assertion: func(mu state.Mutable) bool {
				config, err := storage.GetContractConfig(context.Background(), mu)
				if err != nil || config.Admin != deployer || config.Version != storage.DefaultVersion {
					return false
				}
				exists, got, err := storage.GetMarketplace(context.Background(), mu, storage.DefaultMarketplaceName)
				return err == nil && exists && got == creator
			},
		},
		{
			Name:         "non-admin cannot reinitialize",
			SetupActions: []chain.Action{&actions.InitContract{DefaultMarketplaceCreator: creator}},
			SetupActor:   deployer,
			Action:       &actions.InitContract{DefaultMarketplaceCreator: stranger},
			Actor:        stranger,
			State:        reinitState,
			ExpectedErr:  actions.ErrOutputNotAuthorized,
		},
		{
			Name:         "admin reinvocation is a no-op",
			SetupActions: []chain.Action{&actions.InitContract{DefaultMarketplaceCreator: creator}},
			Action:       &actions.InitContract{DefaultMarketplaceCreator: stranger},
			Actor:        deployer,
			State:        chaintest.NewInMemoryStore(),
			Assertion: func(mu state.Mutable) bool {
				// The marketplace row keeps its original creator.
				exists, got, err := storage.GetMarketplace(context.Background(), mu, storage.DefaultMarketplaceName)
				return err == nil && exists && got == creator
			},
		},
	})
}
