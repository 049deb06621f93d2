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

func TestSetVersion(t *testing.T) {
	admin := codec.CreateAddress(0, ids.GenerateTestID())
	stranger := codec.CreateAddress(0, ids.GenerateTestID())

	newState := func() *chaintest.InMemoryStore {
		mu := chaintest.NewInMemoryStore()
		seedConfig(t, mu, admin)
		return mu
	}

	chaintest.Run(t, []chaintest.ActionTest{
		{
			Name:        "empty version",
			Action:      &actions.SetVersion{},
			Actor:       admin,
			State:       newState(),
			ExpectedErr: actions.ErrOutputVersionEmpty,
		},
		{
			Name:        "oversized version",
			Action:      &actions.SetVersion{Version: bytes.Repeat([]byte{'9'}, actions.MaxVersionSize+1)},
			Actor:       admin,
			State:       newState(),
			ExpectedErr: actions.ErrOutputVersionTooLarge,
		},
		{
			Name:        "non-admin rejected",
			Action:      &actions.SetVersion{Version: []byte("2.0.0")},
			Actor:       stranger,
			State:       newState(),
			ExpectedErr: actions.ErrOutputNotAuthorized,
		},
		{
			Name:        "uninitialized contract",
			Action:      &actions.SetVersion{Version: []byte("2.0.0")},
			Actor:       admin,
			State:       chaintest.NewInMemoryStore(),
			ExpectedErr: storage.ErrConfigMissing,
		},
		{
			Name:   "admin updates the version",
			Action: &actions.SetVersion{Version: []byte("2.0.0")},
			Actor:  admin,
			State:  newState(),
			Assertion: func(mu state.Mutable) bool {
				config, err := storage.GetContractConfig(context.Background(), mu)
				return err == nil && config.Version == "2.0.0"
			},
		},
	})
}
