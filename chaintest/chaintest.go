// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package chaintest provides a table-driven harness for exercising actions
// against in-memory state views.
package chaintest

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"
)

// InMemoryStore is a trivial state.Mutable over a plain map. Its Storage
// field can be handed to tstate.TState.NewView once seeded.
type InMemoryStore struct {
	Storage map[string][]byte
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{Storage: make(map[string][]byte)}
}

func (s *InMemoryStore) GetValue(_ context.Context, key []byte) ([]byte, error) {
	v, ok := s.Storage[string(key)]
	if !ok {
		return nil, database.ErrNotFound
	}
	return v, nil
}

func (s *InMemoryStore) Insert(_ context.Context, key []byte, value []byte) error {
	s.Storage[string(key)] = value
	return nil
}

func (s *InMemoryStore) Remove(_ context.Context, key []byte) error {
	delete(s.Storage, string(key))
	return nil
}

var _ state.Mutable = (*InMemoryStore)(nil)

// ActionTest is a single invariant check: execute [Action] as [Actor] against
// [State] and compare outputs and error.
type ActionTest struct {
	Name string

	Action chain.Action
	Actor  codec.Address

	// SetupActions are executed (and required to succeed) before [Action].
	SetupActions []chain.Action
	// SetupActor overrides [Actor] for the setup actions when set.
	SetupActor codec.Address

	State state.Mutable

	// ActionID, when set, is passed to Execute in place of a generated id.
	// Actions that key rows by their action id need it fixed to assert on
	// the rows they write.
	ActionID ids.ID

	Timestamp       int64
	ExpectedOutputs [][]byte
	ExpectedErr     error

	// Assertion, when set, inspects post-execution state.
	Assertion func(state.Mutable) bool
}

// Run executes every test in order against its own state.
func Run(t *testing.T, tests []ActionTest) {
	require := require.New(t)
	for _, test := range tests {
		t.Run(test.Name, func(*testing.T) {
			ctx := context.TODO()
			setupActor := test.SetupActor
			if setupActor == codec.EmptyAddress {
				setupActor = test.Actor
			}
			for _, setup := range test.SetupActions {
				_, err := setup.Execute(ctx, nil, test.State, test.Timestamp, setupActor, ids.GenerateTestID())
				require.NoError(err, "%s: setup action failed", test.Name)
			}

			actionID := test.ActionID
			if actionID == ids.Empty {
				actionID = ids.GenerateTestID()
			}
			outputs, err := test.Action.Execute(ctx, nil, test.State, test.Timestamp, test.Actor, actionID)
			require.ErrorIs(err, test.ExpectedErr, "%s: unexpected error", test.Name)
			require.Equal(test.ExpectedOutputs, outputs, "%s: unexpected outputs", test.Name)

			if test.Assertion != nil {
				require.True(test.Assertion(test.State), "%s: assertion failed", test.Name)
			}
		})
	}
}
