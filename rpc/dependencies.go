// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/fees"

	"github.com/apocnetwork/extractorvm/genesis"
	"github.com/apocnetwork/extractorvm/pool"
	"github.com/apocnetwork/extractorvm/storage"
)

type Controller interface {
	Genesis() *genesis.Genesis
	Tracer() trace.Tracer
	GetTransaction(context.Context, ids.ID) (bool, int64, bool, fees.Dimensions, uint64, error)
	GetBalanceFromState(context.Context, codec.Address) ([]storage.Quantity, bool, error)
	GetStakeFromState(context.Context, ids.ID) (*storage.Stake, error)
	Stakes(owner codec.Address, limit int) []*pool.Stake
	GetCounterFromState(context.Context, string) (uint64, error)
	GetContractConfigFromState(context.Context) (*storage.ContractConfig, error)
	GetCollectionAuthorFromState(context.Context, codec.Address) (codec.Address, error)
}
