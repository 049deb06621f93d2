// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package controller

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

func (c *Controller) Genesis() *genesis.Genesis {
	return c.genesis
}

func (c *Controller) Tracer() trace.Tracer {
	return c.inner.Tracer()
}

func (c *Controller) GetTransaction(
	ctx context.Context,
	txID ids.ID,
) (bool, int64, bool, fees.Dimensions, uint64, error) {
	return storage.GetTransaction(ctx, c.metaDB, txID)
}

func (c *Controller) GetBalanceFromState(
	ctx context.Context,
	owner codec.Address,
) ([]storage.Quantity, bool, error) {
	return storage.GetBalanceFromState(ctx, c.inner.ReadState, owner)
}

func (c *Controller) GetStakeFromState(
	ctx context.Context,
	stake ids.ID,
) (*storage.Stake, error) {
	return storage.GetStakeFromState(ctx, c.inner.ReadState, stake)
}

func (c *Controller) Stakes(owner codec.Address, limit int) []*pool.Stake {
	return c.stakePool.Stakes(owner, limit)
}

func (c *Controller) GetCounterFromState(
	ctx context.Context,
	name string,
) (uint64, error) {
	return storage.GetCounterFromState(ctx, c.inner.ReadState, name)
}

func (c *Controller) GetContractConfigFromState(
	ctx context.Context,
) (*storage.ContractConfig, error) {
	return storage.GetContractConfigFromState(ctx, c.inner.ReadState)
}

func (c *Controller) GetCollectionAuthorFromState(
	ctx context.Context,
	collection codec.Address,
) (codec.Address, error) {
	return storage.GetCollectionAuthorFromState(ctx, c.inner.ReadState, collection)
}
