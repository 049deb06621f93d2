// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/rpc"
	"github.com/ava-labs/hypersdk/utils"

	erpc "github.com/apocnetwork/extractorvm/rpc"
)

// sendAndWait may not be used concurrently
func sendAndWait(
	ctx context.Context, actions []chain.Action, cli *rpc.JSONRPCClient,
	scli *rpc.WebSocketClient, ecli *erpc.JSONRPCClient, factory chain.AuthFactory, printStatus bool,
) (ids.ID, error) {
	parser, err := ecli.Parser(ctx)
	if err != nil {
		return ids.Empty, err
	}
	_, tx, _, err := cli.GenerateTransaction(ctx, parser, actions, factory)
	if err != nil {
		return ids.Empty, err
	}

	if err := scli.RegisterTx(tx); err != nil {
		return ids.Empty, err
	}
	var res *chain.Result
	for {
		txID, dErr, result, err := scli.ListenTx(ctx)
		if dErr != nil {
			return ids.Empty, dErr
		}
		if err != nil {
			return ids.Empty, err
		}
		if txID == tx.ID() {
			res = result
			break
		}
		// TODO: don't drop these results (may be needed by a different connection)
		utils.Outf("{{yellow}}skipping unexpected transaction:{{/}} %s\n", tx.ID())
	}
	if printStatus {
		handler.Root().PrintStatus(tx.ID(), res.Success)
	}
	return tx.ID(), nil
}
