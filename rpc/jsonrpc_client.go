// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"strings"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/requester"
	"github.com/ava-labs/hypersdk/rpc"
	"github.com/ava-labs/hypersdk/utils"

	"github.com/apocnetwork/extractorvm/consts"
	"github.com/apocnetwork/extractorvm/genesis"
	"github.com/apocnetwork/extractorvm/pool"
	_ "github.com/apocnetwork/extractorvm/registry" // ensure registry populated
)

const JSONRPCEndpoint = "/extractorapi"

type JSONRPCClient struct {
	requester *requester.EndpointRequester

	networkID uint32
	chainID   ids.ID
	g         *genesis.Genesis
}

// NewJSONRPCClient creates a new client object.
func NewJSONRPCClient(uri string, networkID uint32, chainID ids.ID) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	uri += JSONRPCEndpoint
	req := requester.New(uri, consts.Name)
	return &JSONRPCClient{requester: req, networkID: networkID, chainID: chainID}
}

func (cli *JSONRPCClient) Genesis(ctx context.Context) (*genesis.Genesis, error) {
	if cli.g != nil {
		return cli.g, nil
	}

	resp := new(GenesisReply)
	err := cli.requester.SendRequest(
		ctx,
		"genesis",
		nil,
		resp,
	)
	if err != nil {
		return nil, err
	}
	cli.g = resp.Genesis
	return resp.Genesis, nil
}

func (cli *JSONRPCClient) Tx(ctx context.Context, id ids.ID) (bool, bool, int64, uint64, error) {
	resp := new(TxReply)
	err := cli.requester.SendRequest(
		ctx,
		"tx",
		&TxArgs{TxID: id},
		resp,
	)
	switch {
	// We use string parsing here because the JSON-RPC library we use may not
	// allows us to perform errors.Is.
	case err != nil && strings.Contains(err.Error(), ErrTxNotFound.Error()):
		return false, false, -1, 0, nil
	case err != nil:
		return false, false, -1, 0, err
	}
	return true, resp.Success, resp.Timestamp, resp.Fee, nil
}

func (cli *JSONRPCClient) Balance(ctx context.Context, addr string) ([]BalanceEntry, error) {
	resp := new(BalanceReply)
	err := cli.requester.SendRequest(
		ctx,
		"balance",
		&BalanceArgs{
			Address: addr,
		},
		resp,
	)
	return resp.Balances, err
}

func (cli *JSONRPCClient) Stake(ctx context.Context, stake ids.ID) (*StakeReply, error) {
	resp := new(StakeReply)
	err := cli.requester.SendRequest(
		ctx,
		"stake",
		&StakeArgs{
			Stake: stake,
		},
		resp,
	)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (cli *JSONRPCClient) Stakes(ctx context.Context, owner string) ([]*pool.Stake, error) {
	resp := new(StakesReply)
	err := cli.requester.SendRequest(
		ctx,
		"stakes",
		&StakesArgs{
			Owner: owner,
		},
		resp,
	)
	return resp.Stakes, err
}

func (cli *JSONRPCClient) Counter(ctx context.Context, name string) (uint64, error) {
	resp := new(CounterReply)
	err := cli.requester.SendRequest(
		ctx,
		"counter",
		&CounterArgs{
			Name: name,
		},
		resp,
	)
	return resp.Next, err
}

func (cli *JSONRPCClient) ContractConfig(ctx context.Context) (*ContractConfigReply, error) {
	resp := new(ContractConfigReply)
	err := cli.requester.SendRequest(
		ctx,
		"contractConfig",
		nil,
		resp,
	)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (cli *JSONRPCClient) CollectionAuthor(ctx context.Context, collection string) (string, error) {
	resp := new(CollectionAuthorReply)
	err := cli.requester.SendRequest(
		ctx,
		"collectionAuthor",
		&CollectionAuthorArgs{
			Collection: collection,
		},
		resp,
	)
	return resp.Author, err
}

// WaitForBalance blocks until [addr] holds at least [min] of [symbol].
func (cli *JSONRPCClient) WaitForBalance(
	ctx context.Context,
	addr string,
	symbol string,
	min int64,
) error {
	return rpc.Wait(ctx, func(ctx context.Context) (bool, error) {
		balances, err := cli.Balance(ctx, addr)
		if err != nil {
			return false, err
		}
		var amount int64
		for _, b := range balances {
			if b.Symbol == symbol {
				amount = b.Amount
				break
			}
		}
		shouldExit := amount >= min
		if !shouldExit {
			utils.Outf(
				"{{yellow}}waiting for %d %s balance: %s{{/}}\n",
				min,
				symbol,
				addr,
			)
		}
		return shouldExit, nil
	})
}

func (cli *JSONRPCClient) WaitForTransaction(ctx context.Context, txID ids.ID) (bool, uint64, error) {
	var success bool
	var fee uint64
	if err := rpc.Wait(ctx, func(ctx context.Context) (bool, error) {
		found, isuccess, _, ifee, err := cli.Tx(ctx, txID)
		if err != nil {
			return false, err
		}
		success = isuccess
		fee = ifee
		return found, nil
	}); err != nil {
		return false, 0, err
	}
	return success, fee, nil
}

var _ chain.Parser = (*Parser)(nil)

type Parser struct {
	networkID uint32
	chainID   ids.ID
	genesis   *genesis.Genesis
}

func (p *Parser) ChainID() ids.ID {
	return p.chainID
}

func (p *Parser) Rules(t int64) chain.Rules {
	return p.genesis.Rules(t, p.networkID, p.chainID)
}

func (*Parser) Registry() (chain.ActionRegistry, chain.AuthRegistry) {
	return consts.ActionRegistry, consts.AuthRegistry
}

func (cli *JSONRPCClient) Parser(ctx context.Context) (chain.Parser, error) {
	g, err := cli.Genesis(ctx)
	if err != nil {
		return nil, err
	}
	return &Parser{cli.networkID, cli.chainID, g}, nil
}
