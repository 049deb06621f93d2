// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/hypersdk/auth"
	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/cli"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/crypto/ed25519"
	"github.com/ava-labs/hypersdk/pubsub"
	"github.com/ava-labs/hypersdk/rpc"
	hutils "github.com/ava-labs/hypersdk/utils"

	"github.com/apocnetwork/extractorvm/consts"
	erpc "github.com/apocnetwork/extractorvm/rpc"
)

var _ cli.Controller = (*Controller)(nil)

type Handler struct {
	h *cli.Handler
}

func NewHandler(h *cli.Handler) *Handler {
	return &Handler{h}
}

func (h *Handler) Root() *cli.Handler {
	return h.h
}

func (h *Handler) DefaultActor() (
	ids.ID, ed25519.PrivateKey, chain.AuthFactory,
	*rpc.JSONRPCClient, *erpc.JSONRPCClient, *rpc.WebSocketClient, error,
) {
	priv, err := h.h.GetDefaultKey()
	if err != nil {
		return ids.Empty, ed25519.EmptyPrivateKey, nil, nil, nil, nil, err
	}
	chainID, uris, err := h.h.GetDefaultChain()
	if err != nil {
		return ids.Empty, ed25519.EmptyPrivateKey, nil, nil, nil, nil, err
	}
	cli := rpc.NewJSONRPCClient(uris[0])
	networkID, _, _, err := cli.Network(context.TODO())
	if err != nil {
		return ids.Empty, ed25519.EmptyPrivateKey, nil, nil, nil, nil, err
	}
	ws, err := rpc.NewWebSocketClient(
		uris[0],
		rpc.DefaultHandshakeTimeout,
		pubsub.MaxPendingMessages,
		pubsub.MaxReadMessageSize,
	)
	if err != nil {
		return ids.Empty, ed25519.EmptyPrivateKey, nil, nil, nil, nil, err
	}
	// For [DefaultActor], we always send requests to the first returned URI.
	return chainID, priv, auth.NewED25519Factory(
			priv,
		), cli,
		erpc.NewJSONRPCClient(
			uris[0],
			networkID,
			chainID,
		), ws, nil
}

// GetBalance prints every token entry in the actor's balance row and returns
// the entries.
func (*Handler) GetBalance(
	ctx context.Context,
	cli *erpc.JSONRPCClient,
	addr codec.Address,
) ([]erpc.BalanceEntry, error) {
	saddr := codec.MustAddressBech32(consts.HRP, addr)
	balances, err := cli.Balance(ctx, saddr)
	if err != nil {
		return nil, err
	}
	if len(balances) == 0 {
		hutils.Outf("{{red}}balance:{{/}} 0\n")
		hutils.Outf("{{red}}please deposit funds for %s{{/}}\n", saddr)
		hutils.Outf("{{red}}exiting...{{/}}\n")
		return nil, nil
	}
	for _, b := range balances {
		hutils.Outf(
			"{{yellow}}balance:{{/}} %d %s\n",
			b.Amount,
			b.Symbol,
		)
	}
	return balances, nil
}

type Controller struct {
	databasePath string
}

func NewController(databasePath string) *Controller {
	return &Controller{databasePath}
}

func (c *Controller) DatabasePath() string {
	return c.databasePath
}

func (*Controller) Symbol() string {
	return consts.Symbol
}

func (*Controller) Decimals() uint8 {
	return consts.Decimals
}

func (*Controller) Address(addr codec.Address) string {
	return codec.MustAddressBech32(consts.HRP, addr)
}

func (*Controller) ParseAddress(address string) (codec.Address, error) {
	return codec.ParseAddressBech32(consts.HRP, address)
}
