// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/hypersdk/auth"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/crypto/ed25519"
	"github.com/spf13/cobra"

	erpc "github.com/apocnetwork/extractorvm/rpc"
)

var keyCmd = &cobra.Command{
	Use: "key",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var genKeyCmd = &cobra.Command{
	Use: "generate",
	RunE: func(*cobra.Command, []string) error {
		return handler.Root().GenerateKey()
	},
}

var importKeyCmd = &cobra.Command{
	Use: "import [path]",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return handler.Root().ImportKey(args[0])
	},
}

func lookupSetKeyBalance(choice int, address string, uri string, networkID uint32, chainID ids.ID) error {
	// TODO: just load once
	_, err := handler.GetBalance(
		context.TODO(),
		erpc.NewJSONRPCClient(uri, networkID, chainID),
		mustParseAddress(address),
	)
	if err != nil {
		return err
	}
	return nil
}

var setKeyCmd = &cobra.Command{
	Use: "set",
	RunE: func(*cobra.Command, []string) error {
		return handler.Root().SetKey(lookupSetKeyBalance)
	},
}

func lookupKeyBalance(pk ed25519.PublicKey, uri string, networkID uint32, chainID ids.ID) error {
	_, err := handler.GetBalance(
		context.TODO(),
		erpc.NewJSONRPCClient(uri, networkID, chainID),
		auth.NewED25519Address(pk),
	)
	return err
}

var balanceKeyCmd = &cobra.Command{
	Use: "balance",
	RunE: func(*cobra.Command, []string) error {
		return handler.Root().Balance(checkAllChains, lookupKeyBalance)
	},
}

func mustParseAddress(address string) codec.Address {
	addr, err := (&Controller{}).ParseAddress(address)
	if err != nil {
		panic(err)
	}
	return addr
}
