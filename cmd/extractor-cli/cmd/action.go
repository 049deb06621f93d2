// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"strconv"
	"strings"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	hconsts "github.com/ava-labs/hypersdk/consts"
	"github.com/spf13/cobra"

	"github.com/apocnetwork/extractorvm/actions"
	"github.com/apocnetwork/extractorvm/consts"
	"github.com/apocnetwork/extractorvm/storage"
)

var actionCmd = &cobra.Command{
	Use: "action",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var initContractCmd = &cobra.Command{
	Use: "init-contract",
	RunE: func(*cobra.Command, []string) error {
		ctx := context.Background()
		_, _, factory, cli, ecli, ws, err := handler.DefaultActor()
		if err != nil {
			return err
		}
		defer ws.Close()

		creator, err := handler.Root().PromptAddress("default marketplace creator")
		if err != nil {
			return err
		}

		cont, err := handler.Root().PromptContinue()
		if !cont || err != nil {
			return err
		}

		_, err = sendAndWait(ctx, []chain.Action{&actions.InitContract{
			DefaultMarketplaceCreator: creator,
		}}, cli, ws, ecli, factory, true)
		return err
	},
}

var setVersionCmd = &cobra.Command{
	Use: "set-version",
	RunE: func(*cobra.Command, []string) error {
		ctx := context.Background()
		_, _, factory, cli, ecli, ws, err := handler.DefaultActor()
		if err != nil {
			return err
		}
		defer ws.Close()

		version, err := handler.Root().PromptString("version", 1, actions.MaxVersionSize)
		if err != nil {
			return err
		}

		cont, err := handler.Root().PromptContinue()
		if !cont || err != nil {
			return err
		}

		_, err = sendAndWait(ctx, []chain.Action{&actions.SetVersion{
			Version: []byte(version),
		}}, cli, ws, ecli, factory, true)
		return err
	},
}

var setRewardTokenCmd = &cobra.Command{
	Use: "set-reward-token",
	RunE: func(*cobra.Command, []string) error {
		ctx := context.Background()
		_, _, factory, cli, ecli, ws, err := handler.DefaultActor()
		if err != nil {
			return err
		}
		defer ws.Close()

		contract, err := handler.Root().PromptAddress("reward token contract")
		if err != nil {
			return err
		}

		cont, err := handler.Root().PromptContinue()
		if !cont || err != nil {
			return err
		}

		_, err = sendAndWait(ctx, []chain.Action{&actions.SetRewardToken{
			TokenContract: contract,
		}}, cli, ws, ecli, factory, true)
		return err
	},
}

func promptAssetIDs() ([]uint64, error) {
	raw, err := handler.Root().PromptString("asset ids (comma-separated)", 1, hconsts.MaxInt)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(raw, ",")
	assetIDs := make([]uint64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		assetIDs = append(assetIDs, id)
	}
	return assetIDs, nil
}

var createStakeCmd = &cobra.Command{
	Use: "create-stake",
	RunE: func(*cobra.Command, []string) error {
		ctx := context.Background()
		_, _, factory, cli, ecli, ws, err := handler.DefaultActor()
		if err != nil {
			return err
		}
		defer ws.Close()

		assetIDs, err := promptAssetIDs()
		if err != nil {
			return err
		}

		cont, err := handler.Root().PromptContinue()
		if !cont || err != nil {
			return err
		}

		_, err = sendAndWait(ctx, []chain.Action{&actions.CreateStake{
			AssetIDs: assetIDs,
		}}, cli, ws, ecli, factory, true)
		return err
	},
}

var cancelStakeCmd = &cobra.Command{
	Use: "cancel-stake",
	RunE: func(*cobra.Command, []string) error {
		ctx := context.Background()
		_, _, factory, cli, ecli, ws, err := handler.DefaultActor()
		if err != nil {
			return err
		}
		defer ws.Close()

		stakeID, err := handler.Root().PromptID("stake id")
		if err != nil {
			return err
		}

		// CancelStake repeats the stored stake's owner and asset ids, so
		// fetch them from the node.
		stake, err := ecli.Stake(ctx, stakeID)
		if err != nil {
			return err
		}
		owner, err := codec.ParseAddressBech32(consts.HRP, stake.Owner)
		if err != nil {
			return err
		}

		cont, err := handler.Root().PromptContinue()
		if !cont || err != nil {
			return err
		}

		_, err = sendAndWait(ctx, []chain.Action{&actions.CancelStake{
			Stake:    stakeID,
			Owner:    owner,
			AssetIDs: stake.AssetIDs,
		}}, cli, ws, ecli, factory, true)
		return err
	},
}

func promptQuantity() (storage.Quantity, error) {
	rawSymbol, err := handler.Root().PromptString("symbol", 1, storage.SymbolLen)
	if err != nil {
		return storage.Quantity{}, err
	}
	symbol, err := storage.NewSymbol(rawSymbol)
	if err != nil {
		return storage.Quantity{}, err
	}
	amount, err := handler.Root().PromptInt("amount", hconsts.MaxInt)
	if err != nil {
		return storage.Quantity{}, err
	}
	return storage.Quantity{Symbol: symbol, Amount: int64(amount)}, nil
}

var claimCmd = &cobra.Command{
	Use: "claim",
	RunE: func(*cobra.Command, []string) error {
		ctx := context.Background()
		_, _, factory, cli, ecli, ws, err := handler.DefaultActor()
		if err != nil {
			return err
		}
		defer ws.Close()

		quantity, err := promptQuantity()
		if err != nil {
			return err
		}

		cont, err := handler.Root().PromptContinue()
		if !cont || err != nil {
			return err
		}

		_, err = sendAndWait(ctx, []chain.Action{&actions.Claim{
			Quantity: quantity,
		}}, cli, ws, ecli, factory, true)
		return err
	},
}

var depositCmd = &cobra.Command{
	Use: "deposit",
	RunE: func(*cobra.Command, []string) error {
		ctx := context.Background()
		_, _, factory, cli, ecli, ws, err := handler.DefaultActor()
		if err != nil {
			return err
		}
		defer ws.Close()

		from, err := handler.Root().PromptAddress("from")
		if err != nil {
			return err
		}
		quantity, err := promptQuantity()
		if err != nil {
			return err
		}
		memo, err := handler.Root().PromptString("memo", 1, actions.MaxMemoSize)
		if err != nil {
			return err
		}

		cont, err := handler.Root().PromptContinue()
		if !cont || err != nil {
			return err
		}

		_, err = sendAndWait(ctx, []chain.Action{&actions.Deposit{
			From:     from,
			Quantity: quantity,
			Memo:     []byte(memo),
		}}, cli, ws, ecli, factory, true)
		return err
	},
}
