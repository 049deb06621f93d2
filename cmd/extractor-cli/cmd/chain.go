// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/ava-labs/avalanchego/utils/math"
	hconsts "github.com/ava-labs/hypersdk/consts"
	"github.com/ava-labs/hypersdk/fees"
	"github.com/ava-labs/hypersdk/pubsub"
	"github.com/ava-labs/hypersdk/rpc"
	"github.com/ava-labs/hypersdk/utils"
	"github.com/ava-labs/hypersdk/window"
	"github.com/spf13/cobra"

	"github.com/apocnetwork/extractorvm/actions"
	"github.com/apocnetwork/extractorvm/consts"
	erpc "github.com/apocnetwork/extractorvm/rpc"
)

var chainCmd = &cobra.Command{
	Use: "chain",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var importChainCmd = &cobra.Command{
	Use: "import",
	RunE: func(_ *cobra.Command, args []string) error {
		return handler.Root().ImportChain()
	},
}

var setChainCmd = &cobra.Command{
	Use: "set",
	RunE: func(*cobra.Command, []string) error {
		return handler.Root().SetDefaultChain()
	},
}

var chainInfoCmd = &cobra.Command{
	Use: "info",
	RunE: func(_ *cobra.Command, args []string) error {
		return handler.Root().PrintChainInfo()
	},
}

func summarizeAction(act interface{}, outputs [][]byte) string {
	switch action := act.(type) {
	case *actions.InitContract:
		return fmt.Sprintf("default marketplace creator: %s", (&Controller{}).Address(action.DefaultMarketplaceCreator))
	case *actions.SetVersion:
		return fmt.Sprintf("version: %s", string(action.Version))
	case *actions.SetRewardToken:
		return fmt.Sprintf("reward token contract: %s", (&Controller{}).Address(action.TokenContract))
	case *actions.CreateStake:
		if len(outputs) > 0 {
			if event, err := actions.UnmarshalStakeEvent(outputs[0]); err == nil {
				return fmt.Sprintf("stake: %s stakeID: %d assets: %v", event.ID, event.StakeID, event.AssetIDs)
			}
		}
		return fmt.Sprintf("assets: %v", action.AssetIDs)
	case *actions.CancelStake:
		return fmt.Sprintf("stake: %s assets: %v", action.Stake, action.AssetIDs)
	case *actions.Claim:
		if len(outputs) > 0 {
			if instruction, err := actions.UnmarshalTransferInstruction(outputs[0]); err == nil {
				return fmt.Sprintf(
					"%d %s -> %s (memo: %s)",
					instruction.Quantity.Amount,
					instruction.Quantity.Symbol,
					(&Controller{}).Address(instruction.To),
					string(instruction.Memo),
				)
			}
		}
		return fmt.Sprintf("%d %s", action.Quantity.Amount, action.Quantity.Symbol)
	case *actions.Deposit:
		return fmt.Sprintf(
			"%d %s from %s (memo: %s)",
			action.Quantity.Amount,
			action.Quantity.Symbol,
			(&Controller{}).Address(action.From),
			string(action.Memo),
		)
	}
	return ""
}

var watchChainCmd = &cobra.Command{
	Use: "watch",
	RunE: func(_ *cobra.Command, args []string) error {
		ctx := context.Background()
		chainID, uris, err := handler.Root().PromptChain("select chainID", nil)
		if err != nil {
			return err
		}
		if err := handler.Root().CloseDatabase(); err != nil {
			return err
		}
		rcli := rpc.NewJSONRPCClient(uris[0])
		networkID, _, _, err := rcli.Network(context.TODO())
		if err != nil {
			return err
		}
		cli := erpc.NewJSONRPCClient(uris[0], networkID, chainID)
		utils.Outf("{{yellow}}uri:{{/}} %s\n", uris[0])
		scli, err := rpc.NewWebSocketClient(
			uris[0],
			rpc.DefaultHandshakeTimeout,
			pubsub.MaxPendingMessages,
			pubsub.MaxReadMessageSize,
		)
		if err != nil {
			return err
		}
		defer scli.Close()
		if err := scli.RegisterBlocks(); err != nil {
			return err
		}
		parser, err := cli.Parser(ctx)
		if err != nil {
			return err
		}
		utils.Outf("{{green}}watching for new blocks on %s 👀{{/}}\n", chainID)
		var (
			start             time.Time
			lastBlock         int64
			lastBlockDetailed time.Time
			tpsWindow         = window.Window{}
		)
		for ctx.Err() == nil {
			blk, results, _, err := scli.ListenBlock(ctx, parser)
			if err != nil {
				return err
			}
			now := time.Now()
			if start.IsZero() {
				start = now
			}
			consumed := fees.Dimensions{}
			for _, result := range results {
				nconsumed, err := fees.Add(consumed, result.Units)
				if err != nil {
					return err
				}
				consumed = nconsumed
			}
			if lastBlock != 0 {
				since := now.Unix() - lastBlock
				newWindow, err := window.Roll(tpsWindow, int(since))
				if err != nil {
					return err
				}
				tpsWindow = newWindow
				window.Update(&tpsWindow, window.WindowSliceSize-hconsts.Uint64Len, uint64(len(blk.Txs)))
				runningDuration := time.Since(start)
				tpsDivisor := math.Min(window.WindowSize, runningDuration.Seconds())
				utils.Outf(
					"{{green}}height:{{/}}%d {{green}}txs:{{/}}%d {{green}}units:{{/}}%s {{green}}root:{{/}}%s {{green}}TPS:{{/}}%.2f {{green}}split:{{/}}%dms\n",
					blk.Hght,
					len(blk.Txs),
					consumed,
					blk.StateRoot,
					float64(window.Sum(tpsWindow))/tpsDivisor,
					time.Since(lastBlockDetailed).Milliseconds(),
				)
			} else {
				utils.Outf(
					"{{green}}height:{{/}}%d {{green}}txs:{{/}}%d {{green}}units:{{/}}%s {{green}}root:{{/}}%s\n",
					blk.Hght,
					len(blk.Txs),
					consumed,
					blk.StateRoot,
				)
				window.Update(&tpsWindow, window.WindowSliceSize-hconsts.Uint64Len, uint64(len(blk.Txs)))
			}
			lastBlock = now.Unix()
			lastBlockDetailed = now
			if hideTxs {
				continue
			}
			for i, tx := range blk.Txs {
				result := results[i]
				actor := tx.Auth.Actor()
				status := "⚠️"
				summaryStr := string(result.Error)
				if result.Success {
					status = "✅"
					summaries := make([]string, 0, len(tx.Actions))
					for j, act := range tx.Actions {
						var outputs [][]byte
						if len(result.Outputs) > j {
							outputs = result.Outputs[j]
						}
						summaries = append(summaries, summarizeAction(act, outputs))
					}
					summaryStr = strings.Join(summaries, "; ")
				}
				utils.Outf(
					"%s {{yellow}}%s{{/}} {{yellow}}actor:{{/}} %s {{yellow}}fee:{{/}} %s %s {{yellow}}consumed:{{/}} [%s] {{yellow}}summary (%s):{{/}} [%s]\n",
					status,
					tx.ID(),
					(&Controller{}).Address(actor),
					utils.FormatBalance(result.Fee, consts.Decimals),
					consts.Symbol,
					result.Units,
					reflect.TypeOf(tx.Actions),
					summaryStr,
				)
			}
		}
		return nil
	},
}
