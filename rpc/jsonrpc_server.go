// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"net/http"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/fees"

	"github.com/apocnetwork/extractorvm/consts"
	"github.com/apocnetwork/extractorvm/genesis"
	"github.com/apocnetwork/extractorvm/pool"
)

const stakesToSend = 128

type JSONRPCServer struct {
	c Controller
}

func NewJSONRPCServer(c Controller) *JSONRPCServer {
	return &JSONRPCServer{c}
}

type GenesisReply struct {
	Genesis *genesis.Genesis `json:"genesis"`
}

func (j *JSONRPCServer) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = j.c.Genesis()
	return nil
}

type TxArgs struct {
	TxID ids.ID `json:"txId"`
}

type TxReply struct {
	Timestamp int64           `json:"timestamp"`
	Success   bool            `json:"success"`
	Units     fees.Dimensions `json:"units"`
	Fee       uint64          `json:"fee"`
}

func (j *JSONRPCServer) Tx(req *http.Request, args *TxArgs, reply *TxReply) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "Server.Tx")
	defer span.End()

	found, t, success, units, fee, err := j.c.GetTransaction(ctx, args.TxID)
	if err != nil {
		return err
	}
	if !found {
		return ErrTxNotFound
	}
	reply.Timestamp = t
	reply.Success = success
	reply.Units = units
	reply.Fee = fee
	return nil
}

type BalanceArgs struct {
	Address string `json:"address"`
}

type BalanceEntry struct {
	Symbol string `json:"symbol"`
	Amount int64  `json:"amount"`
}

type BalanceReply struct {
	Balances []BalanceEntry `json:"balances"`
}

func (j *JSONRPCServer) Balance(req *http.Request, args *BalanceArgs, reply *BalanceReply) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "Server.Balance")
	defer span.End()

	addr, err := codec.ParseAddressBech32(consts.HRP, args.Address)
	if err != nil {
		return err
	}
	quantities, _, err := j.c.GetBalanceFromState(ctx, addr)
	if err != nil {
		return err
	}
	reply.Balances = make([]BalanceEntry, len(quantities))
	for i, q := range quantities {
		reply.Balances[i] = BalanceEntry{Symbol: q.Symbol.String(), Amount: q.Amount}
	}
	return nil
}

type StakeArgs struct {
	Stake ids.ID `json:"stake"`
}

type StakeReply struct {
	StakeID    uint64   `json:"stakeId"`
	Owner      string   `json:"owner"`
	Collection string   `json:"collection"`
	OfferID    int64    `json:"offerId"`
	AssetIDs   []uint64 `json:"assetIds"`
}

func (j *JSONRPCServer) Stake(req *http.Request, args *StakeArgs, reply *StakeReply) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "Server.Stake")
	defer span.End()

	stake, err := j.c.GetStakeFromState(ctx, args.Stake)
	if err != nil {
		return err
	}
	reply.StakeID = stake.StakeID
	reply.Owner = codec.MustAddressBech32(consts.HRP, stake.Owner)
	reply.Collection = codec.MustAddressBech32(consts.HRP, stake.Collection)
	reply.OfferID = stake.OfferID
	reply.AssetIDs = stake.AssetIDs
	return nil
}

type StakesArgs struct {
	Owner string `json:"owner"`
}

type StakesReply struct {
	Stakes []*pool.Stake `json:"stakes"`
}

func (j *JSONRPCServer) Stakes(req *http.Request, args *StakesArgs, reply *StakesReply) error {
	_, span := j.c.Tracer().Start(req.Context(), "Server.Stakes")
	defer span.End()

	owner, err := codec.ParseAddressBech32(consts.HRP, args.Owner)
	if err != nil {
		return err
	}
	reply.Stakes = j.c.Stakes(owner, stakesToSend)
	return nil
}

type CounterArgs struct {
	Name string `json:"name"`
}

type CounterReply struct {
	Next uint64 `json:"next"`
}

func (j *JSONRPCServer) Counter(req *http.Request, args *CounterArgs, reply *CounterReply) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "Server.Counter")
	defer span.End()

	next, err := j.c.GetCounterFromState(ctx, args.Name)
	if err != nil {
		return err
	}
	reply.Next = next
	return nil
}

type SupportedTokenReply struct {
	Symbol   string `json:"symbol"`
	Contract string `json:"contract"`
}

type ContractConfigReply struct {
	Version              string                `json:"version"`
	MinimumClaimDuration uint32                `json:"minimumClaimDuration"`
	MinimumCalcDuration  uint32                `json:"minimumCalcDuration"`
	RewardToken          SupportedTokenReply   `json:"rewardToken"`
	RegistryAccount      string                `json:"registryAccount"`
	Admin                string                `json:"admin"`
	SupportedTokens      []SupportedTokenReply `json:"supportedTokens"`
}

func (j *JSONRPCServer) ContractConfig(req *http.Request, _ *struct{}, reply *ContractConfigReply) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "Server.ContractConfig")
	defer span.End()

	config, err := j.c.GetContractConfigFromState(ctx)
	if err != nil {
		return err
	}
	reply.Version = config.Version
	reply.MinimumClaimDuration = config.MinimumClaimDuration
	reply.MinimumCalcDuration = config.MinimumCalcDuration
	reply.RewardToken = SupportedTokenReply{
		Symbol:   config.RewardToken.Symbol.String(),
		Contract: codec.MustAddressBech32(consts.HRP, config.RewardToken.Contract),
	}
	reply.RegistryAccount = codec.MustAddressBech32(consts.HRP, config.RegistryAccount)
	reply.Admin = codec.MustAddressBech32(consts.HRP, config.Admin)
	reply.SupportedTokens = make([]SupportedTokenReply, len(config.SupportedTokens))
	for i, t := range config.SupportedTokens {
		reply.SupportedTokens[i] = SupportedTokenReply{
			Symbol:   t.Symbol.String(),
			Contract: codec.MustAddressBech32(consts.HRP, t.Contract),
		}
	}
	return nil
}

type CollectionAuthorArgs struct {
	Collection string `json:"collection"`
}

type CollectionAuthorReply struct {
	Author string `json:"author"`
}

func (j *JSONRPCServer) CollectionAuthor(req *http.Request, args *CollectionAuthorArgs, reply *CollectionAuthorReply) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "Server.CollectionAuthor")
	defer span.End()

	collection, err := codec.ParseAddressBech32(consts.HRP, args.Collection)
	if err != nil {
		return err
	}
	author, err := j.c.GetCollectionAuthorFromState(ctx, collection)
	if err != nil {
		return err
	}
	reply.Author = codec.MustAddressBech32(consts.HRP, author)
	return nil
}
