// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pool keeps an in-memory view of live stakes so nodes can serve
// them over RPC without scanning state. It is fed by the controller as
// blocks are accepted and is lost on restart (rebuilt as new stakes land).
package pool

import (
	"slices"
	"sync"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/codec"

	"github.com/apocnetwork/extractorvm/consts"
)

type Stake struct {
	ID         ids.ID        `json:"id"`
	StakeID    uint64        `json:"stakeId"`
	Owner      codec.Address `json:"owner"`
	Collection codec.Address `json:"collection"`
	AssetIDs   []uint64      `json:"assetIds"`
}

type StakePool struct {
	// trackAll is set when no collections are configured; otherwise only
	// stakes from tracked collections are retained.
	trackAll bool
	tracked  map[codec.Address]struct{}

	stakes  map[ids.ID]*Stake
	byOwner map[codec.Address]map[ids.ID]struct{}
	l       sync.RWMutex
}

func New(trackedCollections []string) (*StakePool, error) {
	tracked := map[codec.Address]struct{}{}
	for _, s := range trackedCollections {
		addr, err := codec.ParseAddressBech32(consts.HRP, s)
		if err != nil {
			return nil, err
		}
		tracked[addr] = struct{}{}
	}
	return &StakePool{
		trackAll: len(tracked) == 0,
		tracked:  tracked,
		stakes:   map[ids.ID]*Stake{},
		byOwner:  map[codec.Address]map[ids.ID]struct{}{},
	}, nil
}

func (p *StakePool) Add(stake *Stake) {
	if !p.trackAll {
		if _, ok := p.tracked[stake.Collection]; !ok {
			return
		}
	}
	p.l.Lock()
	defer p.l.Unlock()
	p.stakes[stake.ID] = stake
	owned, ok := p.byOwner[stake.Owner]
	if !ok {
		owned = map[ids.ID]struct{}{}
		p.byOwner[stake.Owner] = owned
	}
	owned[stake.ID] = struct{}{}
}

func (p *StakePool) Remove(id ids.ID) {
	p.l.Lock()
	defer p.l.Unlock()
	stake, ok := p.stakes[id]
	if !ok {
		return
	}
	delete(p.stakes, id)
	owned := p.byOwner[stake.Owner]
	delete(owned, id)
	if len(owned) == 0 {
		delete(p.byOwner, stake.Owner)
	}
}

// Stakes returns up to [limit] tracked stakes owned by [owner], ordered by
// the counter-issued stake number.
func (p *StakePool) Stakes(owner codec.Address, limit int) []*Stake {
	p.l.RLock()
	defer p.l.RUnlock()
	owned, ok := p.byOwner[owner]
	if !ok {
		return nil
	}
	stakes := make([]*Stake, 0, len(owned))
	for id := range owned {
		stakes = append(stakes, p.stakes[id])
	}
	slices.SortFunc(stakes, func(a, b *Stake) int {
		switch {
		case a.StakeID < b.StakeID:
			return -1
		case a.StakeID > b.StakeID:
			return 1
		default:
			return 0
		}
	})
	if limit < len(stakes) {
		stakes = stakes[:limit]
	}
	return stakes
}

func (p *StakePool) Len() int {
	p.l.RLock()
	defer p.l.RUnlock()
	return len(p.stakes)
}
