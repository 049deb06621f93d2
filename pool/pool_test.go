// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pool

import (
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/stretchr/testify/require"

	"github.com/apocnetwork/extractorvm/consts"
)

func TestStakePoolOrdering(t *testing.T) {
	require := require.New(t)
	p, err := New(nil)
	require.NoError(err)

	owner := codec.CreateAddress(0, ids.GenerateTestID())
	other := codec.CreateAddress(0, ids.GenerateTestID())
	collection := codec.CreateAddress(1, ids.GenerateTestID())

	byNumber := map[uint64]ids.ID{}
	for _, n := range []uint64{9, 3, 7} {
		id := ids.GenerateTestID()
		byNumber[n] = id
		p.Add(&Stake{ID: id, StakeID: n, Owner: owner, Collection: collection, AssetIDs: []uint64{n}})
	}
	p.Add(&Stake{ID: ids.GenerateTestID(), StakeID: 5, Owner: other, Collection: collection})
	require.Equal(4, p.Len())

	stakes := p.Stakes(owner, 10)
	require.Len(stakes, 3)
	require.Equal(uint64(3), stakes[0].StakeID)
	require.Equal(uint64(7), stakes[1].StakeID)
	require.Equal(uint64(9), stakes[2].StakeID)

	stakes = p.Stakes(owner, 2)
	require.Len(stakes, 2)
	require.Equal(uint64(3), stakes[0].StakeID)

	p.Remove(byNumber[3])
	p.Remove(byNumber[3])
	stakes = p.Stakes(owner, 10)
	require.Len(stakes, 2)
	require.Equal(uint64(7), stakes[0].StakeID)

	p.Remove(byNumber[7])
	p.Remove(byNumber[9])
	require.Nil(p.Stakes(owner, 10))
	require.Equal(1, p.Len())
}

func TestStakePoolTrackedCollections(t *testing.T) {
	require := require.New(t)

	tracked := codec.CreateAddress(1, ids.GenerateTestID())
	untracked := codec.CreateAddress(1, ids.GenerateTestID())
	owner := codec.CreateAddress(0, ids.GenerateTestID())

	p, err := New([]string{codec.MustAddressBech32(consts.HRP, tracked)})
	require.NoError(err)

	p.Add(&Stake{ID: ids.GenerateTestID(), StakeID: 1, Owner: owner, Collection: tracked})
	p.Add(&Stake{ID: ids.GenerateTestID(), StakeID: 2, Owner: owner, Collection: untracked})

	require.Equal(1, p.Len())
	stakes := p.Stakes(owner, 10)
	require.Len(stakes, 1)
	require.Equal(uint64(1), stakes[0].StakeID)

	_, err = New([]string{"not a bech32 address"})
	require.Error(err)
}
