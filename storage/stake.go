// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"slices"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/consts"
	"github.com/ava-labs/hypersdk/state"
)

const (
	StakeChunks       uint16 = 16
	StakeDigestChunks uint16 = 8
)

// NoOffer marks a stake whose escrow offer has not been created yet.
const NoOffer int64 = -1

const DigestLen = sha256.Size

// Stake is a claim over a set of registry-held assets pending escrow
// confirmation. Rows are keyed by the action id of the creating transaction
// so every key an action touches is known before execution; [StakeID] is the
// counter-issued public stake number carried in the row.
type Stake struct {
	ID         ids.ID        `json:"id"`
	StakeID    uint64        `json:"stakeId"`
	Owner      codec.Address `json:"owner"`
	Collection codec.Address `json:"collection"`
	OfferID    int64         `json:"offerId"`
	AssetIDs   []uint64      `json:"assetIds"`
}

// HashAssetIDs returns the order-independent fingerprint of an asset id set:
// the ids are copied, sorted ascending and hashed as little-endian 8-byte
// words. Two lists with identical membership produce the same digest
// regardless of submission order.
func HashAssetIDs(assetIDs []uint64) [DigestLen]byte {
	sorted := slices.Clone(assetIDs)
	slices.Sort(sorted)
	b := make([]byte, len(sorted)*consts.Uint64Len)
	for i, id := range sorted {
		binary.LittleEndian.PutUint64(b[i*consts.Uint64Len:], id)
	}
	return sha256.Sum256(b)
}

// [stakePrefix] + [stake]
func StakeKey(stake ids.ID) (k []byte) {
	k = make([]byte, 1+ids.IDLen+consts.Uint16Len)
	k[0] = stakePrefix
	copy(k[1:], stake[:])
	binary.BigEndian.PutUint16(k[1+ids.IDLen:], StakeChunks)
	return
}

// [stakeDigestPrefix] + [digest]
func StakeDigestKey(digest [DigestLen]byte) (k []byte) {
	k = make([]byte, 1+DigestLen+consts.Uint16Len)
	k[0] = stakeDigestPrefix
	copy(k[1:], digest[:])
	binary.BigEndian.PutUint16(k[1+DigestLen:], StakeDigestChunks)
	return
}

func SetStake(
	ctx context.Context,
	mu state.Mutable,
	stake *Stake,
) error {
	v := make([]byte, consts.Uint64Len+codec.AddressLen*2+consts.Uint64Len+consts.Uint32Len+len(stake.AssetIDs)*consts.Uint64Len)
	binary.BigEndian.PutUint64(v, stake.StakeID)
	copy(v[consts.Uint64Len:], stake.Owner[:])
	copy(v[consts.Uint64Len+codec.AddressLen:], stake.Collection[:])
	offset := consts.Uint64Len + codec.AddressLen*2
	binary.BigEndian.PutUint64(v[offset:], uint64(stake.OfferID))
	offset += consts.Uint64Len
	binary.BigEndian.PutUint32(v[offset:], uint32(len(stake.AssetIDs)))
	offset += consts.Uint32Len
	for i, id := range stake.AssetIDs {
		binary.BigEndian.PutUint64(v[offset+i*consts.Uint64Len:], id)
	}
	return mu.Insert(ctx, StakeKey(stake.ID), v)
}

func GetStake(
	ctx context.Context,
	im state.Immutable,
	stake ids.ID,
) (*Stake, error) {
	v, err := im.GetValue(ctx, StakeKey(stake))
	return innerGetStake(stake, v, err)
}

// Used to serve RPC queries
func GetStakeFromState(
	ctx context.Context,
	f ReadState,
	stake ids.ID,
) (*Stake, error) {
	values, errs := f(ctx, [][]byte{StakeKey(stake)})
	return innerGetStake(stake, values[0], errs[0])
}

func innerGetStake(id ids.ID, v []byte, err error) (*Stake, error) {
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrStakeNotFound
	}
	if err != nil {
		return nil, err
	}
	stake := &Stake{ID: id}
	stake.StakeID = binary.BigEndian.Uint64(v)
	copy(stake.Owner[:], v[consts.Uint64Len:])
	copy(stake.Collection[:], v[consts.Uint64Len+codec.AddressLen:])
	offset := consts.Uint64Len + codec.AddressLen*2
	stake.OfferID = int64(binary.BigEndian.Uint64(v[offset:]))
	offset += consts.Uint64Len
	count := binary.BigEndian.Uint32(v[offset:])
	offset += consts.Uint32Len
	stake.AssetIDs = make([]uint64, count)
	for i := range stake.AssetIDs {
		stake.AssetIDs[i] = binary.BigEndian.Uint64(v[offset+i*consts.Uint64Len:])
	}
	return stake, nil
}

func DeleteStake(ctx context.Context, mu state.Mutable, stake ids.ID) error {
	return mu.Remove(ctx, StakeKey(stake))
}

// DigestEntry is one member of a digest index bucket.
type DigestEntry struct {
	Stake ids.ID
	Owner codec.Address
}

const digestEntryLen = ids.IDLen + codec.AddressLen

// GetStakeDigestEntries loads the multi-map bucket for [digest]: every active
// stake whose asset id set hashes to it. Duplicate detection only ever scans
// this bucket, never the whole pool.
func GetStakeDigestEntries(
	ctx context.Context,
	im state.Immutable,
	digest [DigestLen]byte,
) ([]DigestEntry, error) {
	v, err := im.GetValue(ctx, StakeDigestKey(digest))
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	entries := make([]DigestEntry, 0, len(v)/digestEntryLen)
	for i := 0; i+digestEntryLen <= len(v); i += digestEntryLen {
		var e DigestEntry
		copy(e.Stake[:], v[i:])
		copy(e.Owner[:], v[i+ids.IDLen:])
		entries = append(entries, e)
	}
	return entries, nil
}

func packDigestEntries(entries []DigestEntry) []byte {
	v := make([]byte, len(entries)*digestEntryLen)
	for i, e := range entries {
		copy(v[i*digestEntryLen:], e.Stake[:])
		copy(v[i*digestEntryLen+ids.IDLen:], e.Owner[:])
	}
	return v
}

func AddStakeDigestEntry(
	ctx context.Context,
	mu state.Mutable,
	digest [DigestLen]byte,
	entry DigestEntry,
) error {
	entries, err := GetStakeDigestEntries(ctx, mu, digest)
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	return mu.Insert(ctx, StakeDigestKey(digest), packDigestEntries(entries))
}

func RemoveStakeDigestEntry(
	ctx context.Context,
	mu state.Mutable,
	digest [DigestLen]byte,
	stake ids.ID,
) error {
	entries, err := GetStakeDigestEntries(ctx, mu, digest)
	if err != nil {
		return err
	}
	kept := entries[:0]
	for _, e := range entries {
		if e.Stake != stake {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		return mu.Remove(ctx, StakeDigestKey(digest))
	}
	return mu.Insert(ctx, StakeDigestKey(digest), packDigestEntries(kept))
}
