// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Read model of the external asset registry. The registry contract itself is
// out of scope; this package only mirrors the tables the extractor consumes
// (asset ownership, template transferability, collection author). Rows are
// written at genesis and by escrow settlement, never by extractor actions.
package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"slices"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/consts"
	"github.com/ava-labs/hypersdk/state"
)

const (
	RegistryAssetChunks      uint16 = 1
	RegistryTemplateChunks   uint16 = 1
	RegistryCollectionChunks uint16 = 1
)

// NoTemplate marks an asset minted without a template.
const NoTemplate int32 = -1

// [registryAssetPrefix] + [owner] + [assetID]
func RegistryAssetKey(owner codec.Address, assetID uint64) (k []byte) {
	k = make([]byte, 1+codec.AddressLen+consts.Uint64Len+consts.Uint16Len)
	k[0] = registryAssetPrefix
	copy(k[1:], owner[:])
	binary.BigEndian.PutUint64(k[1+codec.AddressLen:], assetID)
	binary.BigEndian.PutUint16(k[1+codec.AddressLen+consts.Uint64Len:], RegistryAssetChunks)
	return
}

// [registryTemplatePrefix] + [collection] + [templateID]
func RegistryTemplateKey(collection codec.Address, templateID int32) (k []byte) {
	k = make([]byte, 1+codec.AddressLen+consts.Uint32Len+consts.Uint16Len)
	k[0] = registryTemplatePrefix
	copy(k[1:], collection[:])
	binary.BigEndian.PutUint32(k[1+codec.AddressLen:], uint32(templateID))
	binary.BigEndian.PutUint16(k[1+codec.AddressLen+consts.Uint32Len:], RegistryTemplateChunks)
	return
}

// [registryCollectionPrefix] + [collection]
func RegistryCollectionKey(collection codec.Address) (k []byte) {
	k = make([]byte, 1+codec.AddressLen+consts.Uint16Len)
	k[0] = registryCollectionPrefix
	copy(k[1:], collection[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], RegistryCollectionChunks)
	return
}

// The asset row carries the template's transferability verbatim so staking
// admission control reads nothing but asset rows, all of which are keyed by
// (owner, assetID) and can be declared before execution.
func SetRegistryAsset(
	ctx context.Context,
	mu state.Mutable,
	owner codec.Address,
	assetID uint64,
	collection codec.Address,
	templateID int32,
	transferable bool,
) error {
	v := make([]byte, codec.AddressLen+consts.Uint32Len+1)
	copy(v, collection[:])
	binary.BigEndian.PutUint32(v[codec.AddressLen:], uint32(templateID))
	if transferable {
		v[codec.AddressLen+consts.Uint32Len] = successByte
	}
	return mu.Insert(ctx, RegistryAssetKey(owner, assetID), v)
}

func GetRegistryAsset(
	ctx context.Context,
	im state.Immutable,
	owner codec.Address,
	assetID uint64,
) (bool, codec.Address, int32, bool, error) {
	v, err := im.GetValue(ctx, RegistryAssetKey(owner, assetID))
	if errors.Is(err, database.ErrNotFound) {
		return false, codec.Address{}, NoTemplate, false, nil
	}
	if err != nil {
		return false, codec.Address{}, NoTemplate, false, err
	}
	var collection codec.Address
	copy(collection[:], v[:codec.AddressLen])
	templateID := int32(binary.BigEndian.Uint32(v[codec.AddressLen:]))
	transferable := v[codec.AddressLen+consts.Uint32Len] == successByte
	return true, collection, templateID, transferable, nil
}

func DeleteRegistryAsset(
	ctx context.Context,
	mu state.Mutable,
	owner codec.Address,
	assetID uint64,
) error {
	return mu.Remove(ctx, RegistryAssetKey(owner, assetID))
}

func SetRegistryTemplate(
	ctx context.Context,
	mu state.Mutable,
	collection codec.Address,
	templateID int32,
	transferable bool,
	burnable bool,
) error {
	v := make([]byte, 2)
	if transferable {
		v[0] = successByte
	}
	if burnable {
		v[1] = successByte
	}
	return mu.Insert(ctx, RegistryTemplateKey(collection, templateID), v)
}

func GetRegistryTemplate(
	ctx context.Context,
	im state.Immutable,
	collection codec.Address,
	templateID int32,
) (bool, bool, bool, error) {
	v, err := im.GetValue(ctx, RegistryTemplateKey(collection, templateID))
	if errors.Is(err, database.ErrNotFound) {
		return false, false, false, nil
	}
	if err != nil {
		return false, false, false, err
	}
	return true, v[0] == successByte, v[1] == successByte, nil
}

func SetRegistryCollection(
	ctx context.Context,
	mu state.Mutable,
	collection codec.Address,
	author codec.Address,
) error {
	v := make([]byte, codec.AddressLen)
	copy(v, author[:])
	return mu.Insert(ctx, RegistryCollectionKey(collection), v)
}

// GetCollectionAuthor returns the author of a collection in the registry.
func GetCollectionAuthor(
	ctx context.Context,
	im state.Immutable,
	collection codec.Address,
) (codec.Address, error) {
	v, err := im.GetValue(ctx, RegistryCollectionKey(collection))
	if errors.Is(err, database.ErrNotFound) {
		return codec.Address{}, ErrCollectionMissing
	}
	if err != nil {
		return codec.Address{}, err
	}
	var author codec.Address
	copy(author[:], v)
	return author, nil
}

// Used to serve RPC queries
func GetCollectionAuthorFromState(
	ctx context.Context,
	f ReadState,
	collection codec.Address,
) (codec.Address, error) {
	values, errs := f(ctx, [][]byte{RegistryCollectionKey(collection)})
	if errors.Is(errs[0], database.ErrNotFound) {
		return codec.Address{}, ErrCollectionMissing
	}
	if errs[0] != nil {
		return codec.Address{}, errs[0]
	}
	var author codec.Address
	copy(author[:], values[0])
	return author, nil
}

// ValidateAndGetCollection is the admission-control gate for staking. It
// confirms that [owner] exclusively holds every id in [assetIDs], that the
// list is free of duplicates, that every asset is transferable and that all
// assets belong to one collection, which is returned. Reads only; it is run
// at stake creation time and never again (staked assets changing hands later
// is what makes a stake cancellable).
func ValidateAndGetCollection(
	ctx context.Context,
	im state.Immutable,
	owner codec.Address,
	assetIDs []uint64,
) (codec.Address, error) {
	if len(assetIDs) == 0 {
		return codec.Address{}, ErrNoAssets
	}

	sorted := slices.Clone(assetIDs)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return codec.Address{}, ErrDuplicateAsset
		}
	}

	var assetsCollection codec.Address
	for i, assetID := range assetIDs {
		exists, collection, templateID, transferable, err := GetRegistryAsset(ctx, im, owner, assetID)
		if err != nil {
			return codec.Address{}, err
		}
		if !exists {
			return codec.Address{}, ErrAssetNotOwned
		}
		if templateID != NoTemplate && !transferable {
			return codec.Address{}, ErrNotTransferable
		}

		if i == 0 {
			assetsCollection = collection
		} else if assetsCollection != collection {
			return codec.Address{}, ErrMixedCollections
		}
	}
	return assetsCollection, nil
}

// HoldsAnyAsset reports whether [owner] still holds at least one id in
// [assetIDs] according to the registry's current snapshot. Computed on demand
// and never cached so stake invalidity can't go stale.
func HoldsAnyAsset(
	ctx context.Context,
	im state.Immutable,
	owner codec.Address,
	assetIDs []uint64,
) (bool, error) {
	for _, assetID := range assetIDs {
		exists, _, _, _, err := GetRegistryAsset(ctx, im, owner, assetID)
		if err != nil {
			return false, err
		}
		if exists {
			return true, nil
		}
	}
	return false, nil
}
