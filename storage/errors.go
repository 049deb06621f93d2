// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	// asset ownership validation
	ErrNoAssets          = errors.New("asset_ids needs to contain at least one id")
	ErrDuplicateAsset    = errors.New("asset_ids must not contain duplicates")
	ErrAssetNotOwned     = errors.New("account does not own at least one of the assets")
	ErrNotTransferable   = errors.New("at least one of the assets is not transferable")
	ErrMixedCollections  = errors.New("asset ids must all belong to the same collection")
	ErrCollectionMissing = errors.New("collection does not exist")

	// balance ledger
	ErrNegativeAmount      = errors.New("can't add negative balances")
	ErrBalanceOverflow     = errors.New("balance overflow")
	ErrNoBalanceRow        = errors.New("account does not have a balance table row")
	ErrSymbolNotFound      = errors.New("account does not have a balance for the specified symbol")
	ErrInsufficientBalance = errors.New("account balance is lower than the specified quantity")

	// contract config
	ErrConfigMissing     = errors.New("contract config has not been initialized")
	ErrTokenNotSupported = errors.New("the specified token is not supported")

	// stakes
	ErrStakeNotFound = errors.New("no stake with this stake_id exists")

	ErrInvalidSymbol = errors.New("invalid token symbol")
)
