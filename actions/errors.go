// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

var (
	ErrOutputNotAuthorized = errors.New("actor is not the contract admin")

	ErrOutputTooManyAssets   = errors.New("too many asset ids")
	ErrOutputDuplicateStake  = errors.New("you have already staked these assets, cancel the existing stake first")
	ErrOutputStakeStillValid = errors.New("the stake is not invalid, the staker's authorization is needed to cancel it")
	ErrOutputStakeMismatch   = errors.New("owner or asset ids do not match the stored stake")

	ErrOutputNonPositiveQuantity = errors.New("the quantity to withdraw must be positive")
	ErrOutputInvalidMemo         = errors.New("invalid memo")

	ErrOutputVersionEmpty    = errors.New("version is empty")
	ErrOutputVersionTooLarge = errors.New("version is too large")
	ErrOutputMemoTooLarge    = errors.New("memo is too large")
)
