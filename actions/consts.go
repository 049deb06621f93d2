// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

const (
	InitContractComputeUnits   = 5
	SetVersionComputeUnits     = 1
	SetRewardTokenComputeUnits = 1
	CreateStakeComputeUnits    = 15
	CancelStakeComputeUnits    = 5
	ClaimComputeUnits          = 5
	DepositComputeUnits        = 2

	MaxStakeAssets = 100
	MaxVersionSize = 32
	MaxMemoSize    = 256
)

const (
	// DepositMemo is the memo an inbound token transfer must carry to be
	// credited as a claimable balance.
	DepositMemo = "claim"

	// WithdrawMemo accompanies outbound withdrawal transfers.
	WithdrawMemo = "extractor Withdrawal"
)
