// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

// Registry will error during initialization if a duplicate ID is assigned. We
// explicitly assign IDs to avoid accidental remapping.
const (
	// Action TypeIDs
	InitContractID   uint8 = 0
	SetVersionID     uint8 = 1
	SetRewardTokenID uint8 = 2
	CreateStakeID    uint8 = 3
	CancelStakeID    uint8 = 4
	ClaimID          uint8 = 5
	DepositID        uint8 = 6
)
