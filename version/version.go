// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import "github.com/ava-labs/avalanchego/version"

var Version = &version.Semantic{
	Major: 0,
	Minor: 0,
	Patch: 1,
}
