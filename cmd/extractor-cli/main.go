// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "extractor-cli" implements extractorvm client operation interface.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/apocnetwork/extractorvm/cmd/extractor-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		color.Red("extractor-cli failed: %v", err)
		os.Exit(1)
	}
	os.Exit(0)
}
