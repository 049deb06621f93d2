// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"bytes"
	"strings"
)

const SymbolLen = 8

// Symbol is a fixed-width token symbol code (e.g. "APOC"), right-padded with
// zero bytes. Fixed width keeps balance entries and allow-list entries at a
// constant size in state.
type Symbol [SymbolLen]byte

func NewSymbol(s string) (Symbol, error) {
	var sym Symbol
	if len(s) == 0 || len(s) > SymbolLen {
		return sym, ErrInvalidSymbol
	}
	for _, c := range s {
		if c < 'A' || c > 'Z' {
			return sym, ErrInvalidSymbol
		}
	}
	copy(sym[:], s)
	return sym, nil
}

func MustSymbol(s string) Symbol {
	sym, err := NewSymbol(s)
	if err != nil {
		panic(err)
	}
	return sym
}

func (s Symbol) String() string {
	return strings.TrimRight(string(s[:]), "\x00")
}

func (s Symbol) Equals(o Symbol) bool {
	return bytes.Equal(s[:], o[:])
}

// Quantity pairs an amount with the symbol it is denominated in. Amounts are
// signed so that malformed external inputs (negative deposits, non-positive
// withdrawals) can be rejected rather than silently wrapping.
type Quantity struct {
	Symbol Symbol `json:"symbol"`
	Amount int64  `json:"amount"`
}
