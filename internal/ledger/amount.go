package ledger

import (
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	// LamportsPerSOL is the fixed denomination factor between lamports and SOL.
	LamportsPerSOL uint64 = 1_000_000_000

	AirdropLamports  = 1 * LamportsPerSOL
	TransferLamports = LamportsPerSOL / 10

	displayPlaces = 4
)

// ToSOL converts a lamport amount into display units.
func ToSOL(lamports uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), -9)
}

// FormatSOL renders lamports as SOL with exactly four decimal places.
func FormatSOL(lamports uint64) string {
	return ToSOL(lamports).StringFixed(displayPlaces)
}
