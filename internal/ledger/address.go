package ledger

import (
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

var ErrInvalidAddress = errors.New("invalid address")

// ParseAddress accepts a base58 encoded 32 byte public key.
func ParseAddress(s string) (solana.PublicKey, error) {
	pk, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return solana.PublicKey{}, errors.Wrapf(ErrInvalidAddress, "%q: %v", s, err)
	}
	return pk, nil
}
