package wallet

import (
	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const secretKeyLength = 64

var ErrNoKeypair = errors.New("no wallet keypair configured")

type KeypairSource struct {
	SecretKey string // base58, takes precedence over Path
	Path      string // solana-keygen JSON file
	Ephemeral bool
}

// LoadKeypair resolves the private key from the first configured source.
func LoadKeypair(src KeypairSource) (solana.PrivateKey, error) {
	switch {
	case src.SecretKey != "":
		return DecodeSecretKey(src.SecretKey)
	case src.Path != "":
		key, err := solana.PrivateKeyFromSolanaKeygenFile(src.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "read keypair file %s", src.Path)
		}
		return key, nil
	case src.Ephemeral:
		key := solana.NewWallet().PrivateKey
		log.Warn().Str("address", key.PublicKey().String()).Msg("Using ephemeral wallet keypair")
		return key, nil
	}
	return nil, ErrNoKeypair
}

func DecodeSecretKey(s string) (solana.PrivateKey, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, errors.Wrap(err, "decode secret key")
	}
	if len(raw) != secretKeyLength {
		return nil, errors.Errorf("secret key must be %d bytes, got %d", secretKeyLength, len(raw))
	}
	return solana.PrivateKey(raw), nil
}
