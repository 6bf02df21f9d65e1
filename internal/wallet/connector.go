package wallet

import (
	"context"
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var ErrNotConnected = errors.New("wallet not connected")

// Endpoint is the part of an RPC client a connector needs to submit a transaction.
type Endpoint interface {
	GetLatestBlockhash(ctx context.Context) (solana.Hash, error)
	SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)
}

// Connector supplies the connected identity and signs and submits transactions for it.
type Connector interface {
	Connect(ctx context.Context) (solana.PublicKey, error)
	Disconnect(ctx context.Context) error
	PublicKey() (solana.PublicKey, bool)
	Submit(ctx context.Context, tx *solana.Transaction, endpoint Endpoint) (solana.Signature, error)
}

// KeypairConnector is a Connector backed by a single local keypair.
type KeypairConnector struct {
	key solana.PrivateKey

	mu        sync.RWMutex
	connected bool
}

var _ Connector = (*KeypairConnector)(nil)

func NewKeypairConnector(key solana.PrivateKey) *KeypairConnector {
	return &KeypairConnector{key: key}
}

func (k *KeypairConnector) Connect(ctx context.Context) (solana.PublicKey, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.connected = true
	pub := k.key.PublicKey()
	log.Info().Str("address", pub.String()).Msg("Wallet connected")
	return pub, nil
}

func (k *KeypairConnector) Disconnect(ctx context.Context) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.connected {
		log.Info().Str("address", k.key.PublicKey().String()).Msg("Wallet disconnected")
	}
	k.connected = false
	return nil
}

func (k *KeypairConnector) PublicKey() (solana.PublicKey, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if !k.connected {
		return solana.PublicKey{}, false
	}
	return k.key.PublicKey(), true
}

// Submit stamps tx with a fresh blockhash, signs it with the connected key and
// sends it through endpoint.
func (k *KeypairConnector) Submit(ctx context.Context, tx *solana.Transaction, endpoint Endpoint) (solana.Signature, error) {
	pub, ok := k.PublicKey()
	if !ok {
		return solana.Signature{}, ErrNotConnected
	}

	blockhash, err := endpoint.GetLatestBlockhash(ctx)
	if err != nil {
		return solana.Signature{}, err
	}
	tx.Message.RecentBlockhash = blockhash

	_, err = tx.Sign(func(signer solana.PublicKey) *solana.PrivateKey {
		if signer.Equals(pub) {
			return &k.key
		}
		return nil
	})
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "sign transaction")
	}

	return endpoint.SendTransaction(ctx, tx)
}
