package wallet_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/saqib40/kit-and-adapter/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEndpoint struct {
	blockhash solana.Hash
	sent      []*solana.Transaction
	sendErr   error
}

func (e *stubEndpoint) GetLatestBlockhash(ctx context.Context) (solana.Hash, error) {
	return e.blockhash, nil
}

func (e *stubEndpoint) SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	if e.sendErr != nil {
		return solana.Signature{}, e.sendErr
	}
	e.sent = append(e.sent, tx)
	return tx.Signatures[0], nil
}

func transferTx(t *testing.T, from, to solana.PublicKey) *solana.Transaction {
	t.Helper()
	tx, err := solana.NewTransaction(
		[]solana.Instruction{system.NewTransferInstruction(1, from, to).Build()},
		solana.Hash{},
		solana.TransactionPayer(from),
	)
	require.NoError(t, err)
	return tx
}

func TestConnectDisconnect(t *testing.T) {
	key := solana.NewWallet().PrivateKey
	c := wallet.NewKeypairConnector(key)

	_, ok := c.PublicKey()
	assert.False(t, ok)

	pub, err := c.Connect(context.Background())
	require.NoError(t, err)
	assert.True(t, key.PublicKey().Equals(pub))

	got, ok := c.PublicKey()
	assert.True(t, ok)
	assert.True(t, pub.Equals(got))

	require.NoError(t, c.Disconnect(context.Background()))
	_, ok = c.PublicKey()
	assert.False(t, ok)
}

func TestSubmitSignsWithFreshBlockhash(t *testing.T) {
	key := solana.NewWallet().PrivateKey
	c := wallet.NewKeypairConnector(key)
	_, err := c.Connect(context.Background())
	require.NoError(t, err)

	endpoint := &stubEndpoint{blockhash: solana.Hash{4, 2}}
	tx := transferTx(t, key.PublicKey(), solana.NewWallet().PublicKey())

	sig, err := c.Submit(context.Background(), tx, endpoint)
	require.NoError(t, err)
	require.Len(t, endpoint.sent, 1)
	assert.Equal(t, endpoint.blockhash, tx.Message.RecentBlockhash)
	assert.Equal(t, tx.Signatures[0], sig)
	assert.NoError(t, tx.VerifySignatures())
}

func TestSubmitRequiresConnection(t *testing.T) {
	key := solana.NewWallet().PrivateKey
	c := wallet.NewKeypairConnector(key)
	endpoint := &stubEndpoint{}

	_, err := c.Submit(context.Background(), transferTx(t, key.PublicKey(), solana.NewWallet().PublicKey()), endpoint)
	assert.True(t, errors.Is(err, wallet.ErrNotConnected))
	assert.Empty(t, endpoint.sent)
}

func TestSubmitPropagatesSendError(t *testing.T) {
	key := solana.NewWallet().PrivateKey
	c := wallet.NewKeypairConnector(key)
	_, err := c.Connect(context.Background())
	require.NoError(t, err)

	sendErr := errors.New("node is behind")
	_, err = c.Submit(context.Background(), transferTx(t, key.PublicKey(), solana.NewWallet().PublicKey()), &stubEndpoint{sendErr: sendErr})
	assert.ErrorIs(t, err, sendErr)
}

func TestLoadKeypairFromSecret(t *testing.T) {
	key := solana.NewWallet().PrivateKey

	got, err := wallet.LoadKeypair(wallet.KeypairSource{SecretKey: key.String(), Path: "/does/not/exist.json"})
	require.NoError(t, err)
	assert.True(t, key.PublicKey().Equals(got.PublicKey()))
}

func TestLoadKeypairFromFile(t *testing.T) {
	key := solana.NewWallet().PrivateKey
	raw := make([]int, len(key))
	for i, b := range key {
		raw[i] = int(b)
	}
	content, err := json.Marshal(raw)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "id.json")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	got, err := wallet.LoadKeypair(wallet.KeypairSource{Path: path})
	require.NoError(t, err)
	assert.True(t, key.PublicKey().Equals(got.PublicKey()))
}

func TestLoadKeypairEphemeral(t *testing.T) {
	got, err := wallet.LoadKeypair(wallet.KeypairSource{Ephemeral: true})
	require.NoError(t, err)
	assert.Len(t, got, 64)
}

func TestLoadKeypairMissing(t *testing.T) {
	_, err := wallet.LoadKeypair(wallet.KeypairSource{})
	assert.True(t, errors.Is(err, wallet.ErrNoKeypair))
}

func TestDecodeSecretKeyRejectsShortKey(t *testing.T) {
	_, err := wallet.DecodeSecretKey(solana.NewWallet().PublicKey().String())
	assert.Error(t, err)

	_, err = wallet.DecodeSecretKey("not-base58!")
	assert.Error(t, err)
}
