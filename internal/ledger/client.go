package ledger

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	ErrConfirmTimeout    = errors.New("confirmation timed out")
	ErrTransactionFailed = errors.New("transaction failed")
)

// Client is the RPC endpoint client for a single cluster.
type Client struct {
	rpc          *rpc.Client
	commitment   rpc.CommitmentType
	pollInterval time.Duration
}

// NewClient wraps a solana-go RPC client for the given endpoint.
// commitment is used for balance reads and as the floor for preflight checks.
func NewClient(endpoint string, commitment rpc.CommitmentType, pollInterval time.Duration) *Client {
	return &Client{
		rpc:          rpc.New(endpoint),
		commitment:   commitment,
		pollInterval: pollInterval,
	}
}

func (c *Client) Commitment() rpc.CommitmentType {
	return c.commitment
}

func (c *Client) GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	out, err := c.rpc.GetBalance(ctx, account, c.commitment)
	if err != nil {
		return 0, errors.Wrapf(err, "get balance of %s", account)
	}
	return out.Value, nil
}

func (c *Client) RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error) {
	sig, err := c.rpc.RequestAirdrop(ctx, account, lamports, c.commitment)
	if err != nil {
		return solana.Signature{}, errors.Wrapf(err, "request airdrop of %d lamports to %s", lamports, account)
	}
	return sig, nil
}

func (c *Client) GetLatestBlockhash(ctx context.Context) (solana.Hash, error) {
	out, err := c.rpc.GetLatestBlockhash(ctx, c.commitment)
	if err != nil {
		return solana.Hash{}, errors.Wrap(err, "get latest blockhash")
	}
	return out.Value.Blockhash, nil
}

func (c *Client) SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	sig, err := c.rpc.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		PreflightCommitment: c.commitment,
	})
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "send transaction")
	}
	return sig, nil
}

// Confirm polls the signature status until it reaches level, the transaction
// reports an error, or the wait expires. Finalized waits for up to 60s, lower
// levels for 30s.
func (c *Client) Confirm(ctx context.Context, sig solana.Signature, level rpc.CommitmentType) error {
	ctx, cancel := context.WithTimeout(ctx, confirmTimeout(level))
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		out, err := c.rpc.GetSignatureStatuses(ctx, false, sig)
		switch {
		case err != nil:
			log.Debug().Err(err).Str("signature", sig.String()).Msg("Signature status poll failed")
		case len(out.Value) > 0 && out.Value[0] != nil:
			status := out.Value[0]
			if status.Err != nil {
				return errors.Wrapf(ErrTransactionFailed, "%s: %v", sig, status.Err)
			}
			if Reached(status.ConfirmationStatus, level) {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return errors.Wrapf(ErrConfirmTimeout, "%s did not reach %s: %v", sig, level, ctx.Err())
		case <-ticker.C:
		}
	}
}

func confirmTimeout(level rpc.CommitmentType) time.Duration {
	if level == rpc.CommitmentFinalized {
		return 60 * time.Second
	}
	return 30 * time.Second
}

var levelRank = map[string]int{
	string(rpc.CommitmentProcessed): 1,
	string(rpc.CommitmentConfirmed): 2,
	string(rpc.CommitmentFinalized): 3,
}

// Reached reports whether an observed confirmation status is at least level.
func Reached(status rpc.ConfirmationStatusType, level rpc.CommitmentType) bool {
	got, ok := levelRank[string(status)]
	if !ok {
		return false
	}
	return got >= levelRank[string(level)]
}
