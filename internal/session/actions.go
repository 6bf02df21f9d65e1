package session

import (
	"context"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/rs/zerolog/log"
	"github.com/saqib40/kit-and-adapter/internal/ledger"
	"github.com/saqib40/kit-and-adapter/internal/model"
)

// Airdrop requests the configured airdrop for the connected identity, waits
// for it to land and refreshes the balance.
func (s *Session) Airdrop(ctx context.Context) (*model.ActionResult, error) {
	s.Sync(ctx)
	pub, ok := s.currentIdentity()
	if !ok {
		return nil, ErrNotConnected
	}

	lamports := s.opts.AirdropLamports
	logger := log.With().Str("kind", string(model.ActionAirdrop)).Str("address", pub.String()).Uint64("lamports", lamports).Logger()

	sig, err := s.ledger.RequestAirdrop(ctx, pub, lamports)
	if err != nil {
		return nil, s.fail(ctx, model.ActionAirdrop, "request airdrop", pub, pub, lamports, solana.Signature{}, err)
	}

	logger.Debug().Str("signature", sig.String()).Str("commitment", string(s.opts.AirdropCommitment)).Msg("Waiting for airdrop confirmation")
	if err := s.ledger.Confirm(ctx, sig, s.opts.AirdropCommitment); err != nil {
		return nil, s.fail(ctx, model.ActionAirdrop, "confirm airdrop", pub, pub, lamports, sig, err)
	}

	s.refresh(ctx, pub)
	s.record(ctx, model.Activity{
		Kind:      model.ActionAirdrop,
		To:        pub.String(),
		Lamports:  lamports,
		Signature: sig.String(),
		Status:    model.StatusConfirmed,
	})
	logger.Info().Str("signature", sig.String()).Msg("Airdrop confirmed")

	return s.result(model.ActionAirdrop, sig, lamports, pub), nil
}

// Transfer sends the configured amount from the connected identity to the
// address currently held in the recipient draft.
func (s *Session) Transfer(ctx context.Context) (*model.ActionResult, error) {
	s.Sync(ctx)
	from, ok := s.currentIdentity()
	if !ok {
		return nil, ErrNotConnected
	}

	draft := strings.TrimSpace(s.Recipient())
	if draft == "" {
		return nil, ErrEmptyRecipient
	}

	to, err := ledger.ParseAddress(draft)
	if err != nil {
		log.Debug().Err(err).Str("recipient", draft).Msg("Rejected recipient address")
		return nil, &InvalidRecipientError{Input: draft, Err: err}
	}

	lamports := s.opts.TransferLamports
	logger := log.With().Str("kind", string(model.ActionTransfer)).Str("address", from.String()).Str("recipient", to.String()).Uint64("lamports", lamports).Logger()

	tx, err := solana.NewTransaction(
		[]solana.Instruction{system.NewTransferInstruction(lamports, from, to).Build()},
		solana.Hash{},
		solana.TransactionPayer(from),
	)
	if err != nil {
		return nil, s.fail(ctx, model.ActionTransfer, "build transaction", from, to, lamports, solana.Signature{}, err)
	}

	sig, err := s.connector.Submit(ctx, tx, s.ledger)
	if err != nil {
		return nil, s.fail(ctx, model.ActionTransfer, "submit transaction", from, to, lamports, solana.Signature{}, err)
	}

	logger.Debug().Str("signature", sig.String()).Str("commitment", string(s.opts.TransferCommitment)).Msg("Waiting for transfer confirmation")
	if err := s.ledger.Confirm(ctx, sig, s.opts.TransferCommitment); err != nil {
		return nil, s.fail(ctx, model.ActionTransfer, "confirm transaction", from, to, lamports, sig, err)
	}

	s.refresh(ctx, from)
	s.clearRecipient(draft)
	s.record(ctx, model.Activity{
		Kind:      model.ActionTransfer,
		From:      from.String(),
		To:        to.String(),
		Lamports:  lamports,
		Signature: sig.String(),
		Status:    model.StatusConfirmed,
	})
	logger.Info().Str("signature", sig.String()).Msg("Transfer confirmed")

	res := s.result(model.ActionTransfer, sig, lamports, from)
	res.To = to.String()
	return res, nil
}

// clearRecipient empties the draft unless it was edited during the transfer.
func (s *Session) clearRecipient(sent string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(s.recipient) == sent {
		s.recipient = ""
	}
}

func (s *Session) result(kind model.ActionKind, sig solana.Signature, lamports uint64, pub solana.PublicKey) *model.ActionResult {
	v := s.View()
	res := &model.ActionResult{
		Kind:      kind,
		Signature: sig.String(),
		Lamports:  lamports,
		To:        pub.String(),
	}
	if v.Connected && v.Identity.Equals(pub) {
		res.Wallet = v.Wallet()
	}
	return res
}

func (s *Session) fail(ctx context.Context, kind model.ActionKind, op string, from, to solana.PublicKey, lamports uint64, sig solana.Signature, err error) error {
	remote := &RemoteError{Kind: kind, Op: op, Err: err}

	entry := model.Activity{
		Kind:     kind,
		To:       to.String(),
		Lamports: lamports,
		Status:   model.StatusFailed,
		Error:    err.Error(),
	}
	if kind == model.ActionTransfer {
		entry.From = from.String()
	}
	if sig != (solana.Signature{}) {
		entry.Signature = sig.String()
	}
	s.record(ctx, entry)

	log.Error().Err(err).Str("kind", string(kind)).Str("op", op).Str("address", from.String()).Msg("Action failed")
	return remote
}

func (s *Session) record(ctx context.Context, entry model.Activity) {
	if _, err := s.journal.Record(context.WithoutCancel(ctx), entry); err != nil {
		log.Warn().Err(err).Str("kind", string(entry.Kind)).Msg("Failed to record activity")
	}
}
