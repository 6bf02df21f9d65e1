// Package session holds the per-user view state (identity, balance, recipient
// draft) and runs the airdrop and transfer actions against it.
package session

import (
	"context"
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog/log"
	"github.com/saqib40/kit-and-adapter/internal/journal"
	"github.com/saqib40/kit-and-adapter/internal/ledger"
	"github.com/saqib40/kit-and-adapter/internal/model"
	"github.com/saqib40/kit-and-adapter/internal/wallet"
)

// Ledger is the RPC endpoint client the session drives.
type Ledger interface {
	wallet.Endpoint
	GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error)
	RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error)
	Confirm(ctx context.Context, sig solana.Signature, level rpc.CommitmentType) error
}

type Options struct {
	AirdropLamports  uint64
	TransferLamports uint64
	// AirdropCommitment defaults to finalized.
	AirdropCommitment rpc.CommitmentType
	// TransferCommitment defaults to processed.
	TransferCommitment rpc.CommitmentType
}

func (o Options) withDefaults() Options {
	if o.AirdropLamports == 0 {
		o.AirdropLamports = ledger.AirdropLamports
	}
	if o.TransferLamports == 0 {
		o.TransferLamports = ledger.TransferLamports
	}
	if o.AirdropCommitment == "" {
		o.AirdropCommitment = rpc.CommitmentFinalized
	}
	if o.TransferCommitment == "" {
		o.TransferCommitment = rpc.CommitmentProcessed
	}
	return o
}

// View is a snapshot of the session state used for rendering.
type View struct {
	Connected    bool
	Identity     solana.PublicKey
	Lamports     uint64
	BalanceKnown bool
	Recipient    string
}

// Wallet returns the displayable wallet, or nil when disconnected.
func (v View) Wallet() *model.Wallet {
	if !v.Connected {
		return nil
	}
	return &model.Wallet{
		Address:  v.Identity.String(),
		Lamports: v.Lamports,
		Balance:  ledger.FormatSOL(v.Lamports),
	}
}

type Session struct {
	connector wallet.Connector
	ledger    Ledger
	journal   journal.Journal
	opts      Options

	mu        sync.Mutex
	identity  *solana.PublicKey
	lamports  uint64
	known     bool
	recipient string
}

func New(connector wallet.Connector, l Ledger, j journal.Journal, opts Options) *Session {
	if j == nil {
		j = journal.NewMemory()
	}
	return &Session{
		connector: connector,
		ledger:    l,
		journal:   j,
		opts:      opts.withDefaults(),
	}
}

func (s *Session) Journal() journal.Journal {
	return s.journal
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{Recipient: s.recipient}
	if s.identity != nil {
		v.Connected = true
		v.Identity = *s.identity
		v.Lamports = s.lamports
		v.BalanceKnown = s.known
	}
	return v
}

func (s *Session) Connect(ctx context.Context) (View, error) {
	if _, err := s.connector.Connect(ctx); err != nil {
		return s.View(), err
	}
	s.Sync(ctx)
	return s.View(), nil
}

func (s *Session) Disconnect(ctx context.Context) (View, error) {
	if err := s.connector.Disconnect(ctx); err != nil {
		return s.View(), err
	}
	s.Sync(ctx)
	return s.View(), nil
}

func (s *Session) Recipient() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recipient
}

// SetRecipient replaces the draft; it is not validated until a transfer runs.
func (s *Session) SetRecipient(draft string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipient = draft
}

// Sync observes the connector identity. Losing the identity resets the
// balance; a new or different identity resets it and fetches it again.
func (s *Session) Sync(ctx context.Context) {
	pub, ok := s.connector.PublicKey()

	s.mu.Lock()
	switch {
	case !ok:
		s.identity = nil
		s.lamports, s.known = 0, false
		s.mu.Unlock()
		return
	case s.identity != nil && s.identity.Equals(pub):
		s.mu.Unlock()
		return
	}
	s.identity = &pub
	s.lamports, s.known = 0, false
	s.mu.Unlock()

	s.refresh(ctx, pub)
}

// Refresh re-fetches the balance of the current identity.
func (s *Session) Refresh(ctx context.Context) error {
	pub, ok := s.currentIdentity()
	if !ok {
		return ErrNotConnected
	}
	s.refresh(ctx, pub)
	return nil
}

func (s *Session) currentIdentity() (solana.PublicKey, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return solana.PublicKey{}, false
	}
	return *s.identity, true
}

// refresh fetches the balance for pub. Failures keep the prior value.
func (s *Session) refresh(ctx context.Context, pub solana.PublicKey) {
	lamports, err := s.ledger.GetBalance(ctx, pub)
	if err != nil {
		log.Warn().Err(err).Str("address", pub.String()).Msg("Failed to fetch balance")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// identity may have changed while the fetch was in flight
	if s.identity == nil || !s.identity.Equals(pub) {
		return
	}
	s.lamports, s.known = lamports, true
}
