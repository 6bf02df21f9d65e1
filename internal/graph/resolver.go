package graph

import (
	"context"

	"github.com/saqib40/kit-and-adapter/internal/model"
	"github.com/saqib40/kit-and-adapter/internal/session"
	"github.com/saqib40/kit-and-adapter/internal/shell"
)

type Resolver struct {
	Session *session.Session
}

// ActionPayload is what the airdrop and send mutations return. Skipped is set
// when a precondition turned the action into a no-op.
type ActionPayload struct {
	Kind         model.ActionKind    `json:"kind"`
	Skipped      bool                `json:"skipped"`
	Result       *model.ActionResult `json:"result"`
	Notification *shell.Notification `json:"notification"`
	Wallet       *model.Wallet       `json:"wallet"`
}

func (r *Resolver) Wallet(ctx context.Context) *model.Wallet {
	r.Session.Sync(ctx)
	return r.Session.View().Wallet()
}

func (r *Resolver) Screen(ctx context.Context) shell.Screen {
	r.Session.Sync(ctx)
	return shell.Compose(r.Session.View())
}

func (r *Resolver) Connect(ctx context.Context) (*model.Wallet, error) {
	view, err := r.Session.Connect(ctx)
	if err != nil {
		return nil, err
	}
	return view.Wallet(), nil
}

func (r *Resolver) Disconnect(ctx context.Context) (bool, error) {
	view, err := r.Session.Disconnect(ctx)
	if err != nil {
		return false, err
	}
	return !view.Connected, nil
}

func (r *Resolver) RefreshBalance(ctx context.Context) (*model.Wallet, error) {
	if err := r.Session.Refresh(ctx); err != nil && !session.IsSkipped(err) {
		return nil, err
	}
	return r.Session.View().Wallet(), nil
}

func (r *Resolver) SetRecipient(address string) string {
	r.Session.SetRecipient(address)
	return r.Session.Recipient()
}

func (r *Resolver) Airdrop(ctx context.Context) *ActionPayload {
	res, err := r.Session.Airdrop(context.WithoutCancel(ctx))
	return r.payload(model.ActionAirdrop, res, err)
}

// Send transfers to recipient, or to the current draft when recipient is nil.
func (r *Resolver) Send(ctx context.Context, recipient *string) *ActionPayload {
	if recipient != nil {
		r.Session.SetRecipient(*recipient)
	}
	res, err := r.Session.Transfer(context.WithoutCancel(ctx))
	return r.payload(model.ActionTransfer, res, err)
}

func (r *Resolver) Activity(ctx context.Context, limit int) ([]model.Activity, error) {
	return r.Session.Journal().Recent(ctx, limit)
}

func (r *Resolver) Transaction(ctx context.Context, signature string) (*model.Activity, error) {
	return r.Session.Journal().Lookup(ctx, signature)
}

func (r *Resolver) payload(kind model.ActionKind, res *model.ActionResult, err error) *ActionPayload {
	return &ActionPayload{
		Kind:         kind,
		Skipped:      err != nil && session.IsSkipped(err),
		Result:       res,
		Notification: shell.Notify(kind, err),
		Wallet:       r.Session.View().Wallet(),
	}
}
