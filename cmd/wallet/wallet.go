// Package wallet holds the one-shot wallet subcommands. Each connects the
// configured keypair, runs a single action and prints the outcome.
package wallet

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/saqib40/kit-and-adapter/internal/app"
	"github.com/saqib40/kit-and-adapter/internal/model"
	"github.com/saqib40/kit-and-adapter/internal/session"
	"github.com/saqib40/kit-and-adapter/internal/shell"
	"github.com/saqib40/kit-and-adapter/internal/util/command"
	"github.com/spf13/cobra"
)

func NewBalance() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Prints the wallet address and balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return command.WithApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				return Balance(ctx, a.Session, cmd.OutOrStdout())
			})
		},
	}
}

func NewAirdrop() *cobra.Command {
	return &cobra.Command{
		Use:   "airdrop",
		Short: "Requests a 1 SOL airdrop to the wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return command.WithApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				return Airdrop(ctx, a.Session, cmd.OutOrStdout())
			})
		},
	}
}

func NewSend() *cobra.Command {
	return &cobra.Command{
		Use:   "send <recipient>",
		Short: "Sends 0.1 SOL to recipient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return command.WithApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				return Send(ctx, a.Session, args[0], cmd.OutOrStdout())
			})
		},
	}
}

func Balance(ctx context.Context, s *session.Session, out io.Writer) error {
	view, err := s.Connect(ctx)
	if err != nil {
		return errors.Wrap(err, "connect wallet")
	}
	if !view.BalanceKnown {
		return errors.New("balance unavailable")
	}
	printWallet(out, view.Wallet())
	return nil
}

func Airdrop(ctx context.Context, s *session.Session, out io.Writer) error {
	if _, err := s.Connect(ctx); err != nil {
		return errors.Wrap(err, "connect wallet")
	}
	res, err := s.Airdrop(ctx)
	return report(out, s, model.ActionAirdrop, res, err)
}

func Send(ctx context.Context, s *session.Session, recipient string, out io.Writer) error {
	if _, err := s.Connect(ctx); err != nil {
		return errors.Wrap(err, "connect wallet")
	}
	s.SetRecipient(recipient)
	res, err := s.Transfer(ctx)
	return report(out, s, model.ActionTransfer, res, err)
}

func report(out io.Writer, s *session.Session, kind model.ActionKind, res *model.ActionResult, err error) error {
	if err != nil && session.IsSkipped(err) {
		return err
	}
	if n := shell.Notify(kind, err); n != nil {
		fmt.Fprintln(out, n.Message)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "signature: %s\n", res.Signature)
	printWallet(out, s.View().Wallet())
	return nil
}

func printWallet(out io.Writer, w *model.Wallet) {
	if w == nil {
		return
	}
	fmt.Fprintf(out, "address: %s\nbalance: %s SOL\n", w.Address, w.Balance)
}
