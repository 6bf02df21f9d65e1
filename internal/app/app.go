// Package app wires the ledger client, wallet connector, journal and session
// from a config.Config.
package app

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/saqib40/kit-and-adapter/internal/config"
	"github.com/saqib40/kit-and-adapter/internal/graph"
	"github.com/saqib40/kit-and-adapter/internal/journal"
	"github.com/saqib40/kit-and-adapter/internal/ledger"
	"github.com/saqib40/kit-and-adapter/internal/router"
	"github.com/saqib40/kit-and-adapter/internal/session"
	"github.com/saqib40/kit-and-adapter/internal/shell"
	"github.com/saqib40/kit-and-adapter/internal/wallet"
	"github.com/saqib40/kit-and-adapter/pkg/graphql"
)

type App struct {
	Config  config.Config
	Ledger  *ledger.Client
	Journal journal.Journal
	Session *session.Session
}

// New builds the app. The caller owns the returned App and must Close it.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	key, err := wallet.LoadKeypair(wallet.KeypairSource{
		SecretKey: cfg.SecretKey,
		Path:      cfg.KeypairPath,
		Ephemeral: cfg.Ephemeral,
	})
	if err != nil {
		return nil, errors.Wrap(err, "load wallet keypair")
	}

	j, err := openJournal(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	client := ledger.NewClient(cfg.RPCURL, cfg.DefaultCommitment(), cfg.ConfirmPollInterval)
	sess := session.New(wallet.NewKeypairConnector(key), client, j, session.Options{
		AirdropCommitment: cfg.DefaultCommitment(),
	})

	a := &App{
		Config:  cfg,
		Ledger:  client,
		Journal: j,
		Session: sess,
	}

	log.Info().
		Str("cluster", cfg.Cluster).
		Str("rpc", cfg.RPCURL).
		Str("commitment", cfg.Commitment).
		Bool("persistent_journal", cfg.DatabaseURL != "").
		Msg("Application initialized")

	if cfg.AutoConnect {
		if _, err := sess.Connect(ctx); err != nil {
			a.Close()
			return nil, errors.Wrap(err, "auto-connect wallet")
		}
	}
	return a, nil
}

// Handler returns the HTTP surface: GraphQL, the page and its actions.
func (a *App) Handler() (http.Handler, error) {
	gql, err := graphql.NewHandler(&graph.Resolver{Session: a.Session})
	if err != nil {
		return nil, errors.Wrap(err, "build graphql schema")
	}
	return router.New(gql, shell.NewPage(a.Session)), nil
}

func (a *App) Close() error {
	if a.Journal == nil {
		return nil
	}
	return a.Journal.Close()
}

func openJournal(ctx context.Context, dsn string) (journal.Journal, error) {
	if dsn == "" {
		log.Debug().Msg("DATABASE_URL not set, keeping activity in memory")
		return journal.NewMemory(), nil
	}

	pg, err := journal.OpenPostgres(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open journal")
	}
	if err := pg.Migrate(ctx); err != nil {
		pg.Close()
		return nil, errors.Wrap(err, "migrate journal")
	}
	return pg, nil
}
