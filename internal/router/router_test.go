package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/saqib40/kit-and-adapter/internal/graph"
	"github.com/saqib40/kit-and-adapter/internal/router"
	"github.com/saqib40/kit-and-adapter/internal/session"
	"github.com/saqib40/kit-and-adapter/internal/shell"
	"github.com/saqib40/kit-and-adapter/internal/wallet"
	"github.com/saqib40/kit-and-adapter/pkg/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emptyCluster struct{}

func (emptyCluster) GetLatestBlockhash(ctx context.Context) (solana.Hash, error) {
	return solana.Hash{}, nil
}

func (emptyCluster) SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	return solana.Signature{}, nil
}

func (emptyCluster) GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	return 0, nil
}

func (emptyCluster) RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error) {
	return solana.Signature{}, nil
}

func (emptyCluster) Confirm(ctx context.Context, sig solana.Signature, level rpc.CommitmentType) error {
	return nil
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	sess := session.New(wallet.NewKeypairConnector(solana.NewWallet().PrivateKey), emptyCluster{}, nil, session.Options{})
	gql, err := graphql.NewHandler(&graph.Resolver{Session: sess})
	require.NoError(t, err)

	server := httptest.NewServer(router.New(gql, shell.NewPage(sess)))
	t.Cleanup(server.Close)
	return server
}

func TestHealthz(t *testing.T) {
	server := newServer(t)

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	server := newServer(t)

	req, _ := http.NewRequest(http.MethodOptions, server.URL+"/query", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestIndexAndQuery(t *testing.T) {
	server := newServer(t)

	resp, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	resp, err = http.Post(server.URL+"/query", "application/json", strings.NewReader(`{"query":"{ screen { title } }"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestActionsRedirect(t *testing.T) {
	server := newServer(t)
	client := &http.Client{CheckRedirect: func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}}

	resp, err := client.Post(server.URL+"/actions/connect", "application/x-www-form-urlencoded", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp, err = client.Get(server.URL + "/actions/airdrop")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
