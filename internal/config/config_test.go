package config_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/saqib40/kit-and-adapter/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintServiceEnv(t *testing.T) {
	cfg := config.FromEnv()
	_, err := json.MarshalIndent(cfg, "", "  ")
	require.NoError(t, err)
}

func TestDefaults(t *testing.T) {
	t.Setenv("SOLANA_RPC_URL", "")
	t.Setenv("SOLANA_CLUSTER", "devnet")
	t.Setenv("SOLANA_COMMITMENT", "finalized")
	t.Setenv("CONFIRM_POLL_INTERVAL", "500ms")
	t.Setenv("WALLET_AUTO_CONNECT", "true")

	cfg := config.FromEnv()
	assert.Equal(t, rpc.DevNet_RPC, cfg.RPCURL)
	assert.Equal(t, rpc.CommitmentFinalized, cfg.DefaultCommitment())
	assert.Equal(t, 500*time.Millisecond, cfg.ConfirmPollInterval)
	assert.True(t, cfg.AutoConnect)
	assert.NoError(t, cfg.Validate())
}

func TestRPCURLOverride(t *testing.T) {
	t.Setenv("SOLANA_CLUSTER", "localnet")
	t.Setenv("SOLANA_RPC_URL", "http://10.0.0.5:8899")

	cfg := config.FromEnv()
	assert.Equal(t, "http://10.0.0.5:8899", cfg.RPCURL)
}

func TestValidateRejectsMainnet(t *testing.T) {
	t.Setenv("SOLANA_CLUSTER", "mainnet-beta")
	t.Setenv("SOLANA_RPC_URL", "")

	err := config.FromEnv().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mainnet-beta")
}

func TestValidate(t *testing.T) {
	valid := config.Config{
		Cluster:             "devnet",
		RPCURL:              rpc.DevNet_RPC,
		Commitment:          "processed",
		ConfirmPollInterval: time.Second,
	}
	assert.NoError(t, valid.Validate())

	badCommitment := valid
	badCommitment.Commitment = "max"
	assert.Error(t, badCommitment.Validate())

	badInterval := valid
	badInterval.ConfirmPollInterval = 0
	assert.Error(t, badInterval.Validate())

	noURL := valid
	noURL.RPCURL = ""
	assert.Error(t, noURL.Validate())
}
