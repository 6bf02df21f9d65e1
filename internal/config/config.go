package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const ModuleName = "kit-and-adapter"

type Config struct {
	ListenAddr string `json:"listenAddr"`

	Cluster             string        `json:"cluster"`
	RPCURL              string        `json:"rpcUrl"`
	Commitment          string        `json:"commitment"`
	ConfirmPollInterval time.Duration `json:"confirmPollInterval"`

	KeypairPath string `json:"keypairPath"`
	SecretKey   string `json:"-"`
	Ephemeral   bool   `json:"ephemeral"`
	AutoConnect bool   `json:"autoConnect"`

	DatabaseURL string `json:"-"`

	LogLevel  string `json:"logLevel"`
	LogPretty bool   `json:"logPretty"`
}

var clusterEndpoints = map[string]string{
	"devnet":   rpc.DevNet_RPC,
	"testnet":  rpc.TestNet_RPC,
	"localnet": rpc.LocalNet_RPC,
}

var commitments = map[string]bool{
	string(rpc.CommitmentProcessed): true,
	string(rpc.CommitmentConfirmed): true,
	string(rpc.CommitmentFinalized): true,
}

// Load reads the optional .env file and then builds the config from the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func FromEnv() Config {
	cfg := Config{
		ListenAddr:          getEnv("LISTEN_ADDR", ":8080"),
		Cluster:             strings.ToLower(getEnv("SOLANA_CLUSTER", "devnet")),
		RPCURL:              getEnv("SOLANA_RPC_URL", ""),
		Commitment:          strings.ToLower(getEnv("SOLANA_COMMITMENT", string(rpc.CommitmentFinalized))),
		ConfirmPollInterval: getEnvAsDuration("CONFIRM_POLL_INTERVAL", 500*time.Millisecond),
		KeypairPath:         getEnv("WALLET_KEYPAIR", ""),
		SecretKey:           getEnv("WALLET_SECRET_KEY", ""),
		Ephemeral:           getEnvAsBool("WALLET_EPHEMERAL", false),
		AutoConnect:         getEnvAsBool("WALLET_AUTO_CONNECT", true),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		LogLevel:            strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogPretty:           getEnvAsBool("LOG_PRETTY", false),
	}

	if cfg.RPCURL == "" {
		cfg.RPCURL = clusterEndpoints[cfg.Cluster]
	}
	return cfg
}

func (c Config) Validate() error {
	if _, ok := clusterEndpoints[c.Cluster]; !ok {
		return errors.Errorf("unsupported cluster %q: only devnet, testnet and localnet are allowed", c.Cluster)
	}
	if c.RPCURL == "" {
		return errors.New("rpc url is empty")
	}
	if !commitments[c.Commitment] {
		return errors.Errorf("unknown commitment %q", c.Commitment)
	}
	if c.ConfirmPollInterval <= 0 {
		return errors.Errorf("confirm poll interval must be positive, got %s", c.ConfirmPollInterval)
	}
	return nil
}

// DefaultCommitment is the level used for balance reads and airdrop confirmation.
func (c Config) DefaultCommitment() rpc.CommitmentType {
	return rpc.CommitmentType(c.Commitment)
}

func getEnv(key string, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
