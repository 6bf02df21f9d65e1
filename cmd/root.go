package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/saqib40/kit-and-adapter/cmd/server"
	"github.com/saqib40/kit-and-adapter/cmd/wallet"
	"github.com/saqib40/kit-and-adapter/internal/config"
	"github.com/saqib40/kit-and-adapter/internal/util/command"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "app",
	Short: config.ModuleName,
	Long: fmt.Sprintf(`%v

A wallet front-end for Solana devnet: connect, check the balance,
request a 1 SOL airdrop and send 0.1 SOL to a recipient.
Requires configuration through ENV.`, config.ModuleName),
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		command.SetupLogger(config.FromEnv())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.AddCommand(
		server.New(),
		wallet.NewBalance(),
		wallet.NewAirdrop(),
		wallet.NewSend(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}
