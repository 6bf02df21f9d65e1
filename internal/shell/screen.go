// Package shell turns session state into what the user sees: the screen
// layout, the notification for an action outcome and the HTML page.
package shell

import (
	"fmt"

	"github.com/saqib40/kit-and-adapter/internal/ledger"
	"github.com/saqib40/kit-and-adapter/internal/session"
)

const (
	Title         = "My Solana dApp"
	ConnectPrompt = "Please connect your wallet to get started."

	ControlConnect    = "connect"
	ControlDisconnect = "disconnect"
	ControlAirdrop    = "airdrop"
	ControlSend       = "send"
)

type Control struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

type Screen struct {
	Title     string    `json:"title"`
	Connected bool      `json:"connected"`
	Wallet    Control   `json:"wallet"`
	Heading   string    `json:"heading"`
	Address   string    `json:"address"`
	Balance   string    `json:"balance"`
	Recipient string    `json:"recipient"`
	Controls  []Control `json:"controls"`
	Prompt    string    `json:"prompt"`
}

// Compose lays out the screen for a session view. Action controls only appear
// while a wallet is connected.
func Compose(v session.View) Screen {
	if !v.Connected {
		return Screen{
			Title:   Title,
			Wallet:  Control{Name: ControlConnect, Label: "Connect Wallet"},
			Balance: fmt.Sprintf("%s SOL", ledger.FormatSOL(0)),
			Prompt:  ConnectPrompt,
		}
	}

	return Screen{
		Title:     Title,
		Connected: true,
		Wallet:    Control{Name: ControlDisconnect, Label: "Disconnect"},
		Heading:   "Wallet Connected!",
		Address:   v.Identity.String(),
		Balance:   fmt.Sprintf("%s SOL", ledger.FormatSOL(v.Lamports)),
		Recipient: v.Recipient,
		Controls: []Control{
			{Name: ControlAirdrop, Label: fmt.Sprintf("Airdrop %s SOL", ledger.ToSOL(ledger.AirdropLamports))},
			{Name: ControlSend, Label: fmt.Sprintf("Send %s SOL", ledger.ToSOL(ledger.TransferLamports))},
		},
	}
}
