package shell

import (
	"github.com/pkg/errors"
	"github.com/saqib40/kit-and-adapter/internal/model"
	"github.com/saqib40/kit-and-adapter/internal/session"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice codes identify a notification across redirects.
const (
	NoticeAirdropSucceeded  = "airdrop_succeeded"
	NoticeAirdropFailed     = "airdrop_failed"
	NoticeTransferSucceeded = "transfer_succeeded"
	NoticeInvalidRecipient  = "invalid_recipient"
	NoticeTransferFailed    = "transfer_failed"
)

type Notification struct {
	Code    string `json:"code"`
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

var notifications = map[string]Notification{
	NoticeAirdropSucceeded:  {Code: NoticeAirdropSucceeded, Level: LevelSuccess, Message: "Airdrop successful!"},
	NoticeAirdropFailed:     {Code: NoticeAirdropFailed, Level: LevelError, Message: "Airdrop failed!"},
	NoticeTransferSucceeded: {Code: NoticeTransferSucceeded, Level: LevelSuccess, Message: "Transaction successful!"},
	NoticeInvalidRecipient:  {Code: NoticeInvalidRecipient, Level: LevelError, Message: "Invalid recipient address!"},
	NoticeTransferFailed:    {Code: NoticeTransferFailed, Level: LevelError, Message: "Transaction failed!"},
}

// Notify maps the outcome of an action to the notification shown to the user.
// Skipped actions produce none.
func Notify(kind model.ActionKind, err error) *Notification {
	if err != nil && session.IsSkipped(err) {
		return nil
	}

	var code string
	switch kind {
	case model.ActionAirdrop:
		code = NoticeAirdropSucceeded
		if err != nil {
			code = NoticeAirdropFailed
		}
	case model.ActionTransfer:
		switch {
		case err == nil:
			code = NoticeTransferSucceeded
		case errors.Is(err, session.ErrInvalidRecipient):
			code = NoticeInvalidRecipient
		default:
			code = NoticeTransferFailed
		}
	default:
		return nil
	}
	return Lookup(code)
}

// Lookup returns the notification for a notice code, or nil if unknown.
func Lookup(code string) *Notification {
	n, ok := notifications[code]
	if !ok {
		return nil
	}
	return &n
}
