package session

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/saqib40/kit-and-adapter/internal/model"
)

var (
	// ErrNotConnected means the action was skipped because no wallet is connected.
	ErrNotConnected = errors.New("no wallet connected")
	// ErrEmptyRecipient means the transfer was skipped because the draft is blank.
	ErrEmptyRecipient   = errors.New("recipient address is empty")
	ErrInvalidRecipient = errors.New("invalid recipient address")
)

type InvalidRecipientError struct {
	Input string
	Err   error
}

func (e *InvalidRecipientError) Error() string {
	return fmt.Sprintf("invalid recipient address %q", e.Input)
}

func (e *InvalidRecipientError) Is(target error) bool {
	return target == ErrInvalidRecipient
}

func (e *InvalidRecipientError) Unwrap() error {
	return e.Err
}

// RemoteError wraps a failure of a call against the wallet or the cluster.
type RemoteError struct {
	Kind model.ActionKind
	Op   string
	Err  error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// IsSkipped reports whether err is a precondition no-op rather than a failure.
func IsSkipped(err error) bool {
	return errors.Is(err, ErrNotConnected) || errors.Is(err, ErrEmptyRecipient)
}
