// Package journal keeps a record of every airdrop and transfer the session
// attempted. Balances are never stored here.
package journal

import (
	"context"

	"github.com/saqib40/kit-and-adapter/internal/model"
)

const (
	DefaultLimit = 20
	// MaxLimit bounds a single Recent call.
	MaxLimit = 100
)

type Journal interface {
	Record(ctx context.Context, entry model.Activity) (model.Activity, error)
	Recent(ctx context.Context, limit int) ([]model.Activity, error)
	// Lookup returns nil, nil when no entry carries the signature.
	Lookup(ctx context.Context, signature string) (*model.Activity, error)
	Close() error
}

func normalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}
