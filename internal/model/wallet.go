package model

import "time"

type Wallet struct {
	Address  string `json:"address"`
	Lamports uint64 `json:"lamports"`
	Balance  string `json:"balance"`
}

type ActionKind string

const (
	ActionAirdrop  ActionKind = "airdrop"
	ActionTransfer ActionKind = "transfer"
)

type ActivityStatus string

const (
	StatusConfirmed ActivityStatus = "confirmed"
	StatusFailed    ActivityStatus = "failed"
)

// ActionResult is the outcome of a confirmed airdrop or transfer.
type ActionResult struct {
	Kind      ActionKind `json:"kind"`
	Signature string     `json:"signature"`
	Lamports  uint64     `json:"lamports"`
	To        string     `json:"to"`
	Wallet    *Wallet    `json:"wallet"`
}

type Activity struct {
	ID        int64          `json:"id"`
	Kind      ActionKind     `json:"kind"`
	From      string         `json:"from"`
	To        string         `json:"to"`
	Lamports  uint64         `json:"lamports"`
	Signature string         `json:"signature"`
	Status    ActivityStatus `json:"status"`
	Error     string         `json:"error,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}
