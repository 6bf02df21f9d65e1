package ledger_test

import (
	"testing"

	"github.com/saqib40/kit-and-adapter/internal/ledger"
	"github.com/stretchr/testify/assert"
)

func TestFormatSOL(t *testing.T) {
	tests := []struct {
		lamports uint64
		want     string
	}{
		{0, "0.0000"},
		{ledger.AirdropLamports, "1.0000"},
		{ledger.TransferLamports, "0.1000"},
		{ledger.AirdropLamports - ledger.TransferLamports - 5000, "0.9000"},
		{1_234_567_890, "1.2346"},
		{50_000, "0.0001"},
		{49_999, "0.0000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ledger.FormatSOL(tt.lamports), "lamports=%d", tt.lamports)
	}
}

func TestAmounts(t *testing.T) {
	assert.Equal(t, uint64(1_000_000_000), ledger.AirdropLamports)
	assert.Equal(t, uint64(100_000_000), ledger.TransferLamports)
	assert.Equal(t, "0.1", ledger.ToSOL(ledger.TransferLamports).String())
}
