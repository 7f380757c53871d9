//go:build unit

package voucher_test

import (
	"testing"

	"voucher-ledger/internal/domain/voucher"

	"github.com/stretchr/testify/assert"
)

func TestValidatePlate(t *testing.T) {
	cases := []struct {
		in   string
		want voucher.PlateResult
	}{
		{"abc 1234", voucher.PlateResult{Valid: true, Formatted: "ABC-1234"}},
		{"ABC-1234", voucher.PlateResult{Valid: true, Formatted: "ABC-1234"}},
		{"abc1d23", voucher.PlateResult{Valid: true, Formatted: "ABC1D23"}},
		{" bra.2e19 ", voucher.PlateResult{Valid: true, Formatted: "BRA2E19"}},
		{"AB12345", voucher.PlateResult{Valid: false, Formatted: "AB12345"}},
		{"ABC12345", voucher.PlateResult{Valid: false, Formatted: "ABC12345"}},
		{"ABC1DD3", voucher.PlateResult{Valid: false, Formatted: "ABC1DD3"}},
		{"", voucher.PlateResult{Valid: false, Formatted: ""}},
		{"çé#!", voucher.PlateResult{Valid: false, Formatted: ""}},
		{"ſbc1234", voucher.PlateResult{Valid: false, Formatted: "BC1234"}},
		{"ABC1ı23", voucher.PlateResult{Valid: false, Formatted: "ABC123"}},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			assert.Equal(t, c.want, voucher.ValidatePlate(c.in))
		})
	}
}
