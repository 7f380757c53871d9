//go:build unit

package validation_test

import (
	"testing"

	"voucher-ledger/internal/handler/validation"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plateForm struct {
	Plate string `validate:"plate"`
}

type volumeForm struct {
	Volume decimal.Decimal  `validate:"decimal_gt0"`
	Extra  *decimal.Decimal `validate:"omitempty,decimal_gt0"`
	Raw    string           `validate:"omitempty,decimal_gt0"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, validation.RegisterOn(v))
	return v
}

func TestPlate(t *testing.T) {
	v := newValidator(t)

	for _, ok := range []string{"ABC1234", "abc-1234", "ABC1D23", " abc 1d23 "} {
		assert.NoError(t, v.Struct(plateForm{Plate: ok}), ok)
	}
	for _, bad := range []string{"", "AB1234", "ABCD123", "ABC12345", "1234ABC"} {
		assert.Error(t, v.Struct(plateForm{Plate: bad}), bad)
	}
}

func TestDecimalGT0(t *testing.T) {
	v := newValidator(t)
	neg := decimal.NewFromInt(-3)

	tests := []struct {
		name    string
		form    volumeForm
		wantErr bool
	}{
		{"positive", volumeForm{Volume: decimal.RequireFromString("0.001")}, false},
		{"zero", volumeForm{Volume: decimal.Zero}, true},
		{"negative", volumeForm{Volume: neg}, true},
		{"nil optional", volumeForm{Volume: decimal.NewFromInt(1)}, false},
		{"negative optional", volumeForm{Volume: decimal.NewFromInt(1), Extra: &neg}, true},
		{"string field", volumeForm{Volume: decimal.NewFromInt(1), Raw: "12.5"}, false},
		{"unparseable string", volumeForm{Volume: decimal.NewFromInt(1), Raw: "twelve"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.form)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
