//go:build unit

package httperr_test

import (
	"net/http"
	"testing"

	"voucher-ledger/internal/domain/auth"
	"voucher-ledger/internal/domain/tier"
	"voucher-ledger/internal/domain/voucher"
	"voucher-ledger/internal/handler/httperr"
	"voucher-ledger/internal/pkg/errs"
	"voucher-ledger/internal/usecase/commands"
	"voucher-ledger/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"validation", voucher.ErrInvalidPlate, http.StatusBadRequest, httperr.CodeValidation, "vehicle plate must be AAA9999 or AAA9A99"},
		{"wrapped validation", errs.Wrap(voucher.ErrNonPositiveVolume, "issue"), http.StatusBadRequest, httperr.CodeValidation, "issue: volume must be greater than zero"},
		{"ineligible", tier.ErrNoEligibleTier, http.StatusUnprocessableEntity, httperr.CodeIneligible, "volume does not qualify for any active tier"},
		{"not found", voucher.ErrVoucherNotFound, http.StatusNotFound, httperr.CodeNotFound, "voucher not found"},
		{"already redeemed", voucher.ErrAlreadyRedeemed, http.StatusConflict, httperr.CodeAlreadyRedeemed, "voucher has already been used"},
		{"cancelled", voucher.ErrVoucherCancelled, http.StatusConflict, httperr.CodeCancelled, "voucher was cancelled and can no longer be used"},
		{"invalid state", voucher.ErrDeleteIssued, http.StatusConflict, httperr.CodeInvalidState, "issued vouchers must be cancelled or redeemed before deletion"},
		{"forbidden", commands.ErrAdminOnly, http.StatusForbidden, httperr.CodeForbidden, "administrator role required"},
		{"unauthorized", auth.ErrInvalidCredentials, http.StatusUnauthorized, httperr.CodeUnauthorized, "invalid email or password"},
		{"cursor", queries.ErrInvalidCursor, http.StatusBadRequest, httperr.CodeValidation, "invalid cursor"},
		{
			"code generation hides the cause",
			errs.Mark(errs.New("duplicate key value violates unique constraint"), voucher.ErrCodeSpaceExhausted),
			http.StatusServiceUnavailable, httperr.CodeCodeGeneration, "could not generate a unique voucher code",
		},
		{"unknown", errs.New("connection reset"), http.StatusInternalServerError, httperr.CodeInternal, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, msg := httperr.Classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
