//go:build e2e

package voucher_test

import (
	"net/http"
	"sync"
	"testing"

	"voucher-ledger/internal/domain/user"
	resdto "voucher-ledger/internal/handler/dto/response"
	"voucher-ledger/internal/handler/httperr"
	"voucher-ledger/tests/common/authtest"
	"voucher-ledger/tests/common/dbtest"
	"voucher-ledger/tests/common/httptest"
	"voucher-ledger/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	vouchersURL = "/api/vouchers"
	redeemURL   = "/api/vouchers/redeem"
	statsURL    = "/api/vouchers/stats"
)

type voucherSuite struct {
	e2e.SharedSuite

	adminToken   string
	cashierID    uuid.UUID
	cashierToken string
	postoToken   string
	convToken    string
	tier40ID     uuid.UUID
}

func TestVoucherSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(voucherSuite))
}

func (s *voucherSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	_, s.adminToken = authtest.CreateAndLogin(t, s.DB, s.Router, "admin@ledger.test", user.RoleAdmin.String(), nil)
	s.cashierID, s.cashierToken = authtest.CreateAndLogin(t, s.DB, s.Router, "caixa@ledger.test", user.RoleCashier.String(), nil)
	_, s.postoToken = authtest.CreateAndLogin(t, s.DB, s.Router, "posto@ledger.test", user.RoleEstablishment.String(), &dbtest.PostoID)
	_, s.convToken = authtest.CreateAndLogin(t, s.DB, s.Router, "conv@ledger.test", user.RoleEstablishment.String(), &dbtest.ConvenienciaID)

	dbtest.CreateTestTier(t, s.DB, dbtest.PostoID, "Faixa 20L", "20", "25")
	s.tier40ID = dbtest.CreateTestTier(t, s.DB, dbtest.PostoID, "Faixa 40L", "40", "50")
}

func issueBody(volume string) map[string]any {
	return map[string]any{
		"volume":           volume,
		"vehicle_plate":    "abc1d23",
		"driver_name":      "João Silva",
		"establishment_id": dbtest.PostoID,
	}
}

func (s *voucherSuite) issue(volume string) resdto.VoucherResponse {
	s.T().Helper()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, vouchersURL, issueBody(volume), s.cashierToken)
	var v resdto.VoucherResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &v)
	return v
}

func (s *voucherSuite) redeem(code, token string) int {
	s.T().Helper()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, redeemURL, map[string]string{"code": code}, token)
	return w.Code
}

func (s *voucherSuite) TestIssue() {
	s.Run("volume picks the highest tier not above it", func() {
		v := s.issue("45")

		s.Equal("issued", v.Status)
		s.True(v.Value.Equal(decimal.NewFromInt(50)), v.Value.String())
		s.Require().NotNil(v.TierID)
		s.Equal(s.tier40ID, *v.TierID)
		s.Equal("ABC1D23", v.VehiclePlate)
		s.Equal(s.cashierID, v.IssuerID)
		s.Regexp(`^VF-[A-Z0-9]{8}$`, v.Code)
	})

	s.Run("volume below every tier is ineligible", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, vouchersURL, issueBody("10"), s.cashierToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusUnprocessableEntity, httperr.CodeIneligible)
	})

	s.Run("tier changes do not touch issued vouchers", func() {
		v := s.issue("40")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/tiers/"+s.tier40ID.String(),
			map[string]any{"value": "99"}, s.adminToken)
		s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, vouchersURL+"/"+v.ID.String(), nil, s.cashierToken)
		var reloaded resdto.VoucherResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &reloaded)
		s.True(reloaded.Value.Equal(decimal.NewFromInt(50)))
	})

	s.Run("establishment users cannot issue", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, vouchersURL, issueBody("45"), s.postoToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusForbidden, httperr.CodeForbidden)
	})

	s.Run("malformed plate", func() {
		body := issueBody("45")
		body["vehicle_plate"] = "AB-12"
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, vouchersURL, body, s.cashierToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, httperr.CodeValidation)
	})
}

func (s *voucherSuite) TestRedeem() {
	s.Run("second redemption is rejected", func() {
		v := s.issue("45")

		s.Equal(http.StatusOK, s.redeem(v.Code, s.postoToken))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, redeemURL, map[string]string{"code": v.Code}, s.postoToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusConflict, httperr.CodeAlreadyRedeemed)
	})

	s.Run("codes are matched case-insensitively", func() {
		v := s.issue("45")
		lower := []byte(v.Code)
		for i, c := range lower {
			if c >= 'A' && c <= 'Z' {
				lower[i] = c + 'a' - 'A'
			}
		}
		s.Equal(http.StatusOK, s.redeem(" "+string(lower)+" ", s.postoToken))
	})

	s.Run("concurrent redemptions succeed exactly once", func() {
		v := s.issue("45")

		const workers = 10
		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, redeemURL, map[string]string{"code": v.Code}, s.postoToken)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		var ok, conflict int
		for _, c := range codes {
			switch c {
			case http.StatusOK:
				ok++
			case http.StatusConflict:
				conflict++
			}
		}
		s.Equal(1, ok, "statuses: %v", codes)
		s.Equal(workers-1, conflict, "statuses: %v", codes)
	})

	s.Run("other establishment cannot redeem", func() {
		v := s.issue("45")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, redeemURL, map[string]string{"code": v.Code}, s.convToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusForbidden, httperr.CodeForbidden)
	})

	s.Run("unknown code", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, redeemURL, map[string]string{"code": "VF-ZZZZZZZZ"}, s.postoToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusNotFound, httperr.CodeNotFound)
	})

	s.Run("cashiers cannot redeem", func() {
		v := s.issue("45")
		s.Equal(http.StatusForbidden, s.redeem(v.Code, s.cashierToken))
	})
}

func (s *voucherSuite) TestCancelAndDelete() {
	s.Run("cancelled vouchers cannot be redeemed", func() {
		v := s.issue("45")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, vouchersURL+"/"+v.ID.String()+"/cancel", nil, s.adminToken)
		s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, redeemURL, map[string]string{"code": v.Code}, s.postoToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusConflict, httperr.CodeCancelled)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, vouchersURL+"/"+v.ID.String()+"/cancel", nil, s.adminToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusConflict, httperr.CodeInvalidState)
	})

	s.Run("only admins cancel", func() {
		v := s.issue("45")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, vouchersURL+"/"+v.ID.String()+"/cancel", nil, s.cashierToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusForbidden, httperr.CodeForbidden)
	})

	s.Run("issued vouchers cannot be deleted", func() {
		v := s.issue("45")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, vouchersURL+"/"+v.ID.String(), nil, s.adminToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusConflict, httperr.CodeInvalidState)
	})

	s.Run("deleted vouchers disappear but keep their code", func() {
		v := s.issue("45")
		s.Require().Equal(http.StatusOK, s.redeem(v.Code, s.postoToken))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, vouchersURL+"/"+v.ID.String(), nil, s.adminToken)
		s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, vouchersURL+"/"+v.ID.String(), nil, s.adminToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusNotFound, httperr.CodeNotFound)

		var stored int
		err := s.DB.QueryRow(s.T().Context(), "SELECT count(*) FROM vouchers WHERE code = $1", v.Code).Scan(&stored)
		require.NoError(s.T(), err)
		s.Equal(1, stored)
	})
}

func (s *voucherSuite) TestListsAndStats() {
	s.Run("issuer list pages with a cursor", func() {
		for range 3 {
			s.issue("45")
		}

		url := "/api/issuers/" + s.cashierID.String() + "/vouchers?limit=2"
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, s.cashierToken)
		var first resdto.VoucherPageResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &first)
		s.Len(first.Items, 2)
		s.Require().NotNil(first.NextCursor)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url+"&after="+*first.NextCursor, nil, s.cashierToken)
		var second resdto.VoucherPageResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &second)
		s.Len(second.Items, 1)
		s.Nil(second.NextCursor)
		s.NotEqual(first.Items[0].ID, second.Items[0].ID)
	})

	s.Run("establishments only list their own vouchers", func() {
		s.issue("45")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/establishments/"+dbtest.PostoID.String()+"/vouchers", nil, s.postoToken)
		var page resdto.VoucherPageResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &page)
		s.Len(page.Items, 1)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/establishments/"+dbtest.PostoID.String()+"/vouchers", nil, s.convToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusForbidden, httperr.CodeForbidden)
	})

	s.Run("stats sum values per status", func() {
		redeemed := s.issue("45")
		s.issue("25")
		s.Require().Equal(http.StatusOK, s.redeem(redeemed.Code, s.postoToken))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, statsURL, nil, s.adminToken)
		var stats resdto.VoucherStatsResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &stats)
		s.Equal(int64(1), stats.Issued.Count)
		s.True(stats.Issued.Value.Equal(decimal.NewFromInt(25)), stats.Issued.Value.String())
		s.Equal(int64(1), stats.Redeemed.Count)
		s.True(stats.Redeemed.Value.Equal(decimal.NewFromInt(50)))
		s.Zero(stats.Cancelled.Count)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, statsURL, nil, s.convToken)
		var empty resdto.VoucherStatsResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &empty)
		s.Zero(empty.Issued.Count + empty.Redeemed.Count)
	})
}
