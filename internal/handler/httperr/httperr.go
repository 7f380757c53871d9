package httperr

import (
	"net/http"

	"voucher-ledger/internal/domain/voucher"
	"voucher-ledger/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Machine-readable error codes returned in the response body.
const (
	CodeValidation      = "VALIDATION"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeAlreadyRedeemed = "ALREADY_REDEEMED"
	CodeCancelled       = "CANCELLED"
	CodeInvalidState    = "INVALID_STATE"
	CodeIneligible      = "INELIGIBLE"
	CodeCodeGeneration  = "CODE_GENERATION"
	CodeInternal        = "INTERNAL"
)

const internalMessage = "Internal server error"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, code, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, code string, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := NewResponse(status, code, msg)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort classifies err by its kind and writes the matching response.
func Abort(c *gin.Context, err error) {
	status, code, msg := Classify(err)
	AbortWithError(c, status, code, err, msg, nil)
}

// BadRequest is for malformed input caught before a use case runs.
func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, CodeValidation, err, msg, nil)
}

type mapping struct {
	kind   error
	status int
	code   string
}

// most specific first; a sentinel carries exactly one kind
var mappings = []mapping{
	{errs.ErrCodeGeneration, http.StatusServiceUnavailable, CodeCodeGeneration},
	{errs.ErrAlreadyRedeemed, http.StatusConflict, CodeAlreadyRedeemed},
	{errs.ErrCancelled, http.StatusConflict, CodeCancelled},
	{errs.ErrInvalidState, http.StatusConflict, CodeInvalidState},
	{errs.ErrIneligible, http.StatusUnprocessableEntity, CodeIneligible},
	{errs.ErrNotFound, http.StatusNotFound, CodeNotFound},
	{errs.ErrForbidden, http.StatusForbidden, CodeForbidden},
	{errs.ErrUnauthorized, http.StatusUnauthorized, CodeUnauthorized},
	{errs.ErrValidation, http.StatusBadRequest, CodeValidation},
}

// Classify returns the status, code and client-facing message for err.
// Unclassified errors never leak their text.
func Classify(err error) (int, string, string) {
	for _, m := range mappings {
		if !errs.Is(err, m.kind) {
			continue
		}
		if m.status == http.StatusServiceUnavailable {
			// the underlying error is the last duplicate key, not for clients
			return m.status, m.code, voucher.ErrCodeSpaceExhausted.Error()
		}
		return m.status, m.code, err.Error()
	}
	return http.StatusInternalServerError, CodeInternal, internalMessage
}
