package user

import (
	"regexp"
	"strings"

	"voucher-ledger/internal/pkg/errs"
)

var (
	ErrInvalidEmail          = errs.Kind("invalid email format", errs.ErrValidation)
	ErrInvalidRole           = errs.Kind("invalid role", errs.ErrValidation)
	ErrPasswordTooWeak       = errs.Kind("password must be at least 8 characters long", errs.ErrValidation)
	ErrEmptyName             = errs.Kind("user name is required", errs.ErrValidation)
	ErrEstablishmentRequired = errs.Kind("establishment users must be bound to an establishment", errs.ErrValidation)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
