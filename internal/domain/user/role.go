package user

import "strings"

type Role string

const (
	RoleAdmin         Role = "admin"
	RoleCashier       Role = "cashier"
	RoleEstablishment Role = "establishment"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCashier, RoleEstablishment:
		return true
	default:
		return false
	}
}

// NewRole parses a role name. The Portuguese spellings used by older
// clients ("caixa", "estabelecimento") map onto the canonical roles.
func NewRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, nil
	case "cashier", "caixa":
		return RoleCashier, nil
	case "establishment", "estabelecimento":
		return RoleEstablishment, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) CanIssue() bool {
	switch r {
	case RoleAdmin, RoleCashier:
		return true
	case RoleEstablishment:
		return false
	default:
		return false
	}
}

func (r Role) CanRedeem() bool {
	switch r {
	case RoleEstablishment:
		return true
	case RoleAdmin, RoleCashier:
		return false
	default:
		return false
	}
}

// CanAdminister covers tier maintenance and voucher cancel/delete.
func (r Role) CanAdminister() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleCashier, RoleEstablishment:
		return false
	default:
		return false
	}
}

// RequiresEstablishment reports whether accounts with this role must be
// bound to an establishment.
func (r Role) RequiresEstablishment() bool {
	switch r {
	case RoleEstablishment:
		return true
	case RoleAdmin, RoleCashier:
		return false
	default:
		return false
	}
}
