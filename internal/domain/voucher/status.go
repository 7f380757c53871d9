package voucher

type Status string

const (
	StatusIssued    Status = "issued"
	StatusRedeemed  Status = "redeemed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusIssued, StatusRedeemed, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusRedeemed, StatusCancelled:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// redemptionError explains why a voucher in status s cannot be redeemed.
func redemptionError(s Status) error {
	switch s {
	case StatusRedeemed:
		return ErrAlreadyRedeemed
	case StatusCancelled:
		return ErrVoucherCancelled
	default:
		return nil
	}
}
