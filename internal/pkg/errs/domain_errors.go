package errs

// Error kinds shared by every layer. Domain errors are marked with one of these
// so the transport layer can map them without knowing each concrete error.
var (
	ErrValidation      = New("validation error")
	ErrIneligible      = New("no eligible tier")
	ErrNotFound        = New("not found")
	ErrAlreadyRedeemed = New("voucher already redeemed")
	ErrCancelled       = New("voucher cancelled")
	ErrInvalidState    = New("invalid state transition")
	ErrCodeGeneration  = New("voucher code generation exhausted")
	ErrForbidden       = New("forbidden")
	ErrUnauthorized    = New("unauthorized")

	ErrDatabaseOperationFailed = New("database operation failed")
)

// Kind returns a new sentinel error marked with kind.
func Kind(msg string, kind error) error {
	return Mark(New(msg), kind)
}
