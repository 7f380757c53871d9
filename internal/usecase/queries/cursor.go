package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"voucher-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxListLimit    = 200
	CursorVersionV1 = "v1"
)

var ErrInvalidCursor = errs.Kind("invalid cursor", errs.ErrValidation)

// Cursor marks the last row of the previous page. Lists are ordered by
// created_at desc, id desc, so the next page starts strictly after it.
type Cursor struct {
	After string `json:"after,omitempty"`
}

// Keyset is the decoded form of a cursor.
type Keyset struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// EncodeAfterCursor uses microsecond precision to match PostgreSQL timestamps.
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	payload := CursorVersionV1 + ":" + strconv.FormatInt(t.UnixMicro(), 10) + ":" + id.String()
	return base64.RawURLEncoding.EncodeToString([]byte(payload))
}

func DecodeAfterCursor(cursor string) (Keyset, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return Keyset{}, errs.Mark(errs.Wrap(err, "decode cursor"), ErrInvalidCursor)
	}

	parts := strings.SplitN(string(raw), ":", 3)
	if len(parts) != 3 || parts[0] != CursorVersionV1 {
		return Keyset{}, ErrInvalidCursor
	}

	micros, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Keyset{}, errs.Mark(errs.Wrap(err, "cursor timestamp"), ErrInvalidCursor)
	}
	id, err := uuid.Parse(parts[2])
	if err != nil {
		return Keyset{}, errs.Mark(errs.Wrap(err, "cursor id"), ErrInvalidCursor)
	}

	return Keyset{CreatedAt: time.UnixMicro(micros).UTC(), ID: id}, nil
}

// Page is one slice of a keyset-paginated list.
type Page[T any] struct {
	Items []T
	Next  *Cursor
}

// ValidateLimit clamps limit into (0, MaxListLimit], falling back to def.
func ValidateLimit(limit, def int) int {
	if limit <= 0 {
		limit = def
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// paginate fetches limit+1 rows to learn whether another page exists.
func paginate[T any](cursor *Cursor, limit int, key func(T) Keyset, fetch func(after *Keyset, n int32) ([]T, error)) (*Page[T], error) {
	var after *Keyset
	if cursor != nil && cursor.After != "" {
		ks, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, err
		}
		after = &ks
	}

	rows, err := fetch(after, int32(limit+1))
	if err != nil {
		return nil, err
	}

	page := &Page[T]{Items: rows}
	if len(rows) > limit {
		last := key(rows[limit-1])
		page.Next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		page.Items = rows[:limit]
	}
	return page, nil
}
