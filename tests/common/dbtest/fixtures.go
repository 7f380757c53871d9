//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// passwordHash is bcrypt("password123").
const passwordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

// Seeded establishments, same ids as migrations/002_seed_establishments.sql.
var (
	PostoID        = uuid.MustParse("0b8f3c4e-6f0e-4c1b-9d7a-1a2b3c4d5e01")
	ConvenienciaID = uuid.MustParse("0b8f3c4e-6f0e-4c1b-9d7a-1a2b3c4d5e02")
	ChurrascariaID = uuid.MustParse("0b8f3c4e-6f0e-4c1b-9d7a-1a2b3c4d5e03")
)

// CreateTestUser inserts an active user whose password is "password123".
func CreateTestUser(t *testing.T, db DBLike, email, role string, establishmentID *uuid.UUID) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, name, role, establishment_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, true) ON CONFLICT (email) DO NOTHING`,
		userID, email, passwordHash, strings.Split(email, "@")[0], role, establishmentID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestTier(t *testing.T, db DBLike, establishmentID uuid.UUID, name, minVolume, value string) uuid.UUID {
	t.Helper()

	tierID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO voucher_tiers (id, establishment_id, name, min_volume, value, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4::numeric, $5::numeric, true, now(), now())`,
		tierID, establishmentID, name, minVolume, value)
	require.NoError(t, err)

	return tierID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO establishments (id, name) VALUES
		    ($1, 'Posto'),
		    ($2, 'Conveniência'),
		    ($3, 'Churrascaria')
		ON CONFLICT (id) DO NOTHING;
	`, PostoID, ConvenienciaID, ChurrascariaID)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
