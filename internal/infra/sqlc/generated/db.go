// Package sqlc follows the layout sqlc produces for sqlc.yaml but is maintained
// by hand: it adds shared scan helpers sqlc would not emit. Keep each method in
// step with its query under internal/infra/sqlc/queries.
package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

func New() *Queries {
	return &Queries{}
}

type Queries struct {
}
