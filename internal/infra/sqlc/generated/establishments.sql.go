package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const establishmentExists = `-- name: EstablishmentExists :one
SELECT EXISTS (SELECT 1 FROM establishments WHERE id = $1)
`

func (q *Queries) EstablishmentExists(ctx context.Context, db DBTX, id uuid.UUID) (bool, error) {
	row := db.QueryRow(ctx, establishmentExists, id)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const listEstablishments = `-- name: ListEstablishments :many
SELECT id, name, created_at
FROM establishments
ORDER BY name
`

func (q *Queries) ListEstablishments(ctx context.Context, db DBTX) ([]Establishments, error) {
	rows, err := db.Query(ctx, listEstablishments)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Establishments
	for rows.Next() {
		var i Establishments
		if err := rows.Scan(&i.ID, &i.Name, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
