package repo

import (
	"context"
	"errors"

	"choicefetch/src/core/domain"
	"choicefetch/src/core/ports"
)

var errNullID = errors.New("identifier is NULL")

// Execute acquires a connection from pool, runs query and maps each
// (identifier, description) row to a Choice. A NULL description maps to "";
// a NULL identifier fails the whole call with a row mapping error and no
// partial result. An empty result set yields an empty, non-nil slice.
func Execute(ctx context.Context, pool ports.Pool, query domain.Query) ([]domain.Choice, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, domain.NewConnectionError(err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query.String())
	if err != nil {
		return nil, domain.NewQueryError(err)
	}
	defer rows.Close()

	choices := []domain.Choice{}
	for n := 0; rows.Next(); n++ {
		var id, description *string
		if err := rows.Scan(&id, &description); err != nil {
			return nil, domain.NewRowMappingError(n, "", err)
		}
		if id == nil {
			return nil, domain.NewRowMappingError(n, "id", errNullID)
		}

		choice := domain.Choice{ID: *id}
		if description != nil {
			choice.Description = *description
		}
		choices = append(choices, choice)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewQueryError(err)
	}

	return choices, nil
}
