package repository

import (
	"context"
	"database/sql"
	"time"
)

// Lookup represents a lookups row: one successful search.
type Lookup struct {
	ID           string
	Query        string
	CEP          string
	Street       string
	Neighborhood string
	City         string
	State        string
	LookedUpAt   time.Time
}

// RecentQuery is a distinct query with the time it was last looked up.
type RecentQuery struct {
	Query      string
	LookedUpAt time.Time
}

// LookupRepo handles the lookup history.
type LookupRepo struct {
	db *sql.DB
}

func NewLookupRepo(db *sql.DB) *LookupRepo { return &LookupRepo{db: db} }

func (r *LookupRepo) Insert(ctx context.Context, l Lookup) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO lookups(id, query, cep, logradouro, bairro, localidade, uf, looked_up_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`, l.ID, l.Query, l.CEP, l.Street, l.Neighborhood, l.City, l.State, l.LookedUpAt.UnixNano())
	return err
}

// Recent returns distinct queries, most recently looked up first.
func (r *LookupRepo) Recent(ctx context.Context, limit int) ([]RecentQuery, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT query, MAX(looked_up_at) AS last
	FROM lookups
	GROUP BY query
	ORDER BY last DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RecentQuery
	for rows.Next() {
		var (
			q    RecentQuery
			nano int64
		)
		if err := rows.Scan(&q.Query, &nano); err != nil {
			return nil, err
		}
		q.LookedUpAt = time.Unix(0, nano).UTC()
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *LookupRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM lookups`).Scan(&n)
	return n, err
}
