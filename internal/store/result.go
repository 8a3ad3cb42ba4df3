package store

import (
	"database/sql"
	"errors"
	"time"
)

// GameResult is one finished game.
type GameResult struct {
	ID       string
	Score    int
	Popped   int
	Tickets  int
	Duration float64
	PlayedAt time.Time
}

// ResultRepository provides operations on game results.
type ResultRepository struct {
	db *sql.DB
}

// Results returns the result repository for this store.
func (s *Store) Results() *ResultRepository {
	return &ResultRepository{db: s.db}
}

// Create inserts a finished game.
func (r *ResultRepository) Create(res *GameResult) error {
	if res.PlayedAt.IsZero() {
		res.PlayedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO results (id, score, popped, tickets, duration, played_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		res.ID, res.Score, res.Popped, res.Tickets, res.Duration, res.PlayedAt,
	)
	return err
}

// GetByID retrieves a result by its ID.
func (r *ResultRepository) GetByID(id string) (*GameResult, error) {
	res := &GameResult{}

	err := r.db.QueryRow(
		`SELECT id, score, popped, tickets, duration, played_at
		 FROM results WHERE id = ?`,
		id,
	).Scan(&res.ID, &res.Score, &res.Popped, &res.Tickets, &res.Duration, &res.PlayedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

// List retrieves the most recent results, newest first. A limit of zero or
// less means no limit.
func (r *ResultRepository) List(limit int) ([]*GameResult, error) {
	query := `SELECT id, score, popped, tickets, duration, played_at
		 FROM results ORDER BY played_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*GameResult
	for rows.Next() {
		res := &GameResult{}
		if err := rows.Scan(&res.ID, &res.Score, &res.Popped, &res.Tickets, &res.Duration, &res.PlayedAt); err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// Best returns the highest score ever recorded, zero when no games have
// been played.
func (r *ResultRepository) Best() (int, error) {
	var best sql.NullInt64
	err := r.db.QueryRow(`SELECT MAX(score) FROM results`).Scan(&best)
	if err != nil {
		return 0, err
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}
