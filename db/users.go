package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mww/gameday/model"
)

func (db *postgresDB) GetUser(ctx context.Context, username string) (*model.User, error) {
	if err := db.ensureUser(ctx, db.pool, username); err != nil {
		return nil, err
	}

	const query = `SELECT username, coins, created FROM users WHERE username=@username`

	var result model.User
	var created pgtype.Timestamptz
	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"username": username})
	if err := row.Scan(&result.Username, &result.Coins, &created); err != nil {
		return nil, fmt.Errorf("error scanning user %s: %w", username, err)
	}
	result.Created = created.Time

	return &result, nil
}

func (db *postgresDB) AdjustCoins(ctx context.Context, username string, delta int) (int, error) {
	if err := db.ensureUser(ctx, db.pool, username); err != nil {
		return 0, err
	}

	// The balance is clamped rather than allowed to go negative. A
	// reversal that would underflow loses the deficit; that is logged by
	// the caller.
	const query = `UPDATE users SET coins=GREATEST(0, coins + @delta)
					WHERE username=@username
					RETURNING coins`

	args := pgx.NamedArgs{
		"username": username,
		"delta":    delta,
	}
	var coins int
	if err := db.pool.QueryRow(ctx, query, args).Scan(&coins); err != nil {
		return 0, fmt.Errorf("error adjusting coins for %s: %w", username, err)
	}
	return coins, nil
}

func (db *postgresDB) Leaderboard(ctx context.Context, limit int) ([]model.User, error) {
	const query = `SELECT username, coins, created FROM users
					ORDER BY coins DESC, username
					LIMIT @limit`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("error querying leaderboard: %w", err)
	}

	results := make([]model.User, 0, limit)
	for rows.Next() {
		var u model.User
		var created pgtype.Timestamptz
		if err := rows.Scan(&u.Username, &u.Coins, &created); err != nil {
			return nil, fmt.Errorf("error scanning leaderboard row: %w", err)
		}
		u.Created = created.Time
		results = append(results, u)
	}

	return results, nil
}

// pgxExecer lets ensureUser run against either the pool or a transaction.
type pgxExecer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// ensureUser creates the user row with the default balance if it doesn't
// exist yet. Users are created lazily on first balance access.
func (db *postgresDB) ensureUser(ctx context.Context, e pgxExecer, username string) error {
	const query = `INSERT INTO users (username, coins, created)
					VALUES (@username, @coins, @created)
					ON CONFLICT (username) DO NOTHING`

	args := pgx.NamedArgs{
		"username": username,
		"coins":    model.DefaultCoins,
		"created":  db.now(),
	}
	if _, err := e.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error ensuring user %s: %w", username, err)
	}
	return nil
}
