package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mww/gameday/model"
)

const betColumns = `id, username, game_id, amount, picked_team, multiplier, won, status, placed`

func (db *postgresDB) AddBet(ctx context.Context, b *model.Bet) error {
	const debit = `UPDATE users SET coins=coins - @amount
					WHERE username=@username AND coins >= @amount`

	const insert = `INSERT INTO bets (
		username,
		game_id,
		amount,
		picked_team,
		multiplier,
		won,
		status,
		placed
	) VALUES (
		@username,
		@gameID,
		@amount,
		@pickedTeam,
		@multiplier,
		NULL,
		@status,
		@placed
	) RETURNING id`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := db.ensureUser(ctx, tx, b.Username); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, debit, pgx.NamedArgs{
		"username": b.Username,
		"amount":   b.Amount,
	})
	if err != nil {
		return fmt.Errorf("error debiting stake for %s: %w", b.Username, err)
	}
	if tag.RowsAffected() == 0 {
		// The row exists (ensureUser), so the only way the conditional
		// update misses is an uncovered stake.
		return ErrInsufficientFunds
	}

	b.Placed = db.clock.Now().UTC()
	b.Status = model.BetStatusPending
	b.Won = nil
	args := pgx.NamedArgs{
		"username":   b.Username,
		"gameID":     b.GameID,
		"amount":     b.Amount,
		"pickedTeam": b.PickedTeam,
		"multiplier": b.Multiplier,
		"status":     string(b.Status),
		"placed": pgtype.Timestamptz{
			Time:             b.Placed,
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	if err := tx.QueryRow(ctx, insert, args).Scan(&b.ID); err != nil {
		return fmt.Errorf("error inserting bet: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing bet transaction: %w", err)
	}
	return nil
}

func (db *postgresDB) GetBetsByUser(ctx context.Context, username string) ([]model.Bet, error) {
	const query = `SELECT ` + betColumns + ` FROM bets
					WHERE username=@username
					ORDER BY placed DESC`

	return db.queryBets(ctx, query, pgx.NamedArgs{"username": username})
}

func (db *postgresDB) PendingBets(ctx context.Context, gameID int32) ([]model.Bet, error) {
	const query = `SELECT ` + betColumns + ` FROM bets
					WHERE game_id=@gameID AND status=@status
					ORDER BY id`

	args := pgx.NamedArgs{
		"gameID": gameID,
		"status": string(model.BetStatusPending),
	}
	return db.queryBets(ctx, query, args)
}

func (db *postgresDB) SettledBets(ctx context.Context, gameID int32) ([]model.Bet, error) {
	const query = `SELECT ` + betColumns + ` FROM bets
					WHERE game_id=@gameID AND status != @status
					ORDER BY id`

	args := pgx.NamedArgs{
		"gameID": gameID,
		"status": string(model.BetStatusPending),
	}
	return db.queryBets(ctx, query, args)
}

func (db *postgresDB) ApplySettlements(ctx context.Context, settlements []model.BetSettlement) error {
	const updateBet = `UPDATE bets SET won=@won, status=@status WHERE id=@id`

	const adjust = `UPDATE users SET coins=GREATEST(0, coins + @delta)
					WHERE username=@username`

	if len(settlements) == 0 {
		return nil
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, s := range settlements {
		args := pgx.NamedArgs{
			"id":     s.BetID,
			"won":    nullableBool(s.Won),
			"status": string(s.Status),
		}
		if _, err := tx.Exec(ctx, updateBet, args); err != nil {
			return fmt.Errorf("error updating bet %d: %w", s.BetID, err)
		}

		if s.CoinsDelta == 0 {
			continue
		}
		args = pgx.NamedArgs{
			"username": s.Username,
			"delta":    s.CoinsDelta,
		}
		if _, err := tx.Exec(ctx, adjust, args); err != nil {
			return fmt.Errorf("error adjusting balance for %s: %w", s.Username, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing settlement transaction: %w", err)
	}
	return nil
}

func (db *postgresDB) queryBets(ctx context.Context, query string, args pgx.NamedArgs) ([]model.Bet, error) {
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying bets: %w", err)
	}

	results := make([]model.Bet, 0, 8)
	for rows.Next() {
		b, err := scanBet(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *b)
	}

	return results, nil
}

func scanBet(row pgx.Row) (*model.Bet, error) {
	var result model.Bet
	var won sql.NullBool
	var status string
	var placed pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.Username,
		&result.GameID,
		&result.Amount,
		&result.PickedTeam,
		&result.Multiplier,
		&won,
		&status,
		&placed)

	if err != nil {
		return nil, fmt.Errorf("error scanning bet: %w", err)
	}

	if won.Valid {
		v := won.Bool
		result.Won = &v
	}
	result.Status = model.BetStatus(status)
	result.Placed = placed.Time

	return &result, nil
}

func nullableBool(v *bool) sql.NullBool {
	if v == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *v, Valid: true}
}
