package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mww/gameday/model"
)

const gameColumns = `id, week, team1, team2, team1_score, team2_score,
				quarter, is_live, is_final, game_time, stream_url`

func (db *postgresDB) ListGames(ctx context.Context, week int) ([]model.Game, error) {
	const query = `SELECT ` + gameColumns + `
					FROM games
					WHERE (@week <= 0 OR week=@week)
					ORDER BY week, game_time, id`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"week": week})
	if err != nil {
		return nil, fmt.Errorf("error listing games: %w", err)
	}

	results := make([]model.Game, 0, 16)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *g)
	}

	return results, nil
}

func (db *postgresDB) GetGame(ctx context.Context, id int32) (*model.Game, error) {
	const query = `SELECT ` + gameColumns + ` FROM games WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	g, err := scanGame(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("error scanning game %d: %w", id, err)
	}
	return g, nil
}

func (db *postgresDB) AddGame(ctx context.Context, g *model.Game) error {
	const query = `INSERT INTO games (
		week,
		team1,
		team2,
		team1_score,
		team2_score,
		quarter,
		is_live,
		is_final,
		game_time,
		stream_url
	) VALUES (
		@week,
		@team1,
		@team2,
		@team1Score,
		@team2Score,
		@quarter,
		@isLive,
		@isFinal,
		@gameTime,
		@streamURL
	) RETURNING id`

	args := namedArgsForGame(g)
	row := db.pool.QueryRow(ctx, query, args)
	if err := row.Scan(&g.ID); err != nil {
		return fmt.Errorf("error inserting game: %w", err)
	}
	return nil
}

func (db *postgresDB) UpdateGame(ctx context.Context, g *model.Game) error {
	const query = `UPDATE games
		SET week=@week,
			team1=@team1,
			team2=@team2,
			team1_score=@team1Score,
			team2_score=@team2Score,
			quarter=@quarter,
			is_live=@isLive,
			is_final=@isFinal,
			game_time=@gameTime,
			stream_url=@streamURL,
			updated=@updated
		WHERE id=@id`

	args := namedArgsForGame(g)
	args["id"] = g.ID
	args["updated"] = db.now()
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error updating game %d: %w", g.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGameNotFound
	}
	return nil
}

func (db *postgresDB) DeleteGame(ctx context.Context, id int32) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM games WHERE id=@id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting game %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGameNotFound
	}
	return nil
}

func scanGame(row pgx.Row) (*model.Game, error) {
	var result model.Game
	var s1, s2 sql.NullInt32
	var gameTime pgtype.Timestamptz
	var streamURL sql.NullString
	err := row.Scan(
		&result.ID,
		&result.Week,
		&result.Team1,
		&result.Team2,
		&s1,
		&s2,
		&result.Quarter,
		&result.IsLive,
		&result.IsFinal,
		&gameTime,
		&streamURL)

	if err != nil {
		return nil, err
	}

	if s1.Valid {
		v := int(s1.Int32)
		result.Team1Score = &v
	}
	if s2.Valid {
		v := int(s2.Int32)
		result.Team2Score = &v
	}
	result.GameTime = gameTime.Time
	result.StreamURL = valueOrEmpty(streamURL)

	return &result, nil
}

func namedArgsForGame(g *model.Game) pgx.NamedArgs {
	return pgx.NamedArgs{
		"week":       g.Week,
		"team1":      g.Team1,
		"team2":      g.Team2,
		"team1Score": nullableInt(g.Team1Score),
		"team2Score": nullableInt(g.Team2Score),
		"quarter":    g.Quarter,
		"isLive":     g.IsLive,
		"isFinal":    g.IsFinal,
		"gameTime": pgtype.Timestamptz{
			Time:  g.GameTime,
			Valid: !g.GameTime.IsZero(),
		},
		"streamURL": sql.NullString{
			String: g.StreamURL,
			Valid:  g.StreamURL != "",
		},
	}
}

func nullableInt(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}

func (db *postgresDB) now() pgtype.Timestamptz {
	return pgtype.Timestamptz{
		Time:             db.clock.Now().UTC(),
		InfinityModifier: pgtype.Finite,
		Valid:            true,
	}
}
