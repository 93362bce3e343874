package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mww/gameday/model"
)

func (db *postgresDB) ListStandings(ctx context.Context) ([]model.Standing, error) {
	const query = `SELECT team, division, wins, losses, point_diff, manual_order
					FROM standings
					ORDER BY division, team`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing standings: %w", err)
	}

	results := make([]model.Standing, 0, 8)
	for rows.Next() {
		var s model.Standing
		var manualOrder sql.NullInt32
		err := rows.Scan(&s.Team, &s.Division, &s.Wins, &s.Losses, &s.PointDiff, &manualOrder)
		if err != nil {
			return nil, fmt.Errorf("error scanning standing: %w", err)
		}
		if manualOrder.Valid {
			v := int(manualOrder.Int32)
			s.ManualOrder = &v
		}
		results = append(results, s)
	}

	return results, nil
}

func (db *postgresDB) SaveStanding(ctx context.Context, s *model.Standing) error {
	const query = `INSERT INTO standings (
		team,
		division,
		wins,
		losses,
		point_diff,
		manual_order,
		updated
	) VALUES (
		@team,
		@division,
		@wins,
		@losses,
		@pointDiff,
		@manualOrder,
		@updated
	) ON CONFLICT (team) DO UPDATE
		SET division=@division,
			wins=@wins,
			losses=@losses,
			point_diff=@pointDiff,
			manual_order=@manualOrder,
			updated=@updated`

	args := pgx.NamedArgs{
		"team":        s.Team,
		"division":    s.Division,
		"wins":        s.Wins,
		"losses":      s.Losses,
		"pointDiff":   s.PointDiff,
		"manualOrder": nullableInt(s.ManualOrder),
		"updated":     db.now(),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving standing for %s: %w", s.Team, err)
	}
	return nil
}

func (db *postgresDB) DeleteStanding(ctx context.Context, team string) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM standings WHERE team=@team`, pgx.NamedArgs{"team": team})
	if err != nil {
		return fmt.Errorf("error deleting standing for %s: %w", team, err)
	}
	return nil
}
