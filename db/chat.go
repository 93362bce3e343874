package db

import (
	"context"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mww/gameday/model"
)

func (db *postgresDB) AddChatMessage(ctx context.Context, m *model.ChatMessage) error {
	const query = `INSERT INTO chat_messages (username, message, sent)
					VALUES (@username, @message, @sent)
					RETURNING id`

	m.Sent = db.clock.Now().UTC()
	args := pgx.NamedArgs{
		"username": m.Username,
		"message":  m.Message,
		"sent": pgtype.Timestamptz{
			Time:             m.Sent,
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	if err := db.pool.QueryRow(ctx, query, args).Scan(&m.ID); err != nil {
		return fmt.Errorf("error inserting chat message: %w", err)
	}
	return nil
}

func (db *postgresDB) ListChatMessages(ctx context.Context, limit int) ([]model.ChatMessage, error) {
	const query = `SELECT id, username, message, sent FROM chat_messages
					ORDER BY sent DESC, id DESC
					LIMIT @limit`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("error listing chat messages: %w", err)
	}

	results := make([]model.ChatMessage, 0, limit)
	for rows.Next() {
		var m model.ChatMessage
		var sent pgtype.Timestamptz
		if err := rows.Scan(&m.ID, &m.Username, &m.Message, &sent); err != nil {
			return nil, fmt.Errorf("error scanning chat message: %w", err)
		}
		m.Sent = sent.Time
		results = append(results, m)
	}

	// The query walks the index newest-first; callers want display order.
	slices.Reverse(results)
	return results, nil
}
