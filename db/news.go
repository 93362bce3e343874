package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mww/gameday/model"
)

func (db *postgresDB) ListArticles(ctx context.Context) ([]model.Article, error) {
	const query = `SELECT id, title, body, author, published FROM news
					ORDER BY published DESC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing articles: %w", err)
	}

	results := make([]model.Article, 0, 8)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *a)
	}

	return results, nil
}

func (db *postgresDB) GetArticle(ctx context.Context, id int32) (*model.Article, error) {
	const query = `SELECT id, title, body, author, published FROM news WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	a, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("error scanning article %d: %w", id, err)
	}
	return a, nil
}

func (db *postgresDB) AddArticle(ctx context.Context, a *model.Article) error {
	const query = `INSERT INTO news (title, body, author, published)
					VALUES (@title, @body, @author, @published)
					RETURNING id`

	a.Published = db.clock.Now().UTC()
	args := pgx.NamedArgs{
		"title":  a.Title,
		"body":   a.Body,
		"author": a.Author,
		"published": pgtype.Timestamptz{
			Time:             a.Published,
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	if err := db.pool.QueryRow(ctx, query, args).Scan(&a.ID); err != nil {
		return fmt.Errorf("error inserting article: %w", err)
	}
	return nil
}

func (db *postgresDB) DeleteArticle(ctx context.Context, id int32) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM news WHERE id=@id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting article %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrArticleNotFound
	}
	return nil
}

func scanArticle(row pgx.Row) (*model.Article, error) {
	var result model.Article
	var published pgtype.Timestamptz
	err := row.Scan(&result.ID, &result.Title, &result.Body, &result.Author, &published)
	if err != nil {
		return nil, err
	}
	result.Published = published.Time
	return &result, nil
}
