package controller

import (
	"context"
	"fmt"

	"github.com/mww/gameday/model"
)

func (c *controller) ListArticles(ctx context.Context) ([]model.Article, error) {
	return c.db.ListArticles(ctx)
}

func (c *controller) GetArticle(ctx context.Context, id int32) (*model.Article, error) {
	return c.db.GetArticle(ctx, id)
}

func (c *controller) AddArticle(ctx context.Context, a *model.Article) error {
	if a.Title == "" || a.Body == "" {
		return fmt.Errorf("articles need a title and a body")
	}
	return c.db.AddArticle(ctx, a)
}

func (c *controller) DeleteArticle(ctx context.Context, id int32) error {
	return c.db.DeleteArticle(ctx, id)
}
