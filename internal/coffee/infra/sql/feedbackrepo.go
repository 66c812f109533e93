package sql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/klwxsrx/random-coffee-bot/internal/coffee/domain"
	pkgsql "github.com/klwxsrx/random-coffee-bot/pkg/sql"
)

type feedbackRepo struct {
	db pkgsql.Client
}

func NewFeedbackRepo(db pkgsql.Client) domain.FeedbackRepo {
	return feedbackRepo{db: db}
}

func (r feedbackRepo) Store(ctx context.Context, user domain.UserID, rating domain.RatingTag) error {
	query, args, err := sq.
		Insert("feedback").
		Columns("user_id", "rating").
		Values(int64(user), string(rating)).
		Suffix(`on conflict (user_id) do update set
			rating = excluded.rating,
			updated_at = now()
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}
