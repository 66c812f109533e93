package sql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/random-coffee-bot/internal/coffee/domain"
	"github.com/klwxsrx/random-coffee-bot/pkg/event"
	pkgsql "github.com/klwxsrx/random-coffee-bot/pkg/sql"
)

type rosterRepo struct {
	db              pkgsql.TxClient
	eventDispatcher event.Dispatcher
}

func NewRosterRepo(db pkgsql.TxClient, eventDispatcher event.Dispatcher) domain.RosterRepo {
	return rosterRepo{db: db, eventDispatcher: eventDispatcher}
}

func (r rosterRepo) Get(ctx context.Context) (*domain.Roster, error) {
	query, args, err := sq.
		Select("member_id", "chat_id", "joined").
		From("cycle_member").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxCycleMember
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	roster := domain.NewRoster()
	for _, row := range rows {
		if row.Joined {
			roster.Joined[row.MemberID] = domain.ChatID(row.ChatID)
		} else {
			roster.Declined[row.MemberID] = domain.ChatID(row.ChatID)
		}
	}
	return roster, nil
}

// Store rewrites the full membership in one transaction: the roster is small
// and row-level diffing is not worth the bookkeeping.
func (r rosterRepo) Store(ctx context.Context, roster *domain.Roster) error {
	err := r.eventDispatcher.Dispatch(ctx, roster.Changes...)
	if err != nil {
		return fmt.Errorf("dispatch events: %w", err)
	}
	roster.Changes = nil

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("start tx: %w", err)
	}

	err = r.rewriteMembers(ctx, tx, roster)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (r rosterRepo) rewriteMembers(ctx context.Context, tx pkgsql.Client, roster *domain.Roster) error {
	_, err := tx.ExecContext(ctx, `delete from cycle_member`)
	if err != nil {
		return fmt.Errorf("clear members: %w", err)
	}

	if len(roster.Joined) == 0 && len(roster.Declined) == 0 {
		return nil
	}

	qb := sq.Insert("cycle_member").Columns("member_id", "chat_id", "joined")
	for member, chat := range roster.Joined {
		qb = qb.Values(member, int64(chat), true)
	}
	for member, chat := range roster.Declined {
		qb = qb.Values(member, int64(chat), false)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

type sqlxCycleMember struct {
	MemberID uuid.UUID `db:"member_id"`
	ChatID   int64     `db:"chat_id"`
	Joined   bool      `db:"joined"`
}
