package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/random-coffee-bot/internal/coffee/domain"
	pkgsql "github.com/klwxsrx/random-coffee-bot/pkg/sql"
)

type profileRepo struct {
	db pkgsql.Client
}

func NewProfileRepo(db pkgsql.Client) domain.ProfileRepo {
	return profileRepo{db: db}
}

func (r profileRepo) FindByUserID(ctx context.Context, id domain.UserID) (*domain.Profile, error) {
	return r.findOne(ctx, sq.Eq{"user_id": int64(id)})
}

func (r profileRepo) FindByMemberID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return r.findOne(ctx, sq.Eq{"member_id": id})
}

func (r profileRepo) FindAll(ctx context.Context) ([]domain.Profile, error) {
	query, args, err := r.selectQuery().OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxProfile
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.Profile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, *row.toDomain())
	}
	return profiles, nil
}

func (r profileRepo) Store(ctx context.Context, profile *domain.Profile) error {
	query, args, err := sq.
		Insert("profile").
		Columns("member_id", "user_id", "email", "name", "position").
		Values(profile.MemberID, int64(profile.UserID), profile.Email, profile.Name, profile.Position).
		Suffix(`on conflict (member_id) do update set
			user_id = excluded.user_id,
			email = excluded.email,
			name = excluded.name,
			position = excluded.position,
			updated_at = now()
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r profileRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `delete from profile`)
	return err
}

func (r profileRepo) findOne(ctx context.Context, where sq.Eq) (*domain.Profile, error) {
	query, args, err := r.selectQuery().Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxProfile
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return row.toDomain(), nil
}

func (r profileRepo) selectQuery() sq.SelectBuilder {
	return sq.
		Select("member_id", "user_id", "email", "name", "position").
		From("profile")
}

type sqlxProfile struct {
	MemberID uuid.UUID `db:"member_id"`
	UserID   int64     `db:"user_id"`
	Email    string    `db:"email"`
	Name     string    `db:"name"`
	Position string    `db:"position"`
}

func (p sqlxProfile) toDomain() *domain.Profile {
	return &domain.Profile{
		MemberID: p.MemberID,
		UserID:   domain.UserID(p.UserID),
		Email:    p.Email,
		Name:     p.Name,
		Position: p.Position,
	}
}
