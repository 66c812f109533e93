package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/random-coffee-bot/internal/coffee/domain"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/infra/file"
	"github.com/klwxsrx/random-coffee-bot/pkg/event"
	"github.com/klwxsrx/random-coffee-bot/pkg/log"
)

type dispatcherStub struct {
	events []event.Event
}

func (d *dispatcherStub) Dispatch(_ context.Context, events ...event.Event) error {
	d.events = append(d.events, events...)
	return nil
}

func TestProfileRepo_StoredProfileSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := file.NewProfileRepo(dir, log.NewStub())
	require.NoError(t, err)

	profile := &domain.Profile{
		MemberID: uuid.New(),
		UserID:   100,
		Email:    "ivan@company.com",
		Name:     "Ivan Petrov",
		Position: "Engineer",
	}
	require.NoError(t, repo.Store(ctx, profile))

	reopened, err := file.NewProfileRepo(dir, log.NewStub())
	require.NoError(t, err)

	found, err := reopened.FindByUserID(ctx, profile.UserID)
	require.NoError(t, err)
	assert.Equal(t, profile, found)

	found, err = reopened.FindByMemberID(ctx, profile.MemberID)
	require.NoError(t, err)
	assert.Equal(t, profile, found)
}

func TestProfileRepo_Clear_RemovesEverything(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := file.NewProfileRepo(dir, log.NewStub())
	require.NoError(t, err)

	require.NoError(t, repo.Store(ctx, &domain.Profile{MemberID: uuid.New(), UserID: 1}))
	require.NoError(t, repo.Store(ctx, &domain.Profile{MemberID: uuid.New(), UserID: 2}))
	require.NoError(t, repo.Clear(ctx))

	profiles, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, profiles)

	reopened, err := file.NewProfileRepo(dir, log.NewStub())
	require.NoError(t, err)
	profiles, err = reopened.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestProfileRepo_FindMissingProfileFails(t *testing.T) {
	repo, err := file.NewProfileRepo(t.TempDir(), log.NewStub())
	require.NoError(t, err)

	_, err = repo.FindByUserID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestProfileRepo_CorruptedFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "user_data.json"), []byte("{broken"), 0o644))

	repo, err := file.NewProfileRepo(dir, log.NewStub())
	require.NoError(t, err)

	profiles, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestRosterRepo_StoreDispatchesChangesAndPersists(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	dispatcher := &dispatcherStub{}

	repo, err := file.NewRosterRepo(dir, dispatcher, log.NewStub())
	require.NoError(t, err)

	joined := uuid.New()
	declined := uuid.New()
	roster := domain.NewRoster()
	roster.Join(joined, 1)
	roster.Join(declined, 2)
	roster.Decline(declined, 2)

	require.NoError(t, repo.Store(ctx, roster))
	assert.Len(t, dispatcher.events, 3)
	assert.Empty(t, roster.Changes)

	reopened, err := file.NewRosterRepo(dir, dispatcher, log.NewStub())
	require.NoError(t, err)

	restored, err := reopened.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ChatID(1), restored.Joined[joined])
	assert.Equal(t, domain.ChatID(2), restored.Declined[declined])
	assert.Equal(t, 1, restored.JoinedCount())
}

func TestFeedbackRepo_RepeatedRatingOverwrites(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := file.NewFeedbackRepo(dir, log.NewStub())
	require.NoError(t, err)

	require.NoError(t, repo.Store(ctx, 100, domain.RatingOK))
	require.NoError(t, repo.Store(ctx, 100, domain.RatingGreat))

	content, err := os.ReadFile(filepath.Join(dir, "feedback_data.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"100": "feedback_3"}`, string(content))
}
