package admin_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/random-coffee-bot/internal/coffee/app/admin"
	transportmock "github.com/klwxsrx/random-coffee-bot/internal/coffee/app/transport/mock"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/domain"
	"github.com/klwxsrx/random-coffee-bot/pkg/log"
)

type profileRepoStub struct {
	profiles []domain.Profile
	cleared  bool
}

func (s *profileRepoStub) FindByUserID(context.Context, domain.UserID) (*domain.Profile, error) {
	return nil, domain.ErrProfileNotFound
}

func (s *profileRepoStub) FindByMemberID(context.Context, uuid.UUID) (*domain.Profile, error) {
	return nil, domain.ErrProfileNotFound
}

func (s *profileRepoStub) FindAll(context.Context) ([]domain.Profile, error) {
	return s.profiles, nil
}

func (s *profileRepoStub) Store(context.Context, *domain.Profile) error { return nil }

func (s *profileRepoStub) Clear(context.Context) error {
	s.cleared = true
	s.profiles = nil
	return nil
}

type rosterRepoStub struct {
	roster *domain.Roster
}

func (s *rosterRepoStub) Get(context.Context) (*domain.Roster, error) {
	return s.roster, nil
}

func (s *rosterRepoStub) Store(context.Context, *domain.Roster) error { return nil }

func TestService_IsAdmin_Returns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messenger := transportmock.NewMessenger(ctrl)
	srv := admin.NewService(
		[]domain.UserID{1, 2},
		admin.NewNotifier(nil, messenger, log.NewStub()),
		&profileRepoStub{},
		&rosterRepoStub{roster: domain.NewRoster()},
		nil,
		messenger,
		log.NewStub(),
	)

	assert.True(t, srv.IsAdmin(1))
	assert.True(t, srv.IsAdmin(2))
	assert.False(t, srv.IsAdmin(3))
}

func TestService_ReportJoinedCount_NotifiesEveryAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roster := domain.NewRoster()
	roster.Join(uuid.New(), 10)
	roster.Join(uuid.New(), 11)
	roster.Changes = nil

	adminChats := []domain.ChatID{1, 2}
	messenger := transportmock.NewMessenger(ctrl)
	for _, chat := range adminChats {
		messenger.EXPECT().
			SendText(gomock.Any(), chat, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.ChatID, text string) error {
				assert.Contains(t, text, "2")
				return nil
			})
	}

	srv := admin.NewService(
		[]domain.UserID{1, 2},
		admin.NewNotifier(adminChats, messenger, log.NewStub()),
		&profileRepoStub{},
		&rosterRepoStub{roster: roster},
		nil,
		messenger,
		log.NewStub(),
	)

	require.NoError(t, srv.ReportJoinedCount(context.Background()))
}

func TestService_ShowAllUsers_Returns(t *testing.T) {
	tests := []struct {
		name     string
		profiles []domain.Profile
		expect   func(t *testing.T, text string)
	}{
		{
			name:     "empty_store_reports_no_users",
			profiles: nil,
			expect: func(t *testing.T, text string) {
				assert.Equal(t, "Нет данных пользователей.", text)
			},
		},
		{
			name: "cards_listed_for_every_profile",
			profiles: []domain.Profile{
				{MemberID: uuid.New(), UserID: 1, Email: "ivan@company.com", Name: "Ivan", Position: "Engineer"},
				{MemberID: uuid.New(), UserID: 2, Email: "olga@company.com", Name: "Olga", Position: "Designer"},
			},
			expect: func(t *testing.T, text string) {
				assert.Contains(t, text, "Ivan")
				assert.Contains(t, text, "olga@company.com")
				assert.Contains(t, text, "Designer")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			chat := domain.ChatID(42)
			messenger := transportmock.NewMessenger(ctrl)
			messenger.EXPECT().
				SendText(gomock.Any(), chat, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ domain.ChatID, text string) error {
					tc.expect(t, text)
					return nil
				})

			srv := admin.NewService(
				[]domain.UserID{1},
				admin.NewNotifier(nil, messenger, log.NewStub()),
				&profileRepoStub{profiles: tc.profiles},
				&rosterRepoStub{roster: domain.NewRoster()},
				nil,
				messenger,
				log.NewStub(),
			)

			require.NoError(t, srv.ShowAllUsers(context.Background(), chat))
		})
	}
}

func TestService_ClearDatabase_WipesProfilesOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roster := domain.NewRoster()
	roster.Join(uuid.New(), 10)
	roster.Changes = nil

	chat := domain.ChatID(42)
	profiles := &profileRepoStub{profiles: []domain.Profile{{MemberID: uuid.New()}}}
	messenger := transportmock.NewMessenger(ctrl)
	messenger.EXPECT().SendText(gomock.Any(), chat, gomock.Any()).Return(nil)

	srv := admin.NewService(
		[]domain.UserID{1},
		admin.NewNotifier(nil, messenger, log.NewStub()),
		profiles,
		&rosterRepoStub{roster: roster},
		nil,
		messenger,
		log.NewStub(),
	)

	require.NoError(t, srv.ClearDatabase(context.Background(), chat))
	assert.True(t, profiles.cleared)
	assert.Equal(t, 1, roster.JoinedCount())
}
