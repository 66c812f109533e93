package matching_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/random-coffee-bot/internal/coffee/app/matching"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/app/transport"
	transportmock "github.com/klwxsrx/random-coffee-bot/internal/coffee/app/transport/mock"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/domain"
	"github.com/klwxsrx/random-coffee-bot/pkg/log"
)

func noShuffle(int, func(i, j int)) {}

type profileRepoStub struct {
	profiles map[uuid.UUID]domain.Profile
}

func (s *profileRepoStub) FindByUserID(context.Context, domain.UserID) (*domain.Profile, error) {
	return nil, domain.ErrProfileNotFound
}

func (s *profileRepoStub) FindByMemberID(_ context.Context, id uuid.UUID) (*domain.Profile, error) {
	profile, ok := s.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &profile, nil
}

func (s *profileRepoStub) FindAll(context.Context) ([]domain.Profile, error) {
	result := make([]domain.Profile, 0, len(s.profiles))
	for _, profile := range s.profiles {
		result = append(result, profile)
	}
	return result, nil
}

func (s *profileRepoStub) Store(context.Context, *domain.Profile) error { return nil }
func (s *profileRepoStub) Clear(context.Context) error                  { return nil }

type rosterRepoStub struct {
	roster *domain.Roster
	stored *domain.Roster
}

func (s *rosterRepoStub) Get(context.Context) (*domain.Roster, error) {
	return s.roster, nil
}

func (s *rosterRepoStub) Store(_ context.Context, roster *domain.Roster) error {
	s.stored = roster
	return nil
}

type adminNotifierStub struct {
	texts []string
}

func (s *adminNotifierStub) Notify(_ context.Context, text string) {
	s.texts = append(s.texts, text)
}

func newMember(profiles map[uuid.UUID]domain.Profile, roster *domain.Roster, chat domain.ChatID, name string) uuid.UUID {
	member := uuid.New()
	profiles[member] = domain.Profile{
		MemberID: member,
		UserID:   domain.UserID(chat),
		Email:    strings.ToLower(name) + "@company.com",
		Name:     name,
		Position: "Engineer",
	}
	roster.Join(member, chat)
	return member
}

func TestService_RunCycle_NotEnoughUsersNotifiesAdminsOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profiles := map[uuid.UUID]domain.Profile{}
	roster := domain.NewRoster()
	newMember(profiles, roster, 1, "Ivan")
	roster.Changes = nil

	profileRepo := &profileRepoStub{profiles: profiles}
	rosterRepo := &rosterRepoStub{roster: roster}
	notifier := &adminNotifierStub{}
	messenger := transportmock.NewMessenger(ctrl)

	srv := matching.NewService(profileRepo, rosterRepo, messenger, notifier, noShuffle, "https://meet.example.com", log.NewStub())
	err := srv.RunCycle(context.Background())

	require.NoError(t, err)
	assert.Len(t, notifier.texts, 1)
	assert.Nil(t, rosterRepo.stored)
	assert.Equal(t, 1, roster.JoinedCount())
}

func TestService_RunCycle_EvenCountPairsEveryone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profiles := map[uuid.UUID]domain.Profile{}
	roster := domain.NewRoster()
	newMember(profiles, roster, 1, "Ivan")
	newMember(profiles, roster, 2, "Olga")
	newMember(profiles, roster, 3, "Pavel")
	newMember(profiles, roster, 4, "Dasha")
	roster.Changes = nil

	profileRepo := &profileRepoStub{profiles: profiles}
	rosterRepo := &rosterRepoStub{roster: roster}
	notifier := &adminNotifierStub{}
	messenger := transportmock.NewMessenger(ctrl)
	messenger.EXPECT().
		SendButtons(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(4)

	srv := matching.NewService(profileRepo, rosterRepo, messenger, notifier, noShuffle, "https://meet.example.com", log.NewStub())
	err := srv.RunCycle(context.Background())

	require.NoError(t, err)
	assert.Empty(t, notifier.texts)
	require.NotNil(t, rosterRepo.stored)
	assert.Equal(t, 0, rosterRepo.stored.JoinedCount())
}

func TestService_RunCycle_OddCountCarriesLeftoverOver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profiles := map[uuid.UUID]domain.Profile{}
	roster := domain.NewRoster()
	newMember(profiles, roster, 1, "Ivan")
	newMember(profiles, roster, 2, "Olga")
	newMember(profiles, roster, 3, "Pavel")
	roster.Changes = nil

	profileRepo := &profileRepoStub{profiles: profiles}
	rosterRepo := &rosterRepoStub{roster: roster}
	notifier := &adminNotifierStub{}
	messenger := transportmock.NewMessenger(ctrl)
	messenger.EXPECT().
		SendButtons(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)
	messenger.EXPECT().
		SendText(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	srv := matching.NewService(profileRepo, rosterRepo, messenger, notifier, noShuffle, "https://meet.example.com", log.NewStub())
	err := srv.RunCycle(context.Background())

	require.NoError(t, err)
	require.NotNil(t, rosterRepo.stored)
	assert.Equal(t, 1, rosterRepo.stored.JoinedCount())
}

func TestService_RunCycle_MemberWithoutProfileIsExcluded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profiles := map[uuid.UUID]domain.Profile{}
	roster := domain.NewRoster()
	newMember(profiles, roster, 1, "Ivan")
	newMember(profiles, roster, 2, "Olga")
	missing := uuid.New()
	roster.Join(missing, 3)
	roster.Changes = nil

	profileRepo := &profileRepoStub{profiles: profiles}
	rosterRepo := &rosterRepoStub{roster: roster}
	notifier := &adminNotifierStub{}
	messenger := transportmock.NewMessenger(ctrl)
	messenger.EXPECT().
		SendButtons(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	srv := matching.NewService(profileRepo, rosterRepo, messenger, notifier, noShuffle, "https://meet.example.com", log.NewStub())
	err := srv.RunCycle(context.Background())

	require.NoError(t, err)
	require.NotNil(t, rosterRepo.stored)
	assert.Contains(t, rosterRepo.stored.Joined, missing)
	assert.Equal(t, 1, rosterRepo.stored.JoinedCount())
}

func TestService_RunCycle_NoProfileDataNotifiesAdmins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roster := domain.NewRoster()
	roster.Join(uuid.New(), 1)
	roster.Join(uuid.New(), 2)
	roster.Changes = nil

	profileRepo := &profileRepoStub{profiles: map[uuid.UUID]domain.Profile{}}
	rosterRepo := &rosterRepoStub{roster: roster}
	notifier := &adminNotifierStub{}
	messenger := transportmock.NewMessenger(ctrl)

	srv := matching.NewService(profileRepo, rosterRepo, messenger, notifier, noShuffle, "https://meet.example.com", log.NewStub())
	err := srv.RunCycle(context.Background())

	require.NoError(t, err)
	assert.Len(t, notifier.texts, 1)
	assert.Nil(t, rosterRepo.stored)
}

func TestService_HandleMeetDecision_Returns(t *testing.T) {
	const meetingLink = "https://meet.example.com"
	chat := domain.ChatID(42)

	tests := []struct {
		name      string
		wantMeet  bool
		messenger func(ctrl *gomock.Controller) transport.Messenger
	}{
		{
			name:     "meeting_link_sent_when_agreed",
			wantMeet: true,
			messenger: func(ctrl *gomock.Controller) transport.Messenger {
				mock := transportmock.NewMessenger(ctrl)
				mock.EXPECT().
					SendText(gomock.Any(), chat, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.ChatID, text string) error {
						assert.Contains(t, text, meetingLink)
						return nil
					})
				return mock
			},
		},
		{
			name:     "retry_button_offered_when_declined",
			wantMeet: false,
			messenger: func(ctrl *gomock.Controller) transport.Messenger {
				mock := transportmock.NewMessenger(ctrl)
				mock.EXPECT().
					SendButtons(gomock.Any(), chat, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.ChatID, _ string, buttons []transport.Button) error {
						require.Len(t, buttons, 1)
						assert.Equal(t, transport.ActionYesMeet, buttons[0].Action)
						return nil
					})
				return mock
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			srv := matching.NewService(
				&profileRepoStub{},
				&rosterRepoStub{roster: domain.NewRoster()},
				tc.messenger(ctrl),
				&adminNotifierStub{},
				noShuffle,
				meetingLink,
				log.NewStub(),
			)

			err := srv.HandleMeetDecision(context.Background(), chat, tc.wantMeet)
			assert.NoError(t, err)
		})
	}
}
