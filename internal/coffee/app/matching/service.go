package matching

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/klwxsrx/random-coffee-bot/internal/coffee/app/transport"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/domain"
	"github.com/klwxsrx/random-coffee-bot/pkg/log"
)

// AdminNotifier pushes a text to every administrator, logging per-admin
// delivery failures instead of returning them.
type AdminNotifier interface {
	Notify(ctx context.Context, text string)
}

type Service struct {
	profiles      domain.ProfileRepo
	roster        domain.RosterRepo
	messenger     transport.Messenger
	adminNotifier AdminNotifier
	shuffle       domain.Shuffle
	meetingLink   string
	logger        log.Logger
}

func NewService(
	profiles domain.ProfileRepo,
	roster domain.RosterRepo,
	messenger transport.Messenger,
	adminNotifier AdminNotifier,
	shuffle domain.Shuffle,
	meetingLink string,
	logger log.Logger,
) *Service {
	return &Service{
		profiles:      profiles,
		roster:        roster,
		messenger:     messenger,
		adminNotifier: adminNotifier,
		shuffle:       shuffle,
		meetingLink:   meetingLink,
		logger:        logger,
	}
}

// RunCycle pairs up the joined members of the current cycle, notifies both
// sides of every pair, carries unpaired members over to the next cycle and
// persists the updated roster once at the end of the run.
func (s *Service) RunCycle(ctx context.Context) error {
	roster, err := s.roster.Get(ctx)
	if err != nil {
		return fmt.Errorf("get roster: %w", err)
	}

	if roster.JoinedCount() < 2 {
		s.adminNotifier.Notify(ctx, textNotEnoughUsers)
		return nil
	}

	profileList, err := s.profiles.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("get profiles: %w", err)
	}
	profiles := make(map[uuid.UUID]domain.Profile, len(profileList))
	for _, profile := range profileList {
		profiles[profile.MemberID] = profile
	}

	pairing := domain.BuildPairing(roster.Joined, func(member uuid.UUID) bool {
		_, ok := profiles[member]
		return ok
	}, s.shuffle)

	for _, member := range pairing.MissingProfiles {
		s.logger.WithField("memberID", member).Warn(ctx, "joined member has no profile data")
	}

	if len(pairing.Pairs) == 0 {
		s.adminNotifier.Notify(ctx, textNotEnoughProfileData)
		return nil
	}

	for _, pair := range pairing.Pairs {
		s.notifyPair(ctx, roster, profiles, pair)
	}
	for _, member := range pairing.Leftovers {
		s.notifyLeftover(ctx, roster, member)
	}

	roster.ConsumePaired(pairing.PairedMembers(), pairing.Leftovers)
	err = s.roster.Store(ctx, roster)
	if err != nil {
		return fmt.Errorf("store roster: %w", err)
	}

	s.logger.WithField("pairs", len(pairing.Pairs)).Info(ctx, "matching cycle completed")
	return nil
}

// HandleMeetDecision reacts to the meet-now buttons attached to a pair
// notification.
func (s *Service) HandleMeetDecision(ctx context.Context, chat domain.ChatID, wantMeet bool) error {
	if wantMeet {
		return s.messenger.SendText(ctx, chat, fmt.Sprintf(textMeetingLink, s.meetingLink))
	}

	return s.messenger.SendButtons(ctx, chat, textMeetingDeclined, []transport.Button{
		{Label: buttonLabelChangedMindMeet, Action: transport.ActionYesMeet},
	})
}

func (s *Service) notifyPair(ctx context.Context, roster *domain.Roster, profiles map[uuid.UUID]domain.Profile, pair domain.Pair) {
	first := profiles[pair.First]
	second := profiles[pair.Second]
	text := fmt.Sprintf(textPairCreated, first.Name, second.Name)
	buttons := []transport.Button{
		{Label: buttonLabelYesMeet, Action: transport.ActionYesMeet},
		{Label: buttonLabelNoMeet, Action: transport.ActionNoMeet},
	}

	for _, member := range []uuid.UUID{pair.First, pair.Second} {
		chat, ok := roster.Joined[member]
		if !ok {
			s.logger.WithField("memberID", member).Error(ctx, "no chat address for paired member")
			continue
		}

		err := s.messenger.SendButtons(ctx, chat, text, buttons)
		if err != nil {
			s.logger.WithError(err).
				WithField("memberID", member).
				Error(ctx, "failed to notify paired member")
		}
	}
}

func (s *Service) notifyLeftover(ctx context.Context, roster *domain.Roster, member uuid.UUID) {
	chat, ok := roster.Joined[member]
	if !ok {
		s.logger.WithField("memberID", member).Error(ctx, "no chat address for leftover member")
		return
	}

	err := s.messenger.SendText(ctx, chat, textNoPairThisTime)
	if err != nil {
		s.logger.WithError(err).
			WithField("memberID", member).
			Error(ctx, "failed to notify leftover member")
	}
}
