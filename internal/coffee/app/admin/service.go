package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/klwxsrx/random-coffee-bot/internal/coffee/app/matching"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/app/transport"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/domain"
	"github.com/klwxsrx/random-coffee-bot/pkg/log"
)

// Service handles the administrator command set: the joined-count report,
// the manual matching run, the user card listing and the full profile reset.
type Service struct {
	admins    map[domain.UserID]struct{}
	notifier  *Notifier
	profiles  domain.ProfileRepo
	roster    domain.RosterRepo
	matching  *matching.Service
	messenger transport.Messenger
	logger    log.Logger
}

func NewService(
	admins []domain.UserID,
	notifier *Notifier,
	profiles domain.ProfileRepo,
	roster domain.RosterRepo,
	matchingService *matching.Service,
	messenger transport.Messenger,
	logger log.Logger,
) *Service {
	adminSet := make(map[domain.UserID]struct{}, len(admins))
	for _, admin := range admins {
		adminSet[admin] = struct{}{}
	}

	return &Service{
		admins:    adminSet,
		notifier:  notifier,
		profiles:  profiles,
		roster:    roster,
		matching:  matchingService,
		messenger: messenger,
		logger:    logger,
	}
}

func (s *Service) IsAdmin(user domain.UserID) bool {
	_, ok := s.admins[user]
	return ok
}

// ReportJoinedCount pushes the current joined total to every admin. Used by
// the daily report job and the explicit admin command.
func (s *Service) ReportJoinedCount(ctx context.Context) error {
	roster, err := s.roster.Get(ctx)
	if err != nil {
		return fmt.Errorf("get roster: %w", err)
	}

	s.notifier.Notify(ctx, fmt.Sprintf(textJoinedCountReport, roster.JoinedCount()))
	return nil
}

func (s *Service) ReportJoinedCountCommand(ctx context.Context, chat domain.ChatID) error {
	err := s.ReportJoinedCount(ctx)
	if err != nil {
		return err
	}

	return s.messenger.SendText(ctx, chat, textReportSent)
}

func (s *Service) RunMatch(ctx context.Context) error {
	return s.matching.RunCycle(ctx)
}

func (s *Service) ShowAllUsers(ctx context.Context, chat domain.ChatID) error {
	profiles, err := s.profiles.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("get profiles: %w", err)
	}

	if len(profiles) == 0 {
		return s.messenger.SendText(ctx, chat, textNoUsers)
	}

	var sb strings.Builder
	sb.WriteString(textUserCardsHeader)
	for _, profile := range profiles {
		sb.WriteString(fmt.Sprintf(textUserCardEntry, profile.Name, profile.Email, profile.Position))
	}

	return s.messenger.SendText(ctx, chat, sb.String())
}

// ClearDatabase wipes the profile store. Roster and feedback data survive,
// matching the historical behavior of the reset command.
func (s *Service) ClearDatabase(ctx context.Context, chat domain.ChatID) error {
	err := s.profiles.Clear(ctx)
	if err != nil {
		return fmt.Errorf("clear profiles: %w", err)
	}

	s.logger.Info(ctx, "profile store cleared by admin")
	return s.messenger.SendText(ctx, chat, textDatabaseCleared)
}

func (s *Service) DenyAccess(ctx context.Context, chat domain.ChatID) error {
	return s.messenger.SendText(ctx, chat, textAdminsOnly)
}
