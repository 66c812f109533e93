package registration

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/klwxsrx/random-coffee-bot/internal/coffee/app/cycle"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/app/transport"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/domain"
	"github.com/klwxsrx/random-coffee-bot/pkg/log"
)

// Service drives a user through profile data collection and the join/decline
// choice. All handlers are invoked from a single dispatch loop, so the
// session map needs no locking.
type Service struct {
	profiles  domain.ProfileRepo
	cycle     *cycle.Service
	messenger transport.Messenger
	isAdmin   func(domain.UserID) bool
	logger    log.Logger

	sessions map[domain.UserID]*session
}

func NewService(
	profiles domain.ProfileRepo,
	cycleService *cycle.Service,
	messenger transport.Messenger,
	isAdmin func(domain.UserID) bool,
	logger log.Logger,
) *Service {
	return &Service{
		profiles:  profiles,
		cycle:     cycleService,
		messenger: messenger,
		isAdmin:   isAdmin,
		logger:    logger,
		sessions:  map[domain.UserID]*session{},
	}
}

// Begin handles the start command. A returning user gets their card with an
// edit/join choice right away, a new user enters the registration flow.
func (s *Service) Begin(ctx context.Context, user domain.UserID, chat domain.ChatID) error {
	profile, err := s.profiles.FindByUserID(ctx, user)
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		return s.startRegistration(ctx, user, chat)
	case err != nil:
		return fmt.Errorf("find profile: %w", err)
	}

	sess := &session{State: StateShowingCard, Chat: chat}
	sess.fillFromProfile(profile)
	s.sessions[user] = sess

	return s.sendReturningCard(ctx, chat, sess)
}

// Reset drops the conversation so the next begin event starts it over.
func (s *Service) Reset(user domain.UserID) {
	delete(s.sessions, user)
}

func (s *Service) HandleText(ctx context.Context, user domain.UserID, chat domain.ChatID, text string) error {
	sess, ok := s.sessions[user]
	if !ok {
		s.logger.WithField("userID", user).Debug(ctx, "text without active conversation ignored")
		return nil
	}
	sess.Chat = chat

	switch sess.State {
	case StateAwaitingEmail:
		return s.handleEmail(ctx, user, sess, text)
	case StateAwaitingName:
		return s.handleName(ctx, sess, text)
	case StateAwaitingPosition:
		return s.handlePosition(ctx, user, sess, text)
	default:
		s.logger.WithField("userID", user).Debug(ctx, "unexpected text input ignored")
		return nil
	}
}

func (s *Service) HandleAction(ctx context.Context, user domain.UserID, chat domain.ChatID, action transport.Action) error {
	sess, ok := s.sessions[user]
	if !ok {
		return fmt.Errorf("no active conversation for user %d", user)
	}
	sess.Chat = chat

	switch {
	case action == transport.ActionStartRegistration && sess.State == StateAwaitingEmail:
		sess.MemberID = uuid.Nil
		sess.Email, sess.Name, sess.Position = "", "", ""
		return s.messenger.SendText(ctx, chat, textAskEmail)

	case action == transport.ActionNewCycle && sess.State == StateShowingCard:
		sess.State = StateConfirmingName
		return s.messenger.SendButtons(ctx, chat, fmt.Sprintf(textConfirmName, sess.Name), []transport.Button{
			{Label: buttonLabelYes, Action: transport.ActionChangeName},
			{Label: buttonLabelNo, Action: transport.ActionKeepName},
		})

	case action == transport.ActionChangeName && sess.State == StateConfirmingName:
		sess.State = StateAwaitingName
		return s.messenger.SendText(ctx, chat, textAskNewName)

	case action == transport.ActionKeepName && sess.State == StateConfirmingName:
		sess.State = StateConfirmingPosition
		return s.messenger.SendButtons(ctx, chat, fmt.Sprintf(textConfirmPosition, sess.Position), []transport.Button{
			{Label: buttonLabelYes, Action: transport.ActionChangePosition},
			{Label: buttonLabelNo, Action: transport.ActionKeepPosition},
		})

	case action == transport.ActionChangePosition && sess.State == StateConfirmingPosition:
		sess.State = StateAwaitingPosition
		return s.messenger.SendText(ctx, chat, textAskNewPosition)

	case action == transport.ActionKeepPosition && sess.State == StateConfirmingPosition:
		return s.persistAndShowCard(ctx, user, sess)

	case action == transport.ActionJoinCycle && sess.State == StateShowingCard:
		return s.handleJoin(ctx, sess)

	case action == transport.ActionNotJoinCycle && sess.State == StateShowingCard:
		return s.handleDecline(ctx, sess)

	default:
		s.logger.
			WithField("userID", user).
			WithField("action", string(action)).
			Debug(ctx, "unexpected button action ignored")
		return nil
	}
}

func (s *Service) startRegistration(ctx context.Context, user domain.UserID, chat domain.ChatID) error {
	commands := userCommands
	if s.isAdmin(user) {
		commands = adminCommands
	}
	err := s.messenger.SetChatCommands(ctx, chat, commands)
	if err != nil {
		s.logger.WithError(err).Warn(ctx, "failed to set chat commands")
	}

	buttons := []transport.Button{{Label: buttonLabelLetsGo, Action: transport.ActionStartRegistration}}
	err = s.messenger.SendPhoto(ctx, chat, welcomePhotoURL, textWelcome, buttons)
	if err != nil {
		s.logger.WithError(err).Error(ctx, "failed to send welcome photo")
		err = s.messenger.SendButtons(ctx, chat, textWelcome, buttons)
		if err != nil {
			return fmt.Errorf("send welcome message: %w", err)
		}
	}

	s.sessions[user] = &session{State: StateAwaitingEmail, Chat: chat}
	return nil
}

func (s *Service) handleEmail(ctx context.Context, user domain.UserID, sess *session, email string) error {
	if !domain.IsValidEmail(email) {
		return s.messenger.SendText(ctx, sess.Chat, textInvalidEmail)
	}

	profile, err := s.profiles.FindByUserID(ctx, user)
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
	case err != nil:
		return fmt.Errorf("find profile: %w", err)
	default:
		profile.Email = email
		err = s.profiles.Store(ctx, profile)
		if err != nil {
			return fmt.Errorf("store profile: %w", err)
		}

		sess.fillFromProfile(profile)
		sess.State = StateShowingCard
		return s.sendReturningCard(ctx, sess.Chat, sess)
	}

	sess.MemberID = uuid.New()
	sess.Email = email
	err = s.profiles.Store(ctx, sess.toProfile(user))
	if err != nil {
		return fmt.Errorf("store profile: %w", err)
	}

	sess.State = StateAwaitingName
	return s.messenger.SendText(ctx, sess.Chat, textAskName)
}

func (s *Service) handleName(ctx context.Context, sess *session, name string) error {
	sess.Name = name

	if sess.Email != "" {
		sess.State = StateAwaitingPosition
		return s.messenger.SendText(ctx, sess.Chat, textAskPosition)
	}

	// email is normally collected first, tolerate the reversed order
	sess.State = StateAwaitingEmail
	return s.messenger.SendText(ctx, sess.Chat, textAskEmailAfterName)
}

func (s *Service) handlePosition(ctx context.Context, user domain.UserID, sess *session, position string) error {
	if sess.Name == "" || sess.Email == "" {
		sess.State = StateAwaitingName
		return s.messenger.SendText(ctx, sess.Chat, textMissingNameOrEmail)
	}

	sess.Position = position
	return s.persistAndShowCard(ctx, user, sess)
}

func (s *Service) persistAndShowCard(ctx context.Context, user domain.UserID, sess *session) error {
	err := s.profiles.Store(ctx, sess.toProfile(user))
	if err != nil {
		return fmt.Errorf("store profile: %w", err)
	}

	sess.State = StateShowingCard
	return s.messenger.SendButtons(ctx, sess.Chat,
		fmt.Sprintf(textCardReady, sess.Name, sess.Email, sess.Position),
		[]transport.Button{
			{Label: buttonLabelJoinCycle, Action: transport.ActionJoinCycle},
			{Label: buttonLabelNotJoinCycle, Action: transport.ActionNotJoinCycle},
		})
}

func (s *Service) sendReturningCard(ctx context.Context, chat domain.ChatID, sess *session) error {
	return s.messenger.SendButtons(ctx, chat,
		fmt.Sprintf(textCurrentData, sess.Name, sess.Email, sess.Position),
		[]transport.Button{
			{Label: buttonLabelChangeData, Action: transport.ActionNewCycle},
			{Label: buttonLabelStartNewCycle, Action: transport.ActionJoinCycle},
		})
}

func (s *Service) handleJoin(ctx context.Context, sess *session) error {
	count, err := s.cycle.Join(ctx, sess.MemberID, sess.Chat)
	if err != nil {
		return fmt.Errorf("join cycle: %w", err)
	}

	return s.messenger.SendText(ctx, sess.Chat, fmt.Sprintf(textJoinedCycle, cycle.UserCountText(count)))
}

func (s *Service) handleDecline(ctx context.Context, sess *session) error {
	err := s.cycle.Decline(ctx, sess.MemberID, sess.Chat)
	if err != nil {
		return fmt.Errorf("decline cycle: %w", err)
	}

	return s.messenger.SendButtons(ctx, sess.Chat, textDeclinedCycle, []transport.Button{
		{Label: buttonLabelChangedMindJoin, Action: transport.ActionJoinCycle},
	})
}
