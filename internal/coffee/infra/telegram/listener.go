package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/klwxsrx/random-coffee-bot/internal/coffee/app/admin"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/app/feedback"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/app/matching"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/app/registration"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/app/transport"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/domain"
	"github.com/klwxsrx/random-coffee-bot/pkg/log"
)

const (
	longPollTimeoutSeconds = 30
	pollFailureDelay       = 3 * time.Second

	textInternalError = "Произошла ошибка. Попробуйте снова позже."
)

// Listener is the inbound update pump. Updates are handled strictly one at
// a time on a single goroutine, which keeps the conversation state and the
// roster free of handler races.
type Listener struct {
	client       *Client
	registration *registration.Service
	feedback     *feedback.Service
	matching     *matching.Service
	admin        *admin.Service
	logger       log.Logger

	offset int64
}

func NewListener(
	client *Client,
	registrationService *registration.Service,
	feedbackService *feedback.Service,
	matchingService *matching.Service,
	adminService *admin.Service,
	logger log.Logger,
) *Listener {
	return &Listener{
		client:       client,
		registration: registrationService,
		feedback:     feedbackService,
		matching:     matchingService,
		admin:        adminService,
		logger:       logger,
	}
}

func (l *Listener) Listen(ctx context.Context) error {
	for {
		updates, err := l.client.GetUpdates(ctx, l.offset, longPollTimeoutSeconds)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			l.logger.WithError(err).Error(ctx, "failed to get updates")
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(pollFailureDelay):
			}
			continue
		}

		for _, update := range updates {
			l.offset = update.UpdateID + 1
			l.handleUpdate(ctx, update)
		}
	}
}

func (l *Listener) handleUpdate(ctx context.Context, update Update) {
	user, chat, ok := updateSource(update)
	if !ok {
		return
	}

	defer func() {
		if msg := recover(); msg != nil {
			l.recoverUser(ctx, user, chat, fmt.Errorf("update handler panic: %v", msg))
		}
	}()

	var err error
	switch {
	case update.CallbackQuery != nil:
		err = l.handleCallback(ctx, user, chat, update.CallbackQuery)
	case update.Message != nil:
		err = l.handleMessage(ctx, user, chat, update.Message)
	}
	if err != nil {
		l.recoverUser(ctx, user, chat, err)
	}
}

func (l *Listener) handleMessage(ctx context.Context, user domain.UserID, chat domain.ChatID, message *Message) error {
	command, isCommand := strings.CutPrefix(message.Text, "/")
	if !isCommand {
		return l.registration.HandleText(ctx, user, chat, message.Text)
	}

	switch command {
	case "start":
		return l.registration.Begin(ctx, user, chat)
	case "leave_feedback":
		return l.feedback.Ask(ctx, chat)
	case "show_all_users":
		if !l.admin.IsAdmin(user) {
			return l.admin.DenyAccess(ctx, chat)
		}
		return l.admin.ShowAllUsers(ctx, chat)
	case "check_cycle_users":
		if !l.admin.IsAdmin(user) {
			return l.admin.DenyAccess(ctx, chat)
		}
		return l.admin.ReportJoinedCountCommand(ctx, chat)
	case "match":
		if !l.admin.IsAdmin(user) {
			return l.admin.DenyAccess(ctx, chat)
		}
		return l.admin.RunMatch(ctx)
	case "clear_database":
		if !l.admin.IsAdmin(user) {
			return l.admin.DenyAccess(ctx, chat)
		}
		return l.admin.ClearDatabase(ctx, chat)
	default:
		l.logger.WithField("command", command).Debug(ctx, "unknown command ignored")
		return nil
	}
}

func (l *Listener) handleCallback(ctx context.Context, user domain.UserID, chat domain.ChatID, callback *CallbackQuery) error {
	err := l.client.AnswerCallbackQuery(ctx, callback.ID)
	if err != nil {
		l.logger.WithError(err).Warn(ctx, "failed to answer callback query")
	}

	action := transport.Action(callback.Data)
	switch {
	case strings.HasPrefix(callback.Data, "feedback_"):
		return l.feedback.HandleRating(ctx, user, chat, domain.RatingTag(callback.Data))
	case action == transport.ActionYesMeet || action == transport.ActionNoMeet:
		return l.matching.HandleMeetDecision(ctx, chat, action == transport.ActionYesMeet)
	default:
		return l.registration.HandleAction(ctx, user, chat, action)
	}
}

// recoverUser reports the failure and drops the conversation so the user can
// start over with the start command.
func (l *Listener) recoverUser(ctx context.Context, user domain.UserID, chat domain.ChatID, err error) {
	l.logger.WithError(err).WithField("userID", user).Error(ctx, "failed to handle update")
	l.registration.Reset(user)

	err = l.client.SendText(ctx, chat, textInternalError)
	if err != nil {
		l.logger.WithError(err).Error(ctx, "failed to send error message")
	}
}

func updateSource(update Update) (domain.UserID, domain.ChatID, bool) {
	switch {
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		return domain.UserID(update.CallbackQuery.From.ID), domain.ChatID(update.CallbackQuery.Message.Chat.ID), true
	case update.Message != nil && update.Message.From != nil:
		return domain.UserID(update.Message.From.ID), domain.ChatID(update.Message.Chat.ID), true
	default:
		return 0, 0, false
	}
}
