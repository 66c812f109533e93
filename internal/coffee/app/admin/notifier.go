package admin

import (
	"context"
	"fmt"

	"github.com/klwxsrx/random-coffee-bot/internal/coffee/app/transport"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/domain"
	"github.com/klwxsrx/random-coffee-bot/pkg/log"
)

// Notifier fans a text out to the fixed administrator allow-list.
type Notifier struct {
	admins    []domain.ChatID
	messenger transport.Messenger
	logger    log.Logger
}

func NewNotifier(admins []domain.ChatID, messenger transport.Messenger, logger log.Logger) *Notifier {
	return &Notifier{
		admins:    admins,
		messenger: messenger,
		logger:    logger,
	}
}

func (n *Notifier) Notify(ctx context.Context, text string) {
	for _, chat := range n.admins {
		err := n.messenger.SendText(ctx, chat, text)
		if err != nil {
			n.logger.WithError(err).
				WithField("adminChatID", chat).
				Error(ctx, "failed to notify admin")
		}
	}
}

// HandleCycleRosterChanged reports the new joined total after every
// join/decline action.
func (n *Notifier) HandleCycleRosterChanged(ctx context.Context, evt domain.EventCycleRosterChanged) error {
	n.Notify(ctx, fmt.Sprintf(textJoinedCountReport, evt.JoinedCount))
	return nil
}
