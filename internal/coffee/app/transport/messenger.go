//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Messenger=Messenger"
package transport

import (
	"context"

	"github.com/klwxsrx/random-coffee-bot/internal/coffee/domain"
)

// Action is an inline button callback tag.
type Action string

const (
	ActionStartRegistration Action = "start_registration"
	ActionNewCycle          Action = "new_cycle"
	ActionJoinCycle         Action = "join_cycle"
	ActionNotJoinCycle      Action = "not_join_cycle"
	ActionChangeName        Action = "change_name"
	ActionKeepName          Action = "keep_name"
	ActionChangePosition    Action = "change_position"
	ActionKeepPosition      Action = "keep_position"
	ActionYesMeet           Action = "yes_meet"
	ActionNoMeet            Action = "no_meet"
)

type Button struct {
	Label  string
	Action Action
}

type Command struct {
	Name        string
	Description string
}

// Messenger is the outbound chat transport. Delivery is at-least-once:
// callers log failed sends and move on.
type Messenger interface {
	SendText(ctx context.Context, chat domain.ChatID, text string) error
	SendButtons(ctx context.Context, chat domain.ChatID, text string, buttons []Button) error
	SendPhoto(ctx context.Context, chat domain.ChatID, photoURL, caption string, buttons []Button) error
	SetChatCommands(ctx context.Context, chat domain.ChatID, commands []Command) error
}
