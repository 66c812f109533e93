package telegram

import (
	"context"
	"fmt"

	"github.com/klwxsrx/random-coffee-bot/internal/coffee/app/transport"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/domain"
	pkghttp "github.com/klwxsrx/random-coffee-bot/pkg/http"
)

const (
	// Destination is the bot API destination name used in http client logs.
	Destination pkghttp.Destination = "telegramBotAPI"

	DefaultAPIBaseURL = "https://api.telegram.org"
)

// BotAPIURL builds the per-token base URL of the bot API methods.
func BotAPIURL(apiBaseURL, token string) string {
	return fmt.Sprintf("%s/bot%s", apiBaseURL, token)
}

type (
	User struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
	}

	Chat struct {
		ID int64 `json:"id"`
	}

	Message struct {
		MessageID int64  `json:"message_id"`
		From      *User  `json:"from"`
		Chat      Chat   `json:"chat"`
		Text      string `json:"text"`
	}

	CallbackQuery struct {
		ID      string   `json:"id"`
		From    User     `json:"from"`
		Message *Message `json:"message"`
		Data    string   `json:"data"`
	}

	Update struct {
		UpdateID      int64          `json:"update_id"`
		Message       *Message       `json:"message"`
		CallbackQuery *CallbackQuery `json:"callback_query"`
	}
)

// Client is a minimal bot API client covering the methods the service needs.
// It implements the application Messenger port.
type Client struct {
	http pkghttp.Client
}

func NewClient(httpClient pkghttp.Client) *Client {
	return &Client{http: httpClient}
}

func (c *Client) GetMe(ctx context.Context) (User, error) {
	return callMethod[User](ctx, c, "getMe", nil)
}

// GetUpdates long-polls the API for at most timeoutSeconds. An empty batch
// on timeout is normal and returns a nil slice.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeoutSeconds int) ([]Update, error) {
	return callMethod[[]Update](ctx, c, "getUpdates", map[string]any{
		"offset":  offset,
		"timeout": timeoutSeconds,
	})
}

func (c *Client) AnswerCallbackQuery(ctx context.Context, callbackQueryID string) error {
	_, err := callMethod[bool](ctx, c, "answerCallbackQuery", map[string]any{
		"callback_query_id": callbackQueryID,
	})
	return err
}

func (c *Client) SendText(ctx context.Context, chat domain.ChatID, text string) error {
	_, err := callMethod[Message](ctx, c, "sendMessage", map[string]any{
		"chat_id": int64(chat),
		"text":    text,
	})
	return err
}

func (c *Client) SendButtons(ctx context.Context, chat domain.ChatID, text string, buttons []transport.Button) error {
	_, err := callMethod[Message](ctx, c, "sendMessage", map[string]any{
		"chat_id":      int64(chat),
		"text":         text,
		"reply_markup": inlineKeyboard(buttons),
	})
	return err
}

func (c *Client) SendPhoto(ctx context.Context, chat domain.ChatID, photoURL, caption string, buttons []transport.Button) error {
	_, err := callMethod[Message](ctx, c, "sendPhoto", map[string]any{
		"chat_id":      int64(chat),
		"photo":        photoURL,
		"caption":      caption,
		"reply_markup": inlineKeyboard(buttons),
	})
	return err
}

func (c *Client) SetChatCommands(ctx context.Context, chat domain.ChatID, commands []transport.Command) error {
	botCommands := make([]map[string]string, 0, len(commands))
	for _, command := range commands {
		botCommands = append(botCommands, map[string]string{
			"command":     command.Name,
			"description": command.Description,
		})
	}

	_, err := callMethod[bool](ctx, c, "setMyCommands", map[string]any{
		"commands": botCommands,
		"scope": map[string]any{
			"type":    "chat",
			"chat_id": int64(chat),
		},
	})
	return err
}

// inlineKeyboard renders one button per row, matching the layout users see
// in the registration dialogs.
func inlineKeyboard(buttons []transport.Button) map[string]any {
	rows := make([][]map[string]string, 0, len(buttons))
	for _, button := range buttons {
		rows = append(rows, []map[string]string{{
			"text":          button.Label,
			"callback_data": string(button.Action),
		}})
	}
	return map[string]any{"inline_keyboard": rows}
}

type apiResponse[T any] struct {
	OK          bool   `json:"ok"`
	Result      T      `json:"result"`
	Description string `json:"description"`
}

func callMethod[T any](ctx context.Context, c *Client, method string, body any) (T, error) {
	var result apiResponse[T]

	req := c.http.NewRequest(ctx).SetResult(&result).SetError(&result)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post("/" + method)
	if err != nil {
		return result.Result, fmt.Errorf("call %s: %w", method, err)
	}
	if resp.IsError() || !result.OK {
		return result.Result, fmt.Errorf("call %s: api error %d: %s", method, resp.StatusCode(), result.Description)
	}

	return result.Result, nil
}
