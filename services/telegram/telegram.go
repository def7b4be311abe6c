package telegram

import (
	"context"
	"fmt"
	"sale-alerts/services/notifier"
	"time"

	"github.com/PaulSonOfLars/gotgbot/v2"
)

func New(token string, chatID int64) (*Impl, error) {
	if token == "" {
		return &Impl{}, ErrTokenIsMissing
	}

	if chatID == 0 {
		return &Impl{}, ErrChatIsMissing
	}

	b, err := gotgbot.NewBot(token, nil)
	if err != nil {
		return &Impl{}, fmt.Errorf("%w: %w", ErrBotNotInitialized, err)
	}

	return &Impl{bot: b, chatID: chatID}, nil
}

func (service *Impl) Name() string {
	return "telegram"
}

func (service *Impl) Send(ctx context.Context, msg notifier.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	opts := &gotgbot.SendMessageOpts{
		LinkPreviewOptions: &gotgbot.LinkPreviewOptions{IsDisabled: true},
		ReplyMarkup:        buildKeyboard(msg.Actions),
	}
	if deadline, ok := ctx.Deadline(); ok {
		opts.RequestOpts = &gotgbot.RequestOpts{Timeout: time.Until(deadline)}
	}

	_, err := service.bot.SendMessage(service.chatID, formatText(msg), opts)
	return err
}

func formatText(msg notifier.Message) string {
	return "🛒 " + msg.Subject + "\n\n" + msg.Body
}

// buildKeyboard puts every action on its own row.
func buildKeyboard(actions []notifier.Action) gotgbot.InlineKeyboardMarkup {
	rows := make([][]gotgbot.InlineKeyboardButton, 0, len(actions))
	for _, action := range actions {
		rows = append(rows, []gotgbot.InlineKeyboardButton{{Text: action.Label, Url: action.URL}})
	}

	return gotgbot.InlineKeyboardMarkup{InlineKeyboard: rows}
}
