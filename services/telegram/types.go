package telegram

import (
	"errors"

	"github.com/PaulSonOfLars/gotgbot/v2"
)

var (
	ErrTokenIsMissing    = errors.New("telegram token is missing")
	ErrChatIsMissing     = errors.New("telegram chat id is missing")
	ErrBotNotInitialized = errors.New("telegram bot  is not ready yet")
)

type Impl struct {
	bot    *gotgbot.Bot
	chatID int64
}
