package telegramimpl

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// SendMessage sends a plain-text message to a specific chat ID
func (tg *TelegramImpl) SendMessage(chatID int64, text string) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	sentMsg, err := tg.TgBot.Send(msg)
	if err != nil {
		tg.Logger.Error("Error sending message",
			"chatID", chatID,
			"error", err)
		return 0, fmt.Errorf("failed to send message: %w", err)
	}

	return sentMsg.MessageID, nil
}

// SendMarkdown sends a MarkdownV2 formatted message to a specific chat ID.
// Callers are responsible for escaping, see formatter.EscapeMarkdownV2.
func (tg *TelegramImpl) SendMarkdown(chatID int64, text string) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	sentMsg, err := tg.TgBot.Send(msg)
	if err != nil {
		tg.Logger.Error("Error sending markdown message",
			"chatID", chatID,
			"error", err)
		return 0, fmt.Errorf("failed to send markdown message: %w", err)
	}

	return sentMsg.MessageID, nil
}

// SendMessageToAdmin sends a text message to the configured admin chat.
// Used for operational notices; failures are logged and swallowed.
func (tg *TelegramImpl) SendMessageToAdmin(message string) {
	if tg.Config.Telegram.Admin == 0 {
		return
	}

	msg := tgbotapi.NewMessage(tg.Config.Telegram.Admin, message)
	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending message to admin",
			"adminID", tg.Config.Telegram.Admin,
			"error", err)
	}
}

// GetUpdatesChan wraps the bot's GetUpdatesChan method
func (tg *TelegramImpl) GetUpdatesChan(u tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return tg.TgBot.GetUpdatesChan(u)
}

// StopReceivingUpdates wraps the bot's StopReceivingUpdates method
func (tg *TelegramImpl) StopReceivingUpdates() {
	tg.TgBot.StopReceivingUpdates()
}
