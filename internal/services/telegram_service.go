package services

import (
	"fmt"
	"html"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tasktracker/internal/models"
)

// TelegramService шлёт уведомления о задачах в общий операционный чат.
// Все отправки best-effort: ошибка логируется и не валит запрос.
type TelegramService struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramService(botToken string, chatID int64) (*TelegramService, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	log.Printf("[tg] authorized as @%s", bot.Self.UserName)
	return &TelegramService{bot: bot, chatID: chatID}, nil
}

func (t *TelegramService) NotifyTaskCreated(task *models.Task) {
	t.send("📌 Новая задача", task)
}

func (t *TelegramService) NotifyExecutorChanged(task *models.Task) {
	t.send("👤 Назначен новый исполнитель", task)
}

func (t *TelegramService) send(prefix string, task *models.Task) {
	if t == nil || t.bot == nil || t.chatID == 0 || task == nil {
		return
	}
	text := prefix + "\n" +
		"• <b>" + html.EscapeString(task.Title) + "</b>\n" +
		"• Статус: <code>" + string(task.Status) + "</code>\n" +
		"• Приоритет: <code>" + string(task.Priority) + "</code>\n" +
		"• Исполнитель: <code>" + html.EscapeString(task.ExecutorUsername) + "</code>"

	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := t.bot.Send(msg); err != nil {
		log.Printf("[tg][send][err] title=%q: %v", task.Title, err)
	}
}
