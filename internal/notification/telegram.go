package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot    sender
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, user *domain.User, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Номер забронирован!*\n\n%s\nСтоимость: %s",
		stayDetails(b), b.Price.StringFixed(2),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, user *domain.User, rec *domain.ArchiveRecord) {
	text := fmt.Sprintf("*Бронирование отменено*\n\n%s", stayDetails(&rec.Booking))
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCompleted(ctx context.Context, user *domain.User, rec *domain.ArchiveRecord) {
	text := fmt.Sprintf("*Проживание завершено, спасибо!*\n\n%s", stayDetails(&rec.Booking))
	n.send(ctx, user.TelegramChatID, text)
}

func stayDetails(b *domain.Booking) string {
	return fmt.Sprintf(
		"Отель: %s\nНомер: %s\nАдрес: %s\nЗаезд: %s\nВыезд: %s",
		escape(b.HotelName), escape(b.RoomType), escape(b.Location),
		b.CheckIn.Format("02.01.2006"), b.CheckOut.Format("02.01.2006"),
	)
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
