package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func newTestNotifier(t *testing.T, s sender) *TelegramNotifier {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return &TelegramNotifier{bot: s, logger: log}
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:        "b1",
		HotelName: "Sea_View",
		RoomType:  "double",
		Location:  "Batumi",
		CheckIn:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		Price:     decimal.RequireFromString("120.5"),
	}
}

func TestTelegramNotifier_BookingCreated(t *testing.T) {
	s := &fakeSender{}
	n := newTestNotifier(t, s)
	chatID := int64(42)

	n.NotifyBookingCreated(context.Background(), &domain.User{TelegramChatID: &chatID}, testBooking())

	require.Len(t, s.sent, 1)
	assert.Equal(t, chatID, s.sent[0].ChatID)
	assert.Equal(t, tgbotapi.ModeMarkdown, s.sent[0].ParseMode)
	assert.Contains(t, s.sent[0].Text, `Sea\_View`)
	assert.Contains(t, s.sent[0].Text, "10.01.2025")
	assert.Contains(t, s.sent[0].Text, "120.50")
}

func TestTelegramNotifier_ArchiveEvents(t *testing.T) {
	s := &fakeSender{}
	n := newTestNotifier(t, s)
	chatID := int64(42)
	user := &domain.User{TelegramChatID: &chatID}
	at := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)

	n.NotifyBookingCancelled(context.Background(), user, domain.NewArchiveRecord(testBooking(), domain.ArchiveStatusCancelled, "", at))
	n.NotifyBookingCompleted(context.Background(), user, domain.NewArchiveRecord(testBooking(), domain.ArchiveStatusCompleted, "", at))

	require.Len(t, s.sent, 2)
	assert.Contains(t, s.sent[0].Text, "отменено")
	assert.Contains(t, s.sent[1].Text, "завершено")
}

func TestTelegramNotifier_SkipsWithoutChatID(t *testing.T) {
	s := &fakeSender{}
	n := newTestNotifier(t, s)

	n.NotifyBookingCreated(context.Background(), &domain.User{}, testBooking())

	assert.Empty(t, s.sent)
}

func TestTelegramNotifier_SkipsCancelledContext(t *testing.T) {
	s := &fakeSender{}
	n := newTestNotifier(t, s)
	chatID := int64(42)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n.NotifyBookingCreated(ctx, &domain.User{TelegramChatID: &chatID}, testBooking())

	assert.Empty(t, s.sent)
}

func TestTelegramNotifier_Disabled(t *testing.T) {
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	n, err := NewTelegramNotifier("", log)
	require.NoError(t, err)
	chatID := int64(42)

	assert.NotPanics(t, func() {
		n.NotifyBookingCreated(context.Background(), &domain.User{TelegramChatID: &chatID}, testBooking())
	})
}

func TestTelegramNotifier_SendErrorIsSwallowed(t *testing.T) {
	s := &fakeSender{err: errors.New("blocked by user")}
	n := newTestNotifier(t, s)
	chatID := int64(42)

	assert.NotPanics(t, func() {
		n.NotifyBookingCompleted(context.Background(), &domain.User{TelegramChatID: &chatID},
			domain.NewArchiveRecord(testBooking(), domain.ArchiveStatusCompleted, "", time.Now()))
	})
	assert.Len(t, s.sent, 1)
}
