package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shravanmandadapu71-sys/parkx/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts booking lifecycle events to the operations chat.
type TelegramNotifier struct {
	bot       *tgbotapi.BotAPI
	opsChatID int64
	logger    logger.Logger
}

func NewTelegramNotifier(token string, opsChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || opsChatID == 0 {
		logger.Warn("telegram bot token or ops chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, opsChatID: opsChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyTicketIssued(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Ticket issued*\n\n"+"Plot: %s\n"+"Vehicle: %s\n"+"Plan: %s\n"+"Price: %d\n"+"Valid until (UTC): %s",
		b.PlotName, b.Vehicle, b.Plan, b.Price,
		b.ExpiresAt.UTC().Format("02.01.2006 15:04"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingExpired(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking expired*\n\n"+"Plot: %s\n"+"Vehicle: %s\n"+"Plan: %s",
		b.PlotName, b.Vehicle, b.Plan,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\n"+"Plot: %s\n"+"Vehicle: %s",
		b.PlotName, b.Vehicle,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.opsChatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.opsChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.opsChatID),
			logger.String("error", err.Error()),
		)
	}
}
