package bootstrap

import (
	"context"
	"log/slog"

	"room-booking/internal/infra/mq"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventPublisher,
	),
)

type eventPublisher interface {
	commands.EventPublisher
	Close() error
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) commands.EventPublisher {
	var pub eventPublisher = mq.NoopPublisher{}

	switch {
	case cfg.AMQP.URL == "":
		logger.Info("Event publishing disabled")
	default:
		p, err := mq.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			logger.Warn("RabbitMQ unreachable, booking events will be dropped", "error", err.Error())
			break
		}
		logger.Info("RabbitMQ connected", "exchange", cfg.AMQP.Exchange)
		pub = p
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}
