package bootstrap

import (
	"context"
	"log/slog"

	"shuttlebook/internal/infra/notify"
	"shuttlebook/internal/pkg/config"
	"shuttlebook/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
	),
)

// NewNotifier wires the AMQP publisher when a broker is configured and
// falls back to the log notifier otherwise.
func NewNotifier(lc fx.Lifecycle, cfg config.Config) (commands.Notifier, error) {
	if cfg.AMQP.URL == "" {
		slog.Info("no AMQP broker configured, waitlist notifications go to logs")
		return notify.NewLogNotifier(), nil
	}

	notifier, cleanup, err := notify.NewAMQPNotifier(cfg.AMQP)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return notifier, nil
}
