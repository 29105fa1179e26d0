package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"shuttlebook/internal/domain/waitlist"
	"shuttlebook/internal/pkg/config"
	"shuttlebook/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

const routingKeyWaitlistNotified = "waitlist.notified"

// waitlistEvent is the wire payload for a promotion. Consumers (mailer,
// push service) only need enough to reach the user and describe the slot.
type waitlistEvent struct {
	EntryID   string    `json:"entryId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	CourtID   string    `json:"courtId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	EmittedAt time.Time `json:"emittedAt"`
}

// AMQPNotifier publishes waitlist promotions to a topic exchange.
type AMQPNotifier struct {
	channel  *amqp.Channel
	exchange string
}

// NewAMQPNotifier dials the broker and declares the exchange. The returned
// cleanup closes the connection.
func NewAMQPNotifier(cfg config.AMQPConfig) (*AMQPNotifier, func(), error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, nil, errs.Wrap(err, "dialing amqp broker")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, errs.Wrap(err, "opening amqp channel")
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, errs.Wrap(err, "declaring exchange")
	}

	cleanup := func() {
		ch.Close()
		conn.Close()
	}
	return &AMQPNotifier{channel: ch, exchange: cfg.Exchange}, cleanup, nil
}

func (n *AMQPNotifier) NotifyWaitlist(ctx context.Context, entry *waitlist.Entry) error {
	event := waitlistEvent{
		EntryID:   entry.ID().String(),
		UserID:    entry.UserID().String(),
		UserName:  entry.UserName(),
		UserEmail: entry.UserEmail(),
		CourtID:   entry.CourtID().String(),
		StartTime: entry.Slot().Start(),
		EndTime:   entry.Slot().End(),
		EmittedAt: time.Now(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "encoding waitlist event")
	}

	err = n.channel.PublishWithContext(ctx, n.exchange, routingKeyWaitlistNotified, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return errs.Wrap(err, "publishing waitlist event")
	}
	return nil
}

// LogNotifier is the broker-less fallback: promotions are only logged.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) NotifyWaitlist(_ context.Context, entry *waitlist.Entry) error {
	slog.Info("waitlist entry promoted",
		"entry_id", entry.ID(),
		"user_email", entry.UserEmail(),
		"court_id", entry.CourtID(),
		"slot", entry.Slot().String())
	return nil
}
