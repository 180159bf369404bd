package eventsink

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"

	audit "greatglobal/pkg/platform/audit"
)

// AMQPSink publishes journal events to a durable topic exchange with routing
// key ledger.<category>.<action>.
type AMQPSink struct {
	mu       sync.Mutex
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	logger   *slog.Logger
}

func sanitizeAMQPURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	return clean, nil
}

func NewAMQPSink(amqpURL, exchange string, logger *slog.Logger) (*AMQPSink, error) {
	cleanURL, err := sanitizeAMQPURL(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("amqp sink: %w", err)
	}

	// Use a bounded dial timeout so startup does not hang indefinitely
	conn, err := amqp091.DialConfig(cleanURL, amqp091.Config{Dial: amqp091.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, fmt.Errorf("amqp sink: dial: %w", err)
	}
	s := &AMQPSink{conn: conn, exchange: exchange, logger: logger}
	if err := s.reopen(); err != nil {
		conn.Close()
		return nil, err
	}
	logger.Info("amqp event sink ready", "exchange", exchange)
	return s, nil
}

func (s *AMQPSink) reopen() error {
	ch, err := s.conn.Channel()
	if err != nil {
		return fmt.Errorf("amqp sink: open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(s.exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		return fmt.Errorf("amqp sink: declare exchange: %w", err)
	}
	s.channel = ch
	return nil
}

func (s *AMQPSink) Publish(ctx context.Context, event audit.Event) error {
	body, err := Encode(event)
	if err != nil {
		return err
	}
	msg := amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.ID.String(),
		Timestamp:    event.Timestamp,
		Body:         body,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := RoutingKey(event)
	err = s.channel.PublishWithContext(ctx, s.exchange, key, false, false, msg)
	if err == nil {
		return nil
	}

	s.logger.WarnContext(ctx, "amqp publish failed; reopening channel", "routing_key", key, "error", err)
	if reopenErr := s.reopen(); reopenErr != nil {
		return errors.Join(err, reopenErr)
	}
	if err := s.channel.PublishWithContext(ctx, s.exchange, key, false, false, msg); err != nil {
		return fmt.Errorf("amqp sink: publish: %w", err)
	}
	return nil
}

func (s *AMQPSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.channel != nil {
		s.channel.Close()
	}
	if s.conn != nil {
		s.conn.Close()
	}
}
