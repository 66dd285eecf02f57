// Package mailqueue publishes outbound emails to a RabbitMQ queue instead
// of delivering them inline. A consumer drains the queue and hands each
// message to a real Mailer, keeping request latency independent of the
// mail server.
package mailqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/streadway/amqp"
	"go.uber.org/zap"

	"chocolatudo/internal/mailer"
)

const emailQueue = "email_queue"

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// Client holds the RabbitMQ connection and channel. It implements
// mailer.Mailer by enqueueing messages.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *zap.Logger
}

// NewClient connects to RabbitMQ and declares the email queue.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		emailQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", emailQueue, err)
	}

	logger.Info("mail queue connected", zap.String("queue", emailQueue))

	return &Client{
		conn:    conn,
		channel: ch,
		logger:  logger,
	}, nil
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors occurred during mail queue close: %v", errs)
	}
	return nil
}

// Send enqueues an email for asynchronous delivery.
func (c *Client) Send(ctx context.Context, email mailer.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.channel == nil {
		return fmt.Errorf("mail queue channel is not available")
	}

	body, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("failed to marshal email to JSON: %w", err)
	}

	err = c.channel.Publish(
		"",         // exchange: default
		emailQueue, // routing key: the queue name
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish email: %w", err)
	}

	c.logger.Debug("email enqueued", zap.String("to", email.To), zap.String("subject", email.Subject))
	return nil
}

// Consume starts a goroutine that drains the email queue and delivers
// each message through the given Mailer. Delivery failures are nacked
// and requeued.
func (c *Client) Consume(deliver mailer.Mailer) error {
	if c.channel == nil {
		return fmt.Errorf("mail queue channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(
		emailQueue,
		"",    // consumer tag
		false, // auto-ack: manual so failed deliveries can requeue
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			var email mailer.Email
			if err := json.Unmarshal(msg.Body, &email); err != nil {
				c.logger.Error("failed to decode queued email", zap.Error(err))
				// Malformed payload will never succeed; drop it.
				if nackErr := msg.Nack(false, false); nackErr != nil {
					c.logger.Error("failed to nack message", zap.Error(nackErr))
				}
				continue
			}

			if err := deliver.Send(context.Background(), email); err != nil {
				c.logger.Error("failed to deliver queued email",
					zap.String("to", email.To),
					zap.Error(err),
				)
				if nackErr := msg.Nack(false, true); nackErr != nil {
					c.logger.Error("failed to nack message", zap.Error(nackErr))
				}
				continue
			}

			if ackErr := msg.Ack(false); ackErr != nil {
				c.logger.Error("failed to ack message", zap.Error(ackErr))
			}
		}
	}()

	return nil
}
