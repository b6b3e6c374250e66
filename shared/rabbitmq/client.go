package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrNotConnected is returned when the channel has been closed
var ErrNotConnected = errors.New("not connected to RabbitMQ")

// Config holds RabbitMQ connection configuration
type Config struct {
	Host         string
	Port         int
	User         string
	Password     string
	VHost        string
	ExchangeName string
	ExchangeType string
	QueueName    string
	// RoutingKey binds the queue; "#" on a topic exchange receives every event
	RoutingKey         string
	Durable            bool
	PrefetchCount      int
	RetryAttempts      int
	RetryInterval      time.Duration
	Heartbeat          time.Duration
	PublishRetries     int
	PublishRetryDelay  time.Duration
	PublishBackoffMult float64
}

// Client represents a RabbitMQ client
type Client struct {
	config  *Config
	logger  *slog.Logger
	conn    *amqp.Connection
	channel *amqp.Channel

	mu     sync.Mutex
	closed chan *amqp.Error
}

// NewClient dials RabbitMQ and declares the exchange, queue and binding
func NewClient(config *Config, logger *slog.Logger) (*Client, error) {
	client := &Client{config: config, logger: logger}

	if err := client.connect(); err != nil {
		return nil, fmt.Errorf("failed to create RabbitMQ client: %w", err)
	}
	return client, nil
}

func (c *Client) connect() error {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d",
		url.QueryEscape(c.config.User),
		url.QueryEscape(c.config.Password),
		c.config.Host,
		c.config.Port,
	)
	if c.config.VHost != "" && c.config.VHost != "/" {
		dsn += "/" + url.PathEscape(c.config.VHost)
	}

	attempts := max(c.config.RetryAttempts, 1)

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		c.conn, err = amqp.DialConfig(dsn, amqp.Config{Heartbeat: c.config.Heartbeat, Locale: "en_US"})
		if err == nil {
			break
		}

		c.logger.Warn("Failed to connect to RabbitMQ",
			slog.Any("error", err),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", attempts),
		)
		if attempt < attempts {
			time.Sleep(c.config.RetryInterval)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ after %d attempts: %w", attempts, err)
	}

	c.channel, err = c.conn.Channel()
	if err != nil {
		c.conn.Close()
		return fmt.Errorf("failed to create channel: %w", err)
	}

	if err := c.declare(); err != nil {
		c.channel.Close()
		c.conn.Close()
		return err
	}

	c.closed = c.channel.NotifyClose(make(chan *amqp.Error, 1))

	c.logger.Info("RabbitMQ client initialized",
		slog.String("exchange", c.config.ExchangeName),
		slog.String("queue", c.config.QueueName),
	)
	return nil
}

func (c *Client) declare() error {
	exchangeType := c.config.ExchangeType
	if exchangeType == "" {
		exchangeType = amqp.ExchangeTopic
	}

	if err := c.channel.ExchangeDeclare(c.config.ExchangeName, exchangeType, c.config.Durable, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	// Publishers only need the exchange.
	if c.config.QueueName == "" {
		return nil
	}

	if _, err := c.channel.QueueDeclare(c.config.QueueName, c.config.Durable, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := c.channel.QueueBind(c.config.QueueName, c.config.RoutingKey, c.config.ExchangeName, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}
	return nil
}

// PublishJSON marshals v and publishes it under routingKey, retrying with
// exponential backoff.
func (c *Client) PublishJSON(ctx context.Context, routingKey string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	retries := c.config.PublishRetries
	if retries <= 0 {
		retries = 3
	}
	delay := c.config.PublishRetryDelay
	if delay <= 0 {
		delay = 100 * time.Millisecond
	}
	mult := c.config.PublishBackoffMult
	if mult <= 0 {
		mult = 2.0
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	}

	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		ch := c.activeChannel()
		if ch == nil {
			return ErrNotConnected
		}

		lastErr = ch.PublishWithContext(ctx, c.config.ExchangeName, routingKey, false, false, msg)
		if lastErr == nil {
			c.logger.Debug("Message published to RabbitMQ",
				slog.String("routing_key", routingKey),
				slog.Int("body_size", len(body)),
				slog.Int("attempt", attempt+1),
			)
			return nil
		}

		if attempt == retries {
			break
		}

		c.logger.Warn("Failed to publish message to RabbitMQ, retrying",
			slog.Int("attempt", attempt+1),
			slog.Duration("retry_after", delay),
			slog.Any("error", lastErr),
		)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		delay = time.Duration(float64(delay) * mult)
	}

	return fmt.Errorf("failed to publish message after %d attempts: %w", retries+1, lastErr)
}

// Consume starts a manual-ack consumer on the configured queue
func (c *Client) Consume(consumerTag string) (<-chan amqp.Delivery, error) {
	ch := c.activeChannel()
	if ch == nil {
		return nil, ErrNotConnected
	}

	if c.config.PrefetchCount > 0 {
		if err := ch.Qos(c.config.PrefetchCount, 0, false); err != nil {
			return nil, fmt.Errorf("failed to set QoS: %w", err)
		}
	}

	deliveries, err := ch.Consume(c.config.QueueName, consumerTag, false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to consume messages: %w", err)
	}

	c.logger.Info("Started consuming messages from RabbitMQ",
		slog.String("queue", c.config.QueueName),
		slog.String("consumer_tag", consumerTag),
		slog.Int("prefetch_count", c.config.PrefetchCount),
	)
	return deliveries, nil
}

// IsConnected reports whether the channel is still open
func (c *Client) IsConnected() bool {
	return c.activeChannel() != nil
}

func (c *Client) activeChannel() *amqp.Channel {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.channel == nil || c.conn == nil || c.conn.IsClosed() {
		return nil
	}
	select {
	case <-c.closed:
		c.channel = nil
	default:
	}
	return c.channel
}

// Close closes the channel and the connection
func (c *Client) Close() error {
	c.logger.Info("Closing RabbitMQ connection")

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			c.logger.Warn("Failed to close RabbitMQ channel", slog.Any("error", err))
		}
		c.channel = nil
	}

	if c.conn != nil && !c.conn.IsClosed() {
		if err := c.conn.Close(); err != nil {
			return fmt.Errorf("failed to close RabbitMQ connection: %w", err)
		}
	}
	return nil
}
