package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ChangesQueue receives one message per successful write
const ChangesQueue = "groomy.changes"

const (
	// DefaultEventBuffer is how many events wait for the broker before new ones are dropped
	DefaultEventBuffer = 256

	dialTimeout    = 5 * time.Second
	publishTimeout = 5 * time.Second
	maxBackoff     = 30 * time.Second
)

// ErrEventBufferFull is returned by Publish while the broker is behind or unreachable
var ErrEventBufferFull = errors.New("event buffer full")

// AMQPPublisher publishes change events to a durable RabbitMQ queue.
// Publish only queues the event; a background sender started with Start
// owns the broker connection and reconnects when it drops.
type AMQPPublisher struct {
	url         string
	queue       string
	events      chan models.ChangeEvent
	dialTimeout time.Duration
}

// NewAMQPPublisher returns a publisher for the broker at url. Nothing is
// sent until Start is called.
func NewAMQPPublisher(url string) *AMQPPublisher {
	return &AMQPPublisher{
		url:         url,
		queue:       ChangesQueue,
		events:      make(chan models.ChangeEvent, DefaultEventBuffer),
		dialTimeout: dialTimeout,
	}
}

// Publish queues event without waiting on the broker
func (p *AMQPPublisher) Publish(ctx context.Context, event models.ChangeEvent) error {
	select {
	case p.events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrEventBufferFull
	}
}

// Start runs the sender until ctx is cancelled
func (p *AMQPPublisher) Start(ctx context.Context) {
	go p.run(ctx)
}

func (p *AMQPPublisher) run(ctx context.Context) {
	backoff := time.Second
	for {
		conn, ch, err := p.connect()
		if err != nil {
			log.Printf("rabbitmq: connect failed: %v; retrying in %s", err, backoff)
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			if backoff < maxBackoff {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = p.drain(ctx, ch)
		_ = ch.Close()
		_ = conn.Close()
		if err == nil {
			return
		}
		log.Printf("rabbitmq: sender stopped: %v; reconnecting", err)
	}
}

// connect dials with a bounded handshake and declares the queue
func (p *AMQPPublisher) connect() (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(p.dialTimeout),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("rabbitmq dial failed: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq channel open failed: %w", err)
	}

	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq queue declare failed: %w", err)
	}
	return conn, ch, nil
}

// drain sends queued events until ctx ends (nil) or the channel fails
func (p *AMQPPublisher) drain(ctx context.Context, ch *amqp.Channel) error {
	closed := ch.NotifyClose(make(chan *amqp.Error, 1))
	for {
		select {
		case <-ctx.Done():
			return nil
		case amqpErr := <-closed:
			return fmt.Errorf("channel closed: %v", amqpErr)
		case event := <-p.events:
			if err := p.send(ctx, ch, event); err != nil {
				log.Printf("rabbitmq: dropped %s %s event for %d: %v", event.Entity, event.Action, event.ID, err)
				return err
			}
		}
	}
}

func (p *AMQPPublisher) send(ctx context.Context, ch *amqp.Channel, event models.ChangeEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         event.Entity + "." + event.Action,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("rabbitmq publish failed: %w", err)
	}
	return nil
}

// LogPublisher writes events to the log instead of a broker
type LogPublisher struct{}

// Publish logs event and never fails
func (LogPublisher) Publish(_ context.Context, event models.ChangeEvent) error {
	log.Printf("event: %s %s id=%d", event.Entity, event.Action, event.ID)
	return nil
}
