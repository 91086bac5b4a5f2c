package queue

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Queue names for booking lifecycle events.
const (
	QueueBookingCancelled = "booking.cancelled"
	QueuePaymentInitiated = "booking.payment_initiated"
)

// Publisher sends lifecycle events to RabbitMQ.  Publishing is strictly
// best effort: errors are logged and returned so callers can ignore
// failures without interrupting the main request flow, and a Publisher
// built without a broker URL silently drops every event.
type Publisher struct {
	url string
}

// NewPublisher builds a Publisher from the RABBITMQ_URL (or AMQP_URL)
// environment variable.  When neither is set the publisher is disabled.
func NewPublisher() *Publisher {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		url = os.Getenv("AMQP_URL")
	}
	return &Publisher{url: url}
}

// Enabled reports whether a broker is configured.
func (p *Publisher) Enabled() bool { return p != nil && p.url != "" }

// BookingCancelled publishes a BookingCancelledEvent.
func (p *Publisher) BookingCancelled(ctx context.Context, bookingID int64) error {
	return p.publish(ctx, QueueBookingCancelled, BookingCancelledEvent{
		EventID:     uuid.NewString(),
		BookingID:   bookingID,
		CancelledAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// PaymentInitiated publishes a PaymentInitiatedEvent.
func (p *Publisher) PaymentInitiated(ctx context.Context, bookingID int64, sessionURL string) error {
	return p.publish(ctx, QueuePaymentInitiated, PaymentInitiatedEvent{
		EventID:     uuid.NewString(),
		BookingID:   bookingID,
		SessionURL:  sessionURL,
		InitiatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// publish dials the broker, declares the queue (idempotent, durable) and
// publishes one persistent JSON message.  It attempts to be robust and
// to never panic; any error is logged and returned so the caller can
// choose to ignore it.
func (p *Publisher) publish(ctx context.Context, queueName string, event any) error {
	if !p.Enabled() {
		return nil
	}
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}
