package nsq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/rideflex-admin/internal/pkg/logger"
	"github.com/piresc/rideflex-admin/internal/pkg/models"
)

// publisher is the subset of *nsq.Producer used here
type publisher interface {
	Publish(topic string, body []byte) error
	Ping() error
	Stop()
}

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer publisher
}

// NewProducer creates a new NSQ producer and pings the daemon
func NewProducer(address string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &Producer{producer: producer}, nil
}

// Publish sends a JSON message to the specified topic
func (p *Producer) Publish(topic string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.producer.Publish(topic, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.Debug("Published message", logger.String("topic", topic))
	return nil
}

// CheckHealth pings the daemon
func (p *Producer) CheckHealth(ctx context.Context) error {
	return p.producer.Ping()
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}

// ActionPublisher publishes admin action outcomes to a topic
type ActionPublisher struct {
	producer *Producer
	topic    string
}

// NewActionPublisher creates a publisher for topic
func NewActionPublisher(producer *Producer, topic string) *ActionPublisher {
	return &ActionPublisher{producer: producer, topic: topic}
}

// Record publishes the event
func (a *ActionPublisher) Record(ctx context.Context, event models.ActionEvent) error {
	return a.producer.Publish(a.topic, event)
}
