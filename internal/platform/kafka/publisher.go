package kafka

import (
	"context"
	"fmt"
	"strings"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/yungbote/foodmap-backend/internal/platform/logger"
)

type Config struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
	WriteTimeout time.Duration
}

// Publisher writes keyed messages to one topic. Messages with the same key land on
// the same partition.
type Publisher struct {
	writer *kafkago.Writer
	topic  string
	log    *logger.Logger
}

func NewPublisher(cfg Config, baseLog *logger.Logger) (*Publisher, error) {
	brokers := make([]string, 0, len(cfg.Brokers))
	for _, b := range cfg.Brokers {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka: no brokers configured")
	}
	topic := strings.TrimSpace(cfg.Topic)
	if topic == "" {
		return nil, fmt.Errorf("kafka: no topic configured")
	}
	batch := cfg.BatchTimeout
	if batch <= 0 {
		batch = 10 * time.Millisecond
	}
	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		BatchTimeout:           batch,
		WriteTimeout:           writeTimeout,
		AllowAutoTopicCreation: true,
	}
	log := baseLog.With("component", "KafkaPublisher", "topic", topic)
	log.Info("Kafka publisher configured", "brokers", strings.Join(brokers, ","))
	return &Publisher{writer: w, topic: topic, log: log}, nil
}

func (p *Publisher) Topic() string { return p.topic }

func (p *Publisher) Publish(ctx context.Context, key, value []byte, headers map[string]string) error {
	msg := kafkago.Message{Key: key, Value: value, Time: time.Now().UTC()}
	for k, v := range headers {
		msg.Headers = append(msg.Headers, kafkago.Header{Key: k, Value: []byte(v)})
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka publish to %s: %w", p.topic, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
