package kafka

import (
	"aero-lite/internal/models"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/IBM/sarama"
)

type Producer interface {
	SendSimulationEvent(ctx context.Context, event models.SimulationEvent) error
	Close() error
}

type KafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
	log      *slog.Logger
}

func NewKafkaProducer(brokers []string, topic string, log *slog.Logger) (Producer, error) {
	config := sarama.NewConfig()
	config.ClientID = "aero-lite"
	config.Producer.Partitioner = sarama.NewHashPartitioner
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Info("kafka producer создан", slog.String("topic", topic), slog.Any("brokers", brokers))

	return newProducer(producer, topic, log), nil
}

func newProducer(producer sarama.SyncProducer, topic string, log *slog.Logger) *KafkaProducer {
	return &KafkaProducer{
		producer: producer,
		topic:    topic,
		log:      log,
	}
}

const (
	headerEventType    = "event-type"
	headerSimulationID = "simulation-id"
	headerSource       = "proposal-source"

	simulationEventType = "routing.simulation.completed"
)

// CorridorKey ключ партиционирования: события одного направления
// (отправитель -> получатель) попадают в одну партицию и сохраняют порядок.
func CorridorKey(event models.SimulationEvent) string {
	sender := strings.ToUpper(strings.TrimSpace(event.Sender))
	recipient := strings.ToUpper(strings.TrimSpace(event.Recipient))
	if sender == "" && recipient == "" {
		return event.SimulationID
	}
	return sender + "->" + recipient
}

func simulationMessage(topic string, event models.SimulationEvent) (*sarama.ProducerMessage, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal simulation event: %w", err)
	}
	return &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(CorridorKey(event)),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(headerEventType), Value: []byte(simulationEventType)},
			{Key: []byte(headerSimulationID), Value: []byte(event.SimulationID)},
			{Key: []byte(headerSource), Value: []byte(event.Source)},
		},
		Timestamp: event.Timestamp,
	}, nil
}

func (p *KafkaProducer) SendSimulationEvent(ctx context.Context, event models.SimulationEvent) error {
	msg, err := simulationMessage(p.topic, event)
	if err != nil {
		return err
	}
	log := p.log.With(
		slog.String("simulation_id", event.SimulationID),
		slog.String("corridor", CorridorKey(event)))

	done := make(chan error, 1)
	go func() {
		partition, offset, err := p.producer.SendMessage(msg)
		if err == nil {
			log.Debug("событие симуляции отправлено",
				slog.Int("partition", int(partition)),
				slog.Int64("offset", offset))
		}
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Error("не удалось отправить событие симуляции", slog.String("error", err.Error()))
			return fmt.Errorf("send simulation event: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Warn("отправка события симуляции отменена")
		return ctx.Err()
	}
}

func (p *KafkaProducer) Close() error {
	if p.producer == nil {
		return nil
	}
	p.log.Info("закрытие kafka producer")
	return p.producer.Close()
}

type NoOpProducer struct {
	log *slog.Logger
}

func NewNoOpProducer(log *slog.Logger) Producer {
	return &NoOpProducer{log: log}
}

func (p *NoOpProducer) SendSimulationEvent(ctx context.Context, event models.SimulationEvent) error {
	p.log.Debug("kafka отключен, событие не отправлено",
		slog.String("simulation_id", event.SimulationID))
	return nil
}

func (p *NoOpProducer) Close() error {
	return nil
}
