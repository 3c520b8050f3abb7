package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aero-lite/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestKafkaProducer_SendSimulationEvent(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	event := models.SimulationEvent{
		SimulationID:     "sim-1",
		AmountUsd:        1000,
		Sender:           "United States",
		Recipient:        "Philippines",
		Source:           "ai",
		RouteCount:       6,
		RecommendedRoute: "Loadit Money Service (LMS Rail)",
		Timestamp:        time.Unix(0, 0).UTC(),
	}

	sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		assert.Equal(t, "aero.simulations", msg.Topic)
		key, err := msg.Key.Encode()
		require.NoError(t, err)
		assert.Equal(t, "UNITED STATES->PHILIPPINES", string(key))

		headers := map[string]string{}
		for _, h := range msg.Headers {
			headers[string(h.Key)] = string(h.Value)
		}
		assert.Equal(t, map[string]string{
			"event-type":      "routing.simulation.completed",
			"simulation-id":   "sim-1",
			"proposal-source": "ai",
		}, headers)

		value, err := msg.Value.Encode()
		require.NoError(t, err)
		var decoded models.SimulationEvent
		require.NoError(t, json.Unmarshal(value, &decoded))
		assert.Equal(t, event, decoded)
		return nil
	})

	p := newProducer(sp, "aero.simulations", testLogger())

	err := p.SendSimulationEvent(context.Background(), event)

	assert.NoError(t, err)
	assert.NoError(t, p.Close())
}

func TestKafkaProducer_SendFails(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	brokerErr := errors.New("broker down")
	sp.ExpectSendMessageAndFail(brokerErr)

	p := newProducer(sp, "aero.simulations", testLogger())

	err := p.SendSimulationEvent(context.Background(), models.SimulationEvent{SimulationID: "sim-2"})

	assert.ErrorIs(t, err, brokerErr)
	assert.NoError(t, p.Close())
}

func TestNoOpProducer(t *testing.T) {
	p := NewNoOpProducer(testLogger())

	assert.NoError(t, p.SendSimulationEvent(context.Background(), models.SimulationEvent{SimulationID: "x"}))
	assert.NoError(t, p.Close())
}

func TestCorridorKey(t *testing.T) {
	tests := []struct {
		name  string
		event models.SimulationEvent
		want  string
	}{
		{"normalized corridor", models.SimulationEvent{Sender: " us ", Recipient: "mx"}, "US->MX"},
		{"same corridor regardless of case", models.SimulationEvent{Sender: "US", Recipient: "MX"}, "US->MX"},
		{"no corridor falls back to id", models.SimulationEvent{SimulationID: "sim-9"}, "sim-9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CorridorKey(tt.event))
		})
	}
}
