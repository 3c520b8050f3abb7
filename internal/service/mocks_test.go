package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"aero-lite/internal/models"
	"aero-lite/internal/routing"
)

type MockProposalSource struct {
	mock.Mock
}

func (m *MockProposalSource) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockProposalSource) ProposeRoutes(ctx context.Context, req routing.TransferRequest) (routing.Proposals, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(routing.Proposals), args.Error(1)
}

type MockReceiptExtractor struct {
	mock.Mock
}

func (m *MockReceiptExtractor) ExtractReceipt(ctx context.Context, image []byte, mimeType string) (map[string]any, error) {
	args := m.Called(ctx, image, mimeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

type MockKafkaProducer struct {
	mock.Mock
}

func (m *MockKafkaProducer) SendSimulationEvent(ctx context.Context, event models.SimulationEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockKafkaProducer) Close() error {
	args := m.Called()
	return args.Error(0)
}
