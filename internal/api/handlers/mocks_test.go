package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"aero-lite/internal/models"
)

type MockSimulationService struct {
	mock.Mock
}

func (m *MockSimulationService) Simulate(ctx context.Context, req models.RouteSimulationRequest) (*models.RouteSimulationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RouteSimulationResponse), args.Error(1)
}

type MockReceiptService struct {
	mock.Mock
}

func (m *MockReceiptService) Analyze(ctx context.Context, req models.ReceiptAnalysisRequest) (*models.ReceiptAnalysisResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReceiptAnalysisResponse), args.Error(1)
}
