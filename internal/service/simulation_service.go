package service

import (
	"aero-lite/internal/breaker"
	"aero-lite/internal/custom_err"
	"aero-lite/internal/kafka"
	"aero-lite/internal/metrics"
	"aero-lite/internal/models"
	"aero-lite/internal/routing"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ProposalSource внешний недоверенный источник предложений маршрутов
type ProposalSource interface {
	Enabled() bool
	ProposeRoutes(ctx context.Context, req routing.TransferRequest) (routing.Proposals, error)
}

type Simulation interface {
	Simulate(ctx context.Context, req models.RouteSimulationRequest) (*models.RouteSimulationResponse, error)
}

const (
	eventWorkers   = 5
	eventQueueSize = 100
)

type SimulationService struct {
	engine          *routing.Engine
	source          ProposalSource
	breaker         *breaker.Breaker
	kafkaProducer   kafka.Producer
	proposalTimeout time.Duration
	log             *slog.Logger

	eventQueue chan models.SimulationEvent
	wg         sync.WaitGroup
	stopCh     chan struct{}
	stopOnce   sync.Once
}

func NewSimulationService(
	engine *routing.Engine,
	source ProposalSource,
	br *breaker.Breaker,
	kafkaProducer kafka.Producer,
	proposalTimeout time.Duration,
	log *slog.Logger,
) *SimulationService {
	svc := &SimulationService{
		engine:          engine,
		source:          source,
		breaker:         br,
		kafkaProducer:   kafkaProducer,
		proposalTimeout: proposalTimeout,
		eventQueue:      make(chan models.SimulationEvent, eventQueueSize),
		stopCh:          make(chan struct{}),
		log:             log,
	}

	for i := 0; i < eventWorkers; i++ {
		svc.wg.Add(1)
		go svc.kafkaWorker(i)
	}

	return svc
}

func (s *SimulationService) kafkaWorker(id int) {
	defer s.wg.Done()
	s.log.Info("kafka worker started", slog.Int("worker_id", id))

	for {
		select {
		case event := <-s.eventQueue:
			s.send(id, event)

		case <-s.stopCh:
			// дослать то, что уже лежит в очереди
			for {
				select {
				case event := <-s.eventQueue:
					s.send(id, event)
				default:
					s.log.Info("kafka worker stopping", slog.Int("worker_id", id))
					return
				}
			}
		}
	}
}

func (s *SimulationService) send(workerID int, event models.SimulationEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.kafkaProducer.SendSimulationEvent(ctx, event); err != nil {
		s.log.Error("kafka send failed",
			slog.Int("worker_id", workerID),
			slog.String("simulation_id", event.SimulationID),
			slog.String("error", err.Error()))
		return
	}
	s.log.Debug("event sent to kafka",
		slog.Int("worker_id", workerID),
		slog.String("simulation_id", event.SimulationID))
}

func (s *SimulationService) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down simulation service")

	s.stopOnce.Do(func() { close(s.stopCh) })

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.log.Info("all kafka workers stopped")
		return nil
	case <-ctx.Done():
		s.log.Warn("shutdown timeout exceeded")
		return ctx.Err()
	}
}

func validateTransfer(req routing.TransferRequest) error {
	if !(req.AmountUsd > 0) {
		return custom_err.ErrInvalidAmount
	}
	if req.Sender == "" || req.Recipient == "" {
		return custom_err.ErrInvalidInput
	}
	if req.FundingSource != "" && !req.FundingSource.IsValid() {
		return custom_err.ErrInvalidFundingSource
	}
	if req.RecipientType != "" && !req.RecipientType.IsValid() {
		return custom_err.ErrInvalidRecipientType
	}
	return nil
}

func (s *SimulationService) Simulate(ctx context.Context, dto models.RouteSimulationRequest) (*models.RouteSimulationResponse, error) {
	const op = "service.Simulate"

	req := dto.ToTransferRequest()
	if err := validateTransfer(req); err != nil {
		return nil, err
	}
	req = req.WithDefaults()

	proposals := s.fetchProposals(ctx, req)

	set, err := s.engine.Simulate(req, proposals)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	source := metrics.SourceAI
	if set.Fallback {
		source = metrics.SourceFallback
	}
	metrics.SimulationsTotal.WithLabelValues(source).Inc()

	resp := &models.RouteSimulationResponse{
		SimulationID: uuid.NewString(),
		Routes:       set.Routes,
		Summary:      set.Summary,
		Source:       source,
	}

	best, _ := set.Recommended()
	s.log.Info("симуляция маршрутов",
		slog.String("simulation_id", resp.SimulationID),
		slog.String("sender", req.Sender),
		slog.String("recipient", req.Recipient),
		slog.Float64("amount_usd", req.AmountUsd),
		slog.String("source", source),
		slog.Int("routes", len(set.Routes)),
		slog.String("recommended", best.Name))

	s.enqueue(models.SimulationEvent{
		SimulationID:        resp.SimulationID,
		AmountUsd:           req.AmountUsd,
		Sender:              req.Sender,
		Recipient:           req.Recipient,
		FundingSource:       string(req.FundingSource),
		RecipientType:       string(req.RecipientType),
		Source:              source,
		RouteCount:          len(set.Routes),
		RecommendedRoute:    best.Name,
		RecommendedTotalUsd: best.TotalEstimatedCostUsd,
		Timestamp:           time.Now().UTC(),
	})

	return resp, nil
}

// fetchProposals вызывает источник под таймаутом и размыкателем.
// Любой сбой превращается в Proposals{Usable: false}, то есть в запасной набор.
func (s *SimulationService) fetchProposals(ctx context.Context, req routing.TransferRequest) routing.Proposals {
	if s.source == nil || !s.source.Enabled() {
		metrics.ProposalFailuresTotal.WithLabelValues("disabled").Inc()
		s.log.Debug("источник предложений отключен, используем запасные маршруты")
		return routing.Proposals{}
	}

	ctx, cancel := context.WithTimeout(ctx, s.proposalTimeout)
	defer cancel()

	start := time.Now()
	proposals, err := breaker.Execute(s.breaker, func() (routing.Proposals, error) {
		return s.source.ProposeRoutes(ctx, req)
	})
	metrics.ProposalSourceDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		reason := failureReason(err)
		metrics.ProposalFailuresTotal.WithLabelValues(reason).Inc()
		s.log.Warn("источник предложений недоступен, используем запасные маршруты",
			slog.String("reason", reason),
			slog.String("error", err.Error()))
		return routing.Proposals{}
	}
	return proposals
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, breaker.ErrOpen):
		return "breaker_open"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, custom_err.ErrProposalParseFailure):
		return "parse_error"
	case errors.Is(err, custom_err.ErrProposalSourceDisabled):
		return "disabled"
	default:
		return "unavailable"
	}
}

func (s *SimulationService) enqueue(event models.SimulationEvent) {
	select {
	case s.eventQueue <- event:
		s.log.Debug("событие симуляции добавлено в очередь", slog.String("simulation_id", event.SimulationID))
	default:
		metrics.SimulationEventsDropped.Inc()
		s.log.Error("очередь событий переполнена, событие отброшено",
			slog.String("simulation_id", event.SimulationID))
	}
}
