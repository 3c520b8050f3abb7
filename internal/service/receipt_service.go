package service

import (
	"aero-lite/internal/custom_err"
	"aero-lite/internal/metrics"
	"aero-lite/internal/models"
	"aero-lite/internal/routing"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	maxReceiptFeePercent = 80.0
	defaultReceiptNote   = "Estimated total fee based only on visible fee lines. Hidden FX markups are not included."
)

// ReceiptExtractor читает суммы и комиссии с изображения чека
type ReceiptExtractor interface {
	ExtractReceipt(ctx context.Context, image []byte, mimeType string) (map[string]any, error)
}

type Receipts interface {
	Analyze(ctx context.Context, req models.ReceiptAnalysisRequest) (*models.ReceiptAnalysisResponse, error)
}

type ReceiptService struct {
	engine    *routing.Engine
	extractor ReceiptExtractor
	timeout   time.Duration
	log       *slog.Logger
}

func NewReceiptService(engine *routing.Engine, extractor ReceiptExtractor, timeout time.Duration, log *slog.Logger) *ReceiptService {
	return &ReceiptService{
		engine:    engine,
		extractor: extractor,
		timeout:   timeout,
		log:       log,
	}
}

func (s *ReceiptService) Analyze(ctx context.Context, req models.ReceiptAnalysisRequest) (*models.ReceiptAnalysisResponse, error) {
	const op = "service.Analyze"

	if len(req.Image) == 0 {
		metrics.ReceiptsAnalyzedTotal.WithLabelValues("no_image").Inc()
		return nil, custom_err.ErrNoImage
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	parsed, err := s.extractor.ExtractReceipt(ctx, req.Image, req.MimeType)
	if err != nil {
		outcome := "unavailable"
		if errors.Is(err, custom_err.ErrReceiptParseFailure) {
			outcome = "parse_failure"
		}
		metrics.ReceiptsAnalyzedTotal.WithLabelValues(outcome).Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := s.summarize(parsed, req)
	metrics.ReceiptsAnalyzedTotal.WithLabelValues("ok").Inc()

	s.log.Info("чек проанализирован",
		slog.String("receipt_id", resp.ReceiptID),
		slog.String("asset", resp.Asset),
		slog.Float64("amount_usd", resp.AmountUsd),
		slog.Float64("total_fee", resp.TotalFee),
		slog.Float64("fee_percent", resp.FeePercent))

	return resp, nil
}

// summarize считает итог только по видимым строкам комиссий и сравнивает с Loadit
func (s *ReceiptService) summarize(parsed map[string]any, req models.ReceiptAnalysisRequest) *models.ReceiptAnalysisResponse {
	asset := strings.ToUpper(strings.TrimSpace(req.Asset))
	if asset == "" {
		asset = "UNKNOWN"
	}

	amountPaid := routing.CoerceNumber(parsed["amount_paid_usd"])
	feeUsd := routing.CoerceNumber(parsed["explicit_fee_usd"])
	feePercent := routing.CoerceNumber(parsed["explicit_fee_percent"])
	notes := routing.CoerceString(parsed["notes"])

	amount := req.AmountUsd
	if amountPaid > 0 {
		amount = amountPaid
	}
	if amount < 0 {
		amount = 0
	}

	if feeUsd > 0 && feePercent == 0 && amount > 0 {
		feePercent = feeUsd / amount * 100
	}
	feeUsd = max(feeUsd, 0)
	feePercent = min(max(feePercent, 0), maxReceiptFeePercent)

	conversion := s.engine.Config().HouseRails.Conversion
	loaditPercent := conversion.DefaultPercent
	loaditFee := 0.0
	if amount > 0 {
		loaditPercent = s.engine.ConversionPercent(asset)
		loaditFee = amount * loaditPercent / 100
	}

	breakdown := make([]string, 0)
	lines, _ := parsed["fee_lines"].([]any)
	for _, l := range lines {
		line, _ := l.(map[string]any)
		label := routing.CoerceString(line["label"])
		if label == "" {
			label = "Fee"
		}
		breakdown = append(breakdown, fmt.Sprintf("%s (~$%.2f)", label, routing.Money(routing.CoerceNumber(line["amount_usd"]))))
	}
	if len(lines) == 0 && feeUsd > 0 {
		breakdown = append(breakdown, fmt.Sprintf("Fees (~$%.2f)", routing.Money(feeUsd)))
	}

	if notes == "" {
		notes = defaultReceiptNote
	}

	return &models.ReceiptAnalysisResponse{
		ReceiptID:        uuid.NewString(),
		Asset:            asset,
		AmountUsd:        routing.Money(amount),
		TotalFee:         routing.Money(feeUsd),
		FeePercent:       routing.Money(feePercent),
		LoaditMinPercent: loaditPercent,
		LoaditMaxPercent: loaditPercent,
		LoaditMinFee:     routing.Money(loaditFee),
		LoaditMaxFee:     routing.Money(loaditFee),
		Breakdown:        breakdown,
		Comment:          notes,
		RawExtraction:    parsed,
	}
}
