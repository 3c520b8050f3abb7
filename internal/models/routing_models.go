package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"aero-lite/internal/routing"
)

// Amount сумма, которую клиент может прислать числом или строкой ("250.5").
// Нечисловая строка и null дают 0.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch v.(type) {
	case nil, float64, string:
		*a = Amount(routing.CoerceNumber(v))
		return nil
	default:
		return fmt.Errorf("amountUsd: unsupported JSON type %T", v)
	}
}

// RouteSimulationRequest запрос на симуляцию маршрутов.
// from/to старые имена полей sender/recipient.
type RouteSimulationRequest struct {
	Sender               string `json:"sender" example:"United States"`
	Recipient            string `json:"recipient" example:"Philippines"`
	From                 string `json:"from,omitempty" swaggerignore:"true"`
	To                   string `json:"to,omitempty" swaggerignore:"true"`
	AmountUsd            Amount `json:"amountUsd" swaggertype:"number" example:"1000"`
	AssetPreference      string `json:"assetPreference,omitempty" example:"USDC"`
	FundingSource        string `json:"fundingSource,omitempty" enums:"cash,card,digital"`
	RecipientType        string `json:"recipientType,omitempty" enums:"personal,business,platform"`
	AssumeAlreadyDigital bool   `json:"assumeAlreadyDigital,omitempty"`
}

// ToTransferRequest переводит DTO в запрос движка. Валидация выполняется в сервисе.
func (r RouteSimulationRequest) ToTransferRequest() routing.TransferRequest {
	sender := strings.TrimSpace(r.Sender)
	if sender == "" {
		sender = strings.TrimSpace(r.From)
	}
	recipient := strings.TrimSpace(r.Recipient)
	if recipient == "" {
		recipient = strings.TrimSpace(r.To)
	}
	return routing.TransferRequest{
		AmountUsd:            float64(r.AmountUsd),
		Sender:               sender,
		Recipient:            recipient,
		AssetPreference:      r.AssetPreference,
		FundingSource:        routing.FundingSource(strings.ToLower(strings.TrimSpace(r.FundingSource))),
		RecipientType:        routing.RecipientType(strings.ToLower(strings.TrimSpace(r.RecipientType))),
		AssumeAlreadyDigital: r.AssumeAlreadyDigital,
	}
}

// RouteSimulationResponse ответ симуляции
type RouteSimulationResponse struct {
	SimulationID string                    `json:"simulationId"`
	Routes       []routing.NormalizedRoute `json:"routes"`
	Summary      string                    `json:"summary"`
	Source       string                    `json:"source" enums:"ai,fallback"`
}

type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
}
