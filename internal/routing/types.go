package routing

import "strings"

// Category группа маршрута, определяет модель комиссии
type Category string

const (
	CategoryBank       Category = "bank"
	CategoryRemittance Category = "remittance"
	CategoryExchange   Category = "exchange"
	CategoryPeerToPeer Category = "peer_to_peer"
	CategoryHouseRail  Category = "house_rail"
	CategoryOther      Category = "other"
)

type FundingSource string

const (
	FundingCash    FundingSource = "cash"
	FundingCard    FundingSource = "card"
	FundingDigital FundingSource = "digital"
)

// IsValid проверяет источник средств
func (f FundingSource) IsValid() bool {
	return f == FundingCash || f == FundingCard || f == FundingDigital
}

// NeedsConversion true для фиатных источников, которые нужно перевести в цифровую форму
func (f FundingSource) NeedsConversion() bool {
	return f == FundingCash || f == FundingCard
}

type RecipientType string

const (
	RecipientPersonal RecipientType = "personal"
	RecipientBusiness RecipientType = "business"
	RecipientPlatform RecipientType = "platform"
)

func (r RecipientType) IsValid() bool {
	return r == RecipientPersonal || r == RecipientBusiness || r == RecipientPlatform
}

// TransferRequest контекст одной симуляции. Валидируется до вызова движка.
type TransferRequest struct {
	AmountUsd            float64
	Sender               string
	Recipient            string
	AssetPreference      string
	FundingSource        FundingSource
	RecipientType        RecipientType
	AssumeAlreadyDigital bool
}

// WithDefaults заполняет необязательные поля значениями по умолчанию
func (r TransferRequest) WithDefaults() TransferRequest {
	if r.FundingSource == "" {
		r.FundingSource = FundingDigital
	}
	if r.RecipientType == "" {
		r.RecipientType = RecipientPersonal
	}
	r.AssetPreference = strings.ToUpper(strings.TrimSpace(r.AssetPreference))
	return r
}

// OffRampEstimate стоимость вывода цифрового актива обратно в местную валюту
type OffRampEstimate struct {
	Low  float64 `json:"low"`
	Mid  float64 `json:"mid"`
	High float64 `json:"high"`
}

// NormalizedRoute маршрут, прошедший нормализацию или добавленный инжектором
type NormalizedRoute struct {
	Name                  string           `json:"name"`
	Category              Category         `json:"category"`
	FeeUsd                float64          `json:"feeUsd"`
	FeePercent            float64          `json:"feePercent"`
	IsHouseRail           bool             `json:"isHouseRail"`
	IsRecommended         bool             `json:"isRecommended"`
	Speed                 string           `json:"speed"`
	Notes                 string           `json:"notes"`
	OffRampCostEstimate   *OffRampEstimate `json:"offRampCostEstimate,omitempty"`
	ConversionFeeUsd      float64          `json:"conversionFeeUsd,omitempty"`
	NetworkRoutingCostUsd float64          `json:"networkRoutingCostUsd,omitempty"`
	TotalEstimatedCostUsd float64          `json:"totalEstimatedCostUsd"`
}

// RouteSet упорядоченный набор маршрутов одной симуляции
type RouteSet struct {
	Routes   []NormalizedRoute
	Summary  string
	Fallback bool
}

// Recommended возвращает рекомендованный маршрут
func (s RouteSet) Recommended() (NormalizedRoute, bool) {
	for _, r := range s.Routes {
		if r.IsRecommended {
			return r, true
		}
	}
	return NormalizedRoute{}, false
}
