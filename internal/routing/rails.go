package routing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InjectHouseRails строит собственные маршруты. Зависит только от req и конфигурации.
// Порядок: эталонные маршруты конкурентов, гибридный маршрут, флагманский маршрут.
func (e *Engine) InjectHouseRails(req TransferRequest) []NormalizedRoute {
	rails := e.cfg.HouseRails
	routes := make([]NormalizedRoute, 0, len(rails.Baselines)+2)

	for _, b := range rails.Baselines {
		routes = append(routes, e.baselineRail(b, req))
	}
	if rails.Hybrid.Enabled {
		routes = append(routes, e.hybridRail(req))
	}
	routes = append(routes, e.flagshipRail(req))
	return routes
}

func (e *Engine) baselineRail(b BaselineRail, req TransferRequest) NormalizedRoute {
	fee := percentOf(dec(req.AmountUsd), dec(b.Percent)).Round(2)
	category := b.Category
	if category == "" {
		category = CategoryOther
	}
	r := NormalizedRoute{
		Name:        b.Name,
		Category:    category,
		FeeUsd:      money(fee),
		FeePercent:  money(clamp(dec(b.Percent), decimal.Zero, dec(e.cfg.MaxFeePercent))),
		IsHouseRail: true,
		Speed:       b.Speed,
		Notes:       b.Notes,
	}
	if r.Speed == "" {
		r.Speed = e.cfg.DefaultSpeed
	}
	r.TotalEstimatedCostUsd = totalCost(r)
	return r
}

func (e *Engine) flagshipRail(req TransferRequest) NormalizedRoute {
	f := e.cfg.HouseRails.Flagship
	fee := percentOf(dec(req.AmountUsd), dec(f.RatePercent)).Round(2)
	notes := fmt.Sprintf("%s %.2f%% fee", f.Notes, f.RatePercent)
	if req.AmountUsd <= f.SmallTransferThresholdUsd && f.SmallTransferBufferUsd > 0 {
		fee = fee.Add(dec(f.SmallTransferBufferUsd))
		notes += fmt.Sprintf(" plus a $%.2f buffer for transfers ≤ $%.0f", f.SmallTransferBufferUsd, f.SmallTransferThresholdUsd)
	}
	notes += "."

	return e.houseRail(NormalizedRoute{
		Name:     f.Name,
		Category: CategoryHouseRail,
		Speed:    f.Speed,
		Notes:    notes,
	}, fee, req)
}

func (e *Engine) hybridRail(req TransferRequest) NormalizedRoute {
	h := e.cfg.HouseRails.Hybrid
	model := e.cfg.Models[CategoryHouseRail]
	quote, _ := model.quote(req.AmountUsd)

	return e.houseRail(NormalizedRoute{
		Name:     h.Name,
		Category: CategoryHouseRail,
		Speed:    h.Speed,
		Notes:    joinNotes(h.Notes, quote.detail),
	}, quote.fee, req)
}

// houseRail добавляет конвертацию и сетевую маршрутизацию к базовой комиссии
// собственного маршрута и считает итоговую стоимость
func (e *Engine) houseRail(r NormalizedRoute, baseFee decimal.Decimal, req TransferRequest) NormalizedRoute {
	rails := e.cfg.HouseRails
	amount := dec(req.AmountUsd)
	fee := baseFee

	if req.FundingSource.NeedsConversion() && !req.AssumeAlreadyDigital {
		pct := rails.Conversion.Percent(req.AssetPreference)
		conversion := percentOf(amount, dec(pct)).Round(2)
		if conversion.IsPositive() {
			fee = fee.Add(conversion)
			r.ConversionFeeUsd = money(conversion)
			r.Notes = joinNotes(r.Notes, fmt.Sprintf("Includes ~%.2f%% %s conversion for %s funding.",
				pct, assetLabel(req.AssetPreference), req.FundingSource))
		}
	}

	hidden := decimal.Zero
	if req.RecipientType == RecipientBusiness || req.RecipientType == RecipientPlatform {
		network := percentOf(amount, dec(rails.Network.Percent)).Round(2)
		r.NetworkRoutingCostUsd = money(network)
		if rails.Network.Visible {
			fee = fee.Add(network)
		} else {
			hidden = network
		}
	}

	fee = decimal.Max(decimal.Zero, fee)
	if r.Speed == "" {
		r.Speed = e.cfg.DefaultSpeed
	}
	r.FeeUsd = money(fee)
	r.FeePercent = money(clamp(effectivePercent(fee, amount), decimal.Zero, dec(e.cfg.MaxFeePercent)))
	r.IsHouseRail = true
	r.IsRecommended = false
	r.TotalEstimatedCostUsd = money(dec(totalCost(r)).Add(hidden))
	return r
}

func assetLabel(asset string) string {
	if asset == "" {
		return "digital asset"
	}
	return asset
}
