package routing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Engine нормализатор, инжектор собственных маршрутов и выбор лучшего маршрута.
// Состояния между вызовами нет, один Engine можно использовать из разных горутин.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config возвращает копию конфигурации
func (e *Engine) Config() Config {
	return e.cfg
}

// ConversionPercent ставка конвертации фиата для актива
func (e *Engine) ConversionPercent(asset string) float64 {
	return e.cfg.HouseRails.Conversion.Percent(strings.ToUpper(strings.TrimSpace(asset)))
}

// Normalize приводит недоверенные предложения к NormalizedRoute.
// Обрабатываются не более MaxProposals первых предложений.
func (e *Engine) Normalize(raw []RawRouteProposal, req TransferRequest) []NormalizedRoute {
	if len(raw) > e.cfg.MaxProposals {
		raw = raw[:e.cfg.MaxProposals]
	}

	routes := make([]NormalizedRoute, 0, len(raw))
	for _, r := range raw {
		routes = append(routes, e.normalizeOne(coerceProposal(r), req))
	}
	return routes
}

func (e *Engine) normalizeOne(p proposal, req TransferRequest) NormalizedRoute {
	maxPct := dec(e.cfg.MaxFeePercent)
	feeUsd := decimal.Max(decimal.Zero, dec(p.feeUsd))
	feePct := clamp(dec(p.feePercent), decimal.Zero, maxPct)
	p.feeUsd = money(feeUsd)
	p.feePercent = money(feePct)

	category := e.classify(p)
	model := e.cfg.Models[category]

	route := NormalizedRoute{
		Name:     p.name,
		Category: category,
		Speed:    p.speed,
		Notes:    p.notes,
	}

	quote, overridden := model.quote(req.AmountUsd)
	if overridden {
		feeUsd = decimal.Max(decimal.Zero, quote.fee)
		feePct = clamp(quote.percent, decimal.Zero, maxPct)
		route.OffRampCostEstimate = quote.offRamp
	}

	if model.ForceSpeed && model.Speed != "" {
		route.Speed = model.Speed
	}
	if route.Speed == "" {
		route.Speed = model.Speed
	}
	if route.Speed == "" {
		route.Speed = e.cfg.DefaultSpeed
	}

	if route.Notes == "" {
		route.Notes = model.Notes
	}
	if quote.detail != "" {
		route.Notes = joinNotes(route.Notes, quote.detail)
	}
	if route.Notes == "" && overridden {
		route.Notes = p.quotedText()
	}

	route.FeeUsd = money(feeUsd)
	route.FeePercent = money(feePct)
	route.TotalEstimatedCostUsd = totalCost(route)
	route.IsHouseRail = false
	route.IsRecommended = false
	return route
}

// classify: флаг isLoadit, явный тип, затем ключевые слова в имени, затем other.
// Флаг isLoadit сильнее любого типа.
func (e *Engine) classify(p proposal) Category {
	if p.isLoadit {
		return CategoryHouseRail
	}
	if c, ok := e.cfg.TypeAliases[p.rawType]; ok {
		return c
	}
	name := strings.ToLower(p.name)
	for _, rule := range e.cfg.Keywords {
		if strings.Contains(name, strings.ToLower(rule.Keyword)) {
			return rule.Category
		}
	}
	return CategoryOther
}

func totalCost(r NormalizedRoute) float64 {
	total := dec(r.FeeUsd)
	if r.OffRampCostEstimate != nil {
		total = total.Add(dec(r.OffRampCostEstimate.Mid))
	}
	return money(total)
}

func joinNotes(a, b string) string {
	if a == "" {
		return b
	}
	return a + " " + b
}
