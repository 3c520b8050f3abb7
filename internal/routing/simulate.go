package routing

import (
	"fmt"
	"strings"
)

// Proposals результат источника предложений. Usable == false означает сбой
// источника или неразбираемый ответ, тогда используется запасной набор.
type Proposals struct {
	Routes  []RawRouteProposal
	Summary string
	Usable  bool
}

// Simulate собирает полный RouteSet: нормализованные предложения, затем собственные
// маршруты, затем выбор лучшего. Для валидного req набор никогда не пуст.
func (e *Engine) Simulate(req TransferRequest, p Proposals) (RouteSet, error) {
	req = req.WithDefaults()

	raw := p.Routes
	summary := strings.TrimSpace(p.Summary)
	if !p.Usable {
		raw = e.cfg.FallbackRoutes
		summary = e.cfg.FallbackSummary
	}
	if summary == "" {
		summary = e.cfg.DefaultSummary
	}

	routes := e.Normalize(raw, req)
	routes = append(routes, e.InjectHouseRails(req)...)

	selected, err := SelectBest(routes)
	if err != nil {
		return RouteSet{}, fmt.Errorf("routing.Simulate: %w", err)
	}

	return RouteSet{
		Routes:   selected,
		Summary:  summary,
		Fallback: !p.Usable,
	}, nil
}
