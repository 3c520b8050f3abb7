package routing

import (
	"math"

	"aero-lite/internal/custom_err"
)

// SelectBest отмечает маршрут с минимальной TotalEstimatedCostUsd.
// При равенстве выигрывает первый. Возвращает новый срез, вход не меняется.
func SelectBest(routes []NormalizedRoute) ([]NormalizedRoute, error) {
	if len(routes) == 0 {
		return nil, custom_err.ErrEmptyRouteSet
	}

	best := -1
	lowest := math.Inf(1)
	for i, r := range routes {
		if r.TotalEstimatedCostUsd < lowest {
			lowest = r.TotalEstimatedCostUsd
			best = i
		}
	}
	if best < 0 {
		best = 0
	}

	out := make([]NormalizedRoute, len(routes))
	copy(out, routes)
	for i := range out {
		out[i].IsRecommended = i == best
	}
	return out, nil
}
