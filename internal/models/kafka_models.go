package models

import (
	"time"
)

// событие о выполненной симуляции маршрутов
type SimulationEvent struct {
	SimulationID        string    `json:"simulation_id"`         // ID симуляции
	AmountUsd           float64   `json:"amount_usd"`            // Сумма перевода
	Sender              string    `json:"sender"`                // Страна/регион отправителя
	Recipient           string    `json:"recipient"`             // Страна/регион получателя
	FundingSource       string    `json:"funding_source"`        // cash | card | digital
	RecipientType       string    `json:"recipient_type"`        // personal | business | platform
	Source              string    `json:"source"`                // ai | fallback
	RouteCount          int       `json:"route_count"`           // Количество маршрутов
	RecommendedRoute    string    `json:"recommended_route"`     // Рекомендованный маршрут
	RecommendedTotalUsd float64   `json:"recommended_total_usd"` // Его полная стоимость
	Timestamp           time.Time `json:"timestamp"`             // Время симуляции
}
