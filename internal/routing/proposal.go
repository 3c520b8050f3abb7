package routing

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RawRouteProposal недоверенная запись от источника предложений.
// Поля сознательно нетипизированы, приводятся только в coerceProposal.
type RawRouteProposal struct {
	Name                    any `json:"name"`
	Type                    any `json:"type"`
	IsLoadit                any `json:"isLoadit"`
	IsRecommendedByProposer any `json:"isBest"`
	FeeUsd                  any `json:"feeUsd"`
	FeePercent              any `json:"feePercent"`
	Speed                   any `json:"speed"`
	Notes                   any `json:"notes"`
}

// DecodeProposals разбирает JSON-значение поля routes. Не массив даёт пустой
// список, элемент, который не является объектом, даёт пустое предложение.
func DecodeProposals(raw json.RawMessage) []RawRouteProposal {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]RawRouteProposal, 0, len(items))
	for _, item := range items {
		var p RawRouteProposal
		if err := json.Unmarshal(item, &p); err != nil {
			p = RawRouteProposal{}
		}
		out = append(out, p)
	}
	return out
}

// proposal приведённое предложение, дальше границы недоверенные значения не идут
type proposal struct {
	name       string
	rawType    string
	isLoadit   bool
	feeUsd     float64
	feePercent float64
	speed      string
	notes      string
}

const defaultRouteName = "Unnamed route"

func coerceProposal(r RawRouteProposal) proposal {
	name := CoerceString(r.Name)
	if name == "" {
		name = defaultRouteName
	}
	return proposal{
		name:       name,
		rawType:    strings.ToLower(CoerceString(r.Type)),
		isLoadit:   CoerceBool(r.IsLoadit),
		feeUsd:     CoerceNumber(r.FeeUsd),
		feePercent: CoerceNumber(r.FeePercent),
		speed:      CoerceString(r.Speed),
		notes:      CoerceString(r.Notes),
	}
}

// CoerceString приводит недоверенное значение к строке. Объекты и массивы дают "".
func CoerceString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	case json.Number:
		return s.String()
	default:
		return ""
	}
}

// CoerceNumber приводит значение к числу: числа и числовые строки, остальное 0.
func CoerceNumber(v any) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func CoerceBool(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

func (p proposal) quotedText() string {
	return fmt.Sprintf("Proposed at ~$%.2f (~%.2f%%) before normalization.", p.feeUsd, p.feePercent)
}
