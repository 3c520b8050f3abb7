package routing

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// ApplyOverrides применяет параметры тарифов по ключам вида
// "bank.flat_floor_usd", "remittance.bracket.0.percent",
// "house.flagship.rate_percent", "house.conversion.asset.BTC".
// Возвращает отсортированный список нераспознанных ключей и ключей
// со значением вне допустимых границ.
func (c *Config) ApplyOverrides(params map[string]float64) []string {
	var unknown []string
	for key, value := range params {
		if !c.applyOverride(strings.TrimSpace(key), value) {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func (c *Config) applyOverride(key string, value float64) bool {
	parts := strings.Split(key, ".")
	if len(parts) < 2 {
		return false
	}

	switch parts[0] {
	case "limits":
		return c.applyLimit(parts[1], value)
	case "house":
		return c.applyHouse(parts[1:], value)
	}

	category := Category(parts[0])
	model, ok := c.Models[category]
	if !ok {
		return false
	}
	if !model.apply(parts[1:], value) {
		return false
	}
	c.Models[category] = model
	return true
}

func (c *Config) applyLimit(name string, value float64) bool {
	switch name {
	case "max_proposals":
		if value != math.Trunc(value) || value <= 0 || value > ProposalLimit {
			return false
		}
		c.MaxProposals = int(value)
	case "max_fee_percent":
		if value <= 0 || value > FeePercentLimit {
			return false
		}
		c.MaxFeePercent = value
	default:
		return false
	}
	return true
}

func (m *FeeModel) apply(path []string, value float64) bool {
	switch {
	case len(path) == 1:
		switch path[0] {
		case "flat_floor_usd":
			m.FlatFloorUsd = value
		case "rate_percent":
			m.RatePercent = value
		case "base_percent":
			m.BasePercent = value
		case "desk_fee_usd":
			m.DeskFeeUsd = value
		default:
			return false
		}
		return true

	case len(path) == 2 && path[0] == "off_ramp":
		switch path[1] {
		case "low_factor":
			m.OffRamp.LowFactor = value
		case "high_factor":
			m.OffRamp.HighFactor = value
		case "withdrawal_flat_usd":
			m.OffRamp.WithdrawalFlatUsd = value
		case "withdrawal_percent":
			m.OffRamp.WithdrawalPercent = value
		default:
			return false
		}
		return true

	case len(path) == 3 && path[0] == "bracket":
		i, err := strconv.Atoi(path[1])
		if err != nil || i < 0 || i >= len(m.Brackets) {
			return false
		}
		brackets := append([]Bracket(nil), m.Brackets...)
		switch path[2] {
		case "percent":
			brackets[i].Percent = value
		case "up_to":
			brackets[i].UpTo = value
		default:
			return false
		}
		m.Brackets = brackets
		return true
	}
	return false
}

func (c *Config) applyHouse(path []string, value float64) bool {
	h := &c.HouseRails
	switch {
	case len(path) == 2 && path[0] == "flagship":
		switch path[1] {
		case "rate_percent":
			h.Flagship.RatePercent = value
		case "small_transfer_threshold_usd":
			h.Flagship.SmallTransferThresholdUsd = value
		case "small_transfer_buffer_usd":
			h.Flagship.SmallTransferBufferUsd = value
		default:
			return false
		}
		return true

	case len(path) == 2 && path[0] == "network_routing":
		switch path[1] {
		case "percent":
			h.Network.Percent = value
		case "visible":
			h.Network.Visible = value != 0
		default:
			return false
		}
		return true

	case len(path) == 2 && path[0] == "hybrid" && path[1] == "enabled":
		h.Hybrid.Enabled = value != 0
		return true

	case len(path) == 2 && path[0] == "conversion" && path[1] == "default_percent":
		h.Conversion.DefaultPercent = value
		return true

	case len(path) == 3 && path[0] == "conversion" && path[1] == "asset":
		assets := make(map[string]float64, len(h.Conversion.AssetPercent)+1)
		for k, v := range h.Conversion.AssetPercent {
			assets[k] = v
		}
		assets[strings.ToUpper(path[2])] = value
		h.Conversion.AssetPercent = assets
		return true

	case len(path) == 3 && path[0] == "baseline" && path[2] == "percent":
		i, err := strconv.Atoi(path[1])
		if err != nil || i < 0 || i >= len(h.Baselines) {
			return false
		}
		baselines := append([]BaselineRail(nil), h.Baselines...)
		baselines[i].Percent = value
		h.Baselines = baselines
		return true
	}
	return false
}
