package routing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type feeQuote struct {
	fee     decimal.Decimal
	percent decimal.Decimal
	offRamp *OffRampEstimate
	detail  string
}

// bracketPercent ставка первой подходящей ступени
func (m FeeModel) bracketPercent(amount float64) float64 {
	for _, b := range m.Brackets {
		if b.matches(amount) {
			return b.Percent
		}
	}
	return 0
}

// quote считает комиссию по модели. ok == false для ModelPassThrough.
func (m FeeModel) quote(amountUsd float64) (feeQuote, bool) {
	amount := dec(amountUsd)

	switch m.Kind {
	case ModelFlatFloor:
		fee := decimal.Max(dec(m.FlatFloorUsd), percentOf(amount, dec(m.RatePercent))).Round(2)
		return feeQuote{fee: fee, percent: effectivePercent(fee, amount)}, true

	case ModelTieredPercent, ModelTieredPercentOffRamp:
		tier := m.bracketPercent(amountUsd)
		pct := dec(m.BasePercent).Add(dec(tier))
		fee := percentOf(amount, pct).Round(2)
		q := feeQuote{fee: fee, percent: pct}
		if m.DeskFeeUsd > 0 {
			q.fee = fee.Add(dec(m.DeskFeeUsd))
			q.percent = effectivePercent(q.fee, amount)
		}
		if m.BasePercent > 0 {
			q.detail = fmt.Sprintf("Modeled as ~%.2f%% platform fee + ~%.2f%% estimated network fee (total ~%s%%).",
				m.BasePercent, tier, pct.StringFixed(2))
		}
		if m.Kind == ModelTieredPercentOffRamp {
			q.offRamp = m.OffRamp.estimate(amount, q.fee)
		}
		return q, true
	}

	return feeQuote{}, false
}

func (o OffRampModel) estimate(amount, fee decimal.Decimal) *OffRampEstimate {
	mid := fee
	if o.WithdrawalFlatUsd > 0 || o.WithdrawalPercent > 0 {
		mid = dec(o.WithdrawalFlatUsd).Add(percentOf(amount, dec(o.WithdrawalPercent)))
	}
	return &OffRampEstimate{
		Low:  money(mid.Mul(dec(o.LowFactor))),
		Mid:  money(mid),
		High: money(mid.Mul(dec(o.HighFactor))),
	}
}
