package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()

	unknown := cfg.ApplyOverrides(map[string]float64{
		"bank.flat_floor_usd":                      25,
		"bank.rate_percent":                        0.25,
		"remittance.bracket.0.percent":             7,
		"remittance.bracket.1.up_to":               4000,
		"exchange.off_ramp.withdrawal_flat_usd":    1.5,
		"peer_to_peer.desk_fee_usd":                4,
		"house_rail.base_percent":                  0.5,
		"house.flagship.rate_percent":              0.2,
		"house.flagship.small_transfer_buffer_usd": 0.25,
		"house.network_routing.visible":            1,
		"house.conversion.asset.btc":               3,
		"house.conversion.default_percent":         5,
		"house.baseline.1.percent":                 5.5,
		"house.hybrid.enabled":                     0,
		"limits.max_proposals":                     4,
		"bogus.key":                                1,
		"bank.bracket.9.percent":                   1,
		"house.flagship.color":                     1,
	})

	assert.Equal(t, []string{"bank.bracket.9.percent", "bogus.key", "house.flagship.color"}, unknown)
	assert.Equal(t, 25.0, cfg.Models[CategoryBank].FlatFloorUsd)
	assert.Equal(t, 0.25, cfg.Models[CategoryBank].RatePercent)
	assert.Equal(t, 7.0, cfg.Models[CategoryRemittance].Brackets[0].Percent)
	assert.Equal(t, 4000.0, cfg.Models[CategoryRemittance].Brackets[1].UpTo)
	assert.Equal(t, 1.5, cfg.Models[CategoryExchange].OffRamp.WithdrawalFlatUsd)
	assert.Equal(t, 4.0, cfg.Models[CategoryPeerToPeer].DeskFeeUsd)
	assert.Equal(t, 0.5, cfg.Models[CategoryHouseRail].BasePercent)
	assert.Equal(t, 0.2, cfg.HouseRails.Flagship.RatePercent)
	assert.Equal(t, 0.25, cfg.HouseRails.Flagship.SmallTransferBufferUsd)
	assert.True(t, cfg.HouseRails.Network.Visible)
	assert.Equal(t, 3.0, cfg.HouseRails.Conversion.Percent("BTC"))
	assert.Equal(t, 5.0, cfg.HouseRails.Conversion.Percent("DOGE"))
	assert.Equal(t, 5.5, cfg.HouseRails.Baselines[1].Percent)
	assert.False(t, cfg.HouseRails.Hybrid.Enabled)
	assert.Equal(t, 4, cfg.MaxProposals)
}

func TestApplyOverrides_DoesNotLeakIntoDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyOverrides(map[string]float64{"remittance.bracket.0.percent": 9})

	fresh := DefaultConfig()
	assert.Equal(t, 6.5, fresh.Models[CategoryRemittance].Brackets[0].Percent)
}

func TestApplyOverrides_AffectsPricing(t *testing.T) {
	cfg := DefaultConfig()
	unknown := cfg.ApplyOverrides(map[string]float64{
		"house.flagship.rate_percent": 1.0,
		"bank.flat_floor_usd":         20,
	})
	require.Empty(t, unknown)
	e := NewEngine(cfg)

	lms := railByName(t, e.InjectHouseRails(transfer(1000)), lmsName)
	bank := e.Normalize([]RawRouteProposal{{Type: "bank"}}, transfer(1000))

	assert.Equal(t, 10.0, lms.FeeUsd)
	assert.Equal(t, 20.0, bank[0].FeeUsd)
}

func TestApplyOverrides_RejectsLimitsOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value float64
	}{
		{"negative fee percent", "limits.max_fee_percent", -5},
		{"zero fee percent", "limits.max_fee_percent", 0},
		{"fee percent above 25", "limits.max_fee_percent", 40},
		{"proposals above 6", "limits.max_proposals", 10},
		{"zero proposals", "limits.max_proposals", 0},
		{"fractional proposals", "limits.max_proposals", 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()

			unknown := cfg.ApplyOverrides(map[string]float64{tt.key: tt.value})

			assert.Equal(t, []string{tt.key}, unknown)
			assert.Equal(t, ProposalLimit, cfg.MaxProposals)
			assert.Equal(t, FeePercentLimit, cfg.MaxFeePercent)
		})
	}
}

func TestApplyOverrides_LimitsKeepInvariants(t *testing.T) {
	cfg := DefaultConfig()
	unknown := cfg.ApplyOverrides(map[string]float64{
		"limits.max_fee_percent": -5,
		"limits.max_proposals":   10,
	})
	require.Equal(t, []string{"limits.max_fee_percent", "limits.max_proposals"}, unknown)
	e := NewEngine(cfg)

	raw := make([]RawRouteProposal, 10)
	for i := range raw {
		raw[i] = RawRouteProposal{Name: "Route", Type: "other", FeePercent: 3}
	}
	routes := e.Normalize(raw, transfer(1000))

	require.Len(t, routes, ProposalLimit)
	for _, r := range append(routes, e.InjectHouseRails(transfer(1000))...) {
		assert.GreaterOrEqual(t, r.FeePercent, 0.0, r.Name)
		assert.LessOrEqual(t, r.FeePercent, FeePercentLimit, r.Name)
	}
}

func TestApplyOverrides_TighterLimitsAccepted(t *testing.T) {
	cfg := DefaultConfig()
	unknown := cfg.ApplyOverrides(map[string]float64{
		"limits.max_fee_percent": 10,
		"limits.max_proposals":   3,
	})

	assert.Empty(t, unknown)
	assert.Equal(t, 10.0, cfg.MaxFeePercent)
	assert.Equal(t, 3, cfg.MaxProposals)
}
