package routing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate_WithProposals(t *testing.T) {
	e := newTestEngine()

	set, err := e.Simulate(TransferRequest{AmountUsd: 1000, Sender: "US", Recipient: "MX"}, Proposals{
		Routes: []RawRouteProposal{
			{Name: "Bank wire", Type: "bank", IsRecommendedByProposer: true},
			{Name: "Remitly", Type: "remittance"},
		},
		Summary: "  Two options.  ",
		Usable:  true,
	})

	require.NoError(t, err)
	assert.False(t, set.Fallback)
	assert.Equal(t, "Two options.", set.Summary)
	require.Len(t, set.Routes, 6)

	assert.Equal(t, "Bank wire", set.Routes[0].Name)
	assert.False(t, set.Routes[0].IsHouseRail)
	assert.False(t, set.Routes[0].IsRecommended)
	assert.Equal(t, "Remitly", set.Routes[1].Name)

	best, ok := set.Recommended()
	require.True(t, ok)
	assert.Equal(t, lmsName, best.Name)
	assert.Equal(t, 1, recommendedCount(set.Routes))
}

func TestSimulate_EmptyProposalsStillHasHouseRails(t *testing.T) {
	e := newTestEngine()

	set, err := e.Simulate(TransferRequest{AmountUsd: 50, Sender: "US", Recipient: "NG"}, Proposals{Usable: true})

	require.NoError(t, err)
	assert.False(t, set.Fallback)
	assert.Equal(t, DefaultConfig().DefaultSummary, set.Summary)
	require.Len(t, set.Routes, 4)
	assert.Equal(t, 1, recommendedCount(set.Routes))
}

func TestSimulate_Fallback(t *testing.T) {
	e := newTestEngine()

	set, err := e.Simulate(TransferRequest{AmountUsd: 1000, Sender: "US", Recipient: "PH"}, Proposals{
		Routes:  []RawRouteProposal{{Name: "ignored"}},
		Summary: "ignored",
		Usable:  false,
	})

	require.NoError(t, err)
	assert.True(t, set.Fallback)
	assert.Equal(t, DefaultConfig().FallbackSummary, set.Summary)
	require.Len(t, set.Routes, 7)

	assert.Equal(t, CategoryBank, set.Routes[0].Category)
	assert.Equal(t, 35.0, set.Routes[0].FeeUsd)
	assert.Equal(t, CategoryRemittance, set.Routes[1].Category)
	assert.Equal(t, 45.0, set.Routes[1].FeeUsd)
	assert.Equal(t, CategoryExchange, set.Routes[2].Category)
	assert.Equal(t, 20.0, set.Routes[2].TotalEstimatedCostUsd)

	houseRails := 0
	for _, r := range set.Routes {
		if r.IsHouseRail {
			houseRails++
		}
	}
	assert.Equal(t, 4, houseRails)

	best, ok := set.Recommended()
	require.True(t, ok)
	assert.True(t, best.IsHouseRail)
	assert.Equal(t, lmsName, best.Name)
}

func TestSimulate_FallbackNeverEmpty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FallbackRoutes = nil
	cfg.HouseRails.Baselines = nil
	cfg.HouseRails.Hybrid.Enabled = false
	e := NewEngine(cfg)

	set, err := e.Simulate(TransferRequest{AmountUsd: 10, Sender: "a", Recipient: "b"}, Proposals{})

	require.NoError(t, err)
	require.Len(t, set.Routes, 1)
	assert.True(t, set.Routes[0].IsHouseRail)
	assert.True(t, set.Routes[0].IsRecommended)
}

func TestSimulate_CheapProposalCanWin(t *testing.T) {
	e := newTestEngine()

	set, err := e.Simulate(TransferRequest{AmountUsd: 1000, Sender: "US", Recipient: "PH"}, Proposals{
		Routes: []RawRouteProposal{{Name: "Free stablecoin hop", Type: "onchain", FeeUsd: 0.5}},
		Usable: true,
	})

	require.NoError(t, err)
	best, ok := set.Recommended()
	require.True(t, ok)
	assert.Equal(t, "Free stablecoin hop", best.Name)
	assert.False(t, best.IsHouseRail)
}

func TestSimulate_CapDoesNotApplyToHouseRails(t *testing.T) {
	e := newTestEngine()

	raw := make([]RawRouteProposal, 10)
	for i := range raw {
		raw[i] = RawRouteProposal{Name: fmt.Sprintf("Exchange %d", i)}
	}

	set, err := e.Simulate(TransferRequest{AmountUsd: 1000, Sender: "US", Recipient: "PH"}, Proposals{Routes: raw, Usable: true})

	require.NoError(t, err)
	assert.Len(t, set.Routes, 6+4)
}

func TestSimulate_Deterministic(t *testing.T) {
	e := newTestEngine()
	req := TransferRequest{
		AmountUsd:       777.77,
		Sender:          "CA",
		Recipient:       "IN",
		AssetPreference: "sol",
		FundingSource:   FundingCard,
		RecipientType:   RecipientPlatform,
	}
	proposals := Proposals{
		Routes: []RawRouteProposal{
			{Name: "Bank", Type: "bank"},
			{Name: "Kraken exchange"},
			{Name: "Hybrid", IsLoadit: true},
			{Name: "Mystery", FeeUsd: "3", FeePercent: 0.4},
		},
		Usable: true,
	}

	first, err := e.Simulate(req, proposals)
	require.NoError(t, err)
	second, err := e.Simulate(req, proposals)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
