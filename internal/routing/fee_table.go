package routing

// ModelKind вид модели комиссии
type ModelKind string

const (
	// ModelPassThrough значения источника проходят после ограничения диапазона
	ModelPassThrough ModelKind = "pass_through"
	// ModelFlatFloor max(FlatFloorUsd, amount * RatePercent)
	ModelFlatFloor ModelKind = "flat_floor"
	// ModelTieredPercent amount * (BasePercent + ставка ступени) + DeskFeeUsd
	ModelTieredPercent ModelKind = "tiered_percent"
	// ModelTieredPercentOffRamp как ModelTieredPercent плюс оценка стоимости вывода
	ModelTieredPercentOffRamp ModelKind = "tiered_percent_off_ramp"
)

// Bracket ступень тарифа. UpTo == 0 означает верхнюю ступень без ограничения.
// Inclusive определяет, попадает ли сама граница в ступень.
type Bracket struct {
	UpTo      float64
	Inclusive bool
	Percent   float64
}

func (b Bracket) matches(amount float64) bool {
	if b.UpTo <= 0 {
		return true
	}
	if b.Inclusive {
		return amount <= b.UpTo
	}
	return amount < b.UpTo
}

// OffRampModel оценка вывода в фиат: mid = формула вывода или feeUsd, low/high по множителям
type OffRampModel struct {
	LowFactor         float64
	HighFactor        float64
	WithdrawalFlatUsd float64
	WithdrawalPercent float64
}

// FeeModel параметры модели комиссии одной категории
type FeeModel struct {
	Kind         ModelKind
	FlatFloorUsd float64
	RatePercent  float64
	BasePercent  float64
	Brackets     []Bracket
	DeskFeeUsd   float64
	OffRamp      OffRampModel
	Speed        string
	ForceSpeed   bool
	Notes        string
}

// KeywordRule подстрока в имени маршрута и соответствующая категория
type KeywordRule struct {
	Keyword  string
	Category Category
}

// FlagshipRail основной собственный маршрут (LMS)
type FlagshipRail struct {
	Name                      string
	RatePercent               float64
	SmallTransferThresholdUsd float64
	SmallTransferBufferUsd    float64
	Speed                     string
	Notes                     string
}

// HybridRail гибридный маршрут Loadit, цена по модели категории house_rail
type HybridRail struct {
	Enabled bool
	Name    string
	Speed   string
	Notes   string
}

// BaselineRail эталонный маршрут конкурента: фиксированный процент без ступеней
type BaselineRail struct {
	Name     string
	Category Category
	Percent  float64
	Speed    string
	Notes    string
}

// ConversionTable ставка конвертации фиата в цифровой актив по символу
type ConversionTable struct {
	AssetPercent   map[string]float64
	DefaultPercent float64
}

// Percent ставка для актива, для неизвестного или пустого символа ставка по умолчанию
func (t ConversionTable) Percent(asset string) float64 {
	if pct, ok := t.AssetPercent[asset]; ok {
		return pct
	}
	return t.DefaultPercent
}

// NetworkRouting стоимость сетевой маршрутизации для business/platform получателей.
// Visible переносит её в feeUsd, иначе она только метаданные.
type NetworkRouting struct {
	Percent float64
	Visible bool
}

type HouseRails struct {
	Flagship   FlagshipRail
	Hybrid     HybridRail
	Baselines  []BaselineRail
	Conversion ConversionTable
	Network    NetworkRouting
}

// Верхние границы, которые не могут поднять ни окружение, ни таблица тарифов
const (
	ProposalLimit   = 6
	FeePercentLimit = 25.0
)

// Config вся конфигурация движка. После NewEngine не меняется.
type Config struct {
	MaxProposals    int
	MaxFeePercent   float64
	DefaultSpeed    string
	TypeAliases     map[string]Category
	Keywords        []KeywordRule
	Models          map[Category]FeeModel
	HouseRails      HouseRails
	FallbackRoutes  []RawRouteProposal
	DefaultSummary  string
	FallbackSummary string
}

// DefaultConfig тарифы по умолчанию
func DefaultConfig() Config {
	return Config{
		MaxProposals:  ProposalLimit,
		MaxFeePercent: FeePercentLimit,
		DefaultSpeed:  "Unknown – varies by provider",
		TypeAliases: map[string]Category{
			"bank":          CategoryBank,
			"wire":          CategoryBank,
			"remittance":    CategoryRemittance,
			"exchange":      CategoryExchange,
			"cex":           CategoryExchange,
			"p2p":           CategoryPeerToPeer,
			"otc":           CategoryPeerToPeer,
			"peer_to_peer":  CategoryPeerToPeer,
			"peer-to-peer":  CategoryPeerToPeer,
			"loadit-hybrid": CategoryHouseRail,
			"lms":           CategoryHouseRail,
			"house_rail":    CategoryHouseRail,
		},
		Keywords: []KeywordRule{
			{Keyword: "loadit", Category: CategoryHouseRail},
			{Keyword: "p2p", Category: CategoryPeerToPeer},
			{Keyword: "otc", Category: CategoryPeerToPeer},
			{Keyword: "peer-to-peer", Category: CategoryPeerToPeer},
			{Keyword: "exchange", Category: CategoryExchange},
			{Keyword: "remit", Category: CategoryRemittance},
			{Keyword: "bank", Category: CategoryBank},
			{Keyword: "swift", Category: CategoryBank},
		},
		Models: map[Category]FeeModel{
			CategoryBank: {
				Kind:         ModelFlatFloor,
				FlatFloorUsd: 35,
				RatePercent:  0.2,
				Speed:        "2–5 business days",
				Notes:        "Legacy bank transfer using SWIFT-style rails with flat fees and FX margin on top.",
			},
			CategoryRemittance: {
				Kind: ModelTieredPercent,
				Brackets: []Bracket{
					{UpTo: 300, Percent: 6.5},
					{UpTo: 5000, Inclusive: true, Percent: 4.5},
					{Percent: 3.0},
				},
				Speed: "Minutes to a few hours",
				Notes: "Card-based remittance rail with typical FX and service markups in the 3–7% range.",
			},
			CategoryExchange: {
				Kind: ModelTieredPercentOffRamp,
				Brackets: []Bracket{
					{UpTo: 300, Percent: 1.5},
					{UpTo: 10000, Inclusive: true, Percent: 1.0},
					{Percent: 0.8},
				},
				OffRamp:    OffRampModel{LowFactor: 0.7, HighFactor: 1.3},
				Speed:      "Minutes to a few hours",
				ForceSpeed: true,
				Notes:      "Centralized exchange transfer including trading fees, spread, and withdrawal fees.",
			},
			CategoryPeerToPeer: {
				Kind: ModelTieredPercentOffRamp,
				Brackets: []Bracket{
					{UpTo: 300, Percent: 2.5},
					{UpTo: 5000, Inclusive: true, Percent: 1.75},
					{Percent: 1.25},
				},
				DeskFeeUsd: 3,
				OffRamp:    OffRampModel{LowFactor: 0.7, HighFactor: 1.3},
				Speed:      "Minutes to a day, depends on counterparty",
				Notes:      "Peer-to-peer or OTC desk trade: spread plus a fixed desk fee, cash-out handled by the recipient.",
			},
			CategoryHouseRail: {
				Kind:        ModelTieredPercent,
				BasePercent: 0.75,
				Brackets: []Bracket{
					{UpTo: 300, Inclusive: true, Percent: 0.10},
					{UpTo: 2000, Inclusive: true, Percent: 0.15},
					{Percent: 0.25},
				},
				Speed:      "Minutes to ~1 hour",
				ForceSpeed: true,
				Notes:      "Loadit hybrid rail: card/cash to crypto conversion with on-chain settlement.",
			},
			CategoryOther: {
				Kind: ModelPassThrough,
			},
		},
		HouseRails: HouseRails{
			Flagship: FlagshipRail{
				Name:                      "Loadit Money Service (LMS Rail)",
				RatePercent:               0.30,
				SmallTransferThresholdUsd: 100,
				SmallTransferBufferUsd:    0.50,
				Speed:                     "Instant to ~1 hour",
				Notes:                     "AI-optimized stablecoin settlement with intelligent routing.",
			},
			Hybrid: HybridRail{
				Enabled: true,
				Name:    "Loadit hybrid rail",
				Speed:   "Minutes to ~1 hour",
				Notes:   "Loadit crypto rail modeled as a platform fee plus an estimated network fee.",
			},
			Baselines: []BaselineRail{
				{
					Name:     "Western Union (Legacy Rail)",
					Category: CategoryRemittance,
					Percent:  7.0,
					Speed:    "Minutes to a few hours",
					Notes:    "Traditional money transfer provider with high FX margins and service fees, typically around 6–12% all-in.",
				},
				{
					Name:     "MoneyGram (Legacy Rail)",
					Category: CategoryRemittance,
					Percent:  6.0,
					Speed:    "Minutes to a few hours",
					Notes:    "Legacy remittance provider with card and cash pickup options, typically around 5–10% total cost.",
				},
			},
			Conversion: ConversionTable{
				AssetPercent: map[string]float64{
					"SOL":  2,
					"XRP":  2,
					"USDC": 2,
					"USDT": 2,
				},
				DefaultPercent: 8,
			},
			Network: NetworkRouting{Percent: 0.15},
		},
		FallbackRoutes: []RawRouteProposal{
			{Name: "Traditional bank transfer", Type: "bank"},
			{Name: "Card-based remittance", Type: "remittance"},
			{Name: "Centralized exchange transfer", Type: "exchange"},
		},
		DefaultSummary: "AERO simulated multiple rails including banks, legacy remittance, exchanges, " +
			"Loadit hybrid, and Loadit Money Service (LMS).",
		FallbackSummary: "Fallback static routes because the AI router JSON could not be parsed. " +
			"Try again for more detailed options.",
	}
}
