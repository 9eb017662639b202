package services

import (
	"fmt"
	"sort"

	"github.com/partfoundry/quoting/pkg/domain/entities"
)

// DetectorConfig holds the feature-detection thresholds. These are
// empirical shop constants, kept as configuration rather than code.
type DetectorConfig struct {
	HoleSAVolThreshold     float64 `mapstructure:"hole_sa_vol_threshold"`
	HoleScale              float64 `mapstructure:"hole_scale"`
	MaxHoles               int     `mapstructure:"max_holes"`
	CavityRatioThreshold   float64 `mapstructure:"cavity_ratio_threshold"`
	CavityScale            float64 `mapstructure:"cavity_scale"`
	MaxCavities            int     `mapstructure:"max_cavities"`
	SharpEdgeRatio         float64 `mapstructure:"sharp_edge_ratio"`
	SharpEdgeScale         float64 `mapstructure:"sharp_edge_scale"`
	MaxSharpEdges          int     `mapstructure:"max_sharp_edges"`
	PocketFaceDensity      float64 `mapstructure:"pocket_face_density"` // faces per mm² of box surface
	PocketFaceDensityScale float64 `mapstructure:"pocket_face_density_scale"`
	MaxPockets             int     `mapstructure:"max_pockets"`

	// Feature score weights per detected feature.
	HoleWeight      float64 `mapstructure:"hole_weight"`
	CavityWeight    float64 `mapstructure:"cavity_weight"`
	SharpEdgeWeight float64 `mapstructure:"sharp_edge_weight"`
	PocketWeight    float64 `mapstructure:"pocket_weight"`
}

// ComplexityConfig holds the scorer weights and normalizer scales.
type ComplexityConfig struct {
	SAVolWeight float64 `mapstructure:"sa_vol_weight"`
	FaceWeight  float64 `mapstructure:"face_weight"`
	EdgeWeight  float64 `mapstructure:"edge_weight"`
	SAVolScale  float64 `mapstructure:"sa_vol_scale"` // SA/vol ratio at which sat() reaches 0.5
	FaceScale   float64 `mapstructure:"face_scale"`   // face count at which sat() reaches 0.5
	EdgeScale   float64 `mapstructure:"edge_scale"`

	LowCeiling    float64 `mapstructure:"low_ceiling"`    // score below this is Low
	MediumCeiling float64 `mapstructure:"medium_ceiling"` // score below this is Medium
}

// PhaseRates is one milling phase's removal rate and unit cost.
type PhaseRates struct {
	RemovalRate float64 `mapstructure:"removal_rate"` // mm³/sec
	CostPerMM3  float64 `mapstructure:"cost_per_mm3"` // USD/mm³
}

// LaborRate is one rate-table category: hourly rate, fixed base hours,
// a complexity-proportional hour increment, and whether it is incurred
// per part or once per order.
type LaborRate struct {
	HourlyRate    float64 `mapstructure:"hourly_rate"`     // USD/hour
	BaseHours     float64 `mapstructure:"base_hours"`      // hours regardless of complexity
	HoursPerPoint float64 `mapstructure:"hours_per_point"` // added hours per complexity point
	PerPart       bool    `mapstructure:"per_part"`
}

// PricingTier maps a minimum quantity to a discount fraction.
type PricingTier struct {
	MinQuantity int64   `mapstructure:"min_quantity"`
	Discount    float64 `mapstructure:"discount"` // fraction in [0, 1)
}

// ShippingRates holds one tier's price and lead-time multipliers.
type ShippingRates struct {
	PriceMultiplier    float64 `mapstructure:"price_multiplier"`
	LeadTimeMultiplier float64 `mapstructure:"lead_time_multiplier"`
}

// LeadTimeConfig bounds the calendar estimate. Base days band on the
// raw complexity score with their own boundaries; the pricing
// category ceilings play no part here.
type LeadTimeConfig struct {
	LowScoreCeiling      float64 `mapstructure:"low_score_ceiling"`    // score below this takes the low base
	MediumScoreCeiling   float64 `mapstructure:"medium_score_ceiling"` // score below this takes the medium base
	LowComplexityDays    int     `mapstructure:"low_complexity_days"`
	MediumComplexityDays int     `mapstructure:"medium_complexity_days"`
	HighComplexityDays   int     `mapstructure:"high_complexity_days"`
	QuantityFactorPerPc  float64 `mapstructure:"quantity_factor_per_pc"` // added factor per extra unit
	QuantityFactorCap    float64 `mapstructure:"quantity_factor_cap"`    // ceiling on the quantity factor
}

// RateConfig is the full static configuration surface of the engine:
// rate tables, catalogs, tiers, thresholds. Loaded once at startup and
// read-only for the lifetime of the process.
type RateConfig struct {
	Detector   DetectorConfig   `mapstructure:"detector"`
	Complexity ComplexityConfig `mapstructure:"complexity"`

	BlockCatalog []entities.BlockSize `mapstructure:"block_catalog"`
	WasteBandLow float64              `mapstructure:"waste_band_low"`
	WasteBandMax float64              `mapstructure:"waste_band_max"`

	Milling map[string]PhaseRates `mapstructure:"milling"` // keys: coarse, medium, fine

	AluminumDensity    float64 `mapstructure:"aluminum_density"`     // g/cm³
	AluminumPricePerKg float64 `mapstructure:"aluminum_price_per_kg"` // USD/kg

	Labor map[string]LaborRate `mapstructure:"labor"`

	ComplexityMultipliers map[string]float64 `mapstructure:"complexity_multipliers"` // low, medium, high
	SizeMultipliers       map[string]float64 `mapstructure:"size_multipliers"`       // small, medium, large
	SmallPartCeiling      float64            `mapstructure:"small_part_ceiling"`      // mm, longest dimension
	LargePartFloor        float64            `mapstructure:"large_part_floor"`        // mm, longest dimension

	DiscountTiers []PricingTier            `mapstructure:"discount_tiers"`
	Shipping      map[string]ShippingRates `mapstructure:"shipping"` // keys: economy, standard, expedited
	ExpeditedRate map[string]float64       `mapstructure:"expedited_rate"` // legacy selector -> price multiplier

	MinPricePerPart float64 `mapstructure:"min_price_per_part"` // USD

	LeadTime LeadTimeConfig `mapstructure:"lead_time"`
}

// laborCategoryKeys maps config keys to labor categories.
var laborCategoryKeys = map[string]entities.LaborCategory{
	"programming":         entities.Programming,
	"machine_setup":       entities.MachineSetup,
	"tool_setup":          entities.ToolSetup,
	"quality_inspection":  entities.QualityInspection,
	"deburring_finishing": entities.DeburringFinishing,
	"project_management":  entities.ProjectManagement,
}

// DefaultRateConfig returns the shop's baseline tables: 6061 aluminum,
// Haas-class machine rates, and the standard stock catalog from 25 mm
// cubes up to 600×500×500 mm.
func DefaultRateConfig() RateConfig {
	return RateConfig{
		Detector: DetectorConfig{
			HoleSAVolThreshold:     0.15,
			HoleScale:              5.0,
			MaxHoles:               5,
			CavityRatioThreshold:   0.2,
			CavityScale:            3.0,
			MaxCavities:            3,
			SharpEdgeRatio:         3.0,
			SharpEdgeScale:         1.5,
			MaxSharpEdges:          4,
			PocketFaceDensity:      0.02,
			PocketFaceDensityScale: 100.0,
			MaxPockets:             8,
			HoleWeight:             0.8,
			CavityWeight:           0.6,
			SharpEdgeWeight:        0.4,
			PocketWeight:           0.5,
		},
		Complexity: ComplexityConfig{
			SAVolWeight:   4.0,
			FaceWeight:    3.0,
			EdgeWeight:    3.0,
			SAVolScale:    0.5,
			FaceScale:     1000.0,
			EdgeScale:     1000.0,
			LowCeiling:    4.0,
			MediumCeiling: 6.0,
		},
		BlockCatalog: []entities.BlockSize{
			{Length: 25, Width: 25, Height: 25},
			{Length: 50, Width: 50, Height: 50},
			{Length: 75, Width: 75, Height: 75},
			{Length: 100, Width: 100, Height: 100},
			{Length: 125, Width: 125, Height: 125},
			{Length: 150, Width: 125, Height: 125},
			{Length: 150, Width: 150, Height: 150},
			{Length: 175, Width: 150, Height: 150},
			{Length: 200, Width: 150, Height: 150},
			{Length: 200, Width: 200, Height: 150},
			{Length: 200, Width: 200, Height: 200},
			{Length: 250, Width: 200, Height: 200},
			{Length: 250, Width: 250, Height: 200},
			{Length: 250, Width: 250, Height: 250},
			{Length: 300, Width: 250, Height: 250},
			{Length: 300, Width: 300, Height: 250},
			{Length: 300, Width: 300, Height: 300},
			{Length: 400, Width: 300, Height: 300},
			{Length: 400, Width: 400, Height: 300},
			{Length: 500, Width: 400, Height: 400},
			{Length: 600, Width: 500, Height: 500},
		},
		WasteBandLow: 0.2,
		WasteBandMax: 0.4,
		Milling: map[string]PhaseRates{
			"coarse": {RemovalRate: 350, CostPerMM3: 0.00011},
			"medium": {RemovalRate: 100, CostPerMM3: 0.00039},
			"fine":   {RemovalRate: 20, CostPerMM3: 0.00175},
		},
		AluminumDensity:    2.7,
		AluminumPricePerKg: 5.0,
		Labor: map[string]LaborRate{
			"programming":         {HourlyRate: 110, BaseHours: 0.16, HoursPerPoint: 0.020},
			"machine_setup":       {HourlyRate: 65, BaseHours: 0.12, HoursPerPoint: 0.015},
			"tool_setup":          {HourlyRate: 55, BaseHours: 0.12, HoursPerPoint: 0.015},
			"project_management":  {HourlyRate: 85, BaseHours: 0.20, HoursPerPoint: 0.050},
			"quality_inspection":  {HourlyRate: 65, BaseHours: 0.10, HoursPerPoint: 0.025, PerPart: true},
			"deburring_finishing": {HourlyRate: 45, BaseHours: 0.10, HoursPerPoint: 0.020, PerPart: true},
		},
		ComplexityMultipliers: map[string]float64{
			"low":    0.85,
			"medium": 1.0,
			"high":   1.35,
		},
		SizeMultipliers: map[string]float64{
			"small":  1.15,
			"medium": 1.0,
			"large":  0.9,
		},
		SmallPartCeiling: 50,
		LargePartFloor:   200,
		DiscountTiers: []PricingTier{
			{MinQuantity: 1, Discount: 0.0},
			{MinQuantity: 5, Discount: 0.05},
			{MinQuantity: 10, Discount: 0.12},
			{MinQuantity: 25, Discount: 0.18},
			{MinQuantity: 50, Discount: 0.22},
			{MinQuantity: 100, Discount: 0.28},
		},
		Shipping: map[string]ShippingRates{
			"economy":   {PriceMultiplier: 0.95, LeadTimeMultiplier: 1.3},
			"standard":  {PriceMultiplier: 1.0, LeadTimeMultiplier: 1.0},
			"expedited": {PriceMultiplier: 1.35, LeadTimeMultiplier: 0.6},
		},
		ExpeditedRate: map[string]float64{
			"5_days": 1.3,
			"4_days": 1.6,
			"3_days": 2.0,
		},
		MinPricePerPart: 200,
		LeadTime: LeadTimeConfig{
			LowScoreCeiling:      5,
			MediumScoreCeiling:   8,
			LowComplexityDays:    7,
			MediumComplexityDays: 10,
			HighComplexityDays:   11,
			QuantityFactorPerPc:  0.01,
			QuantityFactorCap:    0.5,
		},
	}
}

// Validate checks the configuration for values the pipeline cannot
// work with. Called once at load time.
func (c RateConfig) Validate() error {
	if len(c.BlockCatalog) == 0 {
		return fmt.Errorf("block catalog is empty")
	}
	for i, b := range c.BlockCatalog {
		if b.Length <= 0 || b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("block catalog entry %d has non-positive dimensions", i)
		}
	}
	if c.WasteBandLow < 0 || c.WasteBandMax <= c.WasteBandLow || c.WasteBandMax >= 1 {
		return fmt.Errorf("waste band [%g, %g] is not a valid sub-range of [0, 1)", c.WasteBandLow, c.WasteBandMax)
	}
	for _, phase := range []string{"coarse", "medium", "fine"} {
		rates, ok := c.Milling[phase]
		if !ok {
			return fmt.Errorf("milling rates missing phase %q", phase)
		}
		if rates.RemovalRate <= 0 || rates.CostPerMM3 <= 0 {
			return fmt.Errorf("milling phase %q has non-positive rates", phase)
		}
	}
	if c.AluminumDensity <= 0 || c.AluminumPricePerKg <= 0 {
		return fmt.Errorf("material properties must be positive")
	}
	for key := range laborCategoryKeys {
		rate, ok := c.Labor[key]
		if !ok {
			return fmt.Errorf("labor rates missing category %q", key)
		}
		if rate.HourlyRate <= 0 || rate.BaseHours < 0 || rate.HoursPerPoint < 0 {
			return fmt.Errorf("labor category %q has invalid rates", key)
		}
	}
	if !sort.SliceIsSorted(c.DiscountTiers, func(i, j int) bool {
		return c.DiscountTiers[i].MinQuantity < c.DiscountTiers[j].MinQuantity
	}) {
		return fmt.Errorf("discount tiers must ascend by quantity")
	}
	prev := -1.0
	for _, tier := range c.DiscountTiers {
		if tier.Discount < 0 || tier.Discount >= 1 {
			return fmt.Errorf("discount %g for quantity %d out of [0, 1)", tier.Discount, tier.MinQuantity)
		}
		if tier.Discount < prev {
			return fmt.Errorf("discounts must not decrease as quantity grows")
		}
		prev = tier.Discount
	}
	for _, tier := range []string{"economy", "standard", "expedited"} {
		rates, ok := c.Shipping[tier]
		if !ok {
			return fmt.Errorf("shipping rates missing tier %q", tier)
		}
		if rates.PriceMultiplier <= 0 || rates.LeadTimeMultiplier <= 0 {
			return fmt.Errorf("shipping tier %q has non-positive multipliers", tier)
		}
	}
	for _, option := range []string{"5_days", "4_days", "3_days"} {
		mult, ok := c.ExpeditedRate[option]
		if !ok {
			return fmt.Errorf("expedited rates missing option %q", option)
		}
		if mult < 1 {
			return fmt.Errorf("expedited option %q must carry a premium, got %g", option, mult)
		}
	}
	if c.MinPricePerPart < 0 {
		return fmt.Errorf("minimum price per part must not be negative")
	}
	lt := c.LeadTime
	if lt.LowScoreCeiling <= 0 || lt.MediumScoreCeiling <= lt.LowScoreCeiling {
		return fmt.Errorf("lead time score bands [%g, %g] must be positive and ascending",
			lt.LowScoreCeiling, lt.MediumScoreCeiling)
	}
	if lt.LowComplexityDays <= 0 || lt.MediumComplexityDays < lt.LowComplexityDays ||
		lt.HighComplexityDays < lt.MediumComplexityDays {
		return fmt.Errorf("lead time base days must be positive and non-decreasing with complexity")
	}
	if lt.QuantityFactorPerPc < 0 || lt.QuantityFactorCap < 0 {
		return fmt.Errorf("lead time quantity factors must not be negative")
	}
	return nil
}
