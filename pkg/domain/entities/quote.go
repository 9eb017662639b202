package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ShippingTier selects a price multiplier and a lead-time multiplier.
type ShippingTier int

const (
	Economy ShippingTier = iota
	Standard
	Expedited
)

func (t ShippingTier) String() string {
	switch t {
	case Economy:
		return "Economy"
	case Standard:
		return "Standard"
	case Expedited:
		return "Expedited"
	default:
		return "Unknown"
	}
}

// ParseShippingTier maps the wire/CLI spelling of a tier.
func ParseShippingTier(s string) (ShippingTier, error) {
	switch s {
	case "economy":
		return Economy, nil
	case "standard":
		return Standard, nil
	case "expedited":
		return Expedited, nil
	default:
		return Standard, fmt.Errorf("unknown shipping tier %q", s)
	}
}

// ExpeditedOption is the legacy fixed-day expedite selector. It carries
// its own price premium and overrides the lead time outright, bypassing
// the shipping-tier multiplier path.
type ExpeditedOption int

const (
	NoExpedite ExpeditedOption = iota
	Expedite5Days
	Expedite4Days
	Expedite3Days
)

func (o ExpeditedOption) String() string {
	switch o {
	case Expedite5Days:
		return "5_days"
	case Expedite4Days:
		return "4_days"
	case Expedite3Days:
		return "3_days"
	default:
		return "none"
	}
}

// Days returns the fixed lead time the option guarantees, 0 for none.
func (o ExpeditedOption) Days() int {
	switch o {
	case Expedite5Days:
		return 5
	case Expedite4Days:
		return 4
	case Expedite3Days:
		return 3
	default:
		return 0
	}
}

// ParseExpeditedOption maps the legacy selector spellings.
func ParseExpeditedOption(s string) (ExpeditedOption, error) {
	switch s {
	case "", "none":
		return NoExpedite, nil
	case "5_days":
		return Expedite5Days, nil
	case "4_days":
		return Expedite4Days, nil
	case "3_days":
		return Expedite3Days, nil
	default:
		return NoExpedite, fmt.Errorf("unknown expedited option %q", s)
	}
}

// QuoteRequest is the engine's request boundary: pre-extracted
// geometry, an order quantity, and exactly one shipping selection.
type QuoteRequest struct {
	Metrics  GeometryMetrics
	Quantity int64

	// ShippingTier and ExpeditedDays are mutually exclusive. When
	// neither is set the Standard tier applies.
	ShippingTier  *ShippingTier
	ExpeditedDays ExpeditedOption
}

// Validate enforces the request boundary rules: positive quantity,
// valid geometry, and at most one shipping selection.
func (r QuoteRequest) Validate() error {
	if r.Quantity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, r.Quantity)
	}
	if err := r.Metrics.Validate(); err != nil {
		return err
	}
	if r.ShippingTier != nil && r.ExpeditedDays != NoExpedite {
		return fmt.Errorf("%w: tier %s with option %s",
			ErrConflictingShipping, *r.ShippingTier, r.ExpeditedDays)
	}
	return nil
}

// EffectiveTier resolves the tier used on the multiplier path.
// Defaults to Standard, including when a legacy option is in force
// (the option bypasses the tier multipliers anyway).
func (r QuoteRequest) EffectiveTier() ShippingTier {
	if r.ShippingTier != nil {
		return *r.ShippingTier
	}
	return Standard
}

// ComplexityCategory buckets the complexity score for pricing.
type ComplexityCategory int

const (
	LowComplexity ComplexityCategory = iota
	MediumComplexity
	HighComplexity
)

func (c ComplexityCategory) String() string {
	switch c {
	case LowComplexity:
		return "Low"
	case MediumComplexity:
		return "Medium"
	case HighComplexity:
		return "High"
	default:
		return "Unknown"
	}
}

// ComplexityScore is a bounded 0–10 machining-difficulty estimate.
type ComplexityScore struct {
	Value    float64            `json:"value"`
	Category ComplexityCategory `json:"category"`
}

// QuoteResult is the immutable terminal aggregate of one estimation
// run. It is created once per request and safe to hand to reporting
// and serialization collaborators.
type QuoteResult struct {
	Metrics       GeometryMetrics `json:"metrics"`
	Quantity      int64           `json:"quantity"`
	ShippingTier  ShippingTier    `json:"shipping_tier"`
	ExpeditedDays ExpeditedOption `json:"expedited_days"`

	Features   FeatureCounts   `json:"features"`
	Complexity ComplexityScore `json:"complexity"`
	Block      BlockSelection  `json:"block"`
	Milling    MillingCost     `json:"milling"`
	Breakdown  CostBreakdown   `json:"breakdown"`

	PerUnitCost  decimal.Decimal `json:"per_unit_cost"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	LeadTimeDays int             `json:"lead_time_days"`
	GeneratedAt  time.Time       `json:"generated_at"`
}
