package entities

import "github.com/shopspring/decimal"

// MillingPhase identifies one pass of the three-phase removal model.
type MillingPhase int

const (
	CoarseMilling MillingPhase = iota
	MediumMilling
	FineMilling
)

func (p MillingPhase) String() string {
	switch p {
	case CoarseMilling:
		return "Coarse"
	case MediumMilling:
		return "Medium"
	case FineMilling:
		return "Fine"
	default:
		return "Unknown"
	}
}

// LaborCategory identifies a labor rate-table entry.
type LaborCategory int

const (
	Programming LaborCategory = iota
	MachineSetup
	ToolSetup
	QualityInspection
	DeburringFinishing
	ProjectManagement
)

func (c LaborCategory) String() string {
	switch c {
	case Programming:
		return "CAD/CAM Programming"
	case MachineSetup:
		return "Machine Setup"
	case ToolSetup:
		return "Tool Setup"
	case QualityInspection:
		return "Quality Inspection"
	case DeburringFinishing:
		return "Deburring/Finishing"
	case ProjectManagement:
		return "Project Management"
	default:
		return "Unknown"
	}
}

// PhaseCost is the per-part outcome of one milling phase.
type PhaseCost struct {
	Phase         MillingPhase    `json:"phase"`
	RemovedVolume float64         `json:"removed_volume"` // mm³, clamped at zero
	Seconds       float64         `json:"seconds"`
	Cost          decimal.Decimal `json:"cost"` // per part
}

// MillingCost aggregates the three phases for a single part. Order
// totals are pure multiples of these per-part figures; no quantity
// term ever re-enters the milling model.
type MillingCost struct {
	Phases         []PhaseCost     `json:"phases"`
	CostPerPart    decimal.Decimal `json:"cost_per_part"`
	SecondsPerPart float64         `json:"seconds_per_part"`
}

// LaborLine is one rate-table category evaluated for an order.
type LaborLine struct {
	Category LaborCategory   `json:"category"`
	Hours    float64         `json:"hours"`
	Cost     decimal.Decimal `json:"cost"`
	PerPart  bool            `json:"per_part"` // scaled by quantity rather than once per order
}

// LaborCost partitions labor into a once-per-order setup portion and a
// per-unit portion.
type LaborCost struct {
	Lines       []LaborLine     `json:"lines"`
	SetupCost   decimal.Decimal `json:"setup_cost"`    // incurred once per order
	PerPartCost decimal.Decimal `json:"per_part_cost"` // incurred per unit
	TotalHours  float64         `json:"total_hours"`   // single-unit hours across categories
}

// AmortizedPerPart folds the order-level setup cost into a per-unit
// figure so the per-part × quantity identity holds for the whole quote.
func (l LaborCost) AmortizedPerPart(quantity int64) decimal.Decimal {
	qty := decimal.NewFromInt(quantity)
	return l.SetupCost.Div(qty).Add(l.PerPartCost)
}

// ComponentCost carries a per-part figure and its order total. The
// total is always PerPart multiplied by quantity, never re-derived.
type ComponentCost struct {
	PerPart decimal.Decimal `json:"per_part"`
	Total   decimal.Decimal `json:"total"`
}

// ScaledComponent builds a ComponentCost from a per-part figure.
func ScaledComponent(perPart decimal.Decimal, quantity int64) ComponentCost {
	return ComponentCost{PerPart: perPart, Total: perPart.Mul(decimal.NewFromInt(quantity))}
}

// PricingFactors records each multiplier applied to the per-part
// subtotal. Every factor is applied exactly once.
type PricingFactors struct {
	ComplexityMultiplier float64 `json:"complexity_multiplier"`
	SizeMultiplier       float64 `json:"size_multiplier"`
	QuantityDiscount     float64 `json:"quantity_discount"` // fraction in [0, 1)
	ShippingMultiplier   float64 `json:"shipping_multiplier"`
	ExpeditedMultiplier  float64 `json:"expedited_multiplier"` // 1.0 unless a legacy option is set
	FloorApplied         bool    `json:"floor_applied"`
}

// CostBreakdown is the full per-part and order-total cost picture.
type CostBreakdown struct {
	Quantity int64 `json:"quantity"`

	Material ComponentCost `json:"material"`
	Coarse   ComponentCost `json:"coarse_milling"`
	Medium   ComponentCost `json:"medium_milling"`
	Fine     ComponentCost `json:"fine_milling"`
	Labor    LaborCost     `json:"labor"`

	// SubtotalPerPart is material + machine + amortized labor, before
	// any multiplier. Multipliers compose on this value only.
	SubtotalPerPart decimal.Decimal `json:"subtotal_per_part"`
	Factors         PricingFactors  `json:"factors"`

	PerUnit decimal.Decimal `json:"per_unit"`
	Total   decimal.Decimal `json:"total"` // PerUnit × Quantity, exactly
}
