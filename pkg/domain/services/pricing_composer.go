package services

import (
	"github.com/shopspring/decimal"

	"github.com/partfoundry/quoting/pkg/domain/entities"
)

// PricingComposer turns per-part component costs into the final quoted
// price. The composition order is fixed: subtotal, complexity
// multiplier, size multiplier, quantity discount, shipping multiplier,
// price floor. Each multiplier is applied exactly once to the
// once-computed per-part subtotal; the order total is always the
// per-unit price multiplied by quantity, never an independent figure.
type PricingComposer struct {
	cfg RateConfig
}

// NewPricingComposer creates a composer over the static rate tables.
func NewPricingComposer(cfg RateConfig) *PricingComposer {
	return &PricingComposer{cfg: cfg}
}

// PricingInputs carries the per-part figures produced upstream.
type PricingInputs struct {
	Material decimal.Decimal
	Milling  entities.MillingCost
	Labor    entities.LaborCost

	Complexity entities.ComplexityScore
	Box        entities.BoundingBox

	Quantity      int64
	Tier          entities.ShippingTier
	ExpeditedDays entities.ExpeditedOption
}

// Compose produces the full cost breakdown for an order.
func (p *PricingComposer) Compose(in PricingInputs) entities.CostBreakdown {
	laborPerPart := in.Labor.AmortizedPerPart(in.Quantity)
	subtotal := in.Material.Add(in.Milling.CostPerPart).Add(laborPerPart)

	factors := entities.PricingFactors{
		ComplexityMultiplier: p.complexityMultiplier(in.Complexity.Category),
		SizeMultiplier:       p.sizeMultiplier(in.Box.MaxDimension()),
		QuantityDiscount:     p.DiscountFor(in.Quantity),
		ShippingMultiplier:   1.0,
		ExpeditedMultiplier:  1.0,
	}

	price := subtotal.
		Mul(decimal.NewFromFloat(factors.ComplexityMultiplier)).
		Mul(decimal.NewFromFloat(factors.SizeMultiplier)).
		Mul(decimal.NewFromFloat(1 - factors.QuantityDiscount))

	// Legacy expedited options carry their own premium and bypass the
	// shipping-tier multiplier path entirely.
	if in.ExpeditedDays != entities.NoExpedite {
		factors.ExpeditedMultiplier = p.cfg.ExpeditedRate[in.ExpeditedDays.String()]
		price = price.Mul(decimal.NewFromFloat(factors.ExpeditedMultiplier))
	} else {
		factors.ShippingMultiplier = p.cfg.Shipping[tierKey(in.Tier)].PriceMultiplier
		price = price.Mul(decimal.NewFromFloat(factors.ShippingMultiplier))
	}

	floor := decimal.NewFromFloat(p.cfg.MinPricePerPart)
	if price.LessThan(floor) {
		price = floor
		factors.FloorApplied = true
	}

	perUnit := price.Round(2)
	qty := decimal.NewFromInt(in.Quantity)

	breakdown := entities.CostBreakdown{
		Quantity:        in.Quantity,
		Material:        entities.ScaledComponent(in.Material, in.Quantity),
		Labor:           in.Labor,
		SubtotalPerPart: subtotal,
		Factors:         factors,
		PerUnit:         perUnit,
		Total:           perUnit.Mul(qty),
	}
	for _, phase := range in.Milling.Phases {
		component := entities.ScaledComponent(phase.Cost, in.Quantity)
		switch phase.Phase {
		case entities.CoarseMilling:
			breakdown.Coarse = component
		case entities.MediumMilling:
			breakdown.Medium = component
		case entities.FineMilling:
			breakdown.Fine = component
		}
	}
	return breakdown
}

// DiscountFor looks up the discount fraction for a quantity from the
// ascending tier table. Tiers are discrete: the highest tier at or
// below the quantity applies, with no interpolation between tiers.
func (p *PricingComposer) DiscountFor(quantity int64) float64 {
	discount := 0.0
	for _, tier := range p.cfg.DiscountTiers {
		if quantity < tier.MinQuantity {
			break
		}
		discount = tier.Discount
	}
	return discount
}

func (p *PricingComposer) complexityMultiplier(category entities.ComplexityCategory) float64 {
	switch category {
	case entities.LowComplexity:
		return p.cfg.ComplexityMultipliers["low"]
	case entities.HighComplexity:
		return p.cfg.ComplexityMultipliers["high"]
	default:
		return p.cfg.ComplexityMultipliers["medium"]
	}
}

func (p *PricingComposer) sizeMultiplier(maxDimension float64) float64 {
	switch {
	case maxDimension < p.cfg.SmallPartCeiling:
		return p.cfg.SizeMultipliers["small"]
	case maxDimension > p.cfg.LargePartFloor:
		return p.cfg.SizeMultipliers["large"]
	default:
		return p.cfg.SizeMultipliers["medium"]
	}
}

func tierKey(tier entities.ShippingTier) string {
	switch tier {
	case entities.Economy:
		return "economy"
	case entities.Expedited:
		return "expedited"
	default:
		return "standard"
	}
}
