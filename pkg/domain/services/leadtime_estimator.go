package services

import (
	"math"

	"github.com/partfoundry/quoting/pkg/domain/entities"
)

// LeadTimeEstimator converts workload plus shipping selection into a
// calendar lead time in days.
type LeadTimeEstimator struct {
	cfg      LeadTimeConfig
	shipping map[string]ShippingRates
}

// NewLeadTimeEstimator creates an estimator from the configured tables.
func NewLeadTimeEstimator(cfg LeadTimeConfig, shipping map[string]ShippingRates) *LeadTimeEstimator {
	return &LeadTimeEstimator{cfg: cfg, shipping: shipping}
}

// Estimate returns the lead time in days. Base days band on the raw
// complexity score, using the lead-time boundaries rather than the
// pricing category ceilings; quantity raises the estimate by a factor
// capped at the configured ceiling; the shipping tier's lead
// multiplier applies last. A legacy expedited option overrides the
// whole calculation with its fixed day count.
func (e *LeadTimeEstimator) Estimate(
	score entities.ComplexityScore,
	quantity int64,
	tier entities.ShippingTier,
	expedited entities.ExpeditedOption,
) int {
	if expedited != entities.NoExpedite {
		return expedited.Days()
	}

	var base float64
	switch {
	case score.Value < e.cfg.LowScoreCeiling:
		base = float64(e.cfg.LowComplexityDays)
	case score.Value < e.cfg.MediumScoreCeiling:
		base = float64(e.cfg.MediumComplexityDays)
	default:
		base = float64(e.cfg.HighComplexityDays)
	}

	quantityFactor := e.cfg.QuantityFactorPerPc * float64(quantity-1)
	if quantityFactor > e.cfg.QuantityFactorCap {
		quantityFactor = e.cfg.QuantityFactorCap
	}

	days := base * (1 + quantityFactor) * e.shipping[tierKey(tier)].LeadTimeMultiplier
	if days < 1 {
		return 1
	}
	return int(math.Ceil(days))
}
