package services

import (
	"github.com/shopspring/decimal"

	"github.com/partfoundry/quoting/pkg/domain/entities"
)

// MillingModel estimates machining cost and time with a three-phase
// material-removal model: coarse roughing down to the convex hull,
// medium milling down to the shrink wrap, fine finishing down to the
// final part. All figures are per part; order totals are pure
// multiples computed later, never inside this model.
type MillingModel struct {
	coarse PhaseRates
	medium PhaseRates
	fine   PhaseRates
}

// NewMillingModel creates a model from the configured phase rates.
func NewMillingModel(rates map[string]PhaseRates) *MillingModel {
	return &MillingModel{
		coarse: rates["coarse"],
		medium: rates["medium"],
		fine:   rates["fine"],
	}
}

// Estimate computes per-part machining cost and time for a part cut
// from the given block volume. Phase volumes are clamped at zero so
// slightly inconsistent hull/shrink/part volumes degrade gracefully
// instead of failing.
func (m *MillingModel) Estimate(blockVolume float64, metrics entities.GeometryMetrics) entities.MillingCost {
	phases := []entities.PhaseCost{
		m.phase(entities.CoarseMilling, m.coarse, blockVolume-metrics.ConvexHullVolume),
		m.phase(entities.MediumMilling, m.medium, metrics.ConvexHullVolume-metrics.ShrinkWrapVolume),
		m.phase(entities.FineMilling, m.fine, metrics.ShrinkWrapVolume-metrics.PartVolume),
	}

	cost := decimal.Zero
	seconds := 0.0
	for _, p := range phases {
		cost = cost.Add(p.Cost)
		seconds += p.Seconds
	}

	return entities.MillingCost{
		Phases:         phases,
		CostPerPart:    cost,
		SecondsPerPart: seconds,
	}
}

func (m *MillingModel) phase(id entities.MillingPhase, rates PhaseRates, removed float64) entities.PhaseCost {
	if removed < 0 {
		removed = 0
	}
	return entities.PhaseCost{
		Phase:         id,
		RemovedVolume: removed,
		Seconds:       removed / rates.RemovalRate,
		Cost:          decimal.NewFromFloat(removed * rates.CostPerMM3),
	}
}

// MaterialModel prices the raw aluminum in a part.
type MaterialModel struct {
	density    float64 // g/cm³
	pricePerKg float64 // USD/kg
}

// NewMaterialModel creates a material model for the configured alloy.
func NewMaterialModel(density, pricePerKg float64) *MaterialModel {
	return &MaterialModel{density: density, pricePerKg: pricePerKg}
}

// CostPerPart returns the per-part material cost for a part volume in mm³.
func (m *MaterialModel) CostPerPart(partVolume float64) decimal.Decimal {
	volumeCM3 := partVolume / 1000
	massKg := volumeCM3 * m.density / 1000
	return decimal.NewFromFloat(massKg * m.pricePerKg)
}
