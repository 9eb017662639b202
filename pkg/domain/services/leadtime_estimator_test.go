package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/partfoundry/quoting/pkg/domain/entities"
)

func newTestEstimator() *LeadTimeEstimator {
	cfg := DefaultRateConfig()
	return NewLeadTimeEstimator(cfg.LeadTime, cfg.Shipping)
}

func TestLeadTimeEstimator_TierOrdering(t *testing.T) {
	estimator := newTestEstimator()
	score := entities.ComplexityScore{Value: 5.0, Category: entities.MediumComplexity}

	for _, quantity := range []int64{1, 10, 100} {
		economy := estimator.Estimate(score, quantity, entities.Economy, entities.NoExpedite)
		standard := estimator.Estimate(score, quantity, entities.Standard, entities.NoExpedite)
		expedited := estimator.Estimate(score, quantity, entities.Expedited, entities.NoExpedite)

		assert.GreaterOrEqual(t, economy, standard, "quantity %d", quantity)
		assert.GreaterOrEqual(t, standard, expedited, "quantity %d", quantity)
	}
}

func TestLeadTimeEstimator_BaseDaysBandOnScore(t *testing.T) {
	estimator := newTestEstimator()
	scorer := NewComplexityScorer(DefaultRateConfig().Complexity)

	// Bands sit at scores 5 and 8, independent of the pricing category
	// boundaries at 4 and 6. A score of 4.5 prices as medium complexity
	// but still ships on the short schedule; 7.0 prices as high but
	// stays mid-band.
	cases := []struct {
		value float64
		days  int
	}{
		{2.0, 7},
		{4.5, 7},
		{5.0, 10},
		{7.0, 10},
		{8.0, 11},
		{9.0, 11},
	}

	for _, tc := range cases {
		score := entities.ComplexityScore{Value: tc.value, Category: scorer.Categorize(tc.value)}
		days := estimator.Estimate(score, 1, entities.Standard, entities.NoExpedite)
		assert.Equal(t, tc.days, days, "score %g", tc.value)
	}
}

func TestLeadTimeEstimator_QuantityLengthensButIsBounded(t *testing.T) {
	estimator := newTestEstimator()
	score := entities.ComplexityScore{Value: 5, Category: entities.MediumComplexity}

	single := estimator.Estimate(score, 1, entities.Standard, entities.NoExpedite)
	batch := estimator.Estimate(score, 25, entities.Standard, entities.NoExpedite)
	huge := estimator.Estimate(score, 1_000_000, entities.Standard, entities.NoExpedite)

	assert.GreaterOrEqual(t, batch, single)
	// The quantity factor caps at +50%: ceil(10 × 1.5) = 15 days.
	assert.Equal(t, 15, huge)
}

func TestLeadTimeEstimator_LegacyExpeditedOverrides(t *testing.T) {
	estimator := newTestEstimator()
	score := entities.ComplexityScore{Value: 9, Category: entities.HighComplexity}

	// The fixed day count wins no matter the workload.
	assert.Equal(t, 3, estimator.Estimate(score, 500, entities.Standard, entities.Expedite3Days))
	assert.Equal(t, 4, estimator.Estimate(score, 500, entities.Standard, entities.Expedite4Days))
	assert.Equal(t, 5, estimator.Estimate(score, 500, entities.Standard, entities.Expedite5Days))
}

func TestLeadTimeEstimator_NeverBelowOneDay(t *testing.T) {
	cfg := DefaultRateConfig()
	cfg.LeadTime.LowComplexityDays = 1
	estimator := NewLeadTimeEstimator(cfg.LeadTime, cfg.Shipping)

	days := estimator.Estimate(entities.ComplexityScore{Value: 0.1, Category: entities.LowComplexity},
		1, entities.Expedited, entities.NoExpedite)
	assert.GreaterOrEqual(t, days, 1)
}
