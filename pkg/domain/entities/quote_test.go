package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteRequest_Validate(t *testing.T) {
	req := QuoteRequest{Metrics: validMetrics(), Quantity: 1}
	assert.NoError(t, req.Validate())
}

func TestQuoteRequest_Validate_RejectsNonPositiveQuantity(t *testing.T) {
	for _, quantity := range []int64{0, -3} {
		req := QuoteRequest{Metrics: validMetrics(), Quantity: quantity}
		err := req.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
}

func TestQuoteRequest_Validate_RejectsConflictingShippingOptions(t *testing.T) {
	tier := Expedited
	req := QuoteRequest{
		Metrics:       validMetrics(),
		Quantity:      1,
		ShippingTier:  &tier,
		ExpeditedDays: Expedite3Days,
	}

	err := req.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflictingShipping)
}

func TestQuoteRequest_EffectiveTier_DefaultsToStandard(t *testing.T) {
	req := QuoteRequest{Metrics: validMetrics(), Quantity: 1}
	assert.Equal(t, Standard, req.EffectiveTier())

	tier := Economy
	req.ShippingTier = &tier
	assert.Equal(t, Economy, req.EffectiveTier())
}

func TestParseShippingTier(t *testing.T) {
	tier, err := ParseShippingTier("economy")
	require.NoError(t, err)
	assert.Equal(t, Economy, tier)

	_, err = ParseShippingTier("overnight")
	assert.Error(t, err)
}

func TestParseExpeditedOption(t *testing.T) {
	option, err := ParseExpeditedOption("3_days")
	require.NoError(t, err)
	assert.Equal(t, Expedite3Days, option)
	assert.Equal(t, 3, option.Days())

	option, err = ParseExpeditedOption("")
	require.NoError(t, err)
	assert.Equal(t, NoExpedite, option)

	_, err = ParseExpeditedOption("2_days")
	assert.Error(t, err)
}
