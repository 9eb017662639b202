package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partfoundry/quoting/pkg/domain/entities"
)

func TestDefaultRateConfig_IsValid(t *testing.T) {
	require.NoError(t, DefaultRateConfig().Validate())
}

func TestRateConfig_Validate_EmptyCatalog(t *testing.T) {
	cfg := DefaultRateConfig()
	cfg.BlockCatalog = nil
	assert.Error(t, cfg.Validate())
}

func TestRateConfig_Validate_BadWasteBand(t *testing.T) {
	cfg := DefaultRateConfig()
	cfg.WasteBandLow = 0.5
	cfg.WasteBandMax = 0.4
	assert.Error(t, cfg.Validate())
}

func TestRateConfig_Validate_MissingMillingPhase(t *testing.T) {
	cfg := DefaultRateConfig()
	delete(cfg.Milling, "medium")
	assert.Error(t, cfg.Validate())
}

func TestRateConfig_Validate_MissingLaborCategory(t *testing.T) {
	cfg := DefaultRateConfig()
	delete(cfg.Labor, "quality_inspection")
	assert.Error(t, cfg.Validate())
}

func TestRateConfig_Validate_DecreasingDiscounts(t *testing.T) {
	cfg := DefaultRateConfig()
	cfg.DiscountTiers = []PricingTier{
		{MinQuantity: 1, Discount: 0.1},
		{MinQuantity: 10, Discount: 0.05},
	}
	assert.Error(t, cfg.Validate())
}

func TestRateConfig_Validate_UnsortedTiers(t *testing.T) {
	cfg := DefaultRateConfig()
	cfg.DiscountTiers = []PricingTier{
		{MinQuantity: 10, Discount: 0.05},
		{MinQuantity: 1, Discount: 0.0},
	}
	assert.Error(t, cfg.Validate())
}

func TestRateConfig_Validate_ExpeditedWithoutPremium(t *testing.T) {
	cfg := DefaultRateConfig()
	cfg.ExpeditedRate["3_days"] = 0.9
	assert.Error(t, cfg.Validate())
}

func TestRateConfig_Validate_BadLeadTimeScoreBands(t *testing.T) {
	cfg := DefaultRateConfig()
	cfg.LeadTime.LowScoreCeiling = 8
	cfg.LeadTime.MediumScoreCeiling = 5
	assert.Error(t, cfg.Validate())
}

func TestRateConfig_Validate_BadBlockEntry(t *testing.T) {
	cfg := DefaultRateConfig()
	cfg.BlockCatalog = append(cfg.BlockCatalog, entities.BlockSize{Length: -1, Width: 10, Height: 10})
	assert.Error(t, cfg.Validate())
}
