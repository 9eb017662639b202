package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/partfoundry/quoting/pkg/domain/entities"
	"github.com/partfoundry/quoting/pkg/domain/services"
)

// QuoteService orchestrates the estimation pipeline: feature detection,
// complexity scoring, block selection, the milling/material/labor cost
// models, pricing composition, and lead-time estimation. Every stage is
// a pure function of its inputs, so the service itself is stateless and
// safe for concurrent use.
type QuoteService struct {
	detector  *services.FeatureDetector
	scorer    *services.ComplexityScorer
	selector  *services.BlockSelector
	milling   *services.MillingModel
	material  *services.MaterialModel
	labor     *services.LaborModel
	composer  *services.PricingComposer
	leadTimes *services.LeadTimeEstimator

	now func() time.Time
}

// NewQuoteService wires the pipeline stages from one rate configuration.
func NewQuoteService(cfg services.RateConfig) *QuoteService {
	return &QuoteService{
		detector:  services.NewFeatureDetector(cfg.Detector),
		scorer:    services.NewComplexityScorer(cfg.Complexity),
		selector:  services.NewBlockSelector(cfg.BlockCatalog, cfg.WasteBandLow, cfg.WasteBandMax),
		milling:   services.NewMillingModel(cfg.Milling),
		material:  services.NewMaterialModel(cfg.AluminumDensity, cfg.AluminumPricePerKg),
		labor:     services.NewLaborModel(cfg.Labor),
		composer:  services.NewPricingComposer(cfg),
		leadTimes: services.NewLeadTimeEstimator(cfg.LeadTime, cfg.Shipping),
		now:       time.Now,
	}
}

// Generate produces one immutable quote for a request. It fails only
// on boundary validation or when the bounding box exceeds the stock
// catalog; the pipeline itself is total.
func (s *QuoteService) Generate(ctx context.Context, req entities.QuoteRequest) (*entities.QuoteResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	metrics := req.Metrics
	features := s.detector.Detect(metrics)
	complexity := s.scorer.Score(metrics)

	block, err := s.selector.Select(metrics.BoundingBox, metrics.PartVolume)
	if err != nil {
		return nil, fmt.Errorf("failed to select stock: %w", err)
	}

	milling := s.milling.Estimate(block.BlockVolume, metrics)
	materialPerPart := s.material.CostPerPart(metrics.PartVolume)
	labor := s.labor.Estimate(complexity)

	tier := req.EffectiveTier()
	breakdown := s.composer.Compose(services.PricingInputs{
		Material:      materialPerPart,
		Milling:       milling,
		Labor:         labor,
		Complexity:    complexity,
		Box:           metrics.BoundingBox,
		Quantity:      req.Quantity,
		Tier:          tier,
		ExpeditedDays: req.ExpeditedDays,
	})

	leadTime := s.leadTimes.Estimate(complexity, req.Quantity, tier, req.ExpeditedDays)

	return &entities.QuoteResult{
		Metrics:       metrics,
		Quantity:      req.Quantity,
		ShippingTier:  tier,
		ExpeditedDays: req.ExpeditedDays,
		Features:      features,
		Complexity:    complexity,
		Block:         block,
		Milling:       milling,
		Breakdown:     breakdown,
		PerUnitCost:   breakdown.PerUnit,
		TotalCost:     breakdown.Total,
		LeadTimeDays:  leadTime,
		GeneratedAt:   s.now(),
	}, nil
}

// BatchItem pairs one request's result with its error, in input order.
type BatchItem struct {
	Result *entities.QuoteResult
	Err    error
}

// GenerateBatch quotes independent requests concurrently. Requests
// share no mutable state, so each runs on its own goroutine; results
// come back in input order with per-request errors.
func (s *QuoteService) GenerateBatch(ctx context.Context, reqs []entities.QuoteRequest) []BatchItem {
	items := make([]BatchItem, len(reqs))

	var wg sync.WaitGroup
	for i, req := range reqs {
		wg.Add(1)
		go func(i int, req entities.QuoteRequest) {
			defer wg.Done()
			result, err := s.Generate(ctx, req)
			items[i] = BatchItem{Result: result, Err: err}
		}(i, req)
	}
	wg.Wait()

	return items
}
