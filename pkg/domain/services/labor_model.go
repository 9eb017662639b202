package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/partfoundry/quoting/pkg/domain/entities"
)

// LaborModel computes labor cost from the shop rate table. Categories
// are partitioned into setup work (once per order) and per-part work
// (scaled by quantity); hours grow linearly with complexity.
type LaborModel struct {
	rates map[entities.LaborCategory]LaborRate
}

// NewLaborModel creates a model from the configured rate table.
func NewLaborModel(rates map[string]LaborRate) *LaborModel {
	byCategory := make(map[entities.LaborCategory]LaborRate, len(rates))
	for key, rate := range rates {
		if category, ok := laborCategoryKeys[key]; ok {
			byCategory[category] = rate
		}
	}
	return &LaborModel{rates: byCategory}
}

// Estimate evaluates every category for a part with the given
// complexity score. Lines are returned in category order so output is
// stable across runs.
func (l *LaborModel) Estimate(score entities.ComplexityScore) entities.LaborCost {
	categories := make([]entities.LaborCategory, 0, len(l.rates))
	for category := range l.rates {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	cost := entities.LaborCost{
		SetupCost:   decimal.Zero,
		PerPartCost: decimal.Zero,
	}

	for _, category := range categories {
		rate := l.rates[category]
		hours := rate.BaseHours + rate.HoursPerPoint*score.Value
		line := entities.LaborLine{
			Category: category,
			Hours:    hours,
			Cost:     decimal.NewFromFloat(hours * rate.HourlyRate),
			PerPart:  rate.PerPart,
		}
		cost.Lines = append(cost.Lines, line)
		cost.TotalHours += hours
		if rate.PerPart {
			cost.PerPartCost = cost.PerPartCost.Add(line.Cost)
		} else {
			cost.SetupCost = cost.SetupCost.Add(line.Cost)
		}
	}

	return cost
}
