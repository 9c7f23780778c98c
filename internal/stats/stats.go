// Package stats reduces spend entries into awareness statistics.
//
// Everything here is a pure function over a slice of entries; callers
// choose the period by choosing the slice. An entry contributes to exactly
// one day's total, and empty input yields zero values, never an error.
package stats

import (
	"sort"

	"github.com/centsible/centsible/internal/model"
)

// CategoryTotal is the summed spend for one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// DayTotal is the summed spend for one calendar day.
type DayTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// PeriodStats is the reduction of a period's entries.
type PeriodStats struct {
	HighestSpendDay         *DayTotal       `json:"highestSpendDay,omitempty"`
	LowestSpendDay          *DayTotal       `json:"lowestSpendDay,omitempty"`
	TopCategories           []CategoryTotal `json:"topCategories"`
	TotalSpend              float64         `json:"totalSpend"`
	SpendDays               int             `json:"spendDays"`
	AverageSpendPerSpendDay float64         `json:"averageSpendPerSpendDay"`
}

// Calculate reduces entries into period statistics. Category ranking is
// sorted by total descending with ties kept in first-encountered order;
// day extremes also break ties in favor of the first encountered day.
func Calculate(entries []model.SpendEntry) PeriodStats {
	stats := PeriodStats{}
	if len(entries) == 0 {
		return stats
	}

	categoryTotals := make(map[string]float64)
	var categoryOrder []string
	dayTotals := make(map[string]float64)
	var dayOrder []string

	for _, e := range entries {
		stats.TotalSpend += e.Amount

		if _, seen := categoryTotals[e.Category]; !seen {
			categoryOrder = append(categoryOrder, e.Category)
		}
		categoryTotals[e.Category] += e.Amount

		if _, seen := dayTotals[e.Date]; !seen {
			dayOrder = append(dayOrder, e.Date)
		}
		dayTotals[e.Date] += e.Amount
	}

	stats.SpendDays = len(dayOrder)
	stats.AverageSpendPerSpendDay = stats.TotalSpend / float64(stats.SpendDays)

	stats.TopCategories = make([]CategoryTotal, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		stats.TopCategories = append(stats.TopCategories, CategoryTotal{Category: c, Total: categoryTotals[c]})
	}
	sort.SliceStable(stats.TopCategories, func(i, j int) bool {
		return stats.TopCategories[i].Total > stats.TopCategories[j].Total
	})

	for _, d := range dayOrder {
		total := dayTotals[d]
		if stats.HighestSpendDay == nil || total > stats.HighestSpendDay.Total {
			stats.HighestSpendDay = &DayTotal{Date: d, Total: total}
		}
		if stats.LowestSpendDay == nil || total < stats.LowestSpendDay.Total {
			stats.LowestSpendDay = &DayTotal{Date: d, Total: total}
		}
	}

	return stats
}
