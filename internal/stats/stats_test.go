package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centsible/centsible/internal/model"
)

func entry(date string, amount float64, category string) model.SpendEntry {
	return model.SpendEntry{Date: date, Amount: amount, Category: category}
}

func TestCalculate_Empty(t *testing.T) {
	stats := Calculate(nil)

	assert.Zero(t, stats.TotalSpend)
	assert.Zero(t, stats.SpendDays)
	assert.Zero(t, stats.AverageSpendPerSpendDay)
	assert.Empty(t, stats.TopCategories)
	assert.Nil(t, stats.HighestSpendDay)
	assert.Nil(t, stats.LowestSpendDay)
}

func TestCalculate_EndToEndScenario(t *testing.T) {
	entries := []model.SpendEntry{
		entry("2024-01-01", 10, "Groceries"),
		entry("2024-01-01", 5, "Dining"),
		entry("2024-01-02", 20, "Groceries"),
	}

	stats := Calculate(entries)

	assert.Equal(t, 35.0, stats.TotalSpend)
	assert.Equal(t, 2, stats.SpendDays)
	assert.Equal(t, 17.5, stats.AverageSpendPerSpendDay)

	require.Len(t, stats.TopCategories, 2)
	assert.Equal(t, CategoryTotal{Category: "Groceries", Total: 30}, stats.TopCategories[0])
	assert.Equal(t, CategoryTotal{Category: "Dining", Total: 5}, stats.TopCategories[1])

	require.NotNil(t, stats.HighestSpendDay)
	assert.Equal(t, DayTotal{Date: "2024-01-02", Total: 20}, *stats.HighestSpendDay)
	require.NotNil(t, stats.LowestSpendDay)
	assert.Equal(t, DayTotal{Date: "2024-01-01", Total: 15}, *stats.LowestSpendDay)
}

func TestCalculate_CategorySumInvariant(t *testing.T) {
	entries := []model.SpendEntry{
		entry("2024-01-01", 12.34, "Groceries"),
		entry("2024-01-02", 0.66, "Dining"),
		entry("2024-01-03", 7, "Groceries"),
		entry("2024-01-03", 3, "Travel"),
	}

	stats := Calculate(entries)

	sum := 0.0
	for _, c := range stats.TopCategories {
		sum += c.Total
	}
	assert.InDelta(t, stats.TotalSpend, sum, 1e-9, "category totals must add up to the total spend")
}

func TestCalculate_TiesKeepFirstEncounteredOrder(t *testing.T) {
	entries := []model.SpendEntry{
		entry("2024-01-01", 10, "Dining"),
		entry("2024-01-02", 10, "Groceries"),
		entry("2024-01-03", 10, "Travel"),
	}

	stats := Calculate(entries)

	require.Len(t, stats.TopCategories, 3)
	assert.Equal(t, "Dining", stats.TopCategories[0].Category)
	assert.Equal(t, "Groceries", stats.TopCategories[1].Category)
	assert.Equal(t, "Travel", stats.TopCategories[2].Category)

	// All day totals tie too; the first encountered day wins both extremes.
	assert.Equal(t, "2024-01-01", stats.HighestSpendDay.Date)
	assert.Equal(t, "2024-01-01", stats.LowestSpendDay.Date)
}

func TestCalculate_SingleDay(t *testing.T) {
	entries := []model.SpendEntry{
		entry("2024-01-01", 8, "Groceries"),
		entry("2024-01-01", 2, "Groceries"),
	}

	stats := Calculate(entries)

	assert.Equal(t, 10.0, stats.TotalSpend)
	assert.Equal(t, 1, stats.SpendDays)
	assert.Equal(t, 10.0, stats.AverageSpendPerSpendDay)
	assert.Equal(t, stats.HighestSpendDay, stats.LowestSpendDay)
}
