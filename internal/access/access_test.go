package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/centsible/centsible/internal/model"
)

func TestIsPremium(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name string
		sub  model.Subscription
		want bool
	}{
		{
			name: "lifetime is always premium",
			sub:  model.Subscription{Plan: model.PlanLifetime, IsActive: false},
			want: true,
		},
		{
			name: "active monthly with no expiry",
			sub:  model.Subscription{Plan: model.PlanMonthly, IsActive: true},
			want: true,
		},
		{
			name: "active yearly expiring in the future",
			sub:  model.Subscription{Plan: model.PlanYearly, IsActive: true, ExpiresAt: &future},
			want: true,
		},
		{
			name: "active monthly already expired",
			sub:  model.Subscription{Plan: model.PlanMonthly, IsActive: true, ExpiresAt: &past},
			want: false,
		},
		{
			name: "inactive paid plan",
			sub:  model.Subscription{Plan: model.PlanMonthly, IsActive: false},
			want: false,
		},
		{
			name: "active free plan is not premium",
			sub:  model.Subscription{Plan: model.PlanFree, IsActive: true},
			want: false,
		},
		{
			name: "zero-value subscription",
			sub:  model.Subscription{},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPremium(tt.sub, now))
		})
	}
}

func TestCanViewDate_TodayNeverGated(t *testing.T) {
	now := time.Date(2024, 3, 15, 23, 30, 0, 0, time.Local)
	today := model.FormatDay(now)

	subs := []model.Subscription{
		model.FreeSubscription(),
		{Plan: model.PlanMonthly, IsActive: false},
		{},
	}
	for _, sub := range subs {
		assert.True(t, CanViewDate(today, sub, 0, now), "today must be viewable for %+v", sub)
	}
}

func TestCanViewDate_FreeWindowBoundary(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	free := model.FreeSubscription()
	const window = 7

	inside := model.FormatDay(now.AddDate(0, 0, -window))
	outside := model.FormatDay(now.AddDate(0, 0, -(window + 1)))

	assert.True(t, CanViewDate(inside, free, window, now), "day exactly at the window edge is visible")
	assert.False(t, CanViewDate(outside, free, window, now), "one day past the window is locked")
}

func TestCanViewDate_FutureAndMalformed(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	free := model.FreeSubscription()

	tomorrow := model.FormatDay(now.AddDate(0, 0, 1))
	assert.False(t, CanViewDate(tomorrow, free, 7, now), "future days are not within the window")
	assert.False(t, CanViewDate("not-a-date", free, 7, now))
}

func TestCanViewDate_PremiumSeesEverything(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	sub := model.Subscription{Plan: model.PlanLifetime}

	assert.True(t, CanViewDate("1999-01-01", sub, 0, now))
}

func TestFilterEntries(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	free := model.FreeSubscription()

	old := model.FormatDay(now.AddDate(0, 0, -30))
	recent := model.FormatDay(now.AddDate(0, 0, -1))

	entries := []model.SpendEntry{
		{ID: "a", Date: old, Amount: 10},
		{ID: "b", Date: recent, Amount: 5},
		{ID: "c", Date: old, Amount: 2},
	}

	visible, locked := FilterEntries(entries, free, 7, now)

	assert.Len(t, visible, 1)
	assert.Equal(t, "b", visible[0].ID)
	assert.Equal(t, []string{old}, locked, "locked days are distinct and in encounter order")
}
