package model

import "time"

// Plan identifies the subscription tier.
type Plan string

const (
	// PlanFree is the default tier with a limited history window.
	PlanFree Plan = "free"
	// PlanMonthly is a monthly auto-renewing subscription.
	PlanMonthly Plan = "monthly"
	// PlanYearly is a yearly auto-renewing subscription.
	PlanYearly Plan = "yearly"
	// PlanLifetime is a one-time purchase that never expires.
	PlanLifetime Plan = "lifetime"
)

// Valid reports whether p is a known plan.
func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanMonthly, PlanYearly, PlanLifetime:
		return true
	default:
		return false
	}
}

// Subscription is the singleton entitlement record. It is written by the
// purchase flow and read by access control. A nil ExpiresAt means the
// entitlement does not expire on its own.
type Subscription struct {
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Plan      Plan       `json:"plan"`
	Source    string     `json:"source,omitempty"`
	IsActive  bool       `json:"isActive"`
}

// FreeSubscription is the safe default used when no subscription record
// exists or the stored one cannot be read.
func FreeSubscription() Subscription {
	return Subscription{Plan: PlanFree}
}
