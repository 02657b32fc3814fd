package pricing

import (
	"time"
)

// matches reports whether the rule applies to the room type on the given night.
// Rule date ranges are inclusive of the start and exclusive of the end, like
// a stay's check-in/check-out pair.
func matches(r *Rule, roomTypeID string, night time.Time) bool {
	if !r.IsActive {
		return false
	}
	if r.RoomTypeID != nil && *r.RoomTypeID != roomTypeID {
		return false
	}
	if night.Before(r.StartDate) || !night.Before(r.EndDate) {
		return false
	}
	return true
}

// ResolveNight picks the winning rule for a night and returns the resulting
// rate. Highest priority wins; among equal priorities the most recently
// created rule wins. No matching rule leaves the base rate untouched.
func ResolveNight(rules []*Rule, roomTypeID string, baseRateCents int64, night time.Time) NightRate {
	var winner *Rule
	for _, r := range rules {
		if !matches(r, roomTypeID, night) {
			continue
		}
		if winner == nil ||
			r.Priority > winner.Priority ||
			(r.Priority == winner.Priority && r.CreatedAt.After(winner.CreatedAt)) {
			winner = r
		}
	}

	if winner == nil {
		return NightRate{Date: night, RateCents: baseRateCents}
	}

	rate := baseRateCents
	switch winner.Kind {
	case KindMultiplier:
		rate = baseRateCents * winner.Value / 10000
	case KindOverride:
		rate = winner.Value
	}
	id := winner.ID
	return NightRate{Date: night, RateCents: rate, RuleID: &id}
}

// ComputeStay resolves every night in [checkIn, checkOut) and sums the subtotal.
func ComputeStay(rules []*Rule, roomTypeID string, baseRateCents int64, checkIn, checkOut time.Time) Quote {
	q := Quote{RoomTypeID: roomTypeID}
	for night := checkIn; night.Before(checkOut); night = night.AddDate(0, 0, 1) {
		nr := ResolveNight(rules, roomTypeID, baseRateCents, night)
		q.Nights = append(q.Nights, nr)
		q.SubtotalCents += nr.RateCents
	}
	q.TotalCents = q.SubtotalCents
	return q
}
