package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rule(id string, kind Kind, value int64, priority int, start, end time.Time) *Rule {
	return &Rule{
		ID:        id,
		Kind:      kind,
		Value:     value,
		Priority:  priority,
		StartDate: start,
		EndDate:   end,
		IsActive:  true,
	}
}

func TestResolveNightBaseRate(t *testing.T) {
	nr := ResolveNight(nil, "rt1", 10000, date(2026, 9, 1))

	assert.Equal(t, int64(10000), nr.RateCents)
	assert.Nil(t, nr.RuleID)
}

func TestResolveNightMultiplier(t *testing.T) {
	rules := []*Rule{
		// 1.2x weekend surcharge
		rule("r1", KindMultiplier, 12000, 1, date(2026, 9, 1), date(2026, 9, 8)),
	}

	nr := ResolveNight(rules, "rt1", 10000, date(2026, 9, 3))

	assert.Equal(t, int64(12000), nr.RateCents)
	require.NotNil(t, nr.RuleID)
	assert.Equal(t, "r1", *nr.RuleID)
}

func TestResolveNightOverrideWinsByPriority(t *testing.T) {
	rules := []*Rule{
		rule("low", KindMultiplier, 12000, 1, date(2026, 9, 1), date(2026, 9, 8)),
		rule("high", KindOverride, 19900, 10, date(2026, 9, 1), date(2026, 9, 8)),
	}

	nr := ResolveNight(rules, "rt1", 10000, date(2026, 9, 3))

	assert.Equal(t, int64(19900), nr.RateCents)
	assert.Equal(t, "high", *nr.RuleID)
}

func TestResolveNightTieBreaksOnCreation(t *testing.T) {
	older := rule("older", KindOverride, 15000, 5, date(2026, 9, 1), date(2026, 9, 8))
	older.CreatedAt = date(2026, 8, 1)
	newer := rule("newer", KindOverride, 18000, 5, date(2026, 9, 1), date(2026, 9, 8))
	newer.CreatedAt = date(2026, 8, 15)

	nr := ResolveNight([]*Rule{older, newer}, "rt1", 10000, date(2026, 9, 3))

	assert.Equal(t, "newer", *nr.RuleID)
}

func TestResolveNightSkipsNonMatching(t *testing.T) {
	inactive := rule("inactive", KindOverride, 100, 10, date(2026, 9, 1), date(2026, 9, 8))
	inactive.IsActive = false

	otherRoom := "rt2"
	scoped := rule("scoped", KindOverride, 200, 10, date(2026, 9, 1), date(2026, 9, 8))
	scoped.RoomTypeID = &otherRoom

	ended := rule("ended", KindOverride, 300, 10, date(2026, 8, 1), date(2026, 9, 1))

	nr := ResolveNight([]*Rule{inactive, scoped, ended}, "rt1", 10000, date(2026, 9, 1))

	assert.Equal(t, int64(10000), nr.RateCents)
	assert.Nil(t, nr.RuleID)
}

func TestRuleEndDateIsExclusive(t *testing.T) {
	rules := []*Rule{
		rule("r1", KindOverride, 20000, 1, date(2026, 9, 1), date(2026, 9, 3)),
	}

	assert.Equal(t, int64(20000), ResolveNight(rules, "rt1", 10000, date(2026, 9, 2)).RateCents)
	assert.Equal(t, int64(10000), ResolveNight(rules, "rt1", 10000, date(2026, 9, 3)).RateCents)
}

func TestComputeStay(t *testing.T) {
	rules := []*Rule{
		// Only the middle night is surcharged.
		rule("r1", KindMultiplier, 15000, 1, date(2026, 9, 2), date(2026, 9, 3)),
	}

	q := ComputeStay(rules, "rt1", 10000, date(2026, 9, 1), date(2026, 9, 4))

	require.Len(t, q.Nights, 3, "check-out night is not occupied")
	assert.Equal(t, int64(10000), q.Nights[0].RateCents)
	assert.Equal(t, int64(15000), q.Nights[1].RateCents)
	assert.Equal(t, int64(10000), q.Nights[2].RateCents)
	assert.Equal(t, int64(35000), q.SubtotalCents)
	assert.Equal(t, int64(35000), q.TotalCents)
	assert.Zero(t, q.DiscountCents)
}

func TestComputeStayEmptyRange(t *testing.T) {
	q := ComputeStay(nil, "rt1", 10000, date(2026, 9, 1), date(2026, 9, 1))

	assert.Empty(t, q.Nights)
	assert.Zero(t, q.SubtotalCents)
}
