package promo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	p := &PromoCode{Kind: KindPercent, Value: 15}

	assert.Equal(t, int64(1500), p.Discount(10000))
	assert.Equal(t, int64(0), p.Discount(0))
}

func TestDiscountFixed(t *testing.T) {
	p := &PromoCode{Kind: KindFixed, Value: 2500}

	assert.Equal(t, int64(2500), p.Discount(10000))
}

func TestDiscountNeverExceedsSubtotal(t *testing.T) {
	p := &PromoCode{Kind: KindFixed, Value: 2500}
	assert.Equal(t, int64(1000), p.Discount(1000))

	full := &PromoCode{Kind: KindPercent, Value: 100}
	assert.Equal(t, int64(800), full.Discount(800))
}

func TestDiscountNeverNegative(t *testing.T) {
	p := &PromoCode{Kind: KindFixed, Value: -500}

	assert.Equal(t, int64(0), p.Discount(1000))
}

func TestValidKind(t *testing.T) {
	assert.True(t, ValidKind(KindPercent))
	assert.True(t, ValidKind(KindFixed))
	assert.False(t, ValidKind(Kind("bogus")))
}
