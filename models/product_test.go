package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBucketForPrice(t *testing.T) {
	cases := []struct {
		price    string
		expected PriceBucket
	}{
		{"0", PriceBucketLow},
		{"999.99", PriceBucketLow},
		{"1000", PriceBucketMedium},
		{"4999.99", PriceBucketMedium},
		{"5000", PriceBucketHigh},
		{"9999.99", PriceBucketHigh},
		{"10000", PriceBucketExpensive},
		{"250000", PriceBucketExpensive},
	}
	for _, tc := range cases {
		price, err := decimal.NewFromString(tc.price)
		assert.NoError(t, err)
		assert.Equal(t, tc.expected, BucketForPrice(price), "цена %s", tc.price)
	}
}

func TestParsePriceBucket(t *testing.T) {
	min, max, ok := ParsePriceBucket("low")
	assert.True(t, ok)
	assert.Nil(t, min)
	assert.True(t, max.Equal(decimal.NewFromInt(1000)))

	min, max, ok = ParsePriceBucket("medium")
	assert.True(t, ok)
	assert.True(t, min.Equal(decimal.NewFromInt(1000)))
	assert.True(t, max.Equal(decimal.NewFromInt(5000)))

	min, max, ok = ParsePriceBucket("high")
	assert.True(t, ok)
	assert.True(t, min.Equal(decimal.NewFromInt(5000)))
	assert.True(t, max.Equal(decimal.NewFromInt(10000)))

	min, max, ok = ParsePriceBucket("expensive")
	assert.True(t, ok)
	assert.True(t, min.Equal(decimal.NewFromInt(10000)))
	assert.Nil(t, max)

	_, _, ok = ParsePriceBucket("cheap")
	assert.False(t, ok)
	_, _, ok = ParsePriceBucket("")
	assert.False(t, ok)
}
