package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moso_shop/internal/money"
)

func TestSeedIntegrity(t *testing.T) {
	products := Seed()
	require.NotEmpty(t, products)

	seen := map[string]bool{}
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Name)
		assert.Greater(t, money.Parse(p.Price), int64(0), "unparsable price %q on %s", p.Price, p.ID)
	}
}

func TestSeedKnownPrices(t *testing.T) {
	products := Seed()
	byID := map[string]string{}
	for _, p := range products {
		byID[p.ID] = p.Price
	}
	assert.Equal(t, "189.000đ", byID["1"])
	assert.Equal(t, "155.000đ", byID["2"])
}

func TestSeedReturnsFreshSlice(t *testing.T) {
	a := Seed()
	a[0].Name = "mutated"
	b := Seed()
	assert.NotEqual(t, "mutated", b[0].Name)
}
