package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveVariantID(t *testing.T) {
	tests := []struct {
		name      string
		productID string
		color     string
		size      string
		want      string
	}{
		{"no selections", "P1", "", "", "P1--"},
		{"color only", "P1", "red", "", "P1-red-"},
		{"size only", "P1", "", "XL", "P1--XL"},
		{"both", "P1", "walnut", "3-seater", "P1-walnut-3-seater"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveVariantID(tt.productID, tt.color, tt.size))
		})
	}
}

func TestResolveVariantIDDeterministic(t *testing.T) {
	a := ResolveVariantID("P9", "oak", "L")
	b := ResolveVariantID("P9", "oak", "L")
	assert.Equal(t, a, b)
}

func TestResolveVariantIDDistinguishesVariants(t *testing.T) {
	base := ResolveVariantID("P1", "", "")
	assert.NotEqual(t, base, ResolveVariantID("P1", "red", ""))
	assert.NotEqual(t, base, ResolveVariantID("P2", "", ""))
}
